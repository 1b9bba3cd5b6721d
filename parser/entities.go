package parser

// xhtmlEntities maps the named character references of XHTML 1.0 to their
// text.
var xhtmlEntities = map[string]string{
	"quot": "\"", "amp": "&", "apos": "'", "lt": "<", "gt": ">",

	"OElig": "Œ", "oelig": "œ", "Scaron": "Š", "scaron": "š",
	"Yuml": "Ÿ", "fnof": "ƒ", "circ": "ˆ", "tilde": "˜",

	"thetasym": "ϑ", "upsih": "ϒ", "piv": "ϖ",

	"ensp": "\u2002", "emsp": "\u2003", "thinsp": "\u2009", "zwnj": "\u200c",
	"zwj": "\u200d", "lrm": "\u200e", "rlm": "\u200f", "ndash": "–",
	"mdash": "—", "lsquo": "‘", "rsquo": "’", "sbquo": "‚",
	"ldquo": "“", "rdquo": "”", "bdquo": "„", "dagger": "†",
	"Dagger": "‡", "bull": "•", "hellip": "…", "permil": "‰",
	"prime": "′", "Prime": "″", "lsaquo": "‹", "rsaquo": "›",
	"oline": "‾", "frasl": "⁄", "euro": "€",

	"image": "ℑ", "weierp": "℘", "real": "ℜ", "trade": "™",
	"alefsym": "ℵ",

	"larr": "←", "uarr": "↑", "rarr": "→", "darr": "↓",
	"harr": "↔", "crarr": "↵", "lArr": "⇐", "uArr": "⇑",
	"rArr": "⇒", "dArr": "⇓", "hArr": "⇔",

	"forall": "∀", "part": "∂", "exist": "∃", "empty": "∅",
	"nabla": "∇", "isin": "∈", "notin": "∉", "ni": "∋",
	"prod": "∏", "sum": "∑", "minus": "−", "lowast": "∗",
	"radic": "√", "prop": "∝", "infin": "∞", "ang": "∠",
	"and": "∧", "or": "∨", "cap": "∩", "cup": "∪",
	"int": "∫", "there4": "∴", "sim": "∼", "cong": "≅",
	"asymp": "≈", "ne": "≠", "equiv": "≡", "le": "≤",
	"ge": "≥", "sub": "⊂", "sup": "⊃", "nsub": "⊄",
	"sube": "⊆", "supe": "⊇", "oplus": "⊕", "otimes": "⊗",
	"perp": "⊥", "sdot": "⋅", "lceil": "⌈", "rceil": "⌉",
	"lfloor": "⌊", "rfloor": "⌋", "lang": "\u2329", "rang": "\u232a",
	"loz": "◊", "spades": "♠", "clubs": "♣", "hearts": "♥",
	"diams": "♦",
}

// Names of U+00A0 through U+00FF, in code point order.
var latin1Entities = [...]string{
	"nbsp", "iexcl", "cent", "pound", "curren", "yen", "brvbar", "sect",
	"uml", "copy", "ordf", "laquo", "not", "shy", "reg", "macr",
	"deg", "plusmn", "sup2", "sup3", "acute", "micro", "para", "middot",
	"cedil", "sup1", "ordm", "raquo", "frac14", "frac12", "frac34", "iquest",
	"Agrave", "Aacute", "Acirc", "Atilde", "Auml", "Aring", "AElig", "Ccedil",
	"Egrave", "Eacute", "Ecirc", "Euml", "Igrave", "Iacute", "Icirc", "Iuml",
	"ETH", "Ntilde", "Ograve", "Oacute", "Ocirc", "Otilde", "Ouml", "times",
	"Oslash", "Ugrave", "Uacute", "Ucirc", "Uuml", "Yacute", "THORN", "szlig",
	"agrave", "aacute", "acirc", "atilde", "auml", "aring", "aelig", "ccedil",
	"egrave", "eacute", "ecirc", "euml", "igrave", "iacute", "icirc", "iuml",
	"eth", "ntilde", "ograve", "oacute", "ocirc", "otilde", "ouml", "divide",
	"oslash", "ugrave", "uacute", "ucirc", "uuml", "yacute", "thorn", "yuml",
}

// Names of U+0391 through U+03C9. The unassigned U+03A2 has no name.
var greekEntities = [...]string{
	"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Eta", "Theta",
	"Iota", "Kappa", "Lambda", "Mu", "Nu", "Xi", "Omicron", "Pi",
	"Rho", "", "Sigma", "Tau", "Upsilon", "Phi", "Chi", "Psi",
	"Omega", "", "", "", "", "", "", "",
	"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta",
	"iota", "kappa", "lambda", "mu", "nu", "xi", "omicron", "pi",
	"rho", "sigmaf", "sigma", "tau", "upsilon", "phi", "chi", "psi",
	"omega",
}

func init() {
	for i, name := range latin1Entities {
		xhtmlEntities[name] = string(rune(0xA0 + i))
	}
	for i, name := range greekEntities {
		if name != "" {
			xhtmlEntities[name] = string(rune(0x391 + i))
		}
	}
}
