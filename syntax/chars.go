// Package syntax classifies characters and words of ECMAScript source text
// and describes the optional language extensions a parse may enable.
package syntax

import "unicode"

// IsDecimalDigit reports whether r is 0-9.
func IsDecimalDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsHexDigit reports whether r is 0-9, a-f or A-F.
func IsHexDigit(r rune) bool {
	return IsDecimalDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// IsOctalDigit reports whether r is 0-7.
func IsOctalDigit(r rune) bool {
	return r >= '0' && r <= '7'
}

// IsWhiteSpace reports whether r is an ECMAScript white space code point.
func IsWhiteSpace(r rune) bool {
	switch r {
	case 0x20, 0x09, 0x0B, 0x0C, 0xA0:
		return true
	}
	if r < 0x1680 {
		return false
	}
	switch r {
	case 0x1680, 0x180E, 0x202F, 0x205F, 0x3000, 0xFEFF:
		return true
	}
	return r >= 0x2000 && r <= 0x200A
}

// IsLineTerminator reports whether r ends a line.
func IsLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == 0x2028 || r == 0x2029
}

// IsIdentifierStart reports whether r may begin an identifier.
func IsIdentifierStart(r rune) bool {
	switch {
	case r == '$' || r == '_' || r == '\\':
		return true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r < 0x80:
		return false
	}
	return unicode.In(r, unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl)
}

// IsIdentifierPart reports whether r may continue an identifier.
func IsIdentifierPart(r rune) bool {
	switch {
	case IsIdentifierStart(r):
		return true
	case IsDecimalDigit(r):
		return true
	case r < 0x80:
		return false
	case r == 0x200C || r == 0x200D:
		return true
	}
	return unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc)
}

// IsJSXIdentifierStart reports whether r may begin a markup identifier.
// Markup identifiers never contain escapes.
func IsJSXIdentifierStart(r rune) bool {
	return r != '\\' && IsIdentifierStart(r)
}

// IsJSXIdentifierPart reports whether r may continue a markup identifier,
// which additionally allows '-'.
func IsJSXIdentifierPart(r rune) bool {
	return r != '\\' && (r == '-' || IsIdentifierPart(r))
}
