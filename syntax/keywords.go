package syntax

import "sort"

var futureReserved = map[string]bool{
	"class":   true,
	"enum":    true,
	"export":  true,
	"extends": true,
	"import":  true,
	"super":   true,
}

var strictReserved = map[string]bool{
	"implements": true,
	"interface":  true,
	"package":    true,
	"private":    true,
	"protected":  true,
	"public":     true,
	"static":     true,
	"yield":      true,
	"let":        true,
}

var keywords = map[string]bool{
	"if": true, "in": true, "do": true,
	"var": true, "for": true, "new": true, "try": true, "let": true,
	"this": true, "else": true, "case": true, "void": true, "with": true, "enum": true,
	"while": true, "break": true, "catch": true, "throw": true, "const": true,
	"class": true, "super": true,
	"return": true, "typeof": true, "delete": true, "switch": true, "export": true,
	"import": true,
	"default": true, "finally": true, "extends": true,
	"function": true, "continue": true, "debugger": true,
	"instanceof": true,
}

// Keywords returns the keywords of non-strict code in sorted order.
func Keywords() []string {
	names := make([]string, 0, len(keywords))
	for name := range keywords {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsFutureReservedWord reports whether id is reserved for future use in all code.
func IsFutureReservedWord(id string) bool {
	return futureReserved[id]
}

// IsStrictModeReservedWord reports whether id is reserved in strict mode code.
func IsStrictModeReservedWord(id string) bool {
	return strictReserved[id]
}

// IsRestrictedWord reports whether id may not be bound in strict mode code.
func IsRestrictedWord(id string) bool {
	return id == "eval" || id == "arguments"
}

// IsKeyword reports whether id scans as a keyword. Strict mode promotes the
// strict reserved words. "yield" is a keyword unless generators are enabled,
// in which case it is contextual outside strict mode.
func IsKeyword(id string, strict bool, features *Features) bool {
	if strict && IsStrictModeReservedWord(id) {
		return true
	}
	if id == "yield" {
		return features == nil || !features.Generators
	}
	return keywords[id]
}
