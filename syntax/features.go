package syntax

import (
	"fmt"
	"sort"
	"strings"

	"github.com/deepnoodle-ai/esparse/errors"
)

// Features controls which language extensions the scanner and parser accept.
// The zero value disables every extension; DefaultFeatures is the baseline
// used when no features are configured.
type Features struct {
	ArrowFunctions                   bool `json:"arrowFunctions" mapstructure:"arrowFunctions"`                                     // (a) => a
	BlockBindings                    bool `json:"blockBindings" mapstructure:"blockBindings"`                                       // let, const
	Destructuring                    bool `json:"destructuring" mapstructure:"destructuring"`                                       // var {a, b} = obj
	RegexUFlag                       bool `json:"regexUFlag" mapstructure:"regexUFlag"`                                             // /x/u
	RegexYFlag                       bool `json:"regexYFlag" mapstructure:"regexYFlag"`                                             // /x/y
	TemplateStrings                  bool `json:"templateStrings" mapstructure:"templateStrings"`                                   // `a${b}`
	BinaryLiterals                   bool `json:"binaryLiterals" mapstructure:"binaryLiterals"`                                     // 0b101
	OctalLiterals                    bool `json:"octalLiterals" mapstructure:"octalLiterals"`                                       // 0o17
	UnicodeCodePointEscapes          bool `json:"unicodeCodePointEscapes" mapstructure:"unicodeCodePointEscapes"`                   // "\u{1F600}"
	DefaultParams                    bool `json:"defaultParams" mapstructure:"defaultParams"`                                       // function f(a = 1) {}
	RestParams                       bool `json:"restParams" mapstructure:"restParams"`                                             // function f(...rest) {}
	ForOf                            bool `json:"forOf" mapstructure:"forOf"`                                                       // for (x of y)
	ObjectLiteralComputedProperties  bool `json:"objectLiteralComputedProperties" mapstructure:"objectLiteralComputedProperties"`   // {[k]: v}
	ObjectLiteralShorthandMethods    bool `json:"objectLiteralShorthandMethods" mapstructure:"objectLiteralShorthandMethods"`       // {m() {}}
	ObjectLiteralShorthandProperties bool `json:"objectLiteralShorthandProperties" mapstructure:"objectLiteralShorthandProperties"` // {a, b}
	ObjectLiteralDuplicateProperties bool `json:"objectLiteralDuplicateProperties" mapstructure:"objectLiteralDuplicateProperties"` // {a: 1, a: 2} in strict code
	Generators                       bool `json:"generators" mapstructure:"generators"`                                             // function* g() { yield 1 }
	Spread                           bool `json:"spread" mapstructure:"spread"`                                                     // f(...args)
	SuperInFunctions                 bool `json:"superInFunctions" mapstructure:"superInFunctions"`                                 // super.m()
	JSX                              bool `json:"jsx" mapstructure:"jsx"`                                                           // <a b="c">{d}</a>
	GlobalReturn                     bool `json:"globalReturn" mapstructure:"globalReturn"`                                         // return at top level
}

// Presets for common use cases.
var (
	// DefaultFeatures is the baseline: ES5 plus let/const and code point escapes.
	DefaultFeatures = Features{
		BlockBindings:           true,
		UnicodeCodePointEscapes: true,
	}

	// ES5 disables every extension.
	ES5 = Features{}

	// ES6 enables every ECMAScript 6 extension the parser understands.
	ES6 = Features{
		ArrowFunctions:                   true,
		BlockBindings:                    true,
		Destructuring:                    true,
		RegexUFlag:                       true,
		RegexYFlag:                       true,
		TemplateStrings:                  true,
		BinaryLiterals:                   true,
		OctalLiterals:                    true,
		UnicodeCodePointEscapes:          true,
		DefaultParams:                    true,
		RestParams:                       true,
		ForOf:                            true,
		ObjectLiteralComputedProperties:  true,
		ObjectLiteralShorthandMethods:    true,
		ObjectLiteralShorthandProperties: true,
		ObjectLiteralDuplicateProperties: true,
		Generators:                       true,
		Spread:                           true,
		SuperInFunctions:                 true,
	}

	// ES6JSX is ES6 plus the markup extension.
	ES6JSX = func() Features {
		f := ES6
		f.JSX = true
		return f
	}()
)

// Presets maps preset names to feature sets.
var Presets = map[string]Features{
	"default": DefaultFeatures,
	"es5":     ES5,
	"es6":     ES6,
	"es6-jsx": ES6JSX,
}

func (f *Features) fields() map[string]*bool {
	return map[string]*bool{
		"arrowFunctions":                   &f.ArrowFunctions,
		"blockBindings":                    &f.BlockBindings,
		"destructuring":                    &f.Destructuring,
		"regexUFlag":                       &f.RegexUFlag,
		"regexYFlag":                       &f.RegexYFlag,
		"templateStrings":                  &f.TemplateStrings,
		"binaryLiterals":                   &f.BinaryLiterals,
		"octalLiterals":                    &f.OctalLiterals,
		"unicodeCodePointEscapes":          &f.UnicodeCodePointEscapes,
		"defaultParams":                    &f.DefaultParams,
		"restParams":                       &f.RestParams,
		"forOf":                            &f.ForOf,
		"objectLiteralComputedProperties":  &f.ObjectLiteralComputedProperties,
		"objectLiteralShorthandMethods":    &f.ObjectLiteralShorthandMethods,
		"objectLiteralShorthandProperties": &f.ObjectLiteralShorthandProperties,
		"objectLiteralDuplicateProperties": &f.ObjectLiteralDuplicateProperties,
		"generators":                       &f.Generators,
		"spread":                           &f.Spread,
		"superInFunctions":                 &f.SuperInFunctions,
		"jsx":                              &f.JSX,
		"globalReturn":                     &f.GlobalReturn,
	}
}

func (f *Features) lookup(name string) (*bool, bool) {
	for key, field := range f.fields() {
		if strings.EqualFold(key, name) {
			return field, true
		}
	}
	return nil, false
}

// Set enables or disables the named feature. Names match case-insensitively
// since configuration loaders fold keys to lower case.
func (f *Features) Set(name string, on bool) error {
	field, ok := f.lookup(name)
	if !ok {
		if hint := errors.FormatSuggestions(errors.SuggestSimilar(name, Names())); hint != "" {
			return fmt.Errorf("unknown feature %q: %s", name, hint)
		}
		return fmt.Errorf("unknown feature %q", name)
	}
	*field = on
	return nil
}

// Enabled reports whether the named feature is on. Unknown names are off.
func (f *Features) Enabled(name string) bool {
	field, ok := f.lookup(name)
	return ok && *field
}

// Apply returns a copy of f with the given overrides applied.
func (f Features) Apply(overrides map[string]bool) (Features, error) {
	for name, on := range overrides {
		if err := f.Set(name, on); err != nil {
			return f, err
		}
	}
	return f, nil
}

// Names returns all feature names in sorted order.
func Names() []string {
	var f Features
	var names []string
	for name := range f.fields() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
