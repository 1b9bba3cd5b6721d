package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/esparse/errors"
)

// run executes the CLI in process with an isolated home directory.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	var stdout, stderr bytes.Buffer
	a := newApp(strings.NewReader(stdin), &stdout, &stderr)
	root := newRootCmd(a)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestParseCode(t *testing.T) {
	out, _, err := run(t, "", "parse", "-c", "var a = 1;")
	require.NoError(t, err)
	assert.Contains(t, out, `"type": "Program"`)
	assert.Contains(t, out, `"type": "VariableDeclaration"`)
	assert.NotContains(t, out, `"range"`)
	assert.NotContains(t, out, `"loc"`)
}

func TestParsePrint(t *testing.T) {
	out, _, err := run(t, "", "parse", "--print", "-c", "a + b * c")
	require.NoError(t, err)
	assert.Equal(t, "(a + (b * c));\n", out)
}

func TestParseStdin(t *testing.T) {
	out, _, err := run(t, "x;", "parse", "--stdin", "--range")
	require.NoError(t, err)
	assert.Contains(t, out, `"type": "ExpressionStatement"`)
	assert.Contains(t, out, `"range"`)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.js")
	require.NoError(t, os.WriteFile(path, []byte("f();\n"), 0o644))

	out, _, err := run(t, "", "parse", "--loc", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"type": "CallExpression"`)
	assert.Contains(t, out, `"source": "`+path+`"`)
}

func TestParseMissingFile(t *testing.T) {
	_, _, err := run(t, "", "parse", filepath.Join(t.TempDir(), "missing.js"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestParseInputConflicts(t *testing.T) {
	_, _, err := run(t, "", "parse", "-c", "a", "--stdin")
	require.EqualError(t, err, "multiple input sources specified")

	_, _, err = run(t, "", "parse", "-c", "a", "file.js")
	require.EqualError(t, err, "multiple input sources specified")

	_, _, err = run(t, "", "parse")
	require.ErrorIs(t, err, errNoInput)
}

func TestParseSyntaxError(t *testing.T) {
	_, _, err := run(t, "", "parse", "-c", "var = 1")
	require.Error(t, err)
	var serr *errors.SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "Line 1: Unexpected token =", serr.Error())
	assert.Equal(t, 1, serr.LineNumber)
}

func TestParseFeatureFlag(t *testing.T) {
	_, _, err := run(t, "", "parse", "-c", "a => a")
	require.Error(t, err)

	out, _, err := run(t, "", "parse", "--feature", "arrowFunctions", "-c", "a => a")
	require.NoError(t, err)
	assert.Contains(t, out, `"type": "ArrowFunctionExpression"`)

	_, _, err = run(t, "", "parse", "--feature", "arrowFunctions=maybe", "-c", "a")
	require.EqualError(t, err, `invalid feature "arrowFunctions=maybe": maybe is not a boolean`)

	_, _, err = run(t, "", "parse", "--feature", "noSuchThing", "-c", "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "noSuchThing")
}

func TestParsePreset(t *testing.T) {
	out, _, err := run(t, "", "parse", "--preset", "es6", "-c", "`a${b}`")
	require.NoError(t, err)
	assert.Contains(t, out, `"type": "TemplateLiteral"`)

	_, _, err = run(t, "", "parse", "--preset", "es2099", "-c", "a")
	require.EqualError(t, err, `unknown preset "es2099"`)
}

func TestParseTolerant(t *testing.T) {
	out, stderr, err := run(t, "", "parse", "--tolerant", "-c", "'use strict'; with (a) b;")
	require.NoError(t, err)
	assert.Contains(t, out, `"type": "WithStatement"`)
	assert.Contains(t, out, `"errors"`)
	assert.Contains(t, stderr, "Strict mode code may not include a with statement")
}

func TestParseConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "esparse.yaml")
	config := "range: true\nfeatures:\n  jsx: true\n"
	require.NoError(t, os.WriteFile(path, []byte(config), 0o644))

	out, _, err := run(t, "", "parse", "--config", path, "-c", "<br />")
	require.NoError(t, err)
	assert.Contains(t, out, `"type": "JSXElement"`)
	assert.Contains(t, out, `"range"`)

	// Flags override the file.
	_, _, err = run(t, "", "parse", "--config", path, "--feature", "jsx=false", "-c", "<br />")
	require.Error(t, err)
}

func TestParseMissingConfigFile(t *testing.T) {
	_, _, err := run(t, "", "parse", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "-c", "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestParseEnvironment(t *testing.T) {
	t.Setenv("ESPARSE_LOC", "true")
	out, _, err := run(t, "", "parse", "-c", "a")
	require.NoError(t, err)
	assert.Contains(t, out, `"loc"`)
}

func TestTokenize(t *testing.T) {
	out, _, err := run(t, "", "tokenize", "-c", "var a = /re/g;")
	require.NoError(t, err)
	assert.Contains(t, out, `"type": "Keyword"`)
	assert.Contains(t, out, `"value": "var"`)
	assert.Contains(t, out, `"type": "RegularExpression"`)
	assert.NotContains(t, out, `"range"`)

	out, _, err = run(t, "", "tokens", "--comment", "-c", "a // note")
	require.NoError(t, err)
	assert.Contains(t, out, `"comments"`)
	assert.Contains(t, out, `"value": " note"`)
}

func TestTokenizeLexicalError(t *testing.T) {
	_, _, err := run(t, "", "tokenize", "-c", "'open")
	require.Error(t, err)
	var serr *errors.SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.True(t, serr.Lexical)
}

func TestFeatures(t *testing.T) {
	out, _, err := run(t, "", "features")
	require.NoError(t, err)
	assert.Regexp(t, `(?m)^blockBindings\s+on$`, out)
	assert.Regexp(t, `(?m)^arrowFunctions\s+off$`, out)

	out, _, err = run(t, "", "features", "es6")
	require.NoError(t, err)
	assert.Regexp(t, `(?m)^arrowFunctions\s+on$`, out)
	assert.Regexp(t, `(?m)^jsx\s+off$`, out)

	out, _, err = run(t, "", "features", "es5", "--feature", "jsx")
	require.NoError(t, err)
	assert.Regexp(t, `(?m)^blockBindings\s+off$`, out)
	assert.Regexp(t, `(?m)^jsx\s+on$`, out)

	_, _, err = run(t, "", "features", "es7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "es6-jsx")
}

func TestPrintError(t *testing.T) {
	var stderr bytes.Buffer
	a := newApp(strings.NewReader(""), &bytes.Buffer{}, &stderr)
	serr := errors.NewSyntaxError(errors.UnexpectedToken, 4, 1, 5, "=")
	serr.LineText = "var = 1"
	a.printError(serr)
	out := stderr.String()
	assert.Contains(t, out, "Unexpected token =")
	assert.Contains(t, out, "var = 1")
	assert.Contains(t, out, "^")

	stderr.Reset()
	a.printError(errNoInput)
	assert.Equal(t, errNoInput.Error()+"\n", stderr.String())
}

func TestPrintErrorHint(t *testing.T) {
	_, _, err := run(t, "", "parse", "-c", "fucntion f() {}")
	require.Error(t, err)

	var stderr bytes.Buffer
	a := newApp(strings.NewReader(""), &bytes.Buffer{}, &stderr)
	a.printError(err)
	assert.Contains(t, stderr.String(), "Unexpected identifier")
	assert.Contains(t, stderr.String(), "hint: did you mean 'function'?")
}

func TestParseFeatureFlagSpec(t *testing.T) {
	tests := []struct {
		spec string
		name string
		on   bool
		err  string
	}{
		{spec: "jsx", name: "jsx", on: true},
		{spec: "jsx=true", name: "jsx", on: true},
		{spec: "jsx=false", name: "jsx", on: false},
		{spec: " jsx = 0 ", name: "jsx", on: false},
		{spec: "=true", err: `invalid feature "=true": missing name`},
		{spec: "jsx=yes", err: `invalid feature "jsx=yes": yes is not a boolean`},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			name, on, err := parseFeatureFlag(tt.spec)
			if tt.err != "" {
				require.EqualError(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.on, on)
		})
	}
}
