package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/esparse/ast"
	"github.com/deepnoodle-ai/esparse/syntax"
)

func withJSX() Option {
	return WithFeatures(syntax.ES6JSX)
}

func parseJSX(t *testing.T, src string) *ast.JSXElement {
	t.Helper()
	program := parse(t, src, withJSX())
	require.Len(t, program.Body, 1)
	stmt, ok := program.Body[0].(*ast.ExpressionStatement)
	require.True(t, ok)
	el, ok := stmt.Expression.(*ast.JSXElement)
	require.True(t, ok, "expected a JSXElement, got %T", stmt.Expression)
	return el
}

func TestJSXElements(t *testing.T) {
	checkStrings(t, []stringCase{
		{"<a />", "<a />;"},
		{"<br/>", "<br />;"},
		{"<a></a>", "<a></a>;"},
		{"<a>hello</a>", "<a>hello</a>;"},
		{`<a b="1">{x}</a>`, `<a b="1">{x}</a>;`},
		{"<a b='1' c={d} />", "<a b='1' c={d} />;"},
		{"<input disabled />", "<input disabled />;"},
		{`<div data-id="7" />`, `<div data-id="7" />;`},
		{"<a {...props} b />", "<a {...props} b />;"},
		{"<ul><li>1</li><li>2</li></ul>", "<ul><li>1</li><li>2</li></ul>;"},
		{"<a:b c:d='e' />", "<a:b c:d='e' />;"},
		{"<a.b.c></a.b.c>", "<a.b.c></a.b.c>;"},
		{"<a>{}</a>", "<a>{}</a>;"},
		{"<a>{/* note */}</a>", "<a>{}</a>;"},
		{"<a>{x + 1}</a>", "<a>{(x + 1)}</a>;"},
		{"<a>{<b />}</a>", "<a>{<b />}</a>;"},
		{"x = <a />", "(x = <a />);"},
		{"f(<a />, <b />)", "f(<a />, <b />);"},
	}, withJSX())
}

func TestJSXStructure(t *testing.T) {
	el := parseJSX(t, `<a b="1" c>text{x}<d /></a>`)

	opening := el.OpeningElement
	assert.Equal(t, "a", opening.Name.(*ast.JSXIdentifier).Name)
	assert.False(t, opening.SelfClosing)
	require.Len(t, opening.Attributes, 2)

	b := opening.Attributes[0].(*ast.JSXAttribute)
	assert.Equal(t, "b", b.Name.(*ast.JSXIdentifier).Name)
	value := b.Value.(*ast.Literal)
	assert.Equal(t, "1", value.Value)
	assert.Equal(t, `"1"`, value.Raw)

	c := opening.Attributes[1].(*ast.JSXAttribute)
	assert.Nil(t, c.Value)

	require.Len(t, el.Children, 3)
	assert.Equal(t, "text", el.Children[0].(*ast.Literal).Value)
	assert.IsType(t, &ast.JSXExpressionContainer{}, el.Children[1])
	assert.IsType(t, &ast.JSXElement{}, el.Children[2])

	require.NotNil(t, el.ClosingElement)
	assert.Equal(t, "a", el.ClosingElement.Name.(*ast.JSXIdentifier).Name)

	self := parseJSX(t, "<br />")
	assert.True(t, self.OpeningElement.SelfClosing)
	assert.Nil(t, self.ClosingElement)
	assert.NotNil(t, self.Children)
	assert.Empty(t, self.Children)
	assert.NotNil(t, self.OpeningElement.Attributes)
}

func TestJSXEntities(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"<a>x &amp; y</a>", "x & y"},
		{"<a>&lt;b&gt;</a>", "<b>"},
		{"<a>&#65;&#x42;</a>", "AB"},
		{"<a>&copy;</a>", "©"},
		{"<a>&nbsp;</a>", "\u00a0"},
		{"<a>&bogus; &</a>", "&bogus; &"},
		{"<a>&averyveryverylongname;</a>", "&averyveryverylongname;"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			el := parseJSX(t, tt.input)
			require.Len(t, el.Children, 1)
			assert.Equal(t, tt.expected, el.Children[0].(*ast.Literal).Value)
		})
	}

	// Attribute values decode entities too, and keep the source as raw.
	el := parseJSX(t, `<a title="&quot;hi&quot;" />`)
	value := el.OpeningElement.Attributes[0].(*ast.JSXAttribute).Value.(*ast.Literal)
	assert.Equal(t, `"hi"`, value.Value)
	assert.Equal(t, `"&quot;hi&quot;"`, value.Raw)
}

func TestJSXErrors(t *testing.T) {
	checkErrors(t, []errorCase{
		{"<a></b>", "Expected corresponding JSX closing tag for a"},
		{"<a.b></a.c>", "Expected corresponding JSX closing tag for a.b"},
		{"<a /><b />", "Adjacent JSX elements must be wrapped in an enclosing tag"},
		{"<a b={} />", "JSX attributes must only be assigned a non-empty expression"},
		{"<a b=c />", "JSX value should be either an expression or a quoted JSX text"},
		{"<a>", "Unexpected end of input"},
	}, withJSX())

	// Markup is only recognized with the feature.
	err := parseError(t, "<a />", WithFeatures(syntax.ES6))
	assert.Equal(t, "Unexpected token <", err.Description)
}

func TestJSXTokens(t *testing.T) {
	program := parse(t, `<a b="1">hi</a>`, withJSX(), WithTokens(true))
	expected := []*ast.Token{
		tok("Punctuator", "<"),
		tok("JSXIdentifier", "a"),
		tok("JSXIdentifier", "b"),
		tok("Punctuator", "="),
		tok("JSXText", `"1"`),
		tok("Punctuator", ">"),
		tok("JSXText", "hi"),
		tok("Punctuator", "<"),
		tok("Punctuator", "/"),
		tok("JSXIdentifier", "a"),
		tok("Punctuator", ">"),
	}
	if diff := cmp.Diff(expected, program.Tokens); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestJSXLessThanStillWorks(t *testing.T) {
	// Outside a primary position "<" is still a comparison.
	program := parse(t, "a < b", withJSX())
	assert.Equal(t, "(a < b);", program.String())
}
