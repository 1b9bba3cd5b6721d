package ast

import "strings"

// JSXIdentifier is a markup tag or attribute name.
type JSXIdentifier struct {
	*Base
	Name string `json:"name"`
}

// NewJSXIdentifier returns a JSXIdentifier node.
func NewJSXIdentifier(name string) *JSXIdentifier {
	return &JSXIdentifier{Base: newBase("JSXIdentifier"), Name: name}
}

func (x *JSXIdentifier) String() string { return x.Name }

// JSXNamespacedName is a namespace:name pair.
type JSXNamespacedName struct {
	*Base
	Namespace *JSXIdentifier `json:"namespace"`
	Name      *JSXIdentifier `json:"name"`
}

// NewJSXNamespacedName returns a JSXNamespacedName node.
func NewJSXNamespacedName(namespace, name *JSXIdentifier) *JSXNamespacedName {
	return &JSXNamespacedName{Base: newBase("JSXNamespacedName"), Namespace: namespace, Name: name}
}

func (x *JSXNamespacedName) String() string { return x.Namespace.Name + ":" + x.Name.Name }

// JSXMemberExpression is a dotted element name such as a.b.c.
type JSXMemberExpression struct {
	*Base
	Object   Node           `json:"object"`
	Property *JSXIdentifier `json:"property"`
}

// NewJSXMemberExpression returns a JSXMemberExpression node.
func NewJSXMemberExpression(object Node, property *JSXIdentifier) *JSXMemberExpression {
	return &JSXMemberExpression{Base: newBase("JSXMemberExpression"), Object: object, Property: property}
}

func (x *JSXMemberExpression) String() string { return x.Object.String() + "." + x.Property.Name }

// JSXEmptyExpression is the content of an empty {} container.
type JSXEmptyExpression struct {
	*Base
}

// NewJSXEmptyExpression returns a JSXEmptyExpression node.
func NewJSXEmptyExpression() *JSXEmptyExpression {
	return &JSXEmptyExpression{Base: newBase("JSXEmptyExpression")}
}

func (x *JSXEmptyExpression) exprNode() {}

func (x *JSXEmptyExpression) String() string { return "" }

// JSXExpressionContainer is an expression in braces inside markup.
type JSXExpressionContainer struct {
	*Base
	Expression Expr `json:"expression"`
}

// NewJSXExpressionContainer returns a JSXExpressionContainer node.
func NewJSXExpressionContainer(expression Expr) *JSXExpressionContainer {
	return &JSXExpressionContainer{Base: newBase("JSXExpressionContainer"), Expression: expression}
}

func (x *JSXExpressionContainer) String() string { return "{" + x.Expression.String() + "}" }

// JSXSpreadAttribute is {...expr} among an element's attributes.
type JSXSpreadAttribute struct {
	*Base
	Argument Expr `json:"argument"`
}

// NewJSXSpreadAttribute returns a JSXSpreadAttribute node.
func NewJSXSpreadAttribute(argument Expr) *JSXSpreadAttribute {
	return &JSXSpreadAttribute{Base: newBase("JSXSpreadAttribute"), Argument: argument}
}

func (x *JSXSpreadAttribute) String() string { return "{..." + x.Argument.String() + "}" }

// JSXAttribute is name or name=value. Value is nil, a string Literal, a
// JSXExpressionContainer or a JSXElement.
type JSXAttribute struct {
	*Base
	Name  Node `json:"name"`
	Value Node `json:"value"`
}

// NewJSXAttribute returns a JSXAttribute node.
func NewJSXAttribute(name, value Node) *JSXAttribute {
	return &JSXAttribute{Base: newBase("JSXAttribute"), Name: name, Value: value}
}

func (x *JSXAttribute) String() string {
	if x.Value == nil {
		return x.Name.String()
	}
	return x.Name.String() + "=" + x.Value.String()
}

// JSXOpeningElement is <name attrs> or <name attrs />.
type JSXOpeningElement struct {
	*Base
	Name        Node   `json:"name"`
	Attributes  []Node `json:"attributes"`
	SelfClosing bool   `json:"selfClosing"`
}

// NewJSXOpeningElement returns a JSXOpeningElement node.
func NewJSXOpeningElement(name Node, attributes []Node, selfClosing bool) *JSXOpeningElement {
	if attributes == nil {
		attributes = []Node{}
	}
	return &JSXOpeningElement{Base: newBase("JSXOpeningElement"), Name: name, Attributes: attributes, SelfClosing: selfClosing}
}

func (x *JSXOpeningElement) String() string {
	var out strings.Builder
	out.WriteString("<")
	out.WriteString(x.Name.String())
	for _, attr := range x.Attributes {
		out.WriteString(" ")
		out.WriteString(attr.String())
	}
	if x.SelfClosing {
		out.WriteString(" />")
	} else {
		out.WriteString(">")
	}
	return out.String()
}

// JSXClosingElement is </name>.
type JSXClosingElement struct {
	*Base
	Name Node `json:"name"`
}

// NewJSXClosingElement returns a JSXClosingElement node.
func NewJSXClosingElement(name Node) *JSXClosingElement {
	return &JSXClosingElement{Base: newBase("JSXClosingElement"), Name: name}
}

func (x *JSXClosingElement) String() string { return "</" + x.Name.String() + ">" }

// JSXElement is a markup element. ClosingElement is nil for self-closing
// elements. Children are text Literals, JSXExpressionContainers and
// JSXElements.
type JSXElement struct {
	*Base
	OpeningElement *JSXOpeningElement `json:"openingElement"`
	ClosingElement *JSXClosingElement `json:"closingElement"`
	Children       []Node             `json:"children"`
}

// NewJSXElement returns a JSXElement node.
func NewJSXElement(opening *JSXOpeningElement, closing *JSXClosingElement, children []Node) *JSXElement {
	if children == nil {
		children = []Node{}
	}
	return &JSXElement{Base: newBase("JSXElement"), OpeningElement: opening, ClosingElement: closing, Children: children}
}

func (x *JSXElement) exprNode() {}

func (x *JSXElement) String() string {
	var out strings.Builder
	out.WriteString(x.OpeningElement.String())
	for _, child := range x.Children {
		if lit, ok := child.(*Literal); ok {
			// Markup text renders as written.
			if s, ok := lit.Value.(string); ok {
				out.WriteString(s)
				continue
			}
		}
		out.WriteString(child.String())
	}
	if x.ClosingElement != nil {
		out.WriteString(x.ClosingElement.String())
	}
	return out.String()
}
