package ast

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

// Identifier is a name reference or binding.
type Identifier struct {
	*Base
	Name string `json:"name"`
}

// NewIdentifier returns an Identifier node.
func NewIdentifier(name string) *Identifier {
	return &Identifier{Base: newBase("Identifier"), Name: name}
}

func (x *Identifier) exprNode()    {}
func (x *Identifier) patternNode() {}

func (x *Identifier) String() string { return x.Name }

// Literal is a null, boolean, numeric, string or regular expression literal.
// Value holds nil, bool, float64 or string; regular expressions keep a nil
// Value and carry their pattern in Regex.
type Literal struct {
	*Base
	Value  any             `json:"value"`
	Raw    string          `json:"raw"`
	Regex  *Regex          `json:"regex,omitempty"`
	Regexp *regexp2.Regexp `json:"-"`
}

// NewLiteral returns a Literal with the given decoded value and raw source.
func NewLiteral(value any, raw string) *Literal {
	return &Literal{Base: newBase("Literal"), Value: value, Raw: raw}
}

// NewRegexLiteral returns a regular expression Literal.
func NewRegexLiteral(pattern, flags, raw string, re *regexp2.Regexp) *Literal {
	return &Literal{
		Base:   newBase("Literal"),
		Raw:    raw,
		Regex:  &Regex{Pattern: pattern, Flags: flags},
		Regexp: re,
	}
}

func (x *Literal) exprNode() {}

func (x *Literal) String() string {
	if x.Raw != "" {
		return x.Raw
	}
	switch v := x.Value.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return strconv.Quote(v)
	}
	return ""
}

// MarshalJSON encodes non-finite numbers as null.
func (x *Literal) MarshalJSON() ([]byte, error) {
	type literal Literal
	value := x.Value
	if f, ok := value.(float64); ok && (math.IsInf(f, 0) || math.IsNaN(f)) {
		value = nil
	}
	return json.Marshal(struct {
		*literal
		Value any `json:"value"`
	}{(*literal)(x), value})
}

// ThisExpression is the "this" keyword.
type ThisExpression struct {
	*Base
}

// NewThisExpression returns a ThisExpression node.
func NewThisExpression() *ThisExpression {
	return &ThisExpression{Base: newBase("ThisExpression")}
}

func (x *ThisExpression) exprNode() {}

func (x *ThisExpression) String() string { return "this" }

// ArrayExpression is an array literal. Holes are nil elements.
type ArrayExpression struct {
	*Base
	Elements []Expr `json:"elements"`
}

// NewArrayExpression returns an ArrayExpression node.
func NewArrayExpression(elements []Expr) *ArrayExpression {
	if elements == nil {
		elements = []Expr{}
	}
	return &ArrayExpression{Base: newBase("ArrayExpression"), Elements: elements}
}

func (x *ArrayExpression) exprNode() {}

func (x *ArrayExpression) String() string {
	return "[" + joinElements(x.Elements) + "]"
}

// ObjectExpression is an object literal.
type ObjectExpression struct {
	*Base
	Properties []*Property `json:"properties"`
}

// NewObjectExpression returns an ObjectExpression node.
func NewObjectExpression(properties []*Property) *ObjectExpression {
	if properties == nil {
		properties = []*Property{}
	}
	return &ObjectExpression{Base: newBase("ObjectExpression"), Properties: properties}
}

func (x *ObjectExpression) exprNode() {}

func (x *ObjectExpression) String() string {
	return "{" + joinNodes(x.Properties, ", ") + "}"
}

// Property is a member of an object literal or object pattern. Kind is
// "init", "get" or "set".
type Property struct {
	*Base
	Key       Expr   `json:"key"`
	Value     Node   `json:"value"`
	Kind      string `json:"kind"`
	Method    bool   `json:"method"`
	Shorthand bool   `json:"shorthand"`
	Computed  bool   `json:"computed"`
}

// NewProperty returns a Property node.
func NewProperty(kind string, key Expr, value Node, method, shorthand, computed bool) *Property {
	return &Property{
		Base:      newBase("Property"),
		Key:       key,
		Value:     value,
		Kind:      kind,
		Method:    method,
		Shorthand: shorthand,
		Computed:  computed,
	}
}

func (x *Property) String() string {
	key := x.Key.String()
	if x.Computed {
		key = "[" + key + "]"
	}
	switch {
	case x.Kind == "get" || x.Kind == "set":
		return x.Kind + " " + key + functionTail(x.Value)
	case x.Method:
		return key + functionTail(x.Value)
	case x.Shorthand:
		return key
	}
	return key + ": " + x.Value.String()
}

// Function holds the fields shared by function declarations, function
// expressions and arrow functions. Body is a *BlockStatement, or an Expr for
// arrow functions with Expression set.
type Function struct {
	ID         *Identifier `json:"id"`
	Params     []Pattern   `json:"params"`
	Defaults   []Expr      `json:"defaults"`
	Body       Node        `json:"body"`
	Rest       *Identifier `json:"rest"`
	Generator  bool        `json:"generator"`
	Expression bool        `json:"expression"`
}

func newFunction(id *Identifier, params []Pattern, defaults []Expr, body Node, rest *Identifier, generator, expression bool) Function {
	if params == nil {
		params = []Pattern{}
	}
	if defaults == nil {
		defaults = []Expr{}
	}
	return Function{
		ID:         id,
		Params:     params,
		Defaults:   defaults,
		Body:       body,
		Rest:       rest,
		Generator:  generator,
		Expression: expression,
	}
}

func (f *Function) paramList() string {
	parts := make([]string, 0, len(f.Params)+1)
	for i, p := range f.Params {
		s := p.String()
		if i < len(f.Defaults) && f.Defaults[i] != nil {
			s += " = " + f.Defaults[i].String()
		}
		parts = append(parts, s)
	}
	if f.Rest != nil {
		parts = append(parts, "..."+f.Rest.Name)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (f *Function) header(keyword string) string {
	var out strings.Builder
	out.WriteString(keyword)
	if f.Generator {
		out.WriteString("*")
	}
	if f.ID != nil {
		out.WriteString(" ")
		out.WriteString(f.ID.Name)
	}
	out.WriteString(f.paramList())
	out.WriteString(" ")
	out.WriteString(f.Body.String())
	return out.String()
}

// functionTail renders the parameters and body of a method value.
func functionTail(n Node) string {
	if fn, ok := n.(*FunctionExpression); ok {
		return fn.paramList() + " " + fn.Body.String()
	}
	return n.String()
}

// FunctionExpression is a function used as a value.
type FunctionExpression struct {
	*Base
	Function
}

// NewFunctionExpression returns a FunctionExpression node.
func NewFunctionExpression(id *Identifier, params []Pattern, defaults []Expr, body Node, rest *Identifier, generator, expression bool) *FunctionExpression {
	return &FunctionExpression{
		Base:     newBase("FunctionExpression"),
		Function: newFunction(id, params, defaults, body, rest, generator, expression),
	}
}

func (x *FunctionExpression) exprNode() {}

func (x *FunctionExpression) String() string { return x.header("function") }

// ArrowFunctionExpression is an arrow function.
type ArrowFunctionExpression struct {
	*Base
	Function
}

// NewArrowFunctionExpression returns an ArrowFunctionExpression node.
func NewArrowFunctionExpression(params []Pattern, defaults []Expr, body Node, rest *Identifier, expression bool) *ArrowFunctionExpression {
	return &ArrowFunctionExpression{
		Base:     newBase("ArrowFunctionExpression"),
		Function: newFunction(nil, params, defaults, body, rest, false, expression),
	}
}

func (x *ArrowFunctionExpression) exprNode() {}

func (x *ArrowFunctionExpression) String() string {
	return x.paramList() + " => " + x.Body.String()
}

// SequenceExpression is a comma-separated list of expressions.
type SequenceExpression struct {
	*Base
	Expressions []Expr `json:"expressions"`
}

// NewSequenceExpression returns a SequenceExpression node.
func NewSequenceExpression(expressions []Expr) *SequenceExpression {
	return &SequenceExpression{Base: newBase("SequenceExpression"), Expressions: expressions}
}

func (x *SequenceExpression) exprNode() {}

func (x *SequenceExpression) String() string {
	return "(" + joinNodes(x.Expressions, ", ") + ")"
}

// UnaryExpression is a prefix operator other than ++ and --.
type UnaryExpression struct {
	*Base
	Operator string `json:"operator"`
	Argument Expr   `json:"argument"`
	Prefix   bool   `json:"prefix"`
}

// UpdateExpression is a prefix or postfix ++ or --.
type UpdateExpression struct {
	*Base
	Operator string `json:"operator"`
	Argument Expr   `json:"argument"`
	Prefix   bool   `json:"prefix"`
}

// NewUnaryExpression returns an UpdateExpression for prefix ++ and --, and a
// UnaryExpression for every other operator.
func NewUnaryExpression(operator string, argument Expr) Expr {
	if operator == "++" || operator == "--" {
		return &UpdateExpression{Base: newBase("UpdateExpression"), Operator: operator, Argument: argument, Prefix: true}
	}
	return &UnaryExpression{Base: newBase("UnaryExpression"), Operator: operator, Argument: argument, Prefix: true}
}

// NewPostfixExpression returns a postfix UpdateExpression.
func NewPostfixExpression(operator string, argument Expr) *UpdateExpression {
	return &UpdateExpression{Base: newBase("UpdateExpression"), Operator: operator, Argument: argument}
}

func (x *UnaryExpression) exprNode()  {}
func (x *UpdateExpression) exprNode() {}

func (x *UnaryExpression) String() string {
	op := x.Operator
	if op == "typeof" || op == "void" || op == "delete" {
		op += " "
	}
	return "(" + op + x.Argument.String() + ")"
}

func (x *UpdateExpression) String() string {
	if x.Prefix {
		return "(" + x.Operator + x.Argument.String() + ")"
	}
	return "(" + x.Argument.String() + x.Operator + ")"
}

// BinaryExpression is an arithmetic, bitwise, relational or equality
// operation.
type BinaryExpression struct {
	*Base
	Operator string `json:"operator"`
	Left     Expr   `json:"left"`
	Right    Expr   `json:"right"`
}

// LogicalExpression is a || or && operation.
type LogicalExpression struct {
	*Base
	Operator string `json:"operator"`
	Left     Expr   `json:"left"`
	Right    Expr   `json:"right"`
}

// NewBinaryExpression returns a LogicalExpression for || and &&, and a
// BinaryExpression otherwise.
func NewBinaryExpression(operator string, left, right Expr) Expr {
	if operator == "||" || operator == "&&" {
		return &LogicalExpression{Base: newBase("LogicalExpression"), Operator: operator, Left: left, Right: right}
	}
	return &BinaryExpression{Base: newBase("BinaryExpression"), Operator: operator, Left: left, Right: right}
}

func (x *BinaryExpression) exprNode()  {}
func (x *LogicalExpression) exprNode() {}

func (x *BinaryExpression) String() string {
	return "(" + x.Left.String() + " " + x.Operator + " " + x.Right.String() + ")"
}

func (x *LogicalExpression) String() string {
	return "(" + x.Left.String() + " " + x.Operator + " " + x.Right.String() + ")"
}

// AssignmentExpression assigns to a pattern or member expression.
type AssignmentExpression struct {
	*Base
	Operator string `json:"operator"`
	Left     Node   `json:"left"`
	Right    Expr   `json:"right"`
}

// NewAssignmentExpression returns an AssignmentExpression node.
func NewAssignmentExpression(operator string, left Node, right Expr) *AssignmentExpression {
	return &AssignmentExpression{Base: newBase("AssignmentExpression"), Operator: operator, Left: left, Right: right}
}

func (x *AssignmentExpression) exprNode() {}

func (x *AssignmentExpression) String() string {
	return "(" + x.Left.String() + " " + x.Operator + " " + x.Right.String() + ")"
}

// ConditionalExpression is the ternary operator.
type ConditionalExpression struct {
	*Base
	Test       Expr `json:"test"`
	Consequent Expr `json:"consequent"`
	Alternate  Expr `json:"alternate"`
}

// NewConditionalExpression returns a ConditionalExpression node.
func NewConditionalExpression(test, consequent, alternate Expr) *ConditionalExpression {
	return &ConditionalExpression{Base: newBase("ConditionalExpression"), Test: test, Consequent: consequent, Alternate: alternate}
}

func (x *ConditionalExpression) exprNode() {}

func (x *ConditionalExpression) String() string {
	return "(" + x.Test.String() + " ? " + x.Consequent.String() + " : " + x.Alternate.String() + ")"
}

// CallExpression is a function call.
type CallExpression struct {
	*Base
	Callee    Expr   `json:"callee"`
	Arguments []Expr `json:"arguments"`
}

// NewCallExpression returns a CallExpression node.
func NewCallExpression(callee Expr, args []Expr) *CallExpression {
	if args == nil {
		args = []Expr{}
	}
	return &CallExpression{Base: newBase("CallExpression"), Callee: callee, Arguments: args}
}

func (x *CallExpression) exprNode() {}

func (x *CallExpression) String() string {
	return x.Callee.String() + "(" + joinNodes(x.Arguments, ", ") + ")"
}

// NewExpression is a constructor call.
type NewExpression struct {
	*Base
	Callee    Expr   `json:"callee"`
	Arguments []Expr `json:"arguments"`
}

// NewNewExpression returns a NewExpression node.
func NewNewExpression(callee Expr, args []Expr) *NewExpression {
	if args == nil {
		args = []Expr{}
	}
	return &NewExpression{Base: newBase("NewExpression"), Callee: callee, Arguments: args}
}

func (x *NewExpression) exprNode() {}

func (x *NewExpression) String() string {
	return "new " + x.Callee.String() + "(" + joinNodes(x.Arguments, ", ") + ")"
}

// MemberExpression is a property access, a.b or a[b].
type MemberExpression struct {
	*Base
	Computed bool `json:"computed"`
	Object   Expr `json:"object"`
	Property Expr `json:"property"`
}

// NewMemberExpression returns a MemberExpression. accessor is "." or "[".
func NewMemberExpression(accessor string, object, property Expr) *MemberExpression {
	return &MemberExpression{Base: newBase("MemberExpression"), Computed: accessor == "[", Object: object, Property: property}
}

func (x *MemberExpression) exprNode()    {}
func (x *MemberExpression) patternNode() {}

func (x *MemberExpression) String() string {
	if x.Computed {
		return x.Object.String() + "[" + x.Property.String() + "]"
	}
	return x.Object.String() + "." + x.Property.String()
}

// YieldExpression is a yield inside a generator.
type YieldExpression struct {
	*Base
	Argument Expr `json:"argument"`
	Delegate bool `json:"delegate"`
}

// NewYieldExpression returns a YieldExpression node.
func NewYieldExpression(argument Expr, delegate bool) *YieldExpression {
	return &YieldExpression{Base: newBase("YieldExpression"), Argument: argument, Delegate: delegate}
}

func (x *YieldExpression) exprNode() {}

func (x *YieldExpression) String() string {
	out := "yield"
	if x.Delegate {
		out += "*"
	}
	if x.Argument != nil {
		out += " " + x.Argument.String()
	}
	return "(" + out + ")"
}

// TemplateValue holds the cooked and raw text of a template piece.
type TemplateValue struct {
	Raw    string `json:"raw"`
	Cooked string `json:"cooked"`
}

// TemplateElement is one literal piece of a template.
type TemplateElement struct {
	*Base
	Value TemplateValue `json:"value"`
	Tail  bool          `json:"tail"`
}

// NewTemplateElement returns a TemplateElement node.
func NewTemplateElement(value TemplateValue, tail bool) *TemplateElement {
	return &TemplateElement{Base: newBase("TemplateElement"), Value: value, Tail: tail}
}

func (x *TemplateElement) String() string { return x.Value.Raw }

// TemplateLiteral is a template string. Quasis and Expressions alternate,
// starting and ending with a quasi.
type TemplateLiteral struct {
	*Base
	Quasis      []*TemplateElement `json:"quasis"`
	Expressions []Expr             `json:"expressions"`
}

// NewTemplateLiteral returns a TemplateLiteral node.
func NewTemplateLiteral(quasis []*TemplateElement, expressions []Expr) *TemplateLiteral {
	if expressions == nil {
		expressions = []Expr{}
	}
	return &TemplateLiteral{Base: newBase("TemplateLiteral"), Quasis: quasis, Expressions: expressions}
}

func (x *TemplateLiteral) exprNode() {}

func (x *TemplateLiteral) String() string {
	var out strings.Builder
	out.WriteString("`")
	for i, q := range x.Quasis {
		out.WriteString(q.Value.Raw)
		if i < len(x.Expressions) {
			out.WriteString("${")
			out.WriteString(x.Expressions[i].String())
			out.WriteString("}")
		}
	}
	out.WriteString("`")
	return out.String()
}

// TaggedTemplateExpression is a template preceded by a tag expression.
type TaggedTemplateExpression struct {
	*Base
	Tag   Expr             `json:"tag"`
	Quasi *TemplateLiteral `json:"quasi"`
}

// NewTaggedTemplateExpression returns a TaggedTemplateExpression node.
func NewTaggedTemplateExpression(tag Expr, quasi *TemplateLiteral) *TaggedTemplateExpression {
	return &TaggedTemplateExpression{Base: newBase("TaggedTemplateExpression"), Tag: tag, Quasi: quasi}
}

func (x *TaggedTemplateExpression) exprNode() {}

func (x *TaggedTemplateExpression) String() string {
	return x.Tag.String() + x.Quasi.String()
}

// SpreadElement is ...argument in an array literal, call or array pattern.
type SpreadElement struct {
	*Base
	Argument Node `json:"argument"`
}

// NewSpreadElement returns a SpreadElement node.
func NewSpreadElement(argument Node) *SpreadElement {
	return &SpreadElement{Base: newBase("SpreadElement"), Argument: argument}
}

func (x *SpreadElement) exprNode() {}

func (x *SpreadElement) String() string { return "..." + x.Argument.String() }

// ObjectPattern is an object destructuring target.
type ObjectPattern struct {
	*Base
	Properties []*Property `json:"properties"`
}

// NewObjectPattern returns an ObjectPattern node. A non-nil base is reused,
// carrying over the metadata of the node the pattern was converted from.
func NewObjectPattern(base *Base, properties []*Property) *ObjectPattern {
	if base == nil {
		base = newBase("")
	}
	base.NodeType = "ObjectPattern"
	if properties == nil {
		properties = []*Property{}
	}
	return &ObjectPattern{Base: base, Properties: properties}
}

func (x *ObjectPattern) patternNode() {}

func (x *ObjectPattern) String() string {
	return "{" + joinNodes(x.Properties, ", ") + "}"
}

// ArrayPattern is an array destructuring target. Holes are nil elements.
type ArrayPattern struct {
	*Base
	Elements []Node `json:"elements"`
}

// NewArrayPattern returns an ArrayPattern node. A non-nil base is reused,
// carrying over the metadata of the node the pattern was converted from.
func NewArrayPattern(base *Base, elements []Node) *ArrayPattern {
	if base == nil {
		base = newBase("")
	}
	base.NodeType = "ArrayPattern"
	if elements == nil {
		elements = []Node{}
	}
	return &ArrayPattern{Base: base, Elements: elements}
}

func (x *ArrayPattern) patternNode() {}

func (x *ArrayPattern) String() string {
	return "[" + joinElements(x.Elements) + "]"
}

// joinElements renders array elements with holes left empty. A trailing hole
// needs its own comma, since "[a, ]" would read back as one element.
func joinElements[N Node](elements []N) string {
	out := joinNodes(elements, ", ")
	if n := len(elements); n > 0 {
		if last := Node(elements[n-1]); last == nil || isNilNode(last) {
			out += ","
		}
	}
	return out
}

// joinNodes renders nodes separated by sep. Nil entries render empty.
func joinNodes[N Node](nodes []N, sep string) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		if node := Node(n); node != nil && !isNilNode(node) {
			parts[i] = n.String()
		}
	}
	return strings.Join(parts, sep)
}
