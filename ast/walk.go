package ast

import (
	"iter"
	"reflect"
)

// Visitor defines the interface for AST traversal. If Visit returns nil,
// children of the node are not visited. Otherwise, the returned Visitor
// is used to visit children.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order. It starts by calling
// v.Visit(node); if the returned visitor w is not nil, Walk is invoked
// recursively with visitor w for each of the non-nil children of node.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	for _, child := range Children(node) {
		Walk(v, child)
	}
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses an AST in depth-first order, calling f for each node.
// If f returns false, the children of that node are skipped.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

// Preorder returns an iterator over all nodes of the tree rooted at root,
// parents before children.
func Preorder(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		var visit func(Node) bool
		visit = func(n Node) bool {
			if !yield(n) {
				return false
			}
			for _, child := range Children(n) {
				if !visit(child) {
					return false
				}
			}
			return true
		}
		visit(root)
	}
}

// Children returns the non-nil child nodes of node in source order.
func Children(node Node) []Node {
	var out []Node
	add := func(nodes ...Node) {
		for _, n := range nodes {
			if n != nil && !isNilNode(n) {
				out = append(out, n)
			}
		}
	}
	switch n := node.(type) {
	case *Program:
		for _, s := range n.Body {
			add(s)
		}

	// Statements
	case *BlockStatement:
		for _, s := range n.Body {
			add(s)
		}
	case *ExpressionStatement:
		add(n.Expression)
	case *IfStatement:
		add(n.Test, n.Consequent, n.Alternate)
	case *LabeledStatement:
		add(n.Label, n.Body)
	case *BreakStatement:
		add(n.Label)
	case *ContinueStatement:
		add(n.Label)
	case *WithStatement:
		add(n.Object, n.Body)
	case *SwitchStatement:
		add(n.Discriminant)
		for _, c := range n.Cases {
			add(c)
		}
	case *SwitchCase:
		add(n.Test)
		for _, s := range n.Consequent {
			add(s)
		}
	case *ReturnStatement:
		add(n.Argument)
	case *ThrowStatement:
		add(n.Argument)
	case *TryStatement:
		add(n.Block)
		for _, h := range n.Handlers {
			add(h)
		}
		add(n.Finalizer)
	case *CatchClause:
		add(n.Param, n.Body)
	case *WhileStatement:
		add(n.Test, n.Body)
	case *DoWhileStatement:
		add(n.Body, n.Test)
	case *ForStatement:
		add(n.Init, n.Test, n.Update, n.Body)
	case *ForInStatement:
		add(n.Left, n.Right, n.Body)
	case *ForOfStatement:
		add(n.Left, n.Right, n.Body)
	case *VariableDeclaration:
		for _, d := range n.Declarations {
			add(d)
		}
	case *VariableDeclarator:
		add(n.ID, n.Init)
	case *FunctionDeclaration:
		functionChildren(&n.Function, add)
	case *EmptyStatement, *DebuggerStatement:
		// No children

	// Expressions
	case *FunctionExpression:
		functionChildren(&n.Function, add)
	case *ArrowFunctionExpression:
		functionChildren(&n.Function, add)
	case *ArrayExpression:
		for _, e := range n.Elements {
			add(e)
		}
	case *ObjectExpression:
		for _, p := range n.Properties {
			add(p)
		}
	case *Property:
		add(n.Key, n.Value)
	case *SequenceExpression:
		for _, e := range n.Expressions {
			add(e)
		}
	case *UnaryExpression:
		add(n.Argument)
	case *UpdateExpression:
		add(n.Argument)
	case *BinaryExpression:
		add(n.Left, n.Right)
	case *LogicalExpression:
		add(n.Left, n.Right)
	case *AssignmentExpression:
		add(n.Left, n.Right)
	case *ConditionalExpression:
		add(n.Test, n.Consequent, n.Alternate)
	case *CallExpression:
		add(n.Callee)
		for _, a := range n.Arguments {
			add(a)
		}
	case *NewExpression:
		add(n.Callee)
		for _, a := range n.Arguments {
			add(a)
		}
	case *MemberExpression:
		add(n.Object, n.Property)
	case *YieldExpression:
		add(n.Argument)
	case *TemplateLiteral:
		for i, q := range n.Quasis {
			add(q)
			if i < len(n.Expressions) {
				add(n.Expressions[i])
			}
		}
	case *TaggedTemplateExpression:
		add(n.Tag, n.Quasi)
	case *SpreadElement:
		add(n.Argument)
	case *ObjectPattern:
		for _, p := range n.Properties {
			add(p)
		}
	case *ArrayPattern:
		add(n.Elements...)
	case *Identifier, *Literal, *ThisExpression, *TemplateElement:
		// No children

	// Markup
	case *JSXNamespacedName:
		add(n.Namespace, n.Name)
	case *JSXMemberExpression:
		add(n.Object, n.Property)
	case *JSXExpressionContainer:
		add(n.Expression)
	case *JSXSpreadAttribute:
		add(n.Argument)
	case *JSXAttribute:
		add(n.Name, n.Value)
	case *JSXOpeningElement:
		add(n.Name)
		add(n.Attributes...)
	case *JSXClosingElement:
		add(n.Name)
	case *JSXElement:
		add(n.OpeningElement)
		add(n.Children...)
		add(n.ClosingElement)
	case *JSXIdentifier, *JSXEmptyExpression:
		// No children
	}
	return out
}

func functionChildren(f *Function, add func(...Node)) {
	add(f.ID)
	for i, p := range f.Params {
		add(p)
		if i < len(f.Defaults) {
			add(f.Defaults[i])
		}
	}
	add(f.Rest, f.Body)
}

// isNilNode reports whether n holds a nil pointer.
func isNilNode(n Node) bool {
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
