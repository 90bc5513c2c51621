package ast

import (
	"bytes"
	"fmt"
	"strconv"
)

// Dump returns a structural rendering of a tree, one constructor call per
// node, e.g. BinaryExpression(+, Literal(1), Identifier(x)). Positions are
// omitted, so two trees with the same shape dump identically. Holes and
// absent optional children render as nil.
func Dump(node Node) string {
	var out bytes.Buffer
	dump(&out, node)
	return out.String()
}

// Equal reports whether two trees have the same structure and values.
func Equal(a, b Node) bool {
	return Dump(a) == Dump(b)
}

func dump(out *bytes.Buffer, node Node) {
	call := func(name string, args ...interface{}) {
		out.WriteString(name)
		out.WriteString("(")
		for i, arg := range args {
			if i > 0 {
				out.WriteString(", ")
			}
			switch a := arg.(type) {
			case nil:
				out.WriteString("nil")
			case string:
				out.WriteString(a)
			case Node:
				dump(out, a)
			case []Expr:
				dumpList(out, a)
			}
		}
		out.WriteString(")")
	}

	switch n := node.(type) {
	case nil:
		out.WriteString("nil")
	case *Literal:
		call("Literal", literalValue(n.Value))
	case *Identifier:
		call("Identifier", n.Name)
	case *ThisExpression:
		call("ThisExpression")
	case *Group:
		call("Group", n.Items)
	case *UnaryExpression:
		call("UnaryExpression", n.Op, n.X)
	case *BinaryExpression:
		call("BinaryExpression", n.Op, n.X, n.Y)
	case *AccessExpression:
		call("AccessExpression", n.X, n.Property)
	case *CallExpression:
		call("CallExpression", n.Open, n.Callee, n.Args)
	case *MethodCallExpression:
		call("MethodCallExpression", n.Open, n.Object, n.Method, n.Args)
	case *IdentAssignExpression:
		call("IdentAssignExpression", n.Target, n.Value)
	case *AccessAssignExpression:
		call("AccessAssignExpression", n.X, n.Property, n.Value)
	case *CallAssignExpression:
		call("CallAssignExpression", n.Open, n.Callee, n.Args, n.Value)
	case *ArrayLiteral:
		call("ArrayLiteral", n.Items)
	case *ObjectLiteral:
		entries := make([]Node, len(n.Entries))
		for i, e := range n.Entries {
			entries[i] = e
		}
		out.WriteString("ObjectLiteral(")
		dumpNodes(out, entries)
		out.WriteString(")")
	case *ObjectEntry:
		call("ObjectEntry", n.Key, n.Value)
	case *FunctionExpression:
		params := make([]Node, len(n.Params))
		for i, p := range n.Params {
			params[i] = p
		}
		out.WriteString("FunctionExpression(")
		dump(out, optionalIdent(n.Name))
		out.WriteString(", ")
		dumpNodes(out, params)
		out.WriteString(", ")
		dump(out, n.Body)
		out.WriteString(")")
	case *FunctionParameter:
		call("FunctionParameter", n.Name, n.Default)
	case *VariableDeclaration:
		bindings := make([]Node, len(n.Bindings))
		for i, b := range n.Bindings {
			bindings[i] = b
		}
		out.WriteString("VariableDeclaration(")
		dumpNodes(out, bindings)
		out.WriteString(", " + n.Kind + ")")
	case *VariableBinding:
		call("VariableBinding", n.Name, n.Init)
	case *IfChain:
		clauses := make([]Node, len(n.Clauses))
		for i, c := range n.Clauses {
			clauses[i] = c
		}
		out.WriteString("IfChain(")
		dumpNodes(out, clauses)
		out.WriteString(", ")
		if n.Else != nil {
			dump(out, n.Else)
		} else {
			out.WriteString("nil")
		}
		out.WriteString(")")
	case *IfClause:
		call("IfClause", n.Condition, n.Body)
	case *ElseClause:
		call("ElseClause", n.Body)
	case *WhileExpression:
		call("WhileExpression", n.Condition, n.Body)
	case *ReturnExpression:
		call("ReturnExpression", n.Value)
	case *FailExpression:
		call("FailExpression", n.Value)
	case *NewExpression:
		call("NewExpression", n.Prototype, n.Args)
	default:
		fmt.Fprintf(out, "<unknown %T>", node)
	}
}

// optionalIdent keeps a nil *Identifier from becoming a non-nil Node.
func optionalIdent(id *Identifier) Node {
	if id == nil {
		return nil
	}
	return id
}

func dumpList(out *bytes.Buffer, list []Expr) {
	out.WriteString("[")
	for i, x := range list {
		if i > 0 {
			out.WriteString(", ")
		}
		if x == nil {
			out.WriteString("nil")
		} else {
			dump(out, x)
		}
	}
	out.WriteString("]")
}

func dumpNodes(out *bytes.Buffer, list []Node) {
	out.WriteString("[")
	for i, x := range list {
		if i > 0 {
			out.WriteString(", ")
		}
		dump(out, x)
	}
	out.WriteString("]")
}

func literalValue(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
