package ast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/espresso-lang/espresso/internal/token"
)

// Group is a sequence of expressions separated by ";". Items may contain nil
// holes left by empty statements. A Group built with NewGroup always holds at
// least two items; the script root built with NewScript may hold any number.
type Group struct {
	Lparen token.Position // position of the opening delimiter
	Items  []Expr         // statements; nil entries are holes

	script bool
}

// NewGroup returns a Group over items. Sequences of fewer than two items are
// collapsed by the parser and are rejected here.
func NewGroup(lparen token.Position, items []Expr) (*Group, error) {
	if len(items) < 2 {
		return nil, fmt.Errorf("group requires at least 2 items, got %d", len(items))
	}
	return &Group{Lparen: lparen, Items: items}, nil
}

// NewScript returns the root Group of a parsed script.
func NewScript(pos token.Position, items []Expr) *Group {
	if items == nil {
		items = []Expr{}
	}
	return &Group{Lparen: pos, Items: items, script: true}
}

func (x *Group) exprNode() {}

// IsScript reports whether the group is the root of a script.
func (x *Group) IsScript() bool { return x.script }

func (x *Group) Pos() token.Position { return x.Lparen }

func (x *Group) items() string {
	var out bytes.Buffer
	for i, item := range x.Items {
		if i > 0 {
			out.WriteString("; ")
		}
		if item != nil {
			out.WriteString(item.String())
		}
	}
	// A trailing hole needs its own separator to survive a reparse.
	if n := len(x.Items); n > 0 && x.Items[n-1] == nil {
		out.WriteString(";")
	}
	return out.String()
}

func (x *Group) String() string {
	if x.script {
		var out bytes.Buffer
		for _, item := range x.Items {
			if item == nil {
				continue
			}
			out.WriteString(item.String())
			out.WriteString(";\n")
		}
		return out.String()
	}
	return "(" + x.items() + ")"
}

// UnaryExpression is an operator expression where the operator precedes the
// operand. Examples include "-x", "!ok", "not ok" and "::name".
type UnaryExpression struct {
	OpPos token.Position // position of operator
	Op    string         // operator: "+", "-", "!", "not", "::"
	X     Expr           // operand
}

func (x *UnaryExpression) exprNode() {}

func (x *UnaryExpression) Pos() token.Position { return x.OpPos }

func (x *UnaryExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(x.Op)
	if x.Op == "not" {
		out.WriteString(" ")
	}
	out.WriteString(operand(x.X))
	out.WriteString(")")
	return out.String()
}

// BinaryExpression is an operator expression where the operator is between
// the operands. Examples include "x + y" and "a and b".
type BinaryExpression struct {
	X     Expr           // left operand
	OpPos token.Position // position of operator
	Op    string         // operator: "+", "<=", "and", etc.
	Y     Expr           // right operand
}

func (x *BinaryExpression) exprNode() {}

func (x *BinaryExpression) Pos() token.Position { return x.X.Pos() }

func (x *BinaryExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(operand(x.X))
	out.WriteString(" " + x.Op + " ")
	out.WriteString(operand(x.Y))
	out.WriteString(")")
	return out.String()
}

// AccessExpression is a property lookup. Property is a string Literal for
// static access (a.b) or any expression for computed access (a.(b)).
type AccessExpression struct {
	X        Expr           // object
	Dot      token.Position // position of "."
	Property Expr           // property name or expression
}

func (x *AccessExpression) exprNode() {}

func (x *AccessExpression) Pos() token.Position { return x.X.Pos() }

func (x *AccessExpression) String() string {
	return receiver(x.X) + "." + propertyKey(x.Property)
}

// receiver renders the left side of an access or application.
func receiver(x Expr) string {
	switch x.(type) {
	case *AccessExpression, *CallExpression, *MethodCallExpression:
		return x.String()
	}
	if simple(x) {
		return x.String()
	}
	return "(" + x.String() + ")"
}

func arguments(open string, args []Expr) string {
	items := make([]string, 0, len(args))
	for _, arg := range args {
		items = append(items, operand(arg))
	}
	return open + strings.Join(items, ", ") + token.GroupClose(open)
}

// CallExpression applies Callee to Args using the Open delimiter, which is one
// of "(", "[" or "{".
type CallExpression struct {
	Open    string         // opening delimiter
	Callee  Expr           // function being called
	OpenPos token.Position // position of the opening delimiter
	Args    []Expr         // arguments
}

func (x *CallExpression) exprNode() {}

func (x *CallExpression) Pos() token.Position { return x.Callee.Pos() }

func (x *CallExpression) String() string {
	return receiver(x.Callee) + arguments(x.Open, x.Args)
}

// MethodCallExpression applies the Method property of Object to Args. It is
// produced when the callee of an application is an AccessExpression.
type MethodCallExpression struct {
	Open    string         // opening delimiter
	Object  Expr           // receiver
	Method  Expr           // method name or expression
	OpenPos token.Position // position of the opening delimiter
	Args    []Expr         // arguments
}

func (x *MethodCallExpression) exprNode() {}

func (x *MethodCallExpression) Pos() token.Position { return x.Object.Pos() }

func (x *MethodCallExpression) String() string {
	return receiver(x.Object) + "." + propertyKey(x.Method) + arguments(x.Open, x.Args)
}

// IdentAssignExpression assigns Value to a variable.
type IdentAssignExpression struct {
	Target *Identifier // variable being assigned
	Value  Expr        // assigned value
}

func (x *IdentAssignExpression) exprNode() {}

func (x *IdentAssignExpression) Pos() token.Position { return x.Target.Pos() }

func (x *IdentAssignExpression) String() string {
	return x.Target.Name + " = " + operand(x.Value)
}

// AccessAssignExpression assigns Value to a property of an object.
type AccessAssignExpression struct {
	X        Expr // object
	Property Expr // property name or expression
	Value    Expr // assigned value
}

func (x *AccessAssignExpression) exprNode() {}

func (x *AccessAssignExpression) Pos() token.Position { return x.X.Pos() }

func (x *AccessAssignExpression) String() string {
	return receiver(x.X) + "." + propertyKey(x.Property) + " = " + operand(x.Value)
}

// CallAssignExpression assigns Value through an application, as in
// "a[i] = v".
type CallAssignExpression struct {
	Open   string // opening delimiter
	Callee Expr   // function being called
	Args   []Expr // arguments
	Value  Expr   // assigned value
}

func (x *CallAssignExpression) exprNode() {}

func (x *CallAssignExpression) Pos() token.Position { return x.Callee.Pos() }

func (x *CallAssignExpression) String() string {
	return receiver(x.Callee) + arguments(x.Open, x.Args) + " = " + operand(x.Value)
}

// NewExpression instantiates Prototype with Args.
type NewExpression struct {
	New       token.Position // position of "new" keyword
	Prototype Expr           // prototype atom
	Args      []Expr         // constructor arguments
}

func (x *NewExpression) exprNode() {}

func (x *NewExpression) Pos() token.Position { return x.New }

func (x *NewExpression) String() string {
	proto := x.Prototype.String()
	if !simple(x.Prototype) {
		proto = "(" + proto + ")"
	}
	return "new " + proto + arguments("(", x.Args)
}
