package ast

import (
	"bytes"
	"strings"

	"github.com/espresso-lang/espresso/internal/token"
)

// FunctionParameter is one parameter of a FunctionExpression.
type FunctionParameter struct {
	Name    *Identifier // parameter name
	Default Expr        // default value; nil if none
}

func (x *FunctionParameter) Pos() token.Position { return x.Name.Pos() }

func (x *FunctionParameter) String() string {
	if x.Default == nil {
		return x.Name.Name
	}
	return x.Name.Name + " = " + operand(x.Default)
}

// FunctionExpression is a "let" function definition. Name is nil for
// anonymous functions and may hold a non-identifier such as "+" when the
// function overloads an operator.
type FunctionExpression struct {
	Let    token.Position       // position of "let" keyword
	Name   *Identifier          // function name; nil if anonymous
	Params []*FunctionParameter // parameters
	Body   Expr                 // function body
}

func (x *FunctionExpression) exprNode() {}

func (x *FunctionExpression) Pos() token.Position { return x.Let }

func (x *FunctionExpression) String() string {
	var out bytes.Buffer
	out.WriteString("let")
	if x.Name != nil {
		out.WriteString(" ")
		out.WriteString(functionName(x.Name.Name))
	}
	params := make([]string, 0, len(x.Params))
	for _, p := range x.Params {
		params = append(params, p.String())
	}
	out.WriteString("(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") ")
	out.WriteString(block(x.Body))
	return out.String()
}

// functionName renders a function name so that it lexes back as one token.
func functionName(name string) string {
	if token.IsIdentifier(name) || token.LookupIdentifier(name) != token.IDENT ||
		token.IsGroupClose(name) {
		return name
	}
	if p, ok := token.MatchPunctuator(name); ok && p == name {
		return name
	}
	return Quote(name)
}

// VariableBinding is one name of a VariableDeclaration.
type VariableBinding struct {
	Name *Identifier // variable name
	Init Expr        // initial value; nil if none
}

func (x *VariableBinding) Pos() token.Position { return x.Name.Pos() }

func (x *VariableBinding) String() string {
	if x.Init == nil {
		return x.Name.Name
	}
	return x.Name.Name + " = " + operand(x.Init)
}

// VariableDeclaration declares one or more variables, as in "var a = 1, b".
type VariableDeclaration struct {
	Var      token.Position     // position of "var" keyword
	Kind     string             // declaration keyword; always "var"
	Bindings []*VariableBinding // declared names in source order
}

func (x *VariableDeclaration) exprNode() {}

func (x *VariableDeclaration) Pos() token.Position { return x.Var }

func (x *VariableDeclaration) String() string {
	bindings := make([]string, 0, len(x.Bindings))
	for _, b := range x.Bindings {
		bindings = append(bindings, b.String())
	}
	return x.Kind + " " + strings.Join(bindings, ", ")
}

// IfClause is one condition and body of an IfChain.
type IfClause struct {
	If        token.Position // position of "if" keyword
	Condition Expr           // condition
	Body      Expr           // body evaluated when the condition holds
}

func (x *IfClause) Pos() token.Position { return x.If }

func (x *IfClause) String() string {
	return "if (" + x.Condition.String() + ") " + block(x.Body)
}

// ElseClause is the final unconditional body of an IfChain.
type ElseClause struct {
	Else token.Position // position of "else" keyword
	Body Expr           // body
}

func (x *ElseClause) Pos() token.Position { return x.Else }

func (x *ElseClause) String() string {
	return "else " + block(x.Body)
}

// IfChain is an if expression with any number of "else if" clauses and an
// optional trailing else.
type IfChain struct {
	Clauses []*IfClause // at least one clause
	Else    *ElseClause // nil if there is no else
}

func (x *IfChain) exprNode() {}

func (x *IfChain) Pos() token.Position { return x.Clauses[0].Pos() }

func (x *IfChain) String() string {
	var out bytes.Buffer
	for i, clause := range x.Clauses {
		if i > 0 {
			out.WriteString(" else ")
		}
		out.WriteString(clause.String())
	}
	if x.Else != nil {
		out.WriteString(" ")
		out.WriteString(x.Else.String())
	}
	return out.String()
}

// WhileExpression is a loop.
type WhileExpression struct {
	While     token.Position // position of "while" keyword
	Condition Expr           // loop condition
	Body      Expr           // loop body
}

func (x *WhileExpression) exprNode() {}

func (x *WhileExpression) Pos() token.Position { return x.While }

func (x *WhileExpression) String() string {
	return "while (" + x.Condition.String() + ") " + block(x.Body)
}

// ReturnExpression returns Value from the enclosing function.
type ReturnExpression struct {
	Return token.Position // position of "return" keyword
	Value  Expr           // returned value
}

func (x *ReturnExpression) exprNode() {}

func (x *ReturnExpression) Pos() token.Position { return x.Return }

func (x *ReturnExpression) String() string {
	return "return " + operand(x.Value)
}

// FailExpression raises Value as an error.
type FailExpression struct {
	Fail  token.Position // position of "fail" keyword
	Value Expr           // failure value
}

func (x *FailExpression) exprNode() {}

func (x *FailExpression) Pos() token.Position { return x.Fail }

func (x *FailExpression) String() string {
	return "fail " + operand(x.Value)
}
