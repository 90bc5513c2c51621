// Package ast defines the abstract syntax tree representation of Espresso code.
//
// Espresso is expression oriented, so every node that can appear in a
// statement position is an Expr. A handful of helper parts (object entries,
// function parameters, variable bindings and if/else clauses) are Nodes owned
// by exactly one parent and never appear on their own.
package ast

import "github.com/espresso-lang/espresso/internal/token"

// Node represents a portion of the syntax tree. All nodes have position
// information indicating where they appear in the source code.
type Node interface {
	// Pos returns the position of the first character belonging to the node.
	Pos() token.Position

	// String returns Espresso source code that parses back into an
	// equivalent tree. Formatting of the original is not preserved.
	String() string
}

// Expr represents an expression node. The set of expressions is closed: only
// the types in this package implement it.
type Expr interface {
	Node
	exprNode()
}

// simple reports whether x prints as a single self-delimiting unit, so that it
// can be followed by an operator or application without changing meaning.
func simple(x Expr) bool {
	switch x.(type) {
	case *Literal, *Identifier, *ThisExpression, *Group, *ArrayLiteral,
		*ObjectLiteral, *UnaryExpression, *BinaryExpression:
		return true
	}
	return false
}

// operand renders x for use inside a larger expression. Forms that extend as
// far to the right as possible (declarations, control flow, assignments) are
// wrapped in parentheses.
func operand(x Expr) string {
	switch x.(type) {
	case *IfChain, *WhileExpression, *FunctionExpression, *VariableDeclaration,
		*ReturnExpression, *FailExpression, *NewExpression,
		*IdentAssignExpression, *AccessAssignExpression, *CallAssignExpression:
		return "(" + x.String() + ")"
	}
	return x.String()
}

// block renders a body in braces. Bodies are always parsed in sequence mode,
// so a Group body prints its items directly.
func block(x Expr) string {
	switch b := x.(type) {
	case *Group:
		return "{" + b.items() + "}"
	case *Literal:
		if b.Value == nil {
			return "{}"
		}
	}
	return "{" + x.String() + "}"
}
