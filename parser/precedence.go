package parser

import (
	"fmt"

	"github.com/espresso-lang/espresso/internal/token"
)

// Precedence levels. Higher levels bind tighter.
const (
	SEQUENCE = 0x00         // ;
	COMPACT  = SEQUENCE + 1 // a single statement, stopping at ; and ,
	ASSIGN   = 0x01         // =
	OR       = 0x10         // or
	AND      = 0x11         // and
	COMPARE  = 0x20         // < <= > >= == !=
	SUM      = 0x30         // + -
	PRODUCT  = 0x31         // * /
	SIGN     = 0x40         // unary + -
	NOT      = 0x41         // unary ! not
	APPLY    = 0xa0         // f(x) f[x] f{x} and unary ::
	ACCESS   = 0xb1         // a.b
)

type associativity int

const (
	leftAssoc associativity = iota
	rightAssoc
)

// operator describes how a binary operator or group opener binds.
type operator struct {
	prec  int
	assoc associativity
}

// next returns the minimum precedence for the right hand side. Left
// associative operators stop at their own level so that a - b - c nests to
// the left; right associative operators keep going.
func (o operator) next() int {
	if o.assoc == leftAssoc {
		return o.prec + 1
	}
	return o.prec
}

// binaryOperators holds every token that can continue an expression.
var binaryOperators = map[string]operator{
	";":   {SEQUENCE, rightAssoc},
	"=":   {ASSIGN, leftAssoc},
	"or":  {OR, leftAssoc},
	"and": {AND, leftAssoc},
	"<":   {COMPARE, leftAssoc},
	"<=":  {COMPARE, leftAssoc},
	">":   {COMPARE, leftAssoc},
	">=":  {COMPARE, leftAssoc},
	"==":  {COMPARE, leftAssoc},
	"!=":  {COMPARE, leftAssoc},
	"+":   {SUM, leftAssoc},
	"-":   {SUM, leftAssoc},
	"*":   {PRODUCT, leftAssoc},
	"/":   {PRODUCT, leftAssoc},
	"(":   {APPLY, rightAssoc},
	"[":   {APPLY, rightAssoc},
	"{":   {APPLY, rightAssoc},
	".":   {ACCESS, leftAssoc},
}

// unaryOperators maps prefix operators to the precedence of their operand.
var unaryOperators = map[string]int{
	"+":   SIGN,
	"-":   SIGN,
	"!":   NOT,
	"not": NOT,
	"::":  APPLY,
}

// separators are punctuators that only delimit clauses.
var separators = map[string]bool{
	",": true,
	":": true,
}

func init() {
	for _, p := range token.Punctuators() {
		_, binary := binaryOperators[p]
		_, unary := unaryOperators[p]
		if !binary && !unary && !separators[p] {
			panic(fmt.Sprintf("parser: punctuator %q has no precedence", p))
		}
	}
	for _, open := range []string{"(", "[", "{"} {
		if !token.IsGroupOpen(open) {
			panic(fmt.Sprintf("parser: %q is not a group opening", open))
		}
		if _, ok := binaryOperators[open]; !ok {
			panic(fmt.Sprintf("parser: group opening %q has no precedence", open))
		}
	}
}

// binaryOperator returns the operator for tok if it can continue an
// expression. Only punctuators and group openers qualify.
func binaryOperator(tok token.Token) (operator, bool) {
	switch tok.Type {
	case token.PUNCTUATOR, token.GROUP_OPEN:
		op, ok := binaryOperators[tok.Literal]
		return op, ok
	}
	return operator{}, false
}

// unaryPrecedence returns the operand precedence of a prefix operator.
func unaryPrecedence(op string) (int, bool) {
	prec, ok := unaryOperators[op]
	return prec, ok
}
