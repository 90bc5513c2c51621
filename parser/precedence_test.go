package parser

import (
	"testing"

	"github.com/espresso-lang/espresso/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrecedenceOrdering(t *testing.T) {
	levels := []int{SEQUENCE, ASSIGN, OR, AND, COMPARE, SUM, PRODUCT, SIGN, NOT, APPLY, ACCESS}
	for i := 1; i < len(levels); i++ {
		assert.Less(t, levels[i-1], levels[i])
	}
	assert.Equal(t, SEQUENCE+1, COMPACT)
	assert.Equal(t, ASSIGN, COMPACT)
}

func TestEveryPunctuatorHasARole(t *testing.T) {
	for _, p := range token.Punctuators() {
		_, binary := binaryOperators[p]
		_, unary := unaryOperators[p]
		assert.True(t, binary || unary || separators[p], "punctuator %q", p)
	}
}

func TestBinaryOperator(t *testing.T) {
	tests := []struct {
		tok   token.Token
		prec  int
		next  int
		found bool
	}{
		{token.Token{Type: token.PUNCTUATOR, Literal: "+"}, SUM, SUM + 1, true},
		{token.Token{Type: token.PUNCTUATOR, Literal: "*"}, PRODUCT, PRODUCT + 1, true},
		{token.Token{Type: token.PUNCTUATOR, Literal: "and"}, AND, AND + 1, true},
		{token.Token{Type: token.PUNCTUATOR, Literal: "="}, ASSIGN, ASSIGN + 1, true},
		{token.Token{Type: token.PUNCTUATOR, Literal: ";"}, SEQUENCE, SEQUENCE, true},
		{token.Token{Type: token.PUNCTUATOR, Literal: "."}, ACCESS, ACCESS + 1, true},
		{token.Token{Type: token.GROUP_OPEN, Literal: "("}, APPLY, APPLY, true},
		{token.Token{Type: token.GROUP_OPEN, Literal: "["}, APPLY, APPLY, true},
		{token.Token{Type: token.GROUP_OPEN, Literal: "{"}, APPLY, APPLY, true},
		{token.Token{Type: token.PUNCTUATOR, Literal: ","}, 0, 0, false},
		{token.Token{Type: token.PUNCTUATOR, Literal: "!"}, 0, 0, false},
		{token.Token{Type: token.GROUP_CLOSE, Literal: ")"}, 0, 0, false},
		{token.Token{Type: token.STRING, Literal: "+"}, 0, 0, false},
		{token.Token{Type: token.EOF}, 0, 0, false},
	}
	for _, tt := range tests {
		op, ok := binaryOperator(tt.tok)
		require.Equal(t, tt.found, ok, "token %v", tt.tok)
		if !ok {
			continue
		}
		assert.Equal(t, tt.prec, op.prec, "token %v", tt.tok)
		assert.Equal(t, tt.next, op.next(), "token %v", tt.tok)
	}
}

func TestUnaryPrecedence(t *testing.T) {
	tests := map[string]int{
		"+":   SIGN,
		"-":   SIGN,
		"!":   NOT,
		"not": NOT,
		"::":  APPLY,
	}
	for op, expected := range tests {
		prec, ok := unaryPrecedence(op)
		assert.True(t, ok, op)
		assert.Equal(t, expected, prec, op)
	}
	_, ok := unaryPrecedence("*")
	assert.False(t, ok)
}
