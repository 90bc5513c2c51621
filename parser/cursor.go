package parser

import (
	"fmt"

	"github.com/espresso-lang/espresso/errors"
	"github.com/espresso-lang/espresso/internal/lexer"
	"github.com/espresso-lang/espresso/internal/token"
)

// cursor is a forward-only view of the token stream with a single token of
// lookahead. Whitespace and comments are skipped.
type cursor struct {
	l         *lexer.Lexer
	lookahead token.Token
}

// newCursor primes the lookahead with the first significant token.
func newCursor(l *lexer.Lexer) (*cursor, error) {
	c := &cursor{l: l}
	if err := c.consume(); err != nil {
		return nil, err
	}
	return c, nil
}

// peek returns the lookahead token without consuming it.
func (c *cursor) peek() token.Token {
	return c.lookahead
}

// consume discards the lookahead and reads the next significant token.
func (c *cursor) consume() error {
	for {
		tok, err := c.l.Next()
		if err != nil {
			_, incomplete := err.(*lexer.IncompleteError)
			c.lookahead = tok
			return c.errorAt(tok, ErrorOpts{
				Code:       errors.E1007,
				Cause:      err,
				Got:        tokenDescription(tok),
				Incomplete: incomplete,
			})
		}
		if !tok.IsTrivia() {
			c.lookahead = tok
			return nil
		}
	}
}

// match returns the lookahead if it has the given type and literal.
func (c *cursor) match(typ token.Type, literal string) (token.Token, bool) {
	if c.lookahead.Is(typ, literal) {
		return c.lookahead, true
	}
	return token.Token{}, false
}

// matchAny returns the lookahead if it has the given type.
func (c *cursor) matchAny(typ token.Type) (token.Token, bool) {
	if c.lookahead.Type == typ {
		return c.lookahead, true
	}
	return token.Token{}, false
}

// expect consumes and returns the lookahead if it has the given type and
// literal, and fails otherwise.
func (c *cursor) expect(typ token.Type, literal string) (token.Token, error) {
	tok := c.lookahead
	if !tok.Is(typ, literal) {
		expected := tokenDescription(token.Token{Type: typ, Literal: literal})
		if typ == token.GROUP_CLOSE {
			return tok, c.mismatch(errors.E1003, expected, tok,
				fmt.Sprintf("add the missing %q", literal))
		}
		return tok, c.mismatch(errors.E1002, expected, tok, "")
	}
	return tok, c.consume()
}

// expectCloser consumes the closer matching open. A missing closer is
// reported with a note pointing back at the opener.
func (c *cursor) expectCloser(open token.Token) (token.Token, error) {
	tok, err := c.expect(token.GROUP_CLOSE, token.GroupClose(open.Literal))
	if serr, ok := err.(*SyntaxError); ok && serr.Code() == errors.E1003 {
		serr.note = fmt.Sprintf("%q opened at line %d, column %d",
			open.Literal, open.StartPosition.LineNumber(), open.StartPosition.ColumnNumber())
	}
	return tok, err
}

// expectAny consumes and returns the lookahead if it has the given type.
func (c *cursor) expectAny(typ token.Type) (token.Token, error) {
	tok := c.lookahead
	if tok.Type != typ {
		expected := tokenTypeDescription(typ) + "{<any>}"
		return tok, c.mismatch(errors.E1002, expected, tok, "")
	}
	return tok, c.consume()
}

// expectKeyword consumes and returns the lookahead if it is the given
// keyword. Any other token is reported as unexpected.
func (c *cursor) expectKeyword(keyword string) (token.Token, error) {
	tok := c.lookahead
	if !tok.Is(token.KEYWORD, keyword) {
		return tok, c.unexpected(tok)
	}
	return tok, c.consume()
}

// atEnd reports whether the lookahead is the end of input.
func (c *cursor) atEnd() bool {
	return c.lookahead.Type == token.EOF
}

func (c *cursor) mismatch(code errors.ErrorCode, expected string, got token.Token, hint string) error {
	return c.errorAt(got, ErrorOpts{
		Code:     code,
		Message:  fmt.Sprintf("expected %s, got %s", expected, tokenDescription(got)),
		Expected: expected,
		Got:      tokenDescription(got),
		Hint:     hint,
	})
}

func (c *cursor) unexpected(tok token.Token) error {
	return c.errorAt(tok, ErrorOpts{
		Code:    errors.E1001,
		Message: fmt.Sprintf("unexpected token %s", tokenDescription(tok)),
		Got:     tokenDescription(tok),
	})
}

// errorAt builds a SyntaxError located at tok. Errors at the end of input
// are marked incomplete.
func (c *cursor) errorAt(tok token.Token, opts ErrorOpts) *SyntaxError {
	opts.File = c.l.Filename()
	opts.StartPosition = tok.StartPosition
	opts.EndPosition = tok.EndPosition
	opts.SourceCode = c.l.GetLineText(tok)
	if tok.Type == token.EOF {
		opts.Incomplete = true
	}
	return NewSyntaxError(opts)
}
