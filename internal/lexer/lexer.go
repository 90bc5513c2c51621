// Package lexer scans Espresso source code into tokens.
//
// Unlike a typical lexer, whitespace and comments are not discarded: they are
// returned as trivia tokens so that consumers such as the parser's cursor and
// the tokenizer façade can decide for themselves what to skip.
package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/espresso-lang/espresso/internal/token"
)

// Lexer holds our object-state.
type Lexer struct {
	// The source being scanned
	input string

	// Byte offset of the next unread character
	pos int

	// 0-indexed line of pos
	line int

	// Byte offset where the current line starts
	lineStart int

	// Position of the most recently consumed character
	last token.Position

	// Name of the file being scanned
	filename string
}

// Option is a configuration function for a Lexer.
type Option func(*Lexer)

// WithFile sets the file name for the Lexer.
func WithFile(file string) Option {
	return func(l *Lexer) {
		l.filename = file
	}
}

// New creates a Lexer instance for the given input.
func New(input string, options ...Option) *Lexer {
	l := &Lexer{input: input}
	for _, opt := range options {
		opt(l)
	}
	return l
}

// SetFilename sets the file name used in token positions.
func (l *Lexer) SetFilename(filename string) {
	l.filename = filename
}

// Filename returns the file name used in token positions.
func (l *Lexer) Filename() string {
	return l.filename
}

// Position returns the position of the next unread character.
func (l *Lexer) Position() token.Position {
	return token.Position{
		Char:      l.pos,
		LineStart: l.lineStart,
		Line:      l.line,
		Column:    l.pos - l.lineStart,
		File:      l.filename,
	}
}

// GetLineText returns the text of the line on which the token starts.
func (l *Lexer) GetLineText(tok token.Token) string {
	start := tok.StartPosition.LineStart
	if start > len(l.input) {
		return ""
	}
	rest := l.input[start:]
	if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
		rest = rest[:idx]
	}
	return strings.TrimRight(rest, "\r")
}

func (l *Lexer) peekChar(offset int) byte {
	if l.pos+offset >= len(l.input) {
		return 0
	}
	return l.input[l.pos+offset]
}

func (l *Lexer) advance() {
	l.last = l.Position()
	if l.input[l.pos] == '\n' {
		l.line++
		l.lineStart = l.pos + 1
	}
	l.pos++
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

func (l *Lexer) newToken(typ token.Type, literal string, start token.Position) token.Token {
	return token.Token{
		Type:          typ,
		Literal:       literal,
		StartPosition: start,
		EndPosition:   l.last,
	}
}

func (l *Lexer) illegal(start token.Position, format string, args ...interface{}) (token.Token, error) {
	tok := l.newToken(token.ILLEGAL, l.input[start.Char:l.pos], start)
	return tok, fmt.Errorf(format, args...)
}

// IncompleteError is returned when the input ends inside a string literal or
// block comment.
type IncompleteError struct {
	Message string
}

func (e *IncompleteError) Error() string {
	return e.Message
}

func (l *Lexer) incomplete(start token.Position, msg string) (token.Token, error) {
	tok := l.newToken(token.ILLEGAL, l.input[start.Char:l.pos], start)
	return tok, &IncompleteError{Message: msg}
}

// Next returns the next token from the input, including whitespace and
// comment tokens. At the end of the input an EOF token is returned on every
// call.
func (l *Lexer) Next() (token.Token, error) {
	start := l.Position()
	if l.pos >= len(l.input) {
		return token.Token{Type: token.EOF, StartPosition: start, EndPosition: start}, nil
	}
	c := l.input[l.pos]
	switch {
	case isWhitespace(c):
		for l.pos < len(l.input) && isWhitespace(l.input[l.pos]) {
			l.advance()
		}
		return l.newToken(token.WHITESPACE, l.input[start.Char:l.pos], start), nil
	case c == '/' && l.peekChar(1) == '/':
		for l.pos < len(l.input) && l.input[l.pos] != '\n' {
			l.advance()
		}
		return l.newToken(token.LINE_COMMENT, l.input[start.Char:l.pos], start), nil
	case c == '/' && l.peekChar(1) == '*':
		return l.readBlockComment(start)
	case token.IsLetter(c):
		for l.pos < len(l.input) && (token.IsLetter(l.input[l.pos]) || token.IsDigit(l.input[l.pos])) {
			l.advance()
		}
		word := l.input[start.Char:l.pos]
		return l.newToken(token.LookupIdentifier(word), word, start), nil
	case token.IsDigit(c):
		return l.readNumber(start)
	case c == '"' || c == '\'':
		return l.readString(start, c)
	}
	s := string(c)
	if token.IsGroupOpen(s) {
		l.advance()
		return l.newToken(token.GROUP_OPEN, s, start), nil
	}
	if token.IsGroupClose(s) {
		l.advance()
		return l.newToken(token.GROUP_CLOSE, s, start), nil
	}
	if p, ok := token.MatchPunctuator(l.input[l.pos:]); ok {
		l.advanceN(len(p))
		return l.newToken(token.PUNCTUATOR, p, start), nil
	}
	l.advance()
	return l.illegal(start, "unexpected character %q", c)
}

func (l *Lexer) readBlockComment(start token.Position) (token.Token, error) {
	l.advanceN(2) // "/*"
	for l.pos < len(l.input) {
		if l.input[l.pos] == '*' && l.peekChar(1) == '/' {
			l.advanceN(2)
			return l.newToken(token.BLOCK_COMMENT, l.input[start.Char:l.pos], start), nil
		}
		l.advance()
	}
	return l.incomplete(start, "unterminated block comment")
}

func (l *Lexer) readNumber(start token.Position) (token.Token, error) {
	if l.input[l.pos] == '0' && (l.peekChar(1) == 'x' || l.peekChar(1) == 'X') {
		l.advanceN(2)
		digits := 0
		for l.pos < len(l.input) && isHexDigit(l.input[l.pos]) {
			l.advance()
			digits++
		}
		if digits == 0 {
			return l.illegal(start, "invalid hexadecimal literal: %s", l.input[start.Char:l.pos])
		}
	} else {
		for l.pos < len(l.input) && token.IsDigit(l.input[l.pos]) {
			l.advance()
		}
	}
	if l.pos < len(l.input) && (token.IsLetter(l.input[l.pos]) || token.IsDigit(l.input[l.pos])) {
		l.advance()
		return l.illegal(start, "invalid numeric literal: %s", l.input[start.Char:l.pos])
	}
	return l.newToken(token.NUMBER, l.input[start.Char:l.pos], start), nil
}

func (l *Lexer) readString(start token.Position, quote byte) (token.Token, error) {
	l.advance() // opening quote
	var out strings.Builder
	for {
		if l.pos >= len(l.input) {
			return l.incomplete(start, "unterminated string literal")
		}
		c := l.input[l.pos]
		switch c {
		case quote:
			l.advance()
			return l.newToken(token.STRING, out.String(), start), nil
		case '\n':
			return l.illegal(start, "unterminated string literal")
		case '\\':
			l.advance()
			if err := l.readEscape(&out); err != nil {
				return l.illegal(start, "%s", err)
			}
		default:
			out.WriteByte(c)
			l.advance()
		}
	}
}

func (l *Lexer) readEscape(out *strings.Builder) error {
	if l.pos >= len(l.input) {
		return fmt.Errorf("unterminated escape sequence")
	}
	c := l.input[l.pos]
	l.advance()
	switch c {
	case 'a':
		out.WriteByte('\a')
	case 'b':
		out.WriteByte('\b')
	case 'f':
		out.WriteByte('\f')
	case 'n':
		out.WriteByte('\n')
	case 'r':
		out.WriteByte('\r')
	case 't':
		out.WriteByte('\t')
	case 'v':
		out.WriteByte('\v')
	case '0':
		out.WriteByte(0)
	case '\\', '\'', '"':
		out.WriteByte(c)
	case 'x':
		v, err := l.readHex(2)
		if err != nil {
			return err
		}
		out.WriteByte(byte(v))
	case 'u':
		v, err := l.readHex(4)
		if err != nil {
			return err
		}
		out.WriteRune(rune(v))
	default:
		return fmt.Errorf("invalid escape sequence: \\%c", c)
	}
	return nil
}

func (l *Lexer) readHex(n int) (uint64, error) {
	if l.pos+n > len(l.input) {
		return 0, fmt.Errorf("invalid escape sequence: too few hex digits")
	}
	digits := l.input[l.pos : l.pos+n]
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid escape sequence: %q is not hexadecimal", digits)
	}
	l.advanceN(n)
	return v, nil
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isHexDigit(c byte) bool {
	return token.IsDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
