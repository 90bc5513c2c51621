// Package token defines the token kinds, keywords, and punctuators produced when
// lexing Espresso source code.
package token

import "fmt"

// Type describes the kind of a token as a string.
type Type string

// Position points to a particular location in an input string.
type Position struct {
	Char      int    // byte offset within the file
	LineStart int    // byte offset of the start of the current line
	Line      int    // 0-indexed line number
	Column    int    // 0-indexed column number
	File      string // filename
}

// LineNumber returns the 1-indexed line number for this position in the input.
func (p Position) LineNumber() int {
	return p.Line + 1
}

// ColumnNumber returns the 1-indexed column number for this position in the input.
func (p Position) ColumnNumber() int {
	return p.Column + 1
}

// String returns the position as "(ln: L, col: C):OFFSET".
func (p Position) String() string {
	return fmt.Sprintf("(ln: %d, col: %d):%d", p.LineNumber(), p.ColumnNumber(), p.Char)
}

// NoPos is the zero value Position, representing an unset position.
var NoPos = Position{}

// Token represents one token lexed from the input source code.
type Token struct {
	Type          Type
	Literal       string
	StartPosition Position
	EndPosition   Position
}

// Is reports whether the token has the given type and literal.
func (t Token) Is(typ Type, literal string) bool {
	return t.Type == typ && t.Literal == literal
}

// IsTrivia reports whether the token carries no syntactic meaning.
func (t Token) IsTrivia() bool {
	switch t.Type {
	case WHITESPACE, LINE_COMMENT, BLOCK_COMMENT:
		return true
	}
	return false
}

// Token types
const (
	EOF           Type = "EOF"
	ILLEGAL       Type = "ILLEGAL"
	WHITESPACE    Type = "WHITESPACE"
	LINE_COMMENT  Type = "LINE_COMMENT"
	BLOCK_COMMENT Type = "BLOCK_COMMENT"
	BOOLEAN       Type = "BOOLEAN"
	NIL           Type = "NIL"
	NUMBER        Type = "NUMBER"
	STRING        Type = "STRING"
	IDENT         Type = "IDENT"
	KEYWORD       Type = "KEYWORD"
	PUNCTUATOR    Type = "PUNCTUATOR"
	GROUP_OPEN    Type = "GROUP_OPEN"
	GROUP_CLOSE   Type = "GROUP_CLOSE"
)

// Keywords
const (
	IF     = "if"
	ELSE   = "else"
	WHILE  = "while"
	LET    = "let"
	VAR    = "var"
	RETURN = "return"
	FAIL   = "fail"
	NEW    = "new"
	THIS   = "this"
)

// Reserved words and the token type each is lexed as.
var words = map[string]Type{
	IF:      KEYWORD,
	ELSE:    KEYWORD,
	WHILE:   KEYWORD,
	LET:     KEYWORD,
	VAR:     KEYWORD,
	RETURN:  KEYWORD,
	FAIL:    KEYWORD,
	NEW:     KEYWORD,
	THIS:    KEYWORD,
	"and":   PUNCTUATOR,
	"or":    PUNCTUATOR,
	"not":   PUNCTUATOR,
	"true":  BOOLEAN,
	"false": BOOLEAN,
	"nil":   NIL,
}

// LookupIdentifier reports the token type for a word: a keyword, a word
// punctuator, a literal, or IDENT.
func LookupIdentifier(identifier string) Type {
	if tok, ok := words[identifier]; ok {
		return tok
	}
	return IDENT
}

// IsIdentifier reports whether s would be lexed as a single IDENT token.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !IsLetter(c) && !(i > 0 && IsDigit(c)) {
			return false
		}
	}
	return LookupIdentifier(s) == IDENT
}

// IsLetter reports whether c may start an identifier.
func IsLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_' || c == '$'
}

// IsDigit reports whether c is a decimal digit.
func IsDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// Symbol punctuators ordered longest first so the lexer can match greedily.
var symbolPunctuators = []string{
	"<=", ">=", "==", "!=", "::",
	"+", "-", "*", "/", "<", ">", "=", "!", ";", ",", ":", ".",
}

// Punctuators returns every punctuator the lexer can produce, symbols first
// and word operators last.
func Punctuators() []string {
	out := make([]string, 0, len(symbolPunctuators)+3)
	out = append(out, symbolPunctuators...)
	return append(out, "and", "or", "not")
}

// MatchPunctuator returns the longest symbol punctuator at the start of s.
func MatchPunctuator(s string) (string, bool) {
	for _, p := range symbolPunctuators {
		if len(s) >= len(p) && s[:len(p)] == p {
			return p, true
		}
	}
	return "", false
}

var groupPairs = map[string]string{
	"(": ")",
	"[": "]",
	"{": "}",
}

// IsGroupOpen reports whether s is one of "(", "[", "{".
func IsGroupOpen(s string) bool {
	_, ok := groupPairs[s]
	return ok
}

// IsGroupClose reports whether s is one of ")", "]", "}".
func IsGroupClose(s string) bool {
	switch s {
	case ")", "]", "}":
		return true
	}
	return false
}

// GroupClose returns the closing delimiter matching an opening one, or "" if
// open is not a group opening.
func GroupClose(open string) string {
	return groupPairs[open]
}
