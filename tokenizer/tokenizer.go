// Package tokenizer exposes the Espresso scanner as a stream of plain token
// records, suitable for syntax highlighters and for dumping as JSON.
package tokenizer

import (
	"fmt"

	"github.com/espresso-lang/espresso/errors"
	"github.com/espresso-lang/espresso/internal/lexer"
	"github.com/espresso-lang/espresso/internal/token"
)

// Config selects what the Tokenizer reports in addition to each token's type
// and text.
type Config struct {
	Comment bool // report line and block comments
	Range   bool // attach [start, end) byte offsets
	Loc     bool // attach start and end line/column
}

// Location is a line and column in the source. Lines count from 1 and
// columns from 0.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// SourceLocation spans a token. End is the position just past its last byte.
type SourceLocation struct {
	Start Location `json:"start"`
	End   Location `json:"end"`
}

// Entry is one reported token.
type Entry struct {
	Type  string          `json:"type"`
	Value string          `json:"value"`
	Range *[2]int         `json:"range,omitempty"`
	Loc   *SourceLocation `json:"loc,omitempty"`
}

var typeNames = map[token.Type]string{
	token.BOOLEAN:       "Boolean",
	token.NIL:           "Nil",
	token.NUMBER:        "Numeric",
	token.STRING:        "String",
	token.IDENT:         "Identifier",
	token.KEYWORD:       "Keyword",
	token.PUNCTUATOR:    "Punctuator",
	token.GROUP_OPEN:    "GroupOpen",
	token.GROUP_CLOSE:   "GroupClose",
	token.LINE_COMMENT:  "LineComment",
	token.BLOCK_COMMENT: "BlockComment",
}

// TypeName returns the name reported for a token type, or "" for types that
// are never reported.
func TypeName(t token.Type) string {
	return typeNames[t]
}

// Error is a scanner failure with the location of the offending text.
type Error struct {
	Cause      error
	Location   errors.SourceLocation
	Offset     int
	Incomplete bool
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Cause, e.Location)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ToFormatted converts the error for display with errors.Formatter.
func (e *Error) ToFormatted() *errors.FormattedError {
	return &errors.FormattedError{
		Code:      errors.E1007,
		Kind:      "syntax error",
		Message:   e.Cause.Error(),
		Filename:  e.Location.Filename,
		Line:      e.Location.Line,
		Column:    e.Location.Column,
		EndColumn: e.Location.Column,
		SourceLines: []errors.SourceLineEntry{
			{Number: e.Location.Line, Text: e.Location.Source, IsMain: true},
		},
	}
}

// Tokenizer reads entries from a source one at a time.
type Tokenizer struct {
	l      *lexer.Lexer
	input  string
	config Config
	done   bool
}

// New returns a Tokenizer over input.
func New(input string, config Config) *Tokenizer {
	return &Tokenizer{l: lexer.New(input), input: input, config: config}
}

// SetFilename sets the file name reported in errors.
func (t *Tokenizer) SetFilename(filename string) {
	t.l.SetFilename(filename)
}

// Next returns the next entry, or nil once the input is exhausted.
// Whitespace is never reported.
func (t *Tokenizer) Next() (*Entry, error) {
	for !t.done {
		tok, err := t.l.Next()
		if err != nil {
			t.done = true
			_, incomplete := err.(*lexer.IncompleteError)
			return nil, &Error{
				Cause: err,
				Location: errors.SourceLocation{
					Filename: t.l.Filename(),
					Line:     tok.StartPosition.LineNumber(),
					Column:   tok.StartPosition.ColumnNumber(),
					Source:   t.l.GetLineText(tok),
				},
				Offset:     tok.StartPosition.Char,
				Incomplete: incomplete,
			}
		}
		switch tok.Type {
		case token.EOF:
			t.done = true
			return nil, nil
		case token.WHITESPACE:
			continue
		case token.LINE_COMMENT, token.BLOCK_COMMENT:
			if !t.config.Comment {
				continue
			}
		}
		return t.entry(tok), nil
	}
	return nil, nil
}

func (t *Tokenizer) entry(tok token.Token) *Entry {
	start := tok.StartPosition.Char
	end := t.l.Position().Char
	e := &Entry{Type: TypeName(tok.Type), Value: t.input[start:end]}
	if t.config.Range {
		e.Range = &[2]int{start, end}
	}
	if t.config.Loc {
		after := t.l.Position()
		e.Loc = &SourceLocation{
			Start: Location{Line: tok.StartPosition.LineNumber(), Column: tok.StartPosition.Column},
			End:   Location{Line: after.LineNumber(), Column: after.Column},
		}
	}
	return e
}

// Tokenize returns every entry of input.
func Tokenize(input string, config Config) ([]Entry, error) {
	t := New(input, config)
	var entries []Entry
	for {
		e, err := t.Next()
		if err != nil {
			return nil, err
		}
		if e == nil {
			return entries, nil
		}
		entries = append(entries, *e)
	}
}
