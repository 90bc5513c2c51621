package parser

import (
	"fmt"

	"github.com/espresso-lang/espresso/errors"
	"github.com/espresso-lang/espresso/internal/token"
)

// ErrorOpts is a struct that holds a variety of error data.
// All fields are optional, although one of `Cause` or `Message`
// are recommended. If `Cause` is set, `Message` will be ignored.
type ErrorOpts struct {
	ErrType       string
	Code          errors.ErrorCode
	Message       string
	Cause         error
	File          string
	StartPosition token.Position
	EndPosition   token.Position
	SourceCode    string
	Expected      string
	Got           string
	Hint          string
	Note          string
	Incomplete    bool
}

// NewParserError returns a new BaseParserError populated with
// the given error data.
func NewParserError(opts ErrorOpts) *BaseParserError {
	return &BaseParserError{
		errType:       opts.ErrType,
		code:          opts.Code,
		message:       opts.Message,
		cause:         opts.Cause,
		file:          opts.File,
		startPosition: opts.StartPosition,
		endPosition:   opts.EndPosition,
		sourceCode:    opts.SourceCode,
		hint:          opts.Hint,
		note:          opts.Note,
	}
}

// ParserError is an interface that all parser errors implement.
type ParserError interface {
	Type() string
	Code() errors.ErrorCode
	Message() string
	Cause() error
	File() string
	StartPosition() token.Position
	EndPosition() token.Position
	SourceCode() string
	Error() string
	ToFormatted() *errors.FormattedError
	errors.FriendlyError
}

// BaseParserError is the simplest implementation of ParserError.
type BaseParserError struct {
	// Type of the error, e.g. "syntax error"
	errType string
	// Code identifying the kind of error
	code errors.ErrorCode
	// The error message
	message string
	// The wrapped error
	cause error
	// File where the error occurred
	file string
	// Start position of the error in the input string
	startPosition token.Position
	// End position of the error in the input string
	endPosition token.Position
	// Relevant line of source code text
	sourceCode string
	// Suggested fix, if any
	hint string
	// Related location, if any
	note string
}

func (e *BaseParserError) Error() string {
	var msg string
	if e.cause != nil {
		msg = e.cause.Error()
	} else if e.message != "" {
		msg = e.message
	}
	if e.errType != "" {
		msg = fmt.Sprintf("%s: %s", e.errType, msg)
	}
	return msg
}

func (e *BaseParserError) FriendlyErrorMessage() string {
	formatter := errors.NewFormatter(false)
	return formatter.Format(e.ToFormatted())
}

// ToFormatted converts the parser error to a FormattedError for display.
func (e *BaseParserError) ToFormatted() *errors.FormattedError {
	start := e.StartPosition()
	end := e.EndPosition()

	message := e.message
	if e.cause != nil {
		message = e.cause.Error()
	}

	endColumn := start.ColumnNumber()
	if end.Line == start.Line {
		endColumn = end.ColumnNumber()
	}

	return &errors.FormattedError{
		Code:      e.code,
		Kind:      e.errType,
		Message:   message,
		Filename:  e.file,
		Line:      start.LineNumber(),
		Column:    start.ColumnNumber(),
		EndColumn: endColumn,
		SourceLines: []errors.SourceLineEntry{
			{Number: start.LineNumber(), Text: e.sourceCode, IsMain: true},
		},
		Hint: e.hint,
		Note: e.note,
	}
}

func (e *BaseParserError) Code() errors.ErrorCode {
	return e.code
}

func (e *BaseParserError) Cause() error {
	return e.cause
}

func (e *BaseParserError) Message() string {
	return e.message
}

func (e *BaseParserError) StartPosition() token.Position {
	return e.startPosition
}

func (e *BaseParserError) EndPosition() token.Position {
	return e.endPosition
}

func (e *BaseParserError) File() string {
	return e.file
}

func (e *BaseParserError) SourceCode() string {
	return e.sourceCode
}

func (e *BaseParserError) Unwrap() error {
	return e.cause
}

func (e *BaseParserError) Type() string {
	return e.errType
}

// NewSyntaxError returns a new SyntaxError populated with the given error data
func NewSyntaxError(opts ErrorOpts) *SyntaxError {
	opts.ErrType = "syntax error"
	return &SyntaxError{
		BaseParserError: NewParserError(opts),
		expected:        opts.Expected,
		got:             opts.Got,
		incomplete:      opts.Incomplete,
	}
}

// SyntaxError is the only error the parser produces. Parsing stops at the
// first one.
type SyntaxError struct {
	*BaseParserError
	expected   string
	got        string
	incomplete bool
}

// Error returns the message followed by the position of the offending token.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %s", e.BaseParserError.Error(), e.startPosition)
}

// Expected describes the token the parser required, or "" when no single
// token would have been acceptable.
func (e *SyntaxError) Expected() string {
	return e.expected
}

// Got describes the offending token or node.
func (e *SyntaxError) Got() string {
	return e.got
}

// Incomplete reports whether the input ended before the construct being
// parsed was finished. More input may turn it into a valid program.
func (e *SyntaxError) Incomplete() bool {
	return e.incomplete
}

var typeNames = map[token.Type]string{
	token.EOF:           "EOF",
	token.ILLEGAL:       "Illegal",
	token.WHITESPACE:    "Whitespace",
	token.LINE_COMMENT:  "LineComment",
	token.BLOCK_COMMENT: "BlockComment",
	token.BOOLEAN:       "Boolean",
	token.NIL:           "Nil",
	token.NUMBER:        "Numeric",
	token.STRING:        "String",
	token.IDENT:         "Identifier",
	token.KEYWORD:       "Keyword",
	token.PUNCTUATOR:    "Punctuator",
	token.GROUP_OPEN:    "GroupOpen",
	token.GROUP_CLOSE:   "GroupClose",
}

func tokenTypeDescription(t token.Type) string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return string(t)
}

// tokenDescription renders a token as Kind{value}, e.g. Punctuator{;}.
func tokenDescription(t token.Token) string {
	return tokenTypeDescription(t.Type) + "{" + t.Literal + "}"
}

// nodeDescription names the kind of an AST node, e.g. Literal.
func nodeDescription(node interface{}) string {
	name := fmt.Sprintf("%T", node)
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[i+1:]
		}
	}
	return name
}
