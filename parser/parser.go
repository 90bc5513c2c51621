// Package parser is used to generate the abstract syntax tree (AST) for an
// Espresso script.
//
// The parser combines recursive descent for atoms and keyword forms with a
// single precedence-climbing loop for operators, member access, application
// and assignment. It stops at the first syntax error; no partial tree is
// returned.
//
// A parser is created by calling New() with the source text. ParseScript
// parses the whole input; ParseStatement, ParseExpression and ParseBlock parse
// a single fragment, which is useful when embedding the parser in a REPL.
package parser

import (
	"github.com/espresso-lang/espresso/ast"
	"github.com/espresso-lang/espresso/errors"
	"github.com/espresso-lang/espresso/internal/lexer"
	"github.com/espresso-lang/espresso/internal/token"
)

// Parse the provided input as Espresso source code and return the root of
// the AST. This is shorthand way to create a Parser and then call
// ParseScript on it.
func Parse(input string, options ...Option) (*ast.Group, error) {
	p, err := New(input, options...)
	if err != nil {
		return nil, err
	}
	return p.ParseScript()
}

// Option is a configuration function for a Parser.
type Option func(*Parser)

// WithFilename sets the file name reported in errors.
func WithFilename(filename string) Option {
	return func(p *Parser) {
		p.filename = filename
	}
}

// WithMaxDepth sets the maximum nesting depth for the parser. This prevents
// runaway recursion on hostile input. Zero, the default, means no limit.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// Parser object. A Parser owns its scanner and lookahead and must not be
// shared between goroutines.
type Parser struct {
	// cur is the token cursor over the lexer
	cur *cursor

	// The filename of the input
	filename string

	// Current recursion depth
	depth int

	// Maximum allowed recursion depth; zero means unlimited
	maxDepth int
}

// New returns a Parser for the given source. The first token is read
// immediately, so a scanner error at the start of the input is returned here.
func New(input string, options ...Option) (*Parser, error) {
	p := &Parser{}
	for _, opt := range options {
		opt(p)
	}
	cur, err := newCursor(lexer.New(input, lexer.WithFile(p.filename)))
	if err != nil {
		return nil, err
	}
	p.cur = cur
	return p, nil
}

// ParseScript parses the remaining input as a sequence of statements and
// returns them as the root Group. Stray semicolons between statements are
// skipped.
func (p *Parser) ParseScript() (*ast.Group, error) {
	start := p.cur.peek().StartPosition
	var statements []ast.Expr
	for {
		if err := p.skipSemicolons(); err != nil {
			return nil, err
		}
		if p.cur.atEnd() {
			break
		}
		stmt, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return ast.NewScript(start, statements), nil
}

func (p *Parser) skipSemicolons() error {
	for {
		if _, ok := p.cur.match(token.PUNCTUATOR, ";"); !ok {
			return nil
		}
		if err := p.cur.consume(); err != nil {
			return err
		}
	}
}

// ParseStatement parses one statement: an expression that stops at the next
// ";" or ",".
func (p *Parser) ParseStatement() (ast.Expr, error) {
	return p.ParseExpression(COMPACT)
}

// ParseBlock parses the body of an if, while or let. A body that starts with
// a group opener is parsed as a sequence whatever the delimiter, so braces
// introduce a block rather than an object literal. Any other body is a single
// statement.
func (p *Parser) ParseBlock() (ast.Expr, error) {
	if open, ok := p.cur.matchAny(token.GROUP_OPEN); ok {
		if err := p.cur.consume(); err != nil {
			return nil, err
		}
		return p.parseGroup(open, true)
	}
	return p.ParseStatement()
}

// AtEnd reports whether all input has been consumed.
func (p *Parser) AtEnd() bool {
	return p.cur.atEnd()
}

// enter records one level of nesting and fails once the maximum depth is
// exceeded. Every successful call must be paired with leave.
func (p *Parser) enter() error {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		p.depth--
		err := p.cur.errorAt(p.cur.peek(), ErrorOpts{
			Code:    errors.E1006,
			Message: "maximum nesting depth exceeded",
			Got:     tokenDescription(p.cur.peek()),
		})
		// More input never fixes this one.
		err.incomplete = false
		return err
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}
