package parser

import (
	"fmt"

	"github.com/espresso-lang/espresso/ast"
	"github.com/espresso-lang/espresso/errors"
	"github.com/espresso-lang/espresso/internal/token"
)

// parseGroup parses the contents of a group whose opener has already been
// consumed. In block mode every opener introduces a sequence; otherwise the
// opener picks between a sequence, an array literal and an object literal.
func (p *Parser) parseGroup(open token.Token, block bool) (ast.Expr, error) {
	if block {
		return p.parseSequence(open)
	}
	switch open.Literal {
	case "(":
		return p.parseSequence(open)
	case "[":
		return p.parseArrayLiteral(open)
	case "{":
		return p.parseObjectLiteral(open)
	}
	return nil, p.cur.errorAt(open, ErrorOpts{
		Code:    errors.E1008,
		Message: fmt.Sprintf("'%s' is not a group opening", open.Literal),
		Got:     tokenDescription(open),
	})
}

// parseSequence parses statements separated by ";" up to the closer that
// matches open. The ";" directly after a statement separates it from the
// next one; any other ";" leaves a nil hole.
func (p *Parser) parseSequence(open token.Token) (ast.Expr, error) {
	closer := token.GroupClose(open.Literal)
	var items []ast.Expr
	for {
		if _, ok := p.cur.match(token.PUNCTUATOR, ";"); ok {
			if err := p.cur.consume(); err != nil {
				return nil, err
			}
			items = append(items, nil)
			continue
		}
		if _, ok := p.cur.match(token.GROUP_CLOSE, closer); ok {
			if err := p.cur.consume(); err != nil {
				return nil, err
			}
			break
		}
		if !startsAtom(p.cur.peek()) {
			// Only a statement, ";" or the closer may follow here, so
			// anything else is reported as the missing closer.
			_, err := p.cur.expectCloser(open)
			return nil, err
		}
		stmt, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		items = append(items, stmt)
		if _, ok := p.cur.match(token.PUNCTUATOR, ";"); ok {
			if err := p.cur.consume(); err != nil {
				return nil, err
			}
		}
	}

	switch len(items) {
	case 0:
		return &ast.Literal{ValuePos: open.StartPosition}, nil
	case 1:
		if items[0] == nil {
			return &ast.Literal{ValuePos: open.StartPosition}, nil
		}
		return items[0], nil
	}
	group, err := ast.NewGroup(open.StartPosition, items)
	if err != nil {
		return nil, err
	}
	return group, nil
}

// parseCommaSeparated calls element once, then again after every ",".
func (p *Parser) parseCommaSeparated(element func() error) error {
	for {
		if err := element(); err != nil {
			return err
		}
		if _, ok := p.cur.match(token.PUNCTUATOR, ","); !ok {
			return nil
		}
		if err := p.cur.consume(); err != nil {
			return err
		}
	}
}

// parseList parses comma separated statements up to the closer matching
// open. The opener has already been consumed.
func (p *Parser) parseList(open token.Token) ([]ast.Expr, error) {
	closer := token.GroupClose(open.Literal)
	var items []ast.Expr
	if _, ok := p.cur.match(token.GROUP_CLOSE, closer); ok {
		return items, p.cur.consume()
	}
	err := p.parseCommaSeparated(func() error {
		item, err := p.ParseStatement()
		if err != nil {
			return err
		}
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if _, err := p.cur.expectCloser(open); err != nil {
		return nil, err
	}
	return items, nil
}

// parseArguments parses the arguments of a call or of new.
func (p *Parser) parseArguments(open token.Token) ([]ast.Expr, error) {
	return p.parseList(open)
}

func (p *Parser) parseArrayLiteral(open token.Token) (ast.Expr, error) {
	items, err := p.parseList(open)
	if err != nil {
		return nil, err
	}
	return &ast.ArrayLiteral{Lbrack: open.StartPosition, Items: items}, nil
}

func (p *Parser) parseObjectLiteral(open token.Token) (ast.Expr, error) {
	obj := &ast.ObjectLiteral{Lbrace: open.StartPosition}
	if _, ok := p.cur.match(token.GROUP_CLOSE, "}"); ok {
		return obj, p.cur.consume()
	}
	err := p.parseCommaSeparated(func() error {
		entry, err := p.parseObjectEntry()
		if err != nil {
			return err
		}
		obj.Entries = append(obj.Entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if _, err := p.cur.expectCloser(open); err != nil {
		return nil, err
	}
	return obj, nil
}

// parseObjectEntry parses "name", "name: value" or "key: value". A bare name
// is shorthand for a property holding the variable of the same name.
func (p *Parser) parseObjectEntry() (*ast.ObjectEntry, error) {
	if id, ok := p.cur.matchAny(token.IDENT); ok {
		if err := p.cur.consume(); err != nil {
			return nil, err
		}
		entry := &ast.ObjectEntry{Key: &ast.Literal{ValuePos: id.StartPosition, Value: id.Literal}}
		if _, ok := p.cur.match(token.PUNCTUATOR, ":"); !ok {
			entry.Value = &ast.Identifier{NamePos: id.StartPosition, Name: id.Literal}
			return entry, nil
		}
		if err := p.cur.consume(); err != nil {
			return nil, err
		}
		value, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		entry.Value = value
		return entry, nil
	}

	key, err := p.ParseStatement()
	if err != nil {
		return nil, err
	}
	if _, err := p.cur.expect(token.PUNCTUATOR, ":"); err != nil {
		return nil, err
	}
	value, err := p.ParseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.ObjectEntry{Key: key, Value: value}, nil
}

// parseParamDefs parses the parameter list of a function. Any group opener
// may delimit it as long as the matching closer ends it.
func (p *Parser) parseParamDefs() ([]*ast.FunctionParameter, error) {
	open, err := p.cur.expectAny(token.GROUP_OPEN)
	if err != nil {
		return nil, err
	}
	closer := token.GroupClose(open.Literal)
	var params []*ast.FunctionParameter
	for {
		if _, ok := p.cur.match(token.GROUP_CLOSE, closer); ok {
			break
		}
		name, err := p.cur.expectAny(token.IDENT)
		if err != nil {
			return nil, err
		}
		param := &ast.FunctionParameter{
			Name: &ast.Identifier{NamePos: name.StartPosition, Name: name.Literal},
		}
		if _, ok := p.cur.match(token.PUNCTUATOR, "="); ok {
			if err := p.cur.consume(); err != nil {
				return nil, err
			}
			if param.Default, err = p.ParseStatement(); err != nil {
				return nil, err
			}
		}
		params = append(params, param)
		if _, ok := p.cur.match(token.PUNCTUATOR, ","); !ok {
			break
		}
		if err := p.cur.consume(); err != nil {
			return nil, err
		}
	}
	if _, err := p.cur.expectCloser(open); err != nil {
		return nil, err
	}
	return params, nil
}
