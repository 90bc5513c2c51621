package parser

import (
	"fmt"

	"github.com/espresso-lang/espresso/ast"
	"github.com/espresso-lang/espresso/errors"
	"github.com/espresso-lang/espresso/internal/token"
)

// ParseExpression parses an atom and then folds every following operator
// whose precedence is at least minPrec into it.
func (p *Parser) ParseExpression(minPrec int) (ast.Expr, error) {
	lhs, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.cur.peek()
		op, ok := binaryOperator(tok)
		if !ok || op.prec < minPrec {
			return lhs, nil
		}
		// Each operator step is a nesting level of its own. Nested
		// applications such as f(f(x)) never reach a new atom frame first.
		if err := p.enter(); err != nil {
			return nil, err
		}
		if err := p.cur.consume(); err != nil {
			p.leave()
			return nil, err
		}
		switch {
		case tok.Type == token.GROUP_OPEN:
			lhs, err = p.parseApplication(tok, lhs)
		case tok.Literal == ".":
			lhs, err = p.parseAccess(tok, lhs, op.next())
		case tok.Literal == "=":
			lhs, err = p.parseAssign(lhs, op.next())
		default:
			lhs, err = p.parseBinary(tok, lhs, op.next())
		}
		p.leave()
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) parseBinary(op token.Token, lhs ast.Expr, nextPrec int) (ast.Expr, error) {
	rhs, err := p.ParseExpression(nextPrec)
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpression{
		X:     lhs,
		OpPos: op.StartPosition,
		Op:    op.Literal,
		Y:     rhs,
	}, nil
}

// parseApplication parses the arguments following a group opener. Applying
// an access expression produces a method call that keeps the receiver and
// the method name apart.
func (p *Parser) parseApplication(open token.Token, lhs ast.Expr) (ast.Expr, error) {
	args, err := p.parseArguments(open)
	if err != nil {
		return nil, err
	}
	switch callee := lhs.(type) {
	case *ast.AccessExpression:
		return &ast.MethodCallExpression{
			Open:    open.Literal,
			Object:  callee.X,
			Method:  callee.Property,
			OpenPos: open.StartPosition,
			Args:    args,
		}, nil
	default:
		return &ast.CallExpression{
			Open:    open.Literal,
			Callee:  callee,
			OpenPos: open.StartPosition,
			Args:    args,
		}, nil
	}
}

// parseAccess parses the property after ".". A bare identifier names the
// property statically; anything else is a computed property.
func (p *Parser) parseAccess(dot token.Token, lhs ast.Expr, nextPrec int) (ast.Expr, error) {
	var property ast.Expr
	if id, ok := p.cur.matchAny(token.IDENT); ok {
		if err := p.cur.consume(); err != nil {
			return nil, err
		}
		property = &ast.Literal{ValuePos: id.StartPosition, Value: id.Literal}
	} else {
		var err error
		if property, err = p.ParseExpression(nextPrec); err != nil {
			return nil, err
		}
	}
	return &ast.AccessExpression{X: lhs, Dot: dot.StartPosition, Property: property}, nil
}

// parseAssign builds the assignment matching the shape of the left hand
// side. Identifiers, property accesses and calls can be assigned to.
func (p *Parser) parseAssign(lhs ast.Expr, nextPrec int) (ast.Expr, error) {
	switch target := lhs.(type) {
	case *ast.Identifier:
		value, err := p.ParseExpression(nextPrec)
		if err != nil {
			return nil, err
		}
		return &ast.IdentAssignExpression{Target: target, Value: value}, nil
	case *ast.AccessExpression:
		value, err := p.ParseExpression(nextPrec)
		if err != nil {
			return nil, err
		}
		return &ast.AccessAssignExpression{X: target.X, Property: target.Property, Value: value}, nil
	case *ast.CallExpression:
		value, err := p.ParseExpression(nextPrec)
		if err != nil {
			return nil, err
		}
		return &ast.CallAssignExpression{
			Open:   target.Open,
			Callee: target.Callee,
			Args:   target.Args,
			Value:  value,
		}, nil
	default:
		kind := nodeDescription(target)
		return nil, NewSyntaxError(ErrorOpts{
			Code:          errors.E1004,
			Message:       fmt.Sprintf("invalid assignment target %s", kind),
			File:          p.filename,
			StartPosition: target.Pos(),
			EndPosition:   target.Pos(),
			SourceCode:    p.cur.l.GetLineText(token.Token{StartPosition: target.Pos()}),
			Got:           kind,
			Hint:          "only variables, properties and calls can be assigned",
		})
	}
}
