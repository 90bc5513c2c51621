package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/espresso-lang/espresso/ast"
	"github.com/espresso-lang/espresso/errors"
	"github.com/espresso-lang/espresso/internal/token"
)

// atomKeywords are the keywords that begin an expression.
var atomKeywords = map[string]bool{
	token.IF:     true,
	token.VAR:    true,
	token.WHILE:  true,
	token.LET:    true,
	token.RETURN: true,
	token.FAIL:   true,
	token.NEW:    true,
	token.THIS:   true,
}

// startsAtom reports whether tok can begin an expression.
func startsAtom(tok token.Token) bool {
	switch tok.Type {
	case token.BOOLEAN, token.NIL, token.NUMBER, token.STRING, token.IDENT, token.GROUP_OPEN:
		return true
	case token.KEYWORD:
		return atomKeywords[tok.Literal]
	case token.PUNCTUATOR:
		_, ok := unaryPrecedence(tok.Literal)
		return ok
	}
	return false
}

// parseAtom parses one primary expression. It never returns a nil
// expression without an error. Each atom counts as one nesting level;
// ParseExpression counts the operator steps.
func (p *Parser) parseAtom() (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	tok := p.cur.peek()
	if !startsAtom(tok) {
		return nil, p.cur.unexpected(tok)
	}
	if err := p.cur.consume(); err != nil {
		return nil, err
	}
	pos := tok.StartPosition
	switch tok.Type {
	case token.BOOLEAN:
		return &ast.Literal{ValuePos: pos, Value: tok.Literal == "true"}, nil
	case token.NIL:
		return &ast.Literal{ValuePos: pos}, nil
	case token.NUMBER:
		return p.parseNumber(tok)
	case token.STRING:
		return &ast.Literal{ValuePos: pos, Value: tok.Literal}, nil
	case token.IDENT:
		return &ast.Identifier{NamePos: pos, Name: tok.Literal}, nil
	case token.GROUP_OPEN:
		return p.parseGroup(tok, false)
	case token.KEYWORD:
		return p.parseKeyword(tok)
	case token.PUNCTUATOR:
		prec, _ := unaryPrecedence(tok.Literal)
		operand, err := p.ParseExpression(prec)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpression{OpPos: pos, Op: tok.Literal, X: operand}, nil
	}
	return nil, p.cur.unexpected(tok)
}

func (p *Parser) parseNumber(tok token.Token) (ast.Expr, error) {
	var value int64
	var err error
	lit := tok.Literal
	if strings.HasPrefix(lit, "0x") || strings.HasPrefix(lit, "0X") {
		value, err = strconv.ParseInt(lit[2:], 16, 64)
	} else {
		value, err = strconv.ParseInt(lit, 10, 64)
	}
	if err != nil {
		return nil, p.cur.errorAt(tok, ErrorOpts{
			Code:    errors.E1005,
			Message: fmt.Sprintf("invalid numeric literal %s: out of range", lit),
			Got:     tokenDescription(tok),
		})
	}
	return &ast.Literal{ValuePos: tok.StartPosition, Value: value}, nil
}

func (p *Parser) parseKeyword(tok token.Token) (ast.Expr, error) {
	switch tok.Literal {
	case token.IF:
		return p.parseIfChain(tok)
	case token.VAR:
		return p.parseVarDeclaration(tok)
	case token.WHILE:
		return p.parseWhile(tok)
	case token.LET:
		return p.parseFunction(tok)
	case token.RETURN:
		value, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		return &ast.ReturnExpression{Return: tok.StartPosition, Value: value}, nil
	case token.FAIL:
		value, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		return &ast.FailExpression{Fail: tok.StartPosition, Value: value}, nil
	case token.NEW:
		return p.parseNew(tok)
	case token.THIS:
		return &ast.ThisExpression{This: tok.StartPosition}, nil
	}
	return nil, p.cur.unexpected(tok)
}

// parseIfChain parses a condition and body, then loops for as long as
// "else if" follows. A bare "else" adds the final clause and ends the chain.
func (p *Parser) parseIfChain(ifTok token.Token) (ast.Expr, error) {
	chain := &ast.IfChain{}
	for {
		cond, err := p.expectGroup()
		if err != nil {
			return nil, err
		}
		body, err := p.ParseBlock()
		if err != nil {
			return nil, err
		}
		chain.Clauses = append(chain.Clauses, &ast.IfClause{
			If:        ifTok.StartPosition,
			Condition: cond,
			Body:      body,
		})

		elseTok, ok := p.cur.match(token.KEYWORD, token.ELSE)
		if !ok {
			return chain, nil
		}
		if err := p.cur.consume(); err != nil {
			return nil, err
		}
		if _, ok := p.cur.match(token.KEYWORD, token.IF); ok {
			if ifTok, err = p.cur.expectKeyword(token.IF); err != nil {
				return nil, err
			}
			continue
		}
		body, err = p.ParseBlock()
		if err != nil {
			return nil, err
		}
		chain.Else = &ast.ElseClause{Else: elseTok.StartPosition, Body: body}
		return chain, nil
	}
}

// expectGroup parses a group in expression mode. It is used for the
// conditions of if and while.
func (p *Parser) expectGroup() (ast.Expr, error) {
	open, ok := p.cur.matchAny(token.GROUP_OPEN)
	if !ok {
		return nil, p.cur.unexpected(p.cur.peek())
	}
	if err := p.cur.consume(); err != nil {
		return nil, err
	}
	return p.parseGroup(open, false)
}

func (p *Parser) parseWhile(whileTok token.Token) (ast.Expr, error) {
	cond, err := p.expectGroup()
	if err != nil {
		return nil, err
	}
	body, err := p.ParseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.WhileExpression{While: whileTok.StartPosition, Condition: cond, Body: body}, nil
}

func (p *Parser) parseVarDeclaration(varTok token.Token) (ast.Expr, error) {
	decl := &ast.VariableDeclaration{Var: varTok.StartPosition, Kind: token.VAR}
	for {
		name, err := p.cur.expectAny(token.IDENT)
		if err != nil {
			return nil, err
		}
		binding := &ast.VariableBinding{
			Name: &ast.Identifier{NamePos: name.StartPosition, Name: name.Literal},
		}
		if _, ok := p.cur.match(token.PUNCTUATOR, "="); ok {
			if err := p.cur.consume(); err != nil {
				return nil, err
			}
			if binding.Init, err = p.ParseStatement(); err != nil {
				return nil, err
			}
		}
		decl.Bindings = append(decl.Bindings, binding)

		if _, ok := p.cur.match(token.PUNCTUATOR, ","); !ok {
			return decl, nil
		}
		if err := p.cur.consume(); err != nil {
			return nil, err
		}
	}
}

func (p *Parser) parseFunction(letTok token.Token) (ast.Expr, error) {
	name, err := p.parseFunctionName()
	if err != nil {
		return nil, err
	}
	params, err := p.parseParamDefs()
	if err != nil {
		return nil, err
	}
	body, err := p.ParseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionExpression{Let: letTok.StartPosition, Name: name, Params: params, Body: body}, nil
}

// parseFunctionName reads the optional name of a function. Names need not be
// identifiers so that operators can be overloaded, as in "let +(a, b) ...".
// The name is absent when the parameter list follows "let" directly.
func (p *Parser) parseFunctionName() (*ast.Identifier, error) {
	tok := p.cur.peek()
	switch tok.Type {
	case token.GROUP_OPEN:
		return nil, nil
	case token.EOF:
		return nil, p.cur.unexpected(tok)
	}
	if err := p.cur.consume(); err != nil {
		return nil, err
	}
	return &ast.Identifier{NamePos: tok.StartPosition, Name: tok.Literal}, nil
}

func (p *Parser) parseNew(newTok token.Token) (ast.Expr, error) {
	proto, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	expr := &ast.NewExpression{New: newTok.StartPosition, Prototype: proto}
	if open, ok := p.cur.matchAny(token.GROUP_OPEN); ok {
		if err := p.cur.consume(); err != nil {
			return nil, err
		}
		if expr.Args, err = p.parseArguments(open); err != nil {
			return nil, err
		}
	}
	return expr, nil
}
