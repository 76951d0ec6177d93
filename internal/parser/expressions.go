package parser

import (
	"strconv"

	"github.com/joaomoura/pvmc/internal/ast"
	"github.com/joaomoura/pvmc/internal/token"
)

// parseExpression parses the full precedence table: relational (at most
// one, non-associative), then additive, then multiplicative, then primary.
func (p *Parser) parseExpression() ast.Expr {
	return p.parseRelational()
}

var relOps = map[token.Kind]string{
	token.EQ: "=", token.NE: "<>",
	token.LT: "<", token.LE: "<=",
	token.GT: ">", token.GE: ">=",
}

func (p *Parser) parseRelational() ast.Expr {
	lhs := p.parseAdditive()
	if !p.ok() {
		return nil
	}
	op, isRel := relOps[p.curToken.Kind]
	if !isRel {
		return lhs
	}
	tok := p.curToken
	p.nextToken()
	rhs := p.parseAdditive()
	if !p.ok() {
		return nil
	}
	return &ast.BinOp{Token: tok, Op: op, LHS: lhs, RHS: rhs}
}

func (p *Parser) parseAdditive() ast.Expr {
	lhs := p.parseMultiplicative()
	if !p.ok() {
		return nil
	}
	for {
		var op string
		switch p.curToken.Kind {
		case token.PLUS:
			op = "+"
		case token.MINUS:
			op = "-"
		case token.OR:
			op = "or"
		default:
			return lhs
		}
		tok := p.curToken
		p.nextToken()
		rhs := p.parseMultiplicative()
		if !p.ok() {
			return nil
		}
		lhs = &ast.BinOp{Token: tok, Op: op, LHS: lhs, RHS: rhs}
	}
}

func (p *Parser) parseMultiplicative() ast.Expr {
	lhs := p.parsePrimary()
	if !p.ok() {
		return nil
	}
	for {
		var op string
		switch p.curToken.Kind {
		case token.TIMES:
			op = "*"
		case token.DIVIDE:
			op = "/"
		case token.DIV:
			op = "div"
		case token.MOD:
			op = "mod"
		case token.AND:
			op = "and"
		default:
			return lhs
		}
		tok := p.curToken
		p.nextToken()
		rhs := p.parsePrimary()
		if !p.ok() {
			return nil
		}
		lhs = &ast.BinOp{Token: tok, Op: op, LHS: lhs, RHS: rhs}
	}
}

func (p *Parser) parsePrimary() ast.Expr {
	switch p.curToken.Kind {
	case token.NUMBER:
		tok := p.curToken
		val, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			p.fail("invalid integer literal %q", tok.Literal)
			return nil
		}
		p.nextToken()
		return &ast.IntLit{Token: tok, Value: val}
	case token.STRING_LITERAL:
		tok := p.curToken
		p.nextToken()
		return &ast.StrLit{Token: tok, Value: tok.Literal}
	case token.TRUE:
		tok := p.curToken
		p.nextToken()
		return &ast.BoolLit{Token: tok, Value: true}
	case token.FALSE:
		tok := p.curToken
		p.nextToken()
		return &ast.BoolLit{Token: tok, Value: false}
	case token.LPAREN:
		p.nextToken()
		expr := p.parseExpression()
		if !p.ok() {
			return nil
		}
		if !p.expect(token.RPAREN) {
			return nil
		}
		return expr
	case token.IDENT:
		return p.parseLValue()
	}
	p.failAt(p.curToken)
	return nil
}
