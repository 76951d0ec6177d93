package parser

import (
	"github.com/joaomoura/pvmc/internal/ast"
	"github.com/joaomoura/pvmc/internal/token"
)

// parseCompoundStmts parses "BEGIN statements END", returning the
// statement list. Used both for the program's main block and for
// procedure bodies.
func (p *Parser) parseCompoundStmts() []ast.Stmt {
	if !p.expect(token.BEGIN) {
		return nil
	}

	var stmts []ast.Stmt
	for {
		stmt := p.parseStatement()
		if !p.ok() {
			return stmts
		}
		stmts = append(stmts, stmt)

		if p.curToken.Kind == token.SEMICOLON {
			p.nextToken()
			continue
		}
		break
	}

	if !p.expect(token.END) {
		return stmts
	}
	return stmts
}

// statementEnd reports whether the current token ends a statement without
// starting one, so parseStatement can yield an Empty node in place.
func (p *Parser) statementEnd() bool {
	switch p.curToken.Kind {
	case token.SEMICOLON, token.END, token.ELSE, token.EOF:
		return true
	}
	return false
}

func (p *Parser) parseStatement() ast.Stmt {
	if p.statementEnd() {
		return &ast.Empty{Token: p.curToken}
	}

	switch p.curToken.Kind {
	case token.BEGIN:
		tok := p.curToken
		stmts := p.parseCompoundStmts()
		return &ast.Compound{Token: tok, Stmts: stmts}
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.WRITELN:
		return p.parseWriteln()
	case token.READLN:
		return p.parseReadln()
	case token.IDENT:
		return p.parseAssignOrProcCall()
	}

	p.failAt(p.curToken)
	return nil
}

// parseAssignOrProcCall disambiguates on the token following the
// identifier: "[" or ":=" start an assignment, anything else makes the bare
// identifier a parameterless procedure call.
func (p *Parser) parseAssignOrProcCall() ast.Stmt {
	idTok := p.curToken
	name := p.curToken.Literal

	if p.peekToken.Kind != token.LBRACKET && p.peekToken.Kind != token.ASSIGN {
		p.nextToken()
		return &ast.ProcCall{Token: idTok, Name: name}
	}

	lvalue := p.parseLValue()
	if !p.ok() {
		return nil
	}
	if !p.expect(token.ASSIGN) {
		return nil
	}
	value := p.parseExpression()
	if !p.ok() {
		return nil
	}
	return &ast.Assign{Token: idTok, LValue: lvalue, Value: value}
}

// parseLValue parses "ID" or "ID [ expr ]", leaving curToken on the token
// following the lvalue.
func (p *Parser) parseLValue() ast.LValue {
	idTok := p.curToken
	name := p.curToken.Literal
	p.nextToken()

	if p.curToken.Kind != token.LBRACKET {
		return &ast.Var{Token: idTok, Name: name}
	}
	p.nextToken() // consume [
	index := p.parseExpression()
	if !p.ok() {
		return nil
	}
	if !p.expect(token.RBRACKET) {
		return nil
	}
	return &ast.ArrayElem{Token: idTok, Name: name, Index: index}
}

func (p *Parser) parseIf() ast.Stmt {
	ifTok := p.curToken
	p.nextToken() // consume IF
	cond := p.parseExpression()
	if !p.ok() {
		return nil
	}
	if !p.expect(token.THEN) {
		return nil
	}
	thenStmt := p.parseStatement()
	if !p.ok() {
		return nil
	}

	node := &ast.If{Token: ifTok, Cond: cond, Then: thenStmt}
	if p.curToken.Kind == token.ELSE {
		p.nextToken()
		elseStmt := p.parseStatement()
		if !p.ok() {
			return nil
		}
		node.Else = elseStmt
	}
	return node
}

func (p *Parser) parseWhile() ast.Stmt {
	whileTok := p.curToken
	p.nextToken() // consume WHILE
	cond := p.parseExpression()
	if !p.ok() {
		return nil
	}
	if !p.expect(token.DO) {
		return nil
	}
	body := p.parseStatement()
	if !p.ok() {
		return nil
	}
	return &ast.While{Token: whileTok, Cond: cond, Body: body}
}

func (p *Parser) parseFor() ast.Stmt {
	forTok := p.curToken
	p.nextToken() // consume FOR
	if p.curToken.Kind != token.IDENT {
		p.failAt(p.curToken)
		return nil
	}
	varName := p.curToken.Literal
	p.nextToken()
	if !p.expect(token.ASSIGN) {
		return nil
	}
	from := p.parseExpression()
	if !p.ok() {
		return nil
	}

	var dir ast.ForDir
	switch p.curToken.Kind {
	case token.TO:
		dir = ast.Up
	case token.DOWNTO:
		dir = ast.Down
	default:
		p.failAt(p.curToken)
		return nil
	}
	p.nextToken()

	to := p.parseExpression()
	if !p.ok() {
		return nil
	}
	if !p.expect(token.DO) {
		return nil
	}
	body := p.parseStatement()
	if !p.ok() {
		return nil
	}
	return &ast.For{Token: forTok, Var: varName, From: from, To: to, Dir: dir, Body: body}
}

func (p *Parser) parseWriteln() ast.Stmt {
	wTok := p.curToken
	p.nextToken() // consume WRITELN
	if !p.expect(token.LPAREN) {
		return nil
	}
	var exprs []ast.Expr
	for {
		expr := p.parseExpression()
		if !p.ok() {
			return nil
		}
		exprs = append(exprs, expr)
		if p.curToken.Kind == token.COMMA {
			p.nextToken()
			continue
		}
		break
	}
	if !p.expect(token.RPAREN) {
		return nil
	}
	return &ast.Writeln{Token: wTok, Exprs: exprs}
}

func (p *Parser) parseReadln() ast.Stmt {
	rTok := p.curToken
	p.nextToken() // consume READLN
	if !p.expect(token.LPAREN) {
		return nil
	}
	if p.curToken.Kind != token.IDENT {
		p.failAt(p.curToken)
		return nil
	}
	lvalue := p.parseLValue()
	if !p.ok() {
		return nil
	}
	if !p.expect(token.RPAREN) {
		return nil
	}
	return &ast.Readln{Token: rTok, LValue: lvalue}
}
