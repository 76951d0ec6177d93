package parser

import (
	"strconv"

	"github.com/joaomoura/pvmc/internal/ast"
	"github.com/joaomoura/pvmc/internal/token"
	"github.com/joaomoura/pvmc/internal/types"
)

// parseBlock parses "declarations procedures BEGIN statements END" for the
// program body.
func (p *Parser) parseBlock() *ast.Block {
	block := &ast.Block{}

	if p.curToken.Kind == token.VAR {
		block.Decls = p.parseVarSection()
		if !p.ok() {
			return block
		}
	}

	for p.curToken.Kind == token.PROCEDURE {
		proc := p.parseProcedure()
		if !p.ok() {
			return block
		}
		block.Procs = append(block.Procs, proc)
	}

	block.Stmts = p.parseCompoundStmts()
	return block
}

// parseProcedureBlock parses "declarations BEGIN statements END" for a
// procedure body: procedures cannot nest further procedures.
func (p *Parser) parseProcedureBlock() *ast.Block {
	block := &ast.Block{}
	if p.curToken.Kind == token.VAR {
		block.Decls = p.parseVarSection()
		if !p.ok() {
			return block
		}
	}
	block.Stmts = p.parseCompoundStmts()
	return block
}

// parseVarSection parses "VAR (id_list : type ;)+", reserving each name's
// address through the generator as soon as its type is known.
func (p *Parser) parseVarSection() []*ast.VarDecl {
	var decls []*ast.VarDecl
	p.nextToken() // consume VAR

	for p.curToken.Kind == token.IDENT {
		declTok := p.curToken
		names := []string{p.curToken.Literal}
		p.nextToken()
		for p.curToken.Kind == token.COMMA {
			p.nextToken()
			if p.curToken.Kind != token.IDENT {
				p.failAt(p.curToken)
				return decls
			}
			names = append(names, p.curToken.Literal)
			p.nextToken()
		}
		if !p.expect(token.COLON) {
			return decls
		}
		typeExpr, typ := p.parseType()
		if !p.ok() {
			return decls
		}
		if !p.expect(token.SEMICOLON) {
			return decls
		}

		for _, name := range names {
			if typ.IsArray() {
				p.gen.ReserveArray(name, typ)
			} else {
				p.gen.ReserveScalar(name, typ)
			}
		}
		decls = append(decls, &ast.VarDecl{Token: declTok, Names: names, Type: typeExpr})
	}
	return decls
}

// parseType parses a scalar or array type name, returning both the
// syntactic node kept on the AST and the semantic type used for addressing.
func (p *Parser) parseType() (ast.TypeExpr, *types.Type) {
	switch p.curToken.Kind {
	case token.INTEGER:
		tok := p.curToken
		p.nextToken()
		return &ast.ScalarType{Token: tok, Name: "integer"}, types.IntegerType
	case token.BOOLEAN:
		tok := p.curToken
		p.nextToken()
		return &ast.ScalarType{Token: tok, Name: "boolean"}, types.BooleanType
	case token.STRING:
		tok := p.curToken
		p.nextToken()
		return &ast.ScalarType{Token: tok, Name: "string"}, types.StringType
	case token.REAL:
		tok := p.curToken
		p.nextToken()
		return &ast.ScalarType{Token: tok, Name: "real"}, types.RealType
	case token.ARRAY:
		return p.parseArrayType()
	}
	p.failAt(p.curToken)
	return nil, nil
}

func (p *Parser) parseArrayType() (ast.TypeExpr, *types.Type) {
	arrTok := p.curToken
	p.nextToken() // consume ARRAY
	if !p.expect(token.LBRACKET) {
		return nil, nil
	}
	if p.curToken.Kind != token.NUMBER {
		p.failAt(p.curToken)
		return nil, nil
	}
	lower, err := strconv.Atoi(p.curToken.Literal)
	if err != nil {
		p.fail("invalid array bound %q", p.curToken.Literal)
		return nil, nil
	}
	p.nextToken()
	if !p.expect(token.DOTDOT) {
		return nil, nil
	}
	if p.curToken.Kind != token.NUMBER {
		p.failAt(p.curToken)
		return nil, nil
	}
	upper, err := strconv.Atoi(p.curToken.Literal)
	if err != nil {
		p.fail("invalid array bound %q", p.curToken.Literal)
		return nil, nil
	}
	p.nextToken()
	if !p.expect(token.RBRACKET) {
		return nil, nil
	}
	if !p.expect(token.OF) {
		return nil, nil
	}
	elemExpr, elemType := p.parseType()
	if !p.ok() {
		return nil, nil
	}
	return &ast.ArrayType{Token: arrTok, Lower: lower, Upper: upper, Element: elemExpr},
		types.NewArray(lower, upper, elemType)
}

// parseProcedure parses "PROCEDURE ID ; declarations BEGIN statements END ;".
// The procedure's label is minted later, during code generation, so that a
// call to a procedure declared further down the source fails to resolve
// instead of being satisfied by this pre-pass.
func (p *Parser) parseProcedure() *ast.ProcDecl {
	procTok := p.curToken
	p.nextToken() // consume PROCEDURE
	if p.curToken.Kind != token.IDENT {
		p.failAt(p.curToken)
		return nil
	}
	name := p.curToken.Literal
	p.nextToken()
	if !p.expect(token.SEMICOLON) {
		return nil
	}

	body := p.parseProcedureBlock()
	if !p.ok() {
		return nil
	}
	if !p.expect(token.SEMICOLON) {
		return nil
	}

	return &ast.ProcDecl{Token: procTok, Name: name, Body: body}
}
