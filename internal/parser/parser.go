// Package parser implements a hand-written recursive-descent parser with
// precedence climbing for expressions. The grammar has no ambiguity once
// dangling-else is resolved by nearest-if binding and assignment vs.
// procedure-call statements are disambiguated on the token following the
// identifier, so no backtracking or speculative parsing is needed: a
// single curToken/peekToken pair is enough lookahead throughout.
//
// The parser is wired to a *codegen.Generator: variable declarations
// reserve their data-segment addresses and emit PUSHN as soon as they are
// parsed, ahead of any executable code, exactly as the declaration-time
// reservation strategy requires.
package parser

import (
	"fmt"

	"github.com/joaomoura/pvmc/internal/ast"
	"github.com/joaomoura/pvmc/internal/codegen"
	"github.com/joaomoura/pvmc/internal/lexer"
	"github.com/joaomoura/pvmc/internal/token"
)

// Error is a single syntax error: the parser stops at the first one and
// returns a nil AST, per the no-panic-mode-recovery contract.
type Error struct {
	Message string
	Pos     token.Position
}

func (e *Error) Error() string { return e.Message }

// Parser consumes tokens from a Lexer and builds the AST, driving a shared
// Generator as declarations are encountered.
type Parser struct {
	l   *lexer.Lexer
	gen *codegen.Generator

	curToken  token.Token
	peekToken token.Token

	err *Error
}

// New returns a Parser reading from l and reserving declarations through
// gen.
func New(l *lexer.Lexer, gen *codegen.Generator) *Parser {
	p := &Parser{l: l, gen: gen}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// Err returns the first syntax error encountered, or nil.
func (p *Parser) Err() *Error { return p.err }

func (p *Parser) fail(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	p.err = &Error{Message: fmt.Sprintf(format, args...), Pos: p.curToken.Pos}
}

func (p *Parser) failAt(tok token.Token) {
	if p.err != nil {
		return
	}
	if tok.Kind == token.EOF {
		p.err = &Error{Message: "syntax error at end of input", Pos: tok.Pos}
		return
	}
	p.err = &Error{Message: fmt.Sprintf("syntax error at '%s', line %d", tok.Literal, tok.Pos.Line), Pos: tok.Pos}
}

// expect advances past curToken if it matches kind, else records a syntax
// error and leaves curToken untouched.
func (p *Parser) expect(kind token.Kind) bool {
	if p.curToken.Kind != kind {
		p.failAt(p.curToken)
		return false
	}
	p.nextToken()
	return true
}

func (p *Parser) ok() bool { return p.err == nil }

// ParseProgram parses "program ID ; block .". On any syntax error it
// returns (nil, err) immediately.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	progTok := p.curToken
	if !p.expect(token.PROGRAM) {
		return nil, p.err
	}
	if p.curToken.Kind != token.IDENT {
		p.failAt(p.curToken)
		return nil, p.err
	}
	name := p.curToken.Literal
	p.nextToken()
	if !p.expect(token.SEMICOLON) {
		return nil, p.err
	}

	block := p.parseBlock()
	if !p.ok() {
		return nil, p.err
	}

	if !p.expect(token.DOT) {
		return nil, p.err
	}
	if p.curToken.Kind != token.EOF {
		p.failAt(p.curToken)
		return nil, p.err
	}

	return &ast.Program{Token: progTok, Name: name, Block: block}, nil
}
