// Package ast defines the Abstract Syntax Tree node types produced by the
// parser: a Program wrapping one Block of declarations/procedures/
// statements, plus the statement and expression node hierarchies spec.md
// names.
package ast

import (
	"strconv"
	"strings"

	"github.com/joaomoura/pvmc/internal/token"
)

// Node is implemented by every AST node.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() token.Position
}

// Expr is any node that produces a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any node that performs an action.
type Stmt interface {
	Node
	stmtNode()
}

// Program is the root node: a name and one Block.
type Program struct {
	Token token.Token // the PROGRAM token
	Name  string
	Block *Block
}

func (p *Program) TokenLiteral() string   { return p.Token.Literal }
func (p *Program) Pos() token.Position    { return p.Token.Pos }
func (p *Program) String() string {
	var sb strings.Builder
	sb.WriteString("program ")
	sb.WriteString(p.Name)
	sb.WriteString(";\n")
	sb.WriteString(p.Block.String())
	sb.WriteString(".")
	return sb.String()
}

// Block is "declarations procedures begin statements end".
type Block struct {
	Decls []*VarDecl
	Procs []*ProcDecl
	Stmts []Stmt
}

func (b *Block) TokenLiteral() string { return "begin" }
func (b *Block) Pos() token.Position {
	if len(b.Decls) > 0 {
		return b.Decls[0].Pos()
	}
	if len(b.Stmts) > 0 {
		return b.Stmts[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}
func (b *Block) String() string {
	var sb strings.Builder
	for _, d := range b.Decls {
		sb.WriteString(d.String())
		sb.WriteString(";\n")
	}
	for _, p := range b.Procs {
		sb.WriteString(p.String())
		sb.WriteString("\n")
	}
	sb.WriteString("begin\n")
	for i, s := range b.Stmts {
		if i > 0 {
			sb.WriteString(";\n")
		}
		sb.WriteString("  " + s.String())
	}
	sb.WriteString("\nend")
	return sb.String()
}

// VarDecl is "id_list : type".
type VarDecl struct {
	Token token.Token
	Names []string
	Type  TypeExpr
}

func (v *VarDecl) TokenLiteral() string { return v.Token.Literal }
func (v *VarDecl) Pos() token.Position  { return v.Token.Pos }
func (v *VarDecl) String() string {
	return "var " + strings.Join(v.Names, ", ") + ": " + v.Type.String()
}

// ProcDecl is a parameterless procedure declaration.
type ProcDecl struct {
	Token token.Token
	Name  string
	Body  *Block
}

func (p *ProcDecl) TokenLiteral() string { return p.Token.Literal }
func (p *ProcDecl) Pos() token.Position  { return p.Token.Pos }
func (p *ProcDecl) String() string {
	return "procedure " + p.Name + ";\n" + p.Body.String() + ";"
}

// TypeExpr is the syntactic type written in a declaration: a scalar name
// or an array type.
type TypeExpr interface {
	Node
	typeExprNode()
	String() string
}

// ScalarType is one of integer/boolean/string/real.
type ScalarType struct {
	Token token.Token
	Name  string // "integer" | "boolean" | "string" | "real"
}

func (s *ScalarType) typeExprNode()        {}
func (s *ScalarType) TokenLiteral() string { return s.Token.Literal }
func (s *ScalarType) Pos() token.Position  { return s.Token.Pos }
func (s *ScalarType) String() string       { return s.Name }

// ArrayType is "array [ lower .. upper ] of element".
type ArrayType struct {
	Token   token.Token
	Lower   int
	Upper   int
	Element TypeExpr
}

func (a *ArrayType) typeExprNode()        {}
func (a *ArrayType) TokenLiteral() string { return a.Token.Literal }
func (a *ArrayType) Pos() token.Position  { return a.Token.Pos }
func (a *ArrayType) String() string {
	return "array[" + strconv.Itoa(a.Lower) + ".." + strconv.Itoa(a.Upper) + "] of " + a.Element.String()
}
