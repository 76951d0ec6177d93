package ast

import (
	"strconv"

	"github.com/joaomoura/pvmc/internal/token"
)

// IntLit is an integer literal.
type IntLit struct {
	Token token.Token
	Value int64
}

func (n *IntLit) exprNode()            {}
func (n *IntLit) TokenLiteral() string { return n.Token.Literal }
func (n *IntLit) Pos() token.Position  { return n.Token.Pos }
func (n *IntLit) String() string       { return strconv.FormatInt(n.Value, 10) }

// StrLit is a single-quoted string literal.
type StrLit struct {
	Token token.Token
	Value string
}

func (n *StrLit) exprNode()            {}
func (n *StrLit) TokenLiteral() string { return n.Token.Literal }
func (n *StrLit) Pos() token.Position  { return n.Token.Pos }
func (n *StrLit) String() string       { return "'" + n.Value + "'" }

// BoolLit is the literal true/false.
type BoolLit struct {
	Token token.Token
	Value bool
}

func (n *BoolLit) exprNode()            {}
func (n *BoolLit) TokenLiteral() string { return n.Token.Literal }
func (n *BoolLit) Pos() token.Position  { return n.Token.Pos }
func (n *BoolLit) String() string {
	if n.Value {
		return "true"
	}
	return "false"
}

// Var is a bare variable reference.
type Var struct {
	Token token.Token
	Name  string
}

func (n *Var) exprNode()            {}
func (n *Var) TokenLiteral() string { return n.Token.Literal }
func (n *Var) Pos() token.Position  { return n.Token.Pos }
func (n *Var) String() string       { return n.Name }

// ArrayElem is "name [ index ]".
type ArrayElem struct {
	Token token.Token
	Name  string
	Index Expr
}

func (n *ArrayElem) exprNode()            {}
func (n *ArrayElem) TokenLiteral() string { return n.Token.Literal }
func (n *ArrayElem) Pos() token.Position  { return n.Token.Pos }
func (n *ArrayElem) String() string       { return n.Name + "[" + n.Index.String() + "]" }

// BinOp is a binary operation; Op is the literal operator spelling
// ("+", "-", "*", "/", "div", "mod", "and", "or", "=", "<>", "<", "<=",
// ">", ">=").
type BinOp struct {
	Token token.Token
	Op    string
	LHS   Expr
	RHS   Expr
}

func (n *BinOp) exprNode()            {}
func (n *BinOp) TokenLiteral() string { return n.Token.Literal }
func (n *BinOp) Pos() token.Position  { return n.Token.Pos }
func (n *BinOp) String() string {
	return "(" + n.LHS.String() + " " + n.Op + " " + n.RHS.String() + ")"
}

// LValue is the union Var | ArrayElem; both already implement Expr, so this
// is a marker used by statement constructors for clarity at call sites.
type LValue = Expr
