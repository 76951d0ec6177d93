package ast

import "testing"

func TestArrayTypeString(t *testing.T) {
	at := &ArrayType{Lower: 1, Upper: 3, Element: &ScalarType{Name: "integer"}}
	want := "array[1..3] of integer"
	if got := at.String(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestBinOpString(t *testing.T) {
	b := &BinOp{Op: "+", LHS: &IntLit{Value: 1}, RHS: &IntLit{Value: 2}}
	want := "(1 + 2)"
	if got := b.String(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestForStringIncludesDirection(t *testing.T) {
	f := &For{Var: "i", From: &IntLit{Value: 1}, To: &IntLit{Value: 10}, Dir: Down, Body: &Empty{}}
	if got := f.String(); got != "for i := 1 downto 10 do " {
		t.Fatalf("unexpected For string: %q", got)
	}
}

func TestIfWithoutElseOmitsElseClause(t *testing.T) {
	i := &If{Cond: &BoolLit{Value: true}, Then: &Empty{}}
	if got := i.String(); got != "if true then " {
		t.Fatalf("unexpected If string: %q", got)
	}
}
