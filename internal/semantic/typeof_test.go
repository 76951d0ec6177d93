package semantic

import (
	"testing"

	"github.com/joaomoura/pvmc/internal/ast"
	"github.com/joaomoura/pvmc/internal/types"
)

func TestTypeOfLiterals(t *testing.T) {
	st := NewSymbolTable()
	cases := []struct {
		expr ast.Expr
		want *types.Type
	}{
		{&ast.IntLit{Value: 1}, types.IntegerType},
		{&ast.StrLit{Value: "x"}, types.StringType},
		{&ast.BoolLit{Value: true}, types.BooleanType},
	}
	for _, c := range cases {
		got, err := TypeOf(c.expr, st)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != c.want {
			t.Fatalf("expected %v, got %v", c.want, got)
		}
	}
}

func TestTypeOfArithmeticPromotesToReal(t *testing.T) {
	st := NewSymbolTable()
	expr := &ast.BinOp{Op: "+", LHS: &ast.IntLit{Value: 1}, RHS: &ast.IntLit{Value: 2}}
	got, err := TypeOf(expr, st)
	if err != nil || got != types.IntegerType {
		t.Fatalf("expected integer, got %v err=%v", got, err)
	}

	st.Define("pi", types.RealType, 1)
	real := &ast.BinOp{Op: "+", LHS: &ast.IntLit{Value: 1}, RHS: &ast.Var{Name: "pi"}}
	got, err = TypeOf(real, st)
	if err != nil || got != types.RealType {
		t.Fatalf("expected real, got %v err=%v", got, err)
	}
}

func TestTypeOfDivModAlwaysInteger(t *testing.T) {
	st := NewSymbolTable()
	st.Define("pi", types.RealType, 1)
	for _, op := range []string{"div", "mod"} {
		expr := &ast.BinOp{Op: op, LHS: &ast.Var{Name: "pi"}, RHS: &ast.IntLit{Value: 2}}
		got, err := TypeOf(expr, st)
		if err != nil || got != types.IntegerType {
			t.Fatalf("%s: expected integer, got %v err=%v", op, got, err)
		}
	}
}

func TestTypeOfRelationalAlwaysBoolean(t *testing.T) {
	st := NewSymbolTable()
	for _, op := range []string{"=", "<>", "<", "<=", ">", ">="} {
		expr := &ast.BinOp{Op: op, LHS: &ast.IntLit{Value: 1}, RHS: &ast.IntLit{Value: 2}}
		got, err := TypeOf(expr, st)
		if err != nil || got != types.BooleanType {
			t.Fatalf("%s: expected boolean, got %v err=%v", op, got, err)
		}
	}
}

func TestTypeOfUndeclaredIdentifier(t *testing.T) {
	st := NewSymbolTable()
	_, err := TypeOf(&ast.Var{Name: "missing"}, st)
	if _, ok := err.(*UndeclaredIdentifier); !ok {
		t.Fatalf("expected UndeclaredIdentifier, got %v", err)
	}
}

func TestTypeOfArrayElement(t *testing.T) {
	st := NewSymbolTable()
	st.Define("a", types.NewArray(1, 10, types.RealType), 10)
	got, err := TypeOf(&ast.ArrayElem{Name: "a", Index: &ast.IntLit{Value: 1}}, st)
	if err != nil || got != types.RealType {
		t.Fatalf("expected real, got %v err=%v", got, err)
	}
}

func TestTypeOfIndexIntoScalarFails(t *testing.T) {
	st := NewSymbolTable()
	st.Define("x", types.IntegerType, 1)
	_, err := TypeOf(&ast.ArrayElem{Name: "x", Index: &ast.IntLit{Value: 0}}, st)
	if _, ok := err.(*NotAnArray); !ok {
		t.Fatalf("expected NotAnArray, got %v", err)
	}
}

func TestTypeOfDivisionFollowsOperandTypes(t *testing.T) {
	st := NewSymbolTable()
	st.Define("pi", types.RealType, 1)

	intExpr := &ast.BinOp{Op: "/", LHS: &ast.IntLit{Value: 4}, RHS: &ast.IntLit{Value: 2}}
	got, err := TypeOf(intExpr, st)
	if err != nil || got != types.IntegerType {
		t.Fatalf("expected integer for '/' on integer operands, got %v err=%v", got, err)
	}

	realExpr := &ast.BinOp{Op: "/", LHS: &ast.IntLit{Value: 4}, RHS: &ast.Var{Name: "pi"}}
	got, err = TypeOf(realExpr, st)
	if err != nil || got != types.RealType {
		t.Fatalf("expected real for '/' with a real operand, got %v err=%v", got, err)
	}
}
