package semantic

import (
	"github.com/joaomoura/pvmc/internal/ast"
	"github.com/joaomoura/pvmc/internal/types"
)

// TypeOf infers the static type of expr against the declared symbols in st.
// It returns an error the first time it encounters an undeclared name or an
// index applied to a non-array; callers should stop walking on error rather
// than attempt to recover a type for the enclosing expression.
func TypeOf(expr ast.Expr, st *SymbolTable) (*types.Type, error) {
	switch e := expr.(type) {
	case *ast.IntLit:
		return types.IntegerType, nil
	case *ast.StrLit:
		return types.StringType, nil
	case *ast.BoolLit:
		return types.BooleanType, nil
	case *ast.Var:
		sym, ok := st.Lookup(e.Name)
		if !ok {
			return nil, &UndeclaredIdentifier{Name: e.Name, Pos: e.Pos()}
		}
		return sym.Type, nil
	case *ast.ArrayElem:
		sym, ok := st.Lookup(e.Name)
		if !ok {
			return nil, &UndeclaredIdentifier{Name: e.Name, Pos: e.Pos()}
		}
		if !sym.Type.IsArray() {
			return nil, &NotAnArray{Name: e.Name, Pos: e.Pos()}
		}
		if _, err := TypeOf(e.Index, st); err != nil {
			return nil, err
		}
		return sym.Type.Element, nil
	case *ast.BinOp:
		return typeOfBinOp(e, st)
	}
	panic("semantic.TypeOf: unhandled expression type")
}

func typeOfBinOp(e *ast.BinOp, st *SymbolTable) (*types.Type, error) {
	lt, err := TypeOf(e.LHS, st)
	if err != nil {
		return nil, err
	}
	rt, err := TypeOf(e.RHS, st)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case "=", "<>", "<", "<=", ">", ">=", "and", "or":
		return types.BooleanType, nil
	case "div", "mod":
		return types.IntegerType, nil
	case "+", "-", "*", "/":
		if lt.IsReal() || rt.IsReal() {
			return types.RealType, nil
		}
		return types.IntegerType, nil
	}
	panic("semantic.TypeOf: unhandled operator " + e.Op)
}
