package semantic

import (
	"testing"

	"github.com/joaomoura/pvmc/internal/types"
)

func TestDefineAllocatesContiguousAddresses(t *testing.T) {
	st := NewSymbolTable()
	x := st.Define("x", types.IntegerType, 1)
	y := st.Define("y", types.IntegerType, 1)
	a := st.Define("a", types.NewArray(1, 5, types.IntegerType), 5)

	if x.Address != 0 || y.Address != 1 || a.Address != 2 {
		t.Fatalf("unexpected addresses: x=%d y=%d a=%d", x.Address, y.Address, a.Address)
	}
	if st.NextAddress() != 7 {
		t.Fatalf("expected next address 7, got %d", st.NextAddress())
	}
}

func TestRedeclarationIsNoOp(t *testing.T) {
	st := NewSymbolTable()
	first := st.Define("x", types.IntegerType, 1)
	second := st.Define("X", types.RealType, 1)

	if first != second {
		t.Fatalf("expected redeclaration to return the first binding")
	}
	if st.NextAddress() != 1 {
		t.Fatalf("expected redeclaration not to consume a new address, got next=%d", st.NextAddress())
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	st := NewSymbolTable()
	st.Define("Counter", types.IntegerType, 1)
	sym, ok := st.Lookup("COUNTER")
	if !ok || sym.Name != "Counter" {
		t.Fatalf("expected case-insensitive lookup to find Counter, got %+v ok=%v", sym, ok)
	}
}

func TestProcedureTableRedeclarationIsNoOp(t *testing.T) {
	pt := NewProcedureTable()
	first := pt.Define("greet", "proc_greet_1")
	second := pt.Define("Greet", "proc_greet_2")
	if first != second || first.Label != "proc_greet_1" {
		t.Fatalf("expected redeclaration to keep the first label, got %+v", first)
	}
}
