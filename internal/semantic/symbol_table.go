// Package semantic tracks declared names and infers expression types ahead
// of code generation: a flat variable symbol table, a flat procedure table,
// and a pure type inferencer over the AST.
package semantic

import (
	"strings"

	"github.com/joaomoura/pvmc/internal/types"
)

// Symbol is a declared variable's compile-time record: its data-segment
// address and its type.
type Symbol struct {
	Name    string // original case, for diagnostics
	Address int
	Type    *types.Type
}

// SymbolTable is a single flat scope: the language has no nested procedure
// scopes, so one lower-cased map covers the whole program. Redeclaring a
// name is a no-op; the first binding wins and keeps its address.
type SymbolTable struct {
	symbols  map[string]*Symbol
	nextAddr int
}

// NewSymbolTable returns an empty table with addresses starting at 0.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]*Symbol)}
}

// Define reserves addr..addr+size-1 for name and returns the new symbol,
// whose Address is addr. If name is already declared, the existing symbol is returned
// unchanged and no new address is consumed.
func (st *SymbolTable) Define(name string, typ *types.Type, size int) *Symbol {
	key := strings.ToLower(name)
	if sym, ok := st.symbols[key]; ok {
		return sym
	}
	sym := &Symbol{Name: name, Address: st.nextAddr, Type: typ}
	st.symbols[key] = sym
	st.nextAddr += size
	return sym
}

// Lookup returns the symbol for name, case-insensitively.
func (st *SymbolTable) Lookup(name string) (*Symbol, bool) {
	sym, ok := st.symbols[strings.ToLower(name)]
	return sym, ok
}

// NextAddress returns the next unallocated data-segment slot, i.e. the total
// number of scalar slots reserved so far.
func (st *SymbolTable) NextAddress() int {
	return st.nextAddr
}
