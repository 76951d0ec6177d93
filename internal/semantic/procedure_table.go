package semantic

import "strings"

// Procedure is a declared parameterless procedure's compile-time record:
// the assembly label code generation minted for its body, and the original
// name for diagnostics.
type Procedure struct {
	Name  string
	Label string
}

// ProcedureTable is a flat, lower-cased map from procedure name to its
// generated label. Procedures cannot be called before they are declared, so
// a lookup failure always means either an undeclared name or a forward
// reference.
type ProcedureTable struct {
	procs map[string]*Procedure
}

// NewProcedureTable returns an empty table.
func NewProcedureTable() *ProcedureTable {
	return &ProcedureTable{procs: make(map[string]*Procedure)}
}

// Define registers name with its generated label. Redeclaration is a no-op.
func (pt *ProcedureTable) Define(name, label string) *Procedure {
	key := strings.ToLower(name)
	if p, ok := pt.procs[key]; ok {
		return p
	}
	p := &Procedure{Name: name, Label: label}
	pt.procs[key] = p
	return p
}

// Lookup returns the procedure for name, case-insensitively.
func (pt *ProcedureTable) Lookup(name string) (*Procedure, bool) {
	p, ok := pt.procs[strings.ToLower(name)]
	return p, ok
}
