// Package codegen lowers the AST into stack-VM assembly. Declaration
// reservations are emitted eagerly as the parser walks the var section;
// everything else is emitted by a post-parse tree walk driven by Generate.
package codegen

import (
	"fmt"
	"strconv"

	"github.com/joaomoura/pvmc/internal/asmbuf"
	"github.com/joaomoura/pvmc/internal/ast"
	"github.com/joaomoura/pvmc/internal/semantic"
	"github.com/joaomoura/pvmc/internal/types"
)

// Generator owns the output buffer and the compile-time tables it shares
// with the parser: variable declarations reserve addresses as they are
// parsed, long before the tree walk that lowers statements runs.
type Generator struct {
	Buf     *asmbuf.Buffer
	Symbols *semantic.SymbolTable
	Procs   *semantic.ProcedureTable

	labelSeq int
}

// New returns a Generator with fresh, empty tables and buffer.
func New() *Generator {
	return &Generator{
		Buf:     asmbuf.New(),
		Symbols: semantic.NewSymbolTable(),
		Procs:   semantic.NewProcedureTable(),
	}
}

func (g *Generator) label(prefix string) string {
	name := prefix + strconv.Itoa(g.labelSeq)
	g.labelSeq++
	return name
}

// ReserveScalar defines name as a 1-slot scalar and emits its reservation
// instruction immediately. Called by the parser while walking a var block.
func (g *Generator) ReserveScalar(name string, typ *types.Type) *semantic.Symbol {
	sym := g.Symbols.Define(name, typ, 1)
	g.Buf.Emit("PUSHN", "1")
	return sym
}

// ReserveArray defines name as an array occupying typ.Size() slots and
// emits its reservation instruction immediately.
func (g *Generator) ReserveArray(name string, typ *types.Type) *semantic.Symbol {
	sym := g.Symbols.Define(name, typ, typ.Size())
	g.Buf.Emit("PUSHN", strconv.Itoa(typ.Size()))
	return sym
}

// reserveLimit allocates one anonymous scalar slot, used for a for-loop's
// hidden upper-bound variable.
func (g *Generator) reserveLimit() int {
	addr := g.Symbols.NextAddress()
	// borrow Define with a synthetic, unreachable name so the address
	// counter advances consistently with every other reservation.
	g.Symbols.Define(fmt.Sprintf("$limit%d", addr), types.IntegerType, 1)
	g.Buf.Emit("PUSHN", "1")
	return addr
}

// DefineProcedure mints a label for name and registers it in the procedure
// table. Called by genProcedure as the generation walk reaches each
// procedure declaration, in source order.
func (g *Generator) DefineProcedure(name string) *semantic.Procedure {
	return g.Procs.Define(name, g.label("proc"+name))
}

// Generate lowers the whole program: procedure bodies first (each fenced by
// a skip-jump so execution never falls into one), then the main block,
// followed by a final STOP.
func (g *Generator) Generate(prog *ast.Program) error {
	for _, proc := range prog.Block.Procs {
		if err := g.genProcedure(proc); err != nil {
			return err
		}
	}
	for _, stmt := range prog.Block.Stmts {
		if err := g.genStmt(stmt); err != nil {
			return err
		}
	}
	g.Buf.Emit("STOP")
	return nil
}

func (g *Generator) genProcedure(proc *ast.ProcDecl) error {
	// Registered here, in source order, rather than during parsing: a
	// ProcCall inside an earlier procedure's body must not resolve to a
	// procedure declared later.
	p := g.DefineProcedure(proc.Name)
	skip := g.label("skipproc")
	g.Buf.Emit("JUMP", skip)
	g.Buf.Label(p.Label)
	for _, stmt := range proc.Body.Stmts {
		if err := g.genStmt(stmt); err != nil {
			return err
		}
	}
	g.Buf.Emit("RETURN")
	g.Buf.Label(skip)
	return nil
}

func (g *Generator) genStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Empty:
		return nil
	case *ast.Compound:
		for _, child := range s.Stmts {
			if err := g.genStmt(child); err != nil {
				return err
			}
		}
		return nil
	case *ast.Assign:
		return g.genAssign(s)
	case *ast.Writeln:
		return g.genWriteln(s)
	case *ast.Readln:
		return g.genReadln(s)
	case *ast.If:
		return g.genIf(s)
	case *ast.While:
		return g.genWhile(s)
	case *ast.For:
		return g.genFor(s)
	case *ast.ProcCall:
		return g.genProcCall(s)
	}
	panic(fmt.Sprintf("codegen: unhandled statement %T", stmt))
}

func (g *Generator) genAssign(s *ast.Assign) error {
	switch lv := s.LValue.(type) {
	case *ast.Var:
		sym, ok := g.Symbols.Lookup(lv.Name)
		if !ok {
			return &semantic.UndeclaredIdentifier{Name: lv.Name, Pos: lv.Pos()}
		}
		if err := g.genExpr(s.Value); err != nil {
			return err
		}
		g.Buf.Emit("STOREG", strconv.Itoa(sym.Address))
		return nil
	case *ast.ArrayElem:
		sym, ok := g.Symbols.Lookup(lv.Name)
		if !ok {
			return &semantic.UndeclaredIdentifier{Name: lv.Name, Pos: lv.Pos()}
		}
		if !sym.Type.IsArray() {
			return &semantic.NotAnArray{Name: lv.Name, Pos: lv.Pos()}
		}
		if err := g.genExpr(s.Value); err != nil {
			return err
		}
		if err := g.genExpr(lv.Index); err != nil {
			return err
		}
		g.Buf.Emit("PUSHI", strconv.Itoa(sym.Type.Lower))
		g.Buf.Emit("SUB")
		g.Buf.Emit("PUSHI", strconv.Itoa(sym.Address))
		g.Buf.Emit("ADD")
		g.Buf.Emit("STOREN")
		return nil
	}
	panic("codegen: unhandled lvalue")
}

func (g *Generator) genWriteln(s *ast.Writeln) error {
	for _, expr := range s.Exprs {
		typ, err := semantic.TypeOf(expr, g.Symbols)
		if err != nil {
			return err
		}
		if err := g.genExpr(expr); err != nil {
			return err
		}
		g.Buf.Emit(writeOpcode(typ))
	}
	g.Buf.Emit("WRITELN")
	return nil
}

func writeOpcode(typ *types.Type) string {
	switch {
	case typ.IsReal():
		return "WRITEF"
	case typ.Kind == types.String:
		return "WRITES"
	default:
		return "WRITEI"
	}
}

func (g *Generator) genReadln(s *ast.Readln) error {
	g.Buf.Emit("READ")
	switch lv := s.LValue.(type) {
	case *ast.Var:
		sym, ok := g.Symbols.Lookup(lv.Name)
		if !ok {
			return &semantic.UndeclaredIdentifier{Name: lv.Name, Pos: lv.Pos()}
		}
		g.emitReadConversion(sym.Type)
		g.Buf.Emit("STOREG", strconv.Itoa(sym.Address))
		return nil
	case *ast.ArrayElem:
		sym, ok := g.Symbols.Lookup(lv.Name)
		if !ok {
			return &semantic.UndeclaredIdentifier{Name: lv.Name, Pos: lv.Pos()}
		}
		if !sym.Type.IsArray() {
			return &semantic.NotAnArray{Name: lv.Name, Pos: lv.Pos()}
		}
		g.emitReadConversion(sym.Type.Element)
		if err := g.genExpr(lv.Index); err != nil {
			return err
		}
		g.Buf.Emit("PUSHI", strconv.Itoa(sym.Type.Lower))
		g.Buf.Emit("SUB")
		g.Buf.Emit("PUSHI", strconv.Itoa(sym.Address))
		g.Buf.Emit("ADD")
		g.Buf.Emit("STOREN")
		return nil
	}
	panic("codegen: unhandled lvalue")
}

func (g *Generator) emitReadConversion(typ *types.Type) {
	switch {
	case typ.IsReal():
		g.Buf.Emit("ATOF")
	case typ.Kind == types.String:
		// no conversion
	default:
		g.Buf.Emit("ATOI")
	}
}

func (g *Generator) genIf(s *ast.If) error {
	if err := g.genExpr(s.Cond); err != nil {
		return err
	}
	if s.Else == nil {
		end := g.label("endif")
		g.Buf.Emit("JZ", end)
		if err := g.genStmt(s.Then); err != nil {
			return err
		}
		g.Buf.Label(end)
		return nil
	}
	elseLabel := g.label("else")
	end := g.label("endif")
	g.Buf.Emit("JZ", elseLabel)
	if err := g.genStmt(s.Then); err != nil {
		return err
	}
	g.Buf.Emit("JUMP", end)
	g.Buf.Label(elseLabel)
	if err := g.genStmt(s.Else); err != nil {
		return err
	}
	g.Buf.Label(end)
	return nil
}

func (g *Generator) genWhile(s *ast.While) error {
	start := g.label("while")
	end := g.label("endwhile")
	g.Buf.Label(start)
	if err := g.genExpr(s.Cond); err != nil {
		return err
	}
	g.Buf.Emit("JZ", end)
	if err := g.genStmt(s.Body); err != nil {
		return err
	}
	g.Buf.Emit("JUMP", start)
	g.Buf.Label(end)
	return nil
}

func (g *Generator) genFor(s *ast.For) error {
	sym, ok := g.Symbols.Lookup(s.Var)
	if !ok {
		return &semantic.UndeclaredIdentifier{Name: s.Var, Pos: s.Pos()}
	}
	if err := g.genExpr(s.From); err != nil {
		return err
	}
	g.Buf.Emit("STOREG", strconv.Itoa(sym.Address))

	limitAddr := g.reserveLimit()
	if err := g.genExpr(s.To); err != nil {
		return err
	}
	g.Buf.Emit("STOREG", strconv.Itoa(limitAddr))

	start := g.label("for")
	end := g.label("endfor")
	g.Buf.Label(start)
	g.Buf.Emit("PUSHG", strconv.Itoa(sym.Address))
	g.Buf.Emit("PUSHG", strconv.Itoa(limitAddr))
	if s.Dir == ast.Down {
		g.Buf.Emit("SUPEQ")
	} else {
		g.Buf.Emit("INFEQ")
	}
	g.Buf.Emit("JZ", end)
	if err := g.genStmt(s.Body); err != nil {
		return err
	}
	g.Buf.Emit("PUSHG", strconv.Itoa(sym.Address))
	g.Buf.Emit("PUSHI", "1")
	if s.Dir == ast.Down {
		g.Buf.Emit("SUB")
	} else {
		g.Buf.Emit("ADD")
	}
	g.Buf.Emit("STOREG", strconv.Itoa(sym.Address))
	g.Buf.Emit("JUMP", start)
	g.Buf.Label(end)
	return nil
}

func (g *Generator) genProcCall(s *ast.ProcCall) error {
	p, ok := g.Procs.Lookup(s.Name)
	if !ok {
		return &semantic.UndeclaredProcedure{Name: s.Name, Pos: s.Pos()}
	}
	g.Buf.Emit("PUSHA", p.Label)
	g.Buf.Emit("CALL")
	return nil
}

func (g *Generator) genExpr(expr ast.Expr) error {
	switch e := expr.(type) {
	case *ast.IntLit:
		g.Buf.Emit("PUSHI", strconv.FormatInt(e.Value, 10))
		return nil
	case *ast.StrLit:
		g.Buf.Emit("PUSHS", strconv.Quote(e.Value))
		return nil
	case *ast.BoolLit:
		if e.Value {
			g.Buf.Emit("PUSHI", "1")
		} else {
			g.Buf.Emit("PUSHI", "0")
		}
		return nil
	case *ast.Var:
		sym, ok := g.Symbols.Lookup(e.Name)
		if !ok {
			return &semantic.UndeclaredIdentifier{Name: e.Name, Pos: e.Pos()}
		}
		g.Buf.Emit("PUSHG", strconv.Itoa(sym.Address))
		return nil
	case *ast.ArrayElem:
		sym, ok := g.Symbols.Lookup(e.Name)
		if !ok {
			return &semantic.UndeclaredIdentifier{Name: e.Name, Pos: e.Pos()}
		}
		if !sym.Type.IsArray() {
			return &semantic.NotAnArray{Name: e.Name, Pos: e.Pos()}
		}
		if err := g.genExpr(e.Index); err != nil {
			return err
		}
		g.Buf.Emit("PUSHI", strconv.Itoa(sym.Type.Lower))
		g.Buf.Emit("SUB")
		g.Buf.Emit("PUSHI", strconv.Itoa(sym.Address))
		g.Buf.Emit("ADD")
		g.Buf.Emit("LOADN")
		return nil
	case *ast.BinOp:
		return g.genBinOp(e)
	}
	panic(fmt.Sprintf("codegen: unhandled expression %T", expr))
}

func (g *Generator) genBinOp(e *ast.BinOp) error {
	lt, err := semantic.TypeOf(e.LHS, g.Symbols)
	if err != nil {
		return err
	}
	rt, err := semantic.TypeOf(e.RHS, g.Symbols)
	if err != nil {
		return err
	}
	if err := g.genExpr(e.LHS); err != nil {
		return err
	}
	if err := g.genExpr(e.RHS); err != nil {
		return err
	}
	real := lt.IsReal() || rt.IsReal()

	switch e.Op {
	case "+":
		g.Buf.Emit(pick(real, "FADD", "ADD"))
	case "-":
		g.Buf.Emit(pick(real, "FSUB", "SUB"))
	case "*":
		g.Buf.Emit(pick(real, "FMUL", "MUL"))
	case "/":
		g.Buf.Emit(pick(real, "FDIV", "DIV"))
	case "div":
		g.Buf.Emit("DIV")
	case "mod":
		g.Buf.Emit("MOD")
	case "and":
		g.Buf.Emit("AND")
	case "or":
		g.Buf.Emit("OR")
	case "=":
		g.Buf.Emit("EQUAL")
	case "<":
		g.Buf.Emit(pick(real, "FINF", "INF"))
	case "<=":
		g.Buf.Emit(pick(real, "FINFEQ", "INFEQ"))
	case ">":
		g.Buf.Emit(pick(real, "FSUP", "SUP"))
	case ">=":
		g.Buf.Emit(pick(real, "FSUPEQ", "SUPEQ"))
	case "<>":
		g.Buf.Emit("EQUAL")
		g.Buf.Emit("NOT")
	default:
		panic("codegen: unhandled operator " + e.Op)
	}
	return nil
}

func pick(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
