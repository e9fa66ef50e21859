package symtab

import "github.com/erikha1501/CompilerLab/internal/types"

// Table tracks the scope currently being compiled plus the fixed set of
// built-in I/O routines that live outside any user scope. It is an owned
// value rather than package-level state, so a whole compilation carries
// no shared mutable state.
type Table struct {
	Program      *Object
	currentScope *Scope
	globals      []*Object // READC, READI, WRITEI, WRITEC, WRITELN
}

// New creates a Table with the five built-in I/O routines already
// registered.
func New() *Table {
	t := &Table{}

	readc := NewFunction("READC", nil)
	readc.ReturnType = types.Char{}
	t.globals = append(t.globals, readc)

	readi := NewFunction("READI", nil)
	readi.ReturnType = types.Int{}
	t.globals = append(t.globals, readi)

	writei := NewProcedure("WRITEI", nil)
	pI := NewParameter("I", ByValue, writei)
	pI.VarType = types.Int{}
	writei.Params = append(writei.Params, pI)
	t.globals = append(t.globals, writei)

	writec := NewProcedure("WRITEC", nil)
	pC := NewParameter("CH", ByValue, writec)
	pC.VarType = types.Char{}
	writec.Params = append(writec.Params, pC)
	t.globals = append(t.globals, writec)

	writeln := NewProcedure("WRITELN", nil)
	t.globals = append(t.globals, writeln)

	return t
}

// CurrentScope returns the scope currently open for declarations.
func (t *Table) CurrentScope() *Scope { return t.currentScope }

// EnterBlock makes scope the current scope.
func (t *Table) EnterBlock(scope *Scope) { t.currentScope = scope }

// ExitBlock pops back to the enclosing scope.
func (t *Table) ExitBlock() {
	if t.currentScope != nil {
		t.currentScope = t.currentScope.Outer
	}
}

// Declare adds obj to the current scope.
func (t *Table) Declare(obj *Object) {
	t.currentScope.Declare(obj)
}

// Lookup resolves name by walking the scope chain outward from the
// current scope, then falling back to the built-in globals.
func (t *Table) Lookup(name string) *Object {
	for scope := t.currentScope; scope != nil; scope = scope.Outer {
		if obj := scope.FindLocal(name); obj != nil {
			return obj
		}
	}
	for _, obj := range t.globals {
		if obj.Name == name {
			return obj
		}
	}
	return nil
}
