// Package symtab implements the symbol table: a lexically-scoped,
// ordered registry of declared identifiers.
//
// Scopes store an ordered slice, not a map, because parameter order must
// survive for argument-count/type matching (the "Parameters and
// arguments are inconsistent." check walks both lists pairwise).
package symtab

import "github.com/erikha1501/CompilerLab/internal/types"

// Kind identifies what an Object declares.
type Kind int

const (
	KindProgram Kind = iota
	KindConstant
	KindType
	KindVariable
	KindFunction
	KindProcedure
	KindParameter
)

// ParamPassing is how a parameter is passed: by value or by reference.
type ParamPassing int

const (
	ByValue ParamPassing = iota
	ByReference
)

// Object is a single declared identifier. Only the fields relevant to
// Kind are meaningful; a single struct covers every kind rather than a
// tagged union, since nothing here is memory-constrained.
type Object struct {
	Name string
	Kind Kind

	// KindConstant
	ConstValue types.Constant

	// KindType
	ActualType types.Type

	// KindVariable, KindParameter
	VarType types.Type

	// KindFunction, KindProcedure
	Params     []*Object // KindParameter objects, in declaration order
	ReturnType types.Type // KindFunction only
	Scope      *Scope     // the function/procedure/program's own scope

	// KindParameter
	Passing ParamPassing
	Owner   *Object // the KindFunction/KindProcedure this parameter belongs to
}

// NewProgram creates the program object and its top-level scope.
func NewProgram(name string) *Object {
	prog := &Object{Name: name, Kind: KindProgram}
	prog.Scope = newScope(prog, nil)
	return prog
}

// NewConstant creates a constant declaration.
func NewConstant(name string, value types.Constant) *Object {
	return &Object{Name: name, Kind: KindConstant, ConstValue: value}
}

// NewType creates a named type declaration.
func NewType(name string, actual types.Type) *Object {
	return &Object{Name: name, Kind: KindType, ActualType: actual}
}

// NewVariable creates a variable declaration of the given type.
func NewVariable(name string, typ types.Type) *Object {
	return &Object{Name: name, Kind: KindVariable, VarType: typ}
}

// NewFunction creates a function declaration; its scope is nested inside
// outer and created eagerly at declaration time rather than when its
// body is later parsed.
func NewFunction(name string, outer *Scope) *Object {
	fn := &Object{Name: name, Kind: KindFunction}
	fn.Scope = newScope(fn, outer)
	return fn
}

// NewProcedure creates a procedure declaration with its own nested scope.
func NewProcedure(name string, outer *Scope) *Object {
	proc := &Object{Name: name, Kind: KindProcedure}
	proc.Scope = newScope(proc, outer)
	return proc
}

// NewParameter creates a parameter declaration owned by owner (a
// KindFunction or KindProcedure Object).
func NewParameter(name string, passing ParamPassing, owner *Object) *Object {
	return &Object{Name: name, Kind: KindParameter, Passing: passing, Owner: owner}
}
