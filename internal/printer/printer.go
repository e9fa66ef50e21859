// Package printer renders the symtab.Object tree the parser builds as an
// indented, human-readable dump — this compiler's only externally
// visible output on success. There is no separate syntax tree (see
// DESIGN.md's "No separate AST"), so the printer walks the Object/Scope
// graph directly rather than an AST node set.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/erikha1501/CompilerLab/internal/symtab"
)

const indentUnit = "  "

// PrintProgram writes an indented dump of program's declaration tree to
// w: the program itself, then each declaration in its top-level scope in
// declaration order, recursing into function/procedure bodies' own
// scopes.
func PrintProgram(w io.Writer, program *symtab.Object) error {
	p := &printState{w: w}
	return p.printObject(program, 0)
}

type printState struct {
	w   io.Writer
	err error
}

func (p *printState) printf(depth int, format string, args ...any) {
	if p.err != nil {
		return
	}
	line := strings.Repeat(indentUnit, depth) + fmt.Sprintf(format, args...) + "\n"
	if _, err := io.WriteString(p.w, line); err != nil {
		p.err = err
	}
}

func (p *printState) printObject(obj *symtab.Object, depth int) error {
	switch obj.Kind {
	case symtab.KindProgram:
		p.printf(depth, "Program %s", obj.Name)
		p.printScope(obj.Scope, depth+1)

	case symtab.KindConstant:
		p.printf(depth, "Constant %s = %s", obj.Name, obj.ConstValue.String())

	case symtab.KindType:
		p.printf(depth, "Type %s = %s", obj.Name, obj.ActualType.String())

	case symtab.KindVariable:
		p.printf(depth, "Variable %s : %s", obj.Name, obj.VarType.String())

	case symtab.KindParameter:
		passing := "value"
		if obj.Passing == symtab.ByReference {
			passing = "reference"
		}
		p.printf(depth, "Parameter %s : %s (%s)", obj.Name, obj.VarType.String(), passing)

	case symtab.KindFunction:
		p.printf(depth, "Function %s : %s", obj.Name, obj.ReturnType.String())
		p.printParams(obj.Params, depth+1)
		p.printScope(obj.Scope, depth+1)

	case symtab.KindProcedure:
		p.printf(depth, "Procedure %s", obj.Name)
		p.printParams(obj.Params, depth+1)
		p.printScope(obj.Scope, depth+1)
	}
	return p.err
}

func (p *printState) printParams(params []*symtab.Object, depth int) {
	for _, param := range params {
		_ = p.printObject(param, depth)
	}
}

func (p *printState) printScope(scope *symtab.Scope, depth int) {
	for _, obj := range scope.Objects {
		if obj.Kind == symtab.KindParameter {
			// Parameters print once, alongside the function/procedure's
			// own parameter list, not again as ordinary scope members.
			continue
		}
		_ = p.printObject(obj, depth)
	}
}
