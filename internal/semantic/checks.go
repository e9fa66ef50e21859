// Package semantic implements the static semantic checks: every one of
// them resolves a name against a symtab.Table, validates it, and returns
// a *errors.Diagnostic rather than aborting the process directly.
//
// The checks here are deliberately permissive in a few places:
// DeclaredVariable accepts Constant and Function references alongside
// Variable, since either can stand as an expression operand; only
// Parameter is further restricted to the enclosing function/procedure.
package semantic

import (
	"github.com/erikha1501/CompilerLab/internal/errors"
	"github.com/erikha1501/CompilerLab/internal/symtab"
	"github.com/erikha1501/CompilerLab/internal/token"
	"github.com/erikha1501/CompilerLab/internal/types"
)

// Checker binds the symbol table the checks below resolve names against.
type Checker struct {
	Table *symtab.Table
}

// New creates a Checker over table.
func New(table *symtab.Table) *Checker {
	return &Checker{Table: table}
}

// FreshIdent requires that name is not already declared in the current
// (innermost) scope.
func (c *Checker) FreshIdent(pos token.Position, name string) error {
	if c.Table.CurrentScope().FindLocal(name) != nil {
		return errors.New(pos, errors.MsgDuplicateIdent)
	}
	return nil
}

// DeclaredIdent resolves name anywhere in scope, with no kind
// restriction.
func (c *Checker) DeclaredIdent(pos token.Position, name string) (*symtab.Object, error) {
	obj := c.Table.Lookup(name)
	if obj == nil {
		return nil, errors.New(pos, errors.MsgUndeclaredIdent)
	}
	return obj, nil
}

// DeclaredConstant resolves name and requires it to be a constant.
func (c *Checker) DeclaredConstant(pos token.Position, name string) (*symtab.Object, error) {
	obj := c.Table.Lookup(name)
	if obj == nil {
		return nil, errors.New(pos, errors.MsgUndeclaredConstant)
	}
	if obj.Kind != symtab.KindConstant {
		return nil, errors.New(pos, errors.MsgInvalidConstant)
	}
	return obj, nil
}

// DeclaredType resolves name and requires it to be a type.
func (c *Checker) DeclaredType(pos token.Position, name string) (*symtab.Object, error) {
	obj := c.Table.Lookup(name)
	if obj == nil {
		return nil, errors.New(pos, errors.MsgUndeclaredType)
	}
	if obj.Kind != symtab.KindType {
		return nil, errors.New(pos, errors.MsgInvalidType)
	}
	return obj, nil
}

// DeclaredVariable resolves name for use as an expression operand: a
// Variable or Constant always qualifies, a Function qualifies (a bare
// reference to the enclosing function's name reads its return value),
// and a Parameter qualifies only when it belongs to the function or
// procedure whose scope is currently open.
func (c *Checker) DeclaredVariable(pos token.Position, name string) (*symtab.Object, error) {
	obj := c.Table.Lookup(name)
	if obj == nil {
		return nil, errors.New(pos, errors.MsgUndeclaredVariable)
	}
	switch obj.Kind {
	case symtab.KindVariable, symtab.KindConstant, symtab.KindFunction:
		return obj, nil
	case symtab.KindParameter:
		if obj.Owner != c.Table.CurrentScope().Owner {
			return nil, errors.New(pos, errors.MsgInvalidLValue)
		}
		return obj, nil
	default:
		return nil, errors.New(pos, errors.MsgInvalidLValue)
	}
}

// DeclaredFunction resolves name and requires it to be a function.
func (c *Checker) DeclaredFunction(pos token.Position, name string) (*symtab.Object, error) {
	obj := c.Table.Lookup(name)
	if obj == nil {
		return nil, errors.New(pos, errors.MsgUndeclaredFunction)
	}
	if obj.Kind != symtab.KindFunction {
		return nil, errors.New(pos, errors.MsgFunctionExpected)
	}
	return obj, nil
}

// DeclaredProcedure resolves name and requires it to be a procedure.
func (c *Checker) DeclaredProcedure(pos token.Position, name string) (*symtab.Object, error) {
	obj := c.Table.Lookup(name)
	if obj == nil {
		return nil, errors.New(pos, errors.MsgUndeclaredProcedure)
	}
	if obj.Kind != symtab.KindProcedure {
		return nil, errors.New(pos, errors.MsgProcedureExpected)
	}
	return obj, nil
}

// DeclaredLValueIdent resolves name for use on the left of `:=`: only a
// Variable, the enclosing Function itself (assigning its return value),
// or a Parameter owned by the currently open function/procedure.
func (c *Checker) DeclaredLValueIdent(pos token.Position, name string) (*symtab.Object, error) {
	obj := c.Table.Lookup(name)
	if obj == nil {
		return nil, errors.New(pos, errors.MsgUndeclaredVariable)
	}
	switch obj.Kind {
	case symtab.KindVariable:
		return obj, nil
	case symtab.KindFunction:
		if obj != c.Table.CurrentScope().Owner {
			return nil, errors.New(pos, errors.MsgInvalidLValue)
		}
		return obj, nil
	case symtab.KindParameter:
		if obj.Owner != c.Table.CurrentScope().Owner {
			return nil, errors.New(pos, errors.MsgInvalidLValue)
		}
		return obj, nil
	default:
		return nil, errors.New(pos, errors.MsgInvalidLValue)
	}
}

// CheckIntType requires t to be the built-in integer type.
func CheckIntType(pos token.Position, t types.Type) error {
	if _, ok := t.(types.Int); !ok {
		return errors.New(pos, errors.MsgTypeInconsistency)
	}
	return nil
}

// CheckCharType requires t to be the built-in character type.
func CheckCharType(pos token.Position, t types.Type) error {
	if _, ok := t.(types.Char); !ok {
		return errors.New(pos, errors.MsgTypeInconsistency)
	}
	return nil
}

// CheckBasicType requires t to be Int or Char (never Array): the set of
// types allowed for either side of a comparison.
func CheckBasicType(pos token.Position, t types.Type) error {
	switch t.(type) {
	case types.Int, types.Char:
		return nil
	default:
		return errors.New(pos, errors.MsgInvalidBasicType)
	}
}

// CheckArrayType requires t to be an Array.
func CheckArrayType(pos token.Position, t types.Type) error {
	if _, ok := t.(types.Array); !ok {
		return errors.New(pos, errors.MsgInvalidType)
	}
	return nil
}

// CheckTypeEquality requires a and b to be structurally equal (Type.Equal
// recurses into array element types and compares sizes exactly).
func CheckTypeEquality(pos token.Position, a, b types.Type) error {
	if !a.Equal(b) {
		return errors.New(pos, errors.MsgTypeInconsistency)
	}
	return nil
}
