package semantic

import (
	"testing"

	"github.com/erikha1501/CompilerLab/internal/symtab"
	"github.com/erikha1501/CompilerLab/internal/token"
	"github.com/erikha1501/CompilerLab/internal/types"
)

func newTestTable() (*symtab.Table, *symtab.Object) {
	tbl := symtab.New()
	program := symtab.NewProgram("MAIN")
	tbl.Program = program
	tbl.EnterBlock(program.Scope)
	return tbl, program
}

var pos = token.Position{Line: 1, Col: 1}

func TestFreshIdentRejectsDuplicate(t *testing.T) {
	tbl, _ := newTestTable()
	c := New(tbl)
	tbl.Declare(symtab.NewVariable("X", types.Int{}))

	if err := c.FreshIdent(pos, "X"); err == nil {
		t.Error("FreshIdent should reject a name already declared in this scope")
	}
	if err := c.FreshIdent(pos, "Y"); err != nil {
		t.Errorf("FreshIdent should accept an unused name, got %v", err)
	}
}

func TestDeclaredIdentAnyKind(t *testing.T) {
	tbl, _ := newTestTable()
	c := New(tbl)
	tbl.Declare(symtab.NewType("T", types.Int{}))

	if _, err := c.DeclaredIdent(pos, "T"); err != nil {
		t.Errorf("DeclaredIdent should accept any declared kind, got %v", err)
	}
	if _, err := c.DeclaredIdent(pos, "NOPE"); err == nil {
		t.Error("DeclaredIdent should reject an undeclared name")
	}
}

func TestDeclaredConstantWrongKind(t *testing.T) {
	tbl, _ := newTestTable()
	c := New(tbl)
	tbl.Declare(symtab.NewVariable("X", types.Int{}))

	if _, err := c.DeclaredConstant(pos, "X"); err == nil {
		t.Error("DeclaredConstant should reject a variable")
	}
	if _, err := c.DeclaredConstant(pos, "NOPE"); err == nil {
		t.Error("DeclaredConstant should reject an undeclared name")
	}

	tbl.Declare(symtab.NewConstant("K", types.IntConstant(5)))
	if _, err := c.DeclaredConstant(pos, "K"); err != nil {
		t.Errorf("DeclaredConstant should accept a constant, got %v", err)
	}
}

func TestDeclaredTypeWrongKind(t *testing.T) {
	tbl, _ := newTestTable()
	c := New(tbl)
	tbl.Declare(symtab.NewVariable("X", types.Int{}))
	if _, err := c.DeclaredType(pos, "X"); err == nil {
		t.Error("DeclaredType should reject a variable")
	}
}

func TestDeclaredVariableAcceptsConstantAndFunction(t *testing.T) {
	tbl, scope := newTestTable()
	c := New(tbl)

	tbl.Declare(symtab.NewConstant("K", types.IntConstant(1)))
	if _, err := c.DeclaredVariable(pos, "K"); err != nil {
		t.Errorf("DeclaredVariable should accept a constant, got %v", err)
	}

	fn := symtab.NewFunction("F", scope.Scope)
	fn.ReturnType = types.Int{}
	tbl.Declare(fn)
	if _, err := c.DeclaredVariable(pos, "F"); err != nil {
		t.Errorf("DeclaredVariable should accept a bare function reference, got %v", err)
	}
}

func TestDeclaredVariableParameterOwnership(t *testing.T) {
	tbl, scope := newTestTable()
	c := New(tbl)

	fn := symtab.NewFunction("F", scope.Scope)
	tbl.Declare(fn)
	tbl.EnterBlock(fn.Scope)
	param := symtab.NewParameter("N", symtab.ByValue, fn)
	param.VarType = types.Int{}
	tbl.Declare(param)
	fn.Params = append(fn.Params, param)

	if _, err := c.DeclaredVariable(pos, "N"); err != nil {
		t.Errorf("a parameter should be a valid variable reference inside its own function, got %v", err)
	}
	tbl.ExitBlock()

	other := symtab.NewFunction("G", scope.Scope)
	tbl.Declare(other)
	tbl.EnterBlock(other.Scope)
	// N belongs to F, not G; looking it up from inside G should fail since
	// it isn't even visible in G's scope chain (F and G are siblings).
	if _, err := c.DeclaredVariable(pos, "N"); err == nil {
		t.Error("a parameter from an unrelated function should not resolve")
	}
}

func TestDeclaredFunctionAndProcedure(t *testing.T) {
	tbl, scope := newTestTable()
	c := New(tbl)

	fn := symtab.NewFunction("F", scope.Scope)
	tbl.Declare(fn)
	proc := symtab.NewProcedure("P", scope.Scope)
	tbl.Declare(proc)

	if _, err := c.DeclaredFunction(pos, "P"); err == nil {
		t.Error("DeclaredFunction should reject a procedure")
	}
	if _, err := c.DeclaredProcedure(pos, "F"); err == nil {
		t.Error("DeclaredProcedure should reject a function")
	}
	if _, err := c.DeclaredFunction(pos, "F"); err != nil {
		t.Errorf("DeclaredFunction should accept a function, got %v", err)
	}
	if _, err := c.DeclaredProcedure(pos, "P"); err != nil {
		t.Errorf("DeclaredProcedure should accept a procedure, got %v", err)
	}
}

func TestDeclaredLValueIdent(t *testing.T) {
	tbl, scope := newTestTable()
	c := New(tbl)

	tbl.Declare(symtab.NewVariable("X", types.Int{}))
	if _, err := c.DeclaredLValueIdent(pos, "X"); err != nil {
		t.Errorf("a plain variable should be a valid lvalue, got %v", err)
	}

	tbl.Declare(symtab.NewConstant("K", types.IntConstant(1)))
	if _, err := c.DeclaredLValueIdent(pos, "K"); err == nil {
		t.Error("a constant should never be a valid lvalue")
	}

	fn := symtab.NewFunction("F", scope.Scope)
	fn.ReturnType = types.Int{}
	tbl.Declare(fn)
	tbl.EnterBlock(fn.Scope)
	if _, err := c.DeclaredLValueIdent(pos, "F"); err != nil {
		t.Errorf("a function assigning to its own name should be a valid lvalue, got %v", err)
	}
	tbl.ExitBlock()

	other := symtab.NewFunction("G", scope.Scope)
	tbl.Declare(other)
	tbl.EnterBlock(other.Scope)
	if _, err := c.DeclaredLValueIdent(pos, "F"); err == nil {
		t.Error("assigning to another function's name should not be a valid lvalue")
	}
}

func TestCheckIntCharBasicArrayType(t *testing.T) {
	if err := CheckIntType(pos, types.Int{}); err != nil {
		t.Errorf("CheckIntType should accept Int, got %v", err)
	}
	if err := CheckIntType(pos, types.Char{}); err == nil {
		t.Error("CheckIntType should reject Char")
	}
	if err := CheckCharType(pos, types.Char{}); err != nil {
		t.Errorf("CheckCharType should accept Char, got %v", err)
	}
	if err := CheckCharType(pos, types.Int{}); err == nil {
		t.Error("CheckCharType should reject Int")
	}
	if err := CheckBasicType(pos, types.Int{}); err != nil {
		t.Errorf("CheckBasicType should accept Int, got %v", err)
	}
	if err := CheckBasicType(pos, types.NewArray(3, types.Int{})); err == nil {
		t.Error("CheckBasicType should reject an array")
	}
	if err := CheckArrayType(pos, types.NewArray(3, types.Int{})); err != nil {
		t.Errorf("CheckArrayType should accept an array, got %v", err)
	}
	if err := CheckArrayType(pos, types.Int{}); err == nil {
		t.Error("CheckArrayType should reject a non-array")
	}
}

func TestCheckTypeEquality(t *testing.T) {
	if err := CheckTypeEquality(pos, types.Int{}, types.Int{}); err != nil {
		t.Errorf("Int should equal Int, got %v", err)
	}
	if err := CheckTypeEquality(pos, types.Int{}, types.Char{}); err == nil {
		t.Error("Int should not equal Char")
	}
	a := types.NewArray(5, types.Int{})
	b := types.NewArray(5, types.Int{})
	if err := CheckTypeEquality(pos, a, b); err != nil {
		t.Errorf("structurally equal arrays should be equal, got %v", err)
	}
}
