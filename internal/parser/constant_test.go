package parser

import (
	"testing"

	"github.com/erikha1501/CompilerLab/internal/symtab"
	"github.com/erikha1501/CompilerLab/internal/types"
)

func newTestParser(t *testing.T, src string) *Parser {
	t.Helper()
	p, err := New([]byte(src))
	if err != nil {
		t.Fatalf("unexpected lex error priming parser: %v", err)
	}
	return p
}

func TestParseConstantSigned(t *testing.T) {
	p := newTestParser(t, "+5")
	c, err := p.parseConstant()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.IsInt() || c.IntValue() != 5 {
		t.Errorf("got %v, want +5", c)
	}

	p = newTestParser(t, "-5")
	c, err = p.parseConstant()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.IsInt() || c.IntValue() != -5 {
		t.Errorf("got %v, want -5", c)
	}
}

func TestParseConstantNegatedCharRejected(t *testing.T) {
	p := newTestParser(t, "-'a'")
	_, err := p.parseConstant()
	if err == nil {
		t.Fatal("expected an error: negating a char constant is meaningless")
	}
}

func TestParseConstantIdentReference(t *testing.T) {
	p := newTestParser(t, "K")
	table := symtab.New()
	program := symtab.NewProgram("P")
	table.Program = program
	table.EnterBlock(program.Scope)
	table.Declare(symtab.NewConstant("K", types.IntConstant(42)))
	p.Table = table
	p.checker.Table = table

	c, err := p.parseConstant()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.IsInt() || c.IntValue() != 42 {
		t.Errorf("got %v, want the value bound to K (42)", c)
	}
}

func TestParseUConstantAllForms(t *testing.T) {
	cases := []struct {
		src      string
		wantChar bool
	}{
		{"7", false},
		{"'z'", true},
	}
	for _, tc := range cases {
		p := newTestParser(t, tc.src)
		c, err := p.parseUConstant()
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.src, err)
		}
		if c.IsChar() != tc.wantChar {
			t.Errorf("%q: IsChar() = %v, want %v", tc.src, c.IsChar(), tc.wantChar)
		}
	}
}

func TestParseUConstantInvalid(t *testing.T) {
	p := newTestParser(t, "+")
	if _, err := p.parseUConstant(); err == nil {
		t.Fatal("expected an error: '+' is not a valid unsigned constant")
	}
}
