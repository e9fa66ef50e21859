package lexer

import (
	"testing"

	"github.com/erikha1501/CompilerLab/internal/token"
)

func TestNextTokenBasics(t *testing.T) {
	input := `PROGRAM foo;
VAR x : Integer;
BEGIN
  x := 1 + 2 * 3
END.`

	tests := []struct {
		kind   token.Kind
		lexeme string
	}{
		{token.Program, "PROGRAM"},
		{token.Ident, "FOO"},
		{token.Semi, ";"},
		{token.Var, "VAR"},
		{token.Ident, "X"},
		{token.Colon, ":"},
		{token.Integer, "INTEGER"},
		{token.Semi, ";"},
		{token.Begin, "BEGIN"},
		{token.Ident, "X"},
		{token.Assign, ":="},
		{token.Number, "1"},
		{token.Plus, "+"},
		{token.Number, "2"},
		{token.Times, "*"},
		{token.Number, "3"},
		{token.End, "END"},
		{token.Period, "."},
		{token.EOF, ""},
	}

	l := New([]byte(input))
	for i, tt := range tests {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("tests[%d]: unexpected error: %v", i, err)
		}
		if tok.Kind != tt.kind {
			t.Fatalf("tests[%d]: kind = %v, want %v", i, tok.Kind, tt.kind)
		}
		if tok.Kind != token.EOF && tok.Lexeme != tt.lexeme {
			t.Fatalf("tests[%d]: lexeme = %q, want %q", i, tok.Lexeme, tt.lexeme)
		}
	}
}

func TestIdentifierCaseInsensitivity(t *testing.T) {
	l1 := New([]byte("myVar"))
	l2 := New([]byte("MYVAR"))

	t1, err := l1.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t2, err := l2.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if t1.Lexeme != t2.Lexeme {
		t.Errorf("lexemes differ: %q vs %q", t1.Lexeme, t2.Lexeme)
	}
}

func TestSymbolDisambiguation(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"<", token.Lt},
		{"<=", token.Le},
		{">", token.Gt},
		{">=", token.Ge},
		{":", token.Colon},
		{":=", token.Assign},
		{".", token.Period},
		{".)", token.RBracket},
		{"(", token.LParen},
		{"(.", token.LBracket},
		{"!=", token.Neq},
	}

	for _, tt := range tests {
		l := New([]byte(tt.input))
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", tt.input, err)
		}
		if tok.Kind != tt.kind {
			t.Errorf("input %q: kind = %v, want %v", tt.input, tok.Kind, tt.kind)
		}
	}
}

func TestBlockComment(t *testing.T) {
	l := New([]byte("(* this is a comment *) BEGIN"))
	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Kind != token.Begin {
		t.Fatalf("kind = %v, want Begin", tok.Kind)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	l := New([]byte("(* never closes"))
	_, err := l.NextToken()
	if err == nil {
		t.Fatal("expected an error for unterminated comment")
	}
}

func TestLineComment(t *testing.T) {
	l := New([]byte("\" this is ignored\nBEGIN"))
	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Kind != token.Begin {
		t.Fatalf("kind = %v, want Begin", tok.Kind)
	}
}

func TestCharLiteral(t *testing.T) {
	l := New([]byte("'a'"))
	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Kind != token.CharLiteral || tok.Value != int('a') {
		t.Fatalf("got kind=%v value=%d, want CharLiteral 'a'", tok.Kind, tok.Value)
	}
}

func TestInvalidConstChar(t *testing.T) {
	l := New([]byte("'ab'"))
	_, err := l.NextToken()
	if err == nil {
		t.Fatal("expected an error for a multi-char literal")
	}
}

func TestIdentTooLong(t *testing.T) {
	l := New([]byte("abcdefghijklmnop")) // 16 letters, one past MaxIdentLen
	_, err := l.NextToken()
	if err == nil {
		t.Fatal("expected an error for an over-long identifier")
	}
}

func TestNumTooLong(t *testing.T) {
	l := New([]byte("1234567890123")) // 13 digits, one past MaxNumLen
	_, err := l.NextToken()
	if err == nil {
		t.Fatal("expected an error for an over-long number")
	}
}

func TestInvalidSymbol(t *testing.T) {
	l := New([]byte("?"))
	_, err := l.NextToken()
	if err == nil {
		t.Fatal("expected an error for an unrecognized symbol")
	}
}

func TestPositionTracking(t *testing.T) {
	l := New([]byte("A\nBB"))
	first, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Pos.Line != 1 || first.Pos.Col != 1 {
		t.Fatalf("first token pos = %v, want 1-1", first.Pos)
	}
	second, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Pos.Line != 2 || second.Pos.Col != 1 {
		t.Fatalf("second token pos = %v, want 2-1", second.Pos)
	}
}
