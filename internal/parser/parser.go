// Package parser implements a recursive-descent, one-token-lookahead
// parser: it recognizes the grammar, builds the symtab.Object tree in the
// same pass, and runs the semantic.Checker predicates at the points the
// grammar calls for them.
package parser

import (
	"github.com/erikha1501/CompilerLab/internal/errors"
	"github.com/erikha1501/CompilerLab/internal/lexer"
	"github.com/erikha1501/CompilerLab/internal/semantic"
	"github.com/erikha1501/CompilerLab/internal/symtab"
	"github.com/erikha1501/CompilerLab/internal/token"
)

// Parser drives the lexer one token at a time and assembles the program's
// declaration tree in symtab.Table as it goes.
type Parser struct {
	lex *lexer.Lexer

	cur  token.Token // last token consumed by eat/scan
	look token.Token // one-token lookahead, always valid

	Table   *symtab.Table
	checker *semantic.Checker
}

// New creates a Parser over src and primes its lookahead token.
func New(src []byte) (*Parser, error) {
	table := symtab.New()
	p := &Parser{
		lex:     lexer.New(src),
		Table:   table,
		checker: semantic.New(table),
	}
	tok, err := p.lex.NextToken()
	if err != nil {
		return nil, err
	}
	p.look = tok
	return p, nil
}

// scan shifts the lookahead token into cur and requests the next one.
func (p *Parser) scan() error {
	p.cur = p.look
	tok, err := p.lex.NextToken()
	if err != nil {
		return err
	}
	p.look = tok
	return nil
}

// eat requires the lookahead token to have kind k, consuming it; a
// mismatch raises Missing(k) at the lookahead's position.
func (p *Parser) eat(k token.Kind) error {
	if p.look.Kind != k {
		return errors.Missing(p.look.Pos, k)
	}
	return p.scan()
}

func kindIn(k token.Kind, set ...token.Kind) bool {
	for _, s := range set {
		if k == s {
			return true
		}
	}
	return false
}

// Parse recognizes a whole Program and returns its symtab.Object, or the
// first diagnostic encountered.
func Parse(src []byte) (*symtab.Object, error) {
	p, err := New(src)
	if err != nil {
		return nil, err
	}
	return p.parseProgram()
}

func (p *Parser) parseProgram() (*symtab.Object, error) {
	if err := p.eat(token.Program); err != nil {
		return nil, err
	}
	if err := p.eat(token.Ident); err != nil {
		return nil, err
	}
	program := symtab.NewProgram(p.cur.Lexeme)

	if err := p.eat(token.Semi); err != nil {
		return nil, err
	}

	p.Table.Program = program
	p.Table.EnterBlock(program.Scope)

	if err := p.parseBlock(); err != nil {
		return nil, err
	}

	if err := p.eat(token.Period); err != nil {
		return nil, err
	}
	p.Table.ExitBlock()

	return program, nil
}
