package parser

import (
	"github.com/erikha1501/CompilerLab/internal/errors"
	"github.com/erikha1501/CompilerLab/internal/token"
	"github.com/erikha1501/CompilerLab/internal/types"
)

// parseConstant recognizes
// Constant := CHAR | '+' Const2 | '-' Const2 | Const2.
//
// Negating a constant requires the resolved value to be an integer;
// negating a char constant has no sensible meaning and is rejected
// rather than silently reinterpreted as a bit pattern.
func (p *Parser) parseConstant() (types.Constant, error) {
	switch p.look.Kind {
	case token.CharLiteral:
		if err := p.eat(token.CharLiteral); err != nil {
			return types.Constant{}, err
		}
		return types.CharConstant(byte(p.cur.Value)), nil

	case token.Plus:
		if err := p.eat(token.Plus); err != nil {
			return types.Constant{}, err
		}
		return p.parseConst2()

	case token.Minus:
		if err := p.eat(token.Minus); err != nil {
			return types.Constant{}, err
		}
		pos := p.cur.Pos
		value, err := p.parseConst2()
		if err != nil {
			return types.Constant{}, err
		}
		if !value.IsInt() {
			return types.Constant{}, errors.New(pos, errors.MsgInvalidConstant)
		}
		return types.IntConstant(-value.IntValue()), nil

	default:
		return p.parseConst2()
	}
}

// parseConst2 recognizes Const2 := IDENT | NUMBER.
func (p *Parser) parseConst2() (types.Constant, error) {
	switch p.look.Kind {
	case token.Ident:
		if err := p.eat(token.Ident); err != nil {
			return types.Constant{}, err
		}
		obj, err := p.checker.DeclaredConstant(p.cur.Pos, p.cur.Lexeme)
		if err != nil {
			return types.Constant{}, err
		}
		return obj.ConstValue, nil

	case token.Number:
		if err := p.eat(token.Number); err != nil {
			return types.Constant{}, err
		}
		return types.IntConstant(p.cur.Value), nil

	default:
		return types.Constant{}, errors.New(p.look.Pos, errors.MsgInvalidConstant)
	}
}

// parseUConstant recognizes UConstant := NUMBER | IDENT | CHAR. It is not
// reached from Program's grammar (array bounds and const declarations use
// NUMBER and Constant respectively); kept here, and exercised directly by
// this package's tests, as the unsigned-literal building block a caller
// outside the Program grammar (for instance a future REPL-style
// single-constant evaluator) would reach for.
func (p *Parser) parseUConstant() (types.Constant, error) {
	switch p.look.Kind {
	case token.Number:
		if err := p.eat(token.Number); err != nil {
			return types.Constant{}, err
		}
		return types.IntConstant(p.cur.Value), nil

	case token.Ident:
		if err := p.eat(token.Ident); err != nil {
			return types.Constant{}, err
		}
		obj, err := p.checker.DeclaredConstant(p.cur.Pos, p.cur.Lexeme)
		if err != nil {
			return types.Constant{}, err
		}
		return obj.ConstValue, nil

	case token.CharLiteral:
		if err := p.eat(token.CharLiteral); err != nil {
			return types.Constant{}, err
		}
		return types.CharConstant(byte(p.cur.Value)), nil

	default:
		return types.Constant{}, errors.New(p.look.Pos, errors.MsgInvalidConstant)
	}
}
