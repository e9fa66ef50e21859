package parser

import (
	"github.com/erikha1501/CompilerLab/internal/errors"
	"github.com/erikha1501/CompilerLab/internal/token"
	"github.com/erikha1501/CompilerLab/internal/types"
)

// parseType recognizes
// Type := INTEGER | CHAR | IDENT | ARRAY '(.' NUMBER '.)' OF Type.
func (p *Parser) parseType() (types.Type, error) {
	switch p.look.Kind {
	case token.Integer:
		if err := p.eat(token.Integer); err != nil {
			return nil, err
		}
		return types.Int{}, nil

	case token.Char:
		if err := p.eat(token.Char); err != nil {
			return nil, err
		}
		return types.Char{}, nil

	case token.Ident:
		if err := p.eat(token.Ident); err != nil {
			return nil, err
		}
		obj, err := p.checker.DeclaredType(p.cur.Pos, p.cur.Lexeme)
		if err != nil {
			return nil, err
		}
		return obj.ActualType.Clone(), nil

	case token.Array:
		if err := p.eat(token.Array); err != nil {
			return nil, err
		}
		if err := p.eat(token.LBracket); err != nil {
			return nil, err
		}
		if err := p.eat(token.Number); err != nil {
			return nil, err
		}
		size := p.cur.Value
		if err := p.eat(token.RBracket); err != nil {
			return nil, err
		}
		if err := p.eat(token.Of); err != nil {
			return nil, err
		}
		element, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return types.NewArray(size, element), nil

	default:
		return nil, errors.New(p.look.Pos, errors.MsgInvalidType)
	}
}

// parseBasicType recognizes BasicType := INTEGER | CHAR.
func (p *Parser) parseBasicType() (types.Type, error) {
	switch p.look.Kind {
	case token.Integer:
		if err := p.eat(token.Integer); err != nil {
			return nil, err
		}
		return types.Int{}, nil
	case token.Char:
		if err := p.eat(token.Char); err != nil {
			return nil, err
		}
		return types.Char{}, nil
	default:
		return nil, errors.New(p.look.Pos, errors.MsgInvalidBasicType)
	}
}
