package parser

import (
	"github.com/erikha1501/CompilerLab/internal/errors"
	"github.com/erikha1501/CompilerLab/internal/semantic"
	"github.com/erikha1501/CompilerLab/internal/symtab"
	"github.com/erikha1501/CompilerLab/internal/token"
	"github.com/erikha1501/CompilerLab/internal/types"
)

// followExpression3 and followTerm2 are the FOLLOW-set tokens accepted
// as "stop, no error" at the tail of an expression/term — any other
// token at that point is an invalid expression/term.
var followExpression3 = []token.Kind{
	token.To, token.Do, token.RParen, token.Comma,
	token.Eq, token.Neq, token.Le, token.Lt, token.Ge, token.Gt,
	token.RBracket, token.Semi, token.End, token.Else, token.Then,
}

var followTerm2 = []token.Kind{
	token.Plus, token.Minus, token.To, token.Do, token.RParen, token.Comma,
	token.Eq, token.Neq, token.Le, token.Lt, token.Ge, token.Gt,
	token.RBracket, token.Semi, token.End, token.Else, token.Then,
}

var followArguments = []token.Kind{
	token.Semi, token.End, token.Else, token.Times, token.Slash,
	token.Plus, token.Minus, token.To, token.Do, token.Comma,
	token.Eq, token.Neq, token.Le, token.Lt, token.Ge, token.Gt,
	token.RParen, token.RBracket, token.Then,
}

// parseLValue recognizes LValue := IDENT Indexes, returning the type of
// the (possibly subscripted) storage location.
func (p *Parser) parseLValue() (types.Type, error) {
	if err := p.eat(token.Ident); err != nil {
		return nil, err
	}
	pos, name := p.cur.Pos, p.cur.Lexeme
	obj, err := p.checker.DeclaredLValueIdent(pos, name)
	if err != nil {
		return nil, err
	}

	var t types.Type
	switch obj.Kind {
	case symtab.KindFunction:
		t = obj.ReturnType
	default:
		t = obj.VarType
	}
	return p.parseIndexes(t)
}

// parseIndexes recognizes Indexes := { '(.' Expression '.)' }, threading
// t through each subscript: t must be an Array, the subscript expression
// must be Int, and t becomes the element type for the next subscript.
func (p *Parser) parseIndexes(t types.Type) (types.Type, error) {
	for p.look.Kind == token.LBracket {
		bracketPos := p.cur.Pos
		if err := p.eat(token.LBracket); err != nil {
			return nil, err
		}
		if err := semantic.CheckArrayType(bracketPos, t); err != nil {
			return nil, err
		}
		idxPos := p.look.Pos
		idxType, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := semantic.CheckIntType(idxPos, idxType); err != nil {
			return nil, err
		}
		if err := p.eat(token.RBracket); err != nil {
			return nil, err
		}
		t = t.(types.Array).Element
	}
	return t, nil
}

// parseArguments recognizes
// Arguments := [ '(' Expression {',' Expression} ')' ],
// matching each parsed argument against params positionally: byValue
// arguments are any Expression with an equal type, byReference arguments
// must be an L-value with an equal type. pos is the call site's own
// position, used for the "Parameters/arguments inconsistent" diagnostic
// when the parenthesized form is absent or the argument count differs
// from len(params).
func (p *Parser) parseArguments(pos token.Position, params []*symtab.Object) error {
	if p.look.Kind != token.LParen {
		if !kindIn(p.look.Kind, followArguments...) {
			return errors.New(p.look.Pos, errors.MsgInvalidArguments)
		}
		if len(params) != 0 {
			return errors.New(pos, errors.MsgParamArgInconsistency)
		}
		return nil
	}

	if err := p.eat(token.LParen); err != nil {
		return err
	}

	count := 0
	for {
		argPos := p.look.Pos
		var argType types.Type
		var err error
		if count < len(params) && params[count].Passing == symtab.ByReference {
			argType, err = p.parseLValue()
		} else {
			argType, err = p.parseExpression()
		}
		if err != nil {
			return err
		}
		if count < len(params) {
			if err := semantic.CheckTypeEquality(argPos, argType, params[count].VarType); err != nil {
				return err
			}
		}
		count++

		if p.look.Kind != token.Comma {
			break
		}
		if err := p.eat(token.Comma); err != nil {
			return err
		}
	}

	if err := p.eat(token.RParen); err != nil {
		return err
	}
	if count != len(params) {
		return errors.New(pos, errors.MsgParamArgInconsistency)
	}
	return nil
}

// parseCondition recognizes Condition := Expression CmpOp Expression;
// both sides must be of a basic type and structurally equal.
func (p *Parser) parseCondition() error {
	lhsPos := p.look.Pos
	lhsType, err := p.parseExpression()
	if err != nil {
		return err
	}
	if err := semantic.CheckBasicType(lhsPos, lhsType); err != nil {
		return err
	}

	switch p.look.Kind {
	case token.Eq, token.Neq, token.Le, token.Lt, token.Ge, token.Gt:
		if err := p.eat(p.look.Kind); err != nil {
			return err
		}
	default:
		return errors.New(p.look.Pos, errors.MsgInvalidComparator)
	}

	rhsPos := p.look.Pos
	rhsType, err := p.parseExpression()
	if err != nil {
		return err
	}
	if err := semantic.CheckBasicType(rhsPos, rhsType); err != nil {
		return err
	}
	return semantic.CheckTypeEquality(rhsPos, rhsType, lhsType)
}

// parseExpression recognizes
// Expression := ['+' | '-'] Term {('+'|'-') Term}.
// A unary sign and every '+'/'-' require Int operands; the result is Int.
func (p *Parser) parseExpression() (types.Type, error) {
	signed := p.look.Kind == token.Plus || p.look.Kind == token.Minus
	if p.look.Kind == token.Plus {
		if err := p.eat(token.Plus); err != nil {
			return nil, err
		}
	} else if p.look.Kind == token.Minus {
		if err := p.eat(token.Minus); err != nil {
			return nil, err
		}
	}

	pos := p.look.Pos
	t, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if signed {
		if err := semantic.CheckIntType(pos, t); err != nil {
			return nil, err
		}
	}

	for {
		switch p.look.Kind {
		case token.Plus, token.Minus:
			if err := semantic.CheckIntType(pos, t); err != nil {
				return nil, err
			}
			if err := p.eat(p.look.Kind); err != nil {
				return nil, err
			}
			rhsPos := p.look.Pos
			rhs, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			if err := semantic.CheckIntType(rhsPos, rhs); err != nil {
				return nil, err
			}
			t = types.Int{}
		default:
			if !kindIn(p.look.Kind, followExpression3...) {
				return nil, errors.New(p.look.Pos, errors.MsgInvalidExpression)
			}
			return t, nil
		}
	}
}

// parseTerm recognizes Term := Factor {('*'|'/') Factor}.
func (p *Parser) parseTerm() (types.Type, error) {
	pos := p.look.Pos
	t, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for {
		switch p.look.Kind {
		case token.Times, token.Slash:
			if err := semantic.CheckIntType(pos, t); err != nil {
				return nil, err
			}
			if err := p.eat(p.look.Kind); err != nil {
				return nil, err
			}
			rhsPos := p.look.Pos
			rhs, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			if err := semantic.CheckIntType(rhsPos, rhs); err != nil {
				return nil, err
			}
			t = types.Int{}
		default:
			if !kindIn(p.look.Kind, followTerm2...) {
				return nil, errors.New(p.look.Pos, errors.MsgInvalidTerm)
			}
			return t, nil
		}
	}
}

// parseFactor recognizes Factor := NUMBER | CHAR | IDENT [Indexes |
// Arguments] | '(' Expression ')'.
func (p *Parser) parseFactor() (types.Type, error) {
	switch p.look.Kind {
	case token.Number:
		if err := p.eat(token.Number); err != nil {
			return nil, err
		}
		return types.Int{}, nil

	case token.CharLiteral:
		if err := p.eat(token.CharLiteral); err != nil {
			return nil, err
		}
		return types.Char{}, nil

	case token.Ident:
		if err := p.eat(token.Ident); err != nil {
			return nil, err
		}
		pos, name := p.cur.Pos, p.cur.Lexeme
		obj, err := p.checker.DeclaredVariable(pos, name)
		if err != nil {
			return nil, err
		}

		switch obj.Kind {
		case symtab.KindFunction:
			if p.look.Kind == token.LParen {
				if err := p.parseArguments(pos, obj.Params); err != nil {
					return nil, err
				}
			} else if len(obj.Params) != 0 {
				return nil, errors.New(pos, errors.MsgParamArgInconsistency)
			}
			return obj.ReturnType, nil

		case symtab.KindConstant:
			return obj.ConstValue.Type(), nil

		default: // Variable or Parameter
			if p.look.Kind == token.LBracket {
				return p.parseIndexes(obj.VarType)
			}
			return obj.VarType, nil
		}

	case token.LParen:
		if err := p.eat(token.LParen); err != nil {
			return nil, err
		}
		t, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.eat(token.RParen); err != nil {
			return nil, err
		}
		return t, nil

	default:
		return nil, errors.New(p.look.Pos, errors.MsgInvalidFactor)
	}
}
