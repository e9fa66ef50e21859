package parser

import (
	"github.com/erikha1501/CompilerLab/internal/errors"
	"github.com/erikha1501/CompilerLab/internal/semantic"
	"github.com/erikha1501/CompilerLab/internal/symtab"
	"github.com/erikha1501/CompilerLab/internal/token"
)

// parseStatements recognizes Statements := Statement {';' Statement}.
func (p *Parser) parseStatements() error {
	if err := p.parseStatement(); err != nil {
		return err
	}
	for p.look.Kind == token.Semi {
		if err := p.eat(token.Semi); err != nil {
			return err
		}
		if err := p.parseStatement(); err != nil {
			return err
		}
	}
	return nil
}

// parseStatement recognizes
// Statement := Assign | Call | Group | If | While | For | ε.
// The empty alternative is recognized by the FOLLOW set {';', END, ELSE}.
func (p *Parser) parseStatement() error {
	switch p.look.Kind {
	case token.Ident:
		return p.parseAssignSt()
	case token.Call:
		return p.parseCallSt()
	case token.Begin:
		return p.parseGroupSt()
	case token.If:
		return p.parseIfSt()
	case token.While:
		return p.parseWhileSt()
	case token.For:
		return p.parseForSt()
	case token.Semi, token.End, token.Else:
		return nil
	default:
		return errors.New(p.look.Pos, errors.MsgInvalidStatement)
	}
}

// parseAssignSt recognizes Assign := LValue ':=' Expression.
func (p *Parser) parseAssignSt() error {
	lvType, err := p.parseLValue()
	if err != nil {
		return err
	}
	if err := p.eat(token.Assign); err != nil {
		return err
	}
	exprPos := p.look.Pos
	exprType, err := p.parseExpression()
	if err != nil {
		return err
	}
	return semantic.CheckTypeEquality(exprPos, exprType, lvType)
}

// parseCallSt recognizes Call := CALL IDENT Arguments.
func (p *Parser) parseCallSt() error {
	if err := p.eat(token.Call); err != nil {
		return err
	}
	if err := p.eat(token.Ident); err != nil {
		return err
	}
	pos, name := p.cur.Pos, p.cur.Lexeme
	obj, err := p.checker.DeclaredProcedure(pos, name)
	if err != nil {
		return err
	}
	return p.parseArguments(pos, obj.Params)
}

// parseGroupSt recognizes Group := BEGIN Statements END.
func (p *Parser) parseGroupSt() error {
	if err := p.eat(token.Begin); err != nil {
		return err
	}
	if err := p.parseStatements(); err != nil {
		return err
	}
	return p.eat(token.End)
}

// parseIfSt recognizes If := IF Condition THEN Statement [ELSE Statement].
func (p *Parser) parseIfSt() error {
	if err := p.eat(token.If); err != nil {
		return err
	}
	if err := p.parseCondition(); err != nil {
		return err
	}
	if err := p.eat(token.Then); err != nil {
		return err
	}
	if err := p.parseStatement(); err != nil {
		return err
	}
	if p.look.Kind == token.Else {
		if err := p.eat(token.Else); err != nil {
			return err
		}
		return p.parseStatement()
	}
	return nil
}

// parseWhileSt recognizes While := WHILE Condition DO Statement.
func (p *Parser) parseWhileSt() error {
	if err := p.eat(token.While); err != nil {
		return err
	}
	if err := p.parseCondition(); err != nil {
		return err
	}
	if err := p.eat(token.Do); err != nil {
		return err
	}
	return p.parseStatement()
}

// parseForSt recognizes
// For := FOR IDENT ':=' Expression TO Expression DO Statement.
// The loop variable must be a plain declared Variable (not a parameter,
// not a function), and both bound expressions must match its type.
func (p *Parser) parseForSt() error {
	if err := p.eat(token.For); err != nil {
		return err
	}
	if err := p.eat(token.Ident); err != nil {
		return err
	}
	pos, name := p.cur.Pos, p.cur.Lexeme
	obj, err := p.checker.DeclaredVariable(pos, name)
	if err != nil {
		return err
	}
	if obj.Kind != symtab.KindVariable {
		return errors.New(pos, errors.MsgVariableExpected)
	}

	if err := p.eat(token.Assign); err != nil {
		return err
	}
	fromPos := p.look.Pos
	fromType, err := p.parseExpression()
	if err != nil {
		return err
	}
	if err := semantic.CheckTypeEquality(fromPos, fromType, obj.VarType); err != nil {
		return err
	}

	if err := p.eat(token.To); err != nil {
		return err
	}
	toPos := p.look.Pos
	toType, err := p.parseExpression()
	if err != nil {
		return err
	}
	if err := semantic.CheckTypeEquality(toPos, toType, obj.VarType); err != nil {
		return err
	}

	if err := p.eat(token.Do); err != nil {
		return err
	}
	return p.parseStatement()
}
