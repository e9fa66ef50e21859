package parser

import (
	"github.com/erikha1501/CompilerLab/internal/errors"
	"github.com/erikha1501/CompilerLab/internal/symtab"
	"github.com/erikha1501/CompilerLab/internal/token"
)

// parseBlock recognizes Block := [CONST ConstDecl {ConstDecl}] Block2.
func (p *Parser) parseBlock() error {
	if p.look.Kind == token.Const {
		if err := p.eat(token.Const); err != nil {
			return err
		}
		if err := p.parseConstDecl(); err != nil {
			return err
		}
		for p.look.Kind == token.Ident {
			if err := p.parseConstDecl(); err != nil {
				return err
			}
		}
	}
	return p.parseBlock2()
}

// parseBlock2 recognizes Block2 := [TYPE TypeDecl {TypeDecl}] Block3.
func (p *Parser) parseBlock2() error {
	if p.look.Kind == token.Type {
		if err := p.eat(token.Type); err != nil {
			return err
		}
		if err := p.parseTypeDecl(); err != nil {
			return err
		}
		for p.look.Kind == token.Ident {
			if err := p.parseTypeDecl(); err != nil {
				return err
			}
		}
	}
	return p.parseBlock3()
}

// parseBlock3 recognizes Block3 := [VAR VarDecl {VarDecl}] Block4.
func (p *Parser) parseBlock3() error {
	if p.look.Kind == token.Var {
		if err := p.eat(token.Var); err != nil {
			return err
		}
		if err := p.parseVarDecl(); err != nil {
			return err
		}
		for p.look.Kind == token.Ident {
			if err := p.parseVarDecl(); err != nil {
				return err
			}
		}
	}
	return p.parseBlock4()
}

// parseBlock4 recognizes Block4 := {FuncDecl | ProcDecl} BEGIN Statements END.
func (p *Parser) parseBlock4() error {
	for {
		switch p.look.Kind {
		case token.Function:
			if err := p.parseFuncDecl(); err != nil {
				return err
			}
		case token.Procedure:
			if err := p.parseProcDecl(); err != nil {
				return err
			}
		default:
			if err := p.eat(token.Begin); err != nil {
				return err
			}
			if err := p.parseStatements(); err != nil {
				return err
			}
			return p.eat(token.End)
		}
	}
}

// parseConstDecl recognizes ConstDecl := IDENT '=' Constant ';'.
func (p *Parser) parseConstDecl() error {
	if err := p.eat(token.Ident); err != nil {
		return err
	}
	pos, name := p.cur.Pos, p.cur.Lexeme
	if err := p.checker.FreshIdent(pos, name); err != nil {
		return err
	}

	if err := p.eat(token.Eq); err != nil {
		return err
	}
	value, err := p.parseConstant()
	if err != nil {
		return err
	}

	if err := p.eat(token.Semi); err != nil {
		return err
	}
	p.Table.Declare(symtab.NewConstant(name, value))
	return nil
}

// parseTypeDecl recognizes TypeDecl := IDENT '=' Type ';'.
func (p *Parser) parseTypeDecl() error {
	if err := p.eat(token.Ident); err != nil {
		return err
	}
	pos, name := p.cur.Pos, p.cur.Lexeme
	if err := p.checker.FreshIdent(pos, name); err != nil {
		return err
	}

	if err := p.eat(token.Eq); err != nil {
		return err
	}
	actual, err := p.parseType()
	if err != nil {
		return err
	}

	if err := p.eat(token.Semi); err != nil {
		return err
	}
	p.Table.Declare(symtab.NewType(name, actual))
	return nil
}

// parseVarDecl recognizes VarDecl := IDENT ':' Type ';'.
func (p *Parser) parseVarDecl() error {
	if err := p.eat(token.Ident); err != nil {
		return err
	}
	pos, name := p.cur.Pos, p.cur.Lexeme
	if err := p.checker.FreshIdent(pos, name); err != nil {
		return err
	}

	if err := p.eat(token.Colon); err != nil {
		return err
	}
	varType, err := p.parseType()
	if err != nil {
		return err
	}

	if err := p.eat(token.Semi); err != nil {
		return err
	}
	p.Table.Declare(symtab.NewVariable(name, varType))
	return nil
}

// parseFuncDecl recognizes
// FuncDecl := FUNCTION IDENT Params ':' BasicType ';' Block ';'.
func (p *Parser) parseFuncDecl() error {
	if err := p.eat(token.Function); err != nil {
		return err
	}
	if err := p.eat(token.Ident); err != nil {
		return err
	}
	pos, name := p.cur.Pos, p.cur.Lexeme
	if err := p.checker.FreshIdent(pos, name); err != nil {
		return err
	}

	fn := symtab.NewFunction(name, p.Table.CurrentScope())
	p.Table.Declare(fn)
	p.Table.EnterBlock(fn.Scope)

	if err := p.parseParams(fn); err != nil {
		return err
	}

	if err := p.eat(token.Colon); err != nil {
		return err
	}
	retType, err := p.parseBasicType()
	if err != nil {
		return err
	}
	fn.ReturnType = retType

	if err := p.eat(token.Semi); err != nil {
		return err
	}
	if err := p.parseBlock(); err != nil {
		return err
	}
	if err := p.eat(token.Semi); err != nil {
		return err
	}
	p.Table.ExitBlock()
	return nil
}

// parseProcDecl recognizes
// ProcDecl := PROCEDURE IDENT Params ';' Block ';'.
func (p *Parser) parseProcDecl() error {
	if err := p.eat(token.Procedure); err != nil {
		return err
	}
	if err := p.eat(token.Ident); err != nil {
		return err
	}
	pos, name := p.cur.Pos, p.cur.Lexeme
	if err := p.checker.FreshIdent(pos, name); err != nil {
		return err
	}

	proc := symtab.NewProcedure(name, p.Table.CurrentScope())
	p.Table.Declare(proc)
	p.Table.EnterBlock(proc.Scope)

	if err := p.parseParams(proc); err != nil {
		return err
	}

	if err := p.eat(token.Semi); err != nil {
		return err
	}
	if err := p.parseBlock(); err != nil {
		return err
	}
	if err := p.eat(token.Semi); err != nil {
		return err
	}
	p.Table.ExitBlock()
	return nil
}

// parseParams recognizes Params := ['(' Param {';' Param} ')'], attaching
// each parameter to owner (both its scope's object list and owner.Params,
// the latter non-owning).
func (p *Parser) parseParams(owner *symtab.Object) error {
	if p.look.Kind != token.LParen {
		return nil
	}
	if err := p.eat(token.LParen); err != nil {
		return err
	}
	if err := p.parseParam(owner); err != nil {
		return err
	}
	for p.look.Kind == token.Semi {
		if err := p.eat(token.Semi); err != nil {
			return err
		}
		if err := p.parseParam(owner); err != nil {
			return err
		}
	}
	return p.eat(token.RParen)
}

// parseParam recognizes Param := [VAR] IDENT ':' BasicType.
func (p *Parser) parseParam(owner *symtab.Object) error {
	passing := symtab.ByValue
	if p.look.Kind == token.Var {
		if err := p.eat(token.Var); err != nil {
			return err
		}
		passing = symtab.ByReference
	}

	if p.look.Kind != token.Ident {
		return errors.New(p.look.Pos, errors.MsgInvalidParameter)
	}
	if err := p.eat(token.Ident); err != nil {
		return err
	}
	pos, name := p.cur.Pos, p.cur.Lexeme
	if err := p.checker.FreshIdent(pos, name); err != nil {
		return err
	}

	if err := p.eat(token.Colon); err != nil {
		return err
	}
	paramType, err := p.parseBasicType()
	if err != nil {
		return err
	}

	param := symtab.NewParameter(name, passing, owner)
	param.VarType = paramType
	p.Table.Declare(param)
	owner.Params = append(owner.Params, param)
	return nil
}
