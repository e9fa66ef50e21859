// Package errors formats the single fatal diagnostic this compiler ever
// produces: a source position paired with one of a closed set of
// messages. Every layer of the pipeline (lexer, parser, semantic checks)
// returns a *Diagnostic as an ordinary Go error instead of calling
// os.Exit directly; a single top-level boundary in cmd/plc prints it and
// sets the process exit code.
package errors

import (
	"fmt"

	"github.com/erikha1501/CompilerLab/internal/token"
)

// Diagnostic is the only error type this compiler emits to the user.
type Diagnostic struct {
	Pos     token.Position
	Message string
}

// Error implements the error interface and is also the exact line printed
// to standard output: "<line>-<col>:<message>".
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s:%s", d.Pos, d.Message)
}

// New builds a Diagnostic from a position and a pre-formatted message,
// normally one of the Msg* constants below.
func New(pos token.Position, message string) *Diagnostic {
	return &Diagnostic{Pos: pos, Message: message}
}

// Missing reports that eat() expected a different token kind; it is the
// only diagnostic that carries a formatted argument.
func Missing(pos token.Position, want token.Kind) *Diagnostic {
	return New(pos, fmt.Sprintf("Missing %s", want))
}

const (
	MsgEndOfCommentExpected      = "End of comment expected!"
	MsgIdentTooLong              = "Identifier too long!"
	MsgNumericLiteralTooLong     = "Numeric literal too long!"
	MsgInvalidConstChar          = "Invalid const char!"
	MsgInvalidSymbol             = "Invalid symbol!"
	MsgInternalError             = "Internal error!"

	MsgInvalidConstant   = "Invalid constant!"
	MsgInvalidType       = "Invalid type!"
	MsgInvalidBasicType  = "Invalid basic type!"
	MsgInvalidParameter  = "Invalid parameter!"
	MsgInvalidStatement  = "Invalid statement!"
	MsgInvalidArguments  = "Invalid arguments!"
	MsgInvalidComparator = "Invalid comparator!"
	MsgInvalidExpression = "Invalid expression!"
	MsgInvalidTerm       = "Invalid term!"
	MsgInvalidFactor     = "Invalid factor!"

	MsgVariableExpected  = "A variable expected."
	MsgFunctionExpected  = "A function identifier expected."
	MsgProcedureExpected = "A procedure identifier expected."
	MsgInvalidLValue     = "Invalid lvalue in assignment."

	MsgUndeclaredIdent        = "Undeclared identifier."
	MsgUndeclaredConstant     = "Undeclared constant."
	MsgUndeclaredIntConstant  = "Undeclared integer constant."
	MsgUndeclaredType         = "Undeclared type."
	MsgUndeclaredVariable     = "Undeclared variable."
	MsgUndeclaredFunction     = "Undeclared function."
	MsgUndeclaredProcedure    = "Undeclared procedure."
	MsgDuplicateIdent         = "Duplicate identifier."
	MsgTypeInconsistency      = "Type inconsistency."
	MsgParamArgInconsistency  = "Parameters and arguments are inconsistent."
)
