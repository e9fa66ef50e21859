// Package lexer implements the character-driven scanner: it consumes
// bytes from a sourceReader, classifies them, and produces the token
// stream the parser consumes one token at a time.
//
// Key patterns:
//   - New(src) constructs a Lexer positioned at the first byte.
//   - NextToken() returns the next valid token, skipping blanks and
//     comments internally, and returning a *errors.Diagnostic instead of
//     exiting on any lexical fault.
package lexer

import (
	"strconv"
	"strings"

	"github.com/erikha1501/CompilerLab/internal/errors"
	"github.com/erikha1501/CompilerLab/internal/token"
)

// Lexer is the scanner component.
type Lexer struct {
	r *sourceReader
}

// New creates a Lexer over the given source bytes.
func New(src []byte) *Lexer {
	return &Lexer{r: newSourceReader(src)}
}

// NextToken returns the next valid token, or a *errors.Diagnostic if the
// source is lexically malformed at the current position. It never
// returns a token of kind token.None: comment and blank skipping loop
// internally rather than bouncing a placeholder token back to the caller.
func (l *Lexer) NextToken() (token.Token, error) {
	r := l.r

	for {
		if r.currentChar == eofByte {
			return token.Token{Kind: token.EOF, Pos: r.position()}, nil
		}

		c := classify(r.currentChar)

		switch c {
		case classSpace:
			l.skipBlank()
			continue

		case classLetter:
			return l.readIdentOrKeyword()

		case classDigit:
			return l.readNumber()

		case classQuote:
			return l.readCharLiteral()

		case classDoubleQuote:
			r.readChar()
			l.skipLineComment()
			continue

		case classPlus:
			return l.single(token.Plus)
		case classMinus:
			return l.single(token.Minus)
		case classTimes:
			return l.single(token.Times)
		case classSlash:
			return l.single(token.Slash)
		case classEq:
			return l.single(token.Eq)
		case classComma:
			return l.single(token.Comma)
		case classSemi:
			return l.single(token.Semi)
		case classRParen:
			return l.single(token.RParen)

		case classLt:
			return l.oneOrTwo(token.Lt, '=', token.Le)
		case classGt:
			return l.oneOrTwo(token.Gt, '=', token.Ge)
		case classColon:
			return l.oneOrTwo(token.Colon, '=', token.Assign)

		case classExclaim:
			pos := r.position()
			r.readChar()
			if r.currentChar == '=' {
				r.readChar()
				return token.Token{Kind: token.Neq, Pos: pos, Lexeme: "!="}, nil
			}
			return token.Token{}, errors.New(pos, errors.MsgInvalidSymbol)

		case classPeriod:
			pos := r.position()
			r.readChar()
			if r.currentChar == ')' {
				r.readChar()
				return token.Token{Kind: token.RBracket, Pos: pos, Lexeme: ".)"}, nil
			}
			return token.Token{Kind: token.Period, Pos: pos, Lexeme: "."}, nil

		case classLParen:
			pos := r.position()
			r.readChar()
			switch r.currentChar {
			case '.':
				r.readChar()
				return token.Token{Kind: token.LBracket, Pos: pos, Lexeme: "(."}, nil
			case '*':
				r.readChar()
				if err := l.skipBlockComment(); err != nil {
					return token.Token{}, err
				}
				continue
			default:
				return token.Token{Kind: token.LParen, Pos: pos, Lexeme: "("}, nil
			}

		default:
			pos := r.position()
			return token.Token{}, errors.New(pos, errors.MsgInvalidSymbol)
		}
	}
}

// single consumes exactly one byte and returns it as tok.
func (l *Lexer) single(kind token.Kind) (token.Token, error) {
	pos := l.r.position()
	lexeme := string(rune(l.r.currentChar))
	l.r.readChar()
	return token.Token{Kind: kind, Pos: pos, Lexeme: lexeme}, nil
}

// oneOrTwo handles the `<`, `>`, `:` family: a one-char token unless the
// lookahead byte is next, in which case it's a two-char token.
func (l *Lexer) oneOrTwo(oneKind token.Kind, next byte, twoKind token.Kind) (token.Token, error) {
	pos := l.r.position()
	first := byte(l.r.currentChar)
	l.r.readChar()
	if l.r.currentChar == int(next) {
		l.r.readChar()
		return token.Token{Kind: twoKind, Pos: pos, Lexeme: string(first) + string(next)}, nil
	}
	return token.Token{Kind: oneKind, Pos: pos, Lexeme: string(first)}, nil
}

func (l *Lexer) skipBlank() {
	for l.r.currentChar != eofByte && classify(l.r.currentChar) == classSpace {
		l.r.readChar()
	}
}

// skipBlockComment discards characters after "(*" up to and including the
// matching "*)"; the innermost "*)" closes, comments do not nest.
func (l *Lexer) skipBlockComment() error {
	r := l.r
	for {
		if r.currentChar == eofByte {
			return errors.New(r.position(), errors.MsgEndOfCommentExpected)
		}
		if r.currentChar == '*' {
			r.readChar()
			if r.currentChar == ')' {
				r.readChar()
				return nil
			}
			continue
		}
		r.readChar()
	}
}

// skipLineComment discards characters up to (but not including) the next
// '\n', or to EOF.
func (l *Lexer) skipLineComment() {
	for l.r.currentChar != eofByte && l.r.currentChar != '\n' {
		l.r.readChar()
	}
}

// readIdentOrKeyword accumulates letters/digits up to MaxIdentLen,
// upper-casing as it goes so identifiers are case-insensitive, then
// classifies the result against the keyword table.
func (l *Lexer) readIdentOrKeyword() (token.Token, error) {
	r := l.r
	pos := r.position()

	var buf strings.Builder
	for r.currentChar != eofByte {
		cl := classify(r.currentChar)
		if cl != classLetter && cl != classDigit {
			break
		}
		if buf.Len() >= MaxIdentLen {
			return token.Token{}, errors.New(pos, errors.MsgIdentTooLong)
		}
		buf.WriteByte(upper(byte(r.currentChar)))
		r.readChar()
	}

	lexeme := buf.String()
	if kind, ok := token.LookupKeyword(lexeme); ok {
		return token.Token{Kind: kind, Pos: pos, Lexeme: lexeme}, nil
	}
	return token.Token{Kind: token.Ident, Pos: pos, Lexeme: lexeme}, nil
}

// readNumber accumulates digits up to MaxNumLen, then decimal-parses the
// lexeme.
func (l *Lexer) readNumber() (token.Token, error) {
	r := l.r
	pos := r.position()

	var buf strings.Builder
	for r.currentChar != eofByte && classify(r.currentChar) == classDigit {
		if buf.Len() >= MaxNumLen {
			return token.Token{}, errors.New(pos, errors.MsgNumericLiteralTooLong)
		}
		buf.WriteByte(byte(r.currentChar))
		r.readChar()
	}

	lexeme := buf.String()
	value, err := strconv.Atoi(lexeme)
	if err != nil {
		return token.Token{}, errors.New(pos, errors.MsgInternalError)
	}
	return token.Token{Kind: token.Number, Pos: pos, Lexeme: lexeme, Value: value}, nil
}

// readCharLiteral recognizes a single printable byte (0x20-0x7E) between
// single quotes.
func (l *Lexer) readCharLiteral() (token.Token, error) {
	r := l.r
	pos := r.position()

	r.readChar() // past opening '
	ch := r.currentChar
	if ch >= 0x20 && ch <= 0x7E {
		r.readChar()
		if r.currentChar == '\'' {
			r.readChar()
			return token.Token{
				Kind:   token.CharLiteral,
				Pos:    pos,
				Lexeme: string(rune(ch)),
				Value:  ch,
			}, nil
		}
	}
	return token.Token{}, errors.New(pos, errors.MsgInvalidConstChar)
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
