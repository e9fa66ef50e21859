package lexer

import "github.com/erikha1501/CompilerLab/internal/token"

// eofByte is the sentinel currentChar takes at end of input.
const eofByte = -1

// sourceReader is the character reader: one-byte lookahead over the
// source buffer with running line/column tracking. It never interprets
// content — that is the classifier's and scanner's job.
//
// The caller (cmd/plc) reads the file into memory first and hands
// sourceReader the bytes, so I/O failures are reported by the CLI layer
// rather than this package.
type sourceReader struct {
	src         []byte
	pos         int
	currentChar int
	line        int
	col         int
}

func newSourceReader(src []byte) *sourceReader {
	r := &sourceReader{src: src, line: 1, col: 0}
	r.readChar()
	return r
}

// readChar advances to the next byte: column resets to 0 and line
// increments on '\n'; otherwise column just increments.
func (r *sourceReader) readChar() {
	if r.pos >= len(r.src) {
		r.currentChar = eofByte
		r.col++
		return
	}
	r.currentChar = int(r.src[r.pos])
	r.pos++
	r.col++
	if r.currentChar == '\n' {
		r.line++
		r.col = 0
	}
}

func (r *sourceReader) position() token.Position {
	return token.Position{Line: r.line, Col: r.col}
}
