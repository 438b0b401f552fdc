/*
File    : calf/source/source.go
*/

// Package source implements the pull-based character source the lexer
// drives: peek the current character without consuming it, then advance.
package source

import (
	"bufio"
	"io"
	"strings"

	"github.com/arrdem/calf/pos"
)

// Source is the contract the lexer requires of a character stream. Peek is
// idempotent between calls to Advance. Advance after EOI is a programming
// error and panics, matching spec.md's "programming errors... need not be
// recoverable".
type Source interface {
	// Peek returns the position and character at the current read point, or
	// ok=false once the stream is exhausted.
	Peek() (position pos.Position, char rune, ok bool)
	// Advance consumes the character returned by the most recent Peek.
	Advance()
}

// Reader adapts an io.Reader into a Source, tracking line/column/offset as
// it goes. Characters are decoded as runes; each rune is one "character"
// for position-tracking purposes regardless of its UTF-8 width, matching
// the single-code-unit advance rule in spec.md §4.1.
type Reader struct {
	br          *bufio.Reader
	cur         rune
	curPos      pos.Position
	nextPos     pos.Position
	haveCurrent bool
	sawNewline  bool
	eof         bool
}

var _ Source = (*Reader)(nil)

// NewReader wraps r as a character Source, reading from the start position.
func NewReader(r io.Reader) *Reader {
	rd := &Reader{
		br:      bufio.NewReader(r),
		nextPos: pos.Start(),
	}
	rd.fill()
	return rd
}

// NewString wraps a string as a character Source.
func NewString(s string) *Reader {
	return NewReader(strings.NewReader(s))
}

func (r *Reader) fill() {
	if r.eof {
		r.haveCurrent = false
		return
	}
	c, _, err := r.br.ReadRune()
	if err != nil {
		r.eof = true
		r.haveCurrent = false
		return
	}
	r.curPos = r.nextPos
	r.cur = c
	r.haveCurrent = true
	r.nextPos = r.nextPos.Advance(c, r.sawNewline)
	r.sawNewline = c == '\n'
}

// Peek implements Source.
func (r *Reader) Peek() (pos.Position, rune, bool) {
	if !r.haveCurrent {
		return pos.EOI, 0, false
	}
	return r.curPos, r.cur, true
}

// Advance implements Source.
func (r *Reader) Advance() {
	if !r.haveCurrent {
		panic("source: Advance called past end of input")
	}
	r.fill()
}
