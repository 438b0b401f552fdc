/*
File    : calf/parser/errors.go
*/

package parser

import (
	"fmt"

	"github.com/arrdem/calf/pos"
	"github.com/arrdem/calf/token"
)

// ErrorKind enumerates the parse-time failure modes from spec.md §7.
type ErrorKind string

const (
	UnexpectedClose ErrorKind = "UNEXPECTED_CLOSE"
	MissingClose    ErrorKind = "MISSING_CLOSE"
	OddDict         ErrorKind = "ODD_DICT"
	BadString       ErrorKind = "BAD_STRING"
	NumericOverflow ErrorKind = "NUMERIC_OVERFLOW"
)

// Error is the single structured error type the parser returns. It
// replaces original_source's CalfParseError subclass hierarchy with one
// struct carrying a Kind, matching Kind already being the lexer's idiom.
type Error struct {
	Kind   ErrorKind
	Source string
	Pos    pos.Position

	// Token is the offending token, where applicable (UNEXPECTED_CLOSE,
	// ODD_DICT's closing brace, BAD_STRING's STRING token,
	// NUMERIC_OVERFLOW's INTEGER token).
	Token token.Token
	// Open is the still-open frame's opening token, where applicable
	// (MISSING_CLOSE, and UNEXPECTED_CLOSE's matching-open hint).
	Open *token.Token
	// ExpectedClose is the close kind MISSING_CLOSE was waiting for.
	ExpectedClose token.Kind
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case UnexpectedClose:
		if e.Open != nil {
			msg = fmt.Sprintf("unexpected %s; matches open %s at %s", e.Token.Kind, e.Open.Kind, e.Open.Start)
		} else {
			msg = fmt.Sprintf("unexpected %s; no open frame", e.Token.Kind)
		}
	case MissingClose:
		msg = fmt.Sprintf("expected %s to close %s opened at %s, got end of input", e.ExpectedClose, e.Open.Kind, e.Open.Start)
	case OddDict:
		msg = "dict literal has an odd number of children"
	case BadString:
		msg = fmt.Sprintf("malformed string literal %q", e.Token.Text)
	case NumericOverflow:
		msg = fmt.Sprintf("integer literal %q overflows 64 bits", e.Token.Text)
	default:
		msg = "parse error"
	}
	return fmt.Sprintf("%s at %s:%s: %s", e.Kind, e.Source, e.Pos, msg)
}
