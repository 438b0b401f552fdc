/*
File    : calf/lexer/errors.go
*/

package lexer

import (
	"fmt"
	"strings"

	"github.com/arrdem/calf/pos"
	"github.com/arrdem/calf/token"
)

// ErrorKind enumerates the lex-time failure modes from spec.md §7.
type ErrorKind string

const (
	NoCandidates    ErrorKind = "NO_CANDIDATES"
	AmbiguousToken  ErrorKind = "AMBIGUOUS_TOKEN"
	IncompleteToken ErrorKind = "INCOMPLETE_TOKEN"
)

// Error is the single structured error type the lexer returns. Every
// variant carries at least the position it was raised at, per spec.md §7.
type Error struct {
	Kind       ErrorKind
	Source     string
	Pos        pos.Position
	Buffer     string
	Candidates []token.Kind
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case NoCandidates:
		msg = fmt.Sprintf("no token kind matches %q", e.Buffer)
	case AmbiguousToken:
		names := make([]string, len(e.Candidates))
		for i, k := range e.Candidates {
			names[i] = string(k)
		}
		msg = fmt.Sprintf("buffer %q is ambiguous between %s", e.Buffer, strings.Join(names, ", "))
	case IncompleteToken:
		msg = fmt.Sprintf("incomplete token %q at end of input", e.Buffer)
	default:
		msg = "lex error"
	}
	return fmt.Sprintf("%s at %s:%s: %s", e.Kind, e.Source, e.Pos, msg)
}
