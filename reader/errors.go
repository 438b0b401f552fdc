/*
File    : calf/reader/errors.go
*/

package reader

import (
	"fmt"

	"github.com/arrdem/calf/pos"
	"github.com/arrdem/calf/token"
)

// ErrorKind enumerates the read-time failure modes from spec.md §7.
type ErrorKind string

const (
	UnsupportedForm ErrorKind = "UNSUPPORTED_FORM"
)

// Error is the reader's single structured error type.
type Error struct {
	Kind     ErrorKind
	Source   string
	Pos      pos.Position
	FormKind token.Kind
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("no reader hook handles form kind %s", e.FormKind)
	return fmt.Sprintf("%s at %s:%s: %s", e.Kind, e.Source, e.Pos, msg)
}
