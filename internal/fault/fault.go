// Package fault is the closed failure taxonomy of the admin engine. Every
// recoverable failure a mutation can produce carries a Kind, so call sites
// and the HTTP layer can handle the set exhaustively instead of matching
// on message strings.
package fault

import (
	"errors"
	"fmt"
)

type Kind string

const (
	NotFound     Kind = "not_found"
	Validation   Kind = "validation"
	Capacity     Kind = "capacity"
	Unauthorized Kind = "unauthorized"
	Internal     Kind = "internal"
)

type Error struct {
	Kind Kind
	msg  string
}

func (e *Error) Error() string { return e.msg }

func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// KindOf classifies err. Anything outside the taxonomy (driver errors,
// connectivity) is Internal.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return Internal
}

// Is lets errors.Is match any fault of the same kind.
func (e *Error) Is(target error) bool {
	var fe *Error
	if errors.As(target, &fe) {
		return fe.Kind == e.Kind
	}
	return false
}
