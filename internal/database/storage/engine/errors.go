package engine

import (
	"errors"
	"strings"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
)

var (
	ErrKeyNotFound    = NewError(ErrNotFound, "key does not exist")
	ErrMemberNotFound = NewError(ErrNotFound, "member does not exist")
	ErrMemberExists   = NewError(ErrConflict, "member already exists for key")
)

// Error carries a user-facing message and unwraps to one of the kind sentinels.
type Error struct {
	kind error
	msg  string
}

func NewError(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.kind
}

// ValidateArgument rejects empty or whitespace-only values.
func ValidateArgument(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return NewError(ErrInvalidArgument, name+" must not be empty")
	}
	return nil
}
