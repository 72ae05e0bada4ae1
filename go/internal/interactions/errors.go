package interactions

import (
	"errors"
	"net/http"
)

type ErrorKind int

const (
	KindUnauthenticated ErrorKind = iota + 1
	KindDuplicate
	KindNotFound
	KindInvalid
)

// Error is a user facing failure of an interaction operation. Message is
// returned to clients verbatim.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

// HTTPStatus maps the kind onto a response status
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// AsError extracts an *Error from err's chain
func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// ErrDuplicate is returned by the repository when a unique constraint rejects
// an insert.
var ErrDuplicate = errors.New("duplicate interaction")

var errAuthRequired = &Error{Kind: KindUnauthenticated, Message: "Authentication required"}

func notFound(what string) *Error {
	return &Error{Kind: KindNotFound, Message: what + " not found"}
}

func invalid(msg string) *Error {
	return &Error{Kind: KindInvalid, Message: msg}
}
