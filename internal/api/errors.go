package api

import (
	"errors"
	"fmt"
)

// Kind classifies gateway failures. The set is closed on purpose: callers
// branch on the kind, never on message text.
type Kind string

const (
	// KindAuth is an HTTP 401; the held token has already been cleared by
	// the time the caller sees this error.
	KindAuth Kind = "auth"
	// KindTransport covers timeouts, connection failures and anything
	// else that prevented a status code from arriving.
	KindTransport Kind = "transport"
	// KindServer is any other non-2xx response.
	KindServer Kind = "server"
)

type Error struct {
	Kind    Kind
	Verb    string
	Path    string
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s failed: %d", e.Verb, e.Path, e.Status)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// IsKind reports whether err is a gateway error of the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}
