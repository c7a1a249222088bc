package authn

import (
	"errors"
	"fmt"
)

// Kind categorizes a failed sign-in.
type Kind int

const (
	KindMethodNotAllowed Kind = iota + 1
	KindBadRequest
	KindUnauthorized
)

const (
	MethodNotAllowedMessage   = "Method not allowed"
	MissingCredentialsMessage = "Missing email or password"
	InvalidCredentialsMessage = "Invalid credentials"
)

var (
	ErrMethodNotAllowed = &Error{Kind: KindMethodNotAllowed}
	ErrBadRequest       = &Error{Kind: KindBadRequest}
	ErrUnauthorized     = &Error{Kind: KindUnauthorized}
)

func (k Kind) String() string {
	switch k {
	case KindMethodNotAllowed:
		return "method_not_allowed"
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Message returns the client-facing message for the kind.
func (k Kind) Message() string {
	switch k {
	case KindMethodNotAllowed:
		return MethodNotAllowedMessage
	case KindBadRequest:
		return MissingCredentialsMessage
	case KindUnauthorized:
		return InvalidCredentialsMessage
	default:
		return ""
	}
}

// Error is returned by the Authenticator for every rejected request.
// Err holds the underlying cause for logging; it is never shown to the caller.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}

	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind, so the package
// sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t.Kind == e.Kind
}

func newError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}
