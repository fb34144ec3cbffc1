package service

import (
	"errors"
	"fmt"
)

// Error kinds. Handlers map them to HTTP statuses with errors.Is.
var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrConflict       = errors.New("conflict")
	ErrNotFound       = errors.New("not found")
	ErrValidation     = errors.New("validation failed")
	ErrTokenIssue     = errors.New("token issue failed")
	ErrUnknownSubject = errors.New("token subject is not a known user")
)

// Error is a domain failure whose message is safe to show to the client.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }
func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// PublicMessage returns the client-facing text of err: the message of the
// outermost *Error, or fallback for anything else.
func PublicMessage(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return fallback
}

var (
	errNoIdentity          = newError(ErrUnauthorized, "No authentication found. Please log in.")
	errBadCredentials      = newError(ErrUnauthorized, "Invalid username or password")
	errUsernameTaken       = newError(ErrConflict, "Error: Username is already taken!")
	errEmailTaken          = newError(ErrConflict, "Error: Email is already in use!")
	errCategoryNotFound    = newError(ErrNotFound, "Category not found or you don't have access to it")
	errTransactionNotFound = newError(ErrNotFound, "Transaction not found or you don't have access to it")
	errCategoryRequired    = newError(ErrValidation, "Category information is required for creating a transaction")
)
