// Package errs defines the error kinds returned by services and
// repositories so controllers can pick a presentation outcome without
// looking at driver errors.
package errs

import (
	"errors"
	"strings"
)

// Kind classifies an application error.
type Kind int

const (
	KindNone Kind = iota
	// KindValidation means required input is missing or malformed.
	KindValidation
	// KindConstraint means a unique or foreign-key constraint rejected the write.
	KindConstraint
	// KindStorage is any other storage fault.
	KindStorage
	KindNotFound
	KindDuplicateUser
	KindInvalidCredentials
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConstraint:
		return "constraint_violation"
	case KindStorage:
		return "storage"
	case KindNotFound:
		return "not_found"
	case KindDuplicateUser:
		return "duplicate_user"
	case KindInvalidCredentials:
		return "invalid_credentials"
	default:
		return "none"
	}
}

// FieldError is a per-field validation message.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// Error is the application error carried across layers.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so the sentinels below work with
// errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrValidation         = &Error{Kind: KindValidation}
	ErrConstraint         = &Error{Kind: KindConstraint}
	ErrStorage            = &Error{Kind: KindStorage}
	ErrNotFound           = &Error{Kind: KindNotFound}
	ErrDuplicateUser      = &Error{Kind: KindDuplicateUser}
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials}
)

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Validation(message string, fields ...FieldError) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

func Constraint(message string, err error) *Error {
	return &Error{Kind: KindConstraint, Message: message, Err: err}
}

func Storage(err error) *Error {
	return &Error{Kind: KindStorage, Message: "storage failure", Err: err}
}

// KindOf reports the kind of err. Untyped errors count as storage faults.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorage
}

// Message returns the user-facing message of err, including field errors
// for validation failures.
func Message(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Error)
	}
	return e.Message + ": " + strings.Join(parts, "; ")
}
