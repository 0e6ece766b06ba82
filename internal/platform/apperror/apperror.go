// Package apperror defines the error taxonomy shared by every workflow.
// Repositories and services wrap low-level datastore failures into one of
// these kinds; raw driver errors never reach a caller unwrapped.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	// Storage is the catch-all for underlying datastore failures.
	Storage Kind = iota
	// Validation marks a missing or malformed required field.
	Validation
	// Reference marks a foreign key target that does not exist.
	Reference
	// NotFound marks an id that does not resolve to a row.
	NotFound
	// DuplicateUsername marks a registration against a taken username.
	DuplicateUsername
	// InvalidCredentials covers both unknown-username and wrong-password;
	// the two must be indistinguishable to the caller.
	InvalidCredentials
	// InvalidStateTransition marks an illegal lifecycle move, e.g. paying
	// an already-paid bill.
	InvalidStateTransition
	// InsufficientStock marks a dispense that exceeds quantity on hand.
	InsufficientStock
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "ValidationError"
	case Reference:
		return "ReferenceError"
	case NotFound:
		return "NotFound"
	case DuplicateUsername:
		return "DuplicateUsername"
	case InvalidCredentials:
		return "InvalidCredentials"
	case InvalidStateTransition:
		return "InvalidStateTransition"
	case InsufficientStock:
		return "InsufficientStock"
	default:
		return "StorageError"
	}
}

// HTTPStatus maps an error kind to its response status category.
func (k Kind) HTTPStatus() int {
	switch k {
	case Validation, Reference:
		return http.StatusBadRequest
	case InvalidCredentials:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	case DuplicateUsername, InvalidStateTransition, InsufficientStock:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// Wrap attaches a taxonomy kind to an underlying error. A nil err yields nil
// so repository call sites can wrap unconditionally.
func Wrap(kind Kind, detail string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Detail: detail, Err: err}
}

// KindOf extracts the taxonomy kind from an error chain, defaulting to
// Storage for anything unclassified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Storage
}

// DetailOf returns the human-readable detail string from an error chain.
func DetailOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Detail
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
