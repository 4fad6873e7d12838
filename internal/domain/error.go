// Package domain contains the core business types of the coworking
// reservation system: the Error/Result outcome model, self-validating
// value objects and the User, Seat and Reservation entities.  Nothing
// in this package knows about HTTP, SQL or any other infrastructure.
package domain

import "fmt"

// ErrorCategory classifies a domain Error so that outer layers can map
// it onto a transport status without inspecting individual codes.
type ErrorCategory uint8

const (
	CategoryNone ErrorCategory = iota
	CategoryFailure
	CategoryUnexpected
	CategoryValidation
	CategoryConflict
	CategoryNotFound
	CategoryUnauthorized
	CategoryForbidden
	CategoryException
)

// String returns the category name, mainly for logs and tests.
func (c ErrorCategory) String() string {
	switch c {
	case CategoryNone:
		return "none"
	case CategoryFailure:
		return "failure"
	case CategoryUnexpected:
		return "unexpected"
	case CategoryValidation:
		return "validation"
	case CategoryConflict:
		return "conflict"
	case CategoryNotFound:
		return "not_found"
	case CategoryUnauthorized:
		return "unauthorized"
	case CategoryForbidden:
		return "forbidden"
	case CategoryException:
		return "exception"
	}
	return "unknown"
}

// Error describes one validation or business-rule failure.  Values are
// immutable: construct them with NewError and compare with Equal.
type Error struct {
	Code     string
	Message  string
	Category ErrorCategory
}

// ErrNone is the sentinel "no error" value.  It is never part of a
// failed Result's error list; Fail filters it out.
var ErrNone = Error{}

// NewError builds an Error from a machine-readable code, a human
// message and a category.
func NewError(code, message string, category ErrorCategory) Error {
	return Error{Code: code, Message: message, Category: category}
}

// Equal reports whether two errors describe the same failure.  Only
// code and message participate; the category is derived metadata.
func (e Error) Equal(other Error) bool {
	return e.Code == other.Code && e.Message == other.Message
}

// IsNone reports whether the error is the ErrNone sentinel.
func (e Error) IsNone() bool {
	return e.Code == "" && e.Message == "" && e.Category == CategoryNone
}

// Error implements the error interface so domain errors can cross
// boundaries that expect a plain error.
func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// errEmptyFailure is substituted when a failure is constructed without
// any errors.  That situation is a programming mistake, not user input,
// so it surfaces as an internal exception rather than being swallowed.
var errEmptyFailure = NewError(
	"result.empty_failure",
	"a failure result was constructed without any errors",
	CategoryException,
)
