// Package errors provides the structured error type surfaced by the API.
// Every failure carries a Kind and a human readable Message and is
// serialized the same way at the HTTP boundary.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Standard error functions
var (
	Is     = errors.Is
	As     = errors.As
	Join   = errors.Join
	Unwrap = errors.Unwrap
)

// Kind classifies an error for callers and for status mapping.
type Kind string

const (
	KindInvalidArgument Kind = "invalid_argument"
	KindStoreFailure    Kind = "store_failure"
	KindUnavailable     Kind = "unavailable"
	KindInternal        Kind = "internal"
)

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case KindInvalidArgument:
		return http.StatusBadRequest
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message,omitempty"`
}

func (f FieldError) Error() string {
	return fmt.Sprintf("%s (%s): %s", f.Field, f.Rule, f.Message)
}

var (
	Invalid      = NewWithKind(KindInvalidArgument)
	StoreFailure = NewWithKind(KindStoreFailure)
	Unavailable  = NewWithKind(KindUnavailable)
	Internal     = NewWithKind(KindInternal)
)

// Error is the error type passed from the store up to the response writer.
type Error struct {
	Kind    Kind         `json:"kind"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`

	cause error
}

var _ error = (*Error)(nil)

func New(message string) *Error {
	return &Error{Kind: KindInternal, Message: message}
}

func NewWithKind(kind Kind) *Error {
	return &Error{Kind: kind}
}

// From converts any error into an *Error. Errors that already are (or wrap)
// an *Error are returned as is, everything else becomes KindInternal.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if As(err, &e) {
		return e
	}
	return Internal.Explain("%s", err.Error()).Wrap(err)
}

// Error implements error
func (e *Error) Error() string {
	str := fmt.Sprintf("[%s] ", e.Kind)
	if e.Message != "" {
		str += e.Message
	}
	if e.cause != nil && e.cause.Error() != e.Message {
		str += fmt.Sprintf(" (%s)", e.cause)
	}
	return str
}

// Status returns the HTTP status code for the error kind.
func (e *Error) Status() int {
	return e.Kind.Status()
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Wrap returns a copy of the error with the cause set.
func (e *Error) Wrap(cause error) *Error {
	err := *e
	err.cause = cause
	return &err
}

// Explain makes a copy of the error with given message
func (e *Error) Explain(message string, args ...any) *Error {
	err := *e
	err.Message = fmt.Sprintf(message, args...)
	return &err
}

func (e *Error) WithFields(fields []FieldError) *Error {
	err := *e
	err.Fields = fields
	return &err
}

// WithField returns a copy of error with the field appended.
func (e *Error) WithField(field, rule, message string) *Error {
	err := *e
	err.Fields = append(append([]FieldError(nil), e.Fields...), FieldError{Field: field, Rule: rule, Message: message})
	return &err
}

// Is matches on kind, so errors.Is(err, errors.StoreFailure) holds for any
// store failure regardless of its message.
func (e *Error) Is(target error) bool {
	if e == nil {
		return target == nil
	}
	if other, ok := target.(*Error); ok {
		return other.Kind == e.Kind
	}
	return false
}
