package services

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a staffing failure so the API layer can map it to
// a status code without parsing messages
type ErrorKind string

const (
	ErrRoleNotFound      ErrorKind = "ROLE_NOT_FOUND"
	ErrCapacityExhausted ErrorKind = "CAPACITY_EXHAUSTED"
	ErrAlreadyContracted ErrorKind = "ALREADY_CONTRACTED"
	ErrNotAssigned       ErrorKind = "NOT_ASSIGNED"
	ErrAmbiguous         ErrorKind = "AMBIGUOUS"
	ErrAlreadyAssigned   ErrorKind = "ALREADY_ASSIGNED"
	ErrArgument          ErrorKind = "ARGUMENT_ERROR"
	ErrInvalidTransition ErrorKind = "INVALID_TRANSITION"
	ErrNotFound          ErrorKind = "NOT_FOUND"
)

// StaffingError is a typed engine error carrying the identifiers the
// caller supplied, so the message is actionable without leaking anything
// the caller did not already know
type StaffingError struct {
	Kind    ErrorKind
	Message string
}

func (e *StaffingError) Error() string {
	return e.Message
}

// newError builds a StaffingError with a formatted message
func newError(kind ErrorKind, format string, args ...interface{}) *StaffingError {
	return &StaffingError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// KindOf extracts the error kind, or "" for untyped errors
func KindOf(err error) ErrorKind {
	var staffingErr *StaffingError
	if errors.As(err, &staffingErr) {
		return staffingErr.Kind
	}
	return ""
}
