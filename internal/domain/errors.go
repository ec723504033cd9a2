package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrInvalidTransition: the requested status is not reachable from the current one.
	ErrInvalidTransition = errors.New("invalid status transition")

	// Collaborator failures. Intake degrades instead of failing on these.
	ErrClassification = errors.New("classification failed")
	ErrGeolocation    = errors.New("geolocation failed")
	ErrStorage        = errors.New("blob storage failed")
)

// FieldError is one rejected input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every rejected field of one request so the
// client can fix them all at once. It unwraps to ErrValidation.
type ValidationError struct {
	Errors []FieldError
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

func (e *ValidationError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "validation failed"
	case 1:
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	names := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		names[i] = fe.Field
	}
	return fmt.Sprintf("validation: %d errors (%s)", len(e.Errors), strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Fields maps each field to its first message.
func (e *ValidationError) Fields() map[string]string {
	if len(e.Errors) == 0 {
		return nil
	}
	out := make(map[string]string, len(e.Errors))
	for _, fe := range e.Errors {
		if _, dup := out[fe.Field]; !dup {
			out[fe.Field] = fe.Message
		}
	}
	return out
}

// AsFieldErrors returns the field errors carried by err, or nil and false
// when err is not a validation failure.
func AsFieldErrors(err error) ([]FieldError, bool) {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return nil, false
	}
	return ve.Errors, true
}

// TransitionError is the rejected edge of the triage graph.
type TransitionError struct {
	From ReportStatus
	To   ReportStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot change status from %s to %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }
