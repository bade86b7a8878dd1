package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by the store client, services and handlers.
var (
	ErrNetwork         = errors.New("store unreachable")
	ErrRemoteRejection = errors.New("store rejected request")
	ErrValidation      = errors.New("validation error")
)

// StoreError is returned by every failed store round trip
type StoreError struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	return e.Message
}

// Unwrap exposes the taxonomy sentinel (and the transport cause for network failures)
func (e *StoreError) Unwrap() []error {
	if e.Status == 0 {
		if e.Err == nil {
			return []error{ErrNetwork}
		}
		return []error{ErrNetwork, e.Err}
	}
	return []error{ErrRemoteRejection}
}

// NewNetworkError wraps a transport-level failure
func NewNetworkError(op string, err error) *StoreError {
	return &StoreError{
		Op:      op,
		Message: fmt.Sprintf("Failed to %s. Please ensure the word store is running.", op),
		Err:     err,
	}
}

// NewRemoteRejection builds an error from a non-success response.
// detail is the server-provided message and may be empty.
func NewRemoteRejection(op string, status int, detail string) *StoreError {
	msg := detail
	if msg == "" {
		msg = fmt.Sprintf("Failed to %s.", op)
	}
	return &StoreError{Op: op, Status: status, Message: msg}
}

// FieldError describes a validation error for a specific field
type FieldError struct {
	Field   string
	Message string
}

// ValidationError is raised before submission and never reaches the store
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Message
	}
	return fmt.Sprintf("%d fields are invalid", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

// UserMessage returns the human-readable text for err
func UserMessage(err error) string {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Message
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	return "Something went wrong. Please try again."
}
