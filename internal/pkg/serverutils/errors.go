package serverutils

import "fmt"

const PersistenceFailureMessage = "Something went wrong while saving your data. Please try again."

// ValidationError means the client sent data that breaks a request contract.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// PersistenceError wraps a failed storage operation.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func NewPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}

// ThrottledError is returned when a client exceeds its request budget.
type ThrottledError struct {
	Message string
}

func (e *ThrottledError) Error() string {
	return e.Message
}
