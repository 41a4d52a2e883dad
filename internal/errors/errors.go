package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for type checking
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrExhausted    = errors.New("exhausted")
	ErrNotSupported = errors.New("not supported")
)

// NotFoundError indicates a resource doesn't exist.
type NotFoundError struct {
	Resource string // "shade", "name", "column"
	ID       string // The identifier that wasn't found
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ValidationError indicates invalid user input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// ExhaustedError indicates the selector ran out of distinct shades.
type ExhaustedError struct {
	Wanted int
	Got    int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("shade space exhausted: wanted %d unique shades, found %d", e.Wanted, e.Got)
}

func (e *ExhaustedError) Unwrap() error {
	return ErrExhausted
}

// NotSupportedError indicates an environment capability is missing
// (clipboard, history API, parent frame).
type NotSupportedError struct {
	Capability string
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("%s is not available in this environment", e.Capability)
}

func (e *NotSupportedError) Unwrap() error {
	return ErrNotSupported
}

// Helper constructors for common cases

func NameNotFound(name string) error {
	return &NotFoundError{Resource: "name", ID: name}
}

func ShadeNotFound(hex string) error {
	return &NotFoundError{Resource: "shade", ID: hex}
}

func ColumnOutOfRange(index, count int) error {
	return &ValidationError{
		Field:   "column",
		Message: fmt.Sprintf("index %d out of range (have %d columns)", index, count),
	}
}

func InvalidField(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func Unsupported(capability string) error {
	return &NotSupportedError{Capability: capability}
}

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsExhausted checks if an error is a selector exhaustion error.
func IsExhausted(err error) bool {
	return errors.Is(err, ErrExhausted)
}

// IsNotSupported checks if an error reports a missing environment capability.
func IsNotSupported(err error) bool {
	return errors.Is(err, ErrNotSupported)
}
