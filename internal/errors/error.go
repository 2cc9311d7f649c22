package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryRuntime    Category = "runtime"
	CategoryMorph      Category = "morph"
	CategoryProtocol   Category = "protocol"
	CategoryValidation Category = "validation"
	CategoryConfig     Category = "config"
	CategoryCLI        Category = "cli"
)

// MorphicError is a structured error with a registered code, suggestions,
// and documentation.
type MorphicError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (runtime, morph, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *MorphicError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *MorphicError) Unwrap() error {
	return e.Wrapped
}

// WithSuggestion adds a fix suggestion to the error.
func (e *MorphicError) WithSuggestion(s string) *MorphicError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *MorphicError) WithDetail(d string) *MorphicError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *MorphicError) Wrap(err error) *MorphicError {
	e.Wrapped = err
	return e
}

// New creates a MorphicError from a registered error code.
func New(code string) *MorphicError {
	template, ok := registry[code]
	if !ok {
		return &MorphicError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &MorphicError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new MorphicError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *MorphicError {
	return &MorphicError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a MorphicError.
func FromError(err error, code string) *MorphicError {
	if err == nil {
		return nil
	}
	if me, ok := err.(*MorphicError); ok {
		return me
	}
	return New(code).Wrap(err)
}
