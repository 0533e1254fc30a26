// Package errors provides a lightweight structured error type (CatalogError)
// for category-based classification of content catalog failures.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory represents the category of a catalog error for classification
type ErrorCategory string

const (
	// Content-addressing errors surfaced to the page layer
	CategoryNotFound ErrorCategory = "not_found"

	// Processing errors
	CategoryCompile  ErrorCategory = "compile"
	CategoryMetadata ErrorCategory = "metadata"

	// Infrastructure errors
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryConfig     ErrorCategory = "config"
	CategoryInternal   ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Fails the whole call
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded output
)

// CatalogError is a structured error with category, severity, and context
type CatalogError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for CatalogError
type ContextFields map[string]any

// Error implements the error interface
func (e *CatalogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *CatalogError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *CatalogError) WithContext(key string, value any) *CatalogError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new CatalogError
func New(category ErrorCategory, severity ErrorSeverity, message string) *CatalogError {
	return &CatalogError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new CatalogError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *CatalogError {
	return &CatalogError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// IsNotFound reports whether err (or anything it wraps) is a not-found
// catalog error. The page layer uses this to render a 404 instead of a
// generic server error.
func IsNotFound(err error) bool {
	var ce *CatalogError
	if errors.As(err, &ce) {
		return ce.Category == CategoryNotFound
	}
	return false
}

// CategoryOf returns the category of err, or CategoryInternal for plain errors.
func CategoryOf(err error) ErrorCategory {
	var ce *CatalogError
	if errors.As(err, &ce) {
		return ce.Category
	}
	return CategoryInternal
}
