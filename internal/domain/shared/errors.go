package shared

import "errors"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a domain error for an invariant violation.
// Validation errors are synchronous, surfaced immediately, never retried.
func NewValidationError(message string) *DomainError {
	return &DomainError{
		Code:    CodeValidation,
		Message: message,
	}
}

// NewNotFoundError creates a domain error for a missing aggregate
func NewNotFoundError(message string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: message,
	}
}

// Error code families
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeConflict   = "ALREADY_EXISTS"
	CodeInternal   = "INTERNAL_ERROR"
)

// Common domain errors
var (
	ErrNotFound            = NewDomainError(CodeNotFound, "Resource not found")
	ErrAlreadyExists       = NewDomainError(CodeConflict, "Resource already exists")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
)

// IsValidationError reports whether err is a validation-kind domain error
func IsValidationError(err error) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == CodeValidation
	}
	return false
}

// IsNotFoundError reports whether err is a not-found-kind domain error
func IsNotFoundError(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == CodeNotFound
	}
	return false
}
