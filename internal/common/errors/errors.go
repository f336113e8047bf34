// Package errors provides standardized error handling for the listings service.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeUnauthorized     ErrorCode = "UNAUTHORIZED"
	ErrCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrCodeStorageFailed    ErrorCode = "STORAGE_ERROR"

	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeDuplicateSlug      ErrorCode = "DUPLICATE_SLUG"
)

// FieldError describes why a single input field was rejected.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode    `json:"code"`
	Message   string       `json:"message"`
	Details   string       `json:"details,omitempty"`
	Fields    []FieldError `json:"fields,omitempty"`
	Retryable bool         `json:"retryable"`
	Timestamp time.Time    `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// Is lets callers match on code with errors.Is against a bare code error.
func (e *StandardError) Is(target error) bool {
	var std *StandardError
	if errors.As(target, &std) {
		return e.Code == std.Code
	}
	return false
}

// ==========================
// 2. Error Constructors
// ==========================

// NewValidationError creates a non-retryable validation error carrying
// field-level reasons.
func NewValidationError(fields ...FieldError) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Input validation failed",
		Fields:    fields,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewFieldError is a convenience for a single-field validation failure.
func NewFieldError(field, message string) *StandardError {
	return NewValidationError(FieldError{Field: field, Message: message})
}

// NewUnauthorizedError creates a non-retryable authorization error.
func NewUnauthorizedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnauthorized,
		Message:   "Admin session required",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidCredentialsError creates a non-retryable login failure.
func NewInvalidCredentialsError() *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidCredentials,
		Message:   "Invalid email or password",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotFoundError creates a non-retryable lookup-miss error.
func NewNotFoundError(entity, id string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotFound,
		Message:   fmt.Sprintf("%s not found", entity),
		Details:   fmt.Sprintf("id: %s", id),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewStorageError creates a retryable error for a failed store operation.
func NewStorageError(op string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStorageFailed,
		Message:   "Storage operation failed",
		Details:   fmt.Sprintf("op: %s, error: %s", op, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDuplicateSlugError creates a non-retryable slug conflict error.
func NewDuplicateSlugError(slug string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDuplicateSlug,
		Message:   "Slug already in use",
		Details:   fmt.Sprintf("slug: %s", slug),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Code Inspection Helpers
// ==========================

// CodeOf extracts the ErrorCode from err, or empty when err is not a
// StandardError.
func CodeOf(err error) ErrorCode {
	var std *StandardError
	if errors.As(err, &std) {
		return std.Code
	}
	return ""
}

func IsValidation(err error) bool   { return CodeOf(err) == ErrCodeValidationFailed }
func IsUnauthorized(err error) bool { return CodeOf(err) == ErrCodeUnauthorized }
func IsNotFound(err error) bool     { return CodeOf(err) == ErrCodeNotFound }
func IsStorage(err error) bool      { return CodeOf(err) == ErrCodeStorageFailed }
