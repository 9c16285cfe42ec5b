// Package errors provides application-level error types and utilities.
// It defines the error kinds surfaced by the API: validation, not found,
// constraint and referential violations, and aggregation failures.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation  ErrorType = "validation_error"
	ErrorTypeNotFound    ErrorType = "not_found"
	ErrorTypeConstraint  ErrorType = "constraint_violation"
	ErrorTypeReferential ErrorType = "referential_error"
	ErrorTypeAggregation ErrorType = "aggregation_error"
	ErrorTypeInternal    ErrorType = "internal_error"
	ErrorTypeBadRequest  ErrorType = "bad_request"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
	Fields  []string  `json:"fields,omitempty"`
	cause   error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the underlying cause, if any.
func (e *AppError) Unwrap() error {
	return e.cause
}

func newAppError(t ErrorType, code int, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    t,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details)
}

// NewFieldValidationError creates a validation error naming the offending field paths.
func NewFieldValidationError(fields []string, messages []string) *AppError {
	appErr := newAppError(ErrorTypeValidation, http.StatusBadRequest, "Validation failed",
		[]string{strings.Join(messages, "; ")})
	appErr.Fields = fields
	return appErr
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details)
}

// NewConstraintError creates an error for a rejected uniqueness constraint.
func NewConstraintError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConstraint, http.StatusConflict, message, details)
}

// NewReferentialError creates an error for a rejected foreign key.
func NewReferentialError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeReferential, http.StatusConflict, message, details)
}

// NewAggregationError wraps the failure of a collection fetch behind an
// opaque message; the cause is kept for logging only.
func NewAggregationError(cause error) *AppError {
	appErr := newAppError(ErrorTypeAggregation, http.StatusInternalServerError,
		"Failed to compute dashboard statistics", nil)
	appErr.cause = cause
	return appErr
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeBadRequest, http.StatusBadRequest, message, details)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func isType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsConstraintError checks if the error is a uniqueness violation
func IsConstraintError(err error) bool {
	return isType(err, ErrorTypeConstraint)
}

// IsReferentialError checks if the error is a foreign key violation
func IsReferentialError(err error) bool {
	return isType(err, ErrorTypeReferential)
}

// IsAggregationError checks if the error is an aggregation failure
func IsAggregationError(err error) bool {
	return isType(err, ErrorTypeAggregation)
}

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	errStr := err.Error()
	// MySQL duplicate entry error
	if strings.Contains(errStr, "Duplicate entry") || strings.Contains(errStr, "duplicate key") {
		return true
	}
	// SQLite and PostgreSQL unique violation
	if strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "unique constraint") {
		return true
	}
	return false
}

// IsForeignKeyError checks if the error is a database foreign key violation
func IsForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	errStr := err.Error()
	// MySQL 1452 / SQLite
	return strings.Contains(errStr, "a foreign key constraint fails") ||
		strings.Contains(errStr, "FOREIGN KEY constraint failed") ||
		strings.Contains(errStr, "violates foreign key constraint")
}
