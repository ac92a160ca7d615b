package errors

import (
	"errors"
	"fmt"
)

// NewParseError creates a new parse error for a token that did not have
// the required shape.
func NewParseError(field string, value interface{}, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeParse,
		Message: fmt.Sprintf("cannot parse %s: %s", field, reason),
		Code:    "PARSE_FAILED",
		Context: map[string]interface{}{
			"field": field,
			"value": value,
		},
	}
}

// NewInputError creates a new input error for semantically invalid input
func NewInputError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Code:    "INVALID_INPUT",
		Context: make(map[string]interface{}),
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, identifier string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
		Code:    "NOT_FOUND",
		Context: map[string]interface{}{
			"resource":   resource,
			"identifier": identifier,
		},
	}
}

// NewDatabaseError creates a new database error
func NewDatabaseError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeDatabase,
		Message: fmt.Sprintf("database operation failed: %s", operation),
		Code:    "DATABASE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewSourceUnavailableError creates an error for an external source (e.g.
// the calendar provider) that could not be reached. This is an expected,
// non-fatal condition for callers that can degrade gracefully.
func NewSourceUnavailableError(source string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeSourceUnavailable,
		Message: fmt.Sprintf("%s is unavailable", source),
		Code:    "SOURCE_UNAVAILABLE",
		Cause:   cause,
		Context: map[string]interface{}{
			"source": source,
		},
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeParse, ErrorTypeInput, ErrorTypeNotFound:
			return appErr.Message
		case ErrorTypeDatabase:
			return "A database error occurred. Please try again."
		case ErrorTypeSourceUnavailable:
			return appErr.Message
		default:
			return "An unexpected error occurred. Please try again."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeParse, ErrorTypeInput, ErrorTypeNotFound:
			return false // user errors, not system errors
		case ErrorTypeDatabase, ErrorTypeSourceUnavailable:
			return true
		default:
			return true
		}
	}
	return true
}
