// Package errors provides error types and handling for slackbridge.
// It includes custom error types with HTTP status codes and error codes.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError represents an application error with an associated HTTP status code.
type AppError struct {
	// Code is an optional error code string for programmatic handling
	Code string
	// Message is a user-friendly error message
	Message string
	// StatusCode is the HTTP status code to return
	StatusCode int
	// Cause is the underlying error (for error wrapping)
	Cause error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error for error unwrapping.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is allows errors.Is to work with AppError.
func (e *AppError) Is(target error) bool {
	if t, ok := target.(*AppError); ok {
		return e.Code != "" && e.Code == t.Code
	}
	return false
}

// Predefined error codes.
const (
	// Client error codes.
	ErrCodeInvalidEvent = "INVALID_EVENT"
	ErrCodeUnauthorized = "UNAUTHORIZED"

	// Server error codes.
	ErrCodeInternalError    = "INTERNAL_ERROR"
	ErrCodeConfigMissing    = "CONFIG_MISSING"
	ErrCodeStoreReadFailed  = "STORE_READ_FAILED"
	ErrCodeStoreWriteFailed = "STORE_WRITE_FAILED"
	ErrCodeTransportError   = "TRANSPORT_ERROR"
)

// Sentinel values for errors.Is comparisons by code.
var (
	ErrConfigMissingCode    = &AppError{Code: ErrCodeConfigMissing}
	ErrStoreReadFailedCode  = &AppError{Code: ErrCodeStoreReadFailed}
	ErrStoreWriteFailedCode = &AppError{Code: ErrCodeStoreWriteFailed}
	ErrTransportCode        = &AppError{Code: ErrCodeTransportError}
	ErrInvalidEventCode     = &AppError{Code: ErrCodeInvalidEvent}
)

// NewClientError creates a new client error (4xx status codes).
func NewClientError(statusCode int, code, message string, cause error) *AppError {
	if statusCode < 400 || statusCode >= 500 {
		panic(fmt.Sprintf("NewClientError called with non-client status code: %d", statusCode))
	}
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Cause:      cause,
	}
}

// NewServerError creates a new server error (5xx status codes).
func NewServerError(statusCode int, code, message string, cause error) *AppError {
	if statusCode < 500 || statusCode >= 600 {
		panic(fmt.Sprintf("NewServerError called with non-server status code: %d", statusCode))
	}
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Cause:      cause,
	}
}

// Convenience constructors for common errors

// ErrInvalidEvent creates an invalid event error (400).
func ErrInvalidEvent(message string, cause error) *AppError {
	return NewClientError(http.StatusBadRequest, ErrCodeInvalidEvent, message, cause)
}

// ErrUnauthorized creates an unauthorized error (401).
func ErrUnauthorized(message string, cause error) *AppError {
	return NewClientError(http.StatusUnauthorized, ErrCodeUnauthorized, message, cause)
}

// ErrInternalError creates an internal server error (500).
func ErrInternalError(message string, cause error) *AppError {
	return NewServerError(http.StatusInternalServerError, ErrCodeInternalError, message, cause)
}

// ErrConfigMissing creates a configuration missing error (503).
// The configuration may appear later, e.g. once the Slack handshake has run.
func ErrConfigMissing(message string, cause error) *AppError {
	return NewServerError(http.StatusServiceUnavailable, ErrCodeConfigMissing, message, cause)
}

// ErrStoreReadFailed creates a parameter store read error (503).
func ErrStoreReadFailed(message string, cause error) *AppError {
	return NewServerError(http.StatusServiceUnavailable, ErrCodeStoreReadFailed, message, cause)
}

// ErrStoreWriteFailed creates a parameter store write error (503).
func ErrStoreWriteFailed(message string, cause error) *AppError {
	return NewServerError(http.StatusServiceUnavailable, ErrCodeStoreWriteFailed, message, cause)
}

// ErrTransport creates an outbound transport error (502).
func ErrTransport(message string, cause error) *AppError {
	return NewServerError(http.StatusBadGateway, ErrCodeTransportError, message, cause)
}

// GetStatusCode extracts the HTTP status code from an error.
// Returns 500 if the error is not an AppError.
func GetStatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// GetErrorCode extracts the error code from an error.
// Returns empty string if the error is not an AppError.
func GetErrorCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// GetErrorMessage extracts a user-friendly message from an error.
func GetErrorMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// GetErrorDetails extracts detailed error information including the underlying cause.
// Returns the underlying error message if available, otherwise returns the main error message.
func GetErrorDetails(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Cause != nil {
			return appErr.Cause.Error()
		}
		return appErr.Message
	}
	return err.Error()
}
