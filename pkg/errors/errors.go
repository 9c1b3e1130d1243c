// Package errors provides typed errors for repo-summarizer
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// ErrConfig indicates a configuration error (invalid caps, bad policy)
	ErrConfig ErrorType = iota
	// ErrValidation indicates an input validation error (bad repo URL, bad request body)
	ErrValidation
	// ErrNotFound indicates the requested repository does not exist or is private
	ErrNotFound
	// ErrUpstream indicates a GitHub API error
	ErrUpstream
	// ErrLLM indicates a summarization model call error
	ErrLLM
	// ErrTimeout indicates a timeout occurred
	ErrTimeout
)

// AppError is the base error type for all repo-summarizer errors
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error returns the error message
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", errorTypeString(e.Type), e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", errorTypeString(e.Type), e.Message)
}

// Unwrap returns the underlying cause
func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	e.Context[key] = value
	return e
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if err == nil {
		return false
	}
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// HTTPStatus maps an error to the status code the API surface should return.
// Unknown errors map to 500.
func HTTPStatus(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}

	switch appErr.Type {
	case ErrValidation:
		return http.StatusBadRequest
	case ErrNotFound:
		return http.StatusNotFound
	case ErrUpstream, ErrLLM:
		return http.StatusBadGateway
	case ErrTimeout:
		return http.StatusGatewayTimeout
	case ErrConfig:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the user-facing message for an error. Non-typed errors get a
// generic message so internals never leak into API responses.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal server error"
}

// IsRetryable returns true if the error is transient and retryable
func IsRetryable(err error) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}

	switch appErr.Type {
	case ErrUpstream, ErrTimeout:
		return true
	default:
		return false
	}
}

func errorTypeString(et ErrorType) string {
	switch et {
	case ErrConfig:
		return "CONFIG"
	case ErrValidation:
		return "VALIDATION"
	case ErrNotFound:
		return "NOT_FOUND"
	case ErrUpstream:
		return "UPSTREAM"
	case ErrLLM:
		return "LLM"
	case ErrTimeout:
		return "TIMEOUT"
	default:
		return "UNKNOWN"
	}
}

// Convenience functions for common errors

// ConfigError creates a configuration error
func ConfigError(message string, cause error) *AppError {
	return New(ErrConfig, message, cause)
}

// ValidationError creates an input validation error
func ValidationError(message string, cause error) *AppError {
	return New(ErrValidation, message, cause)
}

// NotFoundError creates a not-found error
func NotFoundError(message string, cause error) *AppError {
	return New(ErrNotFound, message, cause)
}

// UpstreamError creates a GitHub upstream error
func UpstreamError(message string, cause error) *AppError {
	return New(ErrUpstream, message, cause)
}

// LLMError creates a summarization model error
func LLMError(message string, cause error) *AppError {
	return New(ErrLLM, message, cause)
}

// TimeoutError creates a timeout error
func TimeoutError(message string, cause error) *AppError {
	return New(ErrTimeout, message, cause)
}
