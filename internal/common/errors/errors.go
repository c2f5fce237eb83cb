// Package errors provides standardized error handling for the HTTP API.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeUniversityNotFound ErrorCode = "UNIVERSITY_NOT_FOUND"
	ErrCodeProgramNotFound    ErrorCode = "PROGRAM_NOT_FOUND"
	ErrCodePortfolioNotFound  ErrorCode = "PORTFOLIO_NOT_FOUND"

	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"

	ErrCodeCatalogLoadFailed       ErrorCode = "CATALOG_LOAD_FAILED"
	ErrCodeCatalogValidationFailed ErrorCode = "CATALOG_VALIDATION_FAILED"

	ErrCodePortfolioStoreFailed ErrorCode = "PORTFOLIO_STORE_FAILED"

	ErrCodeProviderUnavailable ErrorCode = "PROVIDER_UNAVAILABLE"
	ErrCodeProviderTimeout     ErrorCode = "PROVIDER_TIMEOUT"
	ErrCodeEmptyCompletion     ErrorCode = "EMPTY_COMPLETION"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// HTTPStatus maps an error code to the response status the API surfaces.
func (e *StandardError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeUniversityNotFound, ErrCodeProgramNotFound, ErrCodePortfolioNotFound:
		return http.StatusNotFound
	case ErrCodeInvalidRequest, ErrCodeCatalogValidationFailed:
		return http.StatusBadRequest
	case ErrCodeProviderUnavailable, ErrCodeProviderTimeout:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// AsStandardError extracts a *StandardError from an error chain, wrapping
// unknown errors as non-retryable internal errors.
func AsStandardError(err error) *StandardError {
	var se *StandardError
	if stderrors.As(err, &se) {
		return se
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Internal error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUniversityNotFoundError creates a non-retryable catalog lookup error.
func NewUniversityNotFoundError(universityID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUniversityNotFound,
		Message:   "University not found in catalog",
		Details:   fmt.Sprintf("universityId: %s", universityID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewProgramNotFoundError creates a non-retryable catalog lookup error.
func NewProgramNotFoundError(programID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeProgramNotFound,
		Message:   "Program not found in catalog",
		Details:   fmt.Sprintf("programId: %s", programID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPortfolioNotFoundError creates a non-retryable store lookup error.
func NewPortfolioNotFoundError(userID string) *StandardError {
	return &StandardError{
		Code:      ErrCodePortfolioNotFound,
		Message:   "Portfolio not found",
		Details:   fmt.Sprintf("userId: %s", userID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidRequestError creates a non-retryable request validation error.
func NewInvalidRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequest,
		Message:   "Invalid request payload",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogLoadFailedError creates a non-retryable catalog bootstrap error.
func NewCatalogLoadFailedError(path string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogLoadFailed,
		Message:   "Failed to load catalog data",
		Details:   fmt.Sprintf("path: %s, error: %s", path, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogValidationFailedError creates a non-retryable schema validation error.
func NewCatalogValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogValidationFailed,
		Message:   "Catalog data failed schema validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPortfolioStoreFailedError creates a retryable persistence error.
func NewPortfolioStoreFailedError(op string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodePortfolioStoreFailed,
		Message:   "Portfolio store operation failed",
		Details:   fmt.Sprintf("op: %s, error: %s", op, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewProviderUnavailableError creates a retryable provider error. The AI chain
// absorbs these internally and advances to the next provider.
func NewProviderUnavailableError(provider string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeProviderUnavailable,
		Message:   "Text generation provider unavailable",
		Details:   fmt.Sprintf("provider: %s, error: %s", provider, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewProviderTimeoutError creates a retryable provider timeout error.
func NewProviderTimeoutError(provider string) *StandardError {
	return &StandardError{
		Code:      ErrCodeProviderTimeout,
		Message:   "Text generation provider timed out",
		Details:   fmt.Sprintf("provider: %s", provider),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmptyCompletionError marks a provider response too short to be usable.
func NewEmptyCompletionError(provider string) *StandardError {
	return &StandardError{
		Code:      ErrCodeEmptyCompletion,
		Message:   "Provider returned an empty or trivial completion",
		Details:   fmt.Sprintf("provider: %s", provider),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}
