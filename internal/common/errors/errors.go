// Package errors provides standardized error handling for the activities HTTP API.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeActivityNotFound ErrorCode = "ACTIVITY_NOT_FOUND"
	ErrCodeAlreadySignedUp  ErrorCode = "ALREADY_SIGNED_UP"
	ErrCodeNotSignedUp      ErrorCode = "NOT_SIGNED_UP"
	ErrCodeMissingParameter ErrorCode = "MISSING_PARAMETER"
	ErrCodeInternal         ErrorCode = "INTERNAL_ERROR"
)

// APIError represents a structured application error surfaced to HTTP clients.
type APIError struct {
	Code      ErrorCode `json:"code"`
	Detail    string    `json:"detail"`
	Status    int       `json:"-"`
	Timestamp time.Time `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("APIError[%s]: %s", e.Code, e.Detail)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewActivityNotFoundError creates the 404 error for an unknown activity name.
func NewActivityNotFoundError() *APIError {
	return &APIError{
		Code:      ErrCodeActivityNotFound,
		Detail:    "Activity not found",
		Status:    http.StatusNotFound,
		Timestamp: time.Now().UTC(),
	}
}

// NewAlreadySignedUpError creates the 400 error for a duplicate signup.
func NewAlreadySignedUpError() *APIError {
	return &APIError{
		Code:      ErrCodeAlreadySignedUp,
		Detail:    "Student is already signed up for this activity",
		Status:    http.StatusBadRequest,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotSignedUpError creates the 400 error for unregistering a non-member.
func NewNotSignedUpError() *APIError {
	return &APIError{
		Code:      ErrCodeNotSignedUp,
		Detail:    "Student is not signed up for this activity",
		Status:    http.StatusBadRequest,
		Timestamp: time.Now().UTC(),
	}
}

// NewMissingParameterError creates the 400 error for an absent required parameter.
func NewMissingParameterError(param string) *APIError {
	return &APIError{
		Code:      ErrCodeMissingParameter,
		Detail:    fmt.Sprintf("%s is required", param),
		Status:    http.StatusBadRequest,
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError creates a 500 error with a generic client-facing detail.
func NewInternalError(err error) *APIError {
	detail := "Internal server error"
	if err != nil {
		detail = fmt.Sprintf("Internal server error: %s", err.Error())
	}
	return &APIError{
		Code:      ErrCodeInternal,
		Detail:    detail,
		Status:    http.StatusInternalServerError,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. HTTP Status Mapping
// ==========================

// HTTPStatusMapping maps internal error codes to HTTP statuses.
var HTTPStatusMapping = map[ErrorCode]int{
	ErrCodeActivityNotFound: http.StatusNotFound,
	ErrCodeAlreadySignedUp:  http.StatusBadRequest,
	ErrCodeNotSignedUp:      http.StatusBadRequest,
	ErrCodeMissingParameter: http.StatusBadRequest,
	ErrCodeInternal:         http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for an error code, 500 when unmapped.
func GetHTTPStatus(code ErrorCode) int {
	if status, exists := HTTPStatusMapping[code]; exists {
		return status
	}
	return http.StatusInternalServerError
}

// ==========================
// 4. Utility Functions
// ==========================

// IsClientError reports whether the error code maps to a 4xx status.
func IsClientError(code ErrorCode) bool {
	status := GetHTTPStatus(code)
	return status >= 400 && status < 500
}
