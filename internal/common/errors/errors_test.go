// internal/common/errors/errors_test.go
package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activities-api/internal/common/logger"
)

// ==========================
// Error Constructor Tests
// ==========================

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name           string
		err            *APIError
		expectedCode   ErrorCode
		expectedStatus int
		expectedDetail string
	}{
		{
			name:           "activity not found",
			err:            NewActivityNotFoundError(),
			expectedCode:   ErrCodeActivityNotFound,
			expectedStatus: http.StatusNotFound,
			expectedDetail: "Activity not found",
		},
		{
			name:           "already signed up",
			err:            NewAlreadySignedUpError(),
			expectedCode:   ErrCodeAlreadySignedUp,
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "Student is already signed up for this activity",
		},
		{
			name:           "not signed up",
			err:            NewNotSignedUpError(),
			expectedCode:   ErrCodeNotSignedUp,
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "Student is not signed up for this activity",
		},
		{
			name:           "missing parameter",
			err:            NewMissingParameterError("email"),
			expectedCode:   ErrCodeMissingParameter,
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "email is required",
		},
		{
			name:           "internal error wraps cause",
			err:            NewInternalError(errors.New("boom")),
			expectedCode:   ErrCodeInternal,
			expectedStatus: http.StatusInternalServerError,
			expectedDetail: "Internal server error: boom",
		},
		{
			name:           "internal error without cause",
			err:            NewInternalError(nil),
			expectedCode:   ErrCodeInternal,
			expectedStatus: http.StatusInternalServerError,
			expectedDetail: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedCode, tt.err.Code)
			assert.Equal(t, tt.expectedStatus, tt.err.Status)
			assert.Equal(t, tt.expectedDetail, tt.err.Detail)
			assert.False(t, tt.err.Timestamp.IsZero())
		})
	}
}

func TestAPIError_ErrorString(t *testing.T) {
	err := NewActivityNotFoundError()
	assert.Equal(t, "APIError[ACTIVITY_NOT_FOUND]: Activity not found", err.Error())
}

// ==========================
// Status Mapping Tests
// ==========================

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, GetHTTPStatus(ErrCodeActivityNotFound))
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(ErrCodeAlreadySignedUp))
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(ErrCodeNotSignedUp))
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(ErrCodeMissingParameter))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(ErrCodeInternal))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(ErrorCode("UNKNOWN_CODE")))
}

func TestIsClientError(t *testing.T) {
	assert.True(t, IsClientError(ErrCodeActivityNotFound))
	assert.True(t, IsClientError(ErrCodeAlreadySignedUp))
	assert.True(t, IsClientError(ErrCodeNotSignedUp))
	assert.True(t, IsClientError(ErrCodeMissingParameter))
	assert.False(t, IsClientError(ErrCodeInternal))
}

// ==========================
// Error Handler Tests
// ==========================

func TestErrorHandler_HandleRequestError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedDetail string
	}{
		{
			name:           "api error passes through",
			err:            NewActivityNotFoundError(),
			expectedStatus: http.StatusNotFound,
			expectedDetail: "Activity not found",
		},
		{
			name:           "api error without status falls back to code mapping",
			err:            &APIError{Code: ErrCodeAlreadySignedUp, Detail: "Student is already signed up for this activity"},
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "Student is already signed up for this activity",
		},
		{
			name:           "plain error becomes opaque 500",
			err:            errors.New("database exploded"),
			expectedStatus: http.StatusInternalServerError,
			expectedDetail: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewErrorHandler(logger.NewTestLogger(t))

			req := httptest.NewRequest(http.MethodPost, "/activities/Chess%20Club/signup", nil)
			rec := httptest.NewRecorder()

			handler.HandleRequestError(rec, req, tt.err)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedDetail, body.Detail)
		})
	}
}
