// internal/common/errors/handler.go
package errors

import (
	"encoding/json"
	"net/http"
	"time"
)

// ErrorHandler writes normalized error responses for HTTP requests
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// ErrorResponse is the wire shape of every error body.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HandleRequestError handles any error produced while serving a request
func (h *ErrorHandler) HandleRequestError(w http.ResponseWriter, r *http.Request, err error) {
	// Normalize to APIError
	apiErr := h.normalizeError(err)

	// Log
	h.logError(r, apiErr)

	// Write the structured response
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Detail: apiErr.Detail})
}

// normalizeError ensures we always have an APIError
func (h *ErrorHandler) normalizeError(err error) *APIError {
	if apiErr, ok := err.(*APIError); ok {
		if apiErr.Status == 0 {
			apiErr.Status = GetHTTPStatus(apiErr.Code)
		}
		return apiErr
	}
	return &APIError{
		Code:      ErrCodeInternal,
		Detail:    "Internal server error",
		Status:    http.StatusInternalServerError,
		Timestamp: time.Now().UTC(),
	}
}

func (h *ErrorHandler) logError(r *http.Request, apiErr *APIError) {
	fields := map[string]interface{}{
		"method":    r.Method,
		"path":      r.URL.Path,
		"errorCode": string(apiErr.Code),
		"detail":    apiErr.Detail,
		"status":    apiErr.Status,
	}

	if IsClientError(apiErr.Code) {
		h.logger.Warn("Request failed", fields)
		return
	}
	h.logger.Error("Request failed", fields)
}
