// internal/common/errors/http.go
package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// HTTPHandler maps application errors to JSON HTTP responses.
type HTTPHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewHTTPHandler(logger Logger) *HTTPHandler {
	return &HTTPHandler{logger: logger}
}

// errorResponse is the wire shape of every error body.
type errorResponse struct {
	Error struct {
		Code    ErrorCode    `json:"code"`
		Message string       `json:"message"`
		Fields  []FieldError `json:"fields,omitempty"`
	} `json:"error"`
}

// WriteError normalizes err to a StandardError, logs it, and writes the
// matching status code and JSON body.
func (h *HTTPHandler) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	stdErr := h.normalizeError(err)
	status := StatusOf(stdErr.Code)

	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", map[string]interface{}{
			"path":    r.URL.Path,
			"method":  r.Method,
			"code":    string(stdErr.Code),
			"details": stdErr.Details,
		})
	}

	var body errorResponse
	body.Error.Code = stdErr.Code
	body.Error.Message = stdErr.Message
	body.Error.Fields = stdErr.Fields

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// normalizeError ensures we always have a StandardError.
func (h *HTTPHandler) normalizeError(err error) *StandardError {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeStorageFailed,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// StatusOf maps an ErrorCode to its HTTP status.
func StatusOf(code ErrorCode) int {
	switch code {
	case ErrCodeValidationFailed, ErrCodeDuplicateSlug:
		return http.StatusBadRequest
	case ErrCodeUnauthorized, ErrCodeInvalidCredentials:
		return http.StatusUnauthorized
	case ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
