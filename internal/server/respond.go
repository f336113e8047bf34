package server

import (
	"encoding/json"
	"io"
	"net/http"

	apperrors "sabi-consults/internal/common/errors"
	"sabi-consults/internal/common/validation"
)

const maxBodyBytes = 1 << 20

// handlers groups the route implementations around their shared
// dependencies.
type handlers struct {
	deps   Deps
	errors *apperrors.HTTPHandler
}

func (h *handlers) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// decodeBody reads the request body once, checks it against the
// operation's schema, then unmarshals it into dst. Schema failures
// come back as field-level validation errors.
func decodeBody(r *http.Request, schema map[string]interface{}, dst interface{}) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return apperrors.NewFieldError("body", "unable to read request body")
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return apperrors.NewFieldError("body", "request body must be a JSON object")
	}
	if schema != nil {
		if err := validation.Validate(payload, schema); err != nil {
			return err
		}
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return apperrors.NewFieldError("body", "request body has mistyped fields")
	}
	return nil
}
