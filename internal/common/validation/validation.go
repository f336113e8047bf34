// internal/common/validation/validation.go
package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	apperrors "sabi-consults/internal/common/errors"
)

// Validate checks a decoded JSON payload against one of the operation
// schemas in schemas.go. It returns nil when the payload is valid, or a
// ValidationError carrying one entry per offending field.
func Validate(payload map[string]interface{}, schema map[string]interface{}) error {
	schemaLoader := gojsonschema.NewGoLoader(schema)
	documentLoader := gojsonschema.NewGoLoader(payload)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return apperrors.NewFieldError("", fmt.Sprintf("payload not validatable: %v", err))
	}
	if result.Valid() {
		return nil
	}

	fields := make([]apperrors.FieldError, 0, len(result.Errors()))
	for _, resultErr := range result.Errors() {
		fields = append(fields, apperrors.FieldError{
			Field:   normalizeField(resultErr.Field(), resultErr.Details()),
			Message: resultErr.Description(),
		})
	}
	return apperrors.NewValidationError(fields...)
}

// normalizeField maps gojsonschema's "(root)" paths back to the plain
// property name so the caller always sees the input field that failed.
func normalizeField(field string, details map[string]interface{}) string {
	if field == "(root)" {
		if prop, ok := details["property"].(string); ok {
			return prop
		}
		return ""
	}
	return strings.TrimPrefix(field, "(root).")
}
