package admin

import (
	"context"

	apperrors "sabi-consults/internal/common/errors"
	"sabi-consults/internal/models"
)

// UpdateSettings overlays the supplied key/value pairs onto the stored
// site settings. Only the known settings keys are accepted.
func (g *Gateway) UpdateSettings(ctx context.Context, token string, values map[string]string) (models.SiteSettings, error) {
	if err := g.authorize(ctx, token, "settings"); err != nil {
		return models.SiteSettings{}, err
	}

	known := models.DefaultSettings().Map()
	var fields []apperrors.FieldError
	for key := range values {
		if _, ok := known[key]; !ok {
			fields = append(fields, apperrors.FieldError{Field: key, Message: "unknown settings key"})
		}
	}
	if len(fields) > 0 {
		return models.SiteSettings{}, apperrors.NewValidationError(fields...)
	}

	settings := models.DefaultSettings()
	stored, err := g.settings.GetAll(ctx)
	if err != nil {
		return models.SiteSettings{}, err
	}
	settings.ApplyMap(stored)
	settings.ApplyMap(values)

	if err := g.settings.SetAll(ctx, settings.Map()); err != nil {
		return models.SiteSettings{}, err
	}

	g.logger.Info("Site settings updated", map[string]interface{}{
		"keys": len(values),
	})
	return settings, nil
}
