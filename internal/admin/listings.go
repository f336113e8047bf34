package admin

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "sabi-consults/internal/common/errors"
	"sabi-consults/internal/models"
)

// CreateListing validates the payload, resolves coordinates and writes
// a new listing.
func (g *Gateway) CreateListing(ctx context.Context, token string, input models.ListingInput) (*models.Listing, error) {
	if err := g.authorize(ctx, token, "listing"); err != nil {
		return nil, err
	}
	if err := g.validateListingInput(input); err != nil {
		return nil, err
	}

	lat, lng, err := g.resolveCoordinates(input)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	listing := &models.Listing{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Price:       input.Price,
		PriceLabel:  input.PriceLabel,
		Type:        input.Type,
		District:    strings.TrimSpace(input.District),
		Address:     strings.TrimSpace(input.Address),
		Latitude:    lat,
		Longitude:   lng,
		Bedrooms:    input.Bedrooms,
		Bathrooms:   input.Bathrooms,
		BQ:          input.BQ,
		LandSize:    input.LandSize,
		Images:      input.Images,
		Features:    input.Features,
		Variations:  normalizeVariations(input.Variations),
		Status:      listingStatusOrDefault(input.Status),
		Featured:    input.Featured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := g.listings.Create(ctx, listing); err != nil {
		return nil, err
	}

	g.logger.Info("Listing created", map[string]interface{}{
		"listing_id": listing.ID,
		"district":   listing.District,
	})
	return listing, nil
}

// UpdateListing replaces a listing's mutable fields wholesale. The
// record is untouched when validation or the lookup fails.
func (g *Gateway) UpdateListing(ctx context.Context, token, id string, input models.ListingInput) (*models.Listing, error) {
	if err := g.authorize(ctx, token, "listing"); err != nil {
		return nil, err
	}
	if err := g.validateListingInput(input); err != nil {
		return nil, err
	}

	existing, err := g.listings.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	lat, lng, err := g.resolveCoordinates(input)
	if err != nil {
		return nil, err
	}

	updated := &models.Listing{
		ID:          existing.ID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Price:       input.Price,
		PriceLabel:  input.PriceLabel,
		Type:        input.Type,
		District:    strings.TrimSpace(input.District),
		Address:     strings.TrimSpace(input.Address),
		Latitude:    lat,
		Longitude:   lng,
		Bedrooms:    input.Bedrooms,
		Bathrooms:   input.Bathrooms,
		BQ:          input.BQ,
		LandSize:    input.LandSize,
		Images:      input.Images,
		Features:    input.Features,
		Variations:  normalizeVariations(input.Variations),
		Status:      listingStatusOrDefault(input.Status),
		Featured:    input.Featured,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now().UTC(),
	}

	if err := g.listings.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (g *Gateway) DeleteListing(ctx context.Context, token, id string) error {
	if err := g.authorize(ctx, token, "listing"); err != nil {
		return err
	}
	if err := g.listings.Delete(ctx, id); err != nil {
		return err
	}
	g.logger.Info("Listing deleted", map[string]interface{}{
		"listing_id": id,
	})
	return nil
}

func (g *Gateway) validateListingInput(input models.ListingInput) error {
	var fields []apperrors.FieldError

	if strings.TrimSpace(input.Title) == "" {
		fields = append(fields, apperrors.FieldError{Field: "title", Message: "title is required"})
	}
	if strings.TrimSpace(input.Description) == "" {
		fields = append(fields, apperrors.FieldError{Field: "description", Message: "description is required"})
	}
	if input.Price < 0 {
		fields = append(fields, apperrors.FieldError{Field: "price", Message: "price must not be negative"})
	}
	if !input.Type.Valid() {
		fields = append(fields, apperrors.FieldError{Field: "type", Message: "type must be land or house"})
	}
	if strings.TrimSpace(input.District) == "" {
		fields = append(fields, apperrors.FieldError{Field: "district", Message: "district is required"})
	}
	if strings.TrimSpace(input.Address) == "" {
		fields = append(fields, apperrors.FieldError{Field: "address", Message: "address is required"})
	}
	if input.Status != "" && !input.Status.Valid() {
		fields = append(fields, apperrors.FieldError{Field: "status", Message: "status must be available, sold or pending"})
	}
	for _, v := range input.Variations {
		if v.Status != "" && !v.Status.Valid() {
			fields = append(fields, apperrors.FieldError{Field: "variations", Message: "variation status must be available, sold or pending"})
			break
		}
	}

	if len(fields) > 0 {
		return apperrors.NewValidationError(fields...)
	}
	return nil
}

// resolveCoordinates picks the listing's geocode: explicit coordinates
// when supplied as a pair, otherwise the district's reference point.
func (g *Gateway) resolveCoordinates(input models.ListingInput) (lat, lng float64, err error) {
	if input.Latitude != nil && input.Longitude != nil {
		return *input.Latitude, *input.Longitude, nil
	}
	if input.Latitude != nil || input.Longitude != nil {
		return 0, 0, apperrors.NewValidationError(apperrors.FieldError{
			Field:   "latitude",
			Message: "latitude and longitude must be supplied together",
		})
	}

	lat, lng, ok := g.directory.DefaultCoordinates(strings.TrimSpace(input.District))
	if !ok {
		return 0, 0, apperrors.NewValidationError(apperrors.FieldError{
			Field:   "latitude",
			Message: "coordinates are required for a district outside the directory",
		})
	}
	return lat, lng, nil
}

func listingStatusOrDefault(status models.ListingStatus) models.ListingStatus {
	if status == "" {
		return models.StatusAvailable
	}
	return status
}

// normalizeVariations assigns ids to new variations and defaults their
// status to available.
func normalizeVariations(variations []models.Variation) []models.Variation {
	if len(variations) == 0 {
		return nil
	}
	out := make([]models.Variation, len(variations))
	for i, v := range variations {
		if v.ID == "" {
			v.ID = uuid.New().String()
		}
		if v.Status == "" {
			v.Status = models.StatusAvailable
		}
		out[i] = v
	}
	return out
}
