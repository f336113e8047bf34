// internal/catalog/service.go
package catalog

import (
	"context"

	"sabi-consults/internal/common/logger"
	"sabi-consults/internal/models"
	"sabi-consults/internal/store"
)

// Service serves public listing reads. Mutations never pass through
// here; they go through the admin gateway.
type Service struct {
	listings store.ListingStore
	logger   logger.Logger
}

func NewService(listings store.ListingStore, log logger.Logger) *Service {
	return &Service{
		listings: listings,
		logger:   log.WithFields(map[string]interface{}{"component": "catalog"}),
	}
}

// Filter returns every available listing matching spec, in store order
// (newest first). No criteria means all available listings.
func (s *Service) Filter(ctx context.Context, spec FilterSpec) ([]models.Listing, error) {
	listings, err := s.listings.List(ctx)
	if err != nil {
		return nil, err
	}
	return Apply(listings, spec), nil
}

// Get returns a single listing regardless of status, so a sold
// listing's detail page keeps working from old links.
func (s *Service) Get(ctx context.Context, id string) (*models.Listing, error) {
	return s.listings.Get(ctx, id)
}
