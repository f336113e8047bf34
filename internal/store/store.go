// Package store defines the persistence interfaces the service depends
// on. Production uses the postgres implementation; tests use the memory
// fake. Nothing above this package touches a concrete database.
package store

import (
	"context"

	"sabi-consults/internal/models"
)

// ListingStore is the ordered collection of property records. List
// returns newest-first by creation time, which is the order public
// pages render.
type ListingStore interface {
	List(ctx context.Context) ([]models.Listing, error)
	Get(ctx context.Context, id string) (*models.Listing, error)
	Create(ctx context.Context, listing *models.Listing) error
	Update(ctx context.Context, listing *models.Listing) error
	Delete(ctx context.Context, id string) error
}

// BlogStore holds articles. List with publishedOnly filters drafts out
// and orders by publication time, newest first.
type BlogStore interface {
	List(ctx context.Context, publishedOnly bool) ([]models.BlogPost, error)
	Get(ctx context.Context, id string) (*models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	Create(ctx context.Context, post *models.BlogPost) error
	Update(ctx context.Context, post *models.BlogPost) error
	Delete(ctx context.Context, id string) error
}

// TeamStore holds staff profiles, ordered by display order ascending.
// There is no hard delete: Deactivate flips the active flag and the
// record stays behind.
type TeamStore interface {
	List(ctx context.Context, activeOnly bool) ([]models.TeamMember, error)
	Get(ctx context.Context, id string) (*models.TeamMember, error)
	Create(ctx context.Context, member *models.TeamMember) error
	Update(ctx context.Context, member *models.TeamMember) error
	Deactivate(ctx context.Context, id string) error
}

// InquiryStore records contact submissions. Inquiries are never deleted.
type InquiryStore interface {
	List(ctx context.Context) ([]models.Inquiry, error)
	Get(ctx context.Context, id string) (*models.Inquiry, error)
	Create(ctx context.Context, inquiry *models.Inquiry) error
	UpdateStatus(ctx context.Context, id string, status models.InquiryStatus) error
}

// SettingsStore is a flat key/value table.
type SettingsStore interface {
	GetAll(ctx context.Context) (map[string]string, error)
	SetAll(ctx context.Context, values map[string]string) error
}
