package admin

import (
	"context"

	apperrors "sabi-consults/internal/common/errors"
	"sabi-consults/internal/models"
)

// ListInquiries returns every stored inquiry, newest first. Inquiry
// data is admin-only, so reads are gated like the writes.
func (g *Gateway) ListInquiries(ctx context.Context, token string) ([]models.Inquiry, error) {
	if err := g.authorize(ctx, token, "inquiry"); err != nil {
		return nil, err
	}
	return g.inquiries.List(ctx)
}

func (g *Gateway) GetInquiry(ctx context.Context, token, id string) (*models.Inquiry, error) {
	if err := g.authorize(ctx, token, "inquiry"); err != nil {
		return nil, err
	}
	return g.inquiries.Get(ctx, id)
}

// UpdateInquiryStatus moves an inquiry through the follow-up pipeline.
// Inquiries are never deleted.
func (g *Gateway) UpdateInquiryStatus(ctx context.Context, token, id string, status models.InquiryStatus) (*models.Inquiry, error) {
	if err := g.authorize(ctx, token, "inquiry"); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, apperrors.NewValidationError(apperrors.FieldError{
			Field:   "status",
			Message: "status must be new, contacted or closed",
		})
	}

	if err := g.inquiries.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return g.inquiries.Get(ctx, id)
}
