// Package inquiries handles public contact-form submissions.
package inquiries

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "sabi-consults/internal/common/errors"
	"sabi-consults/internal/common/logger"
	"sabi-consults/internal/common/metrics"
	"sabi-consults/internal/common/validation"
	"sabi-consults/internal/models"
	"sabi-consults/internal/notify"
	"sabi-consults/internal/store"
)

var emailPattern = regexp.MustCompile(validation.EmailPattern)

// Service records inquiries and fires the office notification. Every
// well-formed submission becomes a new record; there is no rate
// limiting or deduplication here.
type Service struct {
	inquiries store.InquiryStore
	listings  store.ListingStore
	notifier  notify.Notifier
	logger    logger.Logger
}

func NewService(inquiries store.InquiryStore, listings store.ListingStore, notifier notify.Notifier, log logger.Logger) *Service {
	if notifier == nil {
		notifier = notify.NoOp{}
	}
	return &Service{
		inquiries: inquiries,
		listings:  listings,
		notifier:  notifier,
		logger:    log,
	}
}

// Submit validates and stores a contact-form submission with status
// "new". The notification hook runs after the write and cannot fail
// the submission.
func (s *Service) Submit(ctx context.Context, input models.InquiryInput) (*models.Inquiry, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	inquiry := &models.Inquiry{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		Message:   strings.TrimSpace(input.Message),
		ListingID: strings.TrimSpace(input.ListingID),
		Status:    models.InquiryNew,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.inquiries.Create(ctx, inquiry); err != nil {
		return nil, err
	}
	metrics.InquiriesSubmitted.Inc()

	s.logger.Info("Inquiry recorded", map[string]interface{}{
		"inquiry_id":  inquiry.ID,
		"property_id": inquiry.ListingID,
	})

	s.notifier.InquirySubmitted(ctx, inquiry, s.listingTitle(ctx, inquiry.ListingID))

	return inquiry, nil
}

// listingTitle resolves the referenced listing's title for the
// notification. The reference is advisory: a missing listing does not
// invalidate the inquiry.
func (s *Service) listingTitle(ctx context.Context, listingID string) string {
	if listingID == "" || s.listings == nil {
		return ""
	}
	listing, err := s.listings.Get(ctx, listingID)
	if err != nil {
		return ""
	}
	return listing.Title
}

func validateInput(input models.InquiryInput) error {
	var fields []apperrors.FieldError

	if strings.TrimSpace(input.Name) == "" {
		fields = append(fields, apperrors.FieldError{Field: "name", Message: "name is required"})
	}
	email := strings.TrimSpace(input.Email)
	switch {
	case email == "":
		fields = append(fields, apperrors.FieldError{Field: "email", Message: "email is required"})
	case !emailPattern.MatchString(email):
		fields = append(fields, apperrors.FieldError{Field: "email", Message: "email is not valid"})
	}
	if strings.TrimSpace(input.Phone) == "" {
		fields = append(fields, apperrors.FieldError{Field: "phone", Message: "phone is required"})
	}
	if strings.TrimSpace(input.Message) == "" {
		fields = append(fields, apperrors.FieldError{Field: "message", Message: "message is required"})
	}

	if len(fields) > 0 {
		return apperrors.NewValidationError(fields...)
	}
	return nil
}
