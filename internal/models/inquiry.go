package models

import "time"

// InquiryStatus tracks how far the office has taken a contact request.
type InquiryStatus string

const (
	InquiryNew       InquiryStatus = "new"
	InquiryContacted InquiryStatus = "contacted"
	InquiryClosed    InquiryStatus = "closed"
)

func (s InquiryStatus) Valid() bool {
	return s == InquiryNew || s == InquiryContacted || s == InquiryClosed
}

// Inquiry is a public contact-form submission, optionally tied to a
// listing. Created only through the public surface; status mutated only
// by admin action.
type Inquiry struct {
	ID        string        `json:"id" db:"id"`
	Name      string        `json:"name" db:"name"`
	Email     string        `json:"email" db:"email"`
	Phone     string        `json:"phone" db:"phone"`
	Message   string        `json:"message" db:"message"`
	ListingID string        `json:"propertyId,omitempty" db:"property_id"`
	Status    InquiryStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
}

// InquiryInput is the validated public submission payload.
type InquiryInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
	ListingID string `json:"propertyId"`
}
