// internal/store/postgres/inquiries.go
package postgres

import (
	"context"
	"database/sql"

	apperrors "sabi-consults/internal/common/errors"
	"sabi-consults/internal/models"
)

type InquiryStore struct {
	db *sql.DB
}

func NewInquiryStore(db *sql.DB) *InquiryStore {
	return &InquiryStore{db: db}
}

const inquiryColumns = `id, name, email, phone, message, property_id, status, created_at`

func (s *InquiryStore) List(ctx context.Context) ([]models.Inquiry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+inquiryColumns+`
		FROM inquiries
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, apperrors.NewStorageError("inquiries.list", err)
	}
	defer rows.Close()

	var inquiries []models.Inquiry
	for rows.Next() {
		inquiry, err := scanInquiry(rows)
		if err != nil {
			return nil, apperrors.NewStorageError("inquiries.list", err)
		}
		inquiries = append(inquiries, *inquiry)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("inquiries.list", err)
	}
	return inquiries, nil
}

func (s *InquiryStore) Get(ctx context.Context, id string) (*models.Inquiry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+inquiryColumns+` FROM inquiries WHERE id = $1`, id)

	inquiry, err := scanInquiry(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("Inquiry", id)
	}
	if err != nil {
		return nil, apperrors.NewStorageError("inquiries.get", err)
	}
	return inquiry, nil
}

func (s *InquiryStore) Create(ctx context.Context, inquiry *models.Inquiry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO inquiries (
			id, name, email, phone, message, property_id, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		inquiry.ID, inquiry.Name, inquiry.Email, inquiry.Phone, inquiry.Message,
		nullString(inquiry.ListingID), string(inquiry.Status), inquiry.CreatedAt,
	)
	if err != nil {
		return apperrors.NewStorageError("inquiries.create", err)
	}
	return nil
}

func (s *InquiryStore) UpdateStatus(ctx context.Context, id string, status models.InquiryStatus) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE inquiries SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return apperrors.NewStorageError("inquiries.update_status", err)
	}
	return requireRow(result, "Inquiry", id, "inquiries.update_status")
}

func scanInquiry(row rowScanner) (*models.Inquiry, error) {
	var (
		inquiry   models.Inquiry
		listingID sql.NullString
	)

	err := row.Scan(
		&inquiry.ID, &inquiry.Name, &inquiry.Email, &inquiry.Phone,
		&inquiry.Message, &listingID, &inquiry.Status, &inquiry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	inquiry.ListingID = listingID.String
	return &inquiry, nil
}
