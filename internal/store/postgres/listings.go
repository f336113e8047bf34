// internal/store/postgres/listings.go
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/lib/pq"

	apperrors "sabi-consults/internal/common/errors"
	"sabi-consults/internal/models"
)

// ListingStore is the PostgreSQL-backed property collection. Column
// names are snake_case; the scan/insert code here is the single place
// that maps them onto the camelCase entity representation.
type ListingStore struct {
	db *sql.DB
}

func NewListingStore(db *sql.DB) *ListingStore {
	return &ListingStore{db: db}
}

const listingColumns = `
	id, title, description, price, price_label, type, district, address,
	latitude, longitude, bedrooms, bathrooms, bq, land_size,
	images, features, variations, status, featured, created_at, updated_at`

func (s *ListingStore) List(ctx context.Context) ([]models.Listing, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+listingColumns+`
		FROM properties
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, apperrors.NewStorageError("listings.list", err)
	}
	defer rows.Close()

	var listings []models.Listing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, apperrors.NewStorageError("listings.list", err)
		}
		listings = append(listings, *listing)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("listings.list", err)
	}
	return listings, nil
}

func (s *ListingStore) Get(ctx context.Context, id string) (*models.Listing, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+listingColumns+`
		FROM properties
		WHERE id = $1`, id)

	listing, err := scanListing(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("Property", id)
	}
	if err != nil {
		return nil, apperrors.NewStorageError("listings.get", err)
	}
	return listing, nil
}

func (s *ListingStore) Create(ctx context.Context, listing *models.Listing) error {
	variationsJSON, err := json.Marshal(listing.Variations)
	if err != nil {
		return apperrors.NewStorageError("listings.create", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO properties (
			id, title, description, price, price_label, type, district, address,
			latitude, longitude, bedrooms, bathrooms, bq, land_size,
			images, features, variations, status, featured, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21)`,
		listing.ID, listing.Title, listing.Description, listing.Price,
		nullString(listing.PriceLabel), string(listing.Type), listing.District, listing.Address,
		listing.Latitude, listing.Longitude,
		nullInt(listing.Bedrooms), nullInt(listing.Bathrooms), nullInt(listing.BQ),
		nullFloat(listing.LandSize),
		pq.Array(listing.Images), pq.Array(listing.Features), variationsJSON,
		string(listing.Status), listing.Featured, listing.CreatedAt, listing.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewStorageError("listings.create", err)
	}
	return nil
}

func (s *ListingStore) Update(ctx context.Context, listing *models.Listing) error {
	variationsJSON, err := json.Marshal(listing.Variations)
	if err != nil {
		return apperrors.NewStorageError("listings.update", err)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE properties SET
			title = $2, description = $3, price = $4, price_label = $5,
			type = $6, district = $7, address = $8, latitude = $9, longitude = $10,
			bedrooms = $11, bathrooms = $12, bq = $13, land_size = $14,
			images = $15, features = $16, variations = $17,
			status = $18, featured = $19, updated_at = $20
		WHERE id = $1`,
		listing.ID, listing.Title, listing.Description, listing.Price,
		nullString(listing.PriceLabel), string(listing.Type), listing.District,
		listing.Address, listing.Latitude, listing.Longitude,
		nullInt(listing.Bedrooms), nullInt(listing.Bathrooms), nullInt(listing.BQ),
		nullFloat(listing.LandSize),
		pq.Array(listing.Images), pq.Array(listing.Features), variationsJSON,
		string(listing.Status), listing.Featured, listing.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewStorageError("listings.update", err)
	}
	return requireRow(result, "Property", listing.ID, "listings.update")
}

func (s *ListingStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return apperrors.NewStorageError("listings.delete", err)
	}
	return requireRow(result, "Property", id, "listings.delete")
}

// scanListing reads one row into a Listing, converting nullable columns
// to pointers and array/jsonb columns to slices.
func scanListing(row rowScanner) (*models.Listing, error) {
	var (
		listing        models.Listing
		priceLabel     sql.NullString
		bedrooms       sql.NullInt64
		bathrooms      sql.NullInt64
		bq             sql.NullInt64
		landSize       sql.NullFloat64
		variationsJSON []byte
	)

	err := row.Scan(
		&listing.ID, &listing.Title, &listing.Description, &listing.Price,
		&priceLabel, &listing.Type, &listing.District, &listing.Address,
		&listing.Latitude, &listing.Longitude,
		&bedrooms, &bathrooms, &bq, &landSize,
		pq.Array(&listing.Images), pq.Array(&listing.Features), &variationsJSON,
		&listing.Status, &listing.Featured, &listing.CreatedAt, &listing.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	listing.PriceLabel = priceLabel.String
	listing.Bedrooms = intPtr(bedrooms)
	listing.Bathrooms = intPtr(bathrooms)
	listing.BQ = intPtr(bq)
	listing.LandSize = floatPtr(landSize)

	if len(variationsJSON) > 0 {
		if err := json.Unmarshal(variationsJSON, &listing.Variations); err != nil {
			return nil, err
		}
	}
	return &listing, nil
}
