package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "sabi-consults/internal/common/errors"
	"sabi-consults/internal/models"
)

var listingColumnNames = []string{
	"id", "title", "description", "price", "price_label", "type", "district", "address",
	"latitude", "longitude", "bedrooms", "bathrooms", "bq", "land_size",
	"images", "features", "variations", "status", "featured", "created_at", "updated_at",
}

func newMockDB(t *testing.T) (*ListingStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewListingStore(db), mock
}

func listingRow(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(listingColumnNames).AddRow(
		"prop-1", "4 Bedroom Terrace", "A terrace duplex.", int64(250000000),
		nil, "house", "Maitama", "12 Panama Street",
		9.08, 7.49, int64(4), int64(4), nil, nil,
		[]byte(`{"https://img/1.jpg","https://img/2.jpg"}`), []byte(`{"Fitted Kitchen"}`),
		[]byte(`[]`), "available", true, now, now,
	)
}

func TestListingStore_Get(t *testing.T) {
	store, mock := newMockDB(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`(?s)SELECT .+ FROM properties\s+WHERE id = \$1`).
		WithArgs("prop-1").
		WillReturnRows(listingRow(now))

	listing, err := store.Get(context.Background(), "prop-1")
	require.NoError(t, err)

	assert.Equal(t, "prop-1", listing.ID)
	assert.Equal(t, models.ListingTypeHouse, listing.Type)
	assert.Equal(t, int64(250000000), listing.Price)
	assert.Empty(t, listing.PriceLabel)
	require.NotNil(t, listing.Bedrooms)
	assert.Equal(t, 4, *listing.Bedrooms)
	assert.Nil(t, listing.BQ)
	assert.Nil(t, listing.LandSize)
	assert.Equal(t, []string{"https://img/1.jpg", "https://img/2.jpg"}, listing.Images)
	assert.Equal(t, "https://img/1.jpg", listing.MainImage())
	assert.True(t, listing.Featured)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingStore_GetNotFound(t *testing.T) {
	store, mock := newMockDB(t)

	mock.ExpectQuery(`(?s)SELECT .+ FROM properties\s+WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(listingColumnNames))

	_, err := store.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingStore_ListNewestFirst(t *testing.T) {
	store, mock := newMockDB(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`(?s)SELECT .+ FROM properties\s+ORDER BY created_at DESC`).
		WillReturnRows(listingRow(now))

	listings, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "prop-1", listings[0].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingStore_Create(t *testing.T) {
	store, mock := newMockDB(t)
	now := time.Now().UTC()
	bedrooms := 4

	mock.ExpectExec(`INSERT INTO properties`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Create(context.Background(), &models.Listing{
		ID:        "prop-1",
		Title:     "4 Bedroom Terrace",
		Type:      models.ListingTypeHouse,
		District:  "Maitama",
		Price:     250000000,
		Bedrooms:  &bedrooms,
		Status:    models.StatusAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingStore_UpdateMissingRowIsNotFound(t *testing.T) {
	store, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE properties SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Update(context.Background(), &models.Listing{
		ID:     "missing",
		Title:  "Ghost",
		Type:   models.ListingTypeLand,
		Status: models.StatusAvailable,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingStore_Delete(t *testing.T) {
	store, mock := newMockDB(t)

	mock.ExpectExec(`DELETE FROM properties WHERE id = \$1`).
		WithArgs("prop-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Delete(context.Background(), "prop-1"))

	mock.ExpectExec(`DELETE FROM properties WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Delete(context.Background(), "missing")
	assert.True(t, apperrors.IsNotFound(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}
