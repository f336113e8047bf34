package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sabi-consults/internal/common/logger"
	"sabi-consults/internal/models"
	"sabi-consults/internal/store/memory"
)

// ==========================
// Test Helper Functions
// ==========================

func intp(v int) *int       { return &v }
func int64p(v int64) *int64 { return &v }
func boolp(v bool) *bool    { return &v }

func testListing(id string, mutate func(*models.Listing)) models.Listing {
	listing := models.Listing{
		ID:        id,
		Title:     "Test Listing " + id,
		Type:      models.ListingTypeHouse,
		District:  "Maitama",
		Price:     100000000,
		Latitude:  9.08,
		Longitude: 7.49,
		Status:    models.StatusAvailable,
	}
	if mutate != nil {
		mutate(&listing)
	}
	return listing
}

// ==========================
// Predicate Tests
// ==========================

func TestMatches(t *testing.T) {
	tests := []struct {
		name    string
		listing models.Listing
		spec    FilterSpec
		want    bool
	}{
		{
			name:    "empty spec matches available listing",
			listing: testListing("1", nil),
			spec:    FilterSpec{},
			want:    true,
		},
		{
			name: "sold listing never matches",
			listing: testListing("1", func(l *models.Listing) {
				l.Status = models.StatusSold
			}),
			spec: FilterSpec{},
			want: false,
		},
		{
			name: "pending listing never matches",
			listing: testListing("1", func(l *models.Listing) {
				l.Status = models.StatusPending
			}),
			spec: FilterSpec{},
			want: false,
		},
		{
			name:    "type equality",
			listing: testListing("1", nil),
			spec:    FilterSpec{Type: "house"},
			want:    true,
		},
		{
			name:    "type mismatch",
			listing: testListing("1", nil),
			spec:    FilterSpec{Type: "land"},
			want:    false,
		},
		{
			name:    "unknown type yields no match, not an error",
			listing: testListing("1", nil),
			spec:    FilterSpec{Type: "castle"},
			want:    false,
		},
		{
			name:    "district is case-insensitive",
			listing: testListing("1", nil),
			spec:    FilterSpec{District: "maitama"},
			want:    true,
		},
		{
			name:    "district mismatch",
			listing: testListing("1", nil),
			spec:    FilterSpec{District: "Asokoro"},
			want:    false,
		},
		{
			name:    "price range includes exact lower bound",
			listing: testListing("1", func(l *models.Listing) { l.Price = 100000000 }),
			spec:    FilterSpec{MinPrice: int64p(100000000), MaxPrice: int64p(250000000)},
			want:    true,
		},
		{
			name:    "price range excludes value above upper bound",
			listing: testListing("1", func(l *models.Listing) { l.Price = 250000001 }),
			spec:    FilterSpec{MinPrice: int64p(100000000), MaxPrice: int64p(250000000)},
			want:    false,
		},
		{
			name:    "upper bound is exclusive",
			listing: testListing("1", func(l *models.Listing) { l.Price = 250000000 }),
			spec:    FilterSpec{MinPrice: int64p(100000000), MaxPrice: int64p(250000000)},
			want:    false,
		},
		{
			name:    "open upper bound includes large price",
			listing: testListing("1", func(l *models.Listing) { l.Price = 5000000000 }),
			spec:    FilterSpec{MinPrice: int64p(1000000000)},
			want:    true,
		},
		{
			name:    "open upper bound excludes price below min",
			listing: testListing("1", func(l *models.Listing) { l.Price = 999999999 }),
			spec:    FilterSpec{MinPrice: int64p(1000000000)},
			want:    false,
		},
		{
			name: "bedrooms exact match",
			listing: testListing("1", func(l *models.Listing) {
				l.Bedrooms = intp(4)
			}),
			spec: FilterSpec{Bedrooms: intp(4)},
			want: true,
		},
		{
			name: "bedrooms mismatch",
			listing: testListing("1", func(l *models.Listing) {
				l.Bedrooms = intp(3)
			}),
			spec: FilterSpec{Bedrooms: intp(4)},
			want: false,
		},
		{
			name:    "bedrooms filter against listing without bedrooms",
			listing: testListing("1", nil),
			spec:    FilterSpec{Bedrooms: intp(4)},
			want:    false,
		},
		{
			name: "featured flag",
			listing: testListing("1", func(l *models.Listing) {
				l.Featured = true
			}),
			spec: FilterSpec{Featured: boolp(true)},
			want: true,
		},
		{
			name: "all criteria must hold",
			listing: testListing("1", func(l *models.Listing) {
				l.Type = models.ListingTypeLand
				l.District = "Utako"
				l.Price = 350000000
			}),
			spec: FilterSpec{
				Type:     "land",
				District: "utako",
				MinPrice: int64p(250000000),
				MaxPrice: int64p(500000000),
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(&tt.listing, tt.spec))
		})
	}
}

func TestApply_PreservesOrder(t *testing.T) {
	listings := []models.Listing{
		testListing("a", nil),
		testListing("b", func(l *models.Listing) { l.Status = models.StatusSold }),
		testListing("c", nil),
		testListing("d", nil),
	}

	out := Apply(listings, FilterSpec{})

	require.Len(t, out, 3)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "c", out[1].ID)
	assert.Equal(t, "d", out[2].ID)
}

func TestApply_EmptyInput(t *testing.T) {
	out := Apply(nil, FilterSpec{Type: "house"})
	assert.Empty(t, out)
}

// ==========================
// Price Range Parsing Tests
// ==========================

func TestParsePriceRange(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantMin *int64
		wantMax *int64
	}{
		{"both bounds", "100000000-250000000", int64p(100000000), int64p(250000000)},
		{"open upper bound", "1000000000-", int64p(1000000000), nil},
		{"open lower bound", "-100000000", nil, int64p(100000000)},
		{"empty string", "", nil, nil},
		{"bare dash", "-", nil, nil},
		{"non-numeric min is ignored", "abc-250000000", nil, int64p(250000000)},
		{"non-numeric max is ignored", "100000000-xyz", int64p(100000000), nil},
		{"negative bound is ignored", "100--200", int64p(100), nil},
		{"no dash treated as min only", "500000", int64p(500000), nil},
		{"whitespace tolerated", " 1000 - 2000 ", int64p(1000), int64p(2000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotMin, gotMax := ParsePriceRange(tt.raw)
			assert.Equal(t, tt.wantMin, gotMin)
			assert.Equal(t, tt.wantMax, gotMax)
		})
	}
}

// ==========================
// Service Tests
// ==========================

func TestService_Filter_NoCriteriaReturnsAllAvailableInStoreOrder(t *testing.T) {
	ctx := context.Background()
	listingStore := memory.NewListingStore()

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "mid", "new"} {
		listing := testListing(id, func(l *models.Listing) {
			l.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		})
		require.NoError(t, listingStore.Create(ctx, &listing))
	}
	sold := testListing("sold", func(l *models.Listing) {
		l.Status = models.StatusSold
		l.CreatedAt = base.Add(10 * time.Hour)
	})
	require.NoError(t, listingStore.Create(ctx, &sold))

	svc := NewService(listingStore, logger.NewNoOpLogger())

	out, err := svc.Filter(ctx, FilterSpec{})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "new", out[0].ID)
	assert.Equal(t, "mid", out[1].ID)
	assert.Equal(t, "old", out[2].ID)
}

func TestService_Filter_NoFalsePositivesOrNegatives(t *testing.T) {
	ctx := context.Background()
	listingStore := memory.NewListingStore()

	listings := []models.Listing{
		testListing("house-maitama", nil),
		testListing("land-utako", func(l *models.Listing) {
			l.Type = models.ListingTypeLand
			l.District = "Utako"
		}),
		testListing("house-asokoro", func(l *models.Listing) {
			l.District = "Asokoro"
		}),
	}
	for i := range listings {
		require.NoError(t, listingStore.Create(ctx, &listings[i]))
	}

	svc := NewService(listingStore, logger.NewNoOpLogger())
	spec := FilterSpec{Type: "house"}

	out, err := svc.Filter(ctx, spec)
	require.NoError(t, err)

	matched := make(map[string]bool, len(out))
	for i := range out {
		assert.True(t, Matches(&out[i], spec))
		matched[out[i].ID] = true
	}
	for i := range listings {
		assert.Equal(t, Matches(&listings[i], spec), matched[listings[i].ID])
	}
}
