package mapview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sabi-consults/internal/models"
)

func mapListing(id string, lat, lng float64, mutate func(*models.Listing)) models.Listing {
	listing := models.Listing{
		ID:        id,
		Title:     "Listing " + id,
		Type:      models.ListingTypeHouse,
		District:  "Maitama",
		Price:     450000000,
		Latitude:  lat,
		Longitude: lng,
		Status:    models.StatusAvailable,
	}
	if mutate != nil {
		mutate(&listing)
	}
	return listing
}

func TestBuildPlan_EmptyInput(t *testing.T) {
	plan := BuildPlan(nil)

	assert.Empty(t, plan.Markers)
	require.NotNil(t, plan.Viewport.Center)
	assert.InDelta(t, 9.0579, plan.Viewport.Center.Latitude, 1e-9)
	assert.InDelta(t, 7.4951, plan.Viewport.Center.Longitude, 1e-9)
	assert.Equal(t, OverviewZoom, plan.Viewport.Zoom)
	assert.Nil(t, plan.Viewport.Bounds)
}

func TestBuildPlan_SingleListing(t *testing.T) {
	plan := BuildPlan([]models.Listing{mapListing("a", 9.08, 7.49, nil)})

	require.Len(t, plan.Markers, 1)
	assert.InDelta(t, 9.08, plan.Markers[0].Latitude, 1e-9)
	assert.InDelta(t, 7.49, plan.Markers[0].Longitude, 1e-9)
	require.NotNil(t, plan.Viewport.Center)
	assert.InDelta(t, 9.08, plan.Viewport.Center.Latitude, 1e-9)
	assert.Equal(t, CloseZoom, plan.Viewport.Zoom)
}

func TestBuildPlan_MultipleListingsBoundingBox(t *testing.T) {
	plan := BuildPlan([]models.Listing{
		mapListing("a", 9.08, 7.49, nil),
		mapListing("b", 9.10, 7.39, nil),
	})

	require.Len(t, plan.Markers, 2)
	require.NotNil(t, plan.Viewport.Bounds)
	assert.Nil(t, plan.Viewport.Center)

	b := plan.Viewport.Bounds
	assert.InDelta(t, 9.08, b.SouthWest.Latitude, 1e-9)
	assert.InDelta(t, 7.39, b.SouthWest.Longitude, 1e-9)
	assert.InDelta(t, 9.10, b.NorthEast.Latitude, 1e-9)
	assert.InDelta(t, 7.49, b.NorthEast.Longitude, 1e-9)
	assert.Equal(t, BoundsPadding, plan.Viewport.Padding)

	for _, m := range plan.Markers {
		assert.GreaterOrEqual(t, m.Latitude, b.SouthWest.Latitude)
		assert.LessOrEqual(t, m.Latitude, b.NorthEast.Latitude)
		assert.GreaterOrEqual(t, m.Longitude, b.SouthWest.Longitude)
		assert.LessOrEqual(t, m.Longitude, b.NorthEast.Longitude)
	}
}

func TestBuildPlan_PopupPayload(t *testing.T) {
	bedrooms := 4
	landSize := 600.0

	plan := BuildPlan([]models.Listing{
		mapListing("house", 9.08, 7.49, func(l *models.Listing) {
			l.Bedrooms = &bedrooms
			l.Featured = true
		}),
		mapListing("land", 9.09, 7.48, func(l *models.Listing) {
			l.Type = models.ListingTypeLand
			l.Price = 50000000
			l.LandSize = &landSize
		}),
		mapListing("bare", 9.07, 7.50, nil),
	})

	require.Len(t, plan.Markers, 3)

	house := plan.Markers[0].Popup
	assert.Equal(t, "Listing house", house.Title)
	assert.Equal(t, "Maitama", house.District)
	assert.Equal(t, "/properties/house", house.Link)
	assert.Equal(t, "house", house.TypeBadge)
	assert.True(t, house.FeaturedBadge)
	assert.Equal(t, "₦450M", house.Price)
	assert.Equal(t, "4 Bedrooms", house.Detail)
	assert.Equal(t, GlyphHouse, plan.Markers[0].Glyph)

	land := plan.Markers[1].Popup
	assert.Equal(t, "land", land.TypeBadge)
	assert.Equal(t, "₦50M", land.Price)
	assert.Equal(t, "600 sqm", land.Detail)
	assert.Equal(t, GlyphLand, plan.Markers[1].Glyph)

	assert.Empty(t, plan.Markers[2].Popup.Detail)
}

func TestBuildSinglePlan(t *testing.T) {
	bedrooms := 4
	listing := mapListing("a", 9.08, 7.49, func(l *models.Listing) {
		l.Bedrooms = &bedrooms
		l.Featured = true
	})

	plan := BuildSinglePlan(&listing)

	require.Len(t, plan.Markers, 1)
	popup := plan.Markers[0].Popup
	assert.Equal(t, "Listing a", popup.Title)
	assert.Equal(t, "Maitama", popup.District)

	// selected-listing popups stay minimal
	assert.Empty(t, popup.TypeBadge)
	assert.False(t, popup.FeaturedBadge)
	assert.Empty(t, popup.Price)
	assert.Empty(t, popup.Detail)

	require.NotNil(t, plan.Viewport.Center)
	assert.Equal(t, CloseZoom, plan.Viewport.Zoom)
}

func TestBuildPlan_AcceptsOutOfRangeCoordinates(t *testing.T) {
	plan := BuildPlan([]models.Listing{
		mapListing("a", 123.0, -500.0, nil),
		mapListing("b", -99.0, 700.0, nil),
	})

	require.Len(t, plan.Markers, 2)
	require.NotNil(t, plan.Viewport.Bounds)
	assert.InDelta(t, -99.0, plan.Viewport.Bounds.SouthWest.Latitude, 1e-9)
	assert.InDelta(t, 123.0, plan.Viewport.Bounds.NorthEast.Latitude, 1e-9)
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price int64
		want  string
	}{
		{450000000, "₦450M"},
		{1500000000, "₦1.5B"},
		{50000, "₦50,000"},
		{1000000000, "₦1.0B"},
		{2750000000, "₦2.8B"},
		{1000000, "₦1M"},
		{999999999, "₦1000M"},
		{999, "₦999"},
		{0, "₦0"},
		{1234567, "₦1M"},
		{123456, "₦123,456"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.price))
		})
	}
}
