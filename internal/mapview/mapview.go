// Package mapview turns listings into the marker and viewport
// instructions consumed by the site's map surface. It is pure
// projection: no I/O, no failure modes, empty input falls back to the
// city overview.
package mapview

import (
	"fmt"
	"math"
	"strconv"

	"sabi-consults/internal/models"
)

// Abuja city-centre fallback viewport, used when there is nothing to
// plot.
const (
	DefaultCenterLat = 9.0579
	DefaultCenterLng = 7.4951
	OverviewZoom     = 11
	CloseZoom        = 14
	BoundsPadding    = 50
)

// Glyph is the visual marker category. The mapping from listing type
// is total: the type enum is closed, so there is no unknown glyph.
type Glyph string

const (
	GlyphHouse Glyph = "house"
	GlyphLand  Glyph = "land"
)

// Coordinate is a latitude/longitude pair. Out-of-range values are
// passed through untouched; coordinate validation belongs to the
// admin write path, not to projection.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Bounds is the minimal box containing a set of coordinates.
type Bounds struct {
	SouthWest Coordinate `json:"southWest"`
	NorthEast Coordinate `json:"northEast"`
}

// Popup is the marker popup payload. Badge and stat fields are only
// populated in multi-listing mode; a single selected listing shows
// title and district alone.
type Popup struct {
	Title         string `json:"title"`
	District      string `json:"district"`
	Link          string `json:"link"`
	TypeBadge     string `json:"typeBadge,omitempty"`
	FeaturedBadge bool   `json:"featuredBadge,omitempty"`
	Price         string `json:"price,omitempty"`
	Detail        string `json:"detail,omitempty"`
}

// Marker places one listing on the map.
type Marker struct {
	Coordinate
	Glyph Glyph `json:"glyph"`
	Popup Popup `json:"popup"`
}

// Viewport tells the map surface where to look. Exactly one of the
// two instructions is set: Center with Zoom, or Bounds with Padding.
type Viewport struct {
	Center  *Coordinate `json:"center,omitempty"`
	Zoom    int         `json:"zoom,omitempty"`
	Bounds  *Bounds     `json:"bounds,omitempty"`
	Padding int         `json:"padding,omitempty"`
}

// RenderPlan is the full instruction set handed to the map surface.
type RenderPlan struct {
	Markers  []Marker `json:"markers"`
	Viewport Viewport `json:"viewport"`
}

// BuildPlan projects a set of listings into a render plan. Empty
// input yields the default city-centroid viewport with no markers; a
// single listing centers on it at close zoom; multiple listings fit a
// padded bounding box around all coordinates.
func BuildPlan(listings []models.Listing) RenderPlan {
	markers := make([]Marker, 0, len(listings))
	for i := range listings {
		markers = append(markers, markerFor(&listings[i], true))
	}

	switch len(listings) {
	case 0:
		return RenderPlan{Markers: markers, Viewport: overviewViewport()}
	case 1:
		return RenderPlan{
			Markers:  markers,
			Viewport: centerViewport(listings[0].Latitude, listings[0].Longitude),
		}
	default:
		return RenderPlan{
			Markers:  markers,
			Viewport: Viewport{Bounds: boundsOf(listings), Padding: BoundsPadding},
		}
	}
}

// BuildSinglePlan projects one selected listing: one marker with the
// reduced popup, centered at close zoom.
func BuildSinglePlan(listing *models.Listing) RenderPlan {
	return RenderPlan{
		Markers:  []Marker{markerFor(listing, false)},
		Viewport: centerViewport(listing.Latitude, listing.Longitude),
	}
}

func overviewViewport() Viewport {
	return Viewport{
		Center: &Coordinate{Latitude: DefaultCenterLat, Longitude: DefaultCenterLng},
		Zoom:   OverviewZoom,
	}
}

func centerViewport(lat, lng float64) Viewport {
	return Viewport{
		Center: &Coordinate{Latitude: lat, Longitude: lng},
		Zoom:   CloseZoom,
	}
}

func boundsOf(listings []models.Listing) *Bounds {
	b := Bounds{
		SouthWest: Coordinate{Latitude: listings[0].Latitude, Longitude: listings[0].Longitude},
		NorthEast: Coordinate{Latitude: listings[0].Latitude, Longitude: listings[0].Longitude},
	}
	for i := range listings[1:] {
		l := &listings[i+1]
		b.SouthWest.Latitude = math.Min(b.SouthWest.Latitude, l.Latitude)
		b.SouthWest.Longitude = math.Min(b.SouthWest.Longitude, l.Longitude)
		b.NorthEast.Latitude = math.Max(b.NorthEast.Latitude, l.Latitude)
		b.NorthEast.Longitude = math.Max(b.NorthEast.Longitude, l.Longitude)
	}
	return &b
}

func markerFor(listing *models.Listing, full bool) Marker {
	popup := Popup{
		Title:    listing.Title,
		District: listing.District,
		Link:     "/properties/" + listing.ID,
	}
	if full {
		popup.TypeBadge = string(listing.Type)
		popup.FeaturedBadge = listing.Featured
		popup.Price = FormatPrice(listing.Price)
		popup.Detail = secondaryStat(listing)
	}
	return Marker{
		Coordinate: Coordinate{Latitude: listing.Latitude, Longitude: listing.Longitude},
		Glyph:      glyphFor(listing.Type),
		Popup:      popup,
	}
}

func glyphFor(t models.ListingType) Glyph {
	if t == models.ListingTypeLand {
		return GlyphLand
	}
	return GlyphHouse
}

// secondaryStat picks the one extra figure shown under the price:
// bedroom count for houses, plot size for land. Empty when the
// listing has neither.
func secondaryStat(listing *models.Listing) string {
	switch listing.Type {
	case models.ListingTypeHouse:
		if listing.Bedrooms != nil {
			return fmt.Sprintf("%d Bedrooms", *listing.Bedrooms)
		}
	case models.ListingTypeLand:
		if listing.LandSize != nil {
			return strconv.FormatFloat(*listing.LandSize, 'f', -1, 64) + " sqm"
		}
	}
	return ""
}

// FormatPrice renders a naira amount the way the listing cards do:
// billions to one decimal, millions rounded to a whole number,
// anything smaller as a comma-grouped integer.
func FormatPrice(price int64) string {
	switch {
	case price >= 1_000_000_000:
		return fmt.Sprintf("₦%.1fB", float64(price)/1_000_000_000)
	case price >= 1_000_000:
		return fmt.Sprintf("₦%dM", int64(math.Round(float64(price)/1_000_000)))
	default:
		return "₦" + groupDigits(price)
	}
}

func groupDigits(v int64) string {
	s := strconv.FormatInt(v, 10)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
