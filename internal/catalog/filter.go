// Package catalog implements the public listing read side: the filter
// engine and its price-range query parsing.
package catalog

import (
	"strconv"
	"strings"

	"sabi-consults/internal/models"
)

// FilterSpec is a partial set of criteria; nil or zero-valued fields
// are not applied. A FilterSpec is a pure predicate: values that can never
// match (an unknown type, a district nobody has) yield zero results
// rather than an error.
type FilterSpec struct {
	Type     string
	District string
	MinPrice *int64
	MaxPrice *int64
	Bedrooms *int
	Featured *bool
}

// Empty reports whether no criteria were supplied.
func (s FilterSpec) Empty() bool {
	return s.Type == "" && s.District == "" &&
		s.MinPrice == nil && s.MaxPrice == nil &&
		s.Bedrooms == nil && s.Featured == nil
}

// Matches reports whether a listing satisfies every supplied criterion.
// Listings that are not available never match; that policy is fixed,
// not a parameter.
func Matches(listing *models.Listing, spec FilterSpec) bool {
	if listing.Status != models.StatusAvailable {
		return false
	}
	if spec.Type != "" && string(listing.Type) != spec.Type {
		return false
	}
	if spec.District != "" && !strings.EqualFold(listing.District, spec.District) {
		return false
	}
	if spec.MinPrice != nil && listing.Price < *spec.MinPrice {
		return false
	}
	// Half-open at the top so the site's adjacent price bands never
	// double-count a boundary price.
	if spec.MaxPrice != nil && listing.Price >= *spec.MaxPrice {
		return false
	}
	if spec.Bedrooms != nil {
		if listing.Bedrooms == nil || *listing.Bedrooms != *spec.Bedrooms {
			return false
		}
	}
	if spec.Featured != nil && listing.Featured != *spec.Featured {
		return false
	}
	return true
}

// Apply filters listings against spec, preserving the input order.
func Apply(listings []models.Listing, spec FilterSpec) []models.Listing {
	out := make([]models.Listing, 0, len(listings))
	for i := range listings {
		if Matches(&listings[i], spec) {
			out = append(out, listings[i])
		}
	}
	return out
}

// ParsePriceRange parses the site's "<min>-<max>" query value. Either
// side may be empty: an empty min means zero, an empty max means
// unbounded. A side that fails to parse as a non-negative integer is
// treated as absent rather than rejected; the search form can only
// emit well-formed bands, so malformed text is ignored instead of
// turned into a user-facing error.
func ParsePriceRange(raw string) (minPrice, maxPrice *int64) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.SplitN(raw, "-", 2)
	minPrice = parsePriceBound(parts[0])
	if len(parts) == 2 {
		maxPrice = parsePriceBound(parts[1])
	}
	return minPrice, maxPrice
}

func parsePriceBound(s string) *int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}
