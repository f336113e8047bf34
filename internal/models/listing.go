package models

import "time"

// ListingType distinguishes the two property categories on offer.
type ListingType string

const (
	ListingTypeLand  ListingType = "land"
	ListingTypeHouse ListingType = "house"
)

// Valid reports whether t is one of the closed set of listing types.
func (t ListingType) Valid() bool {
	return t == ListingTypeLand || t == ListingTypeHouse
}

// ListingStatus is the sales state of a listing or variation.
type ListingStatus string

const (
	StatusAvailable ListingStatus = "available"
	StatusSold      ListingStatus = "sold"
	StatusPending   ListingStatus = "pending"
)

func (s ListingStatus) Valid() bool {
	return s == StatusAvailable || s == StatusSold || s == StatusPending
}

// Listing represents a property offered through the service.
type Listing struct {
	ID          string        `json:"id" db:"id"`
	Title       string        `json:"title" db:"title"`
	Description string        `json:"description" db:"description"`
	Price       int64         `json:"price" db:"price"`
	PriceLabel  string        `json:"priceLabel,omitempty" db:"price_label"`
	Type        ListingType   `json:"type" db:"type"`
	District    string        `json:"district" db:"district"`
	Address     string        `json:"address" db:"address"`
	Latitude    float64       `json:"latitude" db:"latitude"`
	Longitude   float64       `json:"longitude" db:"longitude"`
	Bedrooms    *int          `json:"bedrooms,omitempty" db:"bedrooms"`
	Bathrooms   *int          `json:"bathrooms,omitempty" db:"bathrooms"`
	BQ          *int          `json:"bq,omitempty" db:"bq"`
	LandSize    *float64      `json:"landSize,omitempty" db:"land_size"`
	Images      []string      `json:"images" db:"images"`
	Features    []string      `json:"features" db:"features"`
	Variations  []Variation   `json:"variations,omitempty" db:"variations"`
	Status      ListingStatus `json:"status" db:"status"`
	Featured    bool          `json:"featured" db:"featured"`
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt" db:"updated_at"`
}

// MainImage returns the first image URL, the one shown on cards.
func (l *Listing) MainImage() string {
	if len(l.Images) == 0 {
		return ""
	}
	return l.Images[0]
}

// Variation is a distinct plot size or unit type within one estate.
// Its status is independent of the parent listing's status; when
// variations carry their own prices the parent price reads as a
// "starting from" figure.
type Variation struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Price          *int64        `json:"price,omitempty"`
	Bedrooms       *int          `json:"bedrooms,omitempty"`
	Bathrooms      *int          `json:"bathrooms,omitempty"`
	BQ             *int          `json:"bq,omitempty"`
	LandSize       *float64      `json:"landSize,omitempty"`
	UnitsAvailable *int          `json:"unitsAvailable,omitempty"`
	Status         ListingStatus `json:"status"`
}

// ListingInput is the validated payload for creating or fully updating
// a listing. Latitude and longitude are pointers so an omitted pair can
// fall back to the district's reference coordinates.
type ListingInput struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Price       int64         `json:"price"`
	PriceLabel  string        `json:"priceLabel"`
	Type        ListingType   `json:"type"`
	District    string        `json:"district"`
	Address     string        `json:"address"`
	Latitude    *float64      `json:"latitude"`
	Longitude   *float64      `json:"longitude"`
	Bedrooms    *int          `json:"bedrooms"`
	Bathrooms   *int          `json:"bathrooms"`
	BQ          *int          `json:"bq"`
	LandSize    *float64      `json:"landSize"`
	Images      []string      `json:"images"`
	Features    []string      `json:"features"`
	Variations  []Variation   `json:"variations"`
	Status      ListingStatus `json:"status"`
	Featured    bool          `json:"featured"`
}
