package models

// District is a named geographic submarket with reference coordinates.
// The name doubles as the advisory link target from listings; nothing
// infers district membership from coordinates.
type District struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}
