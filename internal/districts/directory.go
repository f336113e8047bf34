// Package districts holds the static directory of Abuja submarkets the
// site sells in. Loaded once at startup; listings reference districts
// by name only.
package districts

import "sabi-consults/internal/models"

// Directory is an immutable, ordered set of districts with exact-name
// lookup.
type Directory struct {
	ordered []models.District
	byName  map[string]models.District
}

// abujaDistricts is the fixed display order used in every selection
// control on the site.
var abujaDistricts = []models.District{
	{ID: "maitama", Name: "Maitama", Description: "Diplomatic and high-end residential area", Latitude: 9.0820, Longitude: 7.4878},
	{ID: "asokoro", Name: "Asokoro", Description: "Exclusive residential district near Aso Rock", Latitude: 9.0406, Longitude: 7.5149},
	{ID: "wuse2", Name: "Wuse II", Description: "Vibrant commercial and residential hub", Latitude: 9.0677, Longitude: 7.4626},
	{ID: "jabi", Name: "Jabi", Description: "Modern district with Jabi Lake", Latitude: 9.0736, Longitude: 7.4237},
	{ID: "gwarinpa", Name: "Gwarinpa", Description: "Africa's largest housing estate", Latitude: 9.1019, Longitude: 7.3925},
	{ID: "katampe", Name: "Katampe", Description: "Serene hillside residential area", Latitude: 9.0892, Longitude: 7.4456},
	{ID: "lifecamp", Name: "Life Camp", Description: "Growing residential and commercial zone", Latitude: 9.0831, Longitude: 7.3847},
	{ID: "utako", Name: "Utako", Description: "Central business and residential district", Latitude: 9.0582, Longitude: 7.4419},
}

// New builds the directory from the fixed district set.
func New() *Directory {
	byName := make(map[string]models.District, len(abujaDistricts))
	for _, d := range abujaDistricts {
		byName[d.Name] = d
	}
	return &Directory{
		ordered: abujaDistricts,
		byName:  byName,
	}
}

// All returns every district in display order.
func (d *Directory) All() []models.District {
	out := make([]models.District, len(d.ordered))
	copy(out, d.ordered)
	return out
}

// GetByName looks a district up by its exact display name.
func (d *Directory) GetByName(name string) (models.District, bool) {
	district, ok := d.byName[name]
	return district, ok
}

// DefaultCoordinates returns the district's reference coordinates, used
// as the geocode for an admin-entered listing that omits its own. The
// second return is false when the name is not in the directory.
func (d *Directory) DefaultCoordinates(name string) (lat, lng float64, ok bool) {
	district, found := d.byName[name]
	if !found {
		return 0, 0, false
	}
	return district.Latitude, district.Longitude, true
}
