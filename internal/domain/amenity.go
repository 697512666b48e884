package domain

import "github.com/SeytekM/SmartBuilderPro/pkg/geo"

// Categories is the fixed list of OSM amenity categories considered by the
// assessment. Order matters for deterministic queries and reports.
var Categories = []string{
	"school", "hospital", "pharmacy", "police", "fire_station",
	"bus_station", "parking", "restaurant", "cafe", "bank",
	"post_office", "library", "park", "playground",
}

// Amenity is a single point-of-interest returned by the geodata gateway.
type Amenity struct {
	ID   int64             `json:"id"`
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags"`
}

// Road is a way-type element tagged as a highway. Only the count of roads
// matters for density scoring, so no geometry is carried.
type Road struct {
	ID   int64             `json:"id"`
	Tags map[string]string `json:"tags"`
}

// AmenitySet groups fetched amenities by category. Every known category is
// always present in ByCategory, mapped to an empty slice when nothing was
// found. Failures records categories whose query failed, so "no amenities
// found" can be distinguished from "query failed".
type AmenitySet struct {
	ByCategory map[string][]Amenity
	Failures   map[string]error
}

// NewAmenitySet returns a set with every known category mapped to an empty
// slice.
func NewAmenitySet() AmenitySet {
	byCat := make(map[string][]Amenity, len(Categories))
	for _, c := range Categories {
		byCat[c] = []Amenity{}
	}
	return AmenitySet{
		ByCategory: byCat,
		Failures:   make(map[string]error),
	}
}

// Count returns the number of amenities in the given category.
func (s AmenitySet) Count(category string) int {
	return len(s.ByCategory[category])
}

// Points returns the coordinates of all amenities in the given category.
func (s AmenitySet) Points(category string) []geo.Point {
	records := s.ByCategory[category]
	if len(records) == 0 {
		return nil
	}
	points := make([]geo.Point, len(records))
	for i, r := range records {
		points[i] = geo.Point{Lat: r.Lat, Lon: r.Lon}
	}
	return points
}

// AllFailed reports whether every category query failed. A set where all
// queries failed carries no signal and must not be scored.
func (s AmenitySet) AllFailed() bool {
	return len(s.Failures) >= len(Categories)
}
