package domain

import (
	"time"

	"github.com/SeytekM/SmartBuilderPro/pkg/geo"
)

// Territory is a user-drawn polygon under assessment. Coordinates keep the
// GeoJSON Polygon shape of the request: a list of rings of [lon, lat] pairs,
// of which only ring 0 is used for geometry. Holes are unsupported.
type Territory struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	ProjectID   string        `json:"project_id"`
	Coordinates [][][]float64 `json:"coordinates"`
	AreaSqm     float64       `json:"area_sqm"`
	Centroid    geo.Point     `json:"centroid"`
	CreatedAt   time.Time     `json:"created_at"`
}

// TerritoryCreate is the payload for creating a territory.
type TerritoryCreate struct {
	Name        string        `json:"name"`
	ProjectID   string        `json:"project_id"`
	Coordinates [][][]float64 `json:"coordinates"`
}

// Ring returns the outer ring of the payload polygon.
func (t TerritoryCreate) Ring() ([]geo.Point, error) {
	return OuterRing(t.Coordinates)
}

// OuterRing extracts ring 0 of a GeoJSON Polygon coordinate array as geo
// points, or ErrValidation when it is not a closed ring of at least four
// positions.
func OuterRing(coordinates [][][]float64) ([]geo.Point, error) {
	if len(coordinates) == 0 || len(coordinates[0]) < 4 {
		return nil, ErrValidation
	}

	outer := coordinates[0]
	ring := make([]geo.Point, 0, len(outer))
	for _, pair := range outer {
		if len(pair) < 2 {
			return nil, ErrValidation
		}
		// GeoJSON positions are [lon, lat].
		ring = append(ring, geo.Point{Lat: pair[1], Lon: pair[0]})
	}

	if ring[0] != ring[len(ring)-1] {
		return nil, ErrValidation
	}
	return ring, nil
}
