package service

import (
	"context"

	"github.com/SeytekM/SmartBuilderPro/internal/domain"
	"github.com/SeytekM/SmartBuilderPro/pkg/geo"
)

// GeodataGateway is the external collaborator supplying amenity and road
// collections. The Overpass implementation lives in repository/overpass;
// tests substitute stubs.
type GeodataGateway interface {
	// FetchAmenities returns amenities grouped by category around center.
	// Implementations must survive partial failure: a failed category maps
	// to an empty list, and an error is returned only when the whole fetch
	// produced no signal.
	FetchAmenities(ctx context.Context, center geo.Point, radiusMeters int) (domain.AmenitySet, error)

	// FetchRoads returns the highway-tagged ways within the ring's bounding
	// box, or an empty slice on failure.
	FetchRoads(ctx context.Context, ring []geo.Point) []domain.Road

	// CacheLen reports the gateway's cache occupancy, exposed by /stats.
	CacheLen() int
}
