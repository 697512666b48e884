// Package overpass fetches amenity and road data from an Overpass API
// endpoint. Amenity lookups are cached in a bounded TTL cache so repeated
// assessments of nearby territories do not hammer the public servers.
package overpass

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	overpass "github.com/serjvanilla/go-overpass"
	"go.uber.org/zap"

	"github.com/SeytekM/SmartBuilderPro/internal/domain"
	"github.com/SeytekM/SmartBuilderPro/pkg/geo"
)

const (
	// DefaultEndpoint is the public Overpass API interpreter.
	DefaultEndpoint = "https://overpass-api.de/api/interpreter"

	// queryTimeout bounds each per-category Overpass call. A category that
	// times out is treated as empty.
	queryTimeout = 10 * time.Second

	// bboxHalfSide is the half-side of the fixed query box around the
	// territory centroid, in degrees (~1.1 km). The caller's radius hint
	// participates in the cache key but does not widen the box.
	bboxHalfSide = 0.01

	cacheSize = 1000
	cacheTTL  = time.Hour
)

// querier is the slice of the Overpass client the gateway needs. It exists
// so tests can substitute a canned client.
type querier interface {
	Query(query string) (overpass.Result, error)
}

// Gateway is the data access boundary to the Overpass API.
type Gateway struct {
	client querier
	cache  *expirable.LRU[string, domain.AmenitySet]
}

// NewGateway creates a gateway against the given Overpass endpoint. An empty
// endpoint selects DefaultEndpoint.
func NewGateway(endpoint string) *Gateway {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	client := overpass.NewWithSettings(endpoint, 1, &http.Client{Timeout: queryTimeout})
	return newGateway(&client, cacheTTL)
}

// newGateway wires an explicit querier and cache TTL; tests use it to inject
// fakes and short TTLs.
func newGateway(client querier, ttl time.Duration) *Gateway {
	return &Gateway{
		client: client,
		cache:  expirable.NewLRU[string, domain.AmenitySet](cacheSize, nil, ttl),
	}
}

// FetchAmenities queries every known amenity category as nodes within the
// fixed bounding box around center. Each category is queried independently: a
// failed query yields an empty list for that category and an entry in the
// set's Failures, never an aborted call. The whole set is cached by
// (lat, lon, radius) for the cache TTL.
//
// An error is returned only when every category query failed, in which case
// the set carries no signal and nothing is cached.
func (g *Gateway) FetchAmenities(ctx context.Context, center geo.Point, radiusMeters int) (domain.AmenitySet, error) {
	key := fmt.Sprintf("amenities_%v_%v_%d", center.Lat, center.Lon, radiusMeters)
	if cached, ok := g.cache.Get(key); ok {
		return cached, nil
	}

	bbox := fmt.Sprintf("%v,%v,%v,%v",
		center.Lat-bboxHalfSide, center.Lon-bboxHalfSide,
		center.Lat+bboxHalfSide, center.Lon+bboxHalfSide)

	set := domain.NewAmenitySet()
	for _, category := range domain.Categories {
		if err := ctx.Err(); err != nil {
			return set, fmt.Errorf("overpass: amenity fetch canceled: %w", err)
		}

		query := fmt.Sprintf("[out:json];node[\"amenity\"=%q](%s);out body;", category, bbox)
		result, err := g.client.Query(query)
		if err != nil {
			set.Failures[category] = err
			zap.L().Debug("overpass amenity query failed",
				zap.String("category", category), zap.Error(err))
			continue
		}
		set.ByCategory[category] = nodesToAmenities(result.Nodes)
	}

	if set.AllFailed() {
		return set, fmt.Errorf("overpass: all %d amenity queries failed", len(domain.Categories))
	}

	g.cache.Add(key, set)
	return set, nil
}

// FetchRoads queries all way-type elements tagged highway within the
// bounding box of the ring. On failure it returns an empty slice: zero
// roads, not "unknown".
func (g *Gateway) FetchRoads(ctx context.Context, ring []geo.Point) []domain.Road {
	if err := ctx.Err(); err != nil {
		return []domain.Road{}
	}

	minLat, minLon, maxLat, maxLon := geo.BoundingBox(ring)
	query := fmt.Sprintf("[out:json];way[\"highway\"](%v,%v,%v,%v);out body;",
		minLat, minLon, maxLat, maxLon)

	result, err := g.client.Query(query)
	if err != nil {
		zap.L().Debug("overpass road query failed", zap.Error(err))
		return []domain.Road{}
	}

	roads := make([]domain.Road, 0, len(result.Ways))
	for _, way := range result.Ways {
		if way == nil {
			continue
		}
		roads = append(roads, domain.Road{ID: way.ID, Tags: way.Tags})
	}
	sort.Slice(roads, func(i, j int) bool { return roads[i].ID < roads[j].ID })
	return roads
}

// CacheLen reports the number of cached amenity sets.
func (g *Gateway) CacheLen() int {
	return g.cache.Len()
}

// nodesToAmenities converts Overpass nodes to amenity records, ordered by ID
// for determinism.
func nodesToAmenities(nodes map[int64]*overpass.Node) []domain.Amenity {
	amenities := make([]domain.Amenity, 0, len(nodes))
	for _, node := range nodes {
		if node == nil {
			continue
		}
		amenities = append(amenities, domain.Amenity{
			ID:   node.ID,
			Lat:  node.Lat,
			Lon:  node.Lon,
			Tags: node.Tags,
		})
	}
	sort.Slice(amenities, func(i, j int) bool { return amenities[i].ID < amenities[j].ID })
	return amenities
}
