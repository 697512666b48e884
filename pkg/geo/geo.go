// Package geo provides the latitude/longitude math used by territory
// assessment: great-circle distances, ring areas and centroids.
package geo

import (
	"math"
)

const (
	// EarthRadiusMeters is the spherical-Earth radius used by Distance.
	EarthRadiusMeters = 6371000.0

	// MetersPerDegree is the linear scale applied per axis when converting
	// planar degree-based areas to square meters.
	MetersPerDegree = 111320.0
)

// Point is a geographic coordinate in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Distance returns the great-circle distance between a and b in meters,
// using the haversine half-angle formulation.
func Distance(a, b Point) float64 {
	phi1 := a.Lat * math.Pi / 180
	phi2 := b.Lat * math.Pi / 180
	deltaPhi := (b.Lat - a.Lat) * math.Pi / 180
	deltaLambda := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*
			math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

// ClosestDistance returns the minimum distance in meters from origin to any
// of the candidates. The second return value is false when candidates is
// empty, which is distinct from a real zero distance.
func ClosestDistance(origin Point, candidates []Point) (float64, bool) {
	if len(candidates) == 0 {
		return 0, false
	}

	minDist := Distance(origin, candidates[0])
	for _, c := range candidates[1:] {
		if d := Distance(origin, c); d < minDist {
			minDist = d
		}
	}
	return minDist, true
}

// RingArea approximates the area of a polygon ring in square meters.
//
// The ring is treated as planar: the shoelace formula yields an area in
// square degrees, which is rescaled by MetersPerDegree on each axis. This
// flat-Earth approximation is only valid for small polygons near
// mid-latitudes; it is a documented limitation of the assessment model, not
// something callers should correct for.
func RingArea(ring []Point) float64 {
	ring = dropClosingPoint(ring)
	if len(ring) < 3 {
		return 0
	}

	var sum float64
	for i := range ring {
		j := (i + 1) % len(ring)
		sum += ring[i].Lon*ring[j].Lat - ring[j].Lon*ring[i].Lat
	}

	return math.Abs(sum/2) * MetersPerDegree * MetersPerDegree
}

// Centroid returns the geometric centroid of a polygon ring using the
// standard area-weighted polygon centroid formula. Degenerate rings with
// (near) zero area fall back to the mean of the vertices.
func Centroid(ring []Point) Point {
	ring = dropClosingPoint(ring)
	if len(ring) == 0 {
		return Point{}
	}

	var cx, cy, signedArea float64
	for i := range ring {
		j := (i + 1) % len(ring)
		cross := ring[i].Lon*ring[j].Lat - ring[j].Lon*ring[i].Lat
		signedArea += cross
		cx += (ring[i].Lon + ring[j].Lon) * cross
		cy += (ring[i].Lat + ring[j].Lat) * cross
	}
	signedArea /= 2

	if math.Abs(signedArea) < 1e-12 {
		return vertexMean(ring)
	}

	return Point{
		Lat: cy / (6 * signedArea),
		Lon: cx / (6 * signedArea),
	}
}

// BoundingBox returns the axis-aligned bounds of the ring as
// (minLat, minLon, maxLat, maxLon).
func BoundingBox(ring []Point) (minLat, minLon, maxLat, maxLon float64) {
	if len(ring) == 0 {
		return 0, 0, 0, 0
	}

	minLat, maxLat = ring[0].Lat, ring[0].Lat
	minLon, maxLon = ring[0].Lon, ring[0].Lon
	for _, p := range ring[1:] {
		minLat = math.Min(minLat, p.Lat)
		maxLat = math.Max(maxLat, p.Lat)
		minLon = math.Min(minLon, p.Lon)
		maxLon = math.Max(maxLon, p.Lon)
	}
	return minLat, minLon, maxLat, maxLon
}

// dropClosingPoint trims the duplicated last vertex of a GeoJSON-style
// closed ring so vertex-based formulas do not count it twice.
func dropClosingPoint(ring []Point) []Point {
	if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
		return ring[:len(ring)-1]
	}
	return ring
}

func vertexMean(ring []Point) Point {
	var lat, lon float64
	for _, p := range ring {
		lat += p.Lat
		lon += p.Lon
	}
	n := float64(len(ring))
	return Point{Lat: lat / n, Lon: lon / n}
}
