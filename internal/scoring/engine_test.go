package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SeytekM/SmartBuilderPro/internal/domain"
	"github.com/SeytekM/SmartBuilderPro/pkg/geo"
)

var origin = geo.Point{Lat: 0, Lon: 0}

// at returns a point d meters due north of the origin.
func at(d float64) geo.Point {
	return geo.Point{Lat: d / geo.EarthRadiusMeters * 180 / math.Pi}
}

// setWith builds an amenity set with amenities of the given categories at
// the given points.
func setWith(categories map[string][]geo.Point) domain.AmenitySet {
	set := domain.NewAmenitySet()
	for category, points := range categories {
		for i, p := range points {
			set.ByCategory[category] = append(set.ByCategory[category], domain.Amenity{
				ID:  int64(i + 1),
				Lat: p.Lat,
				Lon: p.Lon,
			})
		}
	}
	return set
}

// repeat returns n copies of the same nearby point.
func repeat(n int) []geo.Point {
	points := make([]geo.Point, n)
	for i := range points {
		points[i] = at(100)
	}
	return points
}

func defaultEngine() *Engine {
	return NewEngine(DefaultConfig())
}

func TestSafety(t *testing.T) {
	e := defaultEngine()

	tests := []struct {
		name      string
		amenities map[string][]geo.Point
		want      float64
	}{
		{"no amenities", nil, 50},
		{"police near", map[string][]geo.Point{"police": {at(1500)}}, 70},
		{"police far", map[string][]geo.Point{"police": {at(3000)}}, 60},
		{"police out of range", map[string][]geo.Point{"police": {at(6000)}}, 50},
		{"fire station near", map[string][]geo.Point{"fire_station": {at(2500)}}, 65},
		{"fire station far", map[string][]geo.Point{"fire_station": {at(5000)}}, 57},
		{"hospital near", map[string][]geo.Point{"hospital": {at(2000)}}, 65},
		{"hospital far", map[string][]geo.Point{"hospital": {at(4000)}}, 60},
		{
			"categories evaluated independently",
			map[string][]geo.Point{"police": {at(1500)}, "hospital": {at(4000)}},
			80,
		},
		{
			"all near clamps to 100",
			map[string][]geo.Point{
				"police":       {at(100)},
				"fire_station": {at(100)},
				"hospital":     {at(100)},
			},
			100,
		},
		{
			"closest amenity wins",
			map[string][]geo.Point{"police": {at(6000), at(1500), at(4000)}},
			70,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Safety(origin, setWith(tt.amenities)))
		})
	}
}

func TestSafety_BoundaryIsExclusive(t *testing.T) {
	// An amenity at exactly the near threshold must not earn the near
	// bonus. The threshold is set to the exact distance the scorer will
	// compute, so the strict < comparison is what decides.
	p := at(2000)
	exact := geo.Distance(origin, p)

	cfg := DefaultConfig()
	cfg.Safety.Rules = []ProximityRule{
		{Category: "police", Near: exact, NearPts: 20, Far: 5000, FarPts: 10},
	}
	e := NewEngine(cfg)

	score := e.Safety(origin, setWith(map[string][]geo.Point{"police": {p}}))
	assert.Equal(t, 60.0, score, "exactly-at-threshold amenity must fall through to the far bonus")
}

func TestEfficiency_RoadDensity(t *testing.T) {
	e := defaultEngine()
	empty := domain.NewAmenitySet()
	const oneSqKm = 1e6

	tests := []struct {
		name  string
		roads int
		area  float64
		want  float64
	}{
		{"no roads", 0, oneSqKm, 40},
		{"density 2 misses strict threshold", 2, oneSqKm, 40},
		{"density 3", 3, oneSqKm, 50},
		{"density 6", 6, oneSqKm, 55},
		{"density 11", 11, oneSqKm, 60},
		{"zero area treated as zero density", 100, 0, 40},
		{"negative area treated as zero density", 100, -5, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Efficiency(tt.roads, tt.area, empty))
		})
	}
}

func TestEfficiency_Amenities(t *testing.T) {
	e := defaultEngine()
	const oneSqKm = 1e6

	tests := []struct {
		name      string
		amenities map[string][]geo.Point
		want      float64
	}{
		{"bus station", map[string][]geo.Point{"bus_station": repeat(1)}, 55},
		{"one parking", map[string][]geo.Point{"parking": repeat(1)}, 45},
		{"three parkings", map[string][]geo.Point{"parking": repeat(3)}, 50},
		{"commerce at six", map[string][]geo.Point{
			"restaurant": repeat(2), "cafe": repeat(2), "bank": repeat(2),
		}, 50},
		{"commerce at eleven", map[string][]geo.Point{
			"restaurant": repeat(5), "cafe": repeat(4), "bank": repeat(2),
		}, 55},
		{"commerce at five earns nothing", map[string][]geo.Point{
			"restaurant": repeat(5),
		}, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Efficiency(0, oneSqKm, setWith(tt.amenities)))
		})
	}
}

func TestEfficiency_ClampsAt100(t *testing.T) {
	e := defaultEngine()
	set := setWith(map[string][]geo.Point{
		"bus_station": repeat(10),
		"parking":     repeat(50),
		"restaurant":  repeat(100),
		"cafe":        repeat(100),
		"bank":        repeat(100),
	})
	score := e.Efficiency(1000000, 1, set)
	assert.Equal(t, 100.0, score)
}

func TestAccessibility(t *testing.T) {
	e := defaultEngine()

	tests := []struct {
		name      string
		amenities map[string][]geo.Point
		want      float64
	}{
		{"no services", nil, 30},
		{"school within threshold", map[string][]geo.Point{"school": {at(500)}}, 50},
		{"school within double threshold earns half", map[string][]geo.Point{"school": {at(1500)}}, 40},
		{"pharmacy half points", map[string][]geo.Point{"pharmacy": {at(600)}}, 35},
		{"post office half points are fractional", map[string][]geo.Point{"post_office": {at(3000)}}, 32.5},
		{"hospital out of range", map[string][]geo.Point{"hospital": {at(7000)}}, 30},
		{
			"all services near clamp below 100",
			map[string][]geo.Point{
				"school":      {at(100)},
				"hospital":    {at(100)},
				"pharmacy":    {at(100)},
				"park":        {at(100)},
				"post_office": {at(100)},
				"library":     {at(100)},
			},
			95,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Accessibility(origin, setWith(tt.amenities)))
		})
	}
}

func TestEnvironmental(t *testing.T) {
	e := defaultEngine()

	tests := []struct {
		name      string
		amenities map[string][]geo.Point
		want      float64
	}{
		{"no green space", nil, 50},
		{"one park", map[string][]geo.Point{"park": repeat(1)}, 60},
		{"three green objects", map[string][]geo.Point{"park": repeat(2), "playground": repeat(1)}, 65},
		{"six green objects", map[string][]geo.Point{"park": repeat(3), "playground": repeat(3)}, 75},
		{"pathological count still capped", map[string][]geo.Point{"park": repeat(10000)}, 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Environmental(setWith(tt.amenities)))
		})
	}
}

func TestOverall(t *testing.T) {
	e := defaultEngine()

	assert.Equal(t, 42.5, e.Overall(50, 40, 30, 50))

	// Overall is the plain mean of the unrounded inputs; rounding is the
	// caller's single final step.
	assert.InDelta(t, 44.1725, e.Overall(55.567, 40.123, 30.999, 50.001), 1e-9)
}

func TestSubScores_EmptySetReferenceExample(t *testing.T) {
	e := defaultEngine()
	empty := domain.NewAmenitySet()

	safety := e.Safety(origin, empty)
	efficiency := e.Efficiency(0, 1e6, empty)
	accessibility := e.Accessibility(origin, empty)
	environmental := e.Environmental(empty)

	assert.Equal(t, 50.0, safety)
	assert.Equal(t, 40.0, efficiency)
	assert.Equal(t, 30.0, accessibility)
	assert.Equal(t, 50.0, environmental)
	assert.Equal(t, 42.5, e.Overall(safety, efficiency, accessibility, environmental))
}

func TestSubScores_AlwaysWithinRange(t *testing.T) {
	e := defaultEngine()

	huge := map[string][]geo.Point{}
	for _, category := range domain.Categories {
		huge[category] = repeat(500)
	}
	set := setWith(huge)

	for _, score := range []float64{
		e.Safety(origin, set),
		e.Efficiency(1<<30, 0.001, set),
		e.Accessibility(origin, set),
		e.Environmental(set),
	} {
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}
}
