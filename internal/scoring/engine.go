// Package scoring implements the livability scoring engine: four pure
// sub-scorers over amenity and road data, an overall aggregator and a
// recommendation generator. Every threshold lives in Config so backends and
// tests can tune them without touching the formulas.
package scoring

import (
	"github.com/SeytekM/SmartBuilderPro/internal/domain"
	"github.com/SeytekM/SmartBuilderPro/pkg/geo"
	"github.com/SeytekM/SmartBuilderPro/pkg/utils"
)

// Engine evaluates a territory against a scoring configuration. All methods
// are pure functions of their inputs and return scores clamped to [0, 100].
type Engine struct {
	cfg Config
}

// NewEngine creates an engine with the given tables.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Safety scores emergency-service coverage around the centroid. Each rule is
// evaluated independently; a category with no amenities contributes nothing.
func (e *Engine) Safety(centroid geo.Point, amenities domain.AmenitySet) float64 {
	score := e.cfg.Safety.Base

	for _, rule := range e.cfg.Safety.Rules {
		dist, ok := geo.ClosestDistance(centroid, amenities.Points(rule.Category))
		if !ok {
			continue
		}
		switch {
		case dist < rule.Near:
			score += rule.NearPts
		case dist < rule.Far:
			score += rule.FarPts
		}
	}

	return utils.Clamp(score, 0, 100)
}

// Efficiency scores the road network and transport/commerce infrastructure.
// A zero or negative area yields a road density of zero rather than a
// division by zero.
func (e *Engine) Efficiency(roadCount int, areaSqm float64, amenities domain.AmenitySet) float64 {
	cfg := e.cfg.Efficiency
	score := cfg.Base

	var density float64
	if areaSqm > 0 {
		density = float64(roadCount) / (areaSqm / 1e6)
	}
	score += firstTier(cfg.DensityTiers, density)

	if amenities.Count("bus_station") > 0 {
		score += cfg.BusStationBonus
	}

	score += firstTier(cfg.ParkingTiers, float64(amenities.Count("parking")))

	var commerce int
	for _, c := range cfg.CommerceCategories {
		commerce += amenities.Count(c)
	}
	score += firstTier(cfg.CommerceTiers, float64(commerce))

	return utils.Clamp(score, 0, 100)
}

// Accessibility scores proximity to everyday services. A service within its
// threshold earns full points, within twice the threshold half points.
func (e *Engine) Accessibility(centroid geo.Point, amenities domain.AmenitySet) float64 {
	score := e.cfg.Accessibility.Base

	for _, svc := range e.cfg.Accessibility.Services {
		dist, ok := geo.ClosestDistance(centroid, amenities.Points(svc.Category))
		if !ok {
			continue
		}
		switch {
		case dist < svc.Threshold:
			score += svc.Points
		case dist < svc.Threshold*2:
			score += svc.Points / 2
		}
	}

	return utils.Clamp(score, 0, 100)
}

// Environmental scores green-space availability from park and playground
// counts.
func (e *Engine) Environmental(amenities domain.AmenitySet) float64 {
	cfg := e.cfg.Environmental
	score := cfg.Base

	var green int
	for _, c := range cfg.GreenCategories {
		green += amenities.Count(c)
	}
	score += firstTier(cfg.GreenTiers, float64(green))

	return utils.Clamp(score, 0, 100)
}

// Overall is the unweighted arithmetic mean of the four sub-scores. Callers
// must pass the unrounded sub-scores; rounding happens once, on the result.
func (e *Engine) Overall(safety, efficiency, accessibility, environmental float64) float64 {
	return (safety + efficiency + accessibility + environmental) / 4
}

// firstTier returns the bonus of the first tier whose Min the value strictly
// exceeds, or zero when no tier matches.
func firstTier(tiers []Tier, value float64) float64 {
	for _, t := range tiers {
		if value > t.Min {
			return t.Bonus
		}
	}
	return 0
}
