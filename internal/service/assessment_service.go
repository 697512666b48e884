package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeytekM/SmartBuilderPro/internal/domain"
	"github.com/SeytekM/SmartBuilderPro/internal/scoring"
	"github.com/SeytekM/SmartBuilderPro/pkg/utils"
)

// amenityRadiusMeters is the radius hint passed to the gateway when fetching
// amenities around a territory centroid.
const amenityRadiusMeters = 1000

// AssessmentService runs the assessment pipeline for a territory: fetch
// geodata, score, store. Assessment is a best-effort side effect of territory
// creation; callers treat its errors as non-fatal.
type AssessmentService struct {
	gateway     GeodataGateway
	assessments domain.AssessmentStore
	engine      *scoring.Engine
}

// NewAssessmentService creates a new assessment service.
func NewAssessmentService(
	gateway GeodataGateway,
	assessments domain.AssessmentStore,
	engine *scoring.Engine,
) *AssessmentService {
	return &AssessmentService{
		gateway:     gateway,
		assessments: assessments,
		engine:      engine,
	}
}

// Assess fetches amenities and roads for the territory, computes the four
// sub-scores and the overall score, and stores the resulting assessment
// keyed by territory ID. On any error no assessment is stored: a later
// lookup reports not-found rather than a zeroed record.
//
// Sub-scores are rounded to two decimals independently; the overall score is
// the mean of the unrounded sub-scores, rounded once at the end.
func (s *AssessmentService) Assess(ctx context.Context, territory domain.Territory) (domain.Assessment, error) {
	ring, err := domain.OuterRing(territory.Coordinates)
	if err != nil {
		return domain.Assessment{}, fmt.Errorf("assessment: invalid territory geometry: %w", err)
	}

	amenities, err := s.gateway.FetchAmenities(ctx, territory.Centroid, amenityRadiusMeters)
	if err != nil {
		return domain.Assessment{}, fmt.Errorf("assessment: failed to fetch amenities: %w", err)
	}
	roads := s.gateway.FetchRoads(ctx, ring)

	safety := s.engine.Safety(territory.Centroid, amenities)
	efficiency := s.engine.Efficiency(len(roads), territory.AreaSqm, amenities)
	accessibility := s.engine.Accessibility(territory.Centroid, amenities)
	environmental := s.engine.Environmental(amenities)
	overall := s.engine.Overall(safety, efficiency, accessibility, environmental)

	counts := make(map[string]int, len(domain.Categories))
	for _, category := range domain.Categories {
		counts[category] = amenities.Count(category)
	}

	assessment := domain.Assessment{
		ID:                 uuid.NewString(),
		TerritoryID:        territory.ID,
		SafetyScore:        utils.RoundTo(safety, 2),
		EfficiencyScore:    utils.RoundTo(efficiency, 2),
		AccessibilityScore: utils.RoundTo(accessibility, 2),
		EnvironmentalScore: utils.RoundTo(environmental, 2),
		OverallScore:       utils.RoundTo(overall, 2),
		Recommendations:    s.engine.Recommendations(safety, efficiency, accessibility, environmental, amenities),
		Metrics: domain.Metrics{
			AmenitiesCount: counts,
			RoadsCount:     len(roads),
		},
		CreatedAt: time.Now(),
	}

	if err := s.assessments.Put(ctx, assessment); err != nil {
		return domain.Assessment{}, fmt.Errorf("assessment: failed to store: %w", err)
	}
	return assessment, nil
}

// GetByTerritory returns the stored assessment for a territory.
func (s *AssessmentService) GetByTerritory(ctx context.Context, territoryID string) (domain.Assessment, error) {
	return s.assessments.GetByTerritory(ctx, territoryID)
}

// Count returns the number of stored assessments.
func (s *AssessmentService) Count(ctx context.Context) (int, error) {
	return s.assessments.Count(ctx)
}

// CacheLen reports the gateway cache occupancy.
func (s *AssessmentService) CacheLen() int {
	return s.gateway.CacheLen()
}
