package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SeytekM/SmartBuilderPro/internal/domain"
	"github.com/SeytekM/SmartBuilderPro/pkg/geo"
)

// TerritoryService creates and reads territories. Creation triggers a
// best-effort assessment: a failed assessment is logged and dropped, but the
// territory itself is always persisted.
type TerritoryService struct {
	projects    domain.ProjectStore
	territories domain.TerritoryStore
	assessor    *AssessmentService
}

// NewTerritoryService creates a new territory service.
func NewTerritoryService(
	projects domain.ProjectStore,
	territories domain.TerritoryStore,
	assessor *AssessmentService,
) *TerritoryService {
	return &TerritoryService{
		projects:    projects,
		territories: territories,
		assessor:    assessor,
	}
}

// Create validates the request, derives the territory geometry, persists the
// territory and then attempts an assessment. Territory creation and
// assessment are decoupled: assessment failure is non-fatal and not retried.
func (s *TerritoryService) Create(ctx context.Context, req domain.TerritoryCreate) (domain.Territory, error) {
	project, err := s.projects.Get(ctx, req.ProjectID)
	if err != nil {
		return domain.Territory{}, err
	}

	ring, err := req.Ring()
	if err != nil {
		return domain.Territory{}, err
	}

	territory := domain.Territory{
		ID:          uuid.NewString(),
		Name:        req.Name,
		ProjectID:   req.ProjectID,
		Coordinates: req.Coordinates,
		AreaSqm:     geo.RingArea(ring),
		Centroid:    geo.Centroid(ring),
		CreatedAt:   time.Now(),
	}

	if err := s.territories.Put(ctx, territory); err != nil {
		return domain.Territory{}, fmt.Errorf("territory: failed to store: %w", err)
	}

	project.TerritoriesCount++
	if err := s.projects.Put(ctx, project); err != nil {
		zap.L().Warn("failed to update project territory count",
			zap.String("project_id", project.ID), zap.Error(err))
	}

	if _, err := s.assessor.Assess(ctx, territory); err != nil {
		zap.L().Error("territory assessment failed",
			zap.String("territory_id", territory.ID), zap.Error(err))
	}

	return territory, nil
}

// Get returns a territory by ID.
func (s *TerritoryService) Get(ctx context.Context, id string) (domain.Territory, error) {
	return s.territories.Get(ctx, id)
}

// Count returns the number of territories.
func (s *TerritoryService) Count(ctx context.Context) (int, error) {
	return s.territories.Count(ctx)
}
