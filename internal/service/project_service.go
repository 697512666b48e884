package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SeytekM/SmartBuilderPro/internal/domain"
)

// ProjectService manages projects and their cascade deletion.
type ProjectService struct {
	projects    domain.ProjectStore
	territories domain.TerritoryStore
	assessments domain.AssessmentStore
}

// NewProjectService creates a new project service.
func NewProjectService(
	projects domain.ProjectStore,
	territories domain.TerritoryStore,
	assessments domain.AssessmentStore,
) *ProjectService {
	return &ProjectService{
		projects:    projects,
		territories: territories,
		assessments: assessments,
	}
}

// Create validates and stores a new project.
func (s *ProjectService) Create(ctx context.Context, req domain.ProjectCreate) (domain.Project, error) {
	if err := req.Validate(); err != nil {
		return domain.Project{}, err
	}

	project := domain.Project{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		CreatedAt:   time.Now(),
	}

	if err := s.projects.Put(ctx, project); err != nil {
		return domain.Project{}, fmt.Errorf("project: failed to store: %w", err)
	}
	return project, nil
}

// Get returns a project by ID.
func (s *ProjectService) Get(ctx context.Context, id string) (domain.Project, error) {
	return s.projects.Get(ctx, id)
}

// List returns all projects.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.projects.List(ctx)
}

// Delete removes a project together with its territories and their
// assessments. The removals are independent and not atomic; a crash
// mid-delete may leave orphans.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if _, err := s.projects.Get(ctx, id); err != nil {
		return err
	}

	territories, err := s.territories.ListByProject(ctx, id)
	if err != nil {
		return fmt.Errorf("project: failed to list territories: %w", err)
	}

	for _, t := range territories {
		if err := s.assessments.DeleteByTerritory(ctx, t.ID); err != nil {
			zap.L().Warn("failed to delete assessment during cascade",
				zap.String("territory_id", t.ID), zap.Error(err))
		}
		if err := s.territories.Delete(ctx, t.ID); err != nil {
			zap.L().Warn("failed to delete territory during cascade",
				zap.String("territory_id", t.ID), zap.Error(err))
		}
	}

	return s.projects.Delete(ctx, id)
}

// Count returns the number of projects.
func (s *ProjectService) Count(ctx context.Context) (int, error) {
	return s.projects.Count(ctx)
}
