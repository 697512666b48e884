// Package memory provides the default in-process store implementations.
// Entities live in plain maps guarded by RWMutexes; each key is written at
// most once per logical entity, so last-writer-wins races are acceptable.
package memory

import (
	"context"
	"sync"

	"github.com/SeytekM/SmartBuilderPro/internal/domain"
)

// ProjectStore implements domain.ProjectStore in memory.
type ProjectStore struct {
	mu       sync.RWMutex
	projects map[string]domain.Project
}

// NewProjectStore creates an empty project store.
func NewProjectStore() *ProjectStore {
	return &ProjectStore{projects: make(map[string]domain.Project)}
}

// Put stores or replaces a project.
func (s *ProjectStore) Put(ctx context.Context, p domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects[p.ID] = p
	return nil
}

// Get returns a project or domain.ErrNotFound.
func (s *ProjectStore) Get(ctx context.Context, id string) (domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.projects[id]
	if !ok {
		return domain.Project{}, domain.ErrNotFound
	}
	return p, nil
}

// List returns all projects.
func (s *ProjectStore) List(ctx context.Context) ([]domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, p)
	}
	return out, nil
}

// Delete removes a project, reporting domain.ErrNotFound when absent.
func (s *ProjectStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.projects, id)
	return nil
}

// Count returns the number of stored projects.
func (s *ProjectStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.projects), nil
}

// TerritoryStore implements domain.TerritoryStore in memory.
type TerritoryStore struct {
	mu          sync.RWMutex
	territories map[string]domain.Territory
}

// NewTerritoryStore creates an empty territory store.
func NewTerritoryStore() *TerritoryStore {
	return &TerritoryStore{territories: make(map[string]domain.Territory)}
}

// Put stores or replaces a territory.
func (s *TerritoryStore) Put(ctx context.Context, t domain.Territory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.territories[t.ID] = t
	return nil
}

// Get returns a territory or domain.ErrNotFound.
func (s *TerritoryStore) Get(ctx context.Context, id string) (domain.Territory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.territories[id]
	if !ok {
		return domain.Territory{}, domain.ErrNotFound
	}
	return t, nil
}

// ListByProject returns every territory belonging to the given project.
func (s *TerritoryStore) ListByProject(ctx context.Context, projectID string) ([]domain.Territory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Territory
	for _, t := range s.territories {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out, nil
}

// Delete removes a territory, reporting domain.ErrNotFound when absent.
func (s *TerritoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.territories[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.territories, id)
	return nil
}

// Count returns the number of stored territories.
func (s *TerritoryStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.territories), nil
}

// AssessmentStore implements domain.AssessmentStore in memory, keyed by
// territory ID.
type AssessmentStore struct {
	mu          sync.RWMutex
	assessments map[string]domain.Assessment
}

// NewAssessmentStore creates an empty assessment store.
func NewAssessmentStore() *AssessmentStore {
	return &AssessmentStore{assessments: make(map[string]domain.Assessment)}
}

// Put stores or replaces the assessment for a territory.
func (s *AssessmentStore) Put(ctx context.Context, a domain.Assessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assessments[a.TerritoryID] = a
	return nil
}

// GetByTerritory returns the assessment for a territory or
// domain.ErrNotFound. A territory whose assessment failed has no record
// here, not a zeroed one.
func (s *AssessmentStore) GetByTerritory(ctx context.Context, territoryID string) (domain.Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.assessments[territoryID]
	if !ok {
		return domain.Assessment{}, domain.ErrNotFound
	}
	return a, nil
}

// DeleteByTerritory removes the assessment for a territory. Deleting an
// absent assessment is not an error; cascade deletes hit territories that
// were never assessed.
func (s *AssessmentStore) DeleteByTerritory(ctx context.Context, territoryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.assessments, territoryID)
	return nil
}

// Count returns the number of stored assessments.
func (s *AssessmentStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.assessments), nil
}
