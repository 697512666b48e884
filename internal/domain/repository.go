package domain

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a referenced project, territory or assessment
// does not exist. Handlers map it to a 404, distinct from internal errors.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned for malformed creation payloads.
var ErrValidation = errors.New("invalid input")

// ProjectStore persists projects. Implementations must be safe for
// concurrent use; last-writer-wins on Put is acceptable.
// This follows the Dependency Inversion Principle - domain defines the interface
type ProjectStore interface {
	Put(ctx context.Context, p Project) error
	Get(ctx context.Context, id string) (Project, error)
	List(ctx context.Context) ([]Project, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// TerritoryStore persists territories.
type TerritoryStore interface {
	Put(ctx context.Context, t Territory) error
	Get(ctx context.Context, id string) (Territory, error)
	ListByProject(ctx context.Context, projectID string) ([]Territory, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// AssessmentStore persists assessments keyed by territory ID.
type AssessmentStore interface {
	Put(ctx context.Context, a Assessment) error
	GetByTerritory(ctx context.Context, territoryID string) (Assessment, error)
	DeleteByTerritory(ctx context.Context, territoryID string) error
	Count(ctx context.Context) (int, error)
}
