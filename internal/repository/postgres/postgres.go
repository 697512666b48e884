// Package postgres provides pgx-backed implementations of the domain store
// interfaces. It is an optional backend: the server selects it when a
// database URL is configured and reachable, and falls back to the in-memory
// stores otherwise.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SeytekM/SmartBuilderPro/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS projects (
	id                TEXT PRIMARY KEY,
	name              TEXT NOT NULL,
	description       TEXT NOT NULL DEFAULT '',
	location          TEXT NOT NULL DEFAULT '',
	created_at        TIMESTAMPTZ NOT NULL,
	territories_count INT NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS territories (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	project_id   TEXT NOT NULL,
	coordinates  JSONB NOT NULL,
	area_sqm     DOUBLE PRECISION NOT NULL,
	centroid_lat DOUBLE PRECISION NOT NULL,
	centroid_lon DOUBLE PRECISION NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS territories_project_id_idx ON territories (project_id);

CREATE TABLE IF NOT EXISTS assessments (
	territory_id        TEXT PRIMARY KEY,
	id                  TEXT NOT NULL,
	safety_score        DOUBLE PRECISION NOT NULL,
	efficiency_score    DOUBLE PRECISION NOT NULL,
	accessibility_score DOUBLE PRECISION NOT NULL,
	environmental_score DOUBLE PRECISION NOT NULL,
	overall_score       DOUBLE PRECISION NOT NULL,
	recommendations     TEXT NOT NULL,
	metrics             JSONB NOT NULL,
	created_at          TIMESTAMPTZ NOT NULL
);
`

// EnsureSchema creates the tables if they do not exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("postgres: failed to ensure schema: %w", err)
	}
	return nil
}

// ProjectStore implements domain.ProjectStore on PostgreSQL.
type ProjectStore struct {
	pool *pgxpool.Pool
}

// NewProjectStore creates a PostgreSQL project store.
func NewProjectStore(pool *pgxpool.Pool) *ProjectStore {
	return &ProjectStore{pool: pool}
}

// Put upserts a project.
func (s *ProjectStore) Put(ctx context.Context, p domain.Project) error {
	query := `
		INSERT INTO projects (id, name, description, location, created_at, territories_count)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			location = EXCLUDED.location,
			territories_count = EXCLUDED.territories_count
	`

	_, err := s.pool.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.Location, p.CreatedAt, p.TerritoriesCount,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to save project: %w", err)
	}
	return nil
}

// Get returns a project or domain.ErrNotFound.
func (s *ProjectStore) Get(ctx context.Context, id string) (domain.Project, error) {
	query := `
		SELECT id, name, description, location, created_at, territories_count
		FROM projects WHERE id = $1
	`

	var p domain.Project
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Location, &p.CreatedAt, &p.TerritoriesCount,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Project{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Project{}, fmt.Errorf("postgres: failed to query project: %w", err)
	}
	return p, nil
}

// List returns all projects.
func (s *ProjectStore) List(ctx context.Context) ([]domain.Project, error) {
	query := `
		SELECT id, name, description, location, created_at, territories_count
		FROM projects ORDER BY created_at
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list projects: %w", err)
	}
	defer rows.Close()

	var results []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Location, &p.CreatedAt, &p.TerritoriesCount); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan project row: %w", err)
		}
		results = append(results, p)
	}
	return results, nil
}

// Delete removes a project, reporting domain.ErrNotFound when absent.
func (s *ProjectStore) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Count returns the number of projects.
func (s *ProjectStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM projects`).Scan(&count); err != nil {
		return 0, fmt.Errorf("postgres: failed to count projects: %w", err)
	}
	return count, nil
}

// TerritoryStore implements domain.TerritoryStore on PostgreSQL.
type TerritoryStore struct {
	pool *pgxpool.Pool
}

// NewTerritoryStore creates a PostgreSQL territory store.
func NewTerritoryStore(pool *pgxpool.Pool) *TerritoryStore {
	return &TerritoryStore{pool: pool}
}

// Put upserts a territory. Coordinates are stored as JSONB.
func (s *TerritoryStore) Put(ctx context.Context, t domain.Territory) error {
	coords, err := json.Marshal(t.Coordinates)
	if err != nil {
		return fmt.Errorf("postgres: failed to marshal coordinates: %w", err)
	}

	query := `
		INSERT INTO territories (id, name, project_id, coordinates, area_sqm, centroid_lat, centroid_lon, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			coordinates = EXCLUDED.coordinates,
			area_sqm = EXCLUDED.area_sqm,
			centroid_lat = EXCLUDED.centroid_lat,
			centroid_lon = EXCLUDED.centroid_lon
	`

	_, err = s.pool.Exec(ctx, query,
		t.ID, t.Name, t.ProjectID, coords, t.AreaSqm, t.Centroid.Lat, t.Centroid.Lon, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to save territory: %w", err)
	}
	return nil
}

// Get returns a territory or domain.ErrNotFound.
func (s *TerritoryStore) Get(ctx context.Context, id string) (domain.Territory, error) {
	query := `
		SELECT id, name, project_id, coordinates, area_sqm, centroid_lat, centroid_lon, created_at
		FROM territories WHERE id = $1
	`
	return s.scanTerritory(s.pool.QueryRow(ctx, query, id))
}

// ListByProject returns every territory belonging to the given project.
func (s *TerritoryStore) ListByProject(ctx context.Context, projectID string) ([]domain.Territory, error) {
	query := `
		SELECT id, name, project_id, coordinates, area_sqm, centroid_lat, centroid_lon, created_at
		FROM territories WHERE project_id = $1 ORDER BY created_at
	`

	rows, err := s.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list territories: %w", err)
	}
	defer rows.Close()

	var results []domain.Territory
	for rows.Next() {
		t, err := s.scanTerritory(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, t)
	}
	return results, nil
}

// Delete removes a territory, reporting domain.ErrNotFound when absent.
func (s *TerritoryStore) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM territories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete territory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Count returns the number of territories.
func (s *TerritoryStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM territories`).Scan(&count); err != nil {
		return 0, fmt.Errorf("postgres: failed to count territories: %w", err)
	}
	return count, nil
}

func (s *TerritoryStore) scanTerritory(row pgx.Row) (domain.Territory, error) {
	var t domain.Territory
	var coords []byte
	err := row.Scan(
		&t.ID, &t.Name, &t.ProjectID, &coords, &t.AreaSqm,
		&t.Centroid.Lat, &t.Centroid.Lon, &t.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Territory{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Territory{}, fmt.Errorf("postgres: failed to scan territory row: %w", err)
	}
	if err := json.Unmarshal(coords, &t.Coordinates); err != nil {
		return domain.Territory{}, fmt.Errorf("postgres: failed to unmarshal coordinates: %w", err)
	}
	return t, nil
}

// AssessmentStore implements domain.AssessmentStore on PostgreSQL.
type AssessmentStore struct {
	pool *pgxpool.Pool
}

// NewAssessmentStore creates a PostgreSQL assessment store.
func NewAssessmentStore(pool *pgxpool.Pool) *AssessmentStore {
	return &AssessmentStore{pool: pool}
}

// Put upserts the assessment for a territory. Metrics are stored as JSONB.
func (s *AssessmentStore) Put(ctx context.Context, a domain.Assessment) error {
	metrics, err := json.Marshal(a.Metrics)
	if err != nil {
		return fmt.Errorf("postgres: failed to marshal metrics: %w", err)
	}

	query := `
		INSERT INTO assessments (
			territory_id, id, safety_score, efficiency_score, accessibility_score,
			environmental_score, overall_score, recommendations, metrics, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (territory_id) DO UPDATE SET
			id = EXCLUDED.id,
			safety_score = EXCLUDED.safety_score,
			efficiency_score = EXCLUDED.efficiency_score,
			accessibility_score = EXCLUDED.accessibility_score,
			environmental_score = EXCLUDED.environmental_score,
			overall_score = EXCLUDED.overall_score,
			recommendations = EXCLUDED.recommendations,
			metrics = EXCLUDED.metrics,
			created_at = EXCLUDED.created_at
	`

	_, err = s.pool.Exec(ctx, query,
		a.TerritoryID, a.ID, a.SafetyScore, a.EfficiencyScore, a.AccessibilityScore,
		a.EnvironmentalScore, a.OverallScore, a.Recommendations, metrics, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to save assessment: %w", err)
	}
	return nil
}

// GetByTerritory returns the assessment for a territory or domain.ErrNotFound.
func (s *AssessmentStore) GetByTerritory(ctx context.Context, territoryID string) (domain.Assessment, error) {
	query := `
		SELECT territory_id, id, safety_score, efficiency_score, accessibility_score,
			   environmental_score, overall_score, recommendations, metrics, created_at
		FROM assessments WHERE territory_id = $1
	`

	var a domain.Assessment
	var metrics []byte
	err := s.pool.QueryRow(ctx, query, territoryID).Scan(
		&a.TerritoryID, &a.ID, &a.SafetyScore, &a.EfficiencyScore, &a.AccessibilityScore,
		&a.EnvironmentalScore, &a.OverallScore, &a.Recommendations, &metrics, &a.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Assessment{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Assessment{}, fmt.Errorf("postgres: failed to query assessment: %w", err)
	}
	if err := json.Unmarshal(metrics, &a.Metrics); err != nil {
		return domain.Assessment{}, fmt.Errorf("postgres: failed to unmarshal metrics: %w", err)
	}
	return a, nil
}

// DeleteByTerritory removes the assessment for a territory. Absent rows are
// not an error; cascade deletes hit unassessed territories.
func (s *AssessmentStore) DeleteByTerritory(ctx context.Context, territoryID string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM assessments WHERE territory_id = $1`, territoryID); err != nil {
		return fmt.Errorf("postgres: failed to delete assessment: %w", err)
	}
	return nil
}

// Count returns the number of assessments.
func (s *AssessmentStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM assessments`).Scan(&count); err != nil {
		return 0, fmt.Errorf("postgres: failed to count assessments: %w", err)
	}
	return count, nil
}
