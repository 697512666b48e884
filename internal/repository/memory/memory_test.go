package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeytekM/SmartBuilderPro/internal/domain"
)

func TestProjectStore_CRUD(t *testing.T) {
	ctx := context.Background()
	store := NewProjectStore()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	project := domain.Project{ID: "p1", Name: "Downtown"}
	require.NoError(t, store.Put(ctx, project))

	got, err := store.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, project, got)

	// Put replaces
	project.TerritoriesCount = 3
	require.NoError(t, store.Put(ctx, project))
	got, err = store.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 3, got.TerritoriesCount)

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, store.Delete(ctx, "p1"))
	assert.ErrorIs(t, store.Delete(ctx, "p1"), domain.ErrNotFound)

	_, err = store.Get(ctx, "p1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTerritoryStore_ListByProject(t *testing.T) {
	ctx := context.Background()
	store := NewTerritoryStore()

	require.NoError(t, store.Put(ctx, domain.Territory{ID: "t1", ProjectID: "p1"}))
	require.NoError(t, store.Put(ctx, domain.Territory{ID: "t2", ProjectID: "p1"}))
	require.NoError(t, store.Put(ctx, domain.Territory{ID: "t3", ProjectID: "p2"}))

	ts, err := store.ListByProject(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, ts, 2)

	ts, err = store.ListByProject(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, ts)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestTerritoryStore_NotFound(t *testing.T) {
	ctx := context.Background()
	store := NewTerritoryStore()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "missing"), domain.ErrNotFound)
}

func TestAssessmentStore_KeyedByTerritory(t *testing.T) {
	ctx := context.Background()
	store := NewAssessmentStore()

	_, err := store.GetByTerritory(ctx, "t1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	first := domain.Assessment{ID: "a1", TerritoryID: "t1", OverallScore: 42.5}
	require.NoError(t, store.Put(ctx, first))

	got, err := store.GetByTerritory(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, first, got)

	// Recomputing overwrites the prior value, no versioning.
	second := domain.Assessment{ID: "a2", TerritoryID: "t1", OverallScore: 55}
	require.NoError(t, store.Put(ctx, second))
	got, err = store.GetByTerritory(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "a2", got.ID)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Deleting an unassessed territory's slot is not an error.
	require.NoError(t, store.DeleteByTerritory(ctx, "never-assessed"))
	require.NoError(t, store.DeleteByTerritory(ctx, "t1"))

	_, err = store.GetByTerritory(ctx, "t1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
