package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ablehire/jobs-api/internal/entities"
)

func setupRepository(t *testing.T) *SearchRecords {
	t.Helper()

	dbCtx, err := NewDbContext(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, dbCtx.Migrate())

	t.Cleanup(func() { _ = dbCtx.Close() })

	return NewSearchRecordsRepository(dbCtx.DB)
}

func Test_SearchRecords_AddAndGetRecent(t *testing.T) {

	repo := setupRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, entities.SearchRecord{
		Query: "older", CreatedAt: time.Now().Add(-2 * time.Hour),
	}))
	require.NoError(t, repo.Add(ctx, entities.SearchRecord{
		Query: "newer", Strategy: "specific", ResultCount: 7, CreatedAt: time.Now(),
	}))

	records, err := repo.GetRecent(ctx, 10)
	require.NoError(t, err)

	assert.Len(t, records, 2)
	assert.Equal(t, "newer", records[0].Query)
	assert.Equal(t, 7, records[0].ResultCount)
	assert.Equal(t, "older", records[1].Query)
}

func Test_SearchRecords_GetRecentHonorsLimit(t *testing.T) {

	repo := setupRepository(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Add(ctx, entities.SearchRecord{Query: "q"}))
	}

	records, err := repo.GetRecent(ctx, 3)
	require.NoError(t, err)

	assert.Len(t, records, 3)
}

func Test_SearchRecords_RemoveOlderThan(t *testing.T) {

	repo := setupRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, entities.SearchRecord{
		Query: "stale", CreatedAt: time.Now().Add(-48 * time.Hour),
	}))
	require.NoError(t, repo.Add(ctx, entities.SearchRecord{
		Query: "fresh", CreatedAt: time.Now(),
	}))

	removed, err := repo.RemoveOlderThan(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	records, err := repo.GetRecent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "fresh", records[0].Query)
}
