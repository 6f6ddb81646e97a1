package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore_VisitStats(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	visits := []Visit{
		{HashedIP: "aaaa", Path: "/", At: now.Add(-time.Hour)},
		{HashedIP: "aaaa", Path: "/", At: now.Add(-2 * time.Hour)},
		{HashedIP: "bbbb", Path: "/", At: now.Add(-3 * 24 * time.Hour)},
		{HashedIP: "cccc", Path: "/", At: now.Add(-30 * 24 * time.Hour)},
	}
	for _, v := range visits {
		require.NoError(t, s.RecordVisit(ctx, v))
	}

	stats, err := s.VisitStats(ctx, now, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalVisits)
	assert.Equal(t, int64(3), stats.UniqueVisitors)
	assert.Equal(t, int64(2), stats.VisitsToday)
	assert.Equal(t, int64(3), stats.VisitsThisWeek)
	require.Len(t, stats.Recent, 2)
	assert.True(t, now.Add(-time.Hour).Equal(stats.Recent[0].At))
}

func TestSQLiteStore_VisitStatsEmpty(t *testing.T) {
	s := setupTestStore(t)

	stats, err := s.VisitStats(context.Background(), time.Now(), 10)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalVisits)
	assert.NotNil(t, stats.Recent)
	assert.Empty(t, stats.Recent)
}

func TestSQLiteStore_PruneVisits(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "old", Path: "/", At: now.AddDate(-2, 0, 0)}))
	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "new", Path: "/"}))

	n, err := s.PruneVisits(ctx, now.AddDate(-1, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	stats, err := s.VisitStats(ctx, now, 10)
	require.NoError(t, err)
	require.Len(t, stats.Recent, 1)
	assert.Equal(t, "new", stats.Recent[0].HashedIP)
}
