package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/content"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "nested", "portfolio.db")

	s, err := NewSQLiteStore(dbPath, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})
	return s
}

func TestSQLiteStore_PutGet(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "skillCategories", []byte(`[{"title":"Go"}]`)))

	got, err := s.Get(ctx, "skillCategories")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"title":"Go"}]`, string(got))
}

func TestSQLiteStore_PutOverwrites(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "k", []byte("one")))
	require.NoError(t, s.Put(ctx, "k", []byte("two")))

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "two", string(got))
}

func TestSQLiteStore_GetMissing(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestSQLiteStore_Delete(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "a", []byte("1")))
	require.NoError(t, s.Put(ctx, "b", []byte("2")))
	require.NoError(t, s.Put(ctx, "c", []byte("3")))

	require.NoError(t, s.Delete(ctx, "a", "c", "missing"))

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, keys)
	assert.NoError(t, s.Delete(ctx))
}

func TestSQLiteStore_ContentRoundTrip(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	cs := content.NewStore(s, nil)
	added, err := cs.AddSkill(ctx, 3, "Docker")
	require.NoError(t, err)
	require.True(t, added)

	reloaded := content.NewStore(s, nil)
	cats, err := reloaded.SkillCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Technical Tools", cats[3].Title)
	assert.Equal(t, "Docker", cats[3].Skills[len(cats[3].Skills)-1])
	assert.NotEmpty(t, cats[3].Display.Icon)

	require.NoError(t, reloaded.Reset(ctx))
	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}
