package editor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/store"
)

func newTestEditor(t *testing.T) (*Editor, *content.Store) {
	t.Helper()
	db, err := store.NewSQLiteStore(t.TempDir()+"/editor.db", nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cs := content.NewStore(db, nil)
	return New(cs), cs
}

func TestOpen_HeroPrefilled(t *testing.T) {
	e, _ := newTestEditor(t)

	d, err := e.Open(context.Background(), "hero", 0)
	require.NoError(t, err)
	assert.Equal(t, "Edit Hero Section", d.Title)
	require.Len(t, d.Fields, 3)
	assert.Equal(t, "name", d.Fields[0].Name)
	assert.Equal(t, "Rahul Das", d.Fields[0].Value)
	assert.True(t, d.Fields[2].Multiline)
	assert.Equal(t, "/admin/edit/hero", d.Action())
	assert.Equal(t, "hero", d.Anchor())
}

func TestSave_ThenOpenShowsNewValue(t *testing.T) {
	e, cs := newTestEditor(t)
	ctx := context.Background()

	err := e.Save(ctx, "contact", 0, map[string]string{
		"email":       "new@example.com",
		"phone":       "",
		"linkedinUrl": "https://linkedin.com/in/new",
	})
	require.NoError(t, err)

	got, err := cs.Section(ctx, content.Contact)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", got["email"])
	assert.Equal(t, "", got["phone"])

	d, err := e.Open(ctx, "contact", 0)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", d.Fields[0].Value)
}

func TestSave_MissingKeysSaveEmpty(t *testing.T) {
	e, cs := newTestEditor(t)
	ctx := context.Background()

	require.NoError(t, e.Save(ctx, "about", 0, map[string]string{"intro": "Short intro"}))

	got, err := cs.Section(ctx, content.About)
	require.NoError(t, err)
	assert.Equal(t, "Short intro", got["intro"])
	assert.Equal(t, "", got["approach"])
}

func TestOpenWithoutSaveNeverMutates(t *testing.T) {
	e, cs := newTestEditor(t)
	ctx := context.Background()

	before, err := cs.Page(ctx)
	require.NoError(t, err)

	for _, id := range []string{"hero", "about", "contact", "footer", "skills"} {
		_, err := e.Open(ctx, id, 0)
		require.NoError(t, err)
	}

	after, err := cs.Page(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestListDialogs(t *testing.T) {
	e, cs := newTestEditor(t)
	ctx := context.Background()

	d, err := e.Open(ctx, "work", 1)
	require.NoError(t, err)
	assert.Equal(t, "AI-Powered Chatbot", d.Fields[0].Value)
	assert.Equal(t, "/admin/edit/work/1", d.Action())
	assert.Equal(t, "projects", d.Anchor())

	require.NoError(t, e.Save(ctx, "work", 1, map[string]string{"title": "Bot", "impact": "70%"}))
	items, err := cs.WorkExperience(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bot", items[1].Title)
	assert.Equal(t, "70%", items[1].Impact)
	assert.Equal(t, "", items[1].Problem)

	require.NoError(t, e.Save(ctx, "portfolio", 0, map[string]string{"title": "Deck", "image": "/images/d.png"}))
	p, err := cs.Portfolio(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Deck", p[0].Title)

	require.NoError(t, e.Save(ctx, "achievement", 2, map[string]string{"title": "Shipped", "description": "a lot"}))
	a, err := cs.Achievements(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Shipped", a[2].Title)
}

func TestListDialogBadIndex(t *testing.T) {
	e, _ := newTestEditor(t)
	ctx := context.Background()

	_, err := e.Open(ctx, "portfolio", 7)
	assert.ErrorIs(t, err, content.ErrIndexOutOfRange)

	err = e.Save(ctx, "achievement", -1, map[string]string{})
	assert.ErrorIs(t, err, content.ErrIndexOutOfRange)
}

func TestUnknownDialog(t *testing.T) {
	e, _ := newTestEditor(t)
	ctx := context.Background()

	_, err := e.Open(ctx, "sidebar", 0)
	assert.ErrorIs(t, err, ErrUnknownDialog)
	assert.ErrorIs(t, e.Save(ctx, "sidebar", 0, nil), ErrUnknownDialog)
}

func TestSkillsDialog(t *testing.T) {
	e, _ := newTestEditor(t)

	d, err := e.Open(context.Background(), "skills", 0)
	require.NoError(t, err)
	assert.Len(t, d.Categories, 4)
	assert.Empty(t, d.Fields)
	assert.Equal(t, "skills", d.Anchor())
}

func TestFieldNames(t *testing.T) {
	assert.Equal(t, []string{"name", "subtitle", "description"}, FieldNames("hero"))
	assert.Equal(t, []string{"title", "problem", "solution", "impact"}, FieldNames("work"))
	assert.Empty(t, FieldNames("nope"))
	assert.True(t, IsList("portfolio"))
	assert.False(t, IsList("hero"))
}
