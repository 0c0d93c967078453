package localstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook/core/internal/domain/entities"
	"github.com/daybook/core/internal/infrastructure/logger"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := New(dir, logger.NewNop())
	require.NoError(t, err)
	return store, dir
}

func testReminder(id, title string, date time.Time) *entities.Reminder {
	return &entities.Reminder{
		ID:    id,
		Title: title,
		Date:  date,
		Type:  entities.ReminderTypeDeadline,
	}
}

func TestListAbsentSlotIsEmpty(t *testing.T) {
	store, _ := newTestStore(t)
	repos := store.Repositories()

	reminders, err := repos.Reminders.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, reminders)

	notes, err := repos.Notes.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestCorruptSlotLoadsAsEmpty(t *testing.T) {
	store, dir := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "reminders.json"), []byte("{not json"), 0o644))

	reminders, err := store.Repositories().Reminders.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, reminders)
}

func TestReminderRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	repos := store.Repositories()
	ctx := context.Background()

	date := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repos.Reminders.Insert(ctx, testReminder("a", "first", date)))
	require.NoError(t, repos.Reminders.Insert(ctx, testReminder("b", "second", date.Add(time.Hour))))

	reminders, err := repos.Reminders.List(ctx)
	require.NoError(t, err)
	require.Len(t, reminders, 2)

	// Insertion order survives serialization
	assert.Equal(t, "a", reminders[0].ID)
	assert.Equal(t, "first", reminders[0].Title)
	assert.True(t, date.Equal(reminders[0].Date))
	assert.Equal(t, entities.ReminderTypeDeadline, reminders[0].Type)
	assert.Equal(t, "b", reminders[1].ID)
}

func TestInsertDuplicateReminder(t *testing.T) {
	store, _ := newTestStore(t)
	repos := store.Repositories()
	ctx := context.Background()

	date := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repos.Reminders.Insert(ctx, testReminder("a", "first", date)))

	err := repos.Reminders.Insert(ctx, testReminder("a", "again", date))
	assert.ErrorIs(t, err, entities.ErrDuplicateID)

	reminders, err := repos.Reminders.List(ctx)
	require.NoError(t, err)
	assert.Len(t, reminders, 1)
}

func TestSetCompletedAndDelete(t *testing.T) {
	store, _ := newTestStore(t)
	repos := store.Repositories()
	ctx := context.Background()

	date := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repos.Reminders.Insert(ctx, testReminder("a", "first", date)))

	require.NoError(t, repos.Reminders.SetCompleted(ctx, "a", true))
	reminders, err := repos.Reminders.List(ctx)
	require.NoError(t, err)
	assert.True(t, reminders[0].Completed)

	// Absent ids are a no-op
	require.NoError(t, repos.Reminders.SetCompleted(ctx, "missing", true))
	require.NoError(t, repos.Reminders.Delete(ctx, "missing"))

	require.NoError(t, repos.Reminders.Delete(ctx, "a"))
	reminders, err = repos.Reminders.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, reminders)
}

func TestNotesStayNewestFirst(t *testing.T) {
	store, _ := newTestStore(t)
	repos := store.Repositories()
	ctx := context.Background()

	older := &entities.Note{ID: "n1", Content: "older", CreatedAt: time.Now().UTC()}
	newer := &entities.Note{ID: "n2", Content: "newer", CreatedAt: time.Now().UTC().Add(time.Minute)}

	require.NoError(t, repos.Notes.Insert(ctx, older))
	require.NoError(t, repos.Notes.Insert(ctx, newer))

	notes, err := repos.Notes.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "n2", notes[0].ID)
	assert.Equal(t, "n1", notes[1].ID)
}

func TestSlotIsFieldTaggedJSON(t *testing.T) {
	store, dir := newTestStore(t)
	ctx := context.Background()

	date := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.Repositories().Reminders.Insert(ctx, testReminder("a", "first", date)))

	data, err := os.ReadFile(filepath.Join(dir, "reminders.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"title": "first"`)
}
