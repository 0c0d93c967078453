package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/daybook/core/internal/domain/entities"
)

// newTestDB opens an on-disk sqlite database under the test's temp
// dir. The adapter's statements are driver-agnostic, so the sqlite
// run exercises the same code paths as postgres.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite", filepath.Join(t.TempDir(), "daybook.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, EnsureSchema(context.Background(), db))
	return db
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, EnsureSchema(context.Background(), db))
	require.NoError(t, EnsureSchema(context.Background(), db))
}

func TestInsertAndListReminder(t *testing.T) {
	repo := NewReminderRepository(newTestDB(t))
	ctx := context.Background()

	date := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	reminder := &entities.Reminder{
		ID:        "r1",
		Title:     "Submit report",
		Date:      date,
		Type:      entities.ReminderTypeDeadline,
		Completed: false,
	}
	require.NoError(t, repo.Insert(ctx, reminder))

	reminders, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, reminders, 1)

	got := reminders[0]
	assert.Equal(t, "r1", got.ID)
	assert.Equal(t, "Submit report", got.Title)
	assert.True(t, date.Equal(got.Date))
	assert.Equal(t, entities.ReminderTypeDeadline, got.Type)
	assert.False(t, got.Completed)
}

func TestInsertDuplicateReminderFails(t *testing.T) {
	repo := NewReminderRepository(newTestDB(t))
	ctx := context.Background()

	reminder := &entities.Reminder{
		ID:    "r1",
		Title: "Submit report",
		Date:  time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
		Type:  entities.ReminderTypeDeadline,
	}
	require.NoError(t, repo.Insert(ctx, reminder))

	err := repo.Insert(ctx, reminder)
	assert.ErrorIs(t, err, entities.ErrDuplicateID)

	// The table is unchanged: one row total, not two
	reminders, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, reminders, 1)
}

func TestSetCompleted(t *testing.T) {
	repo := NewReminderRepository(newTestDB(t))
	ctx := context.Background()

	reminder := &entities.Reminder{
		ID:    "r1",
		Title: "Submit report",
		Date:  time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
		Type:  entities.ReminderTypeTest,
	}
	require.NoError(t, repo.Insert(ctx, reminder))

	require.NoError(t, repo.SetCompleted(ctx, "r1", true))

	reminders, err := repo.List(ctx)
	require.NoError(t, err)
	assert.True(t, reminders[0].Completed)
}

func TestSetCompletedAbsentIDIsNoOp(t *testing.T) {
	repo := NewReminderRepository(newTestDB(t))
	require.NoError(t, repo.SetCompleted(context.Background(), "missing", true))
}

func TestDeleteReminder(t *testing.T) {
	repo := NewReminderRepository(newTestDB(t))
	ctx := context.Background()

	reminder := &entities.Reminder{
		ID:    "r1",
		Title: "Submit report",
		Date:  time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
		Type:  entities.ReminderTypeOther,
	}
	require.NoError(t, repo.Insert(ctx, reminder))

	require.NoError(t, repo.Delete(ctx, "r1"))
	require.NoError(t, repo.Delete(ctx, "r1")) // second delete is a no-op

	reminders, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, reminders)
}

func TestNotesListedNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewNoteRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)
	for i, id := range []string{"n1", "n2", "n3"} {
		note := &entities.Note{
			ID:        id,
			Content:   "note " + id,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Insert(ctx, note))
	}

	notes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, "n3", notes[0].ID)
	assert.Equal(t, "n2", notes[1].ID)
	assert.Equal(t, "n1", notes[2].ID)
}

func TestInsertDuplicateNoteFails(t *testing.T) {
	repo := NewNoteRepository(newTestDB(t))
	ctx := context.Background()

	note := &entities.Note{ID: "n1", Content: "once", CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Insert(ctx, note))

	err := repo.Insert(ctx, note)
	assert.ErrorIs(t, err, entities.ErrDuplicateID)
}

func TestDeleteNoteAbsentIDIsNoOp(t *testing.T) {
	repo := NewNoteRepository(newTestDB(t))
	require.NoError(t, repo.Delete(context.Background(), "missing"))
}
