package ports

import (
	"context"

	"github.com/daybook/core/internal/domain/entities"
)

// ReminderRepository defines the interface for reminder persistence.
// Insert fails with entities.ErrDuplicateID on a colliding id;
// SetCompleted and Delete treat an absent id as a no-op, not an error.
type ReminderRepository interface {
	Insert(ctx context.Context, reminder *entities.Reminder) error
	List(ctx context.Context) ([]entities.Reminder, error)
	SetCompleted(ctx context.Context, id string, completed bool) error
	Delete(ctx context.Context, id string) error
}

// NoteRepository defines the interface for note persistence.
// List returns notes newest-first.
type NoteRepository interface {
	Insert(ctx context.Context, note *entities.Note) error
	List(ctx context.Context) ([]entities.Note, error)
	Delete(ctx context.Context, id string) error
}

// Repositories bundles the two collections' backends. Deployment
// configuration selects exactly one concrete implementation pair; the
// backends are never kept in sync with each other.
type Repositories struct {
	Reminders ReminderRepository
	Notes     NoteRepository
}
