package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/daybook/core/internal/domain/entities"
	"github.com/daybook/core/internal/ports"
)

// Timestamps are stored as fixed-width RFC 3339 text: human-readable,
// identical on every supported driver, and lexical order matches
// chronological order (RFC3339Nano trims trailing zeros and loses
// that property inside a second).
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// reminderRow mirrors the reminders table
type reminderRow struct {
	ID        string `db:"id"`
	Title     string `db:"title"`
	Date      string `db:"date"`
	Type      string `db:"type"`
	Completed bool   `db:"completed"`
}

// ReminderRepositoryImpl implements the ReminderRepository interface
type ReminderRepositoryImpl struct {
	db *sqlx.DB
}

// NewReminderRepository creates a new reminder repository
func NewReminderRepository(db *sqlx.DB) ports.ReminderRepository {
	return &ReminderRepositoryImpl{db: db}
}

func (r *ReminderRepositoryImpl) Insert(ctx context.Context, reminder *entities.Reminder) error {
	query := r.db.Rebind(`
		INSERT INTO reminders (id, title, date, type, completed)
		VALUES (?, ?, ?, ?, ?)`)

	_, err := r.db.ExecContext(ctx, query,
		reminder.ID, reminder.Title, reminder.Date.UTC().Format(timeLayout),
		string(reminder.Type), reminder.Completed,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return entities.ErrDuplicateID
		}
		return fmt.Errorf("insert reminder: %w", err)
	}

	return nil
}

// List returns all reminders. There is no server-side ordering
// contract; callers sort for display.
func (r *ReminderRepositoryImpl) List(ctx context.Context) ([]entities.Reminder, error) {
	query := `SELECT id, title, date, type, completed FROM reminders`

	var rows []reminderRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}

	reminders := make([]entities.Reminder, 0, len(rows))
	for _, row := range rows {
		date, err := time.Parse(timeLayout, row.Date)
		if err != nil {
			return nil, fmt.Errorf("list reminders: parse date %q: %w", row.Date, err)
		}
		reminders = append(reminders, entities.Reminder{
			ID:        row.ID,
			Title:     row.Title,
			Date:      date,
			Type:      entities.ReminderType(row.Type),
			Completed: row.Completed,
		})
	}

	return reminders, nil
}

// SetCompleted updates the completed flag by id. Zero rows affected
// means the id is absent, which is not an error.
func (r *ReminderRepositoryImpl) SetCompleted(ctx context.Context, id string, completed bool) error {
	query := r.db.Rebind(`UPDATE reminders SET completed = ? WHERE id = ?`)

	if _, err := r.db.ExecContext(ctx, query, completed, id); err != nil {
		return fmt.Errorf("set reminder completed: %w", err)
	}

	return nil
}

func (r *ReminderRepositoryImpl) Delete(ctx context.Context, id string) error {
	query := r.db.Rebind(`DELETE FROM reminders WHERE id = ?`)

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}

	return nil
}
