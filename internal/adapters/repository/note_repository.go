package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/daybook/core/internal/domain/entities"
	"github.com/daybook/core/internal/ports"
)

// noteRow mirrors the notes table
type noteRow struct {
	ID        string `db:"id"`
	Content   string `db:"content"`
	CreatedAt string `db:"created_at"`
}

// NoteRepositoryImpl implements the NoteRepository interface
type NoteRepositoryImpl struct {
	db *sqlx.DB
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(db *sqlx.DB) ports.NoteRepository {
	return &NoteRepositoryImpl{db: db}
}

func (r *NoteRepositoryImpl) Insert(ctx context.Context, note *entities.Note) error {
	query := r.db.Rebind(`
		INSERT INTO notes (id, content, created_at)
		VALUES (?, ?, ?)`)

	_, err := r.db.ExecContext(ctx, query,
		note.ID, note.Content, note.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		if isDuplicateKey(err) {
			return entities.ErrDuplicateID
		}
		return fmt.Errorf("insert note: %w", err)
	}

	return nil
}

// List returns all notes ordered newest-first. RFC 3339 text sorts
// chronologically, so the ordering holds on every driver.
func (r *NoteRepositoryImpl) List(ctx context.Context) ([]entities.Note, error) {
	query := `SELECT id, content, created_at FROM notes ORDER BY created_at DESC`

	var rows []noteRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	notes := make([]entities.Note, 0, len(rows))
	for _, row := range rows {
		createdAt, err := time.Parse(timeLayout, row.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("list notes: parse created_at %q: %w", row.CreatedAt, err)
		}
		notes = append(notes, entities.Note{
			ID:        row.ID,
			Content:   row.Content,
			CreatedAt: createdAt,
		})
	}

	return notes, nil
}

func (r *NoteRepositoryImpl) Delete(ctx context.Context, id string) error {
	query := r.db.Rebind(`DELETE FROM notes WHERE id = ?`)

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	return nil
}
