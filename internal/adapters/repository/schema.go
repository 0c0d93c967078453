package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const schemaReminders = `
	CREATE TABLE IF NOT EXISTS reminders (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		date TEXT NOT NULL,
		type TEXT NOT NULL,
		completed BOOLEAN DEFAULT FALSE
	)`

const schemaNotes = `
	CREATE TABLE IF NOT EXISTS notes (
		id TEXT PRIMARY KEY,
		content TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`

// EnsureSchema creates the reminders and notes tables when absent.
// Idempotent; concurrent process starts rely on the database's own
// create-if-not-exists semantics.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range []string{schemaReminders, schemaNotes} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// isDuplicateKey reports whether err is a primary key collision.
// Postgres reports SQLSTATE 23505; the sqlite driver only exposes the
// constraint failure through the error message.
func isDuplicateKey(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "PRIMARY KEY constraint")
}
