// Package localstore persists the reminder and note collections as two
// JSON slots on local disk. Every mutation rewrites the owning slot in
// full, so the mirror is always a complete, human-diffable copy of the
// in-session collection and no merge logic is ever needed.
package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/daybook/core/internal/domain/entities"
	"github.com/daybook/core/internal/infrastructure/logger"
	"github.com/daybook/core/internal/ports"
)

const (
	slotReminders = "reminders.json"
	slotNotes     = "notes.json"
)

// Store reads and writes the two mirror slots under a data directory
type Store struct {
	dir    string
	logger *logger.Logger
}

// New creates a local store rooted at dir, creating it when absent
func New(dir string, appLogger *logger.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Store{dir: dir, logger: appLogger}, nil
}

// Repositories returns the mirror-backed implementations of the
// storage port.
func (s *Store) Repositories() ports.Repositories {
	return ports.Repositories{
		Reminders: &reminderSlot{store: s},
		Notes:     &noteSlot{store: s},
	}
}

// readSlot unmarshals a slot into dest. An absent slot is an empty
// collection; a corrupt slot is logged and also treated as empty, it
// is never surfaced to the caller.
func (s *Store) readSlot(name string, dest interface{}) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read slot %s: %w", name, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		s.logger.Warn("Discarding unparseable mirror slot", "slot", name, "error", err)
		return nil
	}
	return nil
}

// writeSlot serializes the full collection and replaces the slot
// atomically via a temp file rename.
func (s *Store) writeSlot(name string, value interface{}) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal slot %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write slot %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace slot %s: %w", name, err)
	}
	return nil
}

// reminderSlot implements ports.ReminderRepository over the reminders
// slot. Stored order is insertion order.
type reminderSlot struct {
	store *Store
}

func (r *reminderSlot) Insert(ctx context.Context, reminder *entities.Reminder) error {
	reminders, err := r.List(ctx)
	if err != nil {
		return err
	}
	for _, existing := range reminders {
		if existing.ID == reminder.ID {
			return entities.ErrDuplicateID
		}
	}
	return r.store.writeSlot(slotReminders, append(reminders, *reminder))
}

func (r *reminderSlot) List(ctx context.Context) ([]entities.Reminder, error) {
	reminders := []entities.Reminder{}
	if err := r.store.readSlot(slotReminders, &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *reminderSlot) SetCompleted(ctx context.Context, id string, completed bool) error {
	reminders, err := r.List(ctx)
	if err != nil {
		return err
	}
	found := false
	for i := range reminders {
		if reminders[i].ID == id {
			reminders[i].Completed = completed
			found = true
			break
		}
	}
	if !found {
		return nil
	}
	return r.store.writeSlot(slotReminders, reminders)
}

func (r *reminderSlot) Delete(ctx context.Context, id string) error {
	reminders, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := reminders[:0]
	for _, reminder := range reminders {
		if reminder.ID != id {
			kept = append(kept, reminder)
		}
	}
	if len(kept) == len(reminders) {
		return nil
	}
	return r.store.writeSlot(slotReminders, kept)
}

// noteSlot implements ports.NoteRepository over the notes slot. New
// notes are prepended so the slot stays newest-first.
type noteSlot struct {
	store *Store
}

func (n *noteSlot) Insert(ctx context.Context, note *entities.Note) error {
	notes, err := n.List(ctx)
	if err != nil {
		return err
	}
	for _, existing := range notes {
		if existing.ID == note.ID {
			return entities.ErrDuplicateID
		}
	}
	return n.store.writeSlot(slotNotes, append([]entities.Note{*note}, notes...))
}

func (n *noteSlot) List(ctx context.Context) ([]entities.Note, error) {
	notes := []entities.Note{}
	if err := n.store.readSlot(slotNotes, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (n *noteSlot) Delete(ctx context.Context, id string) error {
	notes, err := n.List(ctx)
	if err != nil {
		return err
	}
	kept := notes[:0]
	for _, note := range notes {
		if note.ID != id {
			kept = append(kept, note)
		}
	}
	if len(kept) == len(notes) {
		return nil
	}
	return n.store.writeSlot(slotNotes, kept)
}
