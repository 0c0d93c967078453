package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/daybook/core/internal/domain/entities"
	"github.com/daybook/core/internal/infrastructure/logger"
	"github.com/daybook/core/internal/ports"
)

// DashboardService is the record store: it owns the in-session
// reminder and note collections and keeps the configured backend
// consistent with them. Stored order is insertion order (notes
// newest-first); display order is recomputed per access and never
// mutates the stored collections.
//
// The mutex serializes mutations because the HTTP surface serves
// concurrent requests. Each mutation persists before it commits to
// memory, so the backend never drifts ahead of or behind the
// collections.
type DashboardService struct {
	repos  ports.Repositories
	logger *logger.Logger

	mu        sync.Mutex
	loaded    bool
	reminders []entities.Reminder
	notes     []entities.Note
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(repos ports.Repositories, appLogger *logger.Logger) *DashboardService {
	return &DashboardService{
		repos:  repos,
		logger: appLogger,
	}
}

// Load hydrates both collections from the backend. It must complete
// before any mutation is accepted and never writes; calling it again
// is a no-op.
func (s *DashboardService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return nil
	}

	reminders, err := s.repos.Reminders.List(ctx)
	if err != nil {
		return fmt.Errorf("load reminders: %w", err)
	}
	notes, err := s.repos.Notes.List(ctx)
	if err != nil {
		return fmt.Errorf("load notes: %w", err)
	}

	s.reminders = reminders
	s.notes = notes
	s.loaded = true

	s.logger.Info("Dashboard loaded", "reminders", len(reminders), "notes", len(notes))
	return nil
}

// AddReminder validates, persists and appends a new reminder.
// Validation failures reject the action before any mutation or
// persistence call.
func (s *DashboardService) AddReminder(ctx context.Context, title string, date time.Time, reminderType entities.ReminderType) (*entities.Reminder, error) {
	reminder, err := entities.NewReminder(title, date, reminderType)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return nil, entities.ErrNotLoaded
	}

	if err := s.repos.Reminders.Insert(ctx, reminder); err != nil {
		return nil, fmt.Errorf("persist reminder: %w", err)
	}
	s.reminders = append(s.reminders, *reminder)

	s.logger.Info("Reminder added", "id", reminder.ID, "title", reminder.Title, "type", reminder.Type)
	return reminder, nil
}

// ToggleReminder flips the completed flag on the matching reminder.
// An absent id is a no-op: it returns (nil, nil) without touching the
// backend.
func (s *DashboardService) ToggleReminder(ctx context.Context, id string) (*entities.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return nil, entities.ErrNotLoaded
	}

	for i := range s.reminders {
		if s.reminders[i].ID != id {
			continue
		}
		completed := !s.reminders[i].Completed
		if err := s.repos.Reminders.SetCompleted(ctx, id, completed); err != nil {
			return nil, fmt.Errorf("persist toggle: %w", err)
		}
		s.reminders[i].Completed = completed
		updated := s.reminders[i]
		return &updated, nil
	}

	return nil, nil
}

// DeleteReminder removes the matching reminder; absent ids are a no-op
func (s *DashboardService) DeleteReminder(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return entities.ErrNotLoaded
	}

	for i := range s.reminders {
		if s.reminders[i].ID != id {
			continue
		}
		if err := s.repos.Reminders.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete reminder: %w", err)
		}
		s.reminders = append(s.reminders[:i], s.reminders[i+1:]...)
		s.logger.Info("Reminder deleted", "id", id)
		return nil
	}

	return nil
}

// AddNote validates, persists and prepends a new note so the stored
// collection stays newest-first.
func (s *DashboardService) AddNote(ctx context.Context, content string) (*entities.Note, error) {
	note, err := entities.NewNote(content)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return nil, entities.ErrNotLoaded
	}

	if err := s.repos.Notes.Insert(ctx, note); err != nil {
		return nil, fmt.Errorf("persist note: %w", err)
	}
	s.notes = append([]entities.Note{*note}, s.notes...)

	s.logger.Info("Note added", "id", note.ID)
	return note, nil
}

// DeleteNote removes the matching note; absent ids are a no-op
func (s *DashboardService) DeleteNote(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return entities.ErrNotLoaded
	}

	for i := range s.notes {
		if s.notes[i].ID != id {
			continue
		}
		if err := s.repos.Notes.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete note: %w", err)
		}
		s.notes = append(s.notes[:i], s.notes[i+1:]...)
		s.logger.Info("Note deleted", "id", id)
		return nil
	}

	return nil
}

// Reminders returns the derived display view: a copy sorted ascending
// by date. The stored collection keeps insertion order.
func (s *DashboardService) Reminders() []entities.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := make([]entities.Reminder, len(s.reminders))
	copy(view, s.reminders)
	sort.SliceStable(view, func(i, j int) bool {
		return view[i].Date.Before(view[j].Date)
	})
	return view
}

// Notes returns a copy of the stored newest-first collection
func (s *DashboardService) Notes() []entities.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := make([]entities.Note, len(s.notes))
	copy(view, s.notes)
	return view
}

// RemainingCount is the number of not-yet-completed reminders,
// recomputed on every call and never stored.
func (s *DashboardService) RemainingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := 0
	for _, reminder := range s.reminders {
		if !reminder.Completed {
			remaining++
		}
	}
	return remaining
}

// Counts returns the summary shown next to the section headers
func (s *DashboardService) Counts() (reminders, notes, remaining int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, reminder := range s.reminders {
		if !reminder.Completed {
			remaining++
		}
	}
	return len(s.reminders), len(s.notes), remaining
}
