package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrEmptyTitle          = errors.New("reminder title must not be empty")
	ErrEmptyDate           = errors.New("reminder date must not be empty")
	ErrEmptyContent        = errors.New("note content must not be empty")
	ErrInvalidReminderType = errors.New("invalid reminder type")
	ErrDuplicateID         = errors.New("record with this id already exists")
	ErrNotLoaded           = errors.New("store has not been loaded")
)

// ReminderType classifies a reminder. The set is closed: nothing
// outside these three values is ever persisted.
type ReminderType string

const (
	ReminderTypeDeadline ReminderType = "deadline"
	ReminderTypeTest     ReminderType = "test"
	ReminderTypeOther    ReminderType = "other"
)

// Reminder represents a dated task with a type tag
type Reminder struct {
	ID        string       `json:"id" db:"id"`
	Title     string       `json:"title" db:"title"`
	Date      time.Time    `json:"date" db:"date"`
	Type      ReminderType `json:"type" db:"type"`
	Completed bool         `json:"completed" db:"completed"`
}

// Note represents a free-text note
type Note struct {
	ID        string    `json:"id" db:"id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewReminder validates the inputs and builds a reminder with a fresh
// id and completed=false.
func NewReminder(title string, date time.Time, reminderType ReminderType) (*Reminder, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if date.IsZero() {
		return nil, ErrEmptyDate
	}
	if !reminderType.IsValid() {
		return nil, ErrInvalidReminderType
	}

	return &Reminder{
		ID:        uuid.NewString(),
		Title:     title,
		Date:      date,
		Type:      reminderType,
		Completed: false,
	}, nil
}

// NewNote validates the content and builds a note with a fresh id and
// the current timestamp.
func NewNote(content string) (*Note, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}

	return &Note{
		ID:        uuid.NewString(),
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Toggle flips the completed flag
func (r *Reminder) Toggle() {
	r.Completed = !r.Completed
}

// IsValid reports whether the type is one of the enumerated values
func (rt ReminderType) IsValid() bool {
	switch rt {
	case ReminderTypeDeadline, ReminderTypeTest, ReminderTypeOther:
		return true
	default:
		return false
	}
}
