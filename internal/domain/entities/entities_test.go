package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReminder(t *testing.T) {
	date := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

	reminder, err := NewReminder("Submit report", date, ReminderTypeDeadline)
	require.NoError(t, err)

	assert.NotEmpty(t, reminder.ID)
	assert.Equal(t, "Submit report", reminder.Title)
	assert.True(t, date.Equal(reminder.Date))
	assert.Equal(t, ReminderTypeDeadline, reminder.Type)
	assert.False(t, reminder.Completed)

	other, err := NewReminder("Another", date, ReminderTypeTest)
	require.NoError(t, err)
	assert.NotEqual(t, reminder.ID, other.ID)
}

func TestNewReminderValidation(t *testing.T) {
	date := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

	_, err := NewReminder("", date, ReminderTypeDeadline)
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = NewReminder("Title", time.Time{}, ReminderTypeDeadline)
	assert.ErrorIs(t, err, ErrEmptyDate)

	_, err = NewReminder("Title", date, ReminderType("meeting"))
	assert.ErrorIs(t, err, ErrInvalidReminderType)
}

func TestNewNote(t *testing.T) {
	note, err := NewNote("remember the milk")
	require.NoError(t, err)

	assert.NotEmpty(t, note.ID)
	assert.Equal(t, "remember the milk", note.Content)
	assert.False(t, note.CreatedAt.IsZero())

	_, err = NewNote("")
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestReminderToggle(t *testing.T) {
	reminder := &Reminder{Completed: false}

	reminder.Toggle()
	assert.True(t, reminder.Completed)

	reminder.Toggle()
	assert.False(t, reminder.Completed)
}

func TestReminderTypeIsValid(t *testing.T) {
	assert.True(t, ReminderTypeDeadline.IsValid())
	assert.True(t, ReminderTypeTest.IsValid())
	assert.True(t, ReminderTypeOther.IsValid())
	assert.False(t, ReminderType("").IsValid())
	assert.False(t, ReminderType("meeting").IsValid())
}
