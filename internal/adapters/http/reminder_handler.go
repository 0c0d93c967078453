package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/daybook/core/internal/application/services"
	"github.com/daybook/core/internal/domain/entities"
	"github.com/daybook/core/internal/infrastructure/logger"
)

// MessageResponse is a simple message envelope
type MessageResponse struct {
	Message string `json:"message"`
}

// SummaryResponse carries the derived dashboard counts
type SummaryResponse struct {
	Reminders int `json:"reminders"`
	Notes     int `json:"notes"`
	Remaining int `json:"remaining"`
}

// CreateReminderRequest is the add-reminder form payload
type CreateReminderRequest struct {
	Title string `json:"title" validate:"required"`
	Date  string `json:"date" validate:"required"`
	Type  string `json:"type" validate:"required,oneof=deadline test other"`
}

// Accepted date forms: RFC 3339 and the datetime-local control format
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parseDate(value string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var date time.Time
		if date, err = time.Parse(layout, value); err == nil {
			return date, nil
		}
	}
	return time.Time{}, err
}

// ReminderHandler handles reminder-related requests
type ReminderHandler struct {
	dashboard *services.DashboardService
	logger    *logger.Logger
}

// NewReminderHandler creates a new reminder handler
func NewReminderHandler(dashboard *services.DashboardService, logger *logger.Logger) *ReminderHandler {
	return &ReminderHandler{
		dashboard: dashboard,
		logger:    logger,
	}
}

// ListReminders returns the derived view, sorted ascending by date
func (h *ReminderHandler) ListReminders(c echo.Context) error {
	return c.JSON(http.StatusOK, h.dashboard.Reminders())
}

// CreateReminder handles reminder creation
func (h *ReminderHandler) CreateReminder(c echo.Context) error {
	var req CreateReminderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid date format")
	}

	reminder, err := h.dashboard.AddReminder(c.Request().Context(), req.Title, date, entities.ReminderType(req.Type))
	if err != nil {
		if errors.Is(err, entities.ErrEmptyTitle) || errors.Is(err, entities.ErrEmptyDate) || errors.Is(err, entities.ErrInvalidReminderType) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		h.logger.Error("Create reminder failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create reminder")
	}

	return c.JSON(http.StatusCreated, reminder)
}

// ToggleReminder flips the completed flag. An unknown id is a no-op,
// not an error.
func (h *ReminderHandler) ToggleReminder(c echo.Context) error {
	reminder, err := h.dashboard.ToggleReminder(c.Request().Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("Toggle reminder failed", "error", err, "id", c.Param("id"))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to toggle reminder")
	}

	if reminder == nil {
		return c.JSON(http.StatusOK, MessageResponse{Message: "No matching reminder"})
	}

	return c.JSON(http.StatusOK, reminder)
}

// DeleteReminder removes a reminder; an unknown id is still a 204
func (h *ReminderHandler) DeleteReminder(c echo.Context) error {
	if err := h.dashboard.DeleteReminder(c.Request().Context(), c.Param("id")); err != nil {
		h.logger.Error("Delete reminder failed", "error", err, "id", c.Param("id"))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete reminder")
	}

	return c.NoContent(http.StatusNoContent)
}

// Summary returns the derived dashboard counts
func (h *ReminderHandler) Summary(c echo.Context) error {
	reminders, notes, remaining := h.dashboard.Counts()
	return c.JSON(http.StatusOK, SummaryResponse{
		Reminders: reminders,
		Notes:     notes,
		Remaining: remaining,
	})
}
