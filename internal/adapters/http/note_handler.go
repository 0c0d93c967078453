package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daybook/core/internal/application/services"
	"github.com/daybook/core/internal/domain/entities"
	"github.com/daybook/core/internal/infrastructure/logger"
)

// CreateNoteRequest is the add-note form payload
type CreateNoteRequest struct {
	Content string `json:"content" validate:"required"`
}

// NoteHandler handles note-related requests
type NoteHandler struct {
	dashboard *services.DashboardService
	logger    *logger.Logger
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(dashboard *services.DashboardService, logger *logger.Logger) *NoteHandler {
	return &NoteHandler{
		dashboard: dashboard,
		logger:    logger,
	}
}

// ListNotes returns the stored newest-first collection
func (h *NoteHandler) ListNotes(c echo.Context) error {
	return c.JSON(http.StatusOK, h.dashboard.Notes())
}

// CreateNote handles note creation
func (h *NoteHandler) CreateNote(c echo.Context) error {
	var req CreateNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	note, err := h.dashboard.AddNote(c.Request().Context(), req.Content)
	if err != nil {
		if errors.Is(err, entities.ErrEmptyContent) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		h.logger.Error("Create note failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create note")
	}

	return c.JSON(http.StatusCreated, note)
}

// DeleteNote removes a note; an unknown id is still a 204
func (h *NoteHandler) DeleteNote(c echo.Context) error {
	if err := h.dashboard.DeleteNote(c.Request().Context(), c.Param("id")); err != nil {
		h.logger.Error("Delete note failed", "error", err, "id", c.Param("id"))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete note")
	}

	return c.NoContent(http.StatusNoContent)
}
