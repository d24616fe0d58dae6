package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/interview-iq/internal/models"
	"alfredoptarigan/interview-iq/internal/repositories"
)

type SessionHandler struct {
	sessions repositories.SessionRepository
}

// NewSessionHandler accepts a nil repository when the session store is disabled.
func NewSessionHandler(sessions repositories.SessionRepository) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
	}
}

// HandleGetSession handles GET /sessions/:id
func (h *SessionHandler) HandleGetSession(c *fiber.Ctx) error {
	if h.sessions == nil {
		return respondError(c, fiber.StatusServiceUnavailable, "Session history is disabled")
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid session ID format")
	}

	session, err := h.sessions.FindByID(sessionID)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return respondError(c, fiber.StatusNotFound, "Session not found")
		}
		return respondError(c, fiber.StatusInternalServerError, "Failed to load session")
	}

	return c.JSON(models.SessionResponse{
		ID:        session.ID.String(),
		Operation: session.Operation,
		JobTitle:  session.JobTitle,
		Request:   json.RawMessage(session.Request),
		Response:  json.RawMessage(session.Response),
		CreatedAt: session.CreatedAt,
	})
}
