package server

import (
	"gitmentor/internal/models"
	"gitmentor/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateSession handles POST /api/sessions
func (s *Server) CreateSession(c *fiber.Ctx) error {
	var session models.Session
	if err := c.BodyParser(&session); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	session.ID = 0

	created, err := s.sessionService.Create(c.Context(), &session)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetSession handles GET /api/sessions/:sessionId
func (s *Server) GetSession(c *fiber.Ctx) error {
	sessionID, err := s.parseID(c, "sessionId")
	if err != nil {
		return nil
	}

	session, err := s.sessionService.Get(c.Context(), sessionID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(session)
}

// ListUserSessions handles GET /api/sessions/user/:userId?role=...&status=...
func (s *Server) ListUserSessions(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	role := c.Query("role")
	status := models.SessionStatus(c.Query("status"))

	sessions, err := s.sessionService.ListByUser(c.Context(), userID, role, status)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(sessions)
}

// UpdateSessionStatus handles PATCH /api/sessions/:sessionId/status
func (s *Server) UpdateSessionStatus(c *fiber.Ctx) error {
	sessionID, err := s.parseID(c, "sessionId")
	if err != nil {
		return nil
	}

	var req struct {
		Status models.SessionStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	session, err := s.sessionService.UpdateStatus(c.Context(), sessionID, req.Status)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(session)
}

// UpdateSessionOutcome handles PATCH /api/sessions/:sessionId/outcome
func (s *Server) UpdateSessionOutcome(c *fiber.Ctx) error {
	sessionID, err := s.parseID(c, "sessionId")
	if err != nil {
		return nil
	}

	var in service.OutcomeInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	session, err := s.sessionService.UpdateOutcome(c.Context(), sessionID, in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(session)
}

// GetSessionStats handles GET /api/sessions/stats/:userId?role=...
func (s *Server) GetSessionStats(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	stats, err := s.sessionService.Stats(c.Context(), userID, c.Query("role"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(stats)
}
