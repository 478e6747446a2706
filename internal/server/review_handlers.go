package server

import (
	"strconv"

	"gitmentor/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateReview handles POST /api/sessions/:sessionId/reviews
func (s *Server) CreateReview(c *fiber.Ctx) error {
	sessionID, err := s.parseID(c, "sessionId")
	if err != nil {
		return nil
	}

	var review models.SessionReview
	if err := c.BodyParser(&review); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	review.ID = 0
	review.SessionID = sessionID

	created, err := s.reviewService.Create(c.Context(), &review)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// ListSessionReviews handles GET /api/sessions/:sessionId/reviews
func (s *Server) ListSessionReviews(c *fiber.Ctx) error {
	sessionID, err := s.parseID(c, "sessionId")
	if err != nil {
		return nil
	}

	reviews, err := s.reviewService.ListBySession(c.Context(), sessionID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(reviews)
}

// ListMentorReviews handles GET /api/sessions/mentor/:mentorId/reviews?minRating=...&limit=...
func (s *Server) ListMentorReviews(c *fiber.Ctx) error {
	mentorID, err := s.parseID(c, "mentorId")
	if err != nil {
		return nil
	}

	var minRating *float64
	if raw := c.Query("minRating"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid minRating"))
		}
		minRating = &v
	}
	limit := c.QueryInt("limit", 100)

	reviews, err := s.reviewService.ListForMentor(c.Context(), mentorID, minRating, limit)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(reviews)
}
