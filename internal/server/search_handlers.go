package server

import (
	"gitmentor/internal/models"
	"gitmentor/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SearchMentors handles POST /api/search/mentors
//
// An empty filter is valid and returns all available mentors.
func (s *Server) SearchMentors(c *fiber.Ctx) error {
	var in service.SearchInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	results, err := s.searchService.SearchMentors(c.Context(), in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{
		"count":   len(results),
		"mentors": results,
	})
}

// TopMentors handles GET /api/search/top-mentors?technology=...&limit=...
func (s *Server) TopMentors(c *fiber.Ctx) error {
	technology := c.Query("technology")
	limit := c.QueryInt("limit", 10)

	mentors, err := s.searchService.TopMentors(c.Context(), technology, limit)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(mentors)
}
