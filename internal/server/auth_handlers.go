package server

import (
	"gitmentor/internal/models"
	"gitmentor/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GithubCallback handles POST /api/auth/github-callback
//
// The payload is trusted as-is: token validation happens upstream in the
// OAuth proxy, this endpoint only ingests the resulting profile data.
func (s *Server) GithubCallback(c *fiber.Ctx) error {
	var in service.IngestInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	result, err := s.ingestService.Ingest(c.Context(), in)
	if err != nil {
		return respondErr(c, err)
	}

	// First-time and returning callbacks both answer 200; isNewUser in the
	// body tells the client which path it was.
	return c.JSON(fiber.Map{
		"userId":          result.User.ID,
		"username":        result.User.Username,
		"email":           result.User.Email,
		"role":            result.User.Role,
		"githubProfileId": result.GithubProfileID,
		"isNewUser":       result.IsNewUser,
		"missingFields":   result.MissingFields,
	})
}
