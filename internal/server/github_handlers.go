package server

import (
	"time"

	"gitmentor/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetGithubProfile handles GET /api/github/profile/:userId
func (s *Server) GetGithubProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	profile, err := s.githubRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		return respondErr(c, err)
	}
	if profile == nil {
		return respondErr(c, models.NewNotFoundError("GitHub profile", userID))
	}
	return c.JSON(profile)
}

// SyncContributions handles POST /api/github/sync-contributions
//
// Bulk upsert of per-day contribution rows keyed on (user, date). Records are
// applied one at a time; a failure stops the batch and reports how far it got.
func (s *Server) SyncContributions(c *fiber.Ctx) error {
	var req struct {
		UserID        uint `json:"userId"`
		Contributions []struct {
			Date        time.Time `json:"date"`
			CommitCount int       `json:"commitCount"`
			PRCount     int       `json:"prCount"`
			IssueCount  int       `json:"issueCount"`
			ReviewCount int       `json:"reviewCount"`
		} `json:"contributions"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.UserID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("userId is required"))
	}

	synced := 0
	for _, in := range req.Contributions {
		err := s.ingestService.RecordContribution(c.Context(), &models.GithubContribution{
			UserID:      req.UserID,
			Date:        in.Date,
			CommitCount: in.CommitCount,
			PRCount:     in.PRCount,
			IssueCount:  in.IssueCount,
			ReviewCount: in.ReviewCount,
		})
		if err != nil {
			return models.RespondWithError(c, models.StatusForError(err), err)
		}
		synced++
	}

	return c.JSON(fiber.Map{
		"synced": synced,
	})
}
