package server

import (
	"gitmentor/internal/models"
	"gitmentor/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetCompleteProfile handles GET /api/profile/complete/:userId
//
// Returns the user with all three profile facets. Facets the user does not
// have yet come back as null rather than 404: only the user itself is
// required to exist.
func (s *Server) GetCompleteProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	ctx := c.Context()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return respondErr(c, err)
	}
	githubProfile, err := s.githubRepo.GetByUserID(ctx, userID)
	if err != nil {
		return respondErr(c, err)
	}
	contributorProfile, err := s.contributorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return respondErr(c, err)
	}
	mentorProfile, err := s.mentorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return respondErr(c, err)
	}

	return c.JSON(fiber.Map{
		"user":               user,
		"githubProfile":      githubProfile,
		"contributorProfile": contributorProfile,
		"mentorProfile":      mentorProfile,
		"missingFields":      service.MissingFields(user, githubProfile),
	})
}

// UpdateUser handles PATCH /api/profile/user/:userId
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	var req struct {
		DisplayName       *string `json:"displayName"`
		Timezone          *string `json:"timezone"`
		PreferredLanguage *string `json:"preferredLanguage"`
		PhoneNumber       *string `json:"phoneNumber"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	fields := map[string]interface{}{}
	if req.DisplayName != nil {
		fields["display_name"] = *req.DisplayName
	}
	if req.Timezone != nil {
		fields["timezone"] = *req.Timezone
	}
	if req.PreferredLanguage != nil {
		fields["preferred_language"] = *req.PreferredLanguage
	}
	if req.PhoneNumber != nil {
		fields["phone_number"] = *req.PhoneNumber
	}
	if len(fields) == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("No updatable fields provided"))
	}

	user, err := s.userRepo.UpdateFields(c.Context(), userID, fields)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(user)
}

// CreateMentorProfile handles POST /api/profile/mentor/:userId
func (s *Server) CreateMentorProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	var req struct {
		Bio                     string   `json:"bio"`
		Headline                string   `json:"headline"`
		HourlyRate              float64  `json:"hourlyRate"`
		YearsOfExperience       int      `json:"yearsOfExperience"`
		AvailableForFreeSession bool     `json:"availableForFreeSession"`
		MinSessionDuration      int      `json:"minSessionDuration"`
		MaxSessionDuration      int      `json:"maxSessionDuration"`
		TeachingStyle           []string `json:"teachingStyle"`
		StudentLevelPreference  []string `json:"studentLevelPreference"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.mentorService.CreateProfile(c.Context(), service.CreateMentorProfileInput{
		UserID:                  userID,
		Bio:                     req.Bio,
		Headline:                req.Headline,
		HourlyRate:              req.HourlyRate,
		YearsOfExperience:       req.YearsOfExperience,
		AvailableForFreeSession: req.AvailableForFreeSession,
		MinSessionDuration:      req.MinSessionDuration,
		MaxSessionDuration:      req.MaxSessionDuration,
		TeachingStyle:           req.TeachingStyle,
		StudentLevelPreference:  req.StudentLevelPreference,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(profile)
}

// UpdateMentorProfile handles PATCH /api/profile/mentor/:userId
func (s *Server) UpdateMentorProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	var req struct {
		Bio                     *string  `json:"bio"`
		Headline                *string  `json:"headline"`
		HourlyRate              *float64 `json:"hourlyRate"`
		YearsOfExperience       *int     `json:"yearsOfExperience"`
		IsAvailable             *bool    `json:"isAvailable"`
		AvailableForFreeSession *bool    `json:"availableForFreeSession"`
		MinSessionDuration      *int     `json:"minSessionDuration"`
		MaxSessionDuration      *int     `json:"maxSessionDuration"`
		TeachingStyle           []string `json:"teachingStyle"`
		StudentLevelPreference  []string `json:"studentLevelPreference"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	fields := map[string]interface{}{}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.Headline != nil {
		fields["headline"] = *req.Headline
	}
	if req.HourlyRate != nil {
		fields["hourly_rate"] = *req.HourlyRate
	}
	if req.YearsOfExperience != nil {
		fields["years_of_experience"] = *req.YearsOfExperience
	}
	if req.IsAvailable != nil {
		fields["is_available"] = *req.IsAvailable
	}
	if req.AvailableForFreeSession != nil {
		fields["available_for_free_session"] = *req.AvailableForFreeSession
	}
	if req.MinSessionDuration != nil {
		fields["min_session_duration"] = *req.MinSessionDuration
	}
	if req.MaxSessionDuration != nil {
		fields["max_session_duration"] = *req.MaxSessionDuration
	}
	if req.TeachingStyle != nil {
		fields["teaching_style"] = models.StringList(req.TeachingStyle)
	}
	if req.StudentLevelPreference != nil {
		fields["student_level_preference"] = models.StringList(req.StudentLevelPreference)
	}

	profile, err := s.mentorService.UpdateProfile(c.Context(), userID, fields)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(profile)
}

// UpdateContributorProfile handles PATCH /api/profile/contributor/:userId
func (s *Server) UpdateContributorProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	var req struct {
		Bio                      *string  `json:"bio"`
		Interests                []string `json:"interests"`
		CurrentSkillLevel        *string  `json:"currentSkillLevel"`
		LearningGoals            []string `json:"learningGoals"`
		WorkingOnRepos           []string `json:"workingOnRepos"`
		TargetCompetitions       []string `json:"targetCompetitions"`
		PreferredSessionDuration *int     `json:"preferredSessionDuration"`
		PreferredTeachingStyle   []string `json:"preferredTeachingStyle"`
		BudgetPerHour            *float64 `json:"budgetPerHour"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	fields := map[string]interface{}{}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.Interests != nil {
		fields["interests"] = models.StringList(req.Interests)
	}
	if req.CurrentSkillLevel != nil {
		fields["current_skill_level"] = *req.CurrentSkillLevel
	}
	if req.LearningGoals != nil {
		fields["learning_goals"] = models.StringList(req.LearningGoals)
	}
	if req.WorkingOnRepos != nil {
		fields["working_on_repos"] = models.StringList(req.WorkingOnRepos)
	}
	if req.TargetCompetitions != nil {
		fields["target_competitions"] = models.StringList(req.TargetCompetitions)
	}
	if req.PreferredSessionDuration != nil {
		fields["preferred_session_duration"] = *req.PreferredSessionDuration
	}
	if req.PreferredTeachingStyle != nil {
		fields["preferred_teaching_style"] = models.StringList(req.PreferredTeachingStyle)
	}
	if req.BudgetPerHour != nil {
		fields["budget_per_hour"] = *req.BudgetPerHour
	}
	if len(fields) == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("No updatable fields provided"))
	}

	profile, err := s.contributorRepo.UpdateFields(c.Context(), userID, fields)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(profile)
}
