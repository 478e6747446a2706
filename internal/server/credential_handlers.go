package server

import (
	"gitmentor/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetCompleteMentorProfile handles GET /api/mentor/:mentorProfileId/complete
func (s *Server) GetCompleteMentorProfile(c *fiber.Ctx) error {
	profileID, err := s.parseID(c, "mentorProfileId")
	if err != nil {
		return nil
	}
	ctx := c.Context()

	view, err := s.mentorService.GetFullProfile(ctx, profileID)
	if err != nil {
		return respondErr(c, err)
	}
	experience, err := s.credentialRepo.ListExperience(ctx, profileID)
	if err != nil {
		return respondErr(c, err)
	}
	certifications, err := s.credentialRepo.ListCertifications(ctx, profileID)
	if err != nil {
		return respondErr(c, err)
	}
	competitions, err := s.credentialRepo.ListCompetitions(ctx, profileID)
	if err != nil {
		return respondErr(c, err)
	}
	opensource, err := s.credentialRepo.ListOpenSource(ctx, profileID)
	if err != nil {
		return respondErr(c, err)
	}
	badges, err := s.credentialRepo.ListBadges(ctx, profileID)
	if err != nil {
		return respondErr(c, err)
	}
	availability, err := s.credentialRepo.ListAvailability(ctx, profileID)
	if err != nil {
		return respondErr(c, err)
	}

	return c.JSON(fiber.Map{
		"profile":         view.Profile,
		"skills":          view.Skills,
		"expertise":       view.Expertise,
		"specializations": view.Specializations,
		"experience":      experience,
		"certifications":  certifications,
		"competitions":    competitions,
		"opensource":      opensource,
		"badges":          badges,
		"availability":    availability,
	})
}

// UpsertSkills handles POST /api/mentor/:mentorProfileId/skills
//
// Bulk upsert: each entry is applied independently, so a failure partway
// leaves earlier entries in place and reports the count that succeeded.
func (s *Server) UpsertSkills(c *fiber.Ctx) error {
	profileID, err := s.parseID(c, "mentorProfileId")
	if err != nil {
		return nil
	}

	var req struct {
		Skills []models.MentorSkill `json:"skills"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	upserted := 0
	for i := range req.Skills {
		skill := req.Skills[i]
		skill.ID = 0
		skill.MentorProfileID = profileID
		if skill.SkillName == "" {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("skillName is required"))
		}
		if err := s.skillRepo.UpsertSkill(c.Context(), &skill); err != nil {
			return respondErr(c, err)
		}
		upserted++
	}
	return c.JSON(fiber.Map{"upserted": upserted})
}

// ListSkills handles GET /api/mentor/:mentorProfileId/skills
func (s *Server) ListSkills(c *fiber.Ctx) error {
	profileID, err := s.parseID(c, "mentorProfileId")
	if err != nil {
		return nil
	}
	skills, err := s.skillRepo.ListSkills(c.Context(), profileID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(skills)
}

// DeleteSkill handles DELETE /api/mentor/:mentorProfileId/skills/:skillId
func (s *Server) DeleteSkill(c *fiber.Ctx) error {
	if _, err := s.parseID(c, "mentorProfileId"); err != nil {
		return nil
	}
	skillID, err := s.parseID(c, "skillId")
	if err != nil {
		return nil
	}
	if err := s.skillRepo.DeleteSkill(c.Context(), skillID); err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpsertExpertise handles POST /api/mentor/:mentorProfileId/expertise
func (s *Server) UpsertExpertise(c *fiber.Ctx) error {
	profileID, err := s.parseID(c, "mentorProfileId")
	if err != nil {
		return nil
	}

	var req struct {
		Expertise []models.MentorExpertise `json:"expertise"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	upserted := 0
	for i := range req.Expertise {
		exp := req.Expertise[i]
		exp.ID = 0
		exp.MentorProfileID = profileID
		if exp.ExpertiseArea == "" {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("expertiseArea is required"))
		}
		if err := s.skillRepo.UpsertExpertise(c.Context(), &exp); err != nil {
			return respondErr(c, err)
		}
		upserted++
	}
	return c.JSON(fiber.Map{"upserted": upserted})
}

// ListExpertise handles GET /api/mentor/:mentorProfileId/expertise
func (s *Server) ListExpertise(c *fiber.Ctx) error {
	profileID, err := s.parseID(c, "mentorProfileId")
	if err != nil {
		return nil
	}
	expertise, err := s.skillRepo.ListExpertise(c.Context(), profileID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(expertise)
}

// UpsertSpecializations handles POST /api/mentor/:mentorProfileId/specializations
func (s *Server) UpsertSpecializations(c *fiber.Ctx) error {
	profileID, err := s.parseID(c, "mentorProfileId")
	if err != nil {
		return nil
	}

	var req struct {
		Specializations []models.MentorSpecialization `json:"specializations"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	upserted := 0
	for i := range req.Specializations {
		spec := req.Specializations[i]
		spec.ID = 0
		spec.MentorProfileID = profileID
		if spec.SpecializationType == "" {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("specializationType is required"))
		}
		if err := s.skillRepo.UpsertSpecialization(c.Context(), &spec); err != nil {
			return respondErr(c, err)
		}
		upserted++
	}
	return c.JSON(fiber.Map{"upserted": upserted})
}

// ListSpecializations handles GET /api/mentor/:mentorProfileId/specializations
func (s *Server) ListSpecializations(c *fiber.Ctx) error {
	profileID, err := s.parseID(c, "mentorProfileId")
	if err != nil {
		return nil
	}
	specializations, err := s.skillRepo.ListSpecializations(c.Context(), profileID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(specializations)
}

// CreateExperience handles POST /api/mentor/:mentorProfileId/experience
func (s *Server) CreateExperience(c *fiber.Ctx) error {
	profileID, err := s.parseID(c, "mentorProfileId")
	if err != nil {
		return nil
	}

	var exp models.WorkExperience
	if err := c.BodyParser(&exp); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if exp.CompanyName == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("companyName is required"))
	}
	exp.ID = 0
	exp.MentorProfileID = profileID

	if err := s.credentialRepo.CreateExperience(c.Context(), &exp); err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(exp)
}

// ListExperience handles GET /api/mentor/:mentorProfileId/experience
func (s *Server) ListExperience(c *fiber.Ctx) error {
	profileID, err := s.parseID(c, "mentorProfileId")
	if err != nil {
		return nil
	}
	experience, err := s.credentialRepo.ListExperience(c.Context(), profileID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(experience)
}

// UpdateExperience handles PATCH /api/mentor/:mentorProfileId/experience/:experienceId
func (s *Server) UpdateExperience(c *fiber.Ctx) error {
	if _, err := s.parseID(c, "mentorProfileId"); err != nil {
		return nil
	}
	experienceID, err := s.parseID(c, "experienceId")
	if err != nil {
		return nil
	}

	var req struct {
		JobTitle         *string  `json:"jobTitle"`
		CompanyTier      *string  `json:"companyTier"`
		IsCurrent        *bool    `json:"isCurrent"`
		Description      *string  `json:"description"`
		TechnologiesUsed []string `json:"technologiesUsed"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	fields := map[string]interface{}{}
	if req.JobTitle != nil {
		fields["job_title"] = *req.JobTitle
	}
	if req.CompanyTier != nil {
		fields["company_tier"] = *req.CompanyTier
	}
	if req.IsCurrent != nil {
		fields["is_current"] = *req.IsCurrent
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.TechnologiesUsed != nil {
		fields["technologies_used"] = models.StringList(req.TechnologiesUsed)
	}
	if len(fields) == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("No updatable fields provided"))
	}

	exp, err := s.credentialRepo.UpdateExperience(c.Context(), experienceID, fields)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(exp)
}

// DeleteExperience handles DELETE /api/mentor/:mentorProfileId/experience/:experienceId
func (s *Server) DeleteExperience(c *fiber.Ctx) error {
	if _, err := s.parseID(c, "mentorProfileId"); err != nil {
		return nil
	}
	experienceID, err := s.parseID(c, "experienceId")
	if err != nil {
		return nil
	}
	if err := s.credentialRepo.DeleteExperience(c.Context(), experienceID); err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateCertification handles POST /api/mentor/:mentorProfileId/certifications
func (s *Server) CreateCertification(c *fiber.Ctx) error {
	profileID, err := s.parseID(c, "mentorProfileId")
	if err != nil {
		return nil
	}

	var cert models.Certification
	if err := c.BodyParser(&cert); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if cert.CertificationName == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("certificationName is required"))
	}
	cert.ID = 0
	cert.MentorProfileID = profileID

	if err := s.credentialRepo.CreateCertification(c.Context(), &cert); err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cert)
}

// ListCertifications handles GET /api/mentor/:mentorProfileId/certifications
func (s *Server) ListCertifications(c *fiber.Ctx) error {
	profileID, err := s.parseID(c, "mentorProfileId")
	if err != nil {
		return nil
	}
	certifications, err := s.credentialRepo.ListCertifications(c.Context(), profileID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(certifications)
}

// DeleteCertification handles DELETE /api/mentor/:mentorProfileId/certifications/:certificationId
func (s *Server) DeleteCertification(c *fiber.Ctx) error {
	if _, err := s.parseID(c, "mentorProfileId"); err != nil {
		return nil
	}
	certificationID, err := s.parseID(c, "certificationId")
	if err != nil {
		return nil
	}
	if err := s.credentialRepo.DeleteCertification(c.Context(), certificationID); err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateCompetition handles POST /api/mentor/:mentorProfileId/competitions
func (s *Server) CreateCompetition(c *fiber.Ctx) error {
	profileID, err := s.parseID(c, "mentorProfileId")
	if err != nil {
		return nil
	}

	var comp models.CompetitionExperience
	if err := c.BodyParser(&comp); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if comp.CompetitionName == "" || comp.Year == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("competitionName and year are required"))
	}
	comp.ID = 0
	comp.MentorProfileID = profileID

	if err := s.credentialRepo.CreateCompetition(c.Context(), &comp); err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comp)
}

// ListCompetitions handles GET /api/mentor/:mentorProfileId/competitions
func (s *Server) ListCompetitions(c *fiber.Ctx) error {
	profileID, err := s.parseID(c, "mentorProfileId")
	if err != nil {
		return nil
	}
	competitions, err := s.credentialRepo.ListCompetitions(c.Context(), profileID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(competitions)
}

// UpdateCompetition handles PATCH /api/mentor/:mentorProfileId/competitions/:competitionId
func (s *Server) UpdateCompetition(c *fiber.Ctx) error {
	if _, err := s.parseID(c, "mentorProfileId"); err != nil {
		return nil
	}
	competitionID, err := s.parseID(c, "competitionId")
	if err != nil {
		return nil
	}

	var req struct {
		Role             *string  `json:"role"`
		Organization     *string  `json:"organization"`
		ProjectName      *string  `json:"projectName"`
		AchievementLevel *string  `json:"achievementLevel"`
		ProjectURL       *string  `json:"projectUrl"`
		TechnologiesUsed []string `json:"technologiesUsed"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	fields := map[string]interface{}{}
	if req.Role != nil {
		fields["role"] = *req.Role
	}
	if req.Organization != nil {
		fields["organization"] = *req.Organization
	}
	if req.ProjectName != nil {
		fields["project_name"] = *req.ProjectName
	}
	if req.AchievementLevel != nil {
		fields["achievement_level"] = *req.AchievementLevel
	}
	if req.ProjectURL != nil {
		fields["project_url"] = *req.ProjectURL
	}
	if req.TechnologiesUsed != nil {
		fields["technologies_used"] = models.StringList(req.TechnologiesUsed)
	}
	if len(fields) == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("No updatable fields provided"))
	}

	comp, err := s.credentialRepo.UpdateCompetition(c.Context(), competitionID, fields)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(comp)
}

// DeleteCompetition handles DELETE /api/mentor/:mentorProfileId/competitions/:competitionId
func (s *Server) DeleteCompetition(c *fiber.Ctx) error {
	if _, err := s.parseID(c, "mentorProfileId"); err != nil {
		return nil
	}
	competitionID, err := s.parseID(c, "competitionId")
	if err != nil {
		return nil
	}
	if err := s.credentialRepo.DeleteCompetition(c.Context(), competitionID); err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateOpenSource handles POST /api/mentor/:mentorProfileId/opensource
func (s *Server) CreateOpenSource(c *fiber.Ctx) error {
	profileID, err := s.parseID(c, "mentorProfileId")
	if err != nil {
		return nil
	}

	var ach models.OpenSourceAchievement
	if err := c.BodyParser(&ach); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if ach.AchievementType == "" || ach.RepoFullName == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("achievementType and repoFullName are required"))
	}
	ach.ID = 0
	ach.MentorProfileID = profileID

	if err := s.credentialRepo.CreateOpenSource(c.Context(), &ach); err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ach)
}

// ListOpenSource handles GET /api/mentor/:mentorProfileId/opensource
func (s *Server) ListOpenSource(c *fiber.Ctx) error {
	profileID, err := s.parseID(c, "mentorProfileId")
	if err != nil {
		return nil
	}
	achievements, err := s.credentialRepo.ListOpenSource(c.Context(), profileID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(achievements)
}

// CreateBadge handles POST /api/mentor/:mentorProfileId/badges
func (s *Server) CreateBadge(c *fiber.Ctx) error {
	profileID, err := s.parseID(c, "mentorProfileId")
	if err != nil {
		return nil
	}

	var badge models.MentorBadge
	if err := c.BodyParser(&badge); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if badge.BadgeName == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("badgeName is required"))
	}
	badge.ID = 0
	badge.MentorProfileID = profileID

	if err := s.credentialRepo.CreateBadge(c.Context(), &badge); err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(badge)
}

// ListBadges handles GET /api/mentor/:mentorProfileId/badges
func (s *Server) ListBadges(c *fiber.Ctx) error {
	profileID, err := s.parseID(c, "mentorProfileId")
	if err != nil {
		return nil
	}
	badges, err := s.credentialRepo.ListBadges(c.Context(), profileID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(badges)
}

// ReplaceAvailability handles PUT /api/mentor/:mentorProfileId/availability
//
// Replaces the entire recurring schedule with the submitted one.
func (s *Server) ReplaceAvailability(c *fiber.Ctx) error {
	profileID, err := s.parseID(c, "mentorProfileId")
	if err != nil {
		return nil
	}

	var req struct {
		Availability []models.MentorAvailability `json:"availability"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	for _, slot := range req.Availability {
		if slot.DayOfWeek < 0 || slot.DayOfWeek > 6 {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("dayOfWeek must be between 0 and 6"))
		}
		if slot.StartTime == "" || slot.EndTime == "" {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("startTime and endTime are required"))
		}
	}

	schedule, err := s.credentialRepo.ReplaceAvailability(c.Context(), profileID, req.Availability)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(schedule)
}

// ListAvailability handles GET /api/mentor/:mentorProfileId/availability
func (s *Server) ListAvailability(c *fiber.Ctx) error {
	profileID, err := s.parseID(c, "mentorProfileId")
	if err != nil {
		return nil
	}
	availability, err := s.credentialRepo.ListAvailability(c.Context(), profileID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(availability)
}

// CreateUnavailableDate handles POST /api/mentor/:mentorProfileId/unavailable
func (s *Server) CreateUnavailableDate(c *fiber.Ctx) error {
	profileID, err := s.parseID(c, "mentorProfileId")
	if err != nil {
		return nil
	}

	var date models.MentorUnavailableDate
	if err := c.BodyParser(&date); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if date.Date.IsZero() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("date is required"))
	}
	date.ID = 0
	date.MentorProfileID = profileID

	if err := s.credentialRepo.CreateUnavailableDate(c.Context(), &date); err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(date)
}

// ListUnavailableDates handles GET /api/mentor/:mentorProfileId/unavailable
func (s *Server) ListUnavailableDates(c *fiber.Ctx) error {
	profileID, err := s.parseID(c, "mentorProfileId")
	if err != nil {
		return nil
	}
	dates, err := s.credentialRepo.ListUnavailableDates(c.Context(), profileID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(dates)
}
