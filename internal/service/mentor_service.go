package service

import (
	"context"

	"gitmentor/internal/middleware"
	"gitmentor/internal/models"
	"gitmentor/internal/repository"
)

// MentorService manages mentor profile lifecycle, including the role
// transition that happens when a contributor starts mentoring.
type MentorService struct {
	userRepo   repository.UserRepository
	mentorRepo repository.MentorProfileRepository
	skillRepo  repository.SkillRepository
}

// CreateMentorProfileInput carries the writable profile fields for creation.
type CreateMentorProfileInput struct {
	UserID                  uint
	Bio                     string
	Headline                string
	HourlyRate              float64
	YearsOfExperience       int
	AvailableForFreeSession bool
	MinSessionDuration      int
	MaxSessionDuration      int
	TeachingStyle           []string
	StudentLevelPreference  []string
}

// MentorProfileView is a mentor profile joined with its skill taxonomy.
type MentorProfileView struct {
	Profile         *models.MentorProfile         `json:"profile"`
	Skills          []models.MentorSkill          `json:"skills"`
	Expertise       []models.MentorExpertise      `json:"expertise"`
	Specializations []models.MentorSpecialization `json:"specializations"`
}

func NewMentorService(
	userRepo repository.UserRepository,
	mentorRepo repository.MentorProfileRepository,
	skillRepo repository.SkillRepository,
) *MentorService {
	return &MentorService{userRepo: userRepo, mentorRepo: mentorRepo, skillRepo: skillRepo}
}

// CreateProfile creates the user's mentor profile and promotes their role:
// an existing contributor becomes "both", anyone else becomes "mentor".
// A second profile for the same user is a conflict.
func (s *MentorService) CreateProfile(ctx context.Context, in CreateMentorProfileInput) (*models.MentorProfile, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	profile := &models.MentorProfile{
		UserID:                  user.ID,
		Bio:                     in.Bio,
		Headline:                in.Headline,
		HourlyRate:              in.HourlyRate,
		YearsOfExperience:       in.YearsOfExperience,
		IsAvailable:             true,
		AvailableForFreeSession: in.AvailableForFreeSession,
		MinSessionDuration:      in.MinSessionDuration,
		MaxSessionDuration:      in.MaxSessionDuration,
		TeachingStyle:           models.StringList(in.TeachingStyle),
		StudentLevelPreference:  models.StringList(in.StudentLevelPreference),
	}
	if profile.MinSessionDuration == 0 {
		profile.MinSessionDuration = 30
	}
	if profile.MaxSessionDuration == 0 {
		profile.MaxSessionDuration = 120
	}

	if err := s.mentorRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	newRole := models.RoleMentor
	if user.Role == models.RoleContributor {
		newRole = models.RoleBoth
	}
	if user.Role != newRole {
		if _, err := s.userRepo.UpdateFields(ctx, user.ID, map[string]interface{}{"role": newRole}); err != nil {
			return nil, err
		}
	}

	middleware.Logger.InfoContext(ctx, "mentor profile created",
		"user_id", user.ID, "profile_id", profile.ID, "role", newRole)
	return profile, nil
}

// UpdateProfile applies a partial update to the user's mentor profile.
func (s *MentorService) UpdateProfile(ctx context.Context, userID uint, fields map[string]interface{}) (*models.MentorProfile, error) {
	if len(fields) == 0 {
		return nil, models.NewValidationError("no updatable fields provided")
	}
	return s.mentorRepo.UpdateFields(ctx, userID, fields)
}

// GetFullProfile assembles the profile with its skills, expertise areas and
// specializations.
func (s *MentorService) GetFullProfile(ctx context.Context, profileID uint) (*MentorProfileView, error) {
	profile, err := s.mentorRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	skills, err := s.skillRepo.ListSkills(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	expertise, err := s.skillRepo.ListExpertise(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	specializations, err := s.skillRepo.ListSpecializations(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	return &MentorProfileView{
		Profile:         profile,
		Skills:          skills,
		Expertise:       expertise,
		Specializations: specializations,
	}, nil
}
