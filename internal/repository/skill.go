package repository

import (
	"context"
	"errors"
	"time"

	"gitmentor/internal/models"
	"gitmentor/internal/observability"

	"gorm.io/gorm"
)

// SkillRepository defines persistence operations for mentor skills,
// expertise areas and specializations.
//
// The bulk upsert operations are per-record: a failing record leaves the
// records upserted before it committed. Callers relying on all-or-nothing
// semantics must wrap the call in their own transaction.
type SkillRepository interface {
	UpsertSkill(ctx context.Context, skill *models.MentorSkill) error
	ListSkills(ctx context.Context, mentorProfileID uint) ([]models.MentorSkill, error)
	DeleteSkill(ctx context.Context, skillID uint) error
	FindMatching(ctx context.Context, mentorProfileIDs []uint, skillNames []string) ([]models.MentorSkill, error)
	FindForTechnology(ctx context.Context, mentorProfileIDs []uint, technology string) ([]models.MentorSkill, error)

	UpsertExpertise(ctx context.Context, expertise *models.MentorExpertise) error
	ListExpertise(ctx context.Context, mentorProfileID uint) ([]models.MentorExpertise, error)

	UpsertSpecialization(ctx context.Context, specialization *models.MentorSpecialization) error
	ListSpecializations(ctx context.Context, mentorProfileID uint) ([]models.MentorSpecialization, error)
}

type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository returns a new SkillRepository implementation.
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

// UpsertSkill creates or replaces the record keyed on (mentor profile, skill name).
func (r *skillRepository) UpsertSkill(ctx context.Context, skill *models.MentorSkill) error {
	var existing models.MentorSkill
	err := r.db.WithContext(ctx).
		Where("mentor_profile_id = ? AND skill_name = ?", skill.MentorProfileID, skill.SkillName).
		First(&existing).Error
	switch {
	case err == nil:
		skill.ID = existing.ID
	case errors.Is(err, gorm.ErrRecordNotFound):
		// fresh record
	default:
		return models.NewInternalError(err)
	}

	if err := r.db.WithContext(ctx).Save(skill).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *skillRepository) ListSkills(ctx context.Context, mentorProfileID uint) ([]models.MentorSkill, error) {
	var skills []models.MentorSkill
	if err := r.db.WithContext(ctx).Where("mentor_profile_id = ?", mentorProfileID).Find(&skills).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return skills, nil
}

func (r *skillRepository) DeleteSkill(ctx context.Context, skillID uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.MentorSkill{}, skillID).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// FindMatching returns all skill records whose mentor profile is in the
// candidate set and whose name is in the requested technology list.
func (r *skillRepository) FindMatching(ctx context.Context, mentorProfileIDs []uint, skillNames []string) ([]models.MentorSkill, error) {
	defer observability.ObserveQuery("select", "mentor_skills", time.Now())

	if len(mentorProfileIDs) == 0 || len(skillNames) == 0 {
		return nil, nil
	}

	var skills []models.MentorSkill
	err := r.db.WithContext(ctx).
		Where("mentor_profile_id IN ?", mentorProfileIDs).
		Where("skill_name IN ?", skillNames).
		Find(&skills).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return skills, nil
}

// FindForTechnology returns skill records for a single technology across the
// candidate set, best-rated first.
func (r *skillRepository) FindForTechnology(ctx context.Context, mentorProfileIDs []uint, technology string) ([]models.MentorSkill, error) {
	if len(mentorProfileIDs) == 0 {
		return nil, nil
	}

	var skills []models.MentorSkill
	err := r.db.WithContext(ctx).
		Where("mentor_profile_id IN ?", mentorProfileIDs).
		Where("skill_name = ?", technology).
		Order("avg_rating_for_skill DESC").
		Find(&skills).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return skills, nil
}

// UpsertExpertise creates or replaces the record keyed on
// (mentor profile, expertise area, sub-expertise).
func (r *skillRepository) UpsertExpertise(ctx context.Context, expertise *models.MentorExpertise) error {
	var existing models.MentorExpertise
	err := r.db.WithContext(ctx).
		Where("mentor_profile_id = ? AND expertise_area = ? AND sub_expertise = ?",
			expertise.MentorProfileID, expertise.ExpertiseArea, expertise.SubExpertise).
		First(&existing).Error
	switch {
	case err == nil:
		expertise.ID = existing.ID
	case errors.Is(err, gorm.ErrRecordNotFound):
		// fresh record
	default:
		return models.NewInternalError(err)
	}

	if err := r.db.WithContext(ctx).Save(expertise).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *skillRepository) ListExpertise(ctx context.Context, mentorProfileID uint) ([]models.MentorExpertise, error) {
	var expertise []models.MentorExpertise
	if err := r.db.WithContext(ctx).Where("mentor_profile_id = ?", mentorProfileID).Find(&expertise).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return expertise, nil
}

// UpsertSpecialization creates or replaces the record keyed on
// (mentor profile, specialization type).
func (r *skillRepository) UpsertSpecialization(ctx context.Context, specialization *models.MentorSpecialization) error {
	var existing models.MentorSpecialization
	err := r.db.WithContext(ctx).
		Where("mentor_profile_id = ? AND specialization_type = ?",
			specialization.MentorProfileID, specialization.SpecializationType).
		First(&existing).Error
	switch {
	case err == nil:
		specialization.ID = existing.ID
	case errors.Is(err, gorm.ErrRecordNotFound):
		// fresh record
	default:
		return models.NewInternalError(err)
	}

	if err := r.db.WithContext(ctx).Save(specialization).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *skillRepository) ListSpecializations(ctx context.Context, mentorProfileID uint) ([]models.MentorSpecialization, error) {
	var specializations []models.MentorSpecialization
	if err := r.db.WithContext(ctx).Where("mentor_profile_id = ?", mentorProfileID).Find(&specializations).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return specializations, nil
}
