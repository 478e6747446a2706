package repository

import (
	"context"

	"gitmentor/internal/models"

	"gorm.io/gorm"
)

// CredentialRepository defines persistence operations for a mentor's
// supporting records: work experience, certifications, competitions, open
// source achievements, badges and availability windows. These are inert data
// with no business logic beyond storage.
type CredentialRepository interface {
	CreateExperience(ctx context.Context, e *models.WorkExperience) error
	ListExperience(ctx context.Context, mentorProfileID uint) ([]models.WorkExperience, error)
	UpdateExperience(ctx context.Context, id uint, fields map[string]interface{}) (*models.WorkExperience, error)
	DeleteExperience(ctx context.Context, id uint) error

	CreateCertification(ctx context.Context, c *models.Certification) error
	ListCertifications(ctx context.Context, mentorProfileID uint) ([]models.Certification, error)
	DeleteCertification(ctx context.Context, id uint) error

	CreateCompetition(ctx context.Context, c *models.CompetitionExperience) error
	ListCompetitions(ctx context.Context, mentorProfileID uint) ([]models.CompetitionExperience, error)
	UpdateCompetition(ctx context.Context, id uint, fields map[string]interface{}) (*models.CompetitionExperience, error)
	DeleteCompetition(ctx context.Context, id uint) error

	CreateOpenSource(ctx context.Context, a *models.OpenSourceAchievement) error
	ListOpenSource(ctx context.Context, mentorProfileID uint) ([]models.OpenSourceAchievement, error)

	CreateBadge(ctx context.Context, b *models.MentorBadge) error
	ListBadges(ctx context.Context, mentorProfileID uint) ([]models.MentorBadge, error)

	ReplaceAvailability(ctx context.Context, mentorProfileID uint, schedule []models.MentorAvailability) ([]models.MentorAvailability, error)
	ListAvailability(ctx context.Context, mentorProfileID uint) ([]models.MentorAvailability, error)

	CreateUnavailableDate(ctx context.Context, d *models.MentorUnavailableDate) error
	ListUnavailableDates(ctx context.Context, mentorProfileID uint) ([]models.MentorUnavailableDate, error)
}

type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository returns a new CredentialRepository implementation.
func NewCredentialRepository(db *gorm.DB) CredentialRepository {
	return &credentialRepository{db: db}
}

func (r *credentialRepository) CreateExperience(ctx context.Context, e *models.WorkExperience) error {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *credentialRepository) ListExperience(ctx context.Context, mentorProfileID uint) ([]models.WorkExperience, error) {
	var out []models.WorkExperience
	if err := r.db.WithContext(ctx).Where("mentor_profile_id = ?", mentorProfileID).Find(&out).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return out, nil
}

func (r *credentialRepository) UpdateExperience(ctx context.Context, id uint, fields map[string]interface{}) (*models.WorkExperience, error) {
	res := r.db.WithContext(ctx).Model(&models.WorkExperience{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError("Experience", id)
	}
	var e models.WorkExperience
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return &e, nil
}

func (r *credentialRepository) DeleteExperience(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.WorkExperience{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *credentialRepository) CreateCertification(ctx context.Context, c *models.Certification) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *credentialRepository) ListCertifications(ctx context.Context, mentorProfileID uint) ([]models.Certification, error) {
	var out []models.Certification
	if err := r.db.WithContext(ctx).Where("mentor_profile_id = ?", mentorProfileID).Find(&out).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return out, nil
}

func (r *credentialRepository) DeleteCertification(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Certification{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *credentialRepository) CreateCompetition(ctx context.Context, c *models.CompetitionExperience) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *credentialRepository) ListCompetitions(ctx context.Context, mentorProfileID uint) ([]models.CompetitionExperience, error) {
	var out []models.CompetitionExperience
	if err := r.db.WithContext(ctx).Where("mentor_profile_id = ?", mentorProfileID).Find(&out).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return out, nil
}

func (r *credentialRepository) UpdateCompetition(ctx context.Context, id uint, fields map[string]interface{}) (*models.CompetitionExperience, error) {
	res := r.db.WithContext(ctx).Model(&models.CompetitionExperience{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError("Competition", id)
	}
	var c models.CompetitionExperience
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return &c, nil
}

func (r *credentialRepository) DeleteCompetition(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.CompetitionExperience{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *credentialRepository) CreateOpenSource(ctx context.Context, a *models.OpenSourceAchievement) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *credentialRepository) ListOpenSource(ctx context.Context, mentorProfileID uint) ([]models.OpenSourceAchievement, error) {
	var out []models.OpenSourceAchievement
	if err := r.db.WithContext(ctx).Where("mentor_profile_id = ?", mentorProfileID).Find(&out).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return out, nil
}

func (r *credentialRepository) CreateBadge(ctx context.Context, b *models.MentorBadge) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *credentialRepository) ListBadges(ctx context.Context, mentorProfileID uint) ([]models.MentorBadge, error) {
	var out []models.MentorBadge
	if err := r.db.WithContext(ctx).Where("mentor_profile_id = ?", mentorProfileID).Find(&out).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return out, nil
}

// ReplaceAvailability swaps the mentor's whole recurring schedule: delete all
// existing windows, then insert the new set. Runs in a transaction so a failed
// insert does not leave the mentor with an empty schedule.
func (r *credentialRepository) ReplaceAvailability(ctx context.Context, mentorProfileID uint, schedule []models.MentorAvailability) ([]models.MentorAvailability, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("mentor_profile_id = ?", mentorProfileID).Delete(&models.MentorAvailability{}).Error; err != nil {
			return err
		}
		for i := range schedule {
			schedule[i].ID = 0
			schedule[i].MentorProfileID = mentorProfileID
		}
		if len(schedule) == 0 {
			return nil
		}
		return tx.Create(&schedule).Error
	})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return schedule, nil
}

func (r *credentialRepository) ListAvailability(ctx context.Context, mentorProfileID uint) ([]models.MentorAvailability, error) {
	var out []models.MentorAvailability
	if err := r.db.WithContext(ctx).Where("mentor_profile_id = ?", mentorProfileID).Find(&out).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return out, nil
}

func (r *credentialRepository) CreateUnavailableDate(ctx context.Context, d *models.MentorUnavailableDate) error {
	if err := r.db.WithContext(ctx).Create(d).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *credentialRepository) ListUnavailableDates(ctx context.Context, mentorProfileID uint) ([]models.MentorUnavailableDate, error) {
	var out []models.MentorUnavailableDate
	if err := r.db.WithContext(ctx).Where("mentor_profile_id = ?", mentorProfileID).Find(&out).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return out, nil
}
