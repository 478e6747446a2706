package repository

import (
	"context"
	"errors"
	"time"

	"gitmentor/internal/cache"
	"gitmentor/internal/models"
	"gitmentor/internal/observability"

	"gorm.io/gorm"
)

// RatingSet carries the six aggregated rating dimensions written back to a
// mentor profile in one overwrite.
type RatingSet struct {
	Overall        float64
	Clarity        float64
	Patience       float64
	ResponseTime   float64
	ProblemSolving float64
	Followup       float64
}

// MentorFilter is the SQL-evaluable part of a mentor search predicate.
// Nil fields are skipped.
type MentorFilter struct {
	MinRating     *float64
	MaxHourlyRate *float64
}

// MentorProfileRepository defines persistence operations for mentor profiles.
type MentorProfileRepository interface {
	GetByID(ctx context.Context, id uint) (*models.MentorProfile, error)
	GetByUserID(ctx context.Context, userID uint) (*models.MentorProfile, error)
	Create(ctx context.Context, profile *models.MentorProfile) error
	UpdateFields(ctx context.Context, userID uint, fields map[string]interface{}) (*models.MentorProfile, error)
	FindAvailable(ctx context.Context, filter MentorFilter) ([]models.MentorProfile, error)
	TopByRating(ctx context.Context, limit int) ([]models.MentorProfile, error)
	IncrementCounter(ctx context.Context, profileID uint, column string) error
	UpdateRatings(ctx context.Context, profileID uint, ratings RatingSet) error
}

type mentorProfileRepository struct {
	db *gorm.DB
}

// NewMentorProfileRepository returns a new MentorProfileRepository implementation.
func NewMentorProfileRepository(db *gorm.DB) MentorProfileRepository {
	return &mentorProfileRepository{db: db}
}

func (r *mentorProfileRepository) GetByID(ctx context.Context, id uint) (*models.MentorProfile, error) {
	var profile models.MentorProfile
	if err := r.db.WithContext(ctx).First(&profile, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Mentor profile", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

// GetByUserID returns (nil, nil) when the user has no mentor profile.
func (r *mentorProfileRepository) GetByUserID(ctx context.Context, userID uint) (*models.MentorProfile, error) {
	var profile models.MentorProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

func (r *mentorProfileRepository) Create(ctx context.Context, profile *models.MentorProfile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Mentor profile already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// UpdateFields applies a partial update keyed on the owning user and returns
// the reloaded profile.
func (r *mentorProfileRepository) UpdateFields(ctx context.Context, userID uint, fields map[string]interface{}) (*models.MentorProfile, error) {
	res := r.db.WithContext(ctx).Model(&models.MentorProfile{}).Where("user_id = ?", userID).Updates(fields)
	if res.Error != nil {
		return nil, models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError("Mentor profile", userID)
	}
	cache.InvalidateMentorProfile(ctx, userID)
	return r.GetByUserID(ctx, userID)
}

// FindAvailable returns available mentor profiles passing the SQL-evaluable
// filter, in store natural order.
func (r *mentorProfileRepository) FindAvailable(ctx context.Context, filter MentorFilter) ([]models.MentorProfile, error) {
	defer observability.ObserveQuery("select", "mentor_profiles", time.Now())

	q := r.db.WithContext(ctx).Where("is_available = ?", true)
	if filter.MinRating != nil {
		q = q.Where("overall_rating >= ?", *filter.MinRating)
	}
	if filter.MaxHourlyRate != nil {
		q = q.Where("hourly_rate <= ?", *filter.MaxHourlyRate)
	}

	var profiles []models.MentorProfile
	if err := q.Find(&profiles).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}

// TopByRating returns available mentors ordered by overall rating, ties broken
// by completed session count.
func (r *mentorProfileRepository) TopByRating(ctx context.Context, limit int) ([]models.MentorProfile, error) {
	defer observability.ObserveQuery("select", "mentor_profiles", time.Now())

	var profiles []models.MentorProfile
	err := r.db.WithContext(ctx).
		Where("is_available = ?", true).
		Order("overall_rating DESC").
		Order("completed_sessions DESC").
		Limit(limit).
		Find(&profiles).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}

var counterColumns = map[string]bool{
	"total_sessions":     true,
	"completed_sessions": true,
	"cancelled_sessions": true,
}

// IncrementCounter atomically increments a session counter column by one.
// A single UPDATE ... SET x = x + 1 statement keeps concurrent session
// creation for the same mentor correct without read-modify-write. The column
// must be one of the known counters since it is interpolated into SQL.
func (r *mentorProfileRepository) IncrementCounter(ctx context.Context, profileID uint, column string) error {
	if !counterColumns[column] {
		return models.NewValidationError("unknown counter column: " + column)
	}
	err := r.db.WithContext(ctx).
		Model(&models.MentorProfile{}).
		Where("id = ?", profileID).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1)).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// UpdateRatings overwrites all six rating dimensions in one update.
func (r *mentorProfileRepository) UpdateRatings(ctx context.Context, profileID uint, ratings RatingSet) error {
	err := r.db.WithContext(ctx).
		Model(&models.MentorProfile{}).
		Where("id = ?", profileID).
		Updates(map[string]interface{}{
			"overall_rating":         ratings.Overall,
			"clarity_rating":         ratings.Clarity,
			"patience_rating":        ratings.Patience,
			"response_time_rating":   ratings.ResponseTime,
			"problem_solving_rating": ratings.ProblemSolving,
			"followup_rating":        ratings.Followup,
		}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
