package repository

import (
	"context"
	"errors"
	"time"

	"gitmentor/internal/models"
	"gitmentor/internal/observability"

	"gorm.io/gorm"
)

// GithubProfileRepository defines persistence operations for GitHub profile
// snapshots and daily contribution records.
type GithubProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.GithubProfile, error)
	Upsert(ctx context.Context, profile *models.GithubProfile) error
	UpsertContribution(ctx context.Context, contribution *models.GithubContribution) error
}

type githubProfileRepository struct {
	db *gorm.DB
}

// NewGithubProfileRepository returns a new GithubProfileRepository implementation.
func NewGithubProfileRepository(db *gorm.DB) GithubProfileRepository {
	return &githubProfileRepository{db: db}
}

// GetByUserID returns (nil, nil) when the user has no GitHub profile yet.
func (r *githubProfileRepository) GetByUserID(ctx context.Context, userID uint) (*models.GithubProfile, error) {
	defer observability.ObserveQuery("select", "github_profiles", time.Now())

	var profile models.GithubProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

// Upsert creates the profile or fully overwrites the existing row keyed on
// user_id, so the snapshot always reflects the latest ingestion payload.
func (r *githubProfileRepository) Upsert(ctx context.Context, profile *models.GithubProfile) error {
	existing, err := r.GetByUserID(ctx, profile.UserID)
	if err != nil {
		return err
	}
	if existing != nil {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	}
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// UpsertContribution upserts a daily contribution record keyed on (user, date).
func (r *githubProfileRepository) UpsertContribution(ctx context.Context, c *models.GithubContribution) error {
	var existing models.GithubContribution
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", c.UserID, c.Date).
		First(&existing).Error
	switch {
	case err == nil:
		c.ID = existing.ID
	case errors.Is(err, gorm.ErrRecordNotFound):
		// fresh record
	default:
		return models.NewInternalError(err)
	}

	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
