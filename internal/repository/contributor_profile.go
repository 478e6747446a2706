package repository

import (
	"context"
	"errors"

	"gitmentor/internal/models"

	"gorm.io/gorm"
)

// ContributorProfileRepository defines persistence operations for contributor profiles.
type ContributorProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.ContributorProfile, error)
	Create(ctx context.Context, profile *models.ContributorProfile) error
	UpdateFields(ctx context.Context, userID uint, fields map[string]interface{}) (*models.ContributorProfile, error)
}

type contributorProfileRepository struct {
	db *gorm.DB
}

// NewContributorProfileRepository returns a new ContributorProfileRepository implementation.
func NewContributorProfileRepository(db *gorm.DB) ContributorProfileRepository {
	return &contributorProfileRepository{db: db}
}

// GetByUserID returns (nil, nil) when the user has no contributor profile.
func (r *contributorProfileRepository) GetByUserID(ctx context.Context, userID uint) (*models.ContributorProfile, error) {
	var profile models.ContributorProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

func (r *contributorProfileRepository) Create(ctx context.Context, profile *models.ContributorProfile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Contributor profile already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// UpdateFields applies a partial update keyed on the owning user and returns
// the reloaded profile.
func (r *contributorProfileRepository) UpdateFields(ctx context.Context, userID uint, fields map[string]interface{}) (*models.ContributorProfile, error) {
	res := r.db.WithContext(ctx).Model(&models.ContributorProfile{}).Where("user_id = ?", userID).Updates(fields)
	if res.Error != nil {
		return nil, models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError("Contributor profile", userID)
	}
	return r.GetByUserID(ctx, userID)
}
