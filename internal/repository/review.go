package repository

import (
	"context"
	"time"

	"gitmentor/internal/models"
	"gitmentor/internal/observability"

	"gorm.io/gorm"
)

// ReviewRepository defines data access operations for session reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.SessionReview) error
	ListBySession(ctx context.Context, sessionID uint) ([]models.SessionReview, error)
	// ListForReviewee returns contributor-authored reviews received by a
	// user, newest first, optionally keeping only reviews at or above
	// minRating. Mentor-authored reviews of contributors never surface here.
	ListForReviewee(ctx context.Context, revieweeID uint, minRating *float64, limit int) ([]models.SessionReview, error)
	// FindContributorReviews loads every contributor-authored review of the
	// given user. Used by rating aggregation.
	FindContributorReviews(ctx context.Context, revieweeID uint) ([]models.SessionReview, error)
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository returns a new ReviewRepository implementation.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.SessionReview) error {
	start := time.Now()
	defer observability.ObserveQuery("create", "session_reviews", start)

	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("review already submitted for this session")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *reviewRepository) ListBySession(ctx context.Context, sessionID uint) ([]models.SessionReview, error) {
	var reviews []models.SessionReview
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return reviews, nil
}

func (r *reviewRepository) ListForReviewee(ctx context.Context, revieweeID uint, minRating *float64, limit int) ([]models.SessionReview, error) {
	if limit <= 0 {
		limit = 100
	}
	q := r.db.WithContext(ctx).
		Where("reviewee_id = ?", revieweeID).
		Where("reviewer_type = ?", models.ReviewerContributor)
	if minRating != nil {
		q = q.Where("overall_rating >= ?", *minRating)
	}
	var reviews []models.SessionReview
	if err := q.Order("created_at DESC").Limit(limit).Find(&reviews).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return reviews, nil
}

func (r *reviewRepository) FindContributorReviews(ctx context.Context, revieweeID uint) ([]models.SessionReview, error) {
	start := time.Now()
	defer observability.ObserveQuery("aggregate_scan", "session_reviews", start)

	var reviews []models.SessionReview
	err := r.db.WithContext(ctx).
		Where("reviewee_id = ? AND reviewer_type = ?", revieweeID, models.ReviewerContributor).
		Find(&reviews).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return reviews, nil
}
