package service

import (
	"context"

	"gitmentor/internal/models"
	"gitmentor/internal/repository"
)

// ReviewService validates and stores session reviews and triggers mentor
// rating recomputation for contributor-authored ones.
type ReviewService struct {
	reviewRepo  repository.ReviewRepository
	sessionRepo repository.SessionRepository
	ratings     *RatingService
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	sessionRepo repository.SessionRepository,
	ratings *RatingService,
) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, sessionRepo: sessionRepo, ratings: ratings}
}

// Create stores a review and, when the reviewer is a contributor, recomputes
// the reviewee's mentor ratings before returning. The review itself is
// persisted even if the recompute fails; the caller sees the error either way.
func (s *ReviewService) Create(ctx context.Context, review *models.SessionReview) (*models.SessionReview, error) {
	if review.SessionID == 0 || review.ReviewerID == 0 || review.RevieweeID == 0 {
		return nil, models.NewValidationError("sessionId, reviewerId and revieweeId are required")
	}
	if review.ReviewerType != models.ReviewerContributor && review.ReviewerType != models.ReviewerMentor {
		return nil, models.NewValidationError("reviewerType must be contributor or mentor")
	}
	if review.OverallRating < 1 || review.OverallRating > 5 {
		return nil, models.NewValidationError("overallRating must be between 1 and 5")
	}
	for _, r := range []*float64{
		review.ClarityRating, review.PatienceRating, review.ResponseTimeRating,
		review.ProblemSolvingRating, review.FollowupRating,
	} {
		if r != nil && (*r < 1 || *r > 5) {
			return nil, models.NewValidationError("sub-ratings must be between 1 and 5")
		}
	}

	if _, err := s.sessionRepo.GetByID(ctx, review.SessionID); err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	if review.ReviewerType == models.ReviewerContributor {
		if err := s.ratings.RecomputeForUser(ctx, review.RevieweeID); err != nil {
			return nil, err
		}
	}
	return review, nil
}

func (s *ReviewService) ListBySession(ctx context.Context, sessionID uint) ([]models.SessionReview, error) {
	return s.reviewRepo.ListBySession(ctx, sessionID)
}

// ListForMentor returns reviews received by a user, newest first.
func (s *ReviewService) ListForMentor(ctx context.Context, revieweeID uint, minRating *float64, limit int) ([]models.SessionReview, error) {
	if minRating != nil && (*minRating < 1 || *minRating > 5) {
		return nil, models.NewValidationError("minRating must be between 1 and 5")
	}
	return s.reviewRepo.ListForReviewee(ctx, revieweeID, minRating, limit)
}
