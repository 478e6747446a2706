package service

import (
	"context"

	"gitmentor/internal/cache"
	"gitmentor/internal/middleware"
	"gitmentor/internal/observability"
	"gitmentor/internal/repository"
)

// RatingService recomputes a mentor's aggregated rating dimensions from the
// full set of contributor-authored reviews they have received.
type RatingService struct {
	reviewRepo repository.ReviewRepository
	mentorRepo repository.MentorProfileRepository
}

func NewRatingService(reviewRepo repository.ReviewRepository, mentorRepo repository.MentorProfileRepository) *RatingService {
	return &RatingService{reviewRepo: reviewRepo, mentorRepo: mentorRepo}
}

// RecomputeForUser rebuilds all six rating means for the mentor owned by the
// given user and overwrites the stored values. Each mean divides by the full
// review count; a review that omits an optional sub-rating contributes 0 to
// that dimension's sum, pulling the mean down rather than being skipped.
//
// A user with no mentor profile, or a mentor with no contributor reviews, is
// left untouched. Concurrent recomputes race last-write-wins; both writers
// compute from a full scan so the stored values stay internally consistent.
func (s *RatingService) RecomputeForUser(ctx context.Context, revieweeUserID uint) error {
	profile, err := s.mentorRepo.GetByUserID(ctx, revieweeUserID)
	if err != nil {
		return err
	}
	if profile == nil {
		return nil
	}

	reviews, err := s.reviewRepo.FindContributorReviews(ctx, revieweeUserID)
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		return nil
	}

	var overall, clarity, patience, responseTime, problemSolving, followup float64
	for _, rev := range reviews {
		overall += rev.OverallRating
		if rev.ClarityRating != nil {
			clarity += *rev.ClarityRating
		}
		if rev.PatienceRating != nil {
			patience += *rev.PatienceRating
		}
		if rev.ResponseTimeRating != nil {
			responseTime += *rev.ResponseTimeRating
		}
		if rev.ProblemSolvingRating != nil {
			problemSolving += *rev.ProblemSolvingRating
		}
		if rev.FollowupRating != nil {
			followup += *rev.FollowupRating
		}
	}

	n := float64(len(reviews))
	ratings := repository.RatingSet{
		Overall:        overall / n,
		Clarity:        clarity / n,
		Patience:       patience / n,
		ResponseTime:   responseTime / n,
		ProblemSolving: problemSolving / n,
		Followup:       followup / n,
	}

	if err := s.mentorRepo.UpdateRatings(ctx, profile.ID, ratings); err != nil {
		return err
	}
	observability.RatingRecomputes.Inc()
	cache.InvalidateMentorProfile(ctx, revieweeUserID)

	middleware.Logger.InfoContext(ctx, "mentor ratings recomputed",
		"user_id", revieweeUserID,
		"profile_id", profile.ID,
		"review_count", len(reviews),
		"overall", ratings.Overall)
	return nil
}
