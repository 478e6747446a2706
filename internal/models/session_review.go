package models

import (
	"time"
)

// ReviewerType says which side of the session wrote the review. Only
// contributor-authored reviews count toward mentor rating aggregation.
type ReviewerType string

const (
	ReviewerContributor ReviewerType = "contributor"
	ReviewerMentor      ReviewerType = "mentor"
)

// SessionReview is a review of one session participant by the other.
// At most one review per (session, reviewer). The five sub-ratings are
// optional; OverallRating is required and in [1,5].
type SessionReview struct {
	ID                   uint         `gorm:"primaryKey" json:"id"`
	SessionID            uint         `gorm:"not null;uniqueIndex:idx_review_session_reviewer" json:"sessionId"`
	ReviewerID           uint         `gorm:"not null;uniqueIndex:idx_review_session_reviewer" json:"reviewerId"`
	RevieweeID           uint         `gorm:"not null;index" json:"revieweeId"`
	ReviewerType         ReviewerType `gorm:"type:varchar(20);not null" json:"reviewerType"`
	OverallRating        float64      `gorm:"not null" json:"overallRating"`
	ClarityRating        *float64     `json:"clarityRating"`
	PatienceRating       *float64     `json:"patienceRating"`
	ResponseTimeRating   *float64     `json:"responseTimeRating"`
	ProblemSolvingRating *float64     `json:"problemSolvingRating"`
	FollowupRating       *float64     `json:"followupRating"`
	ReviewText           string       `json:"reviewText"`
	Pros                 StringList   `gorm:"type:text" json:"pros"`
	Cons                 StringList   `gorm:"type:text" json:"cons"`
	WouldRecommend       *bool        `json:"wouldRecommend"`
	WouldBookAgain       *bool        `json:"wouldBookAgain"`
	IsVerified           bool         `gorm:"default:false" json:"isVerified"`
	CreatedAt            time.Time    `json:"createdAt"`
	UpdatedAt            time.Time    `json:"updatedAt"`
}

// Testimonial is a free-form endorsement of a mentor.
type Testimonial struct {
	ID                    uint       `gorm:"primaryKey" json:"id"`
	MentorProfileID       uint       `gorm:"not null;index" json:"mentorProfileId"`
	ContributorID         *uint      `json:"contributorId"`
	TestimonialText       string     `gorm:"not null" json:"testimonialText"`
	SpecificAchievement   string     `json:"specificAchievement"`
	TechnologiesMentioned StringList `gorm:"type:text" json:"technologiesMentioned"`
	IsFeatured            bool       `gorm:"default:false" json:"isFeatured"`
	IsVerified            bool       `gorm:"default:true" json:"isVerified"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}
