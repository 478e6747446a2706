package models

import (
	"time"
)

// MentorProfile holds a mentor's rates, availability flag, aggregated rating
// dimensions and session counters. A user has at most one mentor profile.
//
// The six rating fields default to 0 meaning "no reviews yet"; once reviews
// exist they hold arithmetic means in [1,5] maintained by the rating service.
type MentorProfile struct {
	ID                      uint       `gorm:"primaryKey" json:"id"`
	UserID                  uint       `gorm:"uniqueIndex;not null" json:"userId"`
	Bio                     string     `json:"bio"`
	Headline                string     `json:"headline"`
	HourlyRate              float64    `gorm:"default:0" json:"hourlyRate"`
	YearsOfExperience       int        `json:"yearsOfExperience"`
	OverallRating           float64    `gorm:"default:0" json:"overallRating"`
	TotalSessions           int        `gorm:"default:0" json:"totalSessions"`
	CompletedSessions       int        `gorm:"default:0" json:"completedSessions"`
	CancelledSessions       int        `gorm:"default:0" json:"cancelledSessions"`
	ClarityRating           float64    `gorm:"default:0" json:"clarityRating"`
	PatienceRating          float64    `gorm:"default:0" json:"patienceRating"`
	ResponseTimeRating      float64    `gorm:"default:0" json:"responseTimeRating"`
	ProblemSolvingRating    float64    `gorm:"default:0" json:"problemSolvingRating"`
	FollowupRating          float64    `gorm:"default:0" json:"followupRating"`
	IsAvailable             bool       `gorm:"default:true" json:"isAvailable"`
	AvailableForFreeSession bool       `gorm:"default:false" json:"availableForFreeSession"`
	MinSessionDuration      int        `gorm:"default:30" json:"minSessionDuration"`
	MaxSessionDuration      int        `gorm:"default:120" json:"maxSessionDuration"`
	StudentSuccessRate      float64    `json:"studentSuccessRate"`
	RepeatStudentRate       float64    `json:"repeatStudentRate"`
	AvgResponseTime         float64    `json:"avgResponseTime"`
	TeachingStyle           StringList `gorm:"type:text" json:"teachingStyle"`
	StudentLevelPreference  StringList `gorm:"type:text" json:"studentLevelPreference"`
	CreatedAt               time.Time  `json:"createdAt"`
	UpdatedAt               time.Time  `json:"updatedAt"`
}

// ContributorProfile records a contributor's learning preferences. Created
// empty on first ingestion and never overwritten by subsequent ingestions.
type ContributorProfile struct {
	ID                       uint       `gorm:"primaryKey" json:"id"`
	UserID                   uint       `gorm:"uniqueIndex;not null" json:"userId"`
	Bio                      string     `json:"bio"`
	Interests                StringList `gorm:"type:text" json:"interests"`
	CurrentSkillLevel        string     `gorm:"type:varchar(20)" json:"currentSkillLevel"`
	LearningGoals            StringList `gorm:"type:text" json:"learningGoals"`
	WorkingOnRepos           StringList `gorm:"type:text" json:"workingOnRepos"`
	TargetCompetitions       StringList `gorm:"type:text" json:"targetCompetitions"`
	PreferredSessionDuration int        `gorm:"default:60" json:"preferredSessionDuration"`
	PreferredTeachingStyle   StringList `gorm:"type:text" json:"preferredTeachingStyle"`
	BudgetPerHour            float64    `json:"budgetPerHour"`
	CreatedAt                time.Time  `json:"createdAt"`
	UpdatedAt                time.Time  `json:"updatedAt"`
}
