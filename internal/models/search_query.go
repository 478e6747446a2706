package models

import (
	"time"
)

// SearchQuery is a write-only audit record of a mentor search invocation.
// The core logic never reads these back; inserts are best-effort and must not
// fail the search that produced them.
type SearchQuery struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	UserID             *uint      `json:"userId"`
	SearchText         string     `json:"searchText"`
	Technologies       StringList `gorm:"type:text" json:"technologies"`
	ProblemType        string     `json:"problemType"`
	TargetRepo         string     `json:"targetRepo"`
	TargetCompetition  string     `json:"targetCompetition"`
	DifficultyLevel    string     `json:"difficultyLevel"`
	MinRating          float64    `json:"minRating"`
	MaxHourlyRate      float64    `json:"maxHourlyRate"`
	RequiredBadges     StringList `gorm:"type:text" json:"requiredBadges"`
	TimezonePreference string     `json:"timezonePreference"`
	ResultsCount       int        `json:"resultsCount"`
	TopResultMentorID  *uint      `json:"topResultMentorId"`
	CreatedAt          time.Time  `json:"createdAt"`
}
