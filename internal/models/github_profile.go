package models

import (
	"time"
)

// GithubProfile is a denormalized snapshot of a user's GitHub activity.
// It is upserted on every ingestion call so it always reflects the latest
// payload.
type GithubProfile struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	UserID             uint       `gorm:"uniqueIndex;not null" json:"userId"`
	GithubUsername     string     `gorm:"not null" json:"githubUsername"`
	GithubID           string     `gorm:"not null" json:"githubId"`
	ProfileURL         string     `json:"profileUrl"`
	Bio                string     `json:"bio"`
	Company            string     `json:"company"`
	Location           string     `json:"location"`
	BlogURL            string     `json:"blogUrl"`
	TwitterUsername    string     `json:"twitterUsername"`
	PublicRepos        int        `gorm:"default:0" json:"publicRepos"`
	PublicGists        int        `gorm:"default:0" json:"publicGists"`
	Followers          int        `gorm:"default:0" json:"followers"`
	Following          int        `gorm:"default:0" json:"following"`
	TotalStarsReceived int        `gorm:"default:0" json:"totalStarsReceived"`
	TotalCommits       int        `gorm:"default:0" json:"totalCommits"`
	AccountCreatedAt   *time.Time `json:"accountCreatedAt"`
	LastSyncedAt       time.Time  `json:"lastSyncedAt"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// GithubContribution is a per-day activity record synced from GitHub.
type GithubContribution struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_contribution_user_date" json:"userId"`
	Date        time.Time `gorm:"not null;uniqueIndex:idx_contribution_user_date" json:"date"`
	CommitCount int       `gorm:"default:0" json:"commitCount"`
	PRCount     int       `gorm:"default:0" json:"prCount"`
	IssueCount  int       `gorm:"default:0" json:"issueCount"`
	ReviewCount int       `gorm:"default:0" json:"reviewCount"`
}
