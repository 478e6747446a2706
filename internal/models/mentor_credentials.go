package models

import (
	"time"
)

// WorkExperience is a mentor's employment history entry.
type WorkExperience struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	MentorProfileID    uint       `gorm:"not null;index" json:"mentorProfileId"`
	CompanyName        string     `gorm:"not null" json:"companyName"`
	CompanyTier        string     `gorm:"type:varchar(20)" json:"companyTier"`
	JobTitle           string     `json:"jobTitle"`
	StartDate          *time.Time `json:"startDate"`
	EndDate            *time.Time `json:"endDate"`
	IsCurrent          bool       `gorm:"default:false" json:"isCurrent"`
	TechnologiesUsed   StringList `gorm:"type:text" json:"technologiesUsed"`
	Description        string     `json:"description"`
	VerificationStatus string     `gorm:"type:varchar(20);default:'unverified'" json:"verificationStatus"`
}

// Certification is a credential a mentor holds.
type Certification struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	MentorProfileID     uint       `gorm:"not null;index" json:"mentorProfileId"`
	CertificationName   string     `gorm:"not null" json:"certificationName"`
	IssuingOrganization string     `json:"issuingOrganization"`
	IssueDate           *time.Time `json:"issueDate"`
	ExpirationDate      *time.Time `json:"expirationDate"`
	CredentialID        string     `json:"credentialId"`
	CredentialURL       string     `json:"credentialUrl"`
	IsVerified          bool       `gorm:"default:false" json:"isVerified"`
}

// CompetitionExperience records a mentor's hackathon or competition history.
type CompetitionExperience struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	MentorProfileID  uint       `gorm:"not null;index" json:"mentorProfileId"`
	CompetitionName  string     `gorm:"not null" json:"competitionName"`
	Year             int        `gorm:"not null" json:"year"`
	Role             string     `gorm:"type:varchar(20)" json:"role"`
	Organization     string     `json:"organization"`
	ProjectName      string     `json:"projectName"`
	TechnologiesUsed StringList `gorm:"type:text" json:"technologiesUsed"`
	AchievementLevel string     `gorm:"type:varchar(20)" json:"achievementLevel"`
	ProjectURL       string     `json:"projectUrl"`
	IsVerified       bool       `gorm:"default:false" json:"isVerified"`
}

// OpenSourceAchievement records maintainer or contributor standing in a repo.
type OpenSourceAchievement struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	MentorProfileID    uint       `gorm:"not null;index" json:"mentorProfileId"`
	AchievementType    string     `gorm:"type:varchar(30);not null" json:"achievementType"`
	RepoFullName       string     `gorm:"not null" json:"repoFullName"`
	OrganizationName   string     `json:"organizationName"`
	StartedAt          *time.Time `json:"startedAt"`
	EndedAt            *time.Time `json:"endedAt"`
	IsCurrent          bool       `gorm:"default:false" json:"isCurrent"`
	ContributionCount  int        `json:"contributionCount"`
	ImpactScore        int        `json:"impactScore"`
	VerificationStatus string     `gorm:"type:varchar(20);default:'unverified'" json:"verificationStatus"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// MentorBadge is a display badge earned by a mentor.
type MentorBadge struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	MentorProfileID uint      `gorm:"not null;index" json:"mentorProfileId"`
	BadgeName       string    `gorm:"not null" json:"badgeName"`
	BadgeType       string    `gorm:"type:varchar(20)" json:"badgeType"`
	Description     string    `json:"description"`
	EarnedAt        time.Time `json:"earnedAt"`
	IconURL         string    `json:"iconUrl"`
}

// MentorAvailability is a stated recurring availability window. The system
// records these but does not validate session bookings against them.
type MentorAvailability struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	MentorProfileID uint   `gorm:"not null;index" json:"mentorProfileId"`
	DayOfWeek       int    `gorm:"not null" json:"dayOfWeek"`
	StartTime       string `gorm:"not null" json:"startTime"`
	EndTime         string `gorm:"not null" json:"endTime"`
	Timezone        string `json:"timezone"`
	IsRecurring     bool   `gorm:"default:true" json:"isRecurring"`
}

// MentorUnavailableDate blocks out a single date.
type MentorUnavailableDate struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	MentorProfileID uint      `gorm:"not null;index" json:"mentorProfileId"`
	Date            time.Time `gorm:"not null" json:"date"`
	Reason          string    `json:"reason"`
}
