package models

import (
	"time"
)

// ProficiencyLevel grades a mentor's command of a skill or expertise area.
type ProficiencyLevel string

const (
	ProficiencyBeginner     ProficiencyLevel = "beginner"
	ProficiencyIntermediate ProficiencyLevel = "intermediate"
	ProficiencyAdvanced     ProficiencyLevel = "advanced"
	ProficiencyExpert       ProficiencyLevel = "expert"
)

// MentorSkill is a concrete technology a mentor teaches, with per-skill
// session and rating stats. (mentor profile, skill name) is unique.
type MentorSkill struct {
	ID                   uint             `gorm:"primaryKey" json:"id"`
	MentorProfileID      uint             `gorm:"not null;uniqueIndex:idx_skill_profile_name" json:"mentorProfileId"`
	SkillName            string           `gorm:"not null;uniqueIndex:idx_skill_profile_name" json:"skillName"`
	ProficiencyLevel     ProficiencyLevel `gorm:"type:varchar(20);not null" json:"proficiencyLevel"`
	YearsOfExperience    int              `json:"yearsOfExperience"`
	IsPrimarySkill       bool             `gorm:"default:false" json:"isPrimarySkill"`
	SessionCountForSkill int              `gorm:"default:0" json:"sessionCountForSkill"`
	AvgRatingForSkill    float64          `gorm:"default:0" json:"avgRatingForSkill"`
	LastTaughtAt         *time.Time       `json:"lastTaughtAt"`
}

// MentorExpertise is a broader problem area a mentor covers.
type MentorExpertise struct {
	ID               uint             `gorm:"primaryKey" json:"id"`
	MentorProfileID  uint             `gorm:"not null;uniqueIndex:idx_expertise_profile_area" json:"mentorProfileId"`
	ExpertiseArea    string           `gorm:"not null;uniqueIndex:idx_expertise_profile_area" json:"expertiseArea"`
	SubExpertise     string           `gorm:"uniqueIndex:idx_expertise_profile_area" json:"subExpertise"`
	ProficiencyLevel ProficiencyLevel `gorm:"type:varchar(20)" json:"proficiencyLevel"`
	SessionCount     int              `gorm:"default:0" json:"sessionCount"`
	AvgRating        float64          `gorm:"default:0" json:"avgRating"`
}

// MentorSpecialization is a named speciality such as "code review" or
// "interview prep".
type MentorSpecialization struct {
	ID                 uint             `gorm:"primaryKey" json:"id"`
	MentorProfileID    uint             `gorm:"not null;uniqueIndex:idx_specialization_profile_type" json:"mentorProfileId"`
	SpecializationType string           `gorm:"not null;uniqueIndex:idx_specialization_profile_type" json:"specializationType"`
	ProficiencyLevel   ProficiencyLevel `gorm:"type:varchar(20)" json:"proficiencyLevel"`
	SessionCount       int              `gorm:"default:0" json:"sessionCount"`
	SuccessRate        float64          `gorm:"default:0" json:"successRate"`
}
