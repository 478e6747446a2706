package models

import (
	"time"
)

// SessionStatus is the lifecycle state of a mentoring session.
//
// No transition table is enforced: any status in the allowed set may be
// written at any time. The caller is trusted, matching the permissive
// behavior this system has always had.
type SessionStatus string

const (
	SessionStatusPending   SessionStatus = "pending"
	SessionStatusConfirmed SessionStatus = "confirmed"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"
	SessionStatusNoShow    SessionStatus = "no_show"
)

// ValidSessionStatus reports whether s is one of the allowed status values.
func ValidSessionStatus(s SessionStatus) bool {
	switch s {
	case SessionStatusPending, SessionStatusConfirmed, SessionStatusCompleted,
		SessionStatusCancelled, SessionStatusNoShow:
		return true
	}
	return false
}

// Session is a scheduled mentoring session between a contributor and a
// mentor. Scheduling fields carry a date plus separate start/end time-of-day
// strings; outcome fields are filled in after the session.
type Session struct {
	ID                 uint          `gorm:"primaryKey" json:"id"`
	ContributorID      uint          `gorm:"not null;index" json:"contributorId"`
	MentorID           uint          `gorm:"not null;index" json:"mentorId"`
	ScheduledDate      time.Time     `gorm:"not null" json:"scheduledDate"`
	ScheduledStartTime string        `gorm:"not null" json:"scheduledStartTime"`
	ScheduledEndTime   string        `gorm:"not null" json:"scheduledEndTime"`
	ActualStartTime    *time.Time    `json:"actualStartTime"`
	ActualEndTime      *time.Time    `json:"actualEndTime"`
	DurationMinutes    int           `json:"durationMinutes"`
	Topic              string        `json:"topic"`
	Description        string        `json:"description"`
	ProblemType        string        `json:"problemType"`
	Technologies       StringList    `gorm:"type:text" json:"technologies"`
	DifficultyLevel    string        `gorm:"type:varchar(20)" json:"difficultyLevel"`
	RelatedRepo        string        `json:"relatedRepo"`
	RelatedCompetition string        `json:"relatedCompetition"`
	PRURL              string        `json:"prUrl"`
	IssueURL           string        `json:"issueUrl"`
	Status             SessionStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	MeetingLink        string        `json:"meetingLink"`
	RecordingURL       string        `json:"recordingUrl"`
	Notes              string        `json:"notes"`
	ProblemSolved      *bool         `json:"problemSolved"`
	PRMerged           *bool         `json:"prMerged"`
	FollowUpNeeded     *bool         `json:"followUpNeeded"`
	FollowUpSessionID  *uint         `json:"followUpSessionId"`
	AgreedRate         float64       `json:"agreedRate"`
	ActualCost         *float64      `json:"actualCost"`
	PaymentStatus      string        `gorm:"type:varchar(20);default:'pending'" json:"paymentStatus"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
}

// SessionStats is the read-side aggregate over a user's sessions. It is
// recomputed on every call, never cached.
type SessionStats struct {
	Total        int `json:"total"`
	Completed    int `json:"completed"`
	Cancelled    int `json:"cancelled"`
	Pending      int `json:"pending"`
	TotalMinutes int `json:"totalMinutes"`
}
