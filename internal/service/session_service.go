package service

import (
	"context"

	"gitmentor/internal/middleware"
	"gitmentor/internal/models"
	"gitmentor/internal/repository"
)

// SessionService handles the mentoring session lifecycle and keeps the
// mentor profile counters in step with it.
type SessionService struct {
	sessionRepo repository.SessionRepository
	mentorRepo  repository.MentorProfileRepository
	userRepo    repository.UserRepository
}

// SessionView is a session joined with both participants' public identity.
type SessionView struct {
	models.Session
	Contributor models.PublicUser `json:"contributor"`
	Mentor      models.PublicUser `json:"mentor"`
}

// OutcomeInput carries post-session outcome fields. Nil pointers are left
// untouched on the stored session.
type OutcomeInput struct {
	DurationMinutes *int     `json:"durationMinutes"`
	Notes           *string  `json:"notes"`
	RecordingURL    *string  `json:"recordingUrl"`
	ProblemSolved   *bool    `json:"problemSolved"`
	PRMerged        *bool    `json:"prMerged"`
	FollowUpNeeded  *bool    `json:"followUpNeeded"`
	FollowUpSession *uint    `json:"followUpSessionId"`
	ActualCost      *float64 `json:"actualCost"`
}

func NewSessionService(
	sessionRepo repository.SessionRepository,
	mentorRepo repository.MentorProfileRepository,
	userRepo repository.UserRepository,
) *SessionService {
	return &SessionService{sessionRepo: sessionRepo, mentorRepo: mentorRepo, userRepo: userRepo}
}

// Create books a new pending session and bumps the mentor's total session
// counter. A mentor user without a mentor profile still gets the session;
// only the counter update is skipped.
func (s *SessionService) Create(ctx context.Context, session *models.Session) (*models.Session, error) {
	if session.ContributorID == 0 || session.MentorID == 0 {
		return nil, models.NewValidationError("contributorId and mentorId are required")
	}
	if session.ScheduledDate.IsZero() {
		return nil, models.NewValidationError("scheduledDate is required")
	}

	session.Status = models.SessionStatusPending
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	if err := s.bumpCounter(ctx, session.MentorID, "total_sessions"); err != nil {
		return nil, err
	}

	middleware.Logger.InfoContext(ctx, "session booked",
		"session_id", session.ID,
		"contributor_id", session.ContributorID,
		"mentor_id", session.MentorID)
	return session, nil
}

// UpdateStatus writes the new status and bumps the matching mentor counter
// for terminal states. Any allowed status may follow any other; the lifecycle
// is not a state machine here.
func (s *SessionService) UpdateStatus(ctx context.Context, id uint, status models.SessionStatus) (*models.Session, error) {
	if !models.ValidSessionStatus(status) {
		return nil, models.NewValidationError("invalid session status: " + string(status))
	}

	session, err := s.sessionRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	var counter string
	switch status {
	case models.SessionStatusCompleted:
		counter = "completed_sessions"
	case models.SessionStatusCancelled:
		counter = "cancelled_sessions"
	}
	if counter != "" {
		if err := s.bumpCounter(ctx, session.MentorID, counter); err != nil {
			return nil, err
		}
	}
	return session, nil
}

// UpdateOutcome merges the provided outcome fields into the session.
func (s *SessionService) UpdateOutcome(ctx context.Context, id uint, in OutcomeInput) (*models.Session, error) {
	fields := map[string]interface{}{}
	if in.DurationMinutes != nil {
		fields["duration_minutes"] = *in.DurationMinutes
	}
	if in.Notes != nil {
		fields["notes"] = *in.Notes
	}
	if in.RecordingURL != nil {
		fields["recording_url"] = *in.RecordingURL
	}
	if in.ProblemSolved != nil {
		fields["problem_solved"] = *in.ProblemSolved
	}
	if in.PRMerged != nil {
		fields["pr_merged"] = *in.PRMerged
	}
	if in.FollowUpNeeded != nil {
		fields["follow_up_needed"] = *in.FollowUpNeeded
	}
	if in.FollowUpSession != nil {
		fields["follow_up_session_id"] = *in.FollowUpSession
	}
	if in.ActualCost != nil {
		fields["actual_cost"] = *in.ActualCost
	}
	return s.sessionRepo.UpdateOutcome(ctx, id, fields)
}

func (s *SessionService) Get(ctx context.Context, id uint) (*models.Session, error) {
	return s.sessionRepo.GetByID(ctx, id)
}

// ListByUser returns a user's sessions in a role with both participants'
// public identity attached, newest scheduled first.
func (s *SessionService) ListByUser(ctx context.Context, userID uint, role string, status models.SessionStatus) ([]SessionView, error) {
	if status != "" && !models.ValidSessionStatus(status) {
		return nil, models.NewValidationError("invalid session status: " + string(status))
	}
	sessions, err := s.sessionRepo.ListByUser(ctx, userID, role, status)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, 2*len(sessions))
	for _, sess := range sessions {
		ids = append(ids, sess.ContributorID, sess.MentorID)
	}
	users, err := s.userRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]SessionView, len(sessions))
	for i, sess := range sessions {
		contributor := users[sess.ContributorID]
		mentor := users[sess.MentorID]
		views[i] = SessionView{
			Session:     sess,
			Contributor: contributor.Public(),
			Mentor:      mentor.Public(),
		}
	}
	return views, nil
}

// Stats recomputes the per-user session aggregate on every call. Minutes sum
// over every session regardless of status; durations are only ever written
// for sessions that actually ran. An empty role scopes to the contributor
// side.
func (s *SessionService) Stats(ctx context.Context, userID uint, role string) (*models.SessionStats, error) {
	if role == "" {
		role = "contributor"
	}
	sessions, err := s.sessionRepo.ListForStats(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	stats := &models.SessionStats{Total: len(sessions)}
	for _, sess := range sessions {
		stats.TotalMinutes += sess.DurationMinutes
		switch sess.Status {
		case models.SessionStatusCompleted:
			stats.Completed++
		case models.SessionStatusCancelled:
			stats.Cancelled++
		case models.SessionStatusPending:
			stats.Pending++
		}
	}
	return stats, nil
}

// bumpCounter increments a counter on the mentor user's profile, silently
// skipping mentor users that have no profile yet.
func (s *SessionService) bumpCounter(ctx context.Context, mentorUserID uint, column string) error {
	profile, err := s.mentorRepo.GetByUserID(ctx, mentorUserID)
	if err != nil {
		return err
	}
	if profile == nil {
		return nil
	}
	return s.mentorRepo.IncrementCounter(ctx, profile.ID, column)
}
