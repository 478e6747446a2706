package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitmentor/internal/models"
)

func TestCreateSessionDefaultsToPendingAndBumpsCounter(t *testing.T) {
	var bumped []string
	mentorRepo := noopMentorRepo()
	mentorRepo.getByUserIDFn = func(_ context.Context, userID uint) (*models.MentorProfile, error) {
		return &models.MentorProfile{ID: 4, UserID: userID}, nil
	}
	mentorRepo.incrementCounterFn = func(_ context.Context, profileID uint, column string) error {
		assert.Equal(t, uint(4), profileID)
		bumped = append(bumped, column)
		return nil
	}

	sessionRepo := noopSessionRepo()
	sessionRepo.createFn = func(_ context.Context, sess *models.Session) error {
		sess.ID = 10
		return nil
	}

	svc := NewSessionService(sessionRepo, mentorRepo, noopUserRepo())
	created, err := svc.Create(context.Background(), &models.Session{
		ContributorID: 1,
		MentorID:      2,
		ScheduledDate: time.Now().Add(24 * time.Hour),
		Status:        models.SessionStatusConfirmed, // caller-supplied status is ignored
	})
	require.NoError(t, err)

	assert.Equal(t, models.SessionStatusPending, created.Status)
	assert.Equal(t, []string{"total_sessions"}, bumped)
}

func TestCreateSessionWithoutMentorProfileSkipsCounter(t *testing.T) {
	mentorRepo := noopMentorRepo()
	mentorRepo.incrementCounterFn = func(context.Context, uint, string) error {
		t.Fatal("counter must not be bumped for mentors without a profile")
		return nil
	}

	svc := NewSessionService(noopSessionRepo(), mentorRepo, noopUserRepo())
	_, err := svc.Create(context.Background(), &models.Session{
		ContributorID: 1,
		MentorID:      2,
		ScheduledDate: time.Now(),
	})
	require.NoError(t, err)
}

func TestCreateSessionValidation(t *testing.T) {
	svc := NewSessionService(noopSessionRepo(), noopMentorRepo(), noopUserRepo())

	_, err := svc.Create(context.Background(), &models.Session{MentorID: 2, ScheduledDate: time.Now()})
	assert.Equal(t, "VALIDATION_ERROR", errCode(err))

	_, err = svc.Create(context.Background(), &models.Session{ContributorID: 1, MentorID: 2})
	assert.Equal(t, "VALIDATION_ERROR", errCode(err))
}

func TestUpdateStatusBumpsTerminalCounters(t *testing.T) {
	cases := []struct {
		status  models.SessionStatus
		counter string
	}{
		{models.SessionStatusCompleted, "completed_sessions"},
		{models.SessionStatusCancelled, "cancelled_sessions"},
		{models.SessionStatusConfirmed, ""},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			var bumped []string
			mentorRepo := noopMentorRepo()
			mentorRepo.getByUserIDFn = func(_ context.Context, userID uint) (*models.MentorProfile, error) {
				return &models.MentorProfile{ID: 4, UserID: userID}, nil
			}
			mentorRepo.incrementCounterFn = func(_ context.Context, _ uint, column string) error {
				bumped = append(bumped, column)
				return nil
			}

			sessionRepo := noopSessionRepo()
			sessionRepo.updateStatusFn = func(_ context.Context, id uint, status models.SessionStatus) (*models.Session, error) {
				return &models.Session{ID: id, MentorID: 2, Status: status}, nil
			}

			svc := NewSessionService(sessionRepo, mentorRepo, noopUserRepo())
			updated, err := svc.UpdateStatus(context.Background(), 10, tc.status)
			require.NoError(t, err)
			assert.Equal(t, tc.status, updated.Status)

			if tc.counter == "" {
				assert.Empty(t, bumped)
			} else {
				assert.Equal(t, []string{tc.counter}, bumped)
			}
		})
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := NewSessionService(noopSessionRepo(), noopMentorRepo(), noopUserRepo())
	_, err := svc.UpdateStatus(context.Background(), 10, "rescheduled")
	assert.Equal(t, "VALIDATION_ERROR", errCode(err))
}

func TestUpdateOutcomeOnlySetsProvidedFields(t *testing.T) {
	var got map[string]interface{}
	sessionRepo := noopSessionRepo()
	sessionRepo.updateOutcomeFn = func(_ context.Context, id uint, fields map[string]interface{}) (*models.Session, error) {
		got = fields
		return &models.Session{ID: id}, nil
	}

	svc := NewSessionService(sessionRepo, noopMentorRepo(), noopUserRepo())
	solved := true
	minutes := 45
	_, err := svc.UpdateOutcome(context.Background(), 10, OutcomeInput{
		DurationMinutes: &minutes,
		ProblemSolved:   &solved,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{
		"duration_minutes": 45,
		"problem_solved":   true,
	}, got)
}

func TestStatsSumsMinutesAcrossAllStatuses(t *testing.T) {
	sessionRepo := noopSessionRepo()
	sessionRepo.listForStatsFn = func(context.Context, uint, string) ([]models.Session, error) {
		return []models.Session{
			{Status: models.SessionStatusCompleted, DurationMinutes: 60},
			{Status: models.SessionStatusCompleted, DurationMinutes: 30},
			{Status: models.SessionStatusCancelled, DurationMinutes: 60},
			{Status: models.SessionStatusPending},
			{Status: models.SessionStatusNoShow, DurationMinutes: 15},
		}, nil
	}

	svc := NewSessionService(sessionRepo, noopMentorRepo(), noopUserRepo())
	stats, err := svc.Stats(context.Background(), 1, "contributor")
	require.NoError(t, err)

	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 2, stats.Completed)
	assert.Equal(t, 1, stats.Cancelled)
	assert.Equal(t, 1, stats.Pending)
	// Every recorded duration counts, whatever the session's final status.
	assert.Equal(t, 165, stats.TotalMinutes)
}

func TestStatsDefaultsToContributorSide(t *testing.T) {
	sessionRepo := noopSessionRepo()
	sessionRepo.listForStatsFn = func(_ context.Context, _ uint, role string) ([]models.Session, error) {
		assert.Equal(t, "contributor", role)
		return nil, nil
	}

	svc := NewSessionService(sessionRepo, noopMentorRepo(), noopUserRepo())
	_, err := svc.Stats(context.Background(), 1, "")
	require.NoError(t, err)
}

func TestListByUserJoinsParticipants(t *testing.T) {
	sessionRepo := noopSessionRepo()
	sessionRepo.listByUserFn = func(context.Context, uint, string, models.SessionStatus) ([]models.Session, error) {
		return []models.Session{{ID: 1, ContributorID: 5, MentorID: 6}}, nil
	}

	userRepo := noopUserRepo()
	userRepo.listByIDsFn = func(_ context.Context, ids []uint) (map[uint]models.User, error) {
		assert.ElementsMatch(t, []uint{5, 6}, ids)
		return map[uint]models.User{
			5: {ID: 5, Username: "learner"},
			6: {ID: 6, Username: "guide"},
		}, nil
	}

	svc := NewSessionService(sessionRepo, noopMentorRepo(), userRepo)
	views, err := svc.ListByUser(context.Background(), 5, "contributor", "")
	require.NoError(t, err)

	require.Len(t, views, 1)
	assert.Equal(t, "learner", views[0].Contributor.Username)
	assert.Equal(t, "guide", views[0].Mentor.Username)
}
