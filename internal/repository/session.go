package repository

import (
	"context"
	"errors"
	"time"

	"gitmentor/internal/models"
	"gitmentor/internal/observability"

	"gorm.io/gorm"
)

// SessionRepository defines data access operations for mentoring sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByID(ctx context.Context, id uint) (*models.Session, error)
	// ListByUser returns sessions where the user participates in the given
	// role ("contributor", "mentor", or "" for either side), optionally
	// filtered by status, newest scheduled first.
	ListByUser(ctx context.Context, userID uint, role string, status models.SessionStatus) ([]models.Session, error)
	UpdateStatus(ctx context.Context, id uint, status models.SessionStatus) (*models.Session, error)
	// UpdateOutcome merges the given outcome fields into the session. Fields
	// absent from the map are left untouched.
	UpdateOutcome(ctx context.Context, id uint, fields map[string]interface{}) (*models.Session, error)
	ListForStats(ctx context.Context, userID uint, role string) ([]models.Session, error)
}

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository returns a new SessionRepository implementation.
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *models.Session) error {
	start := time.Now()
	defer observability.ObserveQuery("create", "sessions", start)

	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id uint) (*models.Session, error) {
	var session models.Session
	err := r.db.WithContext(ctx).First(&session, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Session", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &session, nil
}

func roleScope(db *gorm.DB, userID uint, role string) *gorm.DB {
	switch role {
	case "contributor":
		return db.Where("contributor_id = ?", userID)
	case "mentor":
		return db.Where("mentor_id = ?", userID)
	default:
		return db.Where("contributor_id = ? OR mentor_id = ?", userID, userID)
	}
}

func (r *sessionRepository) ListByUser(ctx context.Context, userID uint, role string, status models.SessionStatus) ([]models.Session, error) {
	start := time.Now()
	defer observability.ObserveQuery("list", "sessions", start)

	q := roleScope(r.db.WithContext(ctx), userID, role)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var sessions []models.Session
	if err := q.Order("scheduled_date DESC").Find(&sessions).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return sessions, nil
}

func (r *sessionRepository) UpdateStatus(ctx context.Context, id uint, status models.SessionStatus) (*models.Session, error) {
	res := r.db.WithContext(ctx).Model(&models.Session{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError("Session", id)
	}
	return r.GetByID(ctx, id)
}

func (r *sessionRepository) UpdateOutcome(ctx context.Context, id uint, fields map[string]interface{}) (*models.Session, error) {
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}
	res := r.db.WithContext(ctx).Model(&models.Session{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError("Session", id)
	}
	return r.GetByID(ctx, id)
}

// ListForStats loads the full session set for a user in a role. Aggregation
// happens in the service so the counting rules live in one place.
func (r *sessionRepository) ListForStats(ctx context.Context, userID uint, role string) ([]models.Session, error) {
	q := roleScope(r.db.WithContext(ctx), userID, role)
	var sessions []models.Session
	if err := q.Find(&sessions).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return sessions, nil
}
