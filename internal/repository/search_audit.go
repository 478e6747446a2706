package repository

import (
	"context"

	"gitmentor/internal/models"

	"gorm.io/gorm"
)

// SearchAuditRepository records search queries for later analysis. Writes are
// best effort; callers log and drop failures rather than failing the search.
type SearchAuditRepository interface {
	Record(ctx context.Context, q *models.SearchQuery) error
}

type searchAuditRepository struct {
	db *gorm.DB
}

// NewSearchAuditRepository returns a new SearchAuditRepository implementation.
func NewSearchAuditRepository(db *gorm.DB) SearchAuditRepository {
	return &searchAuditRepository{db: db}
}

func (r *searchAuditRepository) Record(ctx context.Context, q *models.SearchQuery) error {
	if err := r.db.WithContext(ctx).Create(q).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
