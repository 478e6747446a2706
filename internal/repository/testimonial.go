package repository

import (
	"context"

	"gitmentor/internal/models"

	"gorm.io/gorm"
)

// TestimonialRepository defines data access operations for mentor testimonials.
type TestimonialRepository interface {
	Create(ctx context.Context, t *models.Testimonial) error
	ListForMentor(ctx context.Context, mentorProfileID uint, featuredOnly bool) ([]models.Testimonial, error)
}

type testimonialRepository struct {
	db *gorm.DB
}

// NewTestimonialRepository returns a new TestimonialRepository implementation.
func NewTestimonialRepository(db *gorm.DB) TestimonialRepository {
	return &testimonialRepository{db: db}
}

func (r *testimonialRepository) Create(ctx context.Context, t *models.Testimonial) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *testimonialRepository) ListForMentor(ctx context.Context, mentorProfileID uint, featuredOnly bool) ([]models.Testimonial, error) {
	q := r.db.WithContext(ctx).Where("mentor_profile_id = ?", mentorProfileID)
	if featuredOnly {
		q = q.Where("is_featured = ?", true)
	}
	var out []models.Testimonial
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return out, nil
}
