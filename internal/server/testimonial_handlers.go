package server

import (
	"gitmentor/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateTestimonial handles POST /api/testimonials
func (s *Server) CreateTestimonial(c *fiber.Ctx) error {
	var t models.Testimonial
	if err := c.BodyParser(&t); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if t.MentorProfileID == 0 || t.TestimonialText == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("mentorProfileId and testimonialText are required"))
	}
	t.ID = 0

	if err := s.testimonialRepo.Create(c.Context(), &t); err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(t)
}

// ListTestimonials handles GET /api/testimonials/mentor/:mentorProfileId?featured=true
func (s *Server) ListTestimonials(c *fiber.Ctx) error {
	profileID, err := s.parseID(c, "mentorProfileId")
	if err != nil {
		return nil
	}

	featuredOnly := c.QueryBool("featured", false)
	testimonials, err := s.testimonialRepo.ListForMentor(c.Context(), profileID, featuredOnly)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(testimonials)
}
