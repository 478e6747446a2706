// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"time"

	"gitmentor/internal/cache"
	"gitmentor/internal/config"
	"gitmentor/internal/database"
	"gitmentor/internal/middleware"
	"gitmentor/internal/repository"
	"gitmentor/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus

	userRepo        repository.UserRepository
	githubRepo      repository.GithubProfileRepository
	mentorRepo      repository.MentorProfileRepository
	contributorRepo repository.ContributorProfileRepository
	skillRepo       repository.SkillRepository
	credentialRepo  repository.CredentialRepository
	sessionRepo     repository.SessionRepository
	reviewRepo      repository.ReviewRepository
	testimonialRepo repository.TestimonialRepository
	auditRepo       repository.SearchAuditRepository

	ingestService  *service.IngestService
	mentorService  *service.MentorService
	ratingService  *service.RatingService
	searchService  *service.SearchService
	sessionService *service.SessionService
	reviewService  *service.ReviewService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	prom := fiberprometheus.New("gitmentor-api")

	server := &Server{
		config:          cfg,
		db:              db,
		redis:           redisClient,
		promMiddleware:  prom,
		userRepo:        repository.NewUserRepository(db),
		githubRepo:      repository.NewGithubProfileRepository(db),
		mentorRepo:      repository.NewMentorProfileRepository(db),
		contributorRepo: repository.NewContributorProfileRepository(db),
		skillRepo:       repository.NewSkillRepository(db),
		credentialRepo:  repository.NewCredentialRepository(db),
		sessionRepo:     repository.NewSessionRepository(db),
		reviewRepo:      repository.NewReviewRepository(db),
		testimonialRepo: repository.NewTestimonialRepository(db),
		auditRepo:       repository.NewSearchAuditRepository(db),
	}

	server.ingestService = service.NewIngestService(server.userRepo, server.githubRepo, server.contributorRepo)
	server.mentorService = service.NewMentorService(server.userRepo, server.mentorRepo, server.skillRepo)
	server.ratingService = service.NewRatingService(server.reviewRepo, server.mentorRepo)
	server.searchService = service.NewSearchService(server.mentorRepo, server.skillRepo, server.userRepo, server.auditRepo)
	server.sessionService = service.NewSessionService(server.sessionRepo, server.mentorRepo, server.userRepo)
	server.reviewService = service.NewReviewService(server.reviewRepo, server.sessionRepo, server.ratingService)

	return server, nil
}

// Shutdown releases server-held resources after the HTTP listener stops.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			middleware.Logger.WarnContext(ctx, "redis close failed", "error", err)
		}
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	app.Use(helmet.New())

	// After requestid and context middleware so log lines carry the request id.
	app.Use(middleware.StructuredLogger())

	// CORS runs before middlewares that can short-circuit (e.g. limiter) so
	// browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "GitMentor Backend Metrics Dashboard",
	}))

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/github-callback", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "github_callback"), s.GithubCallback)

	// Profile routes
	profile := api.Group("/profile")
	profile.Get("/complete/:userId", s.GetCompleteProfile)
	profile.Patch("/user/:userId", s.UpdateUser)
	profile.Post("/mentor/:userId", s.CreateMentorProfile)
	profile.Patch("/mentor/:userId", s.UpdateMentorProfile)
	profile.Patch("/contributor/:userId", s.UpdateContributorProfile)

	// GitHub data routes
	github := api.Group("/github")
	github.Get("/profile/:userId", s.GetGithubProfile)
	github.Post("/sync-contributions", s.SyncContributions)

	// Mentor credential routes
	mentor := api.Group("/mentor/:mentorProfileId")
	mentor.Get("/complete", s.GetCompleteMentorProfile)
	mentor.Post("/skills", s.UpsertSkills)
	mentor.Get("/skills", s.ListSkills)
	mentor.Delete("/skills/:skillId", s.DeleteSkill)
	mentor.Post("/expertise", s.UpsertExpertise)
	mentor.Get("/expertise", s.ListExpertise)
	mentor.Post("/specializations", s.UpsertSpecializations)
	mentor.Get("/specializations", s.ListSpecializations)
	mentor.Post("/experience", s.CreateExperience)
	mentor.Get("/experience", s.ListExperience)
	mentor.Patch("/experience/:experienceId", s.UpdateExperience)
	mentor.Delete("/experience/:experienceId", s.DeleteExperience)
	mentor.Post("/certifications", s.CreateCertification)
	mentor.Get("/certifications", s.ListCertifications)
	mentor.Delete("/certifications/:certificationId", s.DeleteCertification)
	mentor.Post("/competitions", s.CreateCompetition)
	mentor.Get("/competitions", s.ListCompetitions)
	mentor.Patch("/competitions/:competitionId", s.UpdateCompetition)
	mentor.Delete("/competitions/:competitionId", s.DeleteCompetition)
	mentor.Post("/opensource", s.CreateOpenSource)
	mentor.Get("/opensource", s.ListOpenSource)
	mentor.Post("/badges", s.CreateBadge)
	mentor.Get("/badges", s.ListBadges)
	mentor.Put("/availability", s.ReplaceAvailability)
	mentor.Get("/availability", s.ListAvailability)
	mentor.Post("/unavailable", s.CreateUnavailableDate)
	mentor.Get("/unavailable", s.ListUnavailableDates)

	// Session routes
	sessions := api.Group("/sessions")
	sessions.Post("/", s.CreateSession)
	sessions.Get("/user/:userId", s.ListUserSessions)
	sessions.Get("/stats/:userId", s.GetSessionStats)
	sessions.Get("/mentor/:mentorId/reviews", s.ListMentorReviews)
	sessions.Post("/:sessionId/reviews", middleware.RateLimit(
		s.redis, 10, time.Minute, "create_review"), s.CreateReview)
	sessions.Get("/:sessionId/reviews", s.ListSessionReviews)
	sessions.Patch("/:sessionId/status", s.UpdateSessionStatus)
	sessions.Patch("/:sessionId/outcome", s.UpdateSessionOutcome)
	sessions.Get("/:sessionId", s.GetSession)

	// Search routes
	search := api.Group("/search")
	search.Post("/mentors", middleware.RateLimit(
		s.redis, 30, time.Minute, "search_mentors"), s.SearchMentors)
	search.Get("/top-mentors", s.TopMentors)

	// Testimonial routes
	testimonials := api.Group("/testimonials")
	testimonials.Post("/", s.CreateTestimonial)
	testimonials.Get("/mentor/:mentorProfileId", s.ListTestimonials)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// Degraded but serving: caching and rate limiting are best effort.
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}
