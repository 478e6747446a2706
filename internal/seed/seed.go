// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"gitmentor/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	MentorRatio float64
	NumSessions int
	ShouldClean bool
}

var (
	technologies = []string{
		"JavaScript", "TypeScript", "React", "Vue.js", "Node.js", "Go", "Python",
		"Rust", "Java", "Kotlin", "Swift", "PostgreSQL", "Redis", "Kafka",
		"Kubernetes", "Docker", "GraphQL", "AWS", "Terraform", "C++",
	}

	teachingStyles = []string{
		"hands-on", "practical", "patient", "structured", "in-depth",
		"professional", "example-driven", "thorough", "visual", "interactive",
	}

	studentLevels = []string{"beginner", "intermediate", "advanced"}

	problemTypes = []string{
		"debugging", "code-review", "architecture", "pr-review",
		"interview-prep", "open-source-onboarding",
	}

	specializationTypes = []string{
		"code review", "interview prep", "system design", "open source",
		"career guidance", "pair programming",
	}

	badgeNames = []string{
		"Rising Star", "Debugging Master", "FAANG Veteran", "Top Rated",
		"Open Source Hero", "Marathon Mentor",
	}

	headlines = []string{
		"Senior engineer helping contributors land their first PR",
		"Distributed systems mentor, happy to pair on hard bugs",
		"Frontend specialist with a soft spot for design systems",
		"Backend performance tuning and code review",
		"Open source maintainer guiding first-time contributors",
	}
)

// Seeder populates the database with demo data.
type Seeder struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll deletes all seeded data. Child tables go first so foreign keys
// never dangle mid-wipe.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	tables := []interface{}{
		&models.SearchQuery{},
		&models.Testimonial{},
		&models.SessionReview{},
		&models.Session{},
		&models.MentorUnavailableDate{},
		&models.MentorAvailability{},
		&models.MentorBadge{},
		&models.OpenSourceAchievement{},
		&models.CompetitionExperience{},
		&models.Certification{},
		&models.WorkExperience{},
		&models.MentorSpecialization{},
		&models.MentorExpertise{},
		&models.MentorSkill{},
		&models.MentorProfile{},
		&models.ContributorProfile{},
		&models.GithubContribution{},
		&models.GithubProfile{},
		&models.User{},
	}
	for _, table := range tables {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return err
		}
	}
	return nil
}

// Run seeds the full demo data set and returns the created users.
func (s *Seeder) Run(opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 25
	}
	if opts.MentorRatio <= 0 || opts.MentorRatio > 1 {
		opts.MentorRatio = 0.4
	}
	if opts.NumSessions <= 0 {
		opts.NumSessions = opts.NumUsers * 3
	}

	log.Printf("Seeding %d users (%.0f%% mentors), %d sessions...",
		opts.NumUsers, opts.MentorRatio*100, opts.NumSessions)

	users, err := s.seedUsers(opts.NumUsers)
	if err != nil {
		return err
	}

	var mentors []models.MentorProfile
	numMentors := int(float64(len(users)) * opts.MentorRatio)
	for i := 0; i < numMentors; i++ {
		profile, err := s.seedMentor(&users[i])
		if err != nil {
			return err
		}
		mentors = append(mentors, *profile)
	}

	if err := s.seedSessions(users, mentors, opts.NumSessions); err != nil {
		return err
	}

	log.Printf("Seeded %d users, %d mentors, %d sessions.",
		len(users), len(mentors), opts.NumSessions)
	return nil
}

func (s *Seeder) seedUsers(n int) ([]models.User, error) {
	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		username := fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999))
		user := models.User{
			GithubID:          fmt.Sprintf("%d", gofakeit.Number(1_000_000, 99_999_999)),
			Username:          username,
			DisplayName:       gofakeit.Name(),
			Email:             gofakeit.Email(),
			Avatar:            fmt.Sprintf("https://avatars.githubusercontent.com/u/%d", gofakeit.Number(1, 9_999_999)),
			ProfileURL:        fmt.Sprintf("https://github.com/%s", username),
			Role:              models.RoleContributor,
			Timezone:          gofakeit.TimeZoneRegion(),
			PreferredLanguage: "en",
			IsActive:          true,
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, err
		}

		accountCreated := gofakeit.DateRange(
			time.Now().AddDate(-10, 0, 0), time.Now().AddDate(-1, 0, 0))
		githubProfile := models.GithubProfile{
			UserID:             user.ID,
			GithubUsername:     user.Username,
			GithubID:           user.GithubID,
			ProfileURL:         user.ProfileURL,
			Bio:                gofakeit.Sentence(10),
			Company:            gofakeit.Company(),
			Location:           fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.Country()),
			BlogURL:            gofakeit.URL(),
			PublicRepos:        gofakeit.Number(3, 120),
			PublicGists:        gofakeit.Number(0, 40),
			Followers:          gofakeit.Number(0, 2000),
			Following:          gofakeit.Number(0, 300),
			TotalStarsReceived: gofakeit.Number(0, 5000),
			TotalCommits:       gofakeit.Number(100, 12000),
			AccountCreatedAt:   &accountCreated,
			LastSyncedAt:       time.Now(),
		}
		if err := s.db.Create(&githubProfile).Error; err != nil {
			return nil, err
		}

		contributorProfile := models.ContributorProfile{
			UserID:                   user.ID,
			Bio:                      gofakeit.Sentence(8),
			Interests:                s.pick(technologies, 3),
			CurrentSkillLevel:        studentLevels[s.rng.Intn(len(studentLevels))],
			LearningGoals:            models.StringList{"land first PR", "learn " + technologies[s.rng.Intn(len(technologies))]},
			PreferredSessionDuration: 60,
			PreferredTeachingStyle:   s.pick(teachingStyles, 2),
			BudgetPerHour:            float64(gofakeit.Number(20, 120)),
		}
		if err := s.db.Create(&contributorProfile).Error; err != nil {
			return nil, err
		}

		users = append(users, user)
	}
	return users, nil
}

func (s *Seeder) seedMentor(user *models.User) (*models.MentorProfile, error) {
	profile := models.MentorProfile{
		UserID:                 user.ID,
		Bio:                    gofakeit.Paragraph(1, 2, 8, " "),
		Headline:               headlines[s.rng.Intn(len(headlines))],
		HourlyRate:             float64(gofakeit.Number(30, 200)),
		YearsOfExperience:      gofakeit.Number(2, 20),
		OverallRating:          s.rating(),
		TotalSessions:          gofakeit.Number(5, 120),
		IsAvailable:            s.rng.Float64() < 0.85,
		MinSessionDuration:     30,
		MaxSessionDuration:     120,
		TeachingStyle:          s.pick(teachingStyles, 3),
		StudentLevelPreference: s.pick(studentLevels, 2),
	}
	profile.CompletedSessions = int(float64(profile.TotalSessions) * 0.8)
	profile.CancelledSessions = profile.TotalSessions - profile.CompletedSessions
	profile.ClarityRating = s.rating()
	profile.PatienceRating = s.rating()
	profile.ResponseTimeRating = s.rating()
	profile.ProblemSolvingRating = s.rating()
	profile.FollowupRating = s.rating()
	if err := s.db.Create(&profile).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(user).Update("role", models.RoleBoth).Error; err != nil {
		return nil, err
	}

	for _, name := range s.pick(technologies, 4) {
		skill := models.MentorSkill{
			MentorProfileID:      profile.ID,
			SkillName:            name,
			ProficiencyLevel:     models.ProficiencyAdvanced,
			YearsOfExperience:    gofakeit.Number(1, 12),
			IsPrimarySkill:       s.rng.Float64() < 0.3,
			SessionCountForSkill: gofakeit.Number(0, 50),
			AvgRatingForSkill:    s.rating(),
		}
		if err := s.db.Create(&skill).Error; err != nil {
			return nil, err
		}
	}

	for _, area := range s.pick(problemTypes, 2) {
		expertise := models.MentorExpertise{
			MentorProfileID:  profile.ID,
			ExpertiseArea:    area,
			ProficiencyLevel: models.ProficiencyExpert,
			SessionCount:     gofakeit.Number(0, 40),
			AvgRating:        s.rating(),
		}
		if err := s.db.Create(&expertise).Error; err != nil {
			return nil, err
		}
	}

	spec := models.MentorSpecialization{
		MentorProfileID:    profile.ID,
		SpecializationType: specializationTypes[s.rng.Intn(len(specializationTypes))],
		ProficiencyLevel:   models.ProficiencyAdvanced,
		SessionCount:       gofakeit.Number(0, 30),
		SuccessRate:        0.5 + s.rng.Float64()*0.5,
	}
	if err := s.db.Create(&spec).Error; err != nil {
		return nil, err
	}

	start := gofakeit.DateRange(time.Now().AddDate(-8, 0, 0), time.Now().AddDate(-2, 0, 0))
	experience := models.WorkExperience{
		MentorProfileID:  profile.ID,
		CompanyName:      gofakeit.Company(),
		CompanyTier:      "startup",
		JobTitle:         gofakeit.JobTitle(),
		StartDate:        &start,
		IsCurrent:        true,
		TechnologiesUsed: s.pick(technologies, 3),
		Description:      gofakeit.Sentence(12),
	}
	if err := s.db.Create(&experience).Error; err != nil {
		return nil, err
	}

	badge := models.MentorBadge{
		MentorProfileID: profile.ID,
		BadgeName:       badgeNames[s.rng.Intn(len(badgeNames))],
		BadgeType:       "achievement",
		Description:     gofakeit.Sentence(6),
		EarnedAt:        gofakeit.DateRange(time.Now().AddDate(-2, 0, 0), time.Now()),
	}
	if err := s.db.Create(&badge).Error; err != nil {
		return nil, err
	}

	for day := 1; day <= 5; day++ {
		slot := models.MentorAvailability{
			MentorProfileID: profile.ID,
			DayOfWeek:       day,
			StartTime:       "18:00",
			EndTime:         "21:00",
			Timezone:        user.Timezone,
			IsRecurring:     true,
		}
		if err := s.db.Create(&slot).Error; err != nil {
			return nil, err
		}
	}

	return &profile, nil
}

func (s *Seeder) seedSessions(users []models.User, mentors []models.MentorProfile, n int) error {
	if len(mentors) == 0 || len(users) <= len(mentors) {
		return nil
	}
	contributors := users[len(mentors):]
	statuses := []models.SessionStatus{
		models.SessionStatusPending, models.SessionStatusConfirmed,
		models.SessionStatusCompleted, models.SessionStatusCompleted,
		models.SessionStatusCancelled,
	}

	for i := 0; i < n; i++ {
		contributor := contributors[s.rng.Intn(len(contributors))]
		mentor := mentors[s.rng.Intn(len(mentors))]
		status := statuses[s.rng.Intn(len(statuses))]

		session := models.Session{
			ContributorID:      contributor.ID,
			MentorID:           mentor.UserID,
			ScheduledDate:      gofakeit.DateRange(time.Now().AddDate(0, -3, 0), time.Now().AddDate(0, 1, 0)),
			ScheduledStartTime: "19:00",
			ScheduledEndTime:   "20:00",
			Topic:              gofakeit.Sentence(4),
			Description:        gofakeit.Sentence(15),
			ProblemType:        problemTypes[s.rng.Intn(len(problemTypes))],
			Technologies:       s.pick(technologies, 2),
			DifficultyLevel:    studentLevels[s.rng.Intn(len(studentLevels))],
			Status:             status,
			AgreedRate:         mentor.HourlyRate,
		}
		if status == models.SessionStatusCompleted {
			session.DurationMinutes = 60
			solved := s.rng.Float64() < 0.75
			session.ProblemSolved = &solved
		}
		if err := s.db.Create(&session).Error; err != nil {
			return err
		}

		if status == models.SessionStatusCompleted && s.rng.Float64() < 0.7 {
			clarity := s.rating()
			patience := s.rating()
			review := models.SessionReview{
				SessionID:      session.ID,
				ReviewerID:     contributor.ID,
				RevieweeID:     mentor.UserID,
				ReviewerType:   models.ReviewerContributor,
				OverallRating:  s.rating(),
				ClarityRating:  &clarity,
				PatienceRating: &patience,
				ReviewText:     gofakeit.Sentence(12),
				Pros:           models.StringList{"patient", "clear explanations"},
				WouldRecommend: boolPtr(true),
				IsVerified:     true,
			}
			if err := s.db.Create(&review).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) rating() float64 {
	// Skew toward the high end like real marketplace ratings.
	v := 3.0 + s.rng.Float64()*2.0
	return float64(int(v*10)) / 10
}

func (s *Seeder) pick(pool []string, n int) models.StringList {
	perm := s.rng.Perm(len(pool))
	if n > len(pool) {
		n = len(pool)
	}
	out := make(models.StringList, n)
	for i := 0; i < n; i++ {
		out[i] = pool[perm[i]]
	}
	return out
}

func boolPtr(b bool) *bool { return &b }
