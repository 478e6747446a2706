package service

import (
	"context"
	"errors"

	"gitmentor/internal/models"
	"gitmentor/internal/repository"
)

func errCode(err error) string {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByGithubIDFn func(context.Context, string) (*models.User, error)
	listByIDsFn     func(context.Context, []uint) (map[uint]models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	updateFieldsFn  func(context.Context, uint, map[string]interface{}) (*models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByGithubID(ctx context.Context, githubID string) (*models.User, error) {
	return s.getByGithubIDFn(ctx, githubID)
}
func (s *userRepoStub) ListByIDs(ctx context.Context, ids []uint) (map[uint]models.User, error) {
	return s.listByIDsFn(ctx, ids)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (*models.User, error) {
	return s.updateFieldsFn(ctx, id, fields)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByGithubIDFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		listByIDsFn: func(_ context.Context, ids []uint) (map[uint]models.User, error) {
			out := map[uint]models.User{}
			for _, id := range ids {
				out[id] = models.User{ID: id}
			}
			return out, nil
		},
		createFn:       func(context.Context, *models.User) error { return nil },
		updateFn:       func(context.Context, *models.User) error { return nil },
		updateFieldsFn: func(_ context.Context, id uint, _ map[string]interface{}) (*models.User, error) { return &models.User{ID: id}, nil },
	}
}

type mentorRepoStub struct {
	getByIDFn          func(context.Context, uint) (*models.MentorProfile, error)
	getByUserIDFn      func(context.Context, uint) (*models.MentorProfile, error)
	createFn           func(context.Context, *models.MentorProfile) error
	updateFieldsFn     func(context.Context, uint, map[string]interface{}) (*models.MentorProfile, error)
	findAvailableFn    func(context.Context, repository.MentorFilter) ([]models.MentorProfile, error)
	topByRatingFn      func(context.Context, int) ([]models.MentorProfile, error)
	incrementCounterFn func(context.Context, uint, string) error
	updateRatingsFn    func(context.Context, uint, repository.RatingSet) error
}

func (s *mentorRepoStub) GetByID(ctx context.Context, id uint) (*models.MentorProfile, error) {
	return s.getByIDFn(ctx, id)
}
func (s *mentorRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.MentorProfile, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *mentorRepoStub) Create(ctx context.Context, profile *models.MentorProfile) error {
	return s.createFn(ctx, profile)
}
func (s *mentorRepoStub) UpdateFields(ctx context.Context, userID uint, fields map[string]interface{}) (*models.MentorProfile, error) {
	return s.updateFieldsFn(ctx, userID, fields)
}
func (s *mentorRepoStub) FindAvailable(ctx context.Context, filter repository.MentorFilter) ([]models.MentorProfile, error) {
	return s.findAvailableFn(ctx, filter)
}
func (s *mentorRepoStub) TopByRating(ctx context.Context, limit int) ([]models.MentorProfile, error) {
	return s.topByRatingFn(ctx, limit)
}
func (s *mentorRepoStub) IncrementCounter(ctx context.Context, profileID uint, column string) error {
	return s.incrementCounterFn(ctx, profileID, column)
}
func (s *mentorRepoStub) UpdateRatings(ctx context.Context, profileID uint, ratings repository.RatingSet) error {
	return s.updateRatingsFn(ctx, profileID, ratings)
}

func noopMentorRepo() *mentorRepoStub {
	return &mentorRepoStub{
		getByIDFn:     func(_ context.Context, id uint) (*models.MentorProfile, error) { return &models.MentorProfile{ID: id}, nil },
		getByUserIDFn: func(context.Context, uint) (*models.MentorProfile, error) { return nil, nil },
		createFn:      func(context.Context, *models.MentorProfile) error { return nil },
		updateFieldsFn: func(_ context.Context, userID uint, _ map[string]interface{}) (*models.MentorProfile, error) {
			return &models.MentorProfile{UserID: userID}, nil
		},
		findAvailableFn:    func(context.Context, repository.MentorFilter) ([]models.MentorProfile, error) { return nil, nil },
		topByRatingFn:      func(context.Context, int) ([]models.MentorProfile, error) { return nil, nil },
		incrementCounterFn: func(context.Context, uint, string) error { return nil },
		updateRatingsFn:    func(context.Context, uint, repository.RatingSet) error { return nil },
	}
}

type reviewRepoStub struct {
	createFn                 func(context.Context, *models.SessionReview) error
	listBySessionFn          func(context.Context, uint) ([]models.SessionReview, error)
	listForRevieweeFn        func(context.Context, uint, *float64, int) ([]models.SessionReview, error)
	findContributorReviewsFn func(context.Context, uint) ([]models.SessionReview, error)
}

func (s *reviewRepoStub) Create(ctx context.Context, review *models.SessionReview) error {
	return s.createFn(ctx, review)
}
func (s *reviewRepoStub) ListBySession(ctx context.Context, sessionID uint) ([]models.SessionReview, error) {
	return s.listBySessionFn(ctx, sessionID)
}
func (s *reviewRepoStub) ListForReviewee(ctx context.Context, revieweeID uint, minRating *float64, limit int) ([]models.SessionReview, error) {
	return s.listForRevieweeFn(ctx, revieweeID, minRating, limit)
}
func (s *reviewRepoStub) FindContributorReviews(ctx context.Context, revieweeID uint) ([]models.SessionReview, error) {
	return s.findContributorReviewsFn(ctx, revieweeID)
}

func noopReviewRepo() *reviewRepoStub {
	return &reviewRepoStub{
		createFn:        func(context.Context, *models.SessionReview) error { return nil },
		listBySessionFn: func(context.Context, uint) ([]models.SessionReview, error) { return nil, nil },
		listForRevieweeFn: func(context.Context, uint, *float64, int) ([]models.SessionReview, error) {
			return nil, nil
		},
		findContributorReviewsFn: func(context.Context, uint) ([]models.SessionReview, error) { return nil, nil },
	}
}

type sessionRepoStub struct {
	createFn        func(context.Context, *models.Session) error
	getByIDFn       func(context.Context, uint) (*models.Session, error)
	listByUserFn    func(context.Context, uint, string, models.SessionStatus) ([]models.Session, error)
	updateStatusFn  func(context.Context, uint, models.SessionStatus) (*models.Session, error)
	updateOutcomeFn func(context.Context, uint, map[string]interface{}) (*models.Session, error)
	listForStatsFn  func(context.Context, uint, string) ([]models.Session, error)
}

func (s *sessionRepoStub) Create(ctx context.Context, session *models.Session) error {
	return s.createFn(ctx, session)
}
func (s *sessionRepoStub) GetByID(ctx context.Context, id uint) (*models.Session, error) {
	return s.getByIDFn(ctx, id)
}
func (s *sessionRepoStub) ListByUser(ctx context.Context, userID uint, role string, status models.SessionStatus) ([]models.Session, error) {
	return s.listByUserFn(ctx, userID, role, status)
}
func (s *sessionRepoStub) UpdateStatus(ctx context.Context, id uint, status models.SessionStatus) (*models.Session, error) {
	return s.updateStatusFn(ctx, id, status)
}
func (s *sessionRepoStub) UpdateOutcome(ctx context.Context, id uint, fields map[string]interface{}) (*models.Session, error) {
	return s.updateOutcomeFn(ctx, id, fields)
}
func (s *sessionRepoStub) ListForStats(ctx context.Context, userID uint, role string) ([]models.Session, error) {
	return s.listForStatsFn(ctx, userID, role)
}

func noopSessionRepo() *sessionRepoStub {
	return &sessionRepoStub{
		createFn:  func(context.Context, *models.Session) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Session, error) { return &models.Session{ID: id}, nil },
		listByUserFn: func(context.Context, uint, string, models.SessionStatus) ([]models.Session, error) {
			return nil, nil
		},
		updateStatusFn: func(_ context.Context, id uint, status models.SessionStatus) (*models.Session, error) {
			return &models.Session{ID: id, Status: status}, nil
		},
		updateOutcomeFn: func(_ context.Context, id uint, _ map[string]interface{}) (*models.Session, error) {
			return &models.Session{ID: id}, nil
		},
		listForStatsFn: func(context.Context, uint, string) ([]models.Session, error) { return nil, nil },
	}
}

type skillRepoStub struct {
	upsertSkillFn          func(context.Context, *models.MentorSkill) error
	listSkillsFn           func(context.Context, uint) ([]models.MentorSkill, error)
	deleteSkillFn          func(context.Context, uint) error
	findMatchingFn         func(context.Context, []uint, []string) ([]models.MentorSkill, error)
	findForTechnologyFn    func(context.Context, []uint, string) ([]models.MentorSkill, error)
	upsertExpertiseFn      func(context.Context, *models.MentorExpertise) error
	listExpertiseFn        func(context.Context, uint) ([]models.MentorExpertise, error)
	upsertSpecializationFn func(context.Context, *models.MentorSpecialization) error
	listSpecializationsFn  func(context.Context, uint) ([]models.MentorSpecialization, error)
}

func (s *skillRepoStub) UpsertSkill(ctx context.Context, skill *models.MentorSkill) error {
	return s.upsertSkillFn(ctx, skill)
}
func (s *skillRepoStub) ListSkills(ctx context.Context, profileID uint) ([]models.MentorSkill, error) {
	return s.listSkillsFn(ctx, profileID)
}
func (s *skillRepoStub) DeleteSkill(ctx context.Context, skillID uint) error {
	return s.deleteSkillFn(ctx, skillID)
}
func (s *skillRepoStub) FindMatching(ctx context.Context, profileIDs []uint, skillNames []string) ([]models.MentorSkill, error) {
	return s.findMatchingFn(ctx, profileIDs, skillNames)
}
func (s *skillRepoStub) FindForTechnology(ctx context.Context, profileIDs []uint, technology string) ([]models.MentorSkill, error) {
	return s.findForTechnologyFn(ctx, profileIDs, technology)
}
func (s *skillRepoStub) UpsertExpertise(ctx context.Context, expertise *models.MentorExpertise) error {
	return s.upsertExpertiseFn(ctx, expertise)
}
func (s *skillRepoStub) ListExpertise(ctx context.Context, profileID uint) ([]models.MentorExpertise, error) {
	return s.listExpertiseFn(ctx, profileID)
}
func (s *skillRepoStub) UpsertSpecialization(ctx context.Context, specialization *models.MentorSpecialization) error {
	return s.upsertSpecializationFn(ctx, specialization)
}
func (s *skillRepoStub) ListSpecializations(ctx context.Context, profileID uint) ([]models.MentorSpecialization, error) {
	return s.listSpecializationsFn(ctx, profileID)
}

func noopSkillRepo() *skillRepoStub {
	return &skillRepoStub{
		upsertSkillFn:          func(context.Context, *models.MentorSkill) error { return nil },
		listSkillsFn:           func(context.Context, uint) ([]models.MentorSkill, error) { return nil, nil },
		deleteSkillFn:          func(context.Context, uint) error { return nil },
		findMatchingFn:         func(context.Context, []uint, []string) ([]models.MentorSkill, error) { return nil, nil },
		findForTechnologyFn:    func(context.Context, []uint, string) ([]models.MentorSkill, error) { return nil, nil },
		upsertExpertiseFn:      func(context.Context, *models.MentorExpertise) error { return nil },
		listExpertiseFn:        func(context.Context, uint) ([]models.MentorExpertise, error) { return nil, nil },
		upsertSpecializationFn: func(context.Context, *models.MentorSpecialization) error { return nil },
		listSpecializationsFn:  func(context.Context, uint) ([]models.MentorSpecialization, error) { return nil, nil },
	}
}

type auditRepoStub struct {
	recordFn func(context.Context, *models.SearchQuery) error
}

func (s *auditRepoStub) Record(ctx context.Context, q *models.SearchQuery) error {
	return s.recordFn(ctx, q)
}

type githubRepoStub struct {
	getByUserIDFn        func(context.Context, uint) (*models.GithubProfile, error)
	upsertFn             func(context.Context, *models.GithubProfile) error
	upsertContributionFn func(context.Context, *models.GithubContribution) error
}

func (s *githubRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.GithubProfile, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *githubRepoStub) Upsert(ctx context.Context, profile *models.GithubProfile) error {
	return s.upsertFn(ctx, profile)
}
func (s *githubRepoStub) UpsertContribution(ctx context.Context, c *models.GithubContribution) error {
	return s.upsertContributionFn(ctx, c)
}

func noopGithubRepo() *githubRepoStub {
	return &githubRepoStub{
		getByUserIDFn:        func(context.Context, uint) (*models.GithubProfile, error) { return nil, nil },
		upsertFn:             func(context.Context, *models.GithubProfile) error { return nil },
		upsertContributionFn: func(context.Context, *models.GithubContribution) error { return nil },
	}
}

type contributorRepoStub struct {
	getByUserIDFn  func(context.Context, uint) (*models.ContributorProfile, error)
	createFn       func(context.Context, *models.ContributorProfile) error
	updateFieldsFn func(context.Context, uint, map[string]interface{}) (*models.ContributorProfile, error)
}

func (s *contributorRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.ContributorProfile, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *contributorRepoStub) Create(ctx context.Context, profile *models.ContributorProfile) error {
	return s.createFn(ctx, profile)
}
func (s *contributorRepoStub) UpdateFields(ctx context.Context, userID uint, fields map[string]interface{}) (*models.ContributorProfile, error) {
	return s.updateFieldsFn(ctx, userID, fields)
}

func noopContributorRepo() *contributorRepoStub {
	return &contributorRepoStub{
		getByUserIDFn: func(context.Context, uint) (*models.ContributorProfile, error) { return nil, nil },
		createFn:      func(context.Context, *models.ContributorProfile) error { return nil },
		updateFieldsFn: func(_ context.Context, userID uint, _ map[string]interface{}) (*models.ContributorProfile, error) {
			return &models.ContributorProfile{UserID: userID}, nil
		},
	}
}

func floatPtr(v float64) *float64 { return &v }
