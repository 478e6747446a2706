package service

import (
	"context"
	"time"

	"gitmentor/internal/middleware"
	"gitmentor/internal/models"
	"gitmentor/internal/repository"
)

// IngestService turns a GitHub OAuth payload into local user, GitHub profile
// and contributor profile records. Ingestion is idempotent per GitHub id.
type IngestService struct {
	userRepo        repository.UserRepository
	githubRepo      repository.GithubProfileRepository
	contributorRepo repository.ContributorProfileRepository
}

// IngestInput is the normalized GitHub callback payload. GithubID, Username
// and Email are required; everything else defaults to its zero value.
type IngestInput struct {
	GithubID         string     `json:"githubId"`
	Username         string     `json:"username"`
	Email            string     `json:"email"`
	DisplayName      string     `json:"displayName"`
	Avatar           string     `json:"avatar"`
	ProfileURL       string     `json:"profileUrl"`
	AccessToken      string     `json:"accessToken"`
	Bio              string     `json:"bio"`
	Company          string     `json:"company"`
	Location         string     `json:"location"`
	BlogURL          string     `json:"blogUrl"`
	TwitterUsername  string     `json:"twitterUsername"`
	PublicRepos      int        `json:"publicRepos"`
	PublicGists      int        `json:"publicGists"`
	Followers        int        `json:"followers"`
	Following        int        `json:"following"`
	TotalStars       int        `json:"totalStarsReceived"`
	TotalCommits     int        `json:"totalCommits"`
	AccountCreatedAt *time.Time `json:"accountCreatedAt"`
}

// IngestResult pairs the upserted user with the onboarding checklist of
// profile fields still missing.
type IngestResult struct {
	User            *models.User `json:"user"`
	GithubProfileID uint         `json:"githubProfileId"`
	IsNewUser       bool         `json:"isNewUser"`
	MissingFields   []string     `json:"missingFields"`
}

func NewIngestService(
	userRepo repository.UserRepository,
	githubRepo repository.GithubProfileRepository,
	contributorRepo repository.ContributorProfileRepository,
) *IngestService {
	return &IngestService{
		userRepo:        userRepo,
		githubRepo:      githubRepo,
		contributorRepo: contributorRepo,
	}
}

// Ingest upserts the user keyed on GitHub id, overwrites the GitHub profile
// snapshot, and ensures a contributor profile exists. The contributor profile
// is created once and never overwritten; re-ingesting an existing user
// refreshes identity and GitHub data only.
func (s *IngestService) Ingest(ctx context.Context, in IngestInput) (*IngestResult, error) {
	if in.GithubID == "" || in.Username == "" || in.Email == "" {
		return nil, models.NewValidationError("githubId, username and email are required")
	}

	user, err := s.userRepo.GetByGithubID(ctx, in.GithubID)
	if err != nil {
		return nil, err
	}

	isNew := user == nil
	if isNew {
		user = &models.User{
			GithubID:    in.GithubID,
			Username:    in.Username,
			Email:       in.Email,
			DisplayName: in.DisplayName,
			Avatar:      in.Avatar,
			ProfileURL:  in.ProfileURL,
			AccessToken: in.AccessToken,
			Role:        models.RoleContributor,
			IsActive:    true,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	} else {
		user.Username = in.Username
		user.Email = in.Email
		user.DisplayName = in.DisplayName
		user.Avatar = in.Avatar
		user.ProfileURL = in.ProfileURL
		if in.AccessToken != "" {
			user.AccessToken = in.AccessToken
		}
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	profile := &models.GithubProfile{
		UserID:             user.ID,
		GithubUsername:     in.Username,
		GithubID:           in.GithubID,
		ProfileURL:         in.ProfileURL,
		Bio:                in.Bio,
		Company:            in.Company,
		Location:           in.Location,
		BlogURL:            in.BlogURL,
		TwitterUsername:    in.TwitterUsername,
		PublicRepos:        in.PublicRepos,
		PublicGists:        in.PublicGists,
		Followers:          in.Followers,
		Following:          in.Following,
		TotalStarsReceived: in.TotalStars,
		TotalCommits:       in.TotalCommits,
		AccountCreatedAt:   in.AccountCreatedAt,
		LastSyncedAt:       time.Now().UTC(),
	}
	if err := s.githubRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	existing, err := s.contributorRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		if err := s.contributorRepo.Create(ctx, &models.ContributorProfile{UserID: user.ID}); err != nil {
			return nil, err
		}
	}

	middleware.Logger.InfoContext(ctx, "github ingestion complete",
		"user_id", user.ID, "github_id", in.GithubID, "new_user", isNew)

	return &IngestResult{
		User:            user,
		GithubProfileID: profile.ID,
		IsNewUser:       isNew,
		MissingFields:   MissingFields(user, profile),
	}, nil
}

// MissingFields lists profile fields the user has not filled in yet, in a
// fixed order. The names are wire-level identifiers consumed by onboarding
// clients and must not change.
func MissingFields(user *models.User, profile *models.GithubProfile) []string {
	missing := []string{}
	if user.Timezone == "" {
		missing = append(missing, "timezone")
	}
	if user.PhoneNumber == "" {
		missing = append(missing, "phone_number")
	}
	if user.PreferredLanguage == "" {
		missing = append(missing, "preferredLanguage")
	}
	if profile == nil || profile.Bio == "" {
		missing = append(missing, "bio")
	}
	if profile == nil || profile.Company == "" {
		missing = append(missing, "company")
	}
	if profile == nil || profile.Location == "" {
		missing = append(missing, "location")
	}
	if profile == nil || profile.BlogURL == "" {
		missing = append(missing, "blogUrl")
	}
	return missing
}

// RecordContribution upserts one per-day GitHub activity row.
func (s *IngestService) RecordContribution(ctx context.Context, c *models.GithubContribution) error {
	if c.UserID == 0 || c.Date.IsZero() {
		return models.NewValidationError("userId and date are required")
	}
	return s.githubRepo.UpsertContribution(ctx, c)
}
