package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitmentor/internal/models"
)

func validIngestInput() IngestInput {
	return IngestInput{
		GithubID:    "gh-12345",
		Username:    "octocat",
		Email:       "octocat@example.com",
		DisplayName: "The Octocat",
		Avatar:      "https://avatars.example.com/octocat",
		AccessToken: "gho_secret",
		Bio:         "I build things",
		Company:     "GitHub",
		Location:    "San Francisco",
		BlogURL:     "https://octocat.blog",
	}
}

func TestIngestRejectsMissingIdentityFields(t *testing.T) {
	svc := NewIngestService(noopUserRepo(), noopGithubRepo(), noopContributorRepo())

	for _, mutate := range []func(*IngestInput){
		func(in *IngestInput) { in.GithubID = "" },
		func(in *IngestInput) { in.Username = "" },
		func(in *IngestInput) { in.Email = "" },
	} {
		in := validIngestInput()
		mutate(&in)
		_, err := svc.Ingest(context.Background(), in)
		assert.Equal(t, "VALIDATION_ERROR", errCode(err))
	}
}

func TestIngestCreatesNewUserAsContributor(t *testing.T) {
	var createdUser *models.User
	userRepo := noopUserRepo()
	userRepo.getByGithubIDFn = func(context.Context, string) (*models.User, error) { return nil, nil }
	userRepo.createFn = func(_ context.Context, u *models.User) error {
		u.ID = 1
		createdUser = u
		return nil
	}

	var contributorCreated bool
	contributorRepo := noopContributorRepo()
	contributorRepo.createFn = func(_ context.Context, p *models.ContributorProfile) error {
		contributorCreated = true
		assert.Equal(t, uint(1), p.UserID)
		return nil
	}

	var upserted *models.GithubProfile
	githubRepo := noopGithubRepo()
	githubRepo.upsertFn = func(_ context.Context, p *models.GithubProfile) error {
		p.ID = 44
		upserted = p
		return nil
	}

	svc := NewIngestService(userRepo, githubRepo, contributorRepo)
	result, err := svc.Ingest(context.Background(), validIngestInput())
	require.NoError(t, err)

	assert.True(t, result.IsNewUser)
	assert.Equal(t, uint(44), result.GithubProfileID)
	require.NotNil(t, createdUser)
	assert.Equal(t, models.RoleContributor, createdUser.Role)
	assert.True(t, createdUser.IsActive)
	assert.True(t, contributorCreated)
	require.NotNil(t, upserted)
	assert.Equal(t, uint(1), upserted.UserID)
	assert.False(t, upserted.LastSyncedAt.IsZero())
}

func TestIngestExistingUserRefreshesWithoutNewProfiles(t *testing.T) {
	userRepo := noopUserRepo()
	userRepo.getByGithubIDFn = func(context.Context, string) (*models.User, error) {
		return &models.User{ID: 5, GithubID: "gh-12345", Role: models.RoleBoth, AccessToken: "gho_old"}, nil
	}
	userRepo.createFn = func(context.Context, *models.User) error {
		t.Fatal("existing users must be updated, not created")
		return nil
	}
	var updated *models.User
	userRepo.updateFn = func(_ context.Context, u *models.User) error {
		updated = u
		return nil
	}

	contributorRepo := noopContributorRepo()
	contributorRepo.getByUserIDFn = func(context.Context, uint) (*models.ContributorProfile, error) {
		return &models.ContributorProfile{UserID: 5, PreferredSessionDuration: 90}, nil
	}
	contributorRepo.createFn = func(context.Context, *models.ContributorProfile) error {
		t.Fatal("existing contributor profiles must never be overwritten")
		return nil
	}

	svc := NewIngestService(userRepo, noopGithubRepo(), contributorRepo)
	in := validIngestInput()
	in.AccessToken = ""
	result, err := svc.Ingest(context.Background(), in)
	require.NoError(t, err)

	assert.False(t, result.IsNewUser)
	require.NotNil(t, updated)
	// Role survives re-ingestion, and a blank token never clobbers the stored one.
	assert.Equal(t, models.RoleBoth, updated.Role)
	assert.Equal(t, "gho_old", updated.AccessToken)
	assert.Equal(t, "octocat", updated.Username)
}

func TestMissingFieldsOrderAndNames(t *testing.T) {
	user := &models.User{}
	assert.Equal(t,
		[]string{"timezone", "phone_number", "preferredLanguage", "bio", "company", "location", "blogUrl"},
		MissingFields(user, nil))

	full := &models.User{Timezone: "UTC", PhoneNumber: "+1555", PreferredLanguage: "en"}
	profile := &models.GithubProfile{Bio: "b", Company: "c", Location: "l", BlogURL: "https://x"}
	assert.Empty(t, MissingFields(full, profile))

	partial := &models.GithubProfile{Bio: "b", Company: "c", Location: "l"}
	assert.Equal(t, []string{"blogUrl"}, MissingFields(full, partial))
}

func TestRecordContributionValidation(t *testing.T) {
	svc := NewIngestService(noopUserRepo(), noopGithubRepo(), noopContributorRepo())

	err := svc.RecordContribution(context.Background(), &models.GithubContribution{})
	assert.Equal(t, "VALIDATION_ERROR", errCode(err))
}
