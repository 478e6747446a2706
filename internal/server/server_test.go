package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gitmentor/internal/config"
	"gitmentor/internal/database"
	"gitmentor/internal/models"
)

var (
	setupOnce sync.Once
	testApp   *fiber.App
	testDB    *gorm.DB
	setupErr  error
)

// setupTest builds one shared app over an in-memory sqlite database. The
// prometheus middleware registers collectors in the global registry, so the
// server must only be constructed once per test binary.
func setupTest(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	setupOnce.Do(func() {
		db, err := gorm.Open(sqlite.Open("file:handlertests?mode=memory&cache=shared"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			setupErr = err
			return
		}
		sqlDB, err := db.DB()
		if err != nil {
			setupErr = err
			return
		}
		sqlDB.SetMaxOpenConns(1)

		if err := database.Migrate(db); err != nil {
			setupErr = err
			return
		}

		cfg := &config.Config{Env: "test", Port: "0"}
		srv, err := NewServerWithDeps(cfg, db, nil)
		if err != nil {
			setupErr = err
			return
		}

		app := fiber.New()
		srv.SetupRoutes(app)

		testApp = app
		testDB = db
	})
	require.NoError(t, setupErr)
	return testApp, testDB
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, int(10*time.Second/time.Millisecond))
	require.NoError(t, err)

	payload := map[string]interface{}{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &payload))
	}
	return resp, payload
}

func callbackPayload(githubID, username string) map[string]interface{} {
	return map[string]interface{}{
		"githubId":    githubID,
		"username":    username,
		"email":       username + "@example.com",
		"displayName": username,
		"bio":         "builds things",
		"company":     "ACME",
		"location":    "Berlin",
		"blogUrl":     "https://" + username + ".dev",
	}
}

func ingestUser(t *testing.T, app *fiber.App, username string) uint {
	t.Helper()
	resp, body := doJSON(t, app, fiber.MethodPost, "/api/auth/github-callback",
		callbackPayload("gh-"+username, username))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return uint(body["userId"].(float64))
}

func TestGithubCallbackCreatesThenUpdates(t *testing.T) {
	app, db := setupTest(t)

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/auth/github-callback",
		callbackPayload("gh-77001", "callbackuser"))
	// New and known users both get 200; the body flags which one it was.
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["isNewUser"])
	assert.Equal(t, "contributor", body["role"])
	// Identity fields were supplied, only the onboarding ones remain.
	assert.ElementsMatch(t, []interface{}{"timezone", "phone_number", "preferredLanguage"}, body["missingFields"])

	resp, body = doJSON(t, app, fiber.MethodPost, "/api/auth/github-callback",
		callbackPayload("gh-77001", "callbackuser"))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["isNewUser"])

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("github_id = ?", "gh-77001").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGithubCallbackRejectsIncompletePayload(t *testing.T) {
	app, _ := setupTest(t)

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/auth/github-callback",
		map[string]interface{}{"username": "nobody"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
}

func TestCreateMentorProfilePromotesRoleAndRejectsDuplicate(t *testing.T) {
	app, db := setupTest(t)
	userID := ingestUser(t, app, "newmentor")

	resp, body := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/api/profile/mentor/%d", userID),
		map[string]interface{}{"headline": "Go mentor", "hourlyRate": 60})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["isAvailable"])
	assert.EqualValues(t, 30, body["minSessionDuration"])

	var user models.User
	require.NoError(t, db.First(&user, userID).Error)
	assert.Equal(t, models.RoleBoth, user.Role)

	resp, _ = doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/api/profile/mentor/%d", userID),
		map[string]interface{}{"headline": "again"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestSessionLifecycleMaintainsCounters(t *testing.T) {
	app, db := setupTest(t)
	contributorID := ingestUser(t, app, "studentone")
	mentorUserID := ingestUser(t, app, "mentorone")

	resp, _ := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/api/profile/mentor/%d", mentorUserID),
		map[string]interface{}{"headline": "debugger"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, session := doJSON(t, app, fiber.MethodPost, "/api/sessions", map[string]interface{}{
		"contributorId":      contributorID,
		"mentorId":           mentorUserID,
		"scheduledDate":      time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"scheduledStartTime": "18:00",
		"scheduledEndTime":   "19:00",
		"topic":              "fixing a data race",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "pending", session["status"])
	sessionID := uint(session["id"].(float64))

	resp, updated := doJSON(t, app, fiber.MethodPatch,
		fmt.Sprintf("/api/sessions/%d/status", sessionID),
		map[string]interface{}{"status": "completed"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "completed", updated["status"])

	var profile models.MentorProfile
	require.NoError(t, db.Where("user_id = ?", mentorUserID).First(&profile).Error)
	assert.Equal(t, 1, profile.TotalSessions)
	assert.Equal(t, 1, profile.CompletedSessions)

	resp, stats := doJSON(t, app, fiber.MethodGet,
		fmt.Sprintf("/api/sessions/stats/%d?role=mentor", mentorUserID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, stats["total"])
	assert.EqualValues(t, 1, stats["completed"])
}

func TestContributorReviewRecomputesMentorRatings(t *testing.T) {
	app, db := setupTest(t)
	contributorID := ingestUser(t, app, "reviewstudent")
	mentorUserID := ingestUser(t, app, "reviewmentor")

	resp, _ := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/api/profile/mentor/%d", mentorUserID),
		map[string]interface{}{"headline": "patient"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, session := doJSON(t, app, fiber.MethodPost, "/api/sessions", map[string]interface{}{
		"contributorId":      contributorID,
		"mentorId":           mentorUserID,
		"scheduledDate":      time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"scheduledStartTime": "10:00",
		"scheduledEndTime":   "11:00",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	sessionID := uint(session["id"].(float64))

	resp, _ = doJSON(t, app, fiber.MethodPost,
		fmt.Sprintf("/api/sessions/%d/reviews", sessionID),
		map[string]interface{}{
			"reviewerId":    contributorID,
			"revieweeId":    mentorUserID,
			"reviewerType":  "contributor",
			"overallRating": 5,
			"clarityRating": 4,
		})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var profile models.MentorProfile
	require.NoError(t, db.Where("user_id = ?", mentorUserID).First(&profile).Error)
	assert.InDelta(t, 5.0, profile.OverallRating, 1e-9)
	assert.InDelta(t, 4.0, profile.ClarityRating, 1e-9)
	// Omitted sub-ratings pull their dimension to zero, not skip it.
	assert.InDelta(t, 0.0, profile.PatienceRating, 1e-9)

	// The same reviewer cannot review the session twice.
	resp, _ = doJSON(t, app, fiber.MethodPost,
		fmt.Sprintf("/api/sessions/%d/reviews", sessionID),
		map[string]interface{}{
			"reviewerId":    contributorID,
			"revieweeId":    mentorUserID,
			"reviewerType":  "contributor",
			"overallRating": 1,
		})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestSearchMentorsFiltersByTechnology(t *testing.T) {
	app, _ := setupTest(t)
	mentorUserID := ingestUser(t, app, "searchmentor")

	resp, profile := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/api/profile/mentor/%d", mentorUserID),
		map[string]interface{}{"headline": "go person", "studentLevelPreference": []string{"beginner"}})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	profileID := uint(profile["id"].(float64))

	resp, _ = doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/api/mentor/%d/skills", profileID),
		map[string]interface{}{
			"skills": []map[string]interface{}{
				{"skillName": "go", "proficiencyLevel": "expert"},
			},
		})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/search/mentors",
		map[string]interface{}{"technologies": []string{"go"}, "studentLevel": "beginner"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.GreaterOrEqual(t, body["count"].(float64), 1.0)
	mentors, ok := body["mentors"].([]interface{})
	require.True(t, ok)
	assert.Len(t, mentors, int(body["count"].(float64)))

	resp, body = doJSON(t, app, fiber.MethodPost, "/api/search/mentors",
		map[string]interface{}{"technologies": []string{"cobol-on-wheelchair"}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 0, body["count"])
}

func TestParseIDErrors(t *testing.T) {
	app, _ := setupTest(t)

	resp, body := doJSON(t, app, fiber.MethodGet, "/api/sessions/abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])

	resp, body = doJSON(t, app, fiber.MethodGet, "/api/sessions/424242", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestHealthEndpoints(t *testing.T) {
	app, _ := setupTest(t)

	resp, body := doJSON(t, app, fiber.MethodGet, "/health/live", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "up", body["status"])

	resp, body = doJSON(t, app, fiber.MethodGet, "/health/ready", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	checks := body["checks"].(map[string]interface{})
	assert.Equal(t, "healthy", checks["database"])
	// No redis in tests: degraded, not failing.
	assert.Equal(t, "unavailable", checks["redis"])
}
