package service

import (
	"context"

	"gitmentor/internal/cache"
	"gitmentor/internal/middleware"
	"gitmentor/internal/models"
	"gitmentor/internal/observability"
	"gitmentor/internal/repository"
)

const defaultTopMentorLimit = 10

// SearchService finds mentors matching a multi-dimensional query. The
// rate and rating predicates run in SQL; list-valued preferences are filtered
// in memory over the candidate set.
type SearchService struct {
	mentorRepo repository.MentorProfileRepository
	skillRepo  repository.SkillRepository
	userRepo   repository.UserRepository
	auditRepo  repository.SearchAuditRepository
}

// SearchInput is a mentor search query. TimezonePreference is recorded in
// the audit trail but does not filter results yet.
type SearchInput struct {
	UserID             *uint    `json:"userId"`
	SearchText         string   `json:"searchText"`
	Technologies       []string `json:"technologies"`
	ProblemType        string   `json:"problemType"`
	TargetRepo         string   `json:"targetRepo"`
	TargetCompetition  string   `json:"targetCompetition"`
	DifficultyLevel    string   `json:"difficultyLevel"`
	MinRating          *float64 `json:"minRating"`
	MaxHourlyRate      *float64 `json:"maxHourlyRate"`
	StudentLevel       string   `json:"studentLevel"`
	TeachingStyle      []string `json:"teachingStyle"`
	RequiredBadges     []string `json:"requiredBadges"`
	TimezonePreference string   `json:"timezonePreference"`
}

// SearchResult is one matched mentor with owner identity and, when the query
// named technologies, the skill records that satisfied them.
type SearchResult struct {
	Profile        models.MentorProfile `json:"profile"`
	User           models.PublicUser    `json:"user"`
	MatchingSkills []models.MentorSkill `json:"matchingSkills,omitempty"`
}

// TopMentor is one entry of the top-mentors leaderboard. TechnologySkill is
// set only when the list was scoped to a technology.
type TopMentor struct {
	Profile         models.MentorProfile `json:"profile"`
	User            models.PublicUser    `json:"user"`
	TechnologySkill *models.MentorSkill  `json:"technologySkill,omitempty"`
}

func NewSearchService(
	mentorRepo repository.MentorProfileRepository,
	skillRepo repository.SkillRepository,
	userRepo repository.UserRepository,
	auditRepo repository.SearchAuditRepository,
) *SearchService {
	return &SearchService{
		mentorRepo: mentorRepo,
		skillRepo:  skillRepo,
		userRepo:   userRepo,
		auditRepo:  auditRepo,
	}
}

// SearchMentors runs the full matching pipeline: available mentors passing
// the rating and rate bounds, narrowed by student level containment and
// teaching style overlap, then by technology coverage. A mentor survives the
// technology filter when they have a skill record for at least one requested
// technology; MatchingSkills carries the ones they do cover. Results keep
// the store's natural order.
func (s *SearchService) SearchMentors(ctx context.Context, in SearchInput) ([]SearchResult, error) {
	profiles, err := s.mentorRepo.FindAvailable(ctx, repository.MentorFilter{
		MinRating:     in.MinRating,
		MaxHourlyRate: in.MaxHourlyRate,
	})
	if err != nil {
		return nil, err
	}

	if in.StudentLevel != "" {
		profiles = filterProfiles(profiles, func(p models.MentorProfile) bool {
			return p.StudentLevelPreference.Contains(in.StudentLevel)
		})
	}
	if len(in.TeachingStyle) > 0 {
		profiles = filterProfiles(profiles, func(p models.MentorProfile) bool {
			return p.TeachingStyle.Intersects(in.TeachingStyle)
		})
	}

	skillsByProfile := map[uint][]models.MentorSkill{}
	if len(in.Technologies) > 0 {
		ids := profileIDs(profiles)
		skills, err := s.skillRepo.FindMatching(ctx, ids, in.Technologies)
		if err != nil {
			return nil, err
		}
		for _, sk := range skills {
			skillsByProfile[sk.MentorProfileID] = append(skillsByProfile[sk.MentorProfileID], sk)
		}
		profiles = filterProfiles(profiles, func(p models.MentorProfile) bool {
			return len(skillsByProfile[p.ID]) > 0
		})
	}

	users, err := s.usersFor(ctx, profiles)
	if err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(profiles))
	for _, p := range profiles {
		u, ok := users[p.UserID]
		if !ok {
			continue
		}
		results = append(results, SearchResult{
			Profile:        p,
			User:           u.Public(),
			MatchingSkills: skillsByProfile[p.ID],
		})
	}

	observability.SearchResults.Observe(float64(len(results)))
	s.audit(ctx, in, results)
	return results, nil
}

// TopMentors returns the highest-rated available mentors. With a technology,
// each entry carries the mentor's skill record for it and mentors without
// that skill are dropped. The list is cached briefly; rating recomputes show
// up after the TTL rather than invalidating every (technology, limit) key.
func (s *SearchService) TopMentors(ctx context.Context, technology string, limit int) ([]TopMentor, error) {
	if limit <= 0 {
		limit = defaultTopMentorLimit
	}

	var top []TopMentor
	err := cache.Aside(ctx, cache.TopMentorsKey(technology, limit), &top, cache.TopMentorsTTL, func() error {
		loaded, err := s.topMentors(ctx, technology, limit)
		if err != nil {
			return err
		}
		top = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return top, nil
}

func (s *SearchService) topMentors(ctx context.Context, technology string, limit int) ([]TopMentor, error) {
	profiles, err := s.mentorRepo.TopByRating(ctx, limit)
	if err != nil {
		return nil, err
	}

	var bestSkill map[uint]models.MentorSkill
	if technology != "" {
		skills, err := s.skillRepo.FindForTechnology(ctx, profileIDs(profiles), technology)
		if err != nil {
			return nil, err
		}
		bestSkill = make(map[uint]models.MentorSkill, len(skills))
		for _, sk := range skills {
			if _, seen := bestSkill[sk.MentorProfileID]; !seen {
				bestSkill[sk.MentorProfileID] = sk
			}
		}
		profiles = filterProfiles(profiles, func(p models.MentorProfile) bool {
			_, ok := bestSkill[p.ID]
			return ok
		})
	}

	users, err := s.usersFor(ctx, profiles)
	if err != nil {
		return nil, err
	}

	top := make([]TopMentor, 0, len(profiles))
	for _, p := range profiles {
		u, ok := users[p.UserID]
		if !ok {
			continue
		}
		entry := TopMentor{Profile: p, User: u.Public()}
		if bestSkill != nil {
			sk := bestSkill[p.ID]
			entry.TechnologySkill = &sk
		}
		top = append(top, entry)
	}
	return top, nil
}

// audit records the query for analysis when the searcher is known. Failures
// are logged and counted, never surfaced: the search already succeeded.
func (s *SearchService) audit(ctx context.Context, in SearchInput, results []SearchResult) {
	if in.UserID == nil {
		return
	}
	record := &models.SearchQuery{
		UserID:             in.UserID,
		SearchText:         in.SearchText,
		Technologies:       models.StringList(in.Technologies),
		ProblemType:        in.ProblemType,
		TargetRepo:         in.TargetRepo,
		TargetCompetition:  in.TargetCompetition,
		DifficultyLevel:    in.DifficultyLevel,
		RequiredBadges:     models.StringList(in.RequiredBadges),
		TimezonePreference: in.TimezonePreference,
		ResultsCount:       len(results),
	}
	if in.MinRating != nil {
		record.MinRating = *in.MinRating
	}
	if in.MaxHourlyRate != nil {
		record.MaxHourlyRate = *in.MaxHourlyRate
	}
	if len(results) > 0 {
		id := results[0].Profile.UserID
		record.TopResultMentorID = &id
	}
	if err := s.auditRepo.Record(ctx, record); err != nil {
		observability.SearchAuditDrops.Inc()
		middleware.Logger.WarnContext(ctx, "search audit insert dropped", "error", err)
	}
}

func (s *SearchService) usersFor(ctx context.Context, profiles []models.MentorProfile) (map[uint]models.User, error) {
	ids := make([]uint, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.UserID)
	}
	return s.userRepo.ListByIDs(ctx, ids)
}

func filterProfiles(profiles []models.MentorProfile, keep func(models.MentorProfile) bool) []models.MentorProfile {
	out := profiles[:0]
	for _, p := range profiles {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func profileIDs(profiles []models.MentorProfile) []uint {
	ids := make([]uint, len(profiles))
	for i, p := range profiles {
		ids[i] = p.ID
	}
	return ids
}
