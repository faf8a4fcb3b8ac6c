package usecase

import (
	"context"
	"errors"
	"testing"

	"cast-match/internal/domain/matching"
	"cast-match/internal/domain/talent"
	"cast-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func validProfileInput() ProfileInput {
	return ProfileInput{
		DisplayName: "Ava Brooks",
		Age:         27,
		Gender:      " Female ",
		City:        "Los Angeles",
		Experience:  "expert",
		Skills:      []string{"Dance", " singing ", ""},
		Languages:   []string{"english"},
		Rating:      4.2,
		DailyRate:   650,
	}
}

func TestCreateProfile_NormalizesAndStores(t *testing.T) {
	repo := &mockTalentRepo{}
	cache := newMockCache()
	uc := NewTalentProfileUsecase(repo, cache)

	owner := uuid.New()
	created, err := uc.CreateProfile(context.Background(), owner, validProfileInput())
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}

	if created.ID == uuid.Nil {
		t.Fatalf("profile must receive an ID")
	}
	if created.UserID != owner {
		t.Fatalf("owner = %s, want %s", created.UserID, owner)
	}
	if created.Gender != "female" {
		t.Fatalf("gender not normalized: %q", created.Gender)
	}
	if created.Experience != talent.TierExperienced {
		t.Fatalf("alias 'expert' must map to experienced, got %s", created.Experience)
	}
	if len(created.Skills) != 2 {
		t.Fatalf("blank skill entries must be dropped, got %v", created.Skills)
	}
	if created.Skills[0] != "dance" {
		t.Fatalf("skills must be stored lower-cased, got %v", created.Skills)
	}
	if len(cache.purged) == 0 {
		t.Fatalf("profile creation must invalidate cached searches")
	}
}

func TestCreateProfile_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ProfileInput)
	}{
		{"empty name", func(in *ProfileInput) { in.DisplayName = "  " }},
		{"zero age", func(in *ProfileInput) { in.Age = 0 }},
		{"rating above scale", func(in *ProfileInput) { in.Rating = 5.5 }},
		{"negative rate", func(in *ProfileInput) { in.DailyRate = -1 }},
		{"unknown tier", func(in *ProfileInput) { in.Experience = "wizard" }},
	}

	uc := NewTalentProfileUsecase(&mockTalentRepo{}, nil)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validProfileInput()
			tc.mutate(&in)
			if _, err := uc.CreateProfile(context.Background(), uuid.New(), in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestDeleteProfile_OwnerOnly(t *testing.T) {
	repo := &mockTalentRepo{}
	cache := newMockCache()
	uc := NewTalentProfileUsecase(repo, cache)

	owner := uuid.New()
	created, err := uc.CreateProfile(context.Background(), owner, validProfileInput())
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}

	if err := uc.DeleteProfile(context.Background(), created.ID, uuid.New()); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("stranger delete: expected ErrUnauthorized, got %v", err)
	}
	if len(repo.deleted) != 0 {
		t.Fatalf("unauthorized delete must not reach the repository")
	}

	if err := uc.DeleteProfile(context.Background(), created.ID, owner); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != created.ID {
		t.Fatalf("expected soft delete of %s, got %v", created.ID, repo.deleted)
	}

	if _, err := uc.GetProfile(context.Background(), created.ID); !errors.Is(err, ErrTalentNotFound) {
		t.Fatalf("deleted profile must be gone, got %v", err)
	}
}

// containmentTalentRepo applies skill/language hints with the exact-match
// semantics of Postgres array containment, so a stored profile whose tags
// differ only in case from the hints drops out here, not in the engine.
type containmentTalentRepo struct {
	mockTalentRepo
}

func (m *containmentTalentRepo) FindCandidatePool(_ context.Context, hints repository.TalentFilterHints) ([]talent.Profile, error) {
	out := make([]talent.Profile, 0, len(m.pool))
	for _, p := range m.pool {
		if containsAllExact(p.Skills, hints.Skills) && containsAllExact(p.Languages, hints.Languages) {
			out = append(out, p)
		}
	}
	return out, nil
}

func containsAllExact(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func TestCreateProfile_MixedCaseInputSurvivesPooledSearch(t *testing.T) {
	repo := &containmentTalentRepo{}
	profiles := NewTalentProfileUsecase(&repo.mockTalentRepo, nil)

	in := validProfileInput()
	in.Skills = []string{"Dance"}
	in.Languages = []string{"English"}
	in.City = "Los  Angeles"

	created, err := profiles.CreateProfile(context.Background(), uuid.New(), in)
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	repo.pool = []talent.Profile{created}

	engine, err := matching.NewEngine(zap.NewNop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	search := NewTalentSearchUsecase(repo, engine, nil, zap.NewNop())

	out, err := search.SearchTalent(context.Background(), matching.RawSearchInput{
		Skills:    []string{"dance"},
		Languages: []string{"english"},
		Location:  "los angeles",
	})
	if err != nil {
		t.Fatalf("SearchTalent: %v", err)
	}
	if out.Pagination.Total != 1 {
		t.Fatalf("mixed-case profile lost between storage and search hints, total %d", out.Pagination.Total)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	uc := NewTalentProfileUsecase(&mockTalentRepo{}, nil)
	if _, err := uc.GetProfile(context.Background(), uuid.New()); !errors.Is(err, ErrTalentNotFound) {
		t.Fatalf("expected ErrTalentNotFound, got %v", err)
	}
}
