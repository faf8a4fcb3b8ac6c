package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"cast-match/internal/domain/talent"
	"cast-match/internal/repository"

	"github.com/google/uuid"
)

type ProfileInput struct {
	DisplayName string
	Age         int
	Gender      string
	City        string
	Experience  string
	Skills      []string
	Languages   []string
	Rating      float64
	DailyRate   int64

	AvailableFrom time.Time
	AvailableTo   time.Time
}

type TalentProfileUsecase interface {
	CreateProfile(ctx context.Context, ownerID uuid.UUID, in ProfileInput) (talent.Profile, error)
	GetProfile(ctx context.Context, id uuid.UUID) (talent.Profile, error)
	// DeleteProfile soft-deletes; only the owning account may remove its
	// profile.
	DeleteProfile(ctx context.Context, id, requesterID uuid.UUID) error
}

type TalentProfile struct {
	talents repository.TalentRepository
	cache   SearchCache
}

func NewTalentProfileUsecase(talents repository.TalentRepository, cache SearchCache) *TalentProfile {
	return &TalentProfile{talents: talents, cache: cache}
}

func (u *TalentProfile) CreateProfile(ctx context.Context, ownerID uuid.UUID, in ProfileInput) (talent.Profile, error) {
	if ownerID == uuid.Nil {
		return talent.Profile{}, ErrInvalidInput
	}
	p, err := profileFromInput(in)
	if err != nil {
		return talent.Profile{}, err
	}
	p.ID = uuid.New()
	p.UserID = ownerID

	if err := u.talents.Create(ctx, p); err != nil {
		return talent.Profile{}, ErrInternal
	}
	u.invalidateSearches(ctx)

	created, err := u.talents.FindByID(ctx, p.ID)
	if err != nil {
		return talent.Profile{}, ErrInternal
	}
	return created, nil
}

func (u *TalentProfile) GetProfile(ctx context.Context, id uuid.UUID) (talent.Profile, error) {
	if id == uuid.Nil {
		return talent.Profile{}, ErrTalentNotFound
	}
	p, err := u.talents.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, talent.ErrNotFound) {
			return talent.Profile{}, ErrTalentNotFound
		}
		return talent.Profile{}, ErrInternal
	}
	return p, nil
}

func (u *TalentProfile) DeleteProfile(ctx context.Context, id, requesterID uuid.UUID) error {
	p, err := u.GetProfile(ctx, id)
	if err != nil {
		return err
	}
	if p.UserID != requesterID {
		return ErrUnauthorized
	}

	if err := u.talents.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, talent.ErrNotFound) {
			return ErrTalentNotFound
		}
		return ErrInternal
	}
	u.invalidateSearches(ctx)
	return nil
}

// invalidateSearches drops cached search pages after the candidate pool
// changes; stale pages are worse than a cold cache.
func (u *TalentProfile) invalidateSearches(ctx context.Context) {
	if u.cache == nil {
		return
	}
	_ = u.cache.DeleteByPattern(ctx, "talent:search:*")
}

func profileFromInput(in ProfileInput) (talent.Profile, error) {
	name := strings.TrimSpace(in.DisplayName)
	if name == "" {
		return talent.Profile{}, ErrInvalidInput
	}
	if in.Age <= 0 {
		return talent.Profile{}, ErrInvalidInput
	}
	if in.Rating < 0 || in.Rating > 5 {
		return talent.Profile{}, ErrInvalidInput
	}
	if in.DailyRate < 0 {
		return talent.Profile{}, ErrInvalidInput
	}
	if !in.AvailableFrom.IsZero() && !in.AvailableTo.IsZero() && in.AvailableTo.Before(in.AvailableFrom) {
		return talent.Profile{}, ErrInvalidInput
	}

	tier := talent.TierNewcomer
	if exp := strings.TrimSpace(in.Experience); exp != "" {
		parsed, ok := talent.ParseTier(exp)
		if !ok {
			return talent.Profile{}, ErrInvalidInput
		}
		tier = parsed
	}

	// Skills, languages and city are stored in the canonical form the search
	// filter hints compare against: Postgres array containment is
	// case-sensitive, so a mixed-case row would silently drop out of pooled
	// searches.
	return talent.Profile{
		DisplayName:   name,
		Age:           in.Age,
		Gender:        strings.ToLower(collapseSpace(in.Gender)),
		City:          collapseSpace(in.City),
		Experience:    tier,
		Skills:        canonicalTags(in.Skills),
		Languages:     canonicalTags(in.Languages),
		Rating:        in.Rating,
		DailyRate:     in.DailyRate,
		AvailableFrom: in.AvailableFrom,
		AvailableTo:   in.AvailableTo,
	}, nil
}

func canonicalTags(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(collapseSpace(s))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
