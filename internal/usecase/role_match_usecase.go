package usecase

import (
	"context"
	"errors"

	"cast-match/internal/domain/matching"
	"cast-match/internal/domain/role"
	"cast-match/internal/domain/talent"
	"cast-match/internal/repository"

	"github.com/google/uuid"
)

type RoleMatchUsecase interface {
	FindTalentForRole(ctx context.Context, roleID uuid.UUID, page, limit int) (matching.PagedResult, error)
	ScoreTalentForRole(ctx context.Context, roleID, talentID uuid.UUID) (matching.MatchResult, error)
}

type RoleMatch struct {
	roles   repository.RoleRepository
	talents repository.TalentRepository
	engine  *matching.Engine
}

func NewRoleMatchUsecase(roles repository.RoleRepository, talents repository.TalentRepository, engine *matching.Engine) *RoleMatch {
	return &RoleMatch{roles: roles, talents: talents, engine: engine}
}

// FindTalentForRole derives a search query from a role requirement and runs
// it through the regular search pipeline.
func (u *RoleMatch) FindTalentForRole(ctx context.Context, roleID uuid.UUID, page, limit int) (matching.PagedResult, error) {
	if roleID == uuid.Nil {
		return matching.PagedResult{}, ErrRoleNotFound
	}

	req, err := u.roles.FindByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, role.ErrNotFound) {
			return matching.PagedResult{}, ErrRoleNotFound
		}
		return matching.PagedResult{}, ErrInternal
	}

	q, err := u.queryFromRole(req, page, limit)
	if err != nil {
		return matching.PagedResult{}, ErrInternal
	}

	pool, err := u.talents.FindCandidatePool(ctx, hintsFromQuery(q))
	if err != nil {
		return matching.PagedResult{}, ErrInternal
	}

	candidates := make([]matching.Candidate, 0, len(pool))
	for _, p := range pool {
		candidates = append(candidates, matching.NewCandidate(p))
	}

	return u.engine.Run(candidates, q), nil
}

// ScoreTalentForRole computes a single talent's compatibility with a role,
// regardless of whether the talent would pass the role's hard filters.
func (u *RoleMatch) ScoreTalentForRole(ctx context.Context, roleID, talentID uuid.UUID) (matching.MatchResult, error) {
	if roleID == uuid.Nil {
		return matching.MatchResult{}, ErrRoleNotFound
	}
	if talentID == uuid.Nil {
		return matching.MatchResult{}, ErrTalentNotFound
	}

	req, err := u.roles.FindByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, role.ErrNotFound) {
			return matching.MatchResult{}, ErrRoleNotFound
		}
		return matching.MatchResult{}, ErrInternal
	}

	profile, err := u.talents.FindByID(ctx, talentID)
	if err != nil {
		if errors.Is(err, talent.ErrNotFound) {
			return matching.MatchResult{}, ErrTalentNotFound
		}
		return matching.MatchResult{}, ErrInternal
	}

	q, err := u.queryFromRole(req, matching.DefaultPage, matching.DefaultLimit)
	if err != nil {
		return matching.MatchResult{}, ErrInternal
	}

	candidate := matching.NewCandidate(profile)
	if err := candidate.Validate(); err != nil {
		return matching.MatchResult{}, ErrInternal
	}

	return matching.Score(candidate, q), nil
}

// queryFromRole reuses the normalizer for list and enum handling, then
// overlays the role's shooting window and budget, which have no raw-input
// equivalent.
func (u *RoleMatch) queryFromRole(req role.Requirement, page, limit int) (matching.SearchQuery, error) {
	raw := matching.RawSearchInput{
		Skills:    req.Skills,
		Languages: req.Languages,
		Gender:    req.Gender,
		AgeMin:    req.AgeMin,
		AgeMax:    req.AgeMax,
		Page:      page,
		Limit:     limit,
	}
	if req.Experience != nil {
		raw.Experience = req.Experience.String()
	}

	q, err := u.engine.Normalize(raw)
	if err != nil {
		return matching.SearchQuery{}, err
	}

	q.AvailableFrom = req.ShootFrom
	q.AvailableTo = req.ShootTo
	q.RateMin = req.BudgetMin
	q.RateMax = req.BudgetMax
	return q, nil
}
