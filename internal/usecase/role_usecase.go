package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"cast-match/internal/domain/role"
	"cast-match/internal/domain/talent"
	"cast-match/internal/repository"

	"github.com/google/uuid"
)

type RoleInput struct {
	ProjectID     uuid.UUID
	CharacterName string
	Importance    string

	AgeMin     *int
	AgeMax     *int
	Gender     string
	Skills     []string
	Languages  []string
	Experience string

	BudgetMin int64
	BudgetMax int64

	ShootFrom time.Time
	ShootTo   time.Time
}

type RoleUsecase interface {
	CreateRole(ctx context.Context, in RoleInput) (role.Requirement, error)
	GetRole(ctx context.Context, id uuid.UUID) (role.Requirement, error)
	// UpdateRole mutates the latest version in place. Refused once auditions
	// have started; amendments are the only path after that.
	UpdateRole(ctx context.Context, id uuid.UUID, in RoleInput) (role.Requirement, error)
	// AmendRole records a new version of the requirement, leaving history
	// intact.
	AmendRole(ctx context.Context, id uuid.UUID, in RoleInput) (role.Requirement, error)
	StartAuditions(ctx context.Context, id uuid.UUID) error
}

type Role struct {
	roles repository.RoleRepository
	cache SearchCache
}

func NewRoleUsecase(roles repository.RoleRepository, cache SearchCache) *Role {
	return &Role{roles: roles, cache: cache}
}

func (u *Role) CreateRole(ctx context.Context, in RoleInput) (role.Requirement, error) {
	req, err := requirementFromInput(in)
	if err != nil {
		return role.Requirement{}, err
	}
	req.ID = uuid.New()
	req.Version = 1

	if err := u.roles.Create(ctx, req); err != nil {
		return role.Requirement{}, ErrInternal
	}
	return u.getExisting(ctx, req.ID)
}

func (u *Role) GetRole(ctx context.Context, id uuid.UUID) (role.Requirement, error) {
	if id == uuid.Nil {
		return role.Requirement{}, ErrRoleNotFound
	}
	return u.getExisting(ctx, id)
}

func (u *Role) UpdateRole(ctx context.Context, id uuid.UUID, in RoleInput) (role.Requirement, error) {
	current, err := u.GetRole(ctx, id)
	if err != nil {
		return role.Requirement{}, err
	}
	if current.AuditionsStarted {
		return role.Requirement{}, ErrRoleLocked
	}

	return u.AmendRole(ctx, id, in)
}

func (u *Role) AmendRole(ctx context.Context, id uuid.UUID, in RoleInput) (role.Requirement, error) {
	if id == uuid.Nil {
		return role.Requirement{}, ErrRoleNotFound
	}

	req, err := requirementFromInput(in)
	if err != nil {
		return role.Requirement{}, err
	}
	req.ID = id

	amended, err := u.roles.Amend(ctx, req)
	if err != nil {
		if errors.Is(err, role.ErrNotFound) {
			return role.Requirement{}, ErrRoleNotFound
		}
		return role.Requirement{}, ErrInternal
	}

	u.invalidateMatches(ctx)
	return amended, nil
}

func (u *Role) StartAuditions(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrRoleNotFound
	}
	if err := u.roles.MarkAuditionsStarted(ctx, id); err != nil {
		if errors.Is(err, role.ErrNotFound) {
			return ErrRoleNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Role) getExisting(ctx context.Context, id uuid.UUID) (role.Requirement, error) {
	req, err := u.roles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, role.ErrNotFound) {
			return role.Requirement{}, ErrRoleNotFound
		}
		return role.Requirement{}, ErrInternal
	}
	return req, nil
}

// invalidateMatches drops cached search pages after a requirement changes;
// stale match lists are worse than a cold cache.
func (u *Role) invalidateMatches(ctx context.Context) {
	if u.cache == nil {
		return
	}
	_ = u.cache.DeleteByPattern(ctx, "talent:search:*")
}

func requirementFromInput(in RoleInput) (role.Requirement, error) {
	if in.ProjectID == uuid.Nil {
		return role.Requirement{}, ErrInvalidInput
	}
	name := strings.TrimSpace(in.CharacterName)
	if name == "" {
		return role.Requirement{}, ErrInvalidInput
	}

	importance, ok := role.ParseImportance(in.Importance)
	if !ok {
		return role.Requirement{}, ErrInvalidInput
	}

	if in.AgeMin != nil && *in.AgeMin < 0 {
		return role.Requirement{}, ErrInvalidInput
	}
	if in.AgeMin != nil && in.AgeMax != nil && *in.AgeMin > *in.AgeMax {
		return role.Requirement{}, ErrInvalidInput
	}
	if in.BudgetMin < 0 || in.BudgetMax < 0 {
		return role.Requirement{}, ErrInvalidInput
	}
	if in.BudgetMax > 0 && in.BudgetMin > in.BudgetMax {
		return role.Requirement{}, ErrInvalidInput
	}
	if !in.ShootFrom.IsZero() && !in.ShootTo.IsZero() && in.ShootTo.Before(in.ShootFrom) {
		return role.Requirement{}, ErrInvalidInput
	}

	req := role.Requirement{
		ProjectID:     in.ProjectID,
		CharacterName: name,
		Importance:    importance,
		AgeMin:        in.AgeMin,
		AgeMax:        in.AgeMax,
		Gender:        strings.ToLower(strings.TrimSpace(in.Gender)),
		Skills:        trimList(in.Skills),
		Languages:     trimList(in.Languages),
		BudgetMin:     in.BudgetMin,
		BudgetMax:     in.BudgetMax,
		ShootFrom:     in.ShootFrom,
		ShootTo:       in.ShootTo,
	}

	if exp := strings.TrimSpace(in.Experience); exp != "" {
		tier, ok := talent.ParseTier(exp)
		if !ok {
			return role.Requirement{}, ErrInvalidInput
		}
		req.Experience = &tier
	}

	return req, nil
}

func trimList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
