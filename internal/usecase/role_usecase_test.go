package usecase

import (
	"context"
	"errors"
	"testing"

	"cast-match/internal/domain/role"

	"github.com/google/uuid"
)

func validRoleInput() RoleInput {
	return RoleInput{
		ProjectID:     uuid.New(),
		CharacterName: "Lead Dancer",
		Importance:    "lead",
		Skills:        []string{"dance"},
		BudgetMin:     500,
		BudgetMax:     1000,
	}
}

func TestCreateRole_Validation(t *testing.T) {
	uc := NewRoleUsecase(&mockRoleRepo{byID: map[uuid.UUID]role.Requirement{}}, nil)

	cases := map[string]func(*RoleInput){
		"empty character name": func(in *RoleInput) { in.CharacterName = "  " },
		"unknown importance":   func(in *RoleInput) { in.Importance = "cameo" },
		"inverted budget":      func(in *RoleInput) { in.BudgetMin = 2000 },
		"unknown experience":   func(in *RoleInput) { in.Experience = "wizard" },
		"nil project":          func(in *RoleInput) { in.ProjectID = uuid.Nil },
	}
	for name, mutate := range cases {
		in := validRoleInput()
		mutate(&in)
		if _, err := uc.CreateRole(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestUpdateRole_LockedAfterAuditionsStart(t *testing.T) {
	roleID := uuid.New()
	req := testRequirement(roleID)
	req.AuditionsStarted = true
	uc := NewRoleUsecase(&mockRoleRepo{byID: map[uuid.UUID]role.Requirement{roleID: req}}, nil)

	_, err := uc.UpdateRole(context.Background(), roleID, validRoleInput())
	if !errors.Is(err, ErrRoleLocked) {
		t.Fatalf("expected ErrRoleLocked, got %v", err)
	}
}

func TestAmendRole_BumpsVersion(t *testing.T) {
	roleID := uuid.New()
	req := testRequirement(roleID)
	req.AuditionsStarted = true
	repo := &mockRoleRepo{byID: map[uuid.UUID]role.Requirement{roleID: req}}
	uc := NewRoleUsecase(repo, nil)

	in := validRoleInput()
	in.CharacterName = "Recast Lead Dancer"
	amended, err := uc.AmendRole(context.Background(), roleID, in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if amended.Version != 2 {
		t.Fatalf("expected version 2, got %d", amended.Version)
	}
	if !amended.AuditionsStarted {
		t.Fatalf("amendment must preserve the auditions flag")
	}
	if amended.CharacterName != "Recast Lead Dancer" {
		t.Fatalf("amendment lost its changes")
	}
}

func TestAmendRole_NotFound(t *testing.T) {
	uc := NewRoleUsecase(&mockRoleRepo{byID: map[uuid.UUID]role.Requirement{}}, nil)
	if _, err := uc.AmendRole(context.Background(), uuid.New(), validRoleInput()); !errors.Is(err, ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}

func TestStartAuditions(t *testing.T) {
	roleID := uuid.New()
	repo := &mockRoleRepo{byID: map[uuid.UUID]role.Requirement{roleID: testRequirement(roleID)}}
	uc := NewRoleUsecase(repo, nil)

	if err := uc.StartAuditions(context.Background(), roleID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !repo.byID[roleID].AuditionsStarted {
		t.Fatalf("auditions flag not set")
	}
	if err := uc.StartAuditions(context.Background(), uuid.New()); !errors.Is(err, ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound for unknown role")
	}
}
