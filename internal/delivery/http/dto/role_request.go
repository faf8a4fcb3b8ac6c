package dto

import (
	"time"

	"cast-match/internal/usecase"

	"github.com/google/uuid"
)

type RoleRequest struct {
	ProjectID     uuid.UUID `json:"project_id"`
	CharacterName string    `json:"character_name"`
	Importance    string    `json:"importance"`

	AgeMin     *int     `json:"age_min"`
	AgeMax     *int     `json:"age_max"`
	Gender     string   `json:"gender"`
	Skills     []string `json:"skills"`
	Languages  []string `json:"languages"`
	Experience string   `json:"experience"`

	BudgetMin int64 `json:"budget_min"`
	BudgetMax int64 `json:"budget_max"`

	// RFC3339; empty means unconstrained.
	ShootFrom string `json:"shoot_from"`
	ShootTo   string `json:"shoot_to"`
}

func (r RoleRequest) ToInput() (usecase.RoleInput, error) {
	in := usecase.RoleInput{
		ProjectID:     r.ProjectID,
		CharacterName: r.CharacterName,
		Importance:    r.Importance,
		AgeMin:        r.AgeMin,
		AgeMax:        r.AgeMax,
		Gender:        r.Gender,
		Skills:        r.Skills,
		Languages:     r.Languages,
		Experience:    r.Experience,
		BudgetMin:     r.BudgetMin,
		BudgetMax:     r.BudgetMax,
	}

	if r.ShootFrom != "" {
		t, err := time.Parse(time.RFC3339, r.ShootFrom)
		if err != nil {
			return usecase.RoleInput{}, err
		}
		in.ShootFrom = t
	}
	if r.ShootTo != "" {
		t, err := time.Parse(time.RFC3339, r.ShootTo)
		if err != nil {
			return usecase.RoleInput{}, err
		}
		in.ShootTo = t
	}
	return in, nil
}
