package dto

import (
	"time"

	"cast-match/internal/domain/role"

	"github.com/google/uuid"
)

type RoleResponse struct {
	ID            uuid.UUID `json:"id"`
	Version       int       `json:"version"`
	ProjectID     uuid.UUID `json:"project_id"`
	CharacterName string    `json:"character_name"`
	Importance    string    `json:"importance"`

	AgeMin     *int     `json:"age_min,omitempty"`
	AgeMax     *int     `json:"age_max,omitempty"`
	Gender     string   `json:"gender,omitempty"`
	Skills     []string `json:"skills"`
	Languages  []string `json:"languages"`
	Experience string   `json:"experience,omitempty"`

	BudgetMin int64 `json:"budget_min"`
	BudgetMax int64 `json:"budget_max"`

	ShootFrom string `json:"shoot_from,omitempty"`
	ShootTo   string `json:"shoot_to,omitempty"`

	AuditionsStarted bool `json:"auditions_started"`
}

func NewRoleResponse(r role.Requirement) RoleResponse {
	out := RoleResponse{
		ID:               r.ID,
		Version:          r.Version,
		ProjectID:        r.ProjectID,
		CharacterName:    r.CharacterName,
		Importance:       string(r.Importance),
		AgeMin:           r.AgeMin,
		AgeMax:           r.AgeMax,
		Gender:           r.Gender,
		Skills:           r.Skills,
		Languages:        r.Languages,
		BudgetMin:        r.BudgetMin,
		BudgetMax:        r.BudgetMax,
		AuditionsStarted: r.AuditionsStarted,
	}
	if r.Experience != nil {
		out.Experience = r.Experience.String()
	}
	if !r.ShootFrom.IsZero() {
		out.ShootFrom = r.ShootFrom.UTC().Format(time.RFC3339)
	}
	if !r.ShootTo.IsZero() {
		out.ShootTo = r.ShootTo.UTC().Format(time.RFC3339)
	}
	return out
}
