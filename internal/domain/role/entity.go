package role

import (
	"errors"
	"strings"
	"time"

	"cast-match/internal/domain/talent"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("role requirement not found")
	// ErrLocked is returned when a requirement is mutated in place after
	// auditions have begun; such changes must go through Amend.
	ErrLocked = errors.New("role requirement locked, use amendment")
)

// Importance is the character importance tier of a role.
type Importance string

const (
	ImportanceLead       Importance = "lead"
	ImportanceSupporting Importance = "supporting"
	ImportanceFeatured   Importance = "featured"
	ImportanceBackground Importance = "background"
)

func ParseImportance(s string) (Importance, bool) {
	switch Importance(strings.ToLower(strings.TrimSpace(s))) {
	case ImportanceLead:
		return ImportanceLead, true
	case ImportanceSupporting:
		return ImportanceSupporting, true
	case ImportanceFeatured:
		return ImportanceFeatured, true
	case ImportanceBackground:
		return ImportanceBackground, true
	default:
		return "", false
	}
}

// Requirement is a casting need defined by a project. Once auditions start
// the requirement is immutable; every change after that point creates a new
// version through an explicit amendment.
type Requirement struct {
	ID            uuid.UUID
	ProjectID     uuid.UUID
	CharacterName string
	Importance    Importance

	AgeMin     *int
	AgeMax     *int
	Gender     string
	Skills     []string
	Languages  []string
	Experience *talent.ExperienceTier

	// Daily budget range. Zero BudgetMax means no budget constraint.
	BudgetMin int64
	BudgetMax int64

	ShootFrom time.Time
	ShootTo   time.Time

	Version          int
	AuditionsStarted bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
