package talent

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("talent profile not found")

// ExperienceTier is the canonical career-stage ordinal. External inputs use
// several naming schemes; ParseTier folds them onto this single scale.
type ExperienceTier int

const (
	TierNewcomer ExperienceTier = iota
	TierEmerging
	TierExperienced
	TierStar
)

func (t ExperienceTier) String() string {
	switch t {
	case TierNewcomer:
		return "newcomer"
	case TierEmerging:
		return "emerging"
	case TierExperienced:
		return "experienced"
	case TierStar:
		return "star"
	default:
		return "unknown"
	}
}

func (t ExperienceTier) Valid() bool {
	return t >= TierNewcomer && t <= TierStar
}

// TierNames lists the canonical names in ordinal order.
func TierNames() []string {
	return []string{"newcomer", "emerging", "experienced", "star"}
}

// ParseTier accepts canonical names plus the aliases used by legacy inputs
// (beginner/intermediate/expert, fresher/veteran). Matching is
// case-insensitive.
func ParseTier(s string) (ExperienceTier, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "newcomer", "beginner", "fresher":
		return TierNewcomer, true
	case "emerging", "intermediate":
		return TierEmerging, true
	case "experienced", "expert":
		return TierExperienced, true
	case "star", "veteran":
		return TierStar, true
	default:
		return 0, false
	}
}

// Profile is a performer's marketplace profile. Profiles are soft-deleted on
// account closure and are never hard-deleted while applications reference
// them.
type Profile struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	DisplayName string
	Age         int
	Gender      string
	City        string
	Experience  ExperienceTier
	Skills      []string
	Languages   []string
	Rating      float64 // 0.0 - 5.0
	DailyRate   int64
	// Zero AvailableFrom/AvailableTo means open availability.
	AvailableFrom time.Time
	AvailableTo   time.Time
	Verified      bool

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

func (p Profile) Deleted() bool {
	return p.DeletedAt != nil && !p.DeletedAt.IsZero()
}
