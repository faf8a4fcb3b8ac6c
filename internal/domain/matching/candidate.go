package matching

import (
	"time"

	"cast-match/internal/domain/talent"

	"github.com/google/uuid"
)

// Candidate is the engine's view of a talent profile. String fields are
// expected in normalized form (trimmed, lower-cased); NewCandidate takes care
// of that when mapping from a domain profile.
type Candidate struct {
	ID         uuid.UUID
	Name       string
	Age        int
	Gender     string
	City       string
	Experience talent.ExperienceTier
	Skills     []string
	Languages  []string
	Rating     float64 // 0.0 - 5.0
	DailyRate  int64

	// Zero AvailableFrom/AvailableTo means open availability.
	AvailableFrom time.Time
	AvailableTo   time.Time

	Verified bool
}

// NewCandidate maps a domain profile into engine form, normalizing the fields
// the filter and scorer compare against.
func NewCandidate(p talent.Profile) Candidate {
	return Candidate{
		ID:            p.ID,
		Name:          p.DisplayName,
		Age:           p.Age,
		Gender:        normalizeValue(p.Gender),
		City:          normalizeValue(p.City),
		Experience:    p.Experience,
		Skills:        normalizeList(p.Skills),
		Languages:     normalizeList(p.Languages),
		Rating:        p.Rating,
		DailyRate:     p.DailyRate,
		AvailableFrom: p.AvailableFrom,
		AvailableTo:   p.AvailableTo,
		Verified:      p.Verified,
	}
}

// Validate reports a malformed candidate record. A failing candidate is
// excluded from the search with a logged warning instead of aborting the
// whole pipeline.
func (c Candidate) Validate() error {
	if c.ID == uuid.Nil {
		return &InternalComputationError{Reason: "candidate has nil id"}
	}
	if c.Age < 0 {
		return &InternalComputationError{Reason: "candidate age is negative"}
	}
	if c.Rating < 0 || c.Rating > 5 {
		return &InternalComputationError{Reason: "candidate rating outside 0-5"}
	}
	if c.DailyRate < 0 {
		return &InternalComputationError{Reason: "candidate daily rate is negative"}
	}
	if !c.Experience.Valid() {
		return &InternalComputationError{Reason: "candidate experience tier out of range"}
	}
	if !c.AvailableFrom.IsZero() && !c.AvailableTo.IsZero() && c.AvailableTo.Before(c.AvailableFrom) {
		return &InternalComputationError{Reason: "candidate availability window inverted"}
	}
	return nil
}
