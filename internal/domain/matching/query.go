package matching

import (
	"fmt"
	"strings"
	"time"

	"cast-match/internal/domain/talent"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Availability enum accepted in raw input. The normalizer expands it into a
// concrete date window relative to the supplied reference time.
const (
	AvailabilityAny         = "any"
	AvailabilityNow         = "now"
	AvailabilityThisMonth   = "this_month"
	AvailabilityNext3Months = "next_3_months"
)

var allowedAvailability = []string{AvailabilityAny, AvailabilityNow, AvailabilityThisMonth, AvailabilityNext3Months}

const (
	GenderAny       = "any"
	GenderMale      = "male"
	GenderFemale    = "female"
	GenderNonBinary = "non_binary"
)

var allowedGenders = []string{GenderAny, GenderMale, GenderFemale, GenderNonBinary}

// RawSearchInput carries unvalidated search parameters as received from the
// transport layer.
type RawSearchInput struct {
	Query        string   `json:"query"`
	Location     string   `json:"location"`
	Experience   string   `json:"experience"`
	Languages    []string `json:"languages"`
	Skills       []string `json:"skills"`
	MinRating    *float64 `json:"min_rating"`
	AgeMin       *int     `json:"age_min"`
	AgeMax       *int     `json:"age_max"`
	Gender       string   `json:"gender"`
	Availability string   `json:"availability"`
	Verified     bool     `json:"verified"`
	Page         int      `json:"page"`
	Limit        int      `json:"limit"`
}

// SearchQuery is the validated, canonical form of a search. It is an
// immutable value: build one through Normalize (or from a role requirement)
// and pass it around by value.
type SearchQuery struct {
	FreeText   string
	City       string
	Experience *talent.ExperienceTier
	Languages  []string
	Skills     []string
	MinRating  *float64
	AgeMin     *int
	AgeMax     *int
	Gender     string // empty means any

	// Requested availability window; zero values mean unconstrained.
	AvailableFrom time.Time
	AvailableTo   time.Time

	// Requested daily budget range; zero RateMax means unconstrained.
	RateMin int64
	RateMax int64

	Verified bool

	Page  int
	Limit int
}

// Normalize validates and canonicalizes raw input. now is the reference time
// used to expand the availability enum into a window; it is injected so the
// function stays pure.
func Normalize(raw RawSearchInput, now time.Time) (SearchQuery, error) {
	q := SearchQuery{
		FreeText: normalizeValue(raw.Query),
		City:     normalizeValue(raw.Location),
		Verified: raw.Verified,
	}

	q.Page = raw.Page
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	q.Limit = raw.Limit
	if q.Limit == 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit < 1 {
		q.Limit = 1
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}

	if raw.AgeMin != nil && *raw.AgeMin < 0 {
		return SearchQuery{}, &InvalidRangeError{Field: "age_min", Reason: "must not be negative"}
	}
	if raw.AgeMax != nil && *raw.AgeMax < 0 {
		return SearchQuery{}, &InvalidRangeError{Field: "age_max", Reason: "must not be negative"}
	}
	if raw.AgeMin != nil && raw.AgeMax != nil && *raw.AgeMin > *raw.AgeMax {
		return SearchQuery{}, &InvalidRangeError{
			Field:  "age_min",
			Reason: fmt.Sprintf("age_min %d exceeds age_max %d", *raw.AgeMin, *raw.AgeMax),
		}
	}
	q.AgeMin = raw.AgeMin
	q.AgeMax = raw.AgeMax

	if raw.MinRating != nil {
		if *raw.MinRating < 0 || *raw.MinRating > 5 {
			return SearchQuery{}, &InvalidRangeError{Field: "min_rating", Reason: "must be within 0.0-5.0"}
		}
		q.MinRating = raw.MinRating
	}

	if v := normalizeValue(raw.Gender); v != "" {
		if !contains(allowedGenders, v) {
			return SearchQuery{}, &InvalidEnumError{Field: "gender", Value: raw.Gender, Allowed: allowedGenders}
		}
		if v != GenderAny {
			q.Gender = v
		}
	}

	if v := normalizeValue(raw.Experience); v != "" {
		tier, ok := talent.ParseTier(v)
		if !ok {
			return SearchQuery{}, &InvalidEnumError{Field: "experience", Value: raw.Experience, Allowed: talent.TierNames()}
		}
		q.Experience = &tier
	}

	if v := normalizeValue(raw.Availability); v != "" {
		if !contains(allowedAvailability, v) {
			return SearchQuery{}, &InvalidEnumError{Field: "availability", Value: raw.Availability, Allowed: allowedAvailability}
		}
		q.AvailableFrom, q.AvailableTo = availabilityWindow(v, now)
	}

	q.Skills = normalizeList(raw.Skills)
	q.Languages = normalizeList(raw.Languages)

	return q, nil
}

func availabilityWindow(v string, now time.Time) (time.Time, time.Time) {
	now = now.UTC()
	switch v {
	case AvailabilityNow:
		return now, now.AddDate(0, 0, 7)
	case AvailabilityThisMonth:
		return now, now.AddDate(0, 1, 0)
	case AvailabilityNext3Months:
		return now, now.AddDate(0, 3, 0)
	default: // "any"
		return time.Time{}, time.Time{}
	}
}

// normalizeValue trims, lower-cases and collapses inner whitespace so that
// comparisons are case- and spacing-insensitive.
func normalizeValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}

// normalizeList normalizes entries and deduplicates them preserving
// first-seen order. Order never affects matching, only output stability.
func normalizeList(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = normalizeValue(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func contains(list []string, v string) bool {
	for _, it := range list {
		if it == v {
			return true
		}
	}
	return false
}
