package matching

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// Recommendation buckets a match score into a hiring suggestion.
type Recommendation string

const (
	StronglyRecommend Recommendation = "strongly_recommend"
	Recommend         Recommendation = "recommend"
	Consider          Recommendation = "consider"
	NotSuitable       Recommendation = "not_suitable"
)

func recommendationRank(r Recommendation) int {
	switch r {
	case StronglyRecommend:
		return 3
	case Recommend:
		return 2
	case Consider:
		return 1
	default:
		return 0
	}
}

// MatchResult is the per-candidate outcome of a search. It is ephemeral:
// recomputed on every query, never persisted.
type MatchResult struct {
	TalentID       uuid.UUID      `json:"talent_id"`
	TalentName     string         `json:"talent_name"`
	MatchScore     int            `json:"match_score"`
	Recommendation Recommendation `json:"recommendation"`
	Strengths      []string       `json:"strengths"`
	Weaknesses     []string       `json:"weaknesses"`
	RiskFactors    []string       `json:"risk_factors"`
	Reasoning      string         `json:"reasoning"`
}

const (
	factorSkills       = "skill overlap"
	factorLanguages    = "language overlap"
	factorExperience   = "experience fit"
	factorRating       = "rating"
	factorAvailability = "availability fit"
	factorBudget       = "budget fit"
)

type weightedFactor struct {
	name   string
	weight float64
	score  func(Candidate, SearchQuery) float64
}

// Sub-scores are normalized to [0,100] before weighting; the weights sum to
// 1.0 (checked by NewEngine).
var factors = []weightedFactor{
	{factorSkills, 0.30, skillScore},
	{factorLanguages, 0.15, languageScore},
	{factorExperience, 0.20, experienceScore},
	{factorRating, 0.20, ratingScore},
	{factorAvailability, 0.10, availabilityScore},
	{factorBudget, 0.05, budgetScore},
}

func weightSum() float64 {
	sum := 0.0
	for _, f := range factors {
		sum += f.weight
	}
	return sum
}

// Score computes the weighted multi-factor match of one candidate against a
// query. Pure and deterministic: identical inputs always produce identical
// results.
func Score(c Candidate, q SearchQuery) MatchResult {
	res := MatchResult{
		TalentID:    c.ID,
		TalentName:  c.Name,
		Strengths:   []string{},
		Weaknesses:  []string{},
		RiskFactors: []string{},
	}

	total := 0.0
	for _, f := range factors {
		s := f.score(c, q)
		total += f.weight * s

		if s >= 80 {
			res.Strengths = append(res.Strengths, f.name)
		}
		if s < 50 {
			res.Weaknesses = append(res.Weaknesses, f.name)
		}
		switch f.name {
		case factorAvailability:
			if s == 0 {
				res.RiskFactors = append(res.RiskFactors,
					"candidate availability window does not overlap the requested window")
			}
		case factorBudget:
			if s == 0 {
				res.RiskFactors = append(res.RiskFactors,
					fmt.Sprintf("daily rate %d is far outside the budget range %d-%d", c.DailyRate, q.RateMin, q.RateMax))
			}
		}
	}

	score := int(math.Round(total))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	res.MatchScore = score
	res.Recommendation = recommendationFor(score)
	res.Reasoning = reasoning(res)

	return res
}

func recommendationFor(score int) Recommendation {
	switch {
	case score >= 85:
		return StronglyRecommend
	case score >= 65:
		return Recommend
	case score >= 40:
		return Consider
	default:
		return NotSuitable
	}
}

func reasoning(r MatchResult) string {
	msg := fmt.Sprintf("overall fit %d/100", r.MatchScore)
	if len(r.Strengths) > 0 {
		msg += ", strong on " + joinFactors(r.Strengths)
	}
	if len(r.Weaknesses) > 0 {
		msg += ", weak on " + joinFactors(r.Weaknesses)
	}
	return msg
}

func joinFactors(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}

// Unconstrained factors score 100: the absence of a requirement reads as full
// compatibility, so it neither lifts nor sinks candidates relative to each
// other.

func skillScore(c Candidate, q SearchQuery) float64 {
	return overlapScore(c.Skills, q.Skills)
}

func languageScore(c Candidate, q SearchQuery) float64 {
	return overlapScore(c.Languages, q.Languages)
}

func overlapScore(have, want []string) float64 {
	if len(want) == 0 {
		return 100
	}
	matched := 0
	for _, w := range want {
		if contains(have, w) {
			matched++
		}
	}
	return float64(matched) / math.Max(1, float64(len(want))) * 100
}

func experienceScore(c Candidate, q SearchQuery) float64 {
	if q.Experience == nil {
		return 100
	}
	distance := int(c.Experience) - int(*q.Experience)
	if distance < 0 {
		distance = -distance
	}
	switch distance {
	case 0:
		return 100
	case 1:
		return 60
	default:
		return 20
	}
}

func ratingScore(c Candidate, _ SearchQuery) float64 {
	s := c.Rating * 20 // 0.0-5.0 onto 0-100
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// availabilityScore: 100 when the candidate window fully covers the requested
// window, 50 on partial overlap, 0 on none. A candidate without a window has
// open availability.
func availabilityScore(c Candidate, q SearchQuery) float64 {
	if q.AvailableFrom.IsZero() && q.AvailableTo.IsZero() {
		return 100
	}
	if c.AvailableFrom.IsZero() && c.AvailableTo.IsZero() {
		return 100
	}
	cFrom, cTo := windowBounds(c.AvailableFrom, c.AvailableTo)
	qFrom, qTo := windowBounds(q.AvailableFrom, q.AvailableTo)

	if !cFrom.After(qFrom) && !cTo.Before(qTo) {
		return 100
	}
	if cFrom.After(qTo) || cTo.Before(qFrom) {
		return 0
	}
	return 50
}

func windowBounds(from, to time.Time) (time.Time, time.Time) {
	const horizon = 100 * 365 * 24 * time.Hour
	if from.IsZero() {
		from = to.Add(-horizon)
	}
	if to.IsZero() {
		to = from.Add(horizon)
	}
	return from, to
}

// budgetScore: 100 inside the requested range, linear falloff to 0 at twice
// the violated bound (mirrored for the lower bound).
func budgetScore(c Candidate, q SearchQuery) float64 {
	if q.RateMax <= 0 {
		return 100
	}
	rate := float64(c.DailyRate)
	min := float64(q.RateMin)
	max := float64(q.RateMax)

	if rate >= min && rate <= max {
		return 100
	}
	if rate > max {
		over := (rate - max) / max
		return clampScore(100 * (1 - over))
	}
	// rate < min
	if min <= 0 {
		return 100
	}
	under := (min - rate) / (min / 2)
	return clampScore(100 * (1 - under))
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
