package matching

import "strings"

// Filter applies the hard (pass/fail) constraints of a query to the candidate
// pool. It never modifies candidates and makes no ordering promise; ranking
// happens later.
func Filter(pool []Candidate, q SearchQuery) []Candidate {
	out := make([]Candidate, 0, len(pool))
	for _, c := range pool {
		if matches(c, q) {
			out = append(out, c)
		}
	}
	return out
}

func matches(c Candidate, q SearchQuery) bool {
	if q.AgeMin != nil && c.Age < *q.AgeMin {
		return false
	}
	if q.AgeMax != nil && c.Age > *q.AgeMax {
		return false
	}
	if q.Gender != "" && c.Gender != q.Gender {
		return false
	}
	// Exact match on the normalized city string. Substring semantics were
	// deliberately rejected as ambiguous.
	if q.City != "" && c.City != q.City {
		return false
	}
	if q.MinRating != nil && c.Rating < *q.MinRating {
		return false
	}
	if q.Verified && !c.Verified {
		return false
	}
	// All requested languages and skills must be present: precision over
	// recall.
	if !containsAll(c.Languages, q.Languages) {
		return false
	}
	if !containsAll(c.Skills, q.Skills) {
		return false
	}
	if q.FreeText != "" && !matchesFreeText(c, q.FreeText) {
		return false
	}
	return true
}

func containsAll(have, want []string) bool {
	for _, w := range want {
		if !contains(have, w) {
			return false
		}
	}
	return true
}

func matchesFreeText(c Candidate, text string) bool {
	if strings.Contains(normalizeValue(c.Name), text) {
		return true
	}
	for _, s := range c.Skills {
		if strings.Contains(s, text) {
			return true
		}
	}
	return false
}
