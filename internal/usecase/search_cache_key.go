package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"cast-match/internal/domain/matching"
)

// talentSearchKeyInput is the canonical form hashed into a cache key. Fields
// come from an already-normalized SearchQuery, so two requests that differ
// only in casing, whitespace or list order share a key.
type talentSearchKeyInput struct {
	FreeText      string   `json:"free_text"`
	City          string   `json:"city"`
	Experience    string   `json:"experience"`
	Languages     []string `json:"languages"`
	Skills        []string `json:"skills"`
	MinRating     *float64 `json:"min_rating"`
	AgeMin        *int     `json:"age_min"`
	AgeMax        *int     `json:"age_max"`
	Gender        string   `json:"gender"`
	AvailableFrom string   `json:"available_from"`
	AvailableTo   string   `json:"available_to"`
	RateMin       int64    `json:"rate_min"`
	RateMax       int64    `json:"rate_max"`
	Verified      bool     `json:"verified"`
	Page          int      `json:"page"`
	Limit         int      `json:"limit"`
}

func TalentSearchCacheKey(q matching.SearchQuery) string {
	in := talentSearchKeyInput{
		FreeText:      q.FreeText,
		City:          q.City,
		Languages:     sortedCopy(q.Languages),
		Skills:        sortedCopy(q.Skills),
		MinRating:     q.MinRating,
		AgeMin:        q.AgeMin,
		AgeMax:        q.AgeMax,
		Gender:        q.Gender,
		AvailableFrom: keyTime(q.AvailableFrom),
		AvailableTo:   keyTime(q.AvailableTo),
		RateMin:       q.RateMin,
		RateMax:       q.RateMax,
		Verified:      q.Verified,
		Page:          q.Page,
		Limit:         q.Limit,
	}
	if q.Experience != nil {
		in.Experience = q.Experience.String()
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "talent:search:" + hex.EncodeToString(sum[:])
}

func TalentSearchLockKey(searchKey string) string {
	if strings.HasPrefix(searchKey, "talent:search:") {
		return "talent:lock:" + strings.TrimPrefix(searchKey, "talent:search:")
	}
	return "talent:lock:" + searchKey
}

func sortedCopy(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	sort.Strings(out)
	return out
}

func keyTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
