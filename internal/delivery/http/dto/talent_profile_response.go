package dto

import (
	"time"

	"cast-match/internal/domain/talent"

	"github.com/google/uuid"
)

type TalentProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Age         int       `json:"age"`
	Gender      string    `json:"gender,omitempty"`
	City        string    `json:"city,omitempty"`
	Experience  string    `json:"experience"`
	Skills      []string  `json:"skills"`
	Languages   []string  `json:"languages"`
	Rating      float64   `json:"rating"`
	DailyRate   int64     `json:"daily_rate"`
	Verified    bool      `json:"verified"`

	AvailableFrom string `json:"available_from,omitempty"`
	AvailableTo   string `json:"available_to,omitempty"`
}

func NewTalentProfileResponse(p talent.Profile) TalentProfileResponse {
	out := TalentProfileResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		DisplayName: p.DisplayName,
		Age:         p.Age,
		Gender:      p.Gender,
		City:        p.City,
		Experience:  p.Experience.String(),
		Skills:      p.Skills,
		Languages:   p.Languages,
		Rating:      p.Rating,
		DailyRate:   p.DailyRate,
		Verified:    p.Verified,
	}
	if !p.AvailableFrom.IsZero() {
		out.AvailableFrom = p.AvailableFrom.UTC().Format(time.RFC3339)
	}
	if !p.AvailableTo.IsZero() {
		out.AvailableTo = p.AvailableTo.UTC().Format(time.RFC3339)
	}
	return out
}
