package dto

import (
	"time"

	"cast-match/internal/usecase"
)

type TalentProfileRequest struct {
	DisplayName string   `json:"display_name"`
	Age         int      `json:"age"`
	Gender      string   `json:"gender"`
	City        string   `json:"city"`
	Experience  string   `json:"experience"`
	Skills      []string `json:"skills"`
	Languages   []string `json:"languages"`
	Rating      float64  `json:"rating"`
	DailyRate   int64    `json:"daily_rate"`

	// RFC3339; both empty means open availability.
	AvailableFrom string `json:"available_from"`
	AvailableTo   string `json:"available_to"`
}

func (r TalentProfileRequest) ToInput() (usecase.ProfileInput, error) {
	in := usecase.ProfileInput{
		DisplayName: r.DisplayName,
		Age:         r.Age,
		Gender:      r.Gender,
		City:        r.City,
		Experience:  r.Experience,
		Skills:      r.Skills,
		Languages:   r.Languages,
		Rating:      r.Rating,
		DailyRate:   r.DailyRate,
	}

	if r.AvailableFrom != "" {
		t, err := time.Parse(time.RFC3339, r.AvailableFrom)
		if err != nil {
			return usecase.ProfileInput{}, err
		}
		in.AvailableFrom = t
	}
	if r.AvailableTo != "" {
		t, err := time.Parse(time.RFC3339, r.AvailableTo)
		if err != nil {
			return usecase.ProfileInput{}, err
		}
		in.AvailableTo = t
	}
	return in, nil
}
