package handler

import (
	"errors"
	"strconv"
	"strings"

	"cast-match/internal/delivery/http/middleware"
	"cast-match/internal/domain/matching"
	"cast-match/internal/pkg/response"
	"cast-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type TalentSearchHandler struct {
	uc usecase.TalentSearchUsecase
}

func NewTalentSearchHandler(uc usecase.TalentSearchUsecase) *TalentSearchHandler {
	return &TalentSearchHandler{uc: uc}
}

func (h *TalentSearchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/search", h.Search)
}

func (h *TalentSearchHandler) Search(c fiber.Ctx) error {
	raw := matching.RawSearchInput{
		Query:        c.Query("query"),
		Location:     c.Query("location"),
		Experience:   c.Query("experience"),
		Gender:       c.Query("gender"),
		Availability: c.Query("availability"),
		Skills:       parseListQuery(c.Query("skills")),
		Languages:    parseListQuery(c.Query("languages")),
	}

	var err error
	if raw.Page, err = parseQueryInt(c, "page", 0); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", map[string]any{"field": "page"}, err)
	}
	if raw.Limit, err = parseQueryInt(c, "limit", 0); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", map[string]any{"field": "limit"}, err)
	}
	if raw.MinRating, err = parseQueryFloatPtr(c, "min_rating"); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", map[string]any{"field": "min_rating"}, err)
	}
	if raw.AgeMin, err = parseQueryIntPtr(c, "age_min"); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", map[string]any{"field": "age_min"}, err)
	}
	if raw.AgeMax, err = parseQueryIntPtr(c, "age_max"); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", map[string]any{"field": "age_max"}, err)
	}
	if v := c.Query("verified"); v != "" {
		raw.Verified, err = strconv.ParseBool(v)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", map[string]any{"field": "verified"}, err)
		}
	}

	result, err := h.uc.SearchTalent(c.Context(), raw)
	if err != nil {
		return mapSearchError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, result)
}

// mapSearchError surfaces validation details (field, allowed values) to the
// client; everything else is a generic failure.
func mapSearchError(err error) error {
	var enumErr *matching.InvalidEnumError
	if errors.As(err, &enumErr) {
		detail := map[string]any{"field": enumErr.Field, "allowed": enumErr.Allowed}
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", detail, err)
	}

	var rangeErr *matching.InvalidRangeError
	if errors.As(err, &rangeErr) {
		detail := map[string]any{"field": rangeErr.Field, "reason": rangeErr.Reason}
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", detail, err)
	}

	if errors.Is(err, usecase.ErrInvalidInput) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}

func parseListQuery(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}

func parseQueryIntPtr(c fiber.Ctx, key string) (*int, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseQueryFloatPtr(c fiber.Ctx, key string) (*float64, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
