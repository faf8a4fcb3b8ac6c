package handler

import (
	"errors"

	"cast-match/internal/delivery/http/middleware"
	"cast-match/internal/pkg/response"
	"cast-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RoleMatchHandler struct {
	uc usecase.RoleMatchUsecase
}

func NewRoleMatchHandler(uc usecase.RoleMatchUsecase) *RoleMatchHandler {
	return &RoleMatchHandler{uc: uc}
}

func (h *RoleMatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:role_id/matches", h.Matches)
	r.Get("/:role_id/match/:talent_id", h.Match)
}

func (h *RoleMatchHandler) Matches(c fiber.Ctx) error {
	roleID, err := roleIDParam(c)
	if err != nil {
		return err
	}

	page, err := parseQueryInt(c, "page", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", map[string]any{"field": "page"}, err)
	}
	limit, err := parseQueryInt(c, "limit", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", map[string]any{"field": "limit"}, err)
	}

	result, err := h.uc.FindTalentForRole(c.Context(), roleID, page, limit)
	if err != nil {
		return mapRoleMatchError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, result)
}

func (h *RoleMatchHandler) Match(c fiber.Ctx) error {
	roleID, err := roleIDParam(c)
	if err != nil {
		return err
	}
	talentID, err := uuid.Parse(c.Params("talent_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", map[string]any{"field": "talent_id"}, err)
	}

	result, err := h.uc.ScoreTalentForRole(c.Context(), roleID, talentID)
	if err != nil {
		return mapRoleMatchError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, result)
}

func mapRoleMatchError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrRoleNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Role not found", nil, err)
	case errors.Is(err, usecase.ErrTalentNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Talent not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
