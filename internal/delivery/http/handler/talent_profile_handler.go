package handler

import (
	"errors"

	"cast-match/internal/delivery/http/dto"
	"cast-match/internal/delivery/http/middleware"
	"cast-match/internal/pkg/response"
	"cast-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type TalentProfileHandler struct {
	uc   usecase.TalentProfileUsecase
	auth fiber.Handler
}

func NewTalentProfileHandler(uc usecase.TalentProfileUsecase, auth fiber.Handler) *TalentProfileHandler {
	return &TalentProfileHandler{uc: uc, auth: auth}
}

// RegisterRoutes must run after the search handler's so /search wins over the
// :talent_id parameter.
func (h *TalentProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:talent_id", h.Get)
	r.Post("/", h.Create, h.auth)
	r.Delete("/:talent_id", h.Delete, h.auth)
}

func (h *TalentProfileHandler) Create(c fiber.Ctx) error {
	ownerID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	var req dto.TalentProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	in, err := req.ToInput()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.CreateProfile(c.Context(), ownerID, in)
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewTalentProfileResponse(created))
}

func (h *TalentProfileHandler) Get(c fiber.Ctx) error {
	id, err := talentIDParam(c)
	if err != nil {
		return err
	}

	p, err := h.uc.GetProfile(c.Context(), id)
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewTalentProfileResponse(p))
}

func (h *TalentProfileHandler) Delete(c fiber.Ctx) error {
	id, err := talentIDParam(c)
	if err != nil {
		return err
	}
	requesterID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProfile(c.Context(), id, requesterID); err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func talentIDParam(c fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("talent_id"))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", map[string]any{"field": "talent_id"}, err)
	}
	return id, nil
}

func authenticatedUserID(c fiber.Ctx) (uuid.UUID, error) {
	id, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return id, nil
}

func mapProfileUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrTalentNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Talent profile not found", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusForbidden, "Profiles can only be removed by their owner", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
