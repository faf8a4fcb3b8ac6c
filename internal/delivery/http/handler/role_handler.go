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

type RoleHandler struct {
	uc usecase.RoleUsecase
}

func NewRoleHandler(uc usecase.RoleUsecase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

func (h *RoleHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/", h.Create)
	r.Get("/:role_id", h.Get)
	r.Put("/:role_id", h.Update)
	r.Post("/:role_id/amend", h.Amend)
	r.Post("/:role_id/auditions", h.StartAuditions)
}

func (h *RoleHandler) Create(c fiber.Ctx) error {
	var req dto.RoleRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	in, err := req.ToInput()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.CreateRole(c.Context(), in)
	if err != nil {
		return mapRoleUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewRoleResponse(created))
}

func (h *RoleHandler) Get(c fiber.Ctx) error {
	id, err := roleIDParam(c)
	if err != nil {
		return err
	}

	req, err := h.uc.GetRole(c.Context(), id)
	if err != nil {
		return mapRoleUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRoleResponse(req))
}

func (h *RoleHandler) Update(c fiber.Ctx) error {
	id, err := roleIDParam(c)
	if err != nil {
		return err
	}
	var req dto.RoleRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	in, err := req.ToInput()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.UpdateRole(c.Context(), id, in)
	if err != nil {
		return mapRoleUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRoleResponse(updated))
}

func (h *RoleHandler) Amend(c fiber.Ctx) error {
	id, err := roleIDParam(c)
	if err != nil {
		return err
	}
	var req dto.RoleRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	in, err := req.ToInput()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	amended, err := h.uc.AmendRole(c.Context(), id, in)
	if err != nil {
		return mapRoleUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRoleResponse(amended))
}

func (h *RoleHandler) StartAuditions(c fiber.Ctx) error {
	id, err := roleIDParam(c)
	if err != nil {
		return err
	}
	if err := h.uc.StartAuditions(c.Context(), id); err != nil {
		return mapRoleUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func roleIDParam(c fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("role_id"))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", map[string]any{"field": "role_id"}, err)
	}
	return id, nil
}

func mapRoleUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrRoleNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Role not found", nil, err)
	case errors.Is(err, usecase.ErrRoleLocked):
		return middleware.NewAppError(fiber.StatusConflict, "Role locked once auditions start, submit an amendment", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
