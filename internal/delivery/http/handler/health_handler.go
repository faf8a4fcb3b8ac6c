package handler

import (
	"context"
	"time"

	"cast-match/internal/database"
	"cast-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db database.DB
}

func NewHealthHandler(db database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	data := map[string]any{"database": "ok"}
	status := fiber.StatusOK

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			data["database"] = "unreachable"
			status = fiber.StatusServiceUnavailable
		}
	}

	return response.Success(c, status, response.DefaultMessageForStatus(status), data)
}
