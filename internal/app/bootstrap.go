package app

import (
	"fmt"
	"strings"

	"cast-match/internal/delivery/http/middleware"
	"cast-match/internal/delivery/http/routes"
	v1 "cast-match/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())

	registry := routes.NewRegistry(c.DB, v1.Deps{
		JWT:      c.JWT,
		Auth:     c.AuthUsecase,
		Search:   c.TalentSearch,
		Profiles: c.TalentProfiles,
		Roles:    c.RoleUsecase,
		Matches:  c.RoleMatchUsecase,
	})
	registry.Register(f)

	return &App{Fiber: f}
}

func Bootstrap(c *Container) (*App, func() error, error) {
	app := New(c)
	return app, c.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
