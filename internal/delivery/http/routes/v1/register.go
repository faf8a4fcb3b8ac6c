package v1

import (
	"cast-match/internal/delivery/http/handler"
	"cast-match/internal/delivery/http/middleware"
	"cast-match/internal/pkg/jwt"
	"cast-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Deps carries the wired usecases into route registration so the routes
// package stays free of construction logic.
type Deps struct {
	JWT jwt.Service

	Auth     usecase.AuthUsecase
	Search   usecase.TalentSearchUsecase
	Profiles usecase.TalentProfileUsecase
	Roles    usecase.RoleUsecase
	Matches  usecase.RoleMatchUsecase
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	authMw := middleware.NewAuthMiddleware(d.JWT)

	authGroup := r.Group("/auth")
	handler.NewAuthHandler(d.Auth).RegisterRoutes(authGroup)

	talentGroup := r.Group("/talent")
	handler.NewTalentSearchHandler(d.Search).RegisterRoutes(talentGroup)
	handler.NewTalentProfileHandler(d.Profiles, authMw.Middleware()).RegisterRoutes(talentGroup)

	rolesGroup := r.Group("/roles", authMw.Middleware())
	handler.NewRoleHandler(d.Roles).RegisterRoutes(rolesGroup)
	handler.NewRoleMatchHandler(d.Matches).RegisterRoutes(rolesGroup)
}
