package app

import (
	"context"
	"fmt"
	"time"

	"cast-match/internal/config"
	"cast-match/internal/database"
	"cast-match/internal/database/migration"
	dbpostgres "cast-match/internal/database/postgres"
	"cast-match/internal/domain/matching"
	"cast-match/internal/infrastructure/cache"
	"cast-match/internal/pkg/jwt"
	"cast-match/internal/repository"
	"cast-match/internal/usecase"

	"go.uber.org/zap"
)

// Container owns every long-lived dependency: database pool, cache client,
// the matching engine and the usecases built on top of them.
type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	Engine *matching.Engine
	JWT    jwt.Service

	AuthUsecase      usecase.AuthUsecase
	TalentSearch     usecase.TalentSearchUsecase
	TalentProfiles   usecase.TalentProfileUsecase
	RoleUsecase      usecase.RoleUsecase
	RoleMatchUsecase usecase.RoleMatchUsecase
	TalentRepository repository.TalentRepository
	RoleRepository   repository.RoleRepository
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if cfg.Database.MigrationsEnabled {
		if err := (migration.Runner{}).Run(ctx, db.SQLDB()); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
	}

	engine, err := matching.NewEngine(logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("build matching engine: %w", err)
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	talents := repository.NewPostgresTalentRepository(db)
	roles := repository.NewPostgresRoleRepository(db)
	users := repository.NewPostgresUserRepository(db)

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  redisCache,
		Engine: engine,
		JWT:    jwtSvc,

		AuthUsecase:      usecase.NewAuthUsecase(users, jwtSvc),
		TalentSearch:     usecase.NewTalentSearchUsecase(talents, engine, redisCache, logger),
		TalentProfiles:   usecase.NewTalentProfileUsecase(talents, redisCache),
		RoleUsecase:      usecase.NewRoleUsecase(roles, redisCache),
		RoleMatchUsecase: usecase.NewRoleMatchUsecase(roles, talents, engine),
		TalentRepository: talents,
		RoleRepository:   roles,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
