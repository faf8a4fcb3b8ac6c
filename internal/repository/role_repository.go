package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cast-match/internal/database"
	"cast-match/internal/domain/role"
	"cast-match/internal/domain/talent"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RoleRepository interface {
	Create(ctx context.Context, r role.Requirement) error
	// FindByID returns the latest version of a requirement.
	FindByID(ctx context.Context, id uuid.UUID) (role.Requirement, error)
	// Amend inserts the next version for an existing requirement and returns
	// it. The previous versions stay untouched.
	Amend(ctx context.Context, r role.Requirement) (role.Requirement, error)
	MarkAuditionsStarted(ctx context.Context, id uuid.UUID) error
}

type PostgresRoleRepository struct {
	db database.DB
}

func NewPostgresRoleRepository(db database.DB) *PostgresRoleRepository {
	return &PostgresRoleRepository{db: db}
}

const roleColumns = `id, version, project_id, character_name, importance,
	age_min, age_max, gender, skills, languages, experience,
	budget_min, budget_max, shoot_from, shoot_to, auditions_started,
	created_at, updated_at`

func (r *PostgresRoleRepository) Create(ctx context.Context, req role.Requirement) error {
	return r.insert(ctx, req, 1)
}

func (r *PostgresRoleRepository) FindByID(ctx context.Context, id uuid.UUID) (role.Requirement, error) {
	row := r.db.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM role_requirements
			WHERE id = $1 ORDER BY version DESC LIMIT 1`, roleColumns),
		id,
	)
	req, err := scanRole(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return role.Requirement{}, role.ErrNotFound
		}
		return role.Requirement{}, err
	}
	return req, nil
}

func (r *PostgresRoleRepository) Amend(ctx context.Context, req role.Requirement) (role.Requirement, error) {
	current, err := r.FindByID(ctx, req.ID)
	if err != nil {
		return role.Requirement{}, err
	}

	next := req
	next.Version = current.Version + 1
	next.AuditionsStarted = current.AuditionsStarted
	if err := r.insert(ctx, next, next.Version); err != nil {
		return role.Requirement{}, err
	}
	return r.FindByID(ctx, req.ID)
}

func (r *PostgresRoleRepository) MarkAuditionsStarted(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE role_requirements SET auditions_started = TRUE, updated_at = now()
		 WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return role.ErrNotFound
	}
	return nil
}

func (r *PostgresRoleRepository) insert(ctx context.Context, req role.Requirement, version int) error {
	var experience any
	if req.Experience != nil {
		experience = int16(*req.Experience)
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO role_requirements
			(id, version, project_id, character_name, importance, age_min, age_max,
			 gender, skills, languages, experience, budget_min, budget_max,
			 shoot_from, shoot_to, auditions_started)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		req.ID, version, req.ProjectID, req.CharacterName, string(req.Importance),
		req.AgeMin, req.AgeMax, req.Gender, req.Skills, req.Languages, experience,
		req.BudgetMin, req.BudgetMax,
		nullableTime(req.ShootFrom), nullableTime(req.ShootTo),
		req.AuditionsStarted,
	)
	return err
}

func scanRole(row scanner) (role.Requirement, error) {
	var req role.Requirement
	var importance string
	var experience sql.NullInt16
	var shootFrom, shootTo sql.NullTime

	err := row.Scan(
		&req.ID, &req.Version, &req.ProjectID, &req.CharacterName, &importance,
		&req.AgeMin, &req.AgeMax, &req.Gender, &req.Skills, &req.Languages, &experience,
		&req.BudgetMin, &req.BudgetMax, &shootFrom, &shootTo, &req.AuditionsStarted,
		&req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return role.Requirement{}, err
	}

	req.Importance = role.Importance(importance)
	if experience.Valid {
		tier := talent.ExperienceTier(experience.Int16)
		req.Experience = &tier
	}
	if shootFrom.Valid {
		req.ShootFrom = shootFrom.Time
	}
	if shootTo.Valid {
		req.ShootTo = shootTo.Time
	}
	return req, nil
}
