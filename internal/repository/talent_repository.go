package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"cast-match/internal/database"
	"cast-match/internal/domain/talent"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// nullableTime maps a zero time to NULL so "open availability" is stored as
// the absence of a bound.
func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}

// TalentFilterHints narrows the candidate pool at the database before the
// engine applies its exact filters. Every hint mirrors a hard filter, so
// pre-filtering here never changes the result set, only shrinks the rows
// scanned in memory.
type TalentFilterHints struct {
	City      string
	Gender    string
	AgeMin    *int
	AgeMax    *int
	MinRating *float64
	Verified  bool
	Skills    []string
	Languages []string
}

type TalentRepository interface {
	FindCandidatePool(ctx context.Context, hints TalentFilterHints) ([]talent.Profile, error)
	FindByID(ctx context.Context, id uuid.UUID) (talent.Profile, error)
	Create(ctx context.Context, p talent.Profile) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type PostgresTalentRepository struct {
	db database.DB
}

func NewPostgresTalentRepository(db database.DB) *PostgresTalentRepository {
	return &PostgresTalentRepository{db: db}
}

const talentColumns = `id, user_id, display_name, age, gender, city, experience,
	skills, languages, rating, daily_rate, available_from, available_to,
	verified, created_at, updated_at, deleted_at`

func (r *PostgresTalentRepository) FindCandidatePool(ctx context.Context, hints TalentFilterHints) ([]talent.Profile, error) {
	where := []string{"deleted_at IS NULL"}
	args := []any{}

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if hints.City != "" {
		where = append(where, "LOWER(city) = "+arg(hints.City))
	}
	if hints.Gender != "" {
		where = append(where, "LOWER(gender) = "+arg(hints.Gender))
	}
	if hints.AgeMin != nil {
		where = append(where, "age >= "+arg(*hints.AgeMin))
	}
	if hints.AgeMax != nil {
		where = append(where, "age <= "+arg(*hints.AgeMax))
	}
	if hints.MinRating != nil {
		where = append(where, "rating >= "+arg(*hints.MinRating))
	}
	if hints.Verified {
		where = append(where, "verified = TRUE")
	}
	if len(hints.Skills) > 0 {
		where = append(where, "skills @> "+arg(hints.Skills))
	}
	if len(hints.Languages) > 0 {
		where = append(where, "languages @> "+arg(hints.Languages))
	}

	query := fmt.Sprintf(
		`SELECT %s FROM talent_profiles WHERE %s ORDER BY id`,
		talentColumns,
		strings.Join(where, " AND "),
	)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]talent.Profile, 0)
	for rows.Next() {
		p, err := scanTalent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresTalentRepository) FindByID(ctx context.Context, id uuid.UUID) (talent.Profile, error) {
	row := r.db.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM talent_profiles WHERE id = $1 AND deleted_at IS NULL`, talentColumns),
		id,
	)
	p, err := scanTalent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return talent.Profile{}, talent.ErrNotFound
		}
		return talent.Profile{}, err
	}
	return p, nil
}

func (r *PostgresTalentRepository) Create(ctx context.Context, p talent.Profile) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO talent_profiles
			(id, user_id, display_name, age, gender, city, experience, skills,
			 languages, rating, daily_rate, available_from, available_to, verified)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		p.ID, p.UserID, p.DisplayName, p.Age, p.Gender, p.City, int16(p.Experience),
		p.Skills, p.Languages, p.Rating, p.DailyRate,
		nullableTime(p.AvailableFrom), nullableTime(p.AvailableTo), p.Verified,
	)
	return err
}

func (r *PostgresTalentRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE talent_profiles SET deleted_at = now(), updated_at = now()
		 WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return talent.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTalent(row scanner) (talent.Profile, error) {
	var p talent.Profile
	var experience int16
	var availableFrom, availableTo sql.NullTime

	err := row.Scan(
		&p.ID, &p.UserID, &p.DisplayName, &p.Age, &p.Gender, &p.City, &experience,
		&p.Skills, &p.Languages, &p.Rating, &p.DailyRate,
		&availableFrom, &availableTo,
		&p.Verified, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	)
	if err != nil {
		return talent.Profile{}, err
	}

	p.Experience = talent.ExperienceTier(experience)
	if availableFrom.Valid {
		p.AvailableFrom = availableFrom.Time
	}
	if availableTo.Valid {
		p.AvailableTo = availableTo.Time
	}
	return p, nil
}
