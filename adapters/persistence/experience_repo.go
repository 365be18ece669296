package persistence

import (
	"context"
	"errors"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type postgresExperienceRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresExperienceRepo(db *pgxpool.Pool, logger logger.Logger) experience.Repository {
	return &postgresExperienceRepo{db: db, logger: logger}
}

const experienceColumns = "id, job_title, company, location, start_date, end_date, " +
	"is_current, description, sort_order, created_at"

func scanExperience(row pgx.Row) (*experience.Experience, error) {
	e := &experience.Experience{}
	err := row.Scan(
		&e.ID,
		&e.JobTitle,
		&e.Company,
		&e.Location,
		&e.StartDate,
		&e.EndDate,
		&e.IsCurrent,
		&e.Description,
		&e.Order,
		&e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("experience", "")
		}
		return nil, apperror.NewInternal("failed to scan experience row", err)
	}
	return e, nil
}

func experienceValues(e *experience.Experience) map[string]any {
	return map[string]any{
		"job_title":   e.JobTitle,
		"company":     e.Company,
		"location":    e.Location,
		"start_date":  e.StartDate,
		"end_date":    e.EndDate,
		"is_current":  e.IsCurrent,
		"description": e.Description,
		"sort_order":  e.Order,
	}
}

func (r *postgresExperienceRepo) Save(ctx context.Context, e *experience.Experience) error {
	sql, args, err := psql.Insert("experiences").
		SetMap(experienceValues(e)).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build insert experience query", err)
	}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&e.ID, &e.CreatedAt); err != nil {
		return apperror.NewInternal("failed to save experience", err)
	}
	return nil
}

func (r *postgresExperienceRepo) Update(ctx context.Context, e *experience.Experience) error {
	sql, args, err := psql.Update("experiences").
		SetMap(experienceValues(e)).
		Where(sq.Eq{"id": e.ID}).
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build update experience query", err)
	}
	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return apperror.NewInternal("failed to update experience", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("experience", strconv.FormatInt(e.ID, 10))
	}
	return nil
}

func (r *postgresExperienceRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete experience", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("experience", strconv.FormatInt(id, 10))
	}
	return nil
}

func (r *postgresExperienceRepo) FindByID(ctx context.Context, id int64) (*experience.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences WHERE id = $1`
	e, err := scanExperience(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.NewNotFound("experience", strconv.FormatInt(id, 10))
	}
	return e, err
}

func (r *postgresExperienceRepo) List(ctx context.Context) ([]*experience.Experience, error) {
	sql, args, err := psql.Select(experienceColumns).
		From("experiences").
		OrderBy("sort_order ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list experience query", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query experience", err)
	}
	return collect(rows, scanExperience)
}
