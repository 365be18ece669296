package persistence

import (
	"context"
	"errors"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type postgresEducationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresEducationRepo(db *pgxpool.Pool, logger logger.Logger) education.Repository {
	return &postgresEducationRepo{db: db, logger: logger}
}

const educationColumns = "id, institution, degree_title, field_of_study, start_year, end_year, " +
	"marks_percentage, grade, description, sort_order, created_at"

func scanEducation(row pgx.Row) (*education.Education, error) {
	e := &education.Education{}
	err := row.Scan(
		&e.ID,
		&e.Institution,
		&e.DegreeTitle,
		&e.FieldOfStudy,
		&e.StartYear,
		&e.EndYear,
		&e.MarksPercentage,
		&e.Grade,
		&e.Description,
		&e.Order,
		&e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("education", "")
		}
		return nil, apperror.NewInternal("failed to scan education row", err)
	}
	return e, nil
}

func educationValues(e *education.Education) map[string]any {
	return map[string]any{
		"institution":      e.Institution,
		"degree_title":     e.DegreeTitle,
		"field_of_study":   e.FieldOfStudy,
		"start_year":       e.StartYear,
		"end_year":         e.EndYear,
		"marks_percentage": e.MarksPercentage,
		"grade":            e.Grade,
		"description":      e.Description,
		"sort_order":       e.Order,
	}
}

func (r *postgresEducationRepo) Save(ctx context.Context, e *education.Education) error {
	sql, args, err := psql.Insert("educations").
		SetMap(educationValues(e)).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build insert education query", err)
	}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&e.ID, &e.CreatedAt); err != nil {
		return apperror.NewInternal("failed to save education", err)
	}
	return nil
}

func (r *postgresEducationRepo) Update(ctx context.Context, e *education.Education) error {
	sql, args, err := psql.Update("educations").
		SetMap(educationValues(e)).
		Where(sq.Eq{"id": e.ID}).
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build update education query", err)
	}
	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return apperror.NewInternal("failed to update education", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("education", strconv.FormatInt(e.ID, 10))
	}
	return nil
}

func (r *postgresEducationRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM educations WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete education", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("education", strconv.FormatInt(id, 10))
	}
	return nil
}

func (r *postgresEducationRepo) FindByID(ctx context.Context, id int64) (*education.Education, error) {
	query := `SELECT ` + educationColumns + ` FROM educations WHERE id = $1`
	e, err := scanEducation(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.NewNotFound("education", strconv.FormatInt(id, 10))
	}
	return e, err
}

func (r *postgresEducationRepo) List(ctx context.Context) ([]*education.Education, error) {
	sql, args, err := psql.Select(educationColumns).
		From("educations").
		OrderBy("sort_order ASC", "start_year DESC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list education query", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query education", err)
	}
	return collect(rows, scanEducation)
}
