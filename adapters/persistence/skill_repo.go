package persistence

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type postgresSkillRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSkillRepo(db *pgxpool.Pool, logger logger.Logger) skill.Repository {
	return &postgresSkillRepo{db: db, logger: logger}
}

func scanSkill(row pgx.Row) (*skill.Skill, error) {
	s := &skill.Skill{}
	if err := row.Scan(&s.ID, &s.Name, &s.Level, &s.Order); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("skill", "")
		}
		return nil, apperror.NewInternal("failed to scan skill row", err)
	}
	return s, nil
}

func (r *postgresSkillRepo) Save(ctx context.Context, s *skill.Skill) error {
	query := `INSERT INTO skills (name, level, sort_order) VALUES ($1, $2, $3) RETURNING id`
	if err := r.db.QueryRow(ctx, query, s.Name, s.Level, s.Order).Scan(&s.ID); err != nil {
		return apperror.NewInternal("failed to save skill", err)
	}
	return nil
}

func (r *postgresSkillRepo) Update(ctx context.Context, s *skill.Skill) error {
	query := `UPDATE skills SET name = $2, level = $3, sort_order = $4 WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, s.ID, s.Name, s.Level, s.Order)
	if err != nil {
		return apperror.NewInternal("failed to update skill", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("skill", strconv.FormatInt(s.ID, 10))
	}
	return nil
}

func (r *postgresSkillRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete skill", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("skill", strconv.FormatInt(id, 10))
	}
	return nil
}

func (r *postgresSkillRepo) FindByID(ctx context.Context, id int64) (*skill.Skill, error) {
	s, err := scanSkill(r.db.QueryRow(ctx, `SELECT id, name, level, sort_order FROM skills WHERE id = $1`, id))
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.NewNotFound("skill", strconv.FormatInt(id, 10))
	}
	return s, err
}

func (r *postgresSkillRepo) List(ctx context.Context) ([]*skill.Skill, error) {
	sql, args, err := psql.Select("id", "name", "level", "sort_order").
		From("skills").
		OrderBy("sort_order ASC", "name ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list skills query", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query skills", err)
	}
	return collect(rows, scanSkill)
}

