package persistence

import (
	"context"
	"errors"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type postgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, logger logger.Logger) project.Repository {
	return &postgresProjectRepo{db: db, logger: logger}
}

const projectColumns = "id, title, description, image, link, sort_order, created_at"

func scanProject(row pgx.Row) (*project.Project, error) {
	p := &project.Project{}
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Image,
		&p.Link,
		&p.Order,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("project", "")
		}
		return nil, apperror.NewInternal("failed to scan project row", err)
	}
	return p, nil
}

func (r *postgresProjectRepo) Save(ctx context.Context, p *project.Project) error {
	sql, args, err := psql.Insert("projects").
		Columns("title", "description", "image", "link", "sort_order").
		Values(p.Title, p.Description, p.Image, p.Link, p.Order).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build insert project query", err)
	}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.CreatedAt); err != nil {
		return apperror.NewInternal("failed to save project", err)
	}
	return nil
}

func (r *postgresProjectRepo) Update(ctx context.Context, p *project.Project) error {
	sql, args, err := psql.Update("projects").
		SetMap(map[string]any{
			"title":       p.Title,
			"description": p.Description,
			"image":       p.Image,
			"link":        p.Link,
			"sort_order":  p.Order,
		}).
		Where(sq.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build update project query", err)
	}
	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return apperror.NewInternal("failed to update project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("project", strconv.FormatInt(p.ID, 10))
	}
	return nil
}

func (r *postgresProjectRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM projects WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return apperror.NewInternal("failed to delete project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("project", strconv.FormatInt(id, 10))
	}
	return nil
}

func (r *postgresProjectRepo) FindByID(ctx context.Context, id int64) (*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	p, err := scanProject(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.NewNotFound("project", strconv.FormatInt(id, 10))
	}
	return p, err
}

func (r *postgresProjectRepo) List(ctx context.Context) ([]*project.Project, error) {
	sql, args, err := psql.Select(projectColumns).
		From("projects").
		OrderBy("sort_order ASC", "created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list projects query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects", err)
	}
	return collect(rows, scanProject)
}
