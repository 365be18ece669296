package persistence

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

func scanProfile(row pgx.Row) (*profile.Profile, error) {
	p := &profile.Profile{}
	if err := row.Scan(&p.ID, &p.ProfileImage, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", "")
		}
		return nil, apperror.NewInternal("failed to scan profile row", err)
	}
	return p, nil
}

func (r *postgresProfileRepo) Save(ctx context.Context, p *profile.Profile) error {
	query := `INSERT INTO profiles (profile_image) VALUES ($1) RETURNING id, updated_at`
	if err := r.db.QueryRow(ctx, query, p.ProfileImage).Scan(&p.ID, &p.UpdatedAt); err != nil {
		return apperror.NewInternal("failed to save profile", err)
	}
	return nil
}

func (r *postgresProfileRepo) Update(ctx context.Context, p *profile.Profile) error {
	query := `
		UPDATE profiles SET profile_image = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query, p.ID, p.ProfileImage).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NewNotFound("profile", strconv.FormatInt(p.ID, 10))
		}
		return apperror.NewInternal("failed to update profile", err)
	}
	return nil
}

func (r *postgresProfileRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete profile", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("profile", strconv.FormatInt(id, 10))
	}
	return nil
}

func (r *postgresProfileRepo) FindByID(ctx context.Context, id int64) (*profile.Profile, error) {
	query := `SELECT id, profile_image, updated_at FROM profiles WHERE id = $1`
	p, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.NewNotFound("profile", strconv.FormatInt(id, 10))
	}
	return p, err
}

func (r *postgresProfileRepo) List(ctx context.Context) ([]*profile.Profile, error) {
	sql, args, err := psql.Select("id", "profile_image", "updated_at").
		From("profiles").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list profiles query", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query profiles", err)
	}
	return collect(rows, scanProfile)
}
