package persistence

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/contact"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type postgresContactRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresContactRepo(db *pgxpool.Pool, logger logger.Logger) contact.Repository {
	return &postgresContactRepo{db: db, logger: logger}
}

func scanMessage(row pgx.Row) (*contact.Message, error) {
	m := &contact.Message{}
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("contact message", "")
		}
		return nil, apperror.NewInternal("failed to scan contact message row", err)
	}
	return m, nil
}

func (r *postgresContactRepo) Save(ctx context.Context, m *contact.Message) error {
	query := `
		INSERT INTO contact_messages (name, email, message)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	if err := r.db.QueryRow(ctx, query, m.Name, m.Email, m.Message).Scan(&m.ID, &m.CreatedAt); err != nil {
		return apperror.NewInternal("failed to save contact message", err)
	}
	return nil
}

func (r *postgresContactRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete contact message", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("contact message", strconv.FormatInt(id, 10))
	}
	return nil
}

func (r *postgresContactRepo) List(ctx context.Context) ([]*contact.Message, error) {
	sql, args, err := psql.Select("id", "name", "email", "message", "created_at").
		From("contact_messages").
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list contact messages query", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query contact messages", err)
	}
	return collect(rows, scanMessage)
}
