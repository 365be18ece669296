package persistence

import (
	"github.com/jackc/pgx/v5"

	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

// collect drains rows through a single-row scanner and closes them.
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (*T, error)) ([]*T, error) {
	defer rows.Close()
	items := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating rows", err)
	}
	return items, nil
}
