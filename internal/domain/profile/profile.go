package profile

import (
	"context"
	"time"
)

// Profile carries the portfolio owner's picture. The store does not enforce a
// single row.
type Profile struct {
	ID           int64     `json:"id"`
	ProfileImage *string   `json:"profile_image"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Repository interface {
	Save(ctx context.Context, profile *Profile) error
	Update(ctx context.Context, profile *Profile) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*Profile, error)
	List(ctx context.Context) ([]*Profile, error)
}
