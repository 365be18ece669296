package skill

import (
	"context"
	"unicode/utf8"

	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

type Skill struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Level string `json:"level"`
	Order int    `json:"order"`
}

func (s *Skill) Validate() error {
	errs := apperror.FieldErrors{}
	if s.Name == "" {
		errs.Add("name", "This field may not be blank.")
	} else if utf8.RuneCountInString(s.Name) > 100 {
		errs.Add("name", "Ensure this field has no more than 100 characters.")
	}
	if s.Level == "" {
		errs.Add("level", "This field may not be blank.")
	} else if utf8.RuneCountInString(s.Level) > 50 {
		errs.Add("level", "Ensure this field has no more than 50 characters.")
	}
	errs.CheckInt32("order", s.Order)
	return errs.Err()
}

type Repository interface {
	Save(ctx context.Context, skill *Skill) error
	Update(ctx context.Context, skill *Skill) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*Skill, error)
	// List orders by order, then name.
	List(ctx context.Context) ([]*Skill, error)
}
