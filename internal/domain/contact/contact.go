package contact

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

var validate = validator.New()

// Message is a visitor submission. It is never updated after creation.
type Message struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func (m *Message) Validate() error {
	errs := apperror.FieldErrors{}
	if m.Name == "" {
		errs.Add("name", "This field may not be blank.")
	} else if utf8.RuneCountInString(m.Name) > 100 {
		errs.Add("name", "Ensure this field has no more than 100 characters.")
	}
	if m.Email == "" {
		errs.Add("email", "This field may not be blank.")
	} else if err := validate.Var(m.Email, "email,max=254"); err != nil {
		errs.Add("email", "Enter a valid email address.")
	}
	if m.Message == "" {
		errs.Add("message", "This field may not be blank.")
	}
	return errs.Err()
}

type Repository interface {
	Save(ctx context.Context, msg *Message) error
	Delete(ctx context.Context, id int64) error
	// List returns newest first.
	List(ctx context.Context) ([]*Message, error)
}
