package project

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

const (
	MaxTitleLength = 200
	MaxLinkLength  = 200
)

var validate = validator.New()

type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Link        *string   `json:"link"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
}

func (p *Project) Validate() error {
	errs := apperror.FieldErrors{}
	if p.Title == "" {
		errs.Add("title", "This field may not be blank.")
	} else if utf8.RuneCountInString(p.Title) > MaxTitleLength {
		errs.Add("title", "Ensure this field has no more than 200 characters.")
	}
	if p.Description == "" {
		errs.Add("description", "This field may not be blank.")
	}
	if p.Image == "" {
		errs.Add("image", "No file was submitted.")
	}
	if p.Link != nil {
		if utf8.RuneCountInString(*p.Link) > MaxLinkLength {
			errs.Add("link", "Ensure this field has no more than 200 characters.")
		} else if validate.Var(*p.Link, "url") != nil {
			errs.Add("link", "Enter a valid URL.")
		}
	}
	errs.CheckInt32("order", p.Order)
	return errs.Err()
}

// Repository lists projects by order ascending, newest first within the same order.
type Repository interface {
	Save(ctx context.Context, project *Project) error
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*Project, error)
	List(ctx context.Context) ([]*Project, error)
}
