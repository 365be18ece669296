package education

import (
	"context"
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

type Education struct {
	ID              int64     `json:"id"`
	Institution     string    `json:"institution"`
	DegreeTitle     string    `json:"degree_title"`
	FieldOfStudy    *string   `json:"field_of_study"`
	StartYear       int       `json:"start_year"`
	EndYear         *int      `json:"end_year"`
	MarksPercentage *float64  `json:"marks_percentage"`
	Grade           *string   `json:"grade"`
	Description     *string   `json:"description"`
	Order           int       `json:"order"`
	CreatedAt       time.Time `json:"created_at"`
}

// IsOngoing reports whether the entry has no end year yet.
func (e *Education) IsOngoing() bool {
	return e.EndYear == nil
}

func (e *Education) Validate() error {
	errs := apperror.FieldErrors{}
	requireText(errs, "institution", e.Institution, 255)
	requireText(errs, "degree_title", e.DegreeTitle, 255)
	if e.FieldOfStudy != nil && utf8.RuneCountInString(*e.FieldOfStudy) > 255 {
		errs.Add("field_of_study", "Ensure this field has no more than 255 characters.")
	}
	if e.Grade != nil && utf8.RuneCountInString(*e.Grade) > 20 {
		errs.Add("grade", "Ensure this field has no more than 20 characters.")
	}
	errs.CheckInt32("start_year", e.StartYear)
	if e.EndYear != nil {
		errs.CheckInt32("end_year", *e.EndYear)
	}
	errs.CheckInt32("order", e.Order)
	if p := e.MarksPercentage; p != nil {
		switch {
		case *p < 0 || *p > 100:
			errs.Add("marks_percentage", "Ensure this value is between 0 and 100.")
		case math.Abs(*p*100-math.Round(*p*100)) > 1e-6:
			errs.Add("marks_percentage", "Ensure that there are no more than 2 decimal places.")
		}
	}
	return errs.Err()
}

func requireText(errs apperror.FieldErrors, field, value string, limit int) {
	if value == "" {
		errs.Add(field, "This field may not be blank.")
		return
	}
	if utf8.RuneCountInString(value) > limit {
		errs.Add(field, fmt.Sprintf("Ensure this field has no more than %d characters.", limit))
	}
}

type Repository interface {
	Save(ctx context.Context, edu *Education) error
	Update(ctx context.Context, edu *Education) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*Education, error)
	// List orders by order, then most recent start year.
	List(ctx context.Context) ([]*Education, error)
}
