package experience

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

// DateLayout is the wire and storage format of start/end dates.
const DateLayout = "2006-01-02"

// Experience is a job entry. A nil EndDate means "present"; it usually goes
// together with IsCurrent but the two are stored independently.
type Experience struct {
	ID          int64      `json:"id"`
	JobTitle    string     `json:"job_title"`
	Company     string     `json:"company"`
	Location    *string    `json:"location"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	IsCurrent   bool       `json:"is_current"`
	Description *string    `json:"description"`
	Order       int        `json:"order"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (e *Experience) Validate() error {
	errs := apperror.FieldErrors{}
	for field, value := range map[string]string{"job_title": e.JobTitle, "company": e.Company} {
		if value == "" {
			errs.Add(field, "This field may not be blank.")
		} else if utf8.RuneCountInString(value) > 200 {
			errs.Add(field, "Ensure this field has no more than 200 characters.")
		}
	}
	if e.Location != nil && utf8.RuneCountInString(*e.Location) > 200 {
		errs.Add("location", "Ensure this field has no more than 200 characters.")
	}
	if e.StartDate.IsZero() {
		errs.Add("start_date", "This field is required.")
	}
	if e.Order < 0 {
		errs.Add("order", "Ensure this value is greater than or equal to 0.")
	} else {
		errs.CheckInt32("order", e.Order)
	}
	return errs.Err()
}

type Repository interface {
	Save(ctx context.Context, exp *Experience) error
	Update(ctx context.Context, exp *Experience) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*Experience, error)
	List(ctx context.Context) ([]*Experience, error)
}
