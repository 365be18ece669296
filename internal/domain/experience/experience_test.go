package experience

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

func TestExperienceValidate(t *testing.T) {
	start := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)

	current := Experience{JobTitle: "Engineer", Company: "Acme", StartDate: start, IsCurrent: true}
	assert.NoError(t, current.Validate())

	negative := current
	negative.Order = -1
	var appErr *apperror.AppError
	require.ErrorAs(t, negative.Validate(), &appErr)
	assert.Equal(t, []string{"Ensure this value is greater than or equal to 0."}, appErr.Fields["order"])

	missing := Experience{}
	require.ErrorAs(t, missing.Validate(), &appErr)
	assert.Contains(t, appErr.Fields, "job_title")
	assert.Contains(t, appErr.Fields, "company")
	assert.Contains(t, appErr.Fields, "start_date")
}
