package skill

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

func TestSkillValidate(t *testing.T) {
	assert.NoError(t, (&Skill{Name: "Go", Level: "Advanced", Order: -3}).Validate())

	var appErr *apperror.AppError
	require.ErrorAs(t, (&Skill{Name: strings.Repeat("x", 101)}).Validate(), &appErr)
	assert.Contains(t, appErr.Fields, "name")
	assert.Contains(t, appErr.Fields, "level")
}
