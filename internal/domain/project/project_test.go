package project

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

func TestProjectValidateLink(t *testing.T) {
	valid := "https://github.com/example/portfolio"
	tooLong := "https://example.com/" + strings.Repeat("a", MaxLinkLength)
	notURL := "portfolio site"

	tests := []struct {
		name string
		link *string
		want string
	}{
		{name: "no link", link: nil},
		{name: "valid", link: &valid},
		{name: "too long", link: &tooLong, want: "Ensure this field has no more than 200 characters."},
		{name: "not a url", link: &notURL, want: "Enter a valid URL."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Project{Title: "T", Description: "D", Image: "https://img/t.png", Link: tt.link}
			err := p.Validate()
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, []string{tt.want}, appErr.Fields["link"])
		})
	}
}

func TestProjectValidateOrderRange(t *testing.T) {
	p := Project{Title: "T", Description: "D", Image: "https://img/t.png", Order: -5}
	assert.NoError(t, p.Validate())

	p.Order = 3000000000
	var appErr *apperror.AppError
	require.ErrorAs(t, p.Validate(), &appErr)
	assert.Contains(t, appErr.Fields, "order")
}
