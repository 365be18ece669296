package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

func TestMessageValidate(t *testing.T) {
	tests := []struct {
		name    string
		msg     Message
		wantErr string
	}{
		{name: "valid", msg: Message{Name: "Ann", Email: "ann@example.com", Message: "hello"}},
		{name: "bad email", msg: Message{Name: "Ann", Email: "not-an-email", Message: "hello"}, wantErr: "email"},
		{name: "blank name", msg: Message{Email: "ann@example.com", Message: "hello"}, wantErr: "name"},
		{name: "long name", msg: Message{Name: strings.Repeat("a", 101), Email: "ann@example.com", Message: "hi"}, wantErr: "name"},
		{name: "blank message", msg: Message{Name: "Ann", Email: "ann@example.com"}, wantErr: "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.ErrorIs(t, err, apperror.ErrInvalidInput)
			assert.Contains(t, appErr.Fields, tt.wantErr)
		})
	}
}
