package apperror

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NewNotFound("project", "7"), http.StatusNotFound},
		{"validation", NewFieldError("email", "Enter a valid email address."), http.StatusBadRequest},
		{"unauthorized", NewNotAuthenticated("missing bearer token"), http.StatusUnauthorized},
		{"permission", NewPermissionDenied("staff only"), http.StatusForbidden},
		{"conflict", NewConflict("user", "username", "bob"), http.StatusConflict},
		{"wrapped", fmt.Errorf("delete failed: %w", NewNotFound("skill", "3")), http.StatusNotFound},
		{"plain", fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ToHTTPStatus(tc.err))
		})
	}
}

func TestValidationToJSON(t *testing.T) {
	err := NewValidation(map[string][]string{
		"password": {"Passwords do not match."},
	})

	body := err.ToJSON()
	assert.Equal(t, "invalid input", body["error"])
	assert.Equal(t, map[string][]string{"password": {"Passwords do not match."}}, body["fields"])

	plain := NewNotFound("project", "1").ToJSON()
	_, hasFields := plain["fields"]
	assert.False(t, hasFields)
}

func TestFieldErrorsCheckInt32(t *testing.T) {
	errs := FieldErrors{}
	errs.CheckInt32("order", 2147483647)
	errs.CheckInt32("start_year", -2147483648)
	assert.NoError(t, errs.Err())

	errs.CheckInt32("order", 3000000000)
	errs.CheckInt32("start_year", -3000000000)
	assert.Equal(t, []string{"Ensure this value is less than or equal to 2147483647."}, errs["order"])
	assert.Equal(t, []string{"Ensure this value is greater than or equal to -2147483648."}, errs["start_year"])
}
