package access

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

var (
	staff   = &Identity{UserID: 1, Username: "admin", IsStaff: true}
	regular = &Identity{UserID: 2, Username: "visitor"}
)

func TestPolicies(t *testing.T) {
	writes := []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}

	t.Run("public read", func(t *testing.T) {
		p := PublicReadPolicy()
		assert.NoError(t, p.Check(nil, http.MethodGet))
		assert.NoError(t, p.Check(nil, http.MethodHead))
		assert.NoError(t, p.Check(nil, http.MethodOptions))
		for _, m := range writes {
			assert.ErrorIs(t, p.Check(staff, m), apperror.ErrPermission, m)
		}
	})

	t.Run("admin only", func(t *testing.T) {
		p := AdminOnlyPolicy()
		for _, m := range append(writes, http.MethodGet) {
			assert.ErrorIs(t, p.Check(nil, m), apperror.ErrUnauthorized, m)
			assert.ErrorIs(t, p.Check(regular, m), apperror.ErrPermission, m)
			assert.NoError(t, p.Check(staff, m), m)
		}
	})

	t.Run("authenticated", func(t *testing.T) {
		p := AuthenticatedPolicy()
		assert.ErrorIs(t, p.Check(nil, http.MethodGet), apperror.ErrUnauthorized)
		assert.NoError(t, p.Check(regular, http.MethodPost))
	})

	t.Run("mixed read public write admin", func(t *testing.T) {
		p := MixedReadPublicWriteAdmin()
		assert.NoError(t, p.Check(nil, http.MethodGet))
		for _, m := range writes {
			assert.ErrorIs(t, p.Check(nil, m), apperror.ErrUnauthorized, m)
			assert.ErrorIs(t, p.Check(regular, m), apperror.ErrPermission, m)
			assert.NoError(t, p.Check(staff, m), m)
		}
	})

	t.Run("uncovered verb", func(t *testing.T) {
		p := Policy{http.MethodGet: AllowAny}
		assert.ErrorIs(t, p.Check(staff, http.MethodDelete), apperror.ErrPermission)
	})
}
