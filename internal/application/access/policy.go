// Package access holds the permission predicates every route is gated by.
// Routes never branch on the caller themselves; they are registered with a
// Policy and the HTTP layer evaluates it before any handler runs.
package access

import (
	"net/http"

	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

// Identity is the authenticated caller. A nil *Identity is an anonymous one.
type Identity struct {
	UserID   int64
	Username string
	IsStaff  bool
}

// Predicate returns nil to allow the request, or an apperror explaining the
// refusal: ErrUnauthorized when no identity is present, ErrPermission when
// the identity lacks the required flag.
type Predicate func(id *Identity, method string) error

func isSafe(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

func AllowAny(*Identity, string) error { return nil }

func PublicRead(_ *Identity, method string) error {
	if isSafe(method) {
		return nil
	}
	return apperror.NewPermissionDenied("read-only resource")
}

func Authenticated(id *Identity, _ string) error {
	if id == nil {
		return apperror.NewNotAuthenticated("a valid bearer token is required")
	}
	return nil
}

func AdminOnly(id *Identity, method string) error {
	if err := Authenticated(id, method); err != nil {
		return err
	}
	if !id.IsStaff {
		return apperror.NewPermissionDenied("You do not have permission to perform this action.")
	}
	return nil
}

// Any is the fallback key of a Policy.
const Any = "*"

// Policy maps an HTTP verb to the predicate guarding it. Verbs without an
// entry fall back to Any; without a fallback the request is denied.
type Policy map[string]Predicate

func (p Policy) Check(id *Identity, method string) error {
	pred, ok := p[method]
	if !ok {
		pred, ok = p[Any]
	}
	if !ok {
		return apperror.NewPermissionDenied("method not covered by policy: " + method)
	}
	return pred(id, method)
}

func uniform(pred Predicate) Policy {
	return Policy{Any: pred}
}

func OpenPolicy() Policy          { return uniform(AllowAny) }
func PublicReadPolicy() Policy    { return uniform(PublicRead) }
func AuthenticatedPolicy() Policy { return uniform(Authenticated) }
func AdminOnlyPolicy() Policy     { return uniform(AdminOnly) }

// MixedReadPublicWriteAdmin lets anyone read and only staff write.
func MixedReadPublicWriteAdmin() Policy {
	return Policy{
		http.MethodGet:     AllowAny,
		http.MethodHead:    AllowAny,
		http.MethodOptions: AllowAny,
		Any:                AdminOnly,
	}
}
