package auth

import (
	"context"

	"github.com/khoahotran/portfolio-api/internal/application/access"
	"github.com/khoahotran/portfolio-api/internal/domain/user"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/auth"
)

// IdentifyUseCase resolves a bearer access token to the caller. The user is
// reloaded on every call so a revoked staff flag takes effect immediately.
type IdentifyUseCase struct {
	userRepo user.Repository
	jwtSvc   *auth.JWTService
}

func NewIdentifyUseCase(repo user.Repository, jwtSvc *auth.JWTService) *IdentifyUseCase {
	return &IdentifyUseCase{userRepo: repo, jwtSvc: jwtSvc}
}

func (uc *IdentifyUseCase) Execute(ctx context.Context, accessToken string) (*access.Identity, error) {
	claims, err := uc.jwtSvc.ValidateToken(accessToken, auth.TokenTypeAccess)
	if err != nil {
		return nil, apperror.NewUnauthorized("Given token not valid for any token type", err)
	}
	u, err := uc.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperror.NewUnauthorized("User not found", err)
	}
	if !u.IsActive {
		return nil, apperror.NewUnauthorized("User is inactive", nil)
	}
	return &access.Identity{UserID: u.ID, Username: u.Username, IsStaff: u.IsStaff}, nil
}
