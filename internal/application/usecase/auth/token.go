package auth

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/user"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/auth"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const invalidRefresh = "Token is invalid or expired"

// RefreshUseCase trades a live refresh token for a new access token.
type RefreshUseCase struct {
	userRepo  user.Repository
	jwtSvc    *auth.JWTService
	blacklist service.TokenBlacklist
	logger    logger.Logger
}

func NewRefreshUseCase(repo user.Repository, jwtSvc *auth.JWTService, bl service.TokenBlacklist, log logger.Logger) *RefreshUseCase {
	return &RefreshUseCase{userRepo: repo, jwtSvc: jwtSvc, blacklist: bl, logger: log}
}

type RefreshOutput struct {
	AccessToken string
}

func (uc *RefreshUseCase) Execute(ctx context.Context, refreshToken string) (*RefreshOutput, error) {
	ctx, span := tracer.Start(ctx, "Refresh")
	defer span.End()

	claims, err := uc.jwtSvc.ValidateToken(refreshToken, auth.TokenTypeRefresh)
	if err != nil {
		return nil, apperror.NewUnauthorized(invalidRefresh, err)
	}

	revoked, err := uc.blacklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, apperror.NewInternal("failed to check token blacklist", err)
	}
	if revoked {
		return nil, apperror.NewUnauthorized("Token is blacklisted", nil)
	}

	u, err := uc.userRepo.FindByID(ctx, claims.UserID)
	if err != nil || !u.IsActive {
		return nil, apperror.NewUnauthorized(noActiveAccount, err)
	}

	access, err := uc.jwtSvc.GenerateToken(u.ID, auth.TokenTypeAccess)
	if err != nil {
		uc.logger.Error("Failed to generate access token", err, zap.Int64("user_id", u.ID))
		return nil, apperror.NewInternal("failed to generate token", err)
	}
	return &RefreshOutput{AccessToken: access}, nil
}

// LogoutUseCase blacklists a refresh token. Access tokens are short-lived and
// simply expire.
type LogoutUseCase struct {
	jwtSvc    *auth.JWTService
	blacklist service.TokenBlacklist
}

func NewLogoutUseCase(jwtSvc *auth.JWTService, bl service.TokenBlacklist) *LogoutUseCase {
	return &LogoutUseCase{jwtSvc: jwtSvc, blacklist: bl}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, refreshToken string) error {
	claims, err := uc.jwtSvc.ValidateToken(refreshToken, auth.TokenTypeRefresh)
	if err != nil {
		return apperror.NewUnauthorized(invalidRefresh, err)
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := uc.blacklist.Revoke(ctx, claims.ID, ttl); err != nil {
		return apperror.NewInternal("failed to blacklist token", err)
	}
	return nil
}
