package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := NewJWTService("test-secret", 5*time.Minute, time.Hour)

	pair, err := svc.GenerateTokenPair(42)
	require.NoError(t, err)

	access, err := svc.ValidateToken(pair.Access, TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, int64(42), access.UserID)
	assert.Equal(t, "42", access.Subject)
	assert.NotEmpty(t, access.ID)

	refresh, err := svc.ValidateToken(pair.Refresh, TokenTypeRefresh)
	require.NoError(t, err)
	assert.NotEqual(t, access.ID, refresh.ID)
	assert.True(t, refresh.ExpiresAt.After(access.ExpiresAt.Time))
}

func TestValidateTokenRejectsWrongType(t *testing.T) {
	svc := NewJWTService("test-secret", time.Minute, time.Hour)

	pair, err := svc.GenerateTokenPair(1)
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.Refresh, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestValidateTokenRejectsForeignSecretAndExpiry(t *testing.T) {
	issuerSvc := NewJWTService("secret-a", time.Minute, time.Hour)
	otherSvc := NewJWTService("secret-b", time.Minute, time.Hour)

	token, err := issuerSvc.GenerateToken(1, TokenTypeAccess)
	require.NoError(t, err)
	_, err = otherSvc.ValidateToken(token, TokenTypeAccess)
	assert.Error(t, err)

	expiredSvc := NewJWTService("secret-a", -time.Minute, time.Hour)
	expired, err := expiredSvc.GenerateToken(1, TokenTypeAccess)
	require.NoError(t, err)
	_, err = issuerSvc.ValidateToken(expired, TokenTypeAccess)
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("other", hash))
}
