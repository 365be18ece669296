package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"

	issuer = "portfolio-api"
)

var ErrWrongTokenType = errors.New("token has wrong type")

type JWTService struct {
	secretKey       []byte
	accessLifespan  time.Duration
	refreshLifespan time.Duration
}

type CustomClaims struct {
	UserID    int64     `json:"user_id"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenPair is what the login endpoint hands back.
type TokenPair struct {
	Access  string
	Refresh string
}

func NewJWTService(secretKey string, accessLifespan, refreshLifespan time.Duration) *JWTService {
	return &JWTService{
		secretKey:       []byte(secretKey),
		accessLifespan:  accessLifespan,
		refreshLifespan: refreshLifespan,
	}
}

func (s *JWTService) GenerateToken(userID int64, tokenType TokenType) (string, error) {
	lifespan := s.accessLifespan
	if tokenType == TokenTypeRefresh {
		lifespan = s.refreshLifespan
	}

	now := time.Now()
	claims := CustomClaims{
		userID,
		tokenType,
		jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifespan)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("cannot sign token: %w", err)
	}

	return signedString, nil
}

func (s *JWTService) GenerateTokenPair(userID int64) (*TokenPair, error) {
	access, err := s.GenerateToken(userID, TokenTypeAccess)
	if err != nil {
		return nil, err
	}
	refresh, err := s.GenerateToken(userID, TokenTypeRefresh)
	if err != nil {
		return nil, err
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *JWTService) ValidateToken(tokenString string, expected TokenType) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid signature algorithm: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(issuer))

	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("error when parsing token claims")
	}
	if claims.TokenType != expected {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}
