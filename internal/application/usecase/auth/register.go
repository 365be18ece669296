package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/khoahotran/portfolio-api/internal/domain/user"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/auth"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

var validate = validator.New()

type RegisterUseCase struct {
	userRepo user.Repository
	logger   logger.Logger
}

func NewRegisterUseCase(repo user.Repository, log logger.Logger) *RegisterUseCase {
	return &RegisterUseCase{userRepo: repo, logger: log}
}

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	Password2 string
	FirstName string
	LastName  string
}

// Execute creates a regular (non-staff) account. The confirmation must match
// the password byte for byte and is discarded afterwards.
func (uc *RegisterUseCase) Execute(ctx context.Context, in RegisterInput) (*user.User, error) {
	errs := apperror.FieldErrors{}
	username := strings.TrimSpace(in.Username)
	switch {
	case username == "":
		errs.Add("username", "This field may not be blank.")
	case utf8.RuneCountInString(username) > 150:
		errs.Add("username", "Ensure this field has no more than 150 characters.")
	}
	if in.Email != "" && validate.Var(in.Email, "email") != nil {
		errs.Add("email", "Enter a valid email address.")
	}
	if in.Password == "" {
		errs.Add("password", "This field may not be blank.")
	} else if len(in.Password) > auth.MaxPasswordBytes {
		errs.Add("password", fmt.Sprintf("Ensure this field has no more than %d bytes.", auth.MaxPasswordBytes))
	} else if in.Password != in.Password2 {
		errs.Add("password", "Passwords do not match.")
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	u := &user.User{
		Username:     username,
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: hash,
		IsActive:     true,
		DateJoined:   time.Now().UTC(),
	}
	if err := uc.userRepo.Create(ctx, u); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			return nil, apperror.NewFieldError("username", "A user with that username already exists.")
		}
		return nil, err
	}
	return u, nil
}

type CurrentUserUseCase struct {
	userRepo user.Repository
}

func NewCurrentUserUseCase(repo user.Repository) *CurrentUserUseCase {
	return &CurrentUserUseCase{userRepo: repo}
}

func (uc *CurrentUserUseCase) Execute(ctx context.Context, userID int64) (*user.User, error) {
	return uc.userRepo.FindByID(ctx, userID)
}
