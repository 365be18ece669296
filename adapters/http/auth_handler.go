package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio-api/internal/application/usecase/auth"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

type AuthHandler struct {
	loginUseCase       *auth.LoginUseCase
	refreshUseCase     *auth.RefreshUseCase
	logoutUseCase      *auth.LogoutUseCase
	registerUseCase    *auth.RegisterUseCase
	currentUserUseCase *auth.CurrentUserUseCase
}

func NewAuthHandler(
	loginUC *auth.LoginUseCase,
	refreshUC *auth.RefreshUseCase,
	logoutUC *auth.LogoutUseCase,
	registerUC *auth.RegisterUseCase,
	currentUserUC *auth.CurrentUserUseCase,
) *AuthHandler {
	return &AuthHandler{
		loginUseCase:       loginUC,
		refreshUseCase:     refreshUC,
		logoutUseCase:      logoutUC,
		registerUseCase:    registerUC,
		currentUserUseCase: currentUserUC,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := bindRequest(c, &req); err != nil {
		c.Error(err)
		return
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), auth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access":  output.AccessToken,
		"refresh": output.RefreshToken,
	})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := bindRequest(c, &req); err != nil {
		c.Error(err)
		return
	}
	output, err := h.refreshUseCase.Execute(c.Request.Context(), req.Refresh)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"access": output.AccessToken})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	var req refreshRequest
	if err := bindRequest(c, &req); err != nil {
		c.Error(err)
		return
	}
	if err := h.logoutUseCase.Execute(c.Request.Context(), req.Refresh); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := bindRequest(c, &req); err != nil {
		c.Error(err)
		return
	}
	u, err := h.registerUseCase.Execute(c.Request.Context(), auth.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Password2: req.Password2,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, RegisteredUserDTO{
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	id, ok := GetIdentityFromGinContext(c)
	if !ok {
		c.Error(apperror.NewNotAuthenticated("identity not found in context"))
		return
	}
	u, err := h.currentUserUseCase.Execute(c.Request.Context(), id.UserID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToCurrentUserDTO(u))
}
