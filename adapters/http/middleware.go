package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/access"
	authUC "github.com/khoahotran/portfolio-api/internal/application/usecase/auth"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const (
	GinContextKeyIdentity  = "identity"
	GinContextKeyAuthError = "authError"
)

// IdentityMiddleware resolves the bearer token, if any, into an
// access.Identity. It never rejects a request by itself; a bad token is kept
// so RequirePolicy can report it when the route needs a caller.
func IdentityMiddleware(identifyUC *authUC.IdentifyUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			c.Set(GinContextKeyAuthError, apperror.NewUnauthorized("Invalid token format", nil))
			c.Next()
			return
		}

		id, err := identifyUC.Execute(c.Request.Context(), tokenString)
		if err != nil {
			c.Set(GinContextKeyAuthError, err)
			c.Next()
			return
		}

		c.Set(GinContextKeyIdentity, id)
		c.Next()
	}
}

func GetIdentityFromGinContext(c *gin.Context) (*access.Identity, bool) {
	v, ok := c.Get(GinContextKeyIdentity)
	if !ok {
		return nil, false
	}
	id, ok := v.(*access.Identity)
	return id, ok && id != nil
}

// RequirePolicy evaluates the route policy before the handler runs.
func RequirePolicy(policy access.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := GetIdentityFromGinContext(c)
		err := policy.Check(id, c.Request.Method)
		if err == nil {
			c.Next()
			return
		}

		if errors.Is(err, apperror.ErrUnauthorized) {
			if tokenErr, ok := c.Get(GinContextKeyAuthError); ok {
				if e, ok := tokenErr.(error); ok {
					err = e
				}
			}
		}
		c.Error(err)
		c.Abort()
	}
}

func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.NewInternal("unhandled error", err)
		}

		status := apperror.ToHTTPStatus(appErr)
		if status >= http.StatusInternalServerError {
			log.Error("Request failed", appErr,
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
			)
		}

		if c.Writer.Written() {
			return
		}
		c.AbortWithStatusJSON(status, appErr.ToJSON())
	}
}

func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if id, ok := GetIdentityFromGinContext(c); ok {
			fields = append(fields, zap.Int64("user_id", id.UserID))
		}
		log.Info("HTTP request", fields...)
	}
}
