package middleware

import (
	"context"
	"go-onboarding-backend/config"
	"go-onboarding-backend/internal/delivery/http/response"
	"go-onboarding-backend/internal/domain"
	"go-onboarding-backend/pkg/auth"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and loads the caller's fresh role
// from the database. The JWT role claim is not trusted: it may be stale after
// an HR role change.
func AuthMiddleware(cfg *config.Config, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			cookie, err := c.Cookie("auth_token")
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(tokenString, cfg.JWTSecret)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		user, err := authUC.GetCurrentUser(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		role := user.Role
		if role == "" {
			role = domain.RoleEmployee
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)
		c.Set(string(domain.KeyUserRole), role)

		// Usecases read the caller from the request context, so it must carry
		// the same values as the gin keys.
		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, user.ID)
		ctx = context.WithValue(ctx, domain.KeyUserEmail, user.Email)
		ctx = context.WithValue(ctx, domain.KeyUserRole, role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
