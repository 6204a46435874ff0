package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/auth"
)

// AuthMiddleware guards owner-only routes. Only Bearer tokens are accepted;
// the three failure modes (no token, expired, invalid) each get their own
// message so the frontend can decide whether to prompt a re-login.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Not authorized. No token provided.", nil)
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(tokenString, cfg.JWTSecret)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				response.Error(c, http.StatusUnauthorized, "Your session has expired. Please log in again.", nil)
			} else {
				response.Error(c, http.StatusUnauthorized, "Invalid token. Please log in again.", nil)
			}
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserEmail), claims.Email)
		c.Set(string(domain.KeyUserRole), domain.RoleOwner)

		c.Next()
	}
}
