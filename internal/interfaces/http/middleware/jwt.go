package middleware

import (
	"net/http"
	"strings"

	"github.com/acme/dashboard/internal/infrastructure/auth"
	"github.com/acme/dashboard/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

const (
	jwtUserIDKey = "jwt_user_id"
	jwtEmailKey  = "jwt_email"
)

// RequireAuth rejects requests that do not carry a valid bearer token and
// stores the token claims in the gin context for handlers.
func RequireAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Missing bearer token"))
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeTokenInvalid, "Invalid or expired token"))
			return
		}

		c.Set(jwtUserIDKey, claims.Subject)
		c.Set(jwtEmailKey, claims.Email)
		c.Next()
	}
}

// GetJWTUserID returns the authenticated user id stored by RequireAuth
func GetJWTUserID(c *gin.Context) string {
	return c.GetString(jwtUserIDKey)
}

// GetJWTEmail returns the authenticated email stored by RequireAuth
func GetJWTEmail(c *gin.Context) string {
	return c.GetString(jwtEmailKey)
}
