package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/property-booking/internal/auth"
	"github.com/BruksfildServices01/property-booking/internal/httperr"
)

const ContextUserID = "userID"

type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

func AuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "missing_authorization_header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthorized(c, "invalid_authorization_header")
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			unauthorized(c, "invalid_token")
			return
		}

		c.Set(ContextUserID, claims.Subject)

		c.Next()
	}
}

func unauthorized(c *gin.Context, code string) {
	httperr.Unauthorized(c, code, "Authentication required.")
	c.Abort()
}

// UserID returns the authenticated user set by AuthMiddleware.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
