package middleware

import (
	"strings"

	"github.com/moshiurrahmandeap11/server-news-portal/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OptionalAuth attaches the authenticated user id to the request context
// when a valid Bearer token is present. It never rejects the request; upload
// attribution is optional.
func OptionalAuth(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := auth.ParseToken(token)
		if err != nil {
			c.Next()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.Next()
			return
		}

		ctx := services.WithUserContext(c.Request.Context(), userID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func extractBearer(c *gin.Context) string {
	value := c.GetHeader("Authorization")
	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
