package middleware

import (
	"net/http"
	"strings"

	"github.com/devyhq/devy-backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
)

// AuthRequired rejects requests without a valid Bearer access token and puts
// the subject identity into the request context.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
			c.Abort()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextEmail, claims.Email)

		c.Next()
	}
}

// GetUserID returns the authenticated account id from the request context.
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	if v, exists := c.Get(ContextUserID); exists {
		if id, ok := v.(uuid.UUID); ok {
			return id, true
		}
	}
	return uuid.Nil, false
}

// GetEmail returns the authenticated email from the request context.
func GetEmail(c *gin.Context) string {
	if v, exists := c.Get(ContextEmail); exists {
		if email, ok := v.(string); ok {
			return email
		}
	}
	return ""
}
