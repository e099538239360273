package middleware

import (
	"net/http"
	"strings"

	"secondbrain/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and stores the caller's
// user id in the context as "user_id". Protected handlers trust that
// value; it is re-derived on every request.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No session token provided"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := services.ParseToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session token"})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
