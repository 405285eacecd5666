package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fitledger/services"
)

// AuthMiddleware rejects requests without a valid Bearer token and stores
// the authenticated email on the context.
func AuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		email, err := auth.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("email", email)
		c.Next()
	}
}
