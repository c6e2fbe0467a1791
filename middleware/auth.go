package middleware

import (
	"net/http"
	"strings"

	"pawtrack/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware validates the Bearer token and puts the owner ID
// into the request context under "ownerID".
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		ownerID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || ownerID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token subject"})
			return
		}

		c.Set("ownerID", ownerID)
		c.Next()
	}
}

// OwnerID returns the authenticated owner ID set by JWTAuthMiddleware.
func OwnerID(c *gin.Context) string {
	return c.GetString("ownerID")
}
