package middleware

import (
	"net/http"
	"strings"

	"teerenta/utils"

	"github.com/gin-gonic/gin"
)

// TouristIDKey is the gin context key the auth middleware sets.
const TouristIDKey = "touristID"

// JWTAuthMiddleware verifies an externally issued bearer token and puts the
// tourist ID into the request context. Token issuance is the auth service's
// job; only the shared HS256 secret is needed here.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		touristID, err := utils.ExtractTouristIDFromToken(tokenString)
		if err != nil || touristID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		c.Set(TouristIDKey, touristID)
		c.Next()
	}
}

// TouristID returns the authenticated tourist ID from the gin context.
func TouristID(c *gin.Context) string {
	id, _ := c.Get(TouristIDKey)
	s, _ := id.(string)
	return s
}
