package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"food_delivery/internal/utils" // JWT utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// Context keys set by the auth middleware
const (
	UserIDKey        = "userID"        // Authenticated user id
	UsernameKey      = "username"      // Authenticated user name
	AdminUsernameKey = "adminUsername" // Authenticated admin name
)

// bearerToken extracts the token from the Authorization header, taking the word
// after the scheme whatever its case. A missing header aborts with 401; ok is
// false in that case.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization") // Get Authorization header
	if authHeader == "" {
		// No credentials at all
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
		return "", false
	}
	parts := strings.Fields(authHeader) // "<scheme> <token>"
	if len(parts) < 2 {
		return "", true // Present but malformed, rejected as an invalid token
	}
	return parts[1], true
}

// UserAuthMiddleware validates end-user tokens and stores their claims
func UserAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			return
		}
		claims, err := utils.ParseUserJWT(tokenStr, secret) // Parse the JWT token
		if err != nil {
			// Present but unusable credentials are forbidden
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set(UserIDKey, claims.ID)         // Store user id in context
		c.Set(UsernameKey, claims.Username) // Store username in context
		c.Next()                            // Proceed to the next handler
	}
}

// AdminAuthMiddleware validates admin tokens and stores the admin username
func AdminAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			return
		}
		claims, err := utils.ParseAdminJWT(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set(AdminUsernameKey, claims.Username) // Store admin username in context
		c.Next()
	}
}
