package middleware

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"food_delivery/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging
	"gorm.io/gorm"               // GORM ORM library
)

// AdminOnlyMiddleware checks on each request that the admin named by the token still exists
func AdminOnlyMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString(AdminUsernameKey) // Set by AdminAuthMiddleware
		if username == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}
		var admin domain.AdminUser // Fetch admin from database
		err := db.WithContext(c.Request.Context()).Where("username = ?", username).First(&admin).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Token outlived the account
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"admin": username,    // Admin username
				"error": err.Error(), // Error message
			}).Error("Admin lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}
		c.Next()
	}
}
