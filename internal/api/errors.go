package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"food_delivery/internal/middleware" // Context keys
	"food_delivery/internal/service"    // Service error kinds

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// respondError maps a service error to its HTTP status. Unexpected errors are
// logged and answered with the generic fallback message.
func respondError(c *gin.Context, err error, fallback string) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		c.JSON(statusFor(svcErr.Kind), gin.H{"error": svcErr.Msg})
		return
	}
	logrus.WithFields(logrus.Fields{
		"method": c.Request.Method, // HTTP method
		"path":   c.FullPath(),     // Route pattern
		"error":  err.Error(),      // Error message
	}).Error(fallback)
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}

// statusFor returns the HTTP status of a service error kind
func statusFor(kind error) int {
	switch {
	case errors.Is(kind, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(kind, service.ErrConflict):
		return http.StatusConflict
	case errors.Is(kind, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(kind, service.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// currentUserID returns the authenticated user id, aborting with 401 when absent
func currentUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(middleware.UserIDKey) // Set by UserAuthMiddleware
	if userID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}
