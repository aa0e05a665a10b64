package middleware

import (
	"time" // Request timing

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// LoggerMiddleware writes one structured log line per request
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now() // Request start time
		c.Next()            // Run the rest of the chain
		entry := logrus.WithFields(logrus.Fields{
			"method":  c.Request.Method,           // HTTP method
			"path":    c.FullPath(),               // Route pattern
			"status":  c.Writer.Status(),          // Response status
			"latency": time.Since(start).String(), // Handling time
			"client":  c.ClientIP(),               // Caller address
		})
		if c.Writer.Status() >= 500 {
			entry.Error("Request failed")
			return
		}
		entry.Info("Request handled")
	}
}
