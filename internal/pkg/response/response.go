package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Error writes the structured error body used across the API:
// {error, message, timestamp, path}.
func Error(c *gin.Context, statusCode int, errName string, message string) {
	c.JSON(statusCode, gin.H{
		"error":     errName,
		"message":   message,
		"timestamp": time.Now().Format(time.RFC3339),
		"path":      c.Request.URL.Path,
	})
}

func AbortWithError(c *gin.Context, statusCode int, errName string, message string) {
	Error(c, statusCode, errName, message)
	c.Abort()
}
