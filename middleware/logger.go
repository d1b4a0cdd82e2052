package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger is a minimal request logger.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("%s %s %s %d %s",
			c.Request.Method,
			c.Request.URL.Path,
			c.ClientIP(),
			c.Writer.Status(),
			time.Since(start))
	}
}
