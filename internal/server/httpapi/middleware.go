package httpapi

import (
	"time"

	"github.com/dmitrijs2005/hrconsole/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// requestLogger tags every request with an id and logs its outcome.
func requestLogger(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)

		start := time.Now()
		c.Next()

		log.Info(c.Request.Context(), "request",
			"request_id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
