package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"freezer-inventory/pkg/log"
)

// HeaderRequestID carries the trace ID in both directions.
const HeaderRequestID = "X-Request-ID"

const maxRequestIDLen = 128

// Trace attaches a request ID to the request context so every log line of
// the request carries it. A client-supplied ID is reused.
func (m Middleware) Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithTraceID(c.Request.Context(), id))
		c.Next()
	}
}
