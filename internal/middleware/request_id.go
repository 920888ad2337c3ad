package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the correlation ID in and out of the API.
const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the gin context key for the correlation ID.
const RequestIDKey = "request_id"

// RequestID attaches a correlation ID to every request, reusing the one
// the caller sent when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}
