package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"voice-assistant-backend/pkg/log"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an ID, honoring one the client sent.
// The ID rides the context so all log lines of a request correlate.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := log.ContextWithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
