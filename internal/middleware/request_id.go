package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"conversational-support-assistant/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID attaches a request id to the request context and response
// headers. An id supplied by the client is kept, so upstream proxies can
// correlate logs.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := log.ContextWithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, id)

		c.Next()
	}
}
