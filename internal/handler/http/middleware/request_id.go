package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/stocai/blog-admin/internal/domain/contract"
)

// RequestIDKey is the context key and response header for the request ID.
const RequestIDKey = "X-Request-ID"

// RequestID tags every request with a unique ID, echoed in the response
// header for correlation with the logs.
func RequestID(gen contract.IUUIDGenerator) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDKey)
		if id == "" {
			id = gen.NewUUID()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDKey, id)
		c.Next()
	}
}
