package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"videogame-catalog/internal/api/respond"
)

const RequestIDHeader = "X-Request-ID"

// RequestID reuses an incoming X-Request-ID when it is a UUID and otherwise mints one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(respond.RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
