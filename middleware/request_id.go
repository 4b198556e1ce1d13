package middleware

import (
	"medicare/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-Id"

// RequestID tags each request with an id, echoes it back, and stores a
// logger carrying it under the "logger" key.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Set("requestID", id)
		c.Set("logger", utils.GetLogger().With(zap.String("request_id", id)))
		c.Next()
	}
}
