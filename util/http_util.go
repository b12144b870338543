// util/http_util.go
package util

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/poachurch/pcobridge/logging"
)

// RequestIDKey is the context key under which the request-ID middleware
// stores the current request's ID.
const RequestIDKey = "requestID"

func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"error": message})
}

// GetRequestIDFromContext returns the request ID stored by the middleware,
// or "" when the context does not carry one.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}
