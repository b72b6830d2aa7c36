package middleware

import (
	"time"

	"booking-app/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLoggerMiddleware logs one structured line per request.
func RequestLoggerMiddleware() gin.HandlerFunc {
	log := logger.GetLogger()
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
