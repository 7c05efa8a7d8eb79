package middlewares

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Notifier receives a one-line alert for every failed request.
type Notifier interface {
	Error(message string) error
}

// ErrorReporter logs the errors handlers attached with c.Error and forwards
// them to notifier when one is configured. The error meta carries the
// message that was sent to the client.
func ErrorReporter(logger *zap.Logger, notifier Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		for _, e := range c.Errors {
			message, _ := e.Meta.(string)
			logger.Error(message,
				zap.String("method", c.Request.Method),
				zap.String("path", c.FullPath()),
				zap.Int("status", c.Writer.Status()),
				zap.Error(e.Err),
			)

			if notifier == nil {
				continue
			}
			alert := fmt.Sprintf("[%s %s] %s %v", c.Request.Method, c.Request.URL.Path, message, e.Err)
			go func() {
				if err := notifier.Error(alert); err != nil {
					logger.Warn("failed to send alert", zap.Error(err))
				}
			}()
		}
	}
}
