package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery turns a handler panic into a 500. A panic inside the webhook
// handler therefore reads as a transient failure and the gateway redelivers.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic recovered",
				logger.Any("panic", rec),
				logger.String("request_id", c.GetString(RequestIDKey)),
				logger.String("method", c.Request.Method),
				logger.String("path", c.FullPath()),
				logger.String("stack", string(debug.Stack())),
			)
			c.Set("error", "panic")
			c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{
				"error":      "internal server error",
				"request_id": c.GetString(RequestIDKey),
			})
		}()

		c.Next()
	}
}
