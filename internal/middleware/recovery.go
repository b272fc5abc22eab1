package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/warecat/internal/domain"
	"github.com/simp-lee/warecat/internal/pkg"
)

// Recovery returns a gin middleware that recovers from panics, logs the
// error with its stack trace, and renders the standard error envelope with
// an INTERNAL_ERROR code. It replaces gin.Recovery() so that even a panic
// resolves to a taxonomy outcome.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.ErrorContext(c.Request.Context(), "panic recovered",
					slog.Any("panic", err),
					slog.String("method", c.Request.Method),
					slog.String("path", c.Request.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)

				now := time.Now().UTC()
				c.AbortWithStatusJSON(http.StatusInternalServerError, pkg.Response{
					Success: false,
					Error: &pkg.ErrorBody{
						Code:      domain.CodeInternal,
						Message:   "internal server error",
						Timestamp: now,
					},
					Timestamp: now,
				})
			}
		}()
		c.Next()
	}
}
