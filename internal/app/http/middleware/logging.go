package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"videogame-catalog/internal/api/respond"
	"videogame-catalog/internal/errs"
)

func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		ev := logger.Info()
		switch {
		case status >= 500:
			ev = logger.Error()
		case status >= 400:
			ev = logger.Warn()
		}
		ev.Str("request_id", c.GetString(respond.RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("route", c.FullPath()).
			Int("status", status).
			Int("bytes", c.Writer.Size()).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}

// Recover turns a handler panic into a 500. The transaction a panicking handler held has
// already been rolled back by gorm by the time this runs.
func Recover(logger zerolog.Logger, r respond.Responder) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if p := recover(); p != nil {
				logger.Error().
					Str("request_id", c.GetString(respond.RequestIDKey)).
					Interface("panic", p).
					Msg("handler panicked")
				r.WriteError(c, errs.NewInternalErrorWithCause(fmt.Errorf("panic: %v", p)))
			}
		}()
		c.Next()
	}
}
