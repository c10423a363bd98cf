package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/TylerBromley/bindkit/core/handler"
	"github.com/TylerBromley/bindkit/core/logger"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// Skip disables the middleware for matching requests.
	Skip func(ctx handler.Context) bool
	// Logger receives the request records. Defaults to slog.Default().
	Logger *slog.Logger
	// Level for completed request records. Defaults to slog.LevelInfo.
	Level slog.Level
	// SlowThreshold marks requests slower than this as warnings. Zero
	// disables the check.
	SlowThreshold time.Duration
}

// Logging creates a request logging middleware with default configuration.
func Logging[C handler.Context]() handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{})
}

// LoggingWithConfig logs one structured record per request with method,
// path, status, and duration.
func LoggingWithConfig[C handler.Context](cfg LoggingConfig) handler.Middleware[C] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			start := time.Now()
			resp := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				err := resp(w, r)
				elapsed := time.Since(start)

				attrs := []slog.Attr{
					logger.Method(r.Method),
					logger.Path(r.URL.Path),
					slog.Duration("duration", elapsed),
				}
				if sw, ok := w.(interface{ Status() int }); ok {
					attrs = append(attrs, logger.StatusCode(sw.Status()))
				}
				if id, ok := GetRequestID(ctx); ok {
					attrs = append(attrs, logger.RequestID(id))
				}
				if err != nil {
					attrs = append(attrs, logger.Error(err))
				}

				level := cfg.Level
				if cfg.SlowThreshold > 0 && elapsed > cfg.SlowThreshold {
					level = slog.LevelWarn
				}
				cfg.Logger.LogAttrs(r.Context(), level, "request completed", attrs...)

				return err
			}
		}
	}
}
