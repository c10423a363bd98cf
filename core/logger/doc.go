// Package logger provides structured logging helpers built on Go's standard
// slog package: a small factory with functional options and a set of
// pre-built attributes for common HTTP logging scenarios.
//
//	log := logger.New(
//		logger.WithJSON(),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithAttrs(slog.String("app", "catalogd")),
//	)
//
//	log.Info("request handled",
//		logger.Method("GET"),
//		logger.Path("/items"),
//		logger.StatusCode(200),
//	)
//
// All attribute helpers return an empty slog.Attr for nil or empty input, so
// they can be passed unconditionally.
package logger
