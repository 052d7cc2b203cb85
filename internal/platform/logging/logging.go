// Package logging builds the service's slog logger and carries
// request-scoped loggers through context.
//
// Output passes through a masq redaction layer, so credentials, connection
// strings and the mail addresses of people never reach the log stream even
// when a caller logs them by accident. Error logs follow one shape:
//
//	logger.ErrorContext(ctx, "booking rejected",
//	    slog.String("operation", "CreateUsage"),
//	    slog.Int64("device_id", deviceID),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
)

type loggerKey struct{}

// New returns a logger writing to w. level is one of debug, info, warn or
// error in any case, with info used for anything else. format "text"
// selects logfmt-style output and every other value selects JSON. Debug
// logging also records the source location.
func New(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger attaches logger to ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger attached by WithLogger, falling back to
// slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
