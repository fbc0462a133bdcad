// Package logging builds the service's slog logger and carries request
// metadata through contexts. Attribute values are passed through masq so
// credentials and personal contact data never reach log output.
//
// Logger construction:
//
//	logger := logging.New("info", "json", os.Stderr)
//
// Request metadata is attached to the context once, by the HTTP middleware,
// and every record logged with that context picks it up, whichever logger
// built by New writes it:
//
//	ctx = logging.WithAttrs(ctx, slog.String("user_id", id))
//	s.logger.InfoContext(ctx, "joining project", slog.String("id", projectID))
//
// Error logging convention for application services:
//
//	logger.ErrorContext(ctx, "failed to persist project",
//	    slog.String("operation", "JoinProject"),
//	    slog.String("project_id", id),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type (
	loggerKey struct{}
	attrsKey  struct{}
)

// New creates a logger writing to w.
//
// level is one of "debug", "info", "warn" (or "warning") and "error",
// case-insensitive; anything else means info. Debug output includes the
// source location. format "text" selects the text handler; anything else
// writes JSON.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(contextHandler{handler})
}

// WithAttrs returns ctx carrying attrs in addition to any it already has.
// Records logged with the context by a logger from New include them.
func WithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	prev, _ := ctx.Value(attrsKey{}).([]slog.Attr)
	merged := make([]slog.Attr, 0, len(prev)+len(attrs))
	merged = append(merged, prev...)
	merged = append(merged, attrs...)
	return context.WithValue(ctx, attrsKey{}, merged)
}

// WithLogger returns a new context with the given logger stored in it.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// contextHandler adds the context's WithAttrs attributes to each record.
type contextHandler struct {
	slog.Handler
}

func (h contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(attrsKey{}).([]slog.Attr); ok {
		r.AddAttrs(attrs...)
	}
	return h.Handler.Handle(ctx, r)
}

func (h contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return contextHandler{h.Handler.WithAttrs(attrs)}
}

func (h contextHandler) WithGroup(name string) slog.Handler {
	return contextHandler{h.Handler.WithGroup(name)}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
