package middleware

import (
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/jsamuelsen11/campus-superapp/internal/platform/logging"
)

const redacted = "[REDACTED]"

// Logging attaches the request, correlation and user ids to the context, so
// every record logged with it by a logging.New logger carries them, then logs
// the request's start and completion. The completion entry names the matched
// route so project ids do not fragment log queries. It must run after
// RequestID, CorrelationID and UserID.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			attrs := []slog.Attr{
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			}
			if uid := UserIDFromContext(ctx); uid != "" {
				attrs = append(attrs, slog.String("user_id", uid))
			}
			ctx = logging.WithLogger(logging.WithAttrs(ctx, attrs...), logger)

			logger.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			if logger.Enabled(ctx, slog.LevelDebug) {
				logger.DebugContext(ctx, "request headers", redactHeaders(r.Header)...)
			}

			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			level := slog.LevelInfo
			if rec.Status() >= http.StatusInternalServerError {
				level = slog.LevelWarn
			}
			logger.Log(ctx, level, "request completed",
				slog.String("method", r.Method),
				slog.String("route", routePattern(r)),
				slog.Int("status", rec.Status()),
				slog.Int64("bytes", rec.bytes),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// redactHeaders turns headers into sorted log attributes, masking the ones
// listed in logging.SensitiveHeaders.
func redactHeaders(h http.Header) []any {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]any, 0, len(keys))
	for _, k := range keys {
		v := strings.Join(h[k], ",")
		if logging.SensitiveHeaders[strings.ToLower(k)] {
			v = redacted
		}
		attrs = append(attrs, slog.String(k, v))
	}
	return attrs
}
