// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// Stack assembles the pipeline in this order:
//
//	Recovery → RequestID → CorrelationID → UserID → AppContext → OpenTelemetry → Logging → Timeout → Handler
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/campus-superapp/internal/platform/telemetry"
)

// Stack returns the full inbound pipeline as one middleware. Register it on
// the router, not around it, so OpenTelemetry and Logging can read the
// matched route. A zero timeout leaves requests unbounded.
func Stack(logger *slog.Logger, metrics *telemetry.Metrics, timeout time.Duration) func(http.Handler) http.Handler {
	mws := []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		UserID(),
		AppContext(),
		OpenTelemetry(metrics),
		Logging(logger),
	}
	if timeout > 0 {
		mws = append(mws, Timeout(timeout))
	}

	return func(h http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			h = mws[i](h)
		}
		return h
	}
}
