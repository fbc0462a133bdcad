package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/campus-superapp/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusDegraded = "degraded"
	statusNotReady = "not_ready"
)

// HealthHandler serves liveness and readiness.
type HealthHandler struct {
	registry ports.HealthRegistry
	critical map[string]bool
}

// NewHealthHandler creates a HealthHandler. Only failures of the critical
// checkers make the service not ready. Any other failing checker, such as a
// single university upstream, reports the service as degraded but still
// ready, since projects and the other universities keep working.
func NewHealthHandler(registry ports.HealthRegistry, critical ...string) *HealthHandler {
	h := &HealthHandler{registry: registry, critical: make(map[string]bool, len(critical))}
	for _, name := range critical {
		h.critical[name] = true
	}
	return h
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready: 200 with "ready" or "degraded", or
// 503 with "not_ready" when a critical checker fails.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	status, code := statusReady, http.StatusOK
	for name, err := range results {
		if err == nil {
			checks[name] = statusOK
			continue
		}
		checks[name] = err.Error()
		switch {
		case h.critical[name]:
			status, code = statusNotReady, http.StatusServiceUnavailable
		case status == statusReady:
			status = statusDegraded
		}
	}

	writeJSON(w, code, map[string]any{
		"status": status,
		"checks": checks,
	})
}
