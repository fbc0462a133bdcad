package ports

import "context"

// HealthChecker is implemented by any component that can report its health,
// such as university clients and the document stores.
type HealthChecker interface {
	// Name identifies the component in readiness output (e.g. "storage").
	Name() string

	// HealthCheck returns nil when healthy. It must respect ctx deadlines.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers for the readiness endpoint.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every checker; nil values mean healthy.
	CheckAll(ctx context.Context) map[string]error
}
