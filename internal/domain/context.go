package domain

import "context"

// Action is one reversible step of a staged write. The application layer
// queues actions and runs them in order; a failing step triggers Rollback on
// every step that already succeeded.
type Action interface {
	// Execute performs the step and must honor ctx cancellation.
	Execute(ctx context.Context) error

	// Rollback undoes a successful Execute. It is never called for a step
	// whose Execute failed.
	Rollback(ctx context.Context) error

	// Description is used in logs, e.g. "persist project 42".
	Description() string
}
