package appctx

import (
	"context"

	"github.com/jsamuelsen11/campus-superapp/internal/domain"
)

// ActionFunc adapts plain functions to domain.Action. Undo may be nil for
// steps with nothing to reverse, such as the final persistence call.
type ActionFunc struct {
	Desc string
	Do   func(ctx context.Context) error
	Undo func(ctx context.Context) error
}

var _ domain.Action = ActionFunc{}

// Execute runs Do.
func (f ActionFunc) Execute(ctx context.Context) error {
	if f.Do == nil {
		return nil
	}
	return f.Do(ctx)
}

// Rollback runs Undo when set.
func (f ActionFunc) Rollback(ctx context.Context) error {
	if f.Undo == nil {
		return nil
	}
	return f.Undo(ctx)
}

// Description returns Desc.
func (f ActionFunc) Description() string { return f.Desc }

// AddAction queues action for Commit. Safe for concurrent use.
func (rc *RequestContext) AddAction(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.items = append(rc.items, action)
	return nil
}
