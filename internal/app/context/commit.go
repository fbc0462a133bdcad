package appctx

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/jsamuelsen11/campus-superapp/internal/domain"
	"github.com/jsamuelsen11/campus-superapp/internal/platform/logging"
)

// Commit runs the queue in order. When a step fails, or ctx is done before a
// step starts, the steps that ran are rolled back newest first and the error
// is returned wrapped with the step's description. Rollbacks still run after
// ctx is canceled. A RequestContext commits once; later calls return
// ErrAlreadyCommitted.
func (rc *RequestContext) Commit(ctx context.Context) error {
	rc.queueMu.Lock()
	if rc.committed {
		rc.queueMu.Unlock()
		return ErrAlreadyCommitted
	}
	rc.committed = true
	steps := rc.items
	rc.queueMu.Unlock()

	logger := logging.FromContext(ctx).With(slog.String("operation", "RequestContext.Commit"))

	for i, step := range steps {
		err := ctx.Err()
		if err == nil {
			logger.DebugContext(ctx, "executing action",
				slog.Int("step", i+1),
				slog.Int("total", len(steps)),
				slog.String("action", step.Description()),
			)
			err = step.Execute(ctx)
		}
		if err != nil {
			logger.ErrorContext(ctx, "action failed, rolling back",
				slog.Int("failed_step", i+1),
				slog.String("action", step.Description()),
				slog.Any("error", err),
			)
			undo(context.WithoutCancel(ctx), steps[:i], logger)
			return fmt.Errorf("executing %s: %w", step.Description(), err)
		}
	}
	return nil
}

// undo rolls back done newest first. A failed rollback is logged and the
// rest still run.
func undo(ctx context.Context, done []domain.Action, logger *slog.Logger) {
	for i, step := range slices.Backward(done) {
		logger.WarnContext(ctx, "rolling back action",
			slog.Int("step", i+1),
			slog.String("action", step.Description()),
		)
		if err := step.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.Int("step", i+1),
				slog.String("action", step.Description()),
				slog.Any("error", err),
			)
		}
	}
}
