// Package storage adapts the document backends to the project and account
// store ports. Replicated keeps a local SQLite copy of every document and
// forwards writes to the optional remote PostgreSQL store.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/campus-superapp/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/campus-superapp/internal/domain"
	"github.com/jsamuelsen11/campus-superapp/internal/platform/telemetry"
	"github.com/jsamuelsen11/campus-superapp/internal/ports"
)

// LocalBackend is a document backend with a sync outbox.
type LocalBackend interface {
	ports.DocumentBackend
	MarkPending(ctx context.Context, collection, id string, op sqlite.Op) error
	ClearPending(ctx context.Context, collection, id string) error
	Pending(ctx context.Context) ([]sqlite.PendingWrite, error)
}

// BreakerConfig trips the remote circuit after MaxFailures consecutive
// failures and probes it again after Timeout.
type BreakerConfig struct {
	MaxFailures   int
	Timeout       time.Duration
	HalfOpenLimit int
}

var (
	_ ports.DocumentBackend = (*Replicated)(nil)
	_ ports.HealthChecker   = (*Replicated)(nil)
)

// HealthName is the readiness check name of the project store. Readiness
// treats it as critical.
const HealthName = "storage"

// Replicated implements ports.DocumentBackend over a local and a remote
// backend.
//
// A write succeeds once the local copy is stored. It is then sent to the
// remote; when that fails the document is queued in the local outbox and
// Resync retries it later. Reads use the remote while it is reachable and
// nothing is queued, and the local copy otherwise.
type Replicated struct {
	local   LocalBackend
	remote  ports.DocumentBackend
	breaker *gobreaker.CircuitBreaker[struct{}]
	metrics *telemetry.Metrics
	logger  *slog.Logger

	syncMu sync.Mutex
}

// NewReplicated combines local and remote. A nil remote keeps everything
// local.
func NewReplicated(local LocalBackend, remote ports.DocumentBackend, cfg BreakerConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Replicated {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := &Replicated{local: local, remote: remote, metrics: metrics, logger: logger}
	if remote != nil {
		r.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
			Name:        "storage-" + remote.Name(),
			MaxRequests: clampUint32(cfg.HalfOpenLimit),
			Timeout:     cfg.Timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return int(counts.ConsecutiveFailures) >= max(1, cfg.MaxFailures)
			},
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, domain.ErrNotFound)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("storage circuit breaker state change",
					slog.String("breaker", name),
					slog.String("from", from.String()),
					slog.String("to", to.String()),
				)
			},
		})
	}
	return r
}

// Name implements ports.DocumentBackend.
func (r *Replicated) Name() string { return HealthName }

// HealthCheck reports the local backend's health. An unreachable remote only
// degrades the store.
func (r *Replicated) HealthCheck(ctx context.Context) error {
	if hc, ok := r.local.(ports.HealthChecker); ok {
		return hc.HealthCheck(ctx)
	}
	return nil
}

// Get reads one document.
func (r *Replicated) Get(ctx context.Context, collection, id string) (*ports.Document, error) {
	if r.useRemote(ctx) {
		var doc *ports.Document
		err := r.callRemote(func() error {
			var err error
			doc, err = r.remote.Get(ctx, collection, id)
			return err
		})
		if err == nil || errors.Is(err, domain.ErrNotFound) {
			return doc, err
		}
		r.fallback(ctx, "get", err)
	}
	return r.local.Get(ctx, collection, id)
}

// List reads a collection.
func (r *Replicated) List(ctx context.Context, collection string) ([]ports.Document, error) {
	if r.useRemote(ctx) {
		var docs []ports.Document
		err := r.callRemote(func() error {
			var err error
			docs, err = r.remote.List(ctx, collection)
			return err
		})
		if err == nil {
			return docs, nil
		}
		r.fallback(ctx, "list", err)
	}
	return r.local.List(ctx, collection)
}

// Put stores doc locally, then remotely.
func (r *Replicated) Put(ctx context.Context, doc ports.Document) error {
	if err := r.local.Put(ctx, doc); err != nil {
		return err
	}
	r.replicate(ctx, doc.Collection, doc.ID, sqlite.OpPut, func() error {
		return r.remote.Put(ctx, doc)
	})
	return nil
}

// Delete removes a document locally, then remotely.
func (r *Replicated) Delete(ctx context.Context, collection, id string) error {
	if err := r.local.Delete(ctx, collection, id); err != nil {
		return err
	}
	r.replicate(ctx, collection, id, sqlite.OpDelete, func() error {
		return r.remote.Delete(ctx, collection, id)
	})
	return nil
}

// Resync replays the outbox against the remote and returns how many writes
// were confirmed. It stops at the first remote failure.
func (r *Replicated) Resync(ctx context.Context) (int, error) {
	if r.remote == nil {
		return 0, nil
	}
	r.syncMu.Lock()
	defer r.syncMu.Unlock()

	pending, err := r.local.Pending(ctx)
	if err != nil {
		return 0, err
	}

	synced := 0
	for _, p := range pending {
		err := r.callRemote(func() error { return r.push(ctx, p) })
		if err != nil {
			return synced, fmt.Errorf("resyncing %s/%s: %w", p.Collection, p.ID, err)
		}
		if err := r.local.ClearPending(ctx, p.Collection, p.ID); err != nil {
			return synced, err
		}
		synced++
	}
	if synced > 0 {
		r.logger.InfoContext(ctx, "storage resync complete", slog.Int("synced", synced))
	}
	return synced, nil
}

// RunResync calls Resync every interval until ctx is done.
func (r *Replicated) RunResync(ctx context.Context, interval time.Duration) {
	if r.remote == nil || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.Resync(ctx); err != nil && ctx.Err() == nil {
				r.logger.WarnContext(ctx, "storage resync failed", slog.Any("error", err))
			}
		}
	}
}

// push sends the current local state of one queued document.
func (r *Replicated) push(ctx context.Context, p sqlite.PendingWrite) error {
	if p.Op == sqlite.OpDelete {
		return r.remote.Delete(ctx, p.Collection, p.ID)
	}
	doc, err := r.local.Get(ctx, p.Collection, p.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return r.remote.Delete(ctx, p.Collection, p.ID)
	}
	if err != nil {
		return err
	}
	return r.remote.Put(ctx, *doc)
}

func (r *Replicated) replicate(ctx context.Context, collection, id string, op sqlite.Op, send func() error) {
	if r.remote == nil {
		return
	}
	if r.hasPending(ctx) {
		// Keep queued writes in order: this one waits behind them.
		r.queue(ctx, collection, id, op)
		return
	}
	if err := r.callRemote(send); err != nil {
		r.fallback(ctx, string(op), err)
		r.queue(ctx, collection, id, op)
	}
}

func (r *Replicated) queue(ctx context.Context, collection, id string, op sqlite.Op) {
	if err := r.local.MarkPending(ctx, collection, id, op); err != nil {
		r.logger.ErrorContext(ctx, "failed to queue document for sync",
			slog.String("collection", collection),
			slog.String("id", id),
			slog.Any("error", err),
		)
	}
}

func (r *Replicated) useRemote(ctx context.Context) bool {
	return r.remote != nil && !r.hasPending(ctx)
}

func (r *Replicated) hasPending(ctx context.Context) bool {
	pending, err := r.local.Pending(ctx)
	return err != nil || len(pending) > 0
}

func (r *Replicated) callRemote(fn func() error) error {
	_, err := r.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, fn()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("remote storage: %w", errors.Join(domain.ErrUnavailable, err))
	}
	return err
}

func (r *Replicated) fallback(ctx context.Context, operation string, err error) {
	r.logger.WarnContext(ctx, "remote storage failed, using local copy",
		slog.String("operation", operation),
		slog.Any("error", err),
	)
	if r.metrics != nil {
		r.metrics.StorageFallbackTotal.Add(ctx, 1, metric.WithAttributes(telemetry.AttrOperation.String(operation)))
	}
}

func clampUint32(v int) uint32 {
	if v <= 0 {
		return 1
	}
	if uint64(v) > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
