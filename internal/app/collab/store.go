// Package collab is the project collaboration engine. It keeps the working
// set of projects in memory, applies every mutation optimistically, persists
// it through ports.ProjectStore and undoes the local change when persistence
// fails.
//
// Mutations on one project are serialized; mutations on different projects
// run in parallel. Callers only ever see deep copies of the stored projects.
package collab

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/metric"

	appctx "github.com/jsamuelsen11/campus-superapp/internal/app/context"
	"github.com/jsamuelsen11/campus-superapp/internal/domain"
	"github.com/jsamuelsen11/campus-superapp/internal/domain/project"
	"github.com/jsamuelsen11/campus-superapp/internal/platform/telemetry"
	"github.com/jsamuelsen11/campus-superapp/internal/ports"
)

// ErrClosed is returned by Dispatch after Close.
var ErrClosed = fmt.Errorf("collab store closed: %w", domain.ErrUnavailable)

// Defaults used when Options leaves a value unset.
const (
	DefaultPersistTimeout = 8 * time.Second
	DefaultNoticeTTL      = 3200 * time.Millisecond
)

// Options configures a Store.
type Options struct {
	Resolver       project.UniversityResolver
	PersistTimeout time.Duration
	NoticeTTL      time.Duration
	Seeds          []project.Project
	Metrics        *telemetry.Metrics
	Logger         *slog.Logger

	// Now and NewID are replaced in tests.
	Now   func() time.Time
	NewID func() string
}

// Store owns the in-memory project collection.
type Store struct {
	store   ports.ProjectStore
	env     Env
	timeout time.Duration
	ttl     time.Duration
	seeds   []project.Project
	metrics *telemetry.Metrics
	logger  *slog.Logger

	mu       sync.RWMutex
	projects map[string]*project.Project
	order    []string

	locks  *keyedMutex
	closed atomic.Bool
}

// New returns an empty Store backed by store. Call Load to fill it.
func New(store ports.ProjectStore, opts Options) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	timeout := opts.PersistTimeout
	if timeout <= 0 {
		timeout = DefaultPersistTimeout
	}
	ttl := opts.NoticeTTL
	if ttl <= 0 {
		ttl = DefaultNoticeTTL
	}

	return &Store{
		store:    store,
		env:      Env{Resolver: opts.Resolver, Now: opts.Now, NewID: opts.NewID},
		timeout:  timeout,
		ttl:      ttl,
		seeds:    opts.Seeds,
		metrics:  opts.Metrics,
		logger:   logger,
		projects: make(map[string]*project.Project),
		locks:    newKeyedMutex(),
	}
}

// Load replaces the collection with the store's projects. When the store is
// empty or unreachable the seed projects are used instead; the store error is
// returned only when there are no seeds to fall back to.
func (s *Store) Load(ctx context.Context) error {
	list, err := s.store.List(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "loading projects failed, using seed projects",
			slog.String("operation", "collab.Load"),
			slog.Int("seeds", len(s.seeds)),
			slog.Any("error", err),
		)
		if len(s.seeds) == 0 {
			return fmt.Errorf("loading projects: %w", err)
		}
	}
	if len(list) == 0 {
		list = s.seeds
	}

	projects := make(map[string]*project.Project, len(list))
	order := make([]string, 0, len(list))
	for i := range list {
		p := list[i].Clone()
		if _, dup := projects[p.ID]; dup {
			continue
		}
		projects[p.ID] = p
		order = append(order, p.ID)
	}

	s.mu.Lock()
	s.projects = projects
	s.order = order
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "projects loaded", slog.Int("count", len(order)))
	return nil
}

// Close makes the store ignore persistence results that arrive afterwards.
func (s *Store) Close() {
	s.closed.Store(true)
}

// Projects returns copies of every project in display order.
func (s *Store) Projects() []*project.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*project.Project, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.projects[id].Clone())
	}
	return out
}

// Project returns a copy of the project with id.
func (s *Store) Project(id string) (*project.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, false
	}
	return p.Clone(), true
}

// Dispatch runs cmd for actor. Domain rejections (validation, conflict,
// forbidden, not found) are returned before any state changes. A persistence
// failure restores the previous state, except for deletes, and is reported
// as a *MutationError.
func (s *Store) Dispatch(ctx context.Context, actor *project.UserSnapshot, cmd Command) (*ports.MutationResult, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}

	kind := cmd.Kind()
	if id := cmd.ProjectID(); id != "" {
		unlock, err := s.locks.Lock(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("waiting for project %s: %w", id, err)
		}
		defer unlock()
	}

	current, _ := s.Project(cmd.ProjectID())
	if cmd.ProjectID() != "" && current == nil {
		s.record(ctx, kind, "rejected")
		return nil, fmt.Errorf("project %s: %w", cmd.ProjectID(), domain.ErrNotFound)
	}

	m, err := Apply(s.env, current, actor, cmd)
	if err != nil {
		s.record(ctx, kind, "rejected")
		return nil, err
	}

	var confirmed *project.Project
	rc := appctx.New(ctx)
	_ = rc.AddAction(s.applyLocal(m))
	_ = rc.AddAction(appctx.ActionFunc{
		Desc: fmt.Sprintf("persist %s of project %s", kind, targetID(m)),
		Do: func(ctx context.Context) error {
			pctx, cancel := context.WithTimeout(ctx, s.timeout)
			defer cancel()

			var perr error
			confirmed, perr = s.persist(pctx, m)
			return perr
		},
	})

	if err := rc.Commit(ctx); err != nil {
		s.record(ctx, kind, "failed")
		s.logger.ErrorContext(ctx, "project mutation failed",
			slog.String("operation", "collab.Dispatch"),
			slog.String("kind", string(kind)),
			slog.String("project_id", targetID(m)),
			slog.String("user_id", m.Actor.ID),
			slog.Any("error", err),
		)
		return nil, newMutationError(kind, unwrapCommit(err))
	}

	if confirmed != nil && !s.closed.Load() {
		s.replace(m.After.ID, confirmed)
	}
	s.record(ctx, kind, "success")

	result := &ports.MutationResult{Notice: noticeFor(cmd, s.ttl)}
	switch {
	case confirmed != nil:
		result.Project = confirmed.Clone()
	case m.After != nil:
		result.Project = m.After.Clone()
	}
	return result, nil
}

// applyLocal writes m.After into the collection and, on rollback, puts
// m.Before back. A delete is not undone: the project stays removed.
func (s *Store) applyLocal(m Mutation) appctx.ActionFunc {
	act := appctx.ActionFunc{Desc: fmt.Sprintf("apply %s locally", m.Command.Kind())}

	switch {
	case m.Before == nil:
		act.Do = func(context.Context) error {
			s.insertFront(m.After.Clone())
			return nil
		}
		act.Undo = func(context.Context) error {
			s.remove(m.After.ID)
			return nil
		}
	case m.After == nil:
		act.Do = func(context.Context) error {
			s.remove(m.Before.ID)
			return nil
		}
	default:
		act.Do = func(context.Context) error {
			s.put(m.After.Clone())
			return nil
		}
		act.Undo = func(context.Context) error {
			s.put(m.Before.Clone())
			return nil
		}
	}
	return act
}

func (s *Store) persist(ctx context.Context, m Mutation) (*project.Project, error) {
	switch {
	case m.Before == nil:
		return s.store.Create(ctx, m.After.Clone())
	case m.After == nil:
		return nil, s.store.Delete(ctx, m.Before.ID)
	default:
		return s.store.Update(ctx, m.After.Clone())
	}
}

func (s *Store) record(ctx context.Context, kind Kind, result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.MutationTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrMutationKind.String(string(kind)),
		telemetry.AttrResult.String(result),
	))
}

func (s *Store) put(p *project.Project) {
	if s.closed.Load() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[p.ID]; !ok {
		s.order = append(s.order, p.ID)
	}
	s.projects[p.ID] = p
}

func (s *Store) insertFront(p *project.Project) {
	if s.closed.Load() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[p.ID]; !ok {
		s.order = append([]string{p.ID}, s.order...)
	}
	s.projects[p.ID] = p
}

func (s *Store) remove(id string) {
	if s.closed.Load() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[id]; !ok {
		return
	}
	delete(s.projects, id)
	s.order = removeID(s.order, id)
}

// replace swaps the entry at localID for the store-confirmed record, which
// may carry a different id when the store assigned one.
func (s *Store) replace(localID string, confirmed *project.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[localID]; !ok {
		return
	}
	c := confirmed.Clone()
	if c.ID != localID {
		delete(s.projects, localID)
		for i, id := range s.order {
			if id == localID {
				s.order[i] = c.ID
			}
		}
	}
	s.projects[c.ID] = c
}

func targetID(m Mutation) string {
	if m.After != nil {
		return m.After.ID
	}
	return m.Before.ID
}

// unwrapCommit strips the action description Commit adds so the cause is
// reported as the store returned it.
func unwrapCommit(err error) error {
	if inner := errors.Unwrap(err); inner != nil {
		return inner
	}
	return err
}
