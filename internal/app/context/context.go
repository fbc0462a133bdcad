// Package appctx holds the per-request state shared by application services:
// a memo cache for reads and an ordered queue of reversible write steps.
//
// The collaboration engine uses it for optimistic mutations. The in-memory
// change is staged first, the persistence call second, and a failing
// persistence step rolls the in-memory change back:
//
//	rc := appctx.New(ctx)
//	actor, err := appctx.GetOrFetch(rc, "account:"+userID, loadAccount)
//
//	_ = rc.AddAction(appctx.ActionFunc{Desc: "apply join locally", Do: apply, Undo: restore})
//	_ = rc.AddAction(appctx.ActionFunc{Desc: "persist project", Do: persist})
//	err = rc.Commit(ctx)
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/campus-superapp/internal/domain"
)

// ErrAlreadyCommitted is returned when a committed RequestContext receives
// more work.
var ErrAlreadyCommitted = errors.New("appctx: request context already committed")

// ErrNilAction is returned when a nil action is staged.
var ErrNilAction = errors.New("appctx: nil action")

// ErrTypeMismatch is returned by GetOrFetch when a key is reused with a
// different type.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// RequestContext wraps a context.Context with a memo cache and a write queue.
// One instance belongs to one request. The queue may be appended to from
// several goroutines; the cache may not.
type RequestContext struct {
	context.Context

	cache map[string]cacheEntry

	queueMu   sync.Mutex
	items     []domain.Action
	committed bool
}

// cacheEntry remembers a fetch result, errors included, so a failing lookup
// is not repeated within the same request.
type cacheEntry struct {
	value any
	err   error
}

// New returns an empty RequestContext around ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{
		Context: ctx,
		cache:   make(map[string]cacheEntry),
	}
}

type requestContextKey struct{}

// WithRequestContext stores rc in ctx for handlers and services downstream.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// FromContext returns the RequestContext stored by WithRequestContext, or nil.
func FromContext(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(requestContextKey{}).(*RequestContext)
	return rc
}

// Ensure returns the RequestContext carried by ctx, creating a fresh one when
// the caller is outside an HTTP request (background jobs, tests).
func Ensure(ctx context.Context) *RequestContext {
	if rc := FromContext(ctx); rc != nil {
		return rc
	}
	return New(ctx)
}

// GetOrFetch returns the value memoized under key, calling fetchFn on the
// first lookup. A key must always be read with the same T.
func GetOrFetch[T any](rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	if entry, ok := rc.cache[key]; ok {
		if entry.err != nil {
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(rc.Context)
	rc.cache[key] = cacheEntry{value: val, err: err}
	return val, err
}

// Forget drops a memoized key so the next GetOrFetch fetches again.
func (rc *RequestContext) Forget(key string) {
	delete(rc.cache, key)
}
