// Package fanout runs a function over a slice of items with a bounded number
// of goroutines. The university overview uses it to load its sections in
// parallel; results keep the input order.
package fanout

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
)

// Result is the outcome for one item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// PanicError is the Err of an item whose fn panicked. The worker goroutines
// sit outside any HTTP recovery, so a panic is contained to its item.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("fanout: item panicked: %v", e.Value)
}

// Run calls fn for each item with at most maxWorkers running at once and
// waits for all of them. maxWorkers <= 0 runs every item at once. An item
// still waiting for a slot when ctx is done records ctx.Err() without
// calling fn.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if maxWorkers <= 0 || maxWorkers > len(items) {
		maxWorkers = len(items)
	}

	slots := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup
	for i, item := range items {
		wg.Go(func() {
			select {
			case slots <- struct{}{}:
				defer func() { <-slots }()
			case <-ctx.Done():
				results[i].Err = ctx.Err()
				return
			}
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return
			}
			results[i] = call(ctx, item, fn)
		})
	}
	wg.Wait()

	return results
}

func call[T, R any](ctx context.Context, item T, fn func(context.Context, T) (R, error)) (res Result[R]) {
	defer func() {
		if v := recover(); v != nil {
			res = Result[R]{Err: &PanicError{Value: v, Stack: debug.Stack()}}
		}
	}()

	v, err := fn(ctx, item)
	return Result[R]{Value: v, Err: err}
}

// Failed returns the errors of the failed results in input order.
func Failed[R any](results []Result[R]) []error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errs
}
