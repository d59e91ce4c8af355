// Package flow provides the control-flow primitives the install engine is
// built on: sequential chains, unordered parallel fan-out, and memoized
// single-execution jobs.
package flow

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Step is a single unit of work in a chain or job.
type Step func(ctx context.Context) error

// Chain executes steps strictly in order. The first failure aborts the chain
// and is returned; remaining steps never start.
func Chain(ctx context.Context, steps ...Step) error {
	for _, step := range steps {
		if err := step(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Parallel launches worker for every item with no ordering or concurrency
// limit between items. All branches run to completion even when one fails;
// the first error encountered is returned.
func Parallel[T any](ctx context.Context, items []T, worker func(ctx context.Context, item T) error) error {
	if len(items) == 0 {
		return nil
	}

	var g errgroup.Group
	for _, item := range items {
		g.Go(func() error {
			return worker(ctx, item)
		})
	}
	return g.Wait()
}

// Safe wraps a step so a panic inside it is reported as an error instead of
// escaping the goroutine.
func Safe(step Step) Step {
	return func(ctx context.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = zerr.With(zerr.New("panic recovered"), "panic", fmt.Sprint(r))
			}
		}()
		return step(ctx)
	}
}

// JobGroup memoizes asynchronous operations by key. Each key's operation runs
// at most once; callers that arrive while it is in flight block until it
// completes, and every caller observes the identical outcome.
type JobGroup struct {
	mu   sync.Mutex
	jobs map[string]*job
}

type job struct {
	done chan struct{}
	err  error
}

// NewJobGroup creates an empty JobGroup.
func NewJobGroup() *JobGroup {
	return &JobGroup{jobs: make(map[string]*job)}
}

// Do executes op under key. The first caller for a key runs op; concurrent and
// later callers share its outcome without re-executing. A waiting caller whose
// context is cancelled returns the context error, but the in-flight operation
// itself is not interrupted.
func (g *JobGroup) Do(ctx context.Context, key string, op Step) error {
	g.mu.Lock()
	j, ok := g.jobs[key]
	if !ok {
		j = &job{done: make(chan struct{})}
		g.jobs[key] = j
		g.mu.Unlock()

		j.err = op(ctx)
		close(j.done)
		return j.err
	}
	g.mu.Unlock()

	select {
	case <-j.done:
		return j.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Started reports whether a job for key has been created.
func (g *JobGroup) Started(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.jobs[key]
	return ok
}
