package resilience

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Group collapses concurrent calls sharing a key into one execution.
// Results are not retained once the call returns.
type Group[T any] struct {
	// Timeout bounds the shared execution. Zero means no bound.
	Timeout time.Duration

	mu    sync.Mutex
	calls map[string]*flight[T]
}

type flight[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Do runs fn once per in-flight key. shared is true for callers that joined an existing call.
//
// fn runs on a context detached from cancellation of any single caller but keeping its
// values, so one caller giving up never fails the others. Each caller stops waiting when
// its own ctx ends and gets ctx.Err().
func (g *Group[T]) Do(ctx context.Context, key string, fn func(context.Context) (T, error)) (val T, shared bool, err error) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*flight[T])
	}
	f, shared := g.calls[key]
	if !shared {
		f = &flight[T]{done: make(chan struct{})}
		g.calls[key] = f
		go g.run(context.WithoutCancel(ctx), key, f, fn)
	}
	g.mu.Unlock()

	select {
	case <-f.done:
		return f.val, shared, f.err
	case <-ctx.Done():
		var zero T
		return zero, shared, ctx.Err()
	}
}

func (g *Group[T]) run(ctx context.Context, key string, f *flight[T], fn func(context.Context) (T, error)) {
	if g.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.Timeout)
		defer cancel()
	}

	defer func() {
		// fn runs off the caller's goroutine, so a panic becomes the flight's error.
		if rec := recover(); rec != nil {
			f.err = fmt.Errorf("resilience: call %q panicked: %v", key, rec)
		}
		g.mu.Lock()
		delete(g.calls, key)
		g.mu.Unlock()
		close(f.done)
	}()

	f.val, f.err = fn(ctx)
}
