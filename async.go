package outcome

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/casualjim/outcome/events"
	"github.com/casualjim/outcome/pkg/slogx"
	"github.com/casualjim/outcome/pkg/stdx"
	"github.com/fogfish/opts"
)

// Async waits for fut under a timeout and dispatches exactly one callback of h.
//
// h.OnWaiting fires first, before the wait begins. If the timeout elapses before
// fut settles, h.OnTimeout fires and the late result is discarded. Otherwise the
// result is classified like Classify does. Async blocks until the callback
// returned and never panics.
//
// Timing out does not stop fut: unless WithCancelOnTimeout is set, the goroutine
// running fut.Get keeps going until fut settles on its own. Futures that never
// settle leak that goroutine.
func Async[T any](ctx context.Context, fut Future[T], h Handlers[T], options ...opts.Option[Settings]) {
	if ctx == nil {
		ctx = context.Background()
	}
	s := newSettings(options)
	r := s.begin(events.ModeAsync)

	h.waiting()
	o := await(ctx, fut, s)
	s.finish(ctx, r, o.Kind, o.Cause, h.Dispatch(o))
}

// Start is the non-blocking form of Async. h.OnWaiting fires before Start
// returns; the rest happens on a new goroutine. The returned Future settles
// once the callback returned and its Get only fails when the ctx passed to Get
// itself is done.
func Start[T any](ctx context.Context, fut Future[T], h Handlers[T], options ...opts.Option[Settings]) Future[struct{}] {
	if ctx == nil {
		ctx = context.Background()
	}
	s := newSettings(options)
	r := s.begin(events.ModeAsync)

	h.waiting()
	done := NewPromise[struct{}]()
	go func() {
		defer done.Complete(struct{}{})
		o := await(ctx, fut, s)
		s.finish(ctx, r, o.Kind, o.Cause, h.Dispatch(o))
	}()
	return done
}

type result[T any] struct {
	value T
	err   error
}

func await[T any](ctx context.Context, fut Future[T], s Settings) Outcome[T] {
	if fut == nil {
		return Failure[T](ErrNilFuture, callers(2))
	}

	getCtx, cancel := ctx, context.CancelFunc(func() {})
	if s.cancelOnTimeout {
		getCtx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	var abandoned atomic.Bool
	results := make(chan result[T], 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				results <- result[T]{err: newPanicError(r)}
			}
		}()

		v, err := fut.Get(getCtx)
		if abandoned.Load() {
			s.settledLate(err)
		}
		results <- result[T]{value: v, err: err}
	}()

	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	select {
	case r := <-results:
		return Classify(r.value, r.err)
	case <-timer.C:
		abandoned.Store(true)
		return Timeout[T]()
	case <-ctx.Done():
		abandoned.Store(true)
		return Classify(stdx.Zero[T](), ctx.Err())
	}
}

// settledLate reports a future that settled after its result was discarded.
// A future that stopped because WithCancelOnTimeout canceled it did what was
// asked and is only logged at debug.
func (s Settings) settledLate(err error) {
	attrs := []slog.Attr{slog.Bool("cancel_on_timeout", s.cancelOnTimeout)}
	if s.name != "" {
		attrs = append(attrs, slog.String("operation", s.name))
	}
	if err != nil {
		attrs = append(attrs, slogx.Error(err))
	}

	switch {
	case s.cancelOnTimeout && errors.Is(err, context.Canceled):
		s.logger.LogAttrs(context.Background(), slog.LevelDebug, "future honoured cancellation", attrs...)
	case s.cancelOnTimeout:
		s.logger.LogAttrs(context.Background(), slog.LevelWarn, "future ignored cancellation and settled late", attrs...)
	default:
		s.logger.LogAttrs(context.Background(), slog.LevelWarn, "future settled after the dispatcher stopped waiting", attrs...)
	}
}
