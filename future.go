package outcome

import (
	"context"
	"sync"

	"github.com/casualjim/outcome/pkg/stdx"
)

// Future is a handle to asynchronous work that eventually produces a value or
// fails. Get blocks until the work settles or ctx is done; implementations
// should return ctx.Err() in the latter case.
type Future[T any] interface {
	Get(ctx context.Context) (T, error)
}

// Promise is the write side of a CompletableFuture. Only the first call to
// Complete or Error has an effect.
type Promise[T any] interface {
	Complete(T)
	Error(error)
}

// CompletableFuture is a Future settled from the outside through its Promise.
type CompletableFuture[T any] interface {
	Future[T]
	Promise[T]
}

// FutureFunc adapts a blocking function to a Future.
type FutureFunc[T any] func(ctx context.Context) (T, error)

func (f FutureFunc[T]) Get(ctx context.Context) (T, error) {
	return f(ctx)
}

// Resolved returns a Future that is already settled with v.
func Resolved[T any](v T) Future[T] {
	p := NewPromise[T]()
	p.Complete(v)
	return p
}

// Rejected returns a Future that is already settled with err.
func Rejected[T any](err error) Future[T] {
	p := NewPromise[T]()
	p.Error(err)
	return p
}

// Go starts fn in a new goroutine and returns a Future for its result.
// A panic in fn settles the future with a *PanicError.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) Future[T] {
	p := NewPromise[T]()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				p.Error(newPanicError(r))
			}
		}()
		v, err := fn(ctx)
		if err != nil {
			p.Error(err)
			return
		}
		p.Complete(v)
	}()
	return p
}

// FromChannel returns a Future settled by the first value received from ch.
// The channel is read at most once, on the first call to Get; later calls see
// the same result. A channel closed without a value settles with
// ErrChannelClosed, a nil channel never settles.
func FromChannel[T any](ch <-chan T) Future[T] {
	return &chanFuture[T]{ch: ch, p: NewPromise[T]()}
}

type chanFuture[T any] struct {
	ch   <-chan T
	once sync.Once
	p    CompletableFuture[T]
}

func (f *chanFuture[T]) Get(ctx context.Context) (T, error) {
	f.once.Do(func() {
		go func() {
			v, ok := <-f.ch
			if !ok {
				f.p.Error(ErrChannelClosed)
				return
			}
			f.p.Complete(v)
		}()
	})
	return f.p.Get(ctx)
}

type promise[T any] struct {
	done   chan struct{}
	once   sync.Once
	result T
	err    error
}

// NewPromise creates an unsettled CompletableFuture.
func NewPromise[T any]() CompletableFuture[T] {
	return &promise[T]{done: make(chan struct{})}
}

func (p *promise[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.result, p.err
	default:
	}

	select {
	case <-p.done:
		return p.result, p.err
	case <-ctx.Done():
		return stdx.Zero[T](), ctx.Err()
	}
}

func (p *promise[T]) Complete(v T) {
	p.once.Do(func() {
		p.result = v
		close(p.done)
	})
}

func (p *promise[T]) Error(err error) {
	p.once.Do(func() {
		p.err = err
		close(p.done)
	})
}
