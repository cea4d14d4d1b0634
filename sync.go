package outcome

import (
	"context"

	"github.com/casualjim/outcome/events"
	"github.com/casualjim/outcome/pkg/reflectx"
	"github.com/fogfish/opts"
)

// Operation is a zero-argument unit of synchronous work.
type Operation[T any] func() (T, error)

// Value adapts a function that can only fail by panicking.
func Value[T any](fn func() T) Operation[T] {
	if fn == nil {
		return nil
	}
	return func() (T, error) {
		return fn(), nil
	}
}

// Sync runs op once on the calling goroutine and dispatches exactly one of
// h.OnError, h.OnNull, h.OnEmpty or h.OnSuccess.
//
// A returned error or a panic is reported through OnError, never as a timeout.
// Sync does not panic and returns nothing: every failure ends in a callback, or
// in a silent no-op when that callback is nil.
func Sync[T any](op Operation[T], h Handlers[T], options ...opts.Option[Settings]) {
	s := newSettings(options)
	if s.name == "" {
		s.name = reflectx.FunctionName(op)
	}

	r := s.begin(events.ModeSync)
	o := invoke(op)
	s.finish(context.Background(), r, o.Kind, o.Cause, h.Dispatch(o))
}

func invoke[T any](op Operation[T]) (o Outcome[T]) {
	if op == nil {
		return Failure[T](ErrNilOperation, callers(2))
	}

	defer func() {
		if r := recover(); r != nil {
			pe := newPanicError(r)
			o = Failure[T](pe, pe.StackTrace())
		}
	}()

	v, err := op()
	if err != nil {
		return Failure[T](err, traceOf(err))
	}
	return classifyValue(v)
}
