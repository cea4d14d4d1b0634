package outcome

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"

	pkgerrors "github.com/pkg/errors"
)

var (
	// ErrTimeout marks a failure as timeout-kind. Futures may return it (wrapped or not)
	// to be classified as KindTimeout by the asynchronous entry points.
	ErrTimeout = errors.New("outcome: timed out")

	// ErrNilOperation is the cause reported when Sync is handed a nil operation.
	ErrNilOperation = errors.New("outcome: nil operation")

	// ErrNilFuture is the cause reported when Async or Start is handed a nil future.
	ErrNilFuture = errors.New("outcome: nil future")

	// ErrChannelClosed is returned by a FromChannel future whose channel was
	// closed before delivering a value.
	ErrChannelClosed = errors.New("outcome: channel closed")
)

// Trace is the stack trace attached to an error outcome. Format it with %+v to get
// file:line information for every frame.
type Trace = pkgerrors.StackTrace

// PanicError wraps a value recovered from a panicking operation or future.
type PanicError struct {
	Value any
	Stack []byte

	trace Trace
}

// newPanicError must be called from the deferred function that recovered r.
func newPanicError(r any) *PanicError {
	return &PanicError{Value: r, Stack: debug.Stack(), trace: callers(4)}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("outcome: panic: %v", e.Value)
}

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// StackTrace lets traceOf pick up the frames captured at recovery.
func (e *PanicError) StackTrace() pkgerrors.StackTrace {
	return e.trace
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// isTimeout reports whether err is a timeout-kind failure.
func isTimeout(err error) bool {
	return errors.Is(err, ErrTimeout) || errors.Is(err, context.DeadlineExceeded)
}

// traceOf returns the deepest stack trace carried by err, or one captured at the caller.
func traceOf(err error) Trace {
	var found Trace
	for e := err; e != nil; e = errors.Unwrap(e) {
		if st, ok := e.(stackTracer); ok {
			found = st.StackTrace()
		}
	}
	if found != nil {
		return found
	}
	return callers(3)
}

func callers(skip int) Trace {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(skip, pcs[:])
	st := make(Trace, n)
	for i := 0; i < n; i++ {
		st[i] = pkgerrors.Frame(pcs[i])
	}
	return st
}
