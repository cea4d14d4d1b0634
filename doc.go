// Package outcome wraps a single unit of work, synchronous or asynchronous, and
// dispatches exactly one of five mutually exclusive callbacks: timeout, error,
// null, empty or success.
//
// Design decisions:
//   - Closed outcome: Kind enumerates the five cases and Classify is the only
//     place that decides between them
//   - Optional callbacks: Handlers is a plain struct of nillable funcs; a nil
//     handler for the selected outcome means the outcome is swallowed
//   - Boundary semantics: Sync, Async and Start never panic or return errors,
//     panics in the wrapped work are recovered into the error outcome
//   - Category, not cardinality: any slice, array or map result is reported as
//     empty, including non-empty ones
//   - No implicit cancellation: a timed out future keeps running unless
//     WithCancelOnTimeout is set
//
// Classification rules, in order:
//
//	failure that is ErrTimeout or context.DeadlineExceeded  -> Timeout (async only)
//	any other failure                                        -> Error(cause, trace)
//	slice, array or map value                                -> Empty
//	nil pointer, interface, chan or func                     -> Null
//	anything else                                            -> Success(value)
//
// Example usage:
//
//	outcome.Sync(func() (int, error) { return 100, nil }, outcome.Handlers[int]{
//	    OnSuccess: func(v int) { fmt.Println("got", v) },
//	})
//
//	fut := outcome.Go(ctx, fetchProfile)
//	outcome.Async(ctx, fut, outcome.Handlers[*Profile]{
//	    OnWaiting: spinner.Start,
//	    OnTimeout: func() { fmt.Println("gave up") },
//	    OnError:   func(err error, trace outcome.Trace) { log.Printf("%v\n%+v", err, trace) },
//	    OnSuccess: render,
//	}, outcome.WithTimeout(2*time.Second))
//
// Resource model: when Async or Start time out, the goroutine blocked in
// Future.Get is abandoned, not stopped. If the future does not observe its
// context (or WithCancelOnTimeout is not set) it runs to completion in the
// background and its result is dropped. Callbacks run synchronously on the
// goroutine that observed the outcome and must not block.
package outcome

//go:generate go run github.com/vektra/mockery/v2@v2.50.0
