// Package events describes what happened during a dispatcher call, after the
// fact, for anything that wants to watch outcomes without taking part in them.
//
// Design decisions:
//   - Leaf package: events knows nothing about the dispatcher, so brokers and
//     observers can depend on it without cycles
//   - One record per call: a Settled event is emitted after the outcome
//     callback returned, never before
//   - Plain JSON: events are encoded with goccy/go-json using snake_case keys
//     so they can cross process boundaries (see internal/broker)
//   - Observers are hooks: a Hook receives the event synchronously on the
//     goroutine that dispatched the outcome and must not block
//
// Example usage:
//
//	hook := events.HookFunc(func(ctx context.Context, ev events.Settled) {
//	    slog.InfoContext(ctx, "settled", slog.String("kind", ev.Kind))
//	})
//	outcome.Sync(loadUser, handlers, outcome.WithObserver(hook))
package events
