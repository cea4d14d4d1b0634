// Package broker distributes Settled events between processes or goroutines
// that want to watch dispatcher outcomes without wrapping the calls themselves.
//
// Design decisions:
//   - Topic-based: each topic is an isolated stream, typically one per service
//     or per wrapped operation
//   - Hook delivery: subscribers are plain events.Hook values, the same type the
//     dispatcher accepts as an observer
//   - Two transports: Local fans out in-process over buffered channels, NATS
//     publishes JSON-encoded events on a subject of the same name
//   - Slow subscribers are dropped by the local broker instead of blocking
//     publishers
//
// Example usage:
//
//	topic := broker.NATS(nc).Topic(ctx, "outcome.settled")
//	outcome.Sync(loadUser, handlers, outcome.WithObserver(broker.Publisher(topic)))
//
//	sub, err := topic.Subscribe(ctx, runstate.NewTally())
//	if err != nil {
//	    return err
//	}
//	defer sub.Unsubscribe()
package broker
