package natsx

import (
	"context"
	"errors"
	"fmt"

	"github.com/casualjim/outcome"
	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
)

// Decoder turns a reply payload into a value.
type Decoder[T any] func(data []byte) (T, error)

// JSON decodes a reply payload as JSON into T.
func JSON[T any](data []byte) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("natsx: decode reply: %w", err)
	}
	return v, nil
}

// Request returns a Future that sends data to subject and settles with the
// decoded reply. The request is only sent when Get is called, bounded by the
// context handed to Get. A request that outlives its context deadline is
// reported as outcome.ErrTimeout.
func Request[T any](nc *nats.Conn, subject string, data []byte, decode Decoder[T]) outcome.Future[T] {
	if decode == nil {
		decode = JSON[T]
	}
	return outcome.FutureFunc[T](func(ctx context.Context) (T, error) {
		var zero T
		if nc == nil {
			return zero, nats.ErrInvalidConnection
		}
		msg, err := nc.RequestWithContext(ctx, subject, data)
		if err != nil {
			if errors.Is(err, nats.ErrTimeout) {
				return zero, fmt.Errorf("natsx: request %s: %w", subject, outcome.ErrTimeout)
			}
			return zero, fmt.Errorf("natsx: request %s: %w", subject, err)
		}
		return decode(msg.Data)
	})
}
