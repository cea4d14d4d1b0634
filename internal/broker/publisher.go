package broker

import (
	"context"
	"log/slog"

	"github.com/casualjim/outcome/events"
	"github.com/casualjim/outcome/pkg/slogx"
)

// Publisher adapts a topic to an events.Hook so it can be installed as a
// dispatcher observer. Publish failures are logged and otherwise ignored.
func Publisher(topic Topic) events.Hook {
	return events.HookFunc(func(ctx context.Context, ev events.Settled) {
		if err := topic.Publish(ctx, ev); err != nil {
			slog.WarnContext(ctx, "failed to publish settled event",
				slogx.Error(err),
				slog.String("call_id", ev.CallID.String()),
			)
		}
	})
}
