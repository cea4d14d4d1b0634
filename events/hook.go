package events

import (
	"context"
	"log/slog"

	"github.com/casualjim/outcome/pkg/slogx"
)

// Hook observes settled calls.
type Hook interface {
	OnSettled(context.Context, Settled)
}

// HookFunc adapts a plain function to a Hook.
type HookFunc func(context.Context, Settled)

func (f HookFunc) OnSettled(ctx context.Context, ev Settled) {
	f(ctx, ev)
}

// Multi fans an event out to every non-nil hook in order.
func Multi(hooks ...Hook) Hook {
	filtered := make([]Hook, 0, len(hooks))
	for _, h := range hooks {
		if h != nil {
			filtered = append(filtered, h)
		}
	}
	return multiHook(filtered)
}

type multiHook []Hook

func (m multiHook) OnSettled(ctx context.Context, ev Settled) {
	for _, h := range m {
		h.OnSettled(ctx, ev)
	}
}

// Noop discards every event.
type Noop struct{}

func (Noop) OnSettled(context.Context, Settled) {}

// LoggingHook writes one debug record per settled call, or a warning for error
// and timeout outcomes.
func LoggingHook(logger *slog.Logger) Hook {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slogx.LoggerName("outcome.events"))

	return HookFunc(func(ctx context.Context, ev Settled) {
		attrs := []slog.Attr{
			slog.String("call_id", ev.CallID.String()),
			slog.String("mode", string(ev.Mode)),
			slog.String(slogx.KeyKind, ev.Kind),
			slog.Bool("handled", ev.Handled),
			slogx.Duration("elapsed", ev.Elapsed()),
		}
		if ev.Operation != "" {
			attrs = append(attrs, slog.String("operation", ev.Operation))
		}
		if ev.Error != "" {
			attrs = append(attrs, slog.String("error", ev.Error))
		}

		level := slog.LevelDebug
		if ev.Kind == "error" || ev.Kind == "timeout" {
			level = slog.LevelWarn
		}
		logger.LogAttrs(ctx, level, "call settled", attrs...)
	})
}
