package outcome

import (
	"context"
	"log/slog"
	"time"

	"github.com/casualjim/outcome/events"
	"github.com/casualjim/outcome/pkg/slogx"
	"github.com/casualjim/outcome/pkg/uuidx"
	"github.com/go-openapi/strfmt"
)

// record tracks one call from start to dispatch for logging and observers.
type record struct {
	settled events.Settled
	started time.Time
}

func (s Settings) begin(mode events.Mode) *record {
	now := time.Now()
	ev := events.Settled{
		CallID:    uuidx.New(),
		Mode:      mode,
		Operation: s.name,
		Started:   strfmt.DateTime(now),
	}
	if mode == events.ModeAsync {
		ev.Timeout = s.timeout
	}
	return &record{settled: ev, started: now}
}

// finish logs the dispatched outcome and hands the Settled event to the observer.
func (s Settings) finish(ctx context.Context, r *record, kind Kind, cause error, handled bool) {
	ev := r.settled
	ev.Kind = kind.String()
	ev.Handled = handled
	ev.Finished = strfmt.DateTime(time.Now())
	if cause != nil {
		ev.Error = cause.Error()
	}

	if s.logger.Enabled(ctx, slog.LevelDebug) {
		attrs := []slog.Attr{
			slog.String("call_id", ev.CallID.String()),
			slog.String("mode", string(ev.Mode)),
			slogx.Kind(kind),
			slog.Bool("handled", handled),
			slogx.Duration("elapsed", time.Since(r.started)),
		}
		if ev.Operation != "" {
			attrs = append(attrs, slog.String("operation", ev.Operation))
		}
		if cause != nil {
			attrs = append(attrs, slogx.Error(cause))
		}
		s.logger.LogAttrs(ctx, slog.LevelDebug, "outcome dispatched", attrs...)
	}

	s.observer.OnSettled(ctx, ev)
}
