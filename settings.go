package outcome

import (
	"log/slog"
	"time"

	"github.com/casualjim/outcome/events"
	"github.com/casualjim/outcome/pkg/slogx"
	"github.com/fogfish/opts"
)

// DefaultTimeout bounds the wait of the asynchronous entry points when no
// positive timeout was configured.
const DefaultTimeout = 10 * time.Second

// Settings holds the per-call configuration shared by Sync, Async and Start.
type Settings struct {
	timeout         time.Duration
	logger          *slog.Logger
	observer        events.Hook
	name            string
	cancelOnTimeout bool
}

var (
	// WithTimeout bounds how long Async and Start wait for the future.
	// Non-positive values select DefaultTimeout. Ignored by Sync.
	WithTimeout = opts.ForName[Settings, time.Duration]("timeout")

	// WithLogger sets the logger used for dispatcher diagnostics.
	WithLogger = opts.ForName[Settings, *slog.Logger]("logger")

	// WithObserver receives a Settled event after every dispatch.
	WithObserver = opts.ForName[Settings, events.Hook]("observer")

	// WithName names the operation in logs and events. Sync defaults to the
	// function name of the operation.
	WithName = opts.ForName[Settings, string]("name")

	// WithCancelOnTimeout cancels the context handed to Future.Get once the
	// dispatcher stops waiting. This is a best-effort hook: futures that ignore
	// their context keep running in the background either way.
	WithCancelOnTimeout = opts.ForName[Settings, bool]("cancelOnTimeout")
)

func newSettings(options []opts.Option[Settings]) Settings {
	var s Settings
	if err := opts.Apply(&s, options); err != nil {
		// fall back to defaults rather than escaping the call boundary
		slog.Default().Error("invalid dispatcher options", slogx.Error(err))
		s = Settings{}
	}

	if s.timeout <= 0 {
		s.timeout = DefaultTimeout
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With(slogx.LoggerName("outcome"))
	if s.observer == nil {
		s.observer = events.Noop{}
	}
	return s
}

// Timeout returns the effective wait bound.
func (s Settings) Timeout() time.Duration {
	return s.timeout
}
