package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/casualjim/outcome"
	"github.com/casualjim/outcome/events"
	"github.com/casualjim/outcome/internal/broker"
	"github.com/casualjim/outcome/pkg/natsx"
	"github.com/casualjim/outcome/pkg/runstate"
	"github.com/fatih/color"
	"github.com/fogfish/opts"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newScenariosCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "Run the canonical dispatch scenarios and show which callbacks fired",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loadConfig(v)

			var hooks []events.Hook
			if cfg.Publish {
				nc, err := natsx.NewClient()
				if err != nil {
					return fmt.Errorf("connect to nats: %w", err)
				}
				defer func() { _ = nc.Drain() }()

				topic := broker.NATS(nc).Topic(cmd.Context(), cfg.Subject)
				hooks = append(hooks, broker.Publisher(topic))
				slog.Info("publishing settled events", slog.String("subject", cfg.Subject))
			}

			return runScenarios(cmd.Context(), cmd.OutOrStdout(), cfg, hooks...)
		},
	}
}

// firings records the callbacks fired during one scenario, in order.
type firings struct {
	mu    sync.Mutex
	names []string
}

func (f *firings) add(name string) func() {
	return func() {
		f.mu.Lock()
		f.names = append(f.names, name)
		f.mu.Unlock()
	}
}

func (f *firings) addf(format string, args ...any) {
	f.add(fmt.Sprintf(format, args...))()
}

func (f *firings) String() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.names) == 0 {
		return "nothing"
	}
	return strings.Join(f.names, ", ")
}

type scenario struct {
	name string
	want string
	run  func(ctx context.Context, f *firings, options ...opts.Option[outcome.Settings])
}

func scenarios(timeout time.Duration) []scenario {
	return []scenario{
		{
			name: "sync value",
			want: "success(100)",
			run: func(_ context.Context, f *firings, options ...opts.Option[outcome.Settings]) {
				outcome.Sync(outcome.Value(func() int { return 100 }), outcome.Handlers[int]{
					OnSuccess: func(v int) { f.addf("success(%d)", v) },
				}, append(options, outcome.WithName("sync-value"))...)
			},
		},
		{
			name: "sync null",
			want: "null",
			run: func(_ context.Context, f *firings, options ...opts.Option[outcome.Settings]) {
				outcome.Sync(outcome.Value(func() *int { return nil }), outcome.Handlers[*int]{
					OnNull:    f.add("null"),
					OnSuccess: func(*int) { f.add("success")() },
				}, append(options, outcome.WithName("sync-null"))...)
			},
		},
		{
			name: "sync list",
			want: "empty",
			run: func(_ context.Context, f *firings, options ...opts.Option[outcome.Settings]) {
				outcome.Sync(outcome.Value(func() []int { return []int{1, 2, 3} }), outcome.Handlers[[]int]{
					OnEmpty:   f.add("empty"),
					OnSuccess: func([]int) { f.add("success")() },
				}, append(options, outcome.WithName("sync-list"))...)
			},
		},
		{
			name: "async timeout",
			want: "timeout",
			run: func(ctx context.Context, f *firings, options ...opts.Option[outcome.Settings]) {
				slow := outcome.Go(ctx, func(ctx context.Context) (int, error) {
					select {
					case <-time.After(50 * time.Millisecond):
						return 5, nil
					case <-ctx.Done():
						return 0, ctx.Err()
					}
				})
				outcome.Async(ctx, slow, outcome.Handlers[int]{
					OnTimeout: f.add("timeout"),
					OnSuccess: func(int) { f.add("success")() },
				}, append(options, outcome.WithName("async-timeout"), outcome.WithTimeout(10*time.Millisecond))...)
			},
		},
		{
			name: "sync error",
			want: "error(boom)",
			run: func(_ context.Context, f *firings, options ...opts.Option[outcome.Settings]) {
				outcome.Sync(func() (string, error) { return "", errors.New("boom") }, outcome.Handlers[string]{
					OnError: func(cause error, _ outcome.Trace) { f.addf("error(%v)", cause) },
				}, append(options, outcome.WithName("sync-error"))...)
			},
		},
		{
			name: "async immediate",
			want: "waiting, success(x)",
			run: func(ctx context.Context, f *firings, options ...opts.Option[outcome.Settings]) {
				outcome.Async(ctx, outcome.Resolved("x"), outcome.Handlers[string]{
					OnWaiting: f.add("waiting"),
					OnSuccess: func(v string) { f.addf("success(%s)", v) },
				}, append(options, outcome.WithName("async-immediate"), outcome.WithTimeout(timeout))...)
			},
		},
	}
}

type kindCount struct {
	Kind      string
	Total     int64
	Unhandled int64
}

func runScenarios(ctx context.Context, w io.Writer, cfg config, hooks ...events.Hook) error {
	if ctx == nil {
		ctx = context.Background()
	}

	tally := runstate.NewTally()
	observer := events.Multi(append([]events.Hook{tally, events.LoggingHook(slog.Default())}, hooks...)...)
	options := []opts.Option[outcome.Settings]{outcome.WithObserver(observer)}

	var failed int
	for i, sc := range scenarios(cfg.Timeout) {
		f := &firings{}
		sc.run(ctx, f, options...)

		got := f.String()
		status := color.GreenString("ok")
		if got != sc.want {
			status = color.RedString("unexpected")
			failed++
		}
		fmt.Fprintf(w, "%d. %-16s %s %s\n", i+1, color.CyanString(sc.name), color.YellowString(got), status)
	}

	var summary []kindCount
	for pair := tally.Snapshot().Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Total == 0 {
			continue
		}
		summary = append(summary, kindCount{Kind: pair.Key.String(), Total: pair.Value.Total, Unhandled: pair.Value.Unhandled})
	}
	newPrinter(w).Println(summary)

	if failed > 0 {
		return fmt.Errorf("%d scenario(s) dispatched unexpected callbacks", failed)
	}
	return nil
}

func newPrinter(w io.Writer) *pp.PrettyPrinter {
	printer := pp.New()
	printer.SetOutput(w)
	printer.SetColoringEnabled(!color.NoColor)
	return printer
}
