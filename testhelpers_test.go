package outcome

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"

	"github.com/tidwall/gjson"
)

// recorder captures every callback invocation in order.
type recorder[T any] struct {
	mu     sync.Mutex
	calls  []string
	values []T
	causes []error
	traces []Trace
}

func (r *recorder[T]) record(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, name)
}

func (r *recorder[T]) handlers() Handlers[T] {
	return Handlers[T]{
		OnTimeout: func() { r.record("timeout") },
		OnError: func(cause error, trace Trace) {
			r.mu.Lock()
			r.causes = append(r.causes, cause)
			r.traces = append(r.traces, trace)
			r.mu.Unlock()
			r.record("error")
		},
		OnWaiting: func() { r.record("waiting") },
		OnNull:    func() { r.record("null") },
		OnEmpty:   func() { r.record("empty") },
		OnSuccess: func(data T) {
			r.mu.Lock()
			r.values = append(r.values, data)
			r.mu.Unlock()
			r.record("success")
		},
	}
}

func (r *recorder[T]) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func (r *recorder[T]) Values() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]T(nil), r.values...)
}

func (r *recorder[T]) Causes() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error(nil), r.causes...)
}

func (r *recorder[T]) Traces() []Trace {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Trace(nil), r.traces...)
}

// logBuffer is a goroutine safe sink for a JSON slog handler.
type logBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *logBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// Records returns the parsed JSON log lines written so far.
func (b *logBuffer) Records() []gjson.Result {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []gjson.Result
	for _, line := range strings.Split(strings.TrimSpace(b.buf.String()), "\n") {
		if line != "" {
			out = append(out, gjson.Parse(line))
		}
	}
	return out
}

// Find returns the first record with the given message.
func (b *logBuffer) Find(msg string) (gjson.Result, bool) {
	for _, rec := range b.Records() {
		if rec.Get("msg").String() == msg {
			return rec, true
		}
	}
	return gjson.Result{}, false
}

func (b *logBuffer) Logger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(b, &slog.HandlerOptions{Level: level}))
}
