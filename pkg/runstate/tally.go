// Package runstate keeps running totals of dispatcher outcomes so callers can
// see how a wrapped operation has been behaving over many calls.
package runstate

import (
	"context"
	"sync/atomic"

	"github.com/alphadose/haxmap"
	"github.com/casualjim/outcome"
	"github.com/casualjim/outcome/events"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var _ events.Hook = (*Tally)(nil)

// Counts holds the totals for one outcome kind.
type Counts struct {
	Total     int64
	Unhandled int64
}

type counters struct {
	total     atomic.Int64
	unhandled atomic.Int64
}

// Tally counts settled calls per outcome kind, optionally per operation name.
// It is safe for concurrent use and is meant to be installed with
// outcome.WithObserver.
type Tally struct {
	byKind      *haxmap.Map[string, *counters]
	byOperation *haxmap.Map[string, *haxmap.Map[string, *counters]]
}

func NewTally() *Tally {
	return &Tally{
		byKind:      haxmap.New[string, *counters](),
		byOperation: haxmap.New[string, *haxmap.Map[string, *counters]](),
	}
}

// OnSettled records one settled call.
func (t *Tally) OnSettled(_ context.Context, ev events.Settled) {
	if ev.Kind == "" {
		return
	}
	add(t.byKind, ev)

	if ev.Operation == "" {
		return
	}
	ops, _ := t.byOperation.GetOrCompute(ev.Operation, func() *haxmap.Map[string, *counters] {
		return haxmap.New[string, *counters]()
	})
	add(ops, ev)
}

func add(m *haxmap.Map[string, *counters], ev events.Settled) {
	c, _ := m.GetOrCompute(ev.Kind, func() *counters { return &counters{} })
	c.total.Add(1)
	if !ev.Handled {
		c.unhandled.Add(1)
	}
}

// Count returns the totals recorded for kind across all operations.
func (t *Tally) Count(kind outcome.Kind) Counts {
	return load(t.byKind, kind)
}

// Snapshot returns the totals for every outcome kind in declaration order,
// including kinds that were never seen.
func (t *Tally) Snapshot() *orderedmap.OrderedMap[outcome.Kind, Counts] {
	return snapshot(t.byKind)
}

// Operation returns the per-kind totals for a single operation name.
func (t *Tally) Operation(name string) *orderedmap.OrderedMap[outcome.Kind, Counts] {
	ops, ok := t.byOperation.Get(name)
	if !ok {
		return snapshot(nil)
	}
	return snapshot(ops)
}

// Operations lists the operation names seen so far, in no particular order.
func (t *Tally) Operations() []string {
	names := make([]string, 0, t.byOperation.Len())
	t.byOperation.ForEach(func(name string, _ *haxmap.Map[string, *counters]) bool {
		names = append(names, name)
		return true
	})
	return names
}

func snapshot(m *haxmap.Map[string, *counters]) *orderedmap.OrderedMap[outcome.Kind, Counts] {
	out := orderedmap.New[outcome.Kind, Counts]()
	for _, kind := range outcome.Kinds {
		out.Set(kind, load(m, kind))
	}
	return out
}

func load(m *haxmap.Map[string, *counters], kind outcome.Kind) Counts {
	if m == nil {
		return Counts{}
	}
	c, ok := m.Get(kind.String())
	if !ok {
		return Counts{}
	}
	return Counts{Total: c.total.Load(), Unhandled: c.unhandled.Load()}
}
