package outcome

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/casualjim/outcome/events"
	"github.com/casualjim/outcome/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func loadAnswer() (int, error) {
	return 42, nil
}

func TestSync(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		rec := &recorder[int]{}
		Sync(func() (int, error) { return 100, nil }, rec.handlers())

		assert.Equal(t, []string{"success"}, rec.Calls())
		assert.Equal(t, []int{100}, rec.Values())
	})

	t.Run("only the success handler present", func(t *testing.T) {
		var got []int
		Sync(func() (int, error) { return 100, nil }, Handlers[int]{
			OnSuccess: func(v int) { got = append(got, v) },
		})
		assert.Equal(t, []int{100}, got)
	})

	t.Run("null", func(t *testing.T) {
		rec := &recorder[*string]{}
		Sync(func() (*string, error) { return nil, nil }, rec.handlers())
		assert.Equal(t, []string{"null"}, rec.Calls())
	})

	t.Run("non-empty list is empty", func(t *testing.T) {
		rec := &recorder[[]int]{}
		Sync(func() ([]int, error) { return []int{1, 2, 3}, nil }, rec.handlers())

		assert.Equal(t, []string{"empty"}, rec.Calls())
		assert.Empty(t, rec.Values())
	})

	t.Run("map is empty", func(t *testing.T) {
		rec := &recorder[map[string]int]{}
		Sync(func() (map[string]int, error) { return map[string]int{"a": 1}, nil }, rec.handlers())
		assert.Equal(t, []string{"empty"}, rec.Calls())
	})

	t.Run("returned error", func(t *testing.T) {
		boom := errors.New("boom")
		rec := &recorder[int]{}
		Sync(func() (int, error) { return 0, boom }, rec.handlers())

		require.Equal(t, []string{"error"}, rec.Calls())
		assert.Same(t, boom, rec.Causes()[0])
		assert.Equal(t, "boom", rec.Causes()[0].Error())
		assert.NotEmpty(t, rec.Traces()[0])
	})

	t.Run("deadline exceeded is an error on the sync path", func(t *testing.T) {
		rec := &recorder[int]{}
		Sync(func() (int, error) { return 0, context.DeadlineExceeded }, rec.handlers())
		assert.Equal(t, []string{"error"}, rec.Calls())
	})

	t.Run("timeout sentinel is an error on the sync path", func(t *testing.T) {
		rec := &recorder[int]{}
		Sync(func() (int, error) { return 0, fmt.Errorf("slow: %w", ErrTimeout) }, rec.handlers())
		assert.Equal(t, []string{"error"}, rec.Calls())
	})

	t.Run("panic", func(t *testing.T) {
		rec := &recorder[int]{}
		assert.NotPanics(t, func() {
			Sync(func() (int, error) { panic("boom") }, rec.handlers())
		})

		require.Equal(t, []string{"error"}, rec.Calls())
		var pe *PanicError
		require.ErrorAs(t, rec.Causes()[0], &pe)
		assert.Equal(t, "boom", pe.Value)
		assert.NotEmpty(t, pe.Stack)
		assert.Contains(t, fmt.Sprintf("%+v", rec.Traces()[0]), "TestSync")
	})

	t.Run("panic with an error value", func(t *testing.T) {
		boom := errors.New("boom")
		rec := &recorder[int]{}
		Sync(func() (int, error) { panic(boom) }, rec.handlers())

		require.Equal(t, []string{"error"}, rec.Calls())
		assert.ErrorIs(t, rec.Causes()[0], boom)
	})

	t.Run("nil operation", func(t *testing.T) {
		rec := &recorder[int]{}
		Sync(nil, rec.handlers())

		require.Equal(t, []string{"error"}, rec.Calls())
		assert.ErrorIs(t, rec.Causes()[0], ErrNilOperation)
	})

	t.Run("missing handlers are silent", func(t *testing.T) {
		ops := []Operation[any]{
			func() (any, error) { return 1, nil },
			func() (any, error) { return nil, nil },
			func() (any, error) { return []int{}, nil },
			func() (any, error) { return nil, errors.New("boom") },
			func() (any, error) { panic("boom") },
		}
		for _, op := range ops {
			assert.NotPanics(t, func() {
				Sync(op, Handlers[any]{})
			})
		}
	})

	t.Run("operation runs exactly once", func(t *testing.T) {
		calls := 0
		Sync(func() (int, error) { calls++; return calls, nil }, Handlers[int]{})
		assert.Equal(t, 1, calls)
	})

	t.Run("value adapter", func(t *testing.T) {
		rec := &recorder[string]{}
		Sync(Value(func() string { return "x" }), rec.handlers())
		assert.Equal(t, []string{"x"}, rec.Values())

		assert.Nil(t, Value[string](nil))
	})
}

func TestSyncObserver(t *testing.T) {
	t.Run("reports the settled call", func(t *testing.T) {
		hook := mocks.NewHook(t)
		hook.EXPECT().OnSettled(mock.Anything, mock.Anything).Run(func(_ context.Context, ev events.Settled) {
			assert.Equal(t, events.ModeSync, ev.Mode)
			assert.Equal(t, "success", ev.Kind)
			assert.Equal(t, "loadAnswer", ev.Operation)
			assert.True(t, ev.Handled)
			assert.Empty(t, ev.Error)
			assert.Zero(t, ev.Timeout)
			assert.NotEmpty(t, ev.CallID.String())
			assert.GreaterOrEqual(t, ev.Elapsed().Nanoseconds(), int64(0))
		}).Return().Once()

		Sync(loadAnswer, Handlers[int]{OnSuccess: func(int) {}}, WithObserver(hook))
	})

	t.Run("reports unhandled errors", func(t *testing.T) {
		var seen []events.Settled
		hook := events.HookFunc(func(_ context.Context, ev events.Settled) { seen = append(seen, ev) })

		Sync(func() (int, error) { return 0, errors.New("boom") }, Handlers[int]{},
			WithObserver(hook), WithName("flaky"))

		require.Len(t, seen, 1)
		assert.Equal(t, "error", seen[0].Kind)
		assert.Equal(t, "boom", seen[0].Error)
		assert.Equal(t, "flaky", seen[0].Operation)
		assert.False(t, seen[0].Handled)
	})

	t.Run("observer runs after the callback", func(t *testing.T) {
		var order []string
		hook := events.HookFunc(func(context.Context, events.Settled) { order = append(order, "observer") })

		Sync(loadAnswer, Handlers[int]{OnSuccess: func(int) { order = append(order, "success") }}, WithObserver(hook))
		assert.Equal(t, []string{"success", "observer"}, order)
	})
}
