package outcome

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/casualjim/outcome/events"
	"github.com/goccy/go-json"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "timeout", KindTimeout.String())
		assert.Equal(t, "error", KindError.String())
		assert.Equal(t, "null", KindNull.String())
		assert.Equal(t, "empty", KindEmpty.String())
		assert.Equal(t, "success", KindSuccess.String())
		assert.Equal(t, "unknown(0)", KindUnknown.String())
	})

	t.Run("valid", func(t *testing.T) {
		for _, k := range Kinds {
			assert.True(t, k.Valid(), k.String())
		}
		assert.False(t, KindUnknown.Valid())
		assert.False(t, Kind(42).Valid())
	})

	t.Run("text round trip", func(t *testing.T) {
		for _, k := range Kinds {
			b, err := k.MarshalText()
			require.NoError(t, err)

			var got Kind
			require.NoError(t, got.UnmarshalText(b))
			assert.Equal(t, k, got)
		}
	})

	t.Run("text matches settled events", func(t *testing.T) {
		var settled string
		hook := events.HookFunc(func(_ context.Context, ev events.Settled) { settled = ev.Kind })
		Sync(func() (*int, error) { return nil, nil }, Handlers[*int]{}, WithObserver(hook))

		var got Kind
		require.NoError(t, got.UnmarshalText([]byte(settled)))
		assert.Equal(t, KindNull, got)
	})

	t.Run("json map keys", func(t *testing.T) {
		b, err := json.Marshal(map[Kind]int{KindSuccess: 2, KindTimeout: 1})
		require.NoError(t, err)
		assert.JSONEq(t, `{"success":2,"timeout":1}`, string(b))

		var back map[Kind]int
		require.NoError(t, json.Unmarshal(b, &back))
		assert.Equal(t, 2, back[KindSuccess])
		assert.Equal(t, 1, back[KindTimeout])
	})

	t.Run("text errors", func(t *testing.T) {
		_, err := KindUnknown.MarshalText()
		assert.Error(t, err)

		var k Kind
		assert.Error(t, k.UnmarshalText([]byte("maybe")))
	})
}

func TestClassify(t *testing.T) {
	var (
		nilPtr   *int
		nilSlice []string
		nilMap   map[string]int
	)
	n := 7

	tests := []struct {
		name  string
		value any
		err   error
		want  Kind
	}{
		{"int", 100, nil, KindSuccess},
		{"zero int", 0, nil, KindSuccess},
		{"string", "x", nil, KindSuccess},
		{"empty string", "", nil, KindSuccess},
		{"struct", struct{ Name string }{"a"}, nil, KindSuccess},
		{"pointer", &n, nil, KindSuccess},
		{"untyped nil", nil, nil, KindNull},
		{"nil pointer", nilPtr, nil, KindNull},
		{"non-empty slice", []int{1, 2, 3}, nil, KindEmpty},
		{"empty slice", []int{}, nil, KindEmpty},
		{"nil slice", nilSlice, nil, KindEmpty},
		{"array", [3]int{1, 2, 3}, nil, KindEmpty},
		{"non-empty map", map[string]int{"a": 1}, nil, KindEmpty},
		{"nil map", nilMap, nil, KindEmpty},
		{"error", nil, errors.New("boom"), KindError},
		{"error with value", 100, errors.New("boom"), KindError},
		{"canceled", nil, context.Canceled, KindError},
		{"timeout sentinel", nil, ErrTimeout, KindTimeout},
		{"wrapped timeout sentinel", nil, fmt.Errorf("fetch: %w", ErrTimeout), KindTimeout},
		{"deadline exceeded", nil, context.DeadlineExceeded, KindTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Classify[any](tt.value, tt.err)
			assert.Equal(t, tt.want, o.Kind)

			switch o.Kind {
			case KindSuccess:
				assert.Equal(t, tt.value, o.Value)
			case KindError:
				assert.Same(t, tt.err, o.Cause)
				assert.NotEmpty(t, o.Trace)
			default:
				assert.Nil(t, o.Value)
				assert.Nil(t, o.Cause)
			}
		})
	}
}

func TestClassifyTrace(t *testing.T) {
	t.Run("uses the stack carried by the error", func(t *testing.T) {
		err := pkgerrors.New("boom")
		wrapped := fmt.Errorf("load: %w", err)

		o := Classify(0, wrapped)
		require.Equal(t, KindError, o.Kind)
		assert.Equal(t, err.(stackTracer).StackTrace(), o.Trace)
	})

	t.Run("captures a stack for plain errors", func(t *testing.T) {
		o := Classify(0, errors.New("boom"))
		require.Equal(t, KindError, o.Kind)
		assert.Contains(t, fmt.Sprintf("%+v", o.Trace), "TestClassifyTrace")
	})
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "success(100)", Success(100).String())
	assert.Equal(t, "error(boom)", Failure[int](errors.New("boom"), nil).String())
	assert.Equal(t, "timeout", Timeout[int]().String())
	assert.Equal(t, "null", Null[int]().String())
	assert.Equal(t, "empty", Empty[int]().String())
}

func TestHandlersDispatch(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name    string
		outcome Outcome[string]
		want    []string
	}{
		{"timeout", Timeout[string](), []string{"timeout"}},
		{"error", Failure[string](boom, nil), []string{"error"}},
		{"null", Null[string](), []string{"null"}},
		{"empty", Empty[string](), []string{"empty"}},
		{"success", Success("x"), []string{"success"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder[string]{}
			assert.True(t, rec.handlers().Dispatch(tt.outcome))
			assert.Equal(t, tt.want, rec.Calls())
		})

		t.Run(tt.name+" without handler", func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, Handlers[string]{}.Dispatch(tt.outcome))
			})
		})
	}

	t.Run("unknown kind", func(t *testing.T) {
		rec := &recorder[string]{}
		assert.False(t, rec.handlers().Dispatch(Outcome[string]{}))
		assert.Empty(t, rec.Calls())
	})

	t.Run("payloads", func(t *testing.T) {
		rec := &recorder[string]{}
		h := rec.handlers()
		h.Dispatch(Success("x"))
		h.Dispatch(Failure[string](boom, Trace{}))
		assert.Equal(t, []string{"x"}, rec.Values())
		assert.Equal(t, []error{boom}, rec.Causes())
	})
}
