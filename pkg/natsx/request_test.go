package natsx

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/casualjim/outcome"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	v, err := JSON[map[string]int]([]byte(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 1}, v)

	_, err = JSON[int]([]byte(`nope`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode reply")
}

func TestRequestWithoutConnection(t *testing.T) {
	_, err := Request[int](nil, "x", nil, nil).Get(context.Background())
	assert.ErrorIs(t, err, nats.ErrInvalidConnection)
}

func connect(t *testing.T) *nats.Conn {
	t.Helper()
	nc, err := NewClient()
	if err != nil {
		t.Skipf("no NATS server available: %v", err)
	}
	t.Cleanup(nc.Close)
	return nc
}

func TestRequest(t *testing.T) {
	nc := connect(t)
	subject := "outcome.natsx." + uuid.NewString()

	sub, err := nc.Subscribe(subject, func(m *nats.Msg) {
		_ = m.Respond([]byte(`{"answer":42}`))
	})
	require.NoError(t, err)
	defer func() { _ = sub.Unsubscribe() }()

	type reply struct {
		Answer int `json:"answer"`
	}

	var got reply
	outcome.Async(context.Background(), Request[reply](nc, subject, []byte(`{}`), nil), outcome.Handlers[reply]{
		OnSuccess: func(r reply) { got = r },
	}, outcome.WithTimeout(2*time.Second))
	assert.Equal(t, 42, got.Answer)
}

func TestRequestNoResponders(t *testing.T) {
	nc := connect(t)

	var cause error
	outcome.Async(context.Background(), Request[int](nc, "outcome.natsx.void."+uuid.NewString(), nil, nil), outcome.Handlers[int]{
		OnError: func(err error, _ outcome.Trace) { cause = err },
	}, outcome.WithTimeout(2*time.Second))
	require.Error(t, cause)
	assert.True(t, errors.Is(cause, nats.ErrNoResponders))
}
