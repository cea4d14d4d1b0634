package events

import (
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Mode names the entry point that produced an event.
type Mode string

const (
	ModeSync  Mode = "sync"
	ModeAsync Mode = "async"
)

// Settled records a single finished dispatcher call.
type Settled struct {
	CallID    uuid.UUID       `json:"call_id"`
	Mode      Mode            `json:"mode"`
	Operation string          `json:"operation,omitempty"`
	Kind      string          `json:"kind"`
	Error     string          `json:"error,omitempty"`
	Handled   bool            `json:"handled"`
	Timeout   time.Duration   `json:"timeout,omitempty"`
	Started   strfmt.DateTime `json:"started"`
	Finished  strfmt.DateTime `json:"finished"`
}

// Elapsed is the wall time between the start of the call and the end of dispatch.
func (s Settled) Elapsed() time.Duration {
	return time.Time(s.Finished).Sub(time.Time(s.Started))
}

// ToJSON encodes a Settled event.
func ToJSON(ev Settled) ([]byte, error) {
	return json.Marshal(ev)
}

// FromJSON decodes a Settled event and rejects records without a call id or kind.
func FromJSON(data []byte) (Settled, error) {
	var ev Settled
	if err := json.Unmarshal(data, &ev); err != nil {
		return Settled{}, fmt.Errorf("failed to unmarshal settled event: %w", err)
	}
	if ev.CallID == uuid.Nil {
		return Settled{}, fmt.Errorf("settled event is missing call_id")
	}
	if ev.Kind == "" {
		return Settled{}, fmt.Errorf("settled event is missing kind")
	}
	return ev, nil
}
