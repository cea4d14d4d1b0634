package outcome

import "fmt"

// Kind is the classification of a single dispatcher invocation.
// Exactly one Kind applies per call.
type Kind int

const (
	KindUnknown Kind = iota
	KindTimeout
	KindError
	KindNull
	KindEmpty
	KindSuccess
)

// Kinds lists every valid Kind in declaration order.
var Kinds = []Kind{KindTimeout, KindError, KindNull, KindEmpty, KindSuccess}

func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindError:
		return "error"
	case KindNull:
		return "null"
	case KindEmpty:
		return "empty"
	case KindSuccess:
		return "success"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Valid reports whether k is one of the five outcome kinds.
func (k Kind) Valid() bool {
	return k >= KindTimeout && k <= KindSuccess
}

// MarshalText encodes the kind by name, the same text Settled events carry,
// so a Kind can be used directly as a JSON field or map key.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid outcome kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText parses a kind name produced by MarshalText.
func (k *Kind) UnmarshalText(b []byte) error {
	for _, kk := range Kinds {
		if kk.String() == string(b) {
			*k = kk
			return nil
		}
	}
	return fmt.Errorf("unknown outcome kind %q", string(b))
}

// Outcome is the tagged result of classifying one operation.
// Value is only meaningful for KindSuccess, Cause and Trace only for KindError.
type Outcome[T any] struct {
	Kind  Kind
	Value T
	Cause error
	Trace Trace
}

func Timeout[T any]() Outcome[T] {
	return Outcome[T]{Kind: KindTimeout}
}

func Failure[T any](cause error, trace Trace) Outcome[T] {
	return Outcome[T]{Kind: KindError, Cause: cause, Trace: trace}
}

func Null[T any]() Outcome[T] {
	return Outcome[T]{Kind: KindNull}
}

func Empty[T any]() Outcome[T] {
	return Outcome[T]{Kind: KindEmpty}
}

func Success[T any](v T) Outcome[T] {
	return Outcome[T]{Kind: KindSuccess, Value: v}
}

func (o Outcome[T]) String() string {
	switch o.Kind {
	case KindSuccess:
		return fmt.Sprintf("success(%v)", o.Value)
	case KindError:
		return fmt.Sprintf("error(%v)", o.Cause)
	default:
		return o.Kind.String()
	}
}
