package outcome

import "github.com/casualjim/outcome/pkg/reflectx"

// Classify maps a produced value or a raised failure to exactly one Outcome.
//
// Failures are checked first: timeout-kind failures (ErrTimeout or
// context.DeadlineExceeded anywhere in the chain) become KindTimeout, anything else
// KindError. Values are then checked by category: any slice, array or map is
// KindEmpty whatever its length, the absence value is KindNull, everything else
// KindSuccess.
func Classify[T any](v T, err error) Outcome[T] {
	if err != nil {
		if isTimeout(err) {
			return Timeout[T]()
		}
		return Failure[T](err, traceOf(err))
	}
	return classifyValue(v)
}

// classifyValue applies the value rules only. A non-empty collection is still
// reported as empty.
func classifyValue[T any](v T) Outcome[T] {
	switch {
	case reflectx.IsContainer(v):
		return Empty[T]()
	case reflectx.IsNil(v):
		return Null[T]()
	default:
		return Success(v)
	}
}
