package outcome

// Handlers is the set of outcome callbacks for one call. Every field is optional;
// a nil handler for the selected outcome means nothing observable happens.
//
// OnTimeout and OnWaiting are only used by the asynchronous entry points.
type Handlers[T any] struct {
	OnTimeout func()
	OnError   func(cause error, trace Trace)
	OnWaiting func()
	OnNull    func()
	OnEmpty   func()
	OnSuccess func(data T)
}

// Dispatch invokes the single handler that matches o and reports whether one was
// present.
func (h Handlers[T]) Dispatch(o Outcome[T]) bool {
	switch o.Kind {
	case KindTimeout:
		return call(h.OnTimeout)
	case KindError:
		if h.OnError == nil {
			return false
		}
		h.OnError(o.Cause, o.Trace)
	case KindNull:
		return call(h.OnNull)
	case KindEmpty:
		return call(h.OnEmpty)
	case KindSuccess:
		if h.OnSuccess == nil {
			return false
		}
		h.OnSuccess(o.Value)
	default:
		return false
	}
	return true
}

func (h Handlers[T]) waiting() {
	call(h.OnWaiting)
}

func call(fn func()) bool {
	if fn == nil {
		return false
	}
	fn()
	return true
}
