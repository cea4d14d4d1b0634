package reflectx

import "reflect"

// IsList reports whether v is an ordered sequence: a slice or an array.
// The result depends only on the dynamic type of v, not on its length.
func IsList(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// IsMap reports whether v is a map, regardless of how many entries it holds.
func IsMap(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Map
}

// IsContainer reports whether v is list-like or map-like.
func IsContainer(v any) bool {
	return IsList(v) || IsMap(v)
}

// IsNil reports whether v is the absence value: an untyped nil or a nil
// pointer, interface, channel, function, slice or map.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	val := reflect.ValueOf(v)
	switch val.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Chan, reflect.Func, reflect.Slice, reflect.Map, reflect.UnsafePointer:
		return val.IsNil()
	default:
		return false
	}
}
