package stdx

// Must0 panics if err is not nil. Use it for wiring that cannot fail in a
// correctly built program, such as binding flags that are known to exist.
func Must0(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 returns v, or panics if err is not nil.
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
