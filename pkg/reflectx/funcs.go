package reflectx

import (
	"reflect"
	"runtime"
	"strings"
)

func IsFunction(fn any) bool {
	if fn == nil {
		return false
	}
	return reflect.TypeOf(fn).Kind() == reflect.Func
}

// FunctionName returns a short, human readable name for fn.
//
// Package paths are dropped, method values lose their "-fm" suffix and closures are
// reported relative to the function that declared them, e.g. "loadUser.func1".
// Nil functions and non-function values yield an empty string.
func FunctionName(fn any) string {
	if !IsFunction(fn) {
		return ""
	}

	val := reflect.ValueOf(fn)
	if val.IsNil() {
		return ""
	}

	rf := runtime.FuncForPC(val.Pointer())
	if rf == nil {
		return val.Type().String()
	}

	name := rf.Name()
	if slash := strings.LastIndex(name, "/"); slash >= 0 {
		name = name[slash+1:]
	}
	// drop the package name
	if dot := strings.Index(name, "."); dot >= 0 {
		name = name[dot+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}
