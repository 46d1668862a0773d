// Package bridge carries Go closures across the native callback boundary.
//
// Native code only sees an opaque integer (the user data of a callback
// registration). The registry maps that integer back to the closure when the
// trampoline fires. Closures are called outside of the registry lock so they may
// register, release or call back into the solver.
package bridge

import (
	"sync"
	"unicode/utf8"

	"github.com/bartolsthoorn/gocopt/internal/native"
)

// Handle is an opaque reference to a registered closure that can be passed to C.
type Handle uintptr

var (
	mu   sync.Mutex
	next Handle = 1
	reg         = map[Handle]any{}
)

// PanicHandler receives values recovered from a panicking closure.
type PanicHandler func(recovered any)

type logEntry struct {
	fn      func(msg string)
	onPanic PanicHandler
}

type terminateEntry struct {
	fn      func() bool
	onPanic PanicHandler
}

func put(v any) Handle {
	mu.Lock()
	defer mu.Unlock()
	h := next
	next++
	reg[h] = v
	return h
}

func get(userdata uintptr) (any, bool) {
	if userdata == 0 {
		return nil, false
	}
	mu.Lock()
	v, ok := reg[Handle(userdata)]
	mu.Unlock()
	return v, ok
}

// RegisterLog registers a log closure. onPanic may be nil.
func RegisterLog(fn func(msg string), onPanic PanicHandler) Handle {
	return put(logEntry{fn: fn, onPanic: onPanic})
}

// RegisterTerminate registers a termination predicate. onPanic may be nil.
func RegisterTerminate(fn func() bool, onPanic PanicHandler) Handle {
	return put(terminateEntry{fn: fn, onPanic: onPanic})
}

// Userdata returns the value handed to native code for this handle.
func (h Handle) Userdata() uintptr { return uintptr(h) }

// Release removes the handle from the registry. Releasing twice is harmless.
func (h Handle) Release() {
	mu.Lock()
	delete(reg, h)
	mu.Unlock()
}

// Registered returns the number of live handles.
func Registered() int {
	mu.Lock()
	defer mu.Unlock()
	return len(reg)
}

// Log dispatches a native log line. Messages that are not valid UTF-8 and
// unknown handles are dropped.
func Log(userdata uintptr, msg []byte) {
	v, ok := get(userdata)
	if !ok {
		return
	}
	e, ok := v.(logEntry)
	if !ok || e.fn == nil {
		return
	}
	if !utf8.Valid(msg) {
		return
	}

	defer recoverTo(e.onPanic)
	e.fn(string(msg))
}

// Terminate asks the registered predicate whether the solve should stop. When
// it says so interrupt is called and TerminateStop is returned. Unknown
// handles and panicking predicates never stop the solve.
func Terminate(userdata uintptr, interrupt func()) (ret int32) {
	ret = native.TerminateContinue

	v, ok := get(userdata)
	if !ok {
		return ret
	}
	e, ok := v.(terminateEntry)
	if !ok || e.fn == nil {
		return ret
	}

	defer func() {
		if r := recover(); r != nil {
			ret = native.TerminateContinue
			report(e.onPanic, r)
		}
	}()
	if !e.fn() {
		return native.TerminateContinue
	}
	if interrupt != nil {
		interrupt()
	}
	return native.TerminateStop
}

func recoverTo(h PanicHandler) {
	if r := recover(); r != nil {
		report(h, r)
	}
}

func report(h PanicHandler, r any) {
	if h == nil {
		return
	}
	// A failing handler must not unwind into C either.
	defer func() { _ = recover() }()
	h(r)
}
