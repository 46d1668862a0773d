package bridge_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartolsthoorn/gocopt/internal/bridge"
	"github.com/bartolsthoorn/gocopt/internal/native"
)

func TestLog(t *testing.T) {
	tests := map[string]struct {
		msg       []byte
		fn        func(got *[]string) func(string)
		expMsgs   []string
		expPanics int
	}{
		"A valid message should reach the closure.": {
			msg: []byte("Iter 1  obj 3.5"),
			fn: func(got *[]string) func(string) {
				return func(s string) { *got = append(*got, s) }
			},
			expMsgs: []string{"Iter 1  obj 3.5"},
		},

		"An invalid UTF-8 message should be dropped.": {
			msg: []byte{0xff, 0xfe, 'x'},
			fn: func(got *[]string) func(string) {
				return func(s string) { *got = append(*got, s) }
			},
		},

		"A panicking closure should be contained and reported.": {
			msg: []byte("boom"),
			fn: func(got *[]string) func(string) {
				return func(s string) { panic("closure failed") }
			},
			expPanics: 1,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			var got []string
			panics := 0
			h := bridge.RegisterLog(test.fn(&got), func(any) { panics++ })
			defer h.Release()

			assert.NotPanics(func() { bridge.Log(h.Userdata(), test.msg) })
			assert.Equal(test.expMsgs, got)
			assert.Equal(test.expPanics, panics)
		})
	}
}

func TestTerminate(t *testing.T) {
	tests := map[string]struct {
		fn           func() bool
		expRet       int32
		expInterrupt bool
		expPanic     bool
	}{
		"Returning false should continue.": {
			fn:     func() bool { return false },
			expRet: native.TerminateContinue,
		},

		"Returning true should interrupt and stop.": {
			fn:           func() bool { return true },
			expRet:       native.TerminateStop,
			expInterrupt: true,
		},

		"A panicking predicate should continue without interrupting.": {
			fn:       func() bool { panic("nope") },
			expRet:   native.TerminateContinue,
			expPanic: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			interrupted := false
			panicked := false
			h := bridge.RegisterTerminate(test.fn, func(any) { panicked = true })
			defer h.Release()

			ret := bridge.Terminate(h.Userdata(), func() { interrupted = true })
			assert.Equal(test.expRet, ret)
			assert.Equal(test.expInterrupt, interrupted)
			assert.Equal(test.expPanic, panicked)
		})
	}
}

func TestUnknownHandle(t *testing.T) {
	assert := assert.New(t)

	h := bridge.RegisterTerminate(func() bool { return true }, nil)
	h.Release()
	h.Release()

	called := false
	assert.Equal(native.TerminateContinue, bridge.Terminate(h.Userdata(), func() { called = true }))
	assert.False(called)
	assert.Equal(native.TerminateContinue, bridge.Terminate(0, nil))
	assert.NotPanics(func() { bridge.Log(0, []byte("x")) })
}

func TestWrongKind(t *testing.T) {
	// A log handle passed to the terminate trampoline must not be misused.
	h := bridge.RegisterLog(func(string) {}, nil)
	defer h.Release()

	assert.Equal(t, native.TerminateContinue, bridge.Terminate(h.Userdata(), nil))
}

func TestConcurrentDispatch(t *testing.T) {
	require := require.New(t)

	var mu sync.Mutex
	count := 0
	h := bridge.RegisterLog(func(string) {
		mu.Lock()
		count++
		mu.Unlock()
	}, nil)
	defer h.Release()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				bridge.Log(h.Userdata(), []byte("line"))
			}
		}()
	}
	wg.Wait()

	require.Equal(16*50, count)
}

func TestReentrantRegistration(t *testing.T) {
	assert := assert.New(t)

	var inner bridge.Handle
	h := bridge.RegisterLog(func(string) {
		// Registering from inside a callback must not deadlock.
		inner = bridge.RegisterLog(func(string) {}, nil)
	}, nil)
	defer h.Release()

	bridge.Log(h.Userdata(), []byte("x"))
	assert.NotZero(inner)
	inner.Release()
}
