package copt

import (
	"context"
	"errors"

	"github.com/bartolsthoorn/gocopt/internal/bridge"
	"github.com/bartolsthoorn/gocopt/internal/native"
)

// Optimize solves the model.
func (m *Model) Optimize() error {
	return m.optimize("Optimize", false, nil, nil)
}

// OptimizeLp solves the LP relaxation of the model.
func (m *Model) OptimizeLp() error {
	return m.optimize("OptimizeLp", true, nil, nil)
}

// OptimizeWithLogCallback solves the model and calls fn with every log line
// the solver emits. Lines that are not valid UTF-8 are dropped.
//
// fn runs on a solver thread and must not call methods of the model other
// than Terminate. The callback is uninstalled before OptimizeWithLogCallback
// returns.
func (m *Model) OptimizeWithLogCallback(fn func(msg string)) error {
	return m.optimize("OptimizeWithLogCallback", false, fn, nil)
}

// OptimizeWithTerminateCallback solves the model and polls fn during the
// search. The solve stops as soon as fn returns true. A panic in fn is logged
// and treated as false.
func (m *Model) OptimizeWithTerminateCallback(fn func() bool) error {
	return m.optimize("OptimizeWithTerminateCallback", false, nil, fn)
}

// OptimizeWithCallbacks combines OptimizeWithLogCallback and
// OptimizeWithTerminateCallback. Either callback may be nil.
func (m *Model) OptimizeWithCallbacks(logFn func(msg string), terminate func() bool) error {
	return m.optimize("OptimizeWithCallbacks", false, logFn, terminate)
}

// OptimizeContext solves the model and interrupts the solve when ctx is done,
// in which case it returns ctx.Err().
func (m *Model) OptimizeContext(ctx context.Context) error {
	return m.run(ctx, "OptimizeContext", false, nil, nil)
}

func (m *Model) run(ctx context.Context, op string, lpOnly bool, logFn func(string), terminate func() bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	// Terminate may already be running when the solve returns; wait for it so
	// the caller can close the model right away.
	done := make(chan struct{})
	stop := context.AfterFunc(ctx, func() {
		defer close(done)
		m.Terminate()
	})
	defer func() {
		if !stop() {
			<-done
		}
	}()

	if err := m.optimize(op, lpOnly, logFn, terminate); err != nil {
		return err
	}
	return ctx.Err()
}

func (m *Model) optimize(op string, lpOnly bool, logFn func(string), terminate func() bool) (err error) {
	prob, err := m.handle(op)
	if err != nil {
		return err
	}

	if logFn != nil {
		h := bridge.RegisterLog(logFn, m.panicHandler("log"))
		if err := newError(op, m.api.SetLogCallback(prob, h.Userdata())); err != nil {
			h.Release()
			return err
		}
		defer func() {
			err = errors.Join(err, newError(op, m.api.SetLogCallback(prob, 0)))
			h.Release()
		}()
	}
	if terminate != nil {
		h := bridge.RegisterTerminate(terminate, m.panicHandler("terminate"))
		if err := newError(op, m.api.SetCallback(prob, native.ContextMIPNode, h.Userdata())); err != nil {
			h.Release()
			return err
		}
		defer func() {
			err = errors.Join(err, newError(op, m.api.SetCallback(prob, native.ContextMIPNode, 0)))
			h.Release()
		}()
	}

	solve := m.api.Solve
	if lpOnly {
		solve = m.api.SolveLp
	}
	m.lastLp = lpOnly
	m.logger.Debugf("%s: solving %d variables and %d constraints", op, m.numVars, m.numConstrs)
	if err := newError(op, solve(prob)); err != nil {
		m.logger.Errorf("%s: %s", op, err)
		return err
	}
	return nil
}

func (m *Model) panicHandler(kind string) bridge.PanicHandler {
	return func(r any) {
		m.logger.Warningf("%s callback panicked: %v", kind, r)
	}
}
