package copt

import (
	"context"
	"errors"
	"sort"
)

// SolveOption configures a call to Solve.
type SolveOption func(*solveConfig)

type solveConfig struct {
	profile      *Profile
	logging      *bool
	timeLimit    *float64
	relGap       *float64
	absGap       *float64
	threads      *int
	lpOnly       bool
	intParams    map[IntParam]int
	doubleParams map[DoubleParam]float64
	logFn        func(string)
	terminate    func() bool
	mipStarts    [][]VarValue
}

func defaultSolveConfig() *solveConfig {
	return &solveConfig{
		intParams:    make(map[IntParam]int),
		doubleParams: make(map[DoubleParam]float64),
	}
}

// apply sets the configured parameters on m: the profile first, then the
// typed options, then the raw parameters.
func (c *solveConfig) apply(m *Model) error {
	if c.profile != nil {
		if err := c.profile.Apply(m); err != nil {
			return err
		}
	}
	if c.logging != nil {
		v := 0
		if *c.logging {
			v = 1
		}
		if err := m.SetIntParam(ParamLogging, v); err != nil {
			return err
		}
	}
	if c.timeLimit != nil {
		if err := m.SetDoubleParam(ParamTimeLimit, *c.timeLimit); err != nil {
			return err
		}
	}
	if c.relGap != nil {
		if err := m.SetDoubleParam(ParamRelGap, *c.relGap); err != nil {
			return err
		}
	}
	if c.absGap != nil {
		if err := m.SetDoubleParam(ParamAbsGap, *c.absGap); err != nil {
			return err
		}
	}
	if c.threads != nil {
		if err := m.SetIntParam(ParamThreads, *c.threads); err != nil {
			return err
		}
	}

	for _, p := range sortedKeys(c.intParams) {
		if err := m.SetIntParam(p, c.intParams[p]); err != nil {
			return err
		}
	}
	for _, p := range sortedKeys(c.doubleParams) {
		if err := m.SetDoubleParam(p, c.doubleParams[p]); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys[K ~int, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// WithProfile applies a parameter profile before any other option.
func WithProfile(p *Profile) SolveOption {
	return func(c *solveConfig) {
		c.profile = p
	}
}

// WithLogging enables or disables solver logging.
func WithLogging(enabled bool) SolveOption {
	return func(c *solveConfig) {
		c.logging = &enabled
	}
}

// WithTimeLimit sets the time limit in seconds.
func WithTimeLimit(seconds float64) SolveOption {
	return func(c *solveConfig) {
		c.timeLimit = &seconds
	}
}

// WithRelGap sets the relative MIP gap tolerance.
func WithRelGap(gap float64) SolveOption {
	return func(c *solveConfig) {
		c.relGap = &gap
	}
}

// WithAbsGap sets the absolute MIP gap tolerance.
func WithAbsGap(gap float64) SolveOption {
	return func(c *solveConfig) {
		c.absGap = &gap
	}
}

// WithThreads sets the number of threads to use.
func WithThreads(n int) SolveOption {
	return func(c *solveConfig) {
		c.threads = &n
	}
}

// WithLpOnly solves only the LP relaxation.
func WithLpOnly() SolveOption {
	return func(c *solveConfig) {
		c.lpOnly = true
	}
}

// WithIntParam sets an integer parameter.
func WithIntParam(p IntParam, value int) SolveOption {
	return func(c *solveConfig) {
		c.intParams[p] = value
	}
}

// WithDoubleParam sets a double parameter.
func WithDoubleParam(p DoubleParam, value float64) SolveOption {
	return func(c *solveConfig) {
		c.doubleParams[p] = value
	}
}

// WithLogCallback receives every solver log line, see OptimizeWithLogCallback.
func WithLogCallback(fn func(msg string)) SolveOption {
	return func(c *solveConfig) {
		c.logFn = fn
	}
}

// WithTerminateCallback stops the solve once fn returns true, see
// OptimizeWithTerminateCallback.
func WithTerminateCallback(fn func() bool) SolveOption {
	return func(c *solveConfig) {
		c.terminate = fn
	}
}

// WithMipStart adds a starting point for the MIP search. Every call adds a
// separate start; variables left out are chosen by the solver.
func WithMipStart(start ...VarValue) SolveOption {
	return func(c *solveConfig) {
		c.mipStarts = append(c.mipStarts, start)
	}
}

// Solve applies opts, solves the model and collects the solution.
//
// Options can be combined freely:
//
//	solution, err := model.Solve(ctx,
//		copt.WithTimeLimit(60),
//		copt.WithRelGap(0.01),
//		copt.WithLogging(false),
//	)
//
// When ctx is cancelled during the solve, Solve returns the solution gathered
// so far together with ctx.Err().
func (m *Model) Solve(ctx context.Context, opts ...SolveOption) (*Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := defaultSolveConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.apply(m); err != nil {
		return nil, err
	}
	for _, start := range cfg.mipStarts {
		if err := m.AddMipStart(start); err != nil {
			return nil, err
		}
	}

	err := m.run(ctx, "Solve", cfg.lpOnly, cfg.logFn, cfg.terminate)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return nil, err
	}
	sol, serr := m.solution()
	if serr != nil {
		return nil, serr
	}
	return sol, err
}
