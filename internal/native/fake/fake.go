// Package fake provides an in-memory native.API used by tests and the CLI
// --fake mode.
//
// It keeps real bookkeeping for environments, problems, parameters and
// attributes, and runs a trivial "solve" on a worker goroutine so log and
// terminate callbacks arrive from a goroutine other than the caller's, as they
// do with the real library. It does not optimize anything.
package fake

import (
	"math"
	"sort"
	"sync"
	"time"
	"unsafe"

	"github.com/bartolsthoorn/gocopt/internal/native"
)

// Range describes the default and the accepted interval of a parameter.
type Range[T int32 | float64] struct {
	Def T
	Min T
	Max T
}

// Config is the fake backend configuration.
type Config struct {
	// IntParams, DoubleParams, IntAttrs and DoubleAttrs are the accepted
	// names. A nil list accepts any name.
	IntParams    []string
	DoubleParams []string
	IntAttrs     []string
	DoubleAttrs  []string

	// IntRanges and DoubleRanges override the generic parameter ranges.
	IntRanges    map[string]Range[int32]
	DoubleRanges map[string]Range[float64]

	// Iterations is the number of simulated solver iterations.
	Iterations int
	// IterationDelay is slept on every iteration.
	IterationDelay time.Duration
	// EmitInvalidUTF8 makes every solve log one line that is not valid UTF-8.
	EmitInvalidUTF8 bool

	Banner string
	// CreateEnvRetcode, when set, makes env creation fail with it.
	CreateEnvRetcode native.Retcode
	// SolveRetcode, when set, makes Solve and SolveLp fail with it.
	SolveRetcode native.Retcode
	// Status, when set, is used as the solve outcome instead of the computed one.
	Status int32
}

func (c *Config) defaults() {
	if c.Iterations <= 0 {
		c.Iterations = 5
	}
	if c.Banner == "" {
		c.Banner = "Cardinal Optimizer v7.2.0 (fake backend)"
	}
	if c.IntRanges == nil {
		c.IntRanges = map[string]Range[int32]{}
	}
	for k, v := range defaultIntRanges {
		if _, ok := c.IntRanges[k]; !ok {
			c.IntRanges[k] = v
		}
	}
	if c.DoubleRanges == nil {
		c.DoubleRanges = map[string]Range[float64]{}
	}
	for k, v := range defaultDoubleRanges {
		if _, ok := c.DoubleRanges[k]; !ok {
			c.DoubleRanges[k] = v
		}
	}
}

var (
	genericIntRange    = Range[int32]{Def: 0, Min: -1, Max: math.MaxInt32}
	genericDoubleRange = Range[float64]{Def: 0, Min: 0, Max: native.Infinity}

	defaultIntRanges = map[string]Range[int32]{
		"Logging":      {Def: 1, Min: 0, Max: 1},
		"LogToConsole": {Def: 1, Min: 0, Max: 1},
		"Presolve":     {Def: -1, Min: -1, Max: 5},
		"Threads":      {Def: -1, Min: -1, Max: 128},
		"NodeLimit":    {Def: -1, Min: -1, Max: math.MaxInt32},
		"LpMethod":     {Def: -1, Min: -1, Max: 6},
		"HeurLevel":    {Def: -1, Min: -1, Max: 3},
	}
	defaultDoubleRanges = map[string]Range[float64]{
		"TimeLimit": {Def: 1e20, Min: 0, Max: 1e20},
		"RelGap":    {Def: 1e-4, Min: 0, Max: native.Infinity},
		"AbsGap":    {Def: 1e-6, Min: 0, Max: native.Infinity},
		"FeasTol":   {Def: 1e-6, Min: 1e-9, Max: 1e-4},
		"IntTol":    {Def: 1e-6, Min: 1e-9, Max: 1e-1},
	}
)

type envConfig struct {
	values map[string]string
}

type env struct {
	licDir string
	values map[string]string
}

// API is the fake native backend. It is safe for concurrent use.
type API struct {
	cfg Config

	mu      sync.Mutex
	configs map[*envConfig]struct{}
	envs    map[*env]struct{}
	probs   map[*problem]struct{}
	calls   map[string]int
	seq     int
}

// New returns a fake backend.
func New(cfg Config) *API {
	cfg.defaults()
	return &API{
		cfg:     cfg,
		configs: map[*envConfig]struct{}{},
		envs:    map[*env]struct{}{},
		probs:   map[*problem]struct{}{},
		calls:   map[string]int{},
	}
}

var _ native.API = (*API)(nil)

// Calls returns how many times the named API method has been called.
func (a *API) Calls(method string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls[method]
}

// LiveEnvs returns the number of environments not yet deleted.
func (a *API) LiveEnvs() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.envs)
}

// LiveProblems returns the number of problems not yet deleted.
func (a *API) LiveProblems() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.probs)
}

// EnvSettings returns the settings and license directory an env was created with.
func (a *API) EnvSettings(e unsafe.Pointer) (licDir string, settings map[string]string, ok bool) {
	ev, ok := a.env(e)
	if !ok {
		return "", nil, false
	}
	out := make(map[string]string, len(ev.values))
	for k, v := range ev.values {
		out[k] = v
	}
	return ev.licDir, out, true
}

// Problem returns a snapshot of a live problem.
func (a *API) Problem(p unsafe.Pointer) (Problem, bool) {
	pr, ok := a.prob(p)
	if !ok {
		return Problem{}, false
	}
	pr.mu.Lock()
	defer pr.mu.Unlock()
	return pr.snapshot(), true
}

// Problems returns snapshots of the live problems in creation order.
func (a *API) Problems() []Problem {
	a.mu.Lock()
	live := make([]*problem, 0, len(a.probs))
	for pr := range a.probs {
		live = append(live, pr)
	}
	a.mu.Unlock()

	sort.Slice(live, func(i, j int) bool { return live[i].seq < live[j].seq })
	out := make([]Problem, len(live))
	for i, pr := range live {
		pr.mu.Lock()
		out[i] = pr.snapshot()
		pr.mu.Unlock()
	}
	return out
}

func (a *API) count(method string) {
	a.mu.Lock()
	a.calls[method]++
	a.mu.Unlock()
}

func (a *API) env(p unsafe.Pointer) (*env, bool) {
	e := (*env)(p)
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.envs[e]
	return e, ok
}

func (a *API) prob(p unsafe.Pointer) (*problem, bool) {
	pr := (*problem)(p)
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.probs[pr]
	return pr, ok
}

func (a *API) GetBanner() (string, native.Retcode) {
	a.count("GetBanner")
	return a.cfg.Banner, native.OK
}

func (a *API) GetRetcodeMsg(code native.Retcode) (string, native.Retcode) {
	a.count("GetRetcodeMsg")
	switch code {
	case native.OK:
		return "no error", native.OK
	case native.Memory:
		return "memory allocation failure", native.OK
	case native.File:
		return "file input or output failure", native.OK
	case native.Invalid:
		return "invalid data", native.OK
	case native.License:
		return "license validation failure", native.OK
	case native.Internal:
		return "internal error", native.OK
	case native.Thread:
		return "thread error", native.OK
	case native.Server:
		return "remote server error", native.OK
	case native.NonConvex:
		return "nonconvex problem", native.OK
	}
	return "", native.Invalid
}

func (a *API) CreateEnvConfig() (unsafe.Pointer, native.Retcode) {
	a.count("CreateEnvConfig")
	c := &envConfig{values: map[string]string{}}
	a.mu.Lock()
	a.configs[c] = struct{}{}
	a.mu.Unlock()
	return unsafe.Pointer(c), native.OK
}

func (a *API) SetEnvConfig(config unsafe.Pointer, name, value string) native.Retcode {
	a.count("SetEnvConfig")
	c := (*envConfig)(config)
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.configs[c]; !ok || name == "" {
		return native.Invalid
	}
	c.values[name] = value
	return native.OK
}

func (a *API) DeleteEnvConfig(config unsafe.Pointer) native.Retcode {
	a.count("DeleteEnvConfig")
	c := (*envConfig)(config)
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.configs[c]; !ok {
		return native.Invalid
	}
	delete(a.configs, c)
	return native.OK
}

func (a *API) newEnv(licDir string, values map[string]string) (unsafe.Pointer, native.Retcode) {
	if a.cfg.CreateEnvRetcode != native.OK {
		return nil, a.cfg.CreateEnvRetcode
	}
	e := &env{licDir: licDir, values: values}
	a.mu.Lock()
	a.envs[e] = struct{}{}
	a.mu.Unlock()
	return unsafe.Pointer(e), native.OK
}

func (a *API) CreateEnv() (unsafe.Pointer, native.Retcode) {
	a.count("CreateEnv")
	return a.newEnv("", map[string]string{})
}

func (a *API) CreateEnvWithPath(licDir string) (unsafe.Pointer, native.Retcode) {
	a.count("CreateEnvWithPath")
	return a.newEnv(licDir, map[string]string{})
}

func (a *API) CreateEnvWithConfig(config unsafe.Pointer) (unsafe.Pointer, native.Retcode) {
	a.count("CreateEnvWithConfig")
	c := (*envConfig)(config)
	a.mu.Lock()
	_, ok := a.configs[c]
	values := map[string]string{}
	if ok {
		for k, v := range c.values {
			values[k] = v
		}
	}
	a.mu.Unlock()
	if !ok {
		return nil, native.Invalid
	}
	return a.newEnv("", values)
}

func (a *API) DeleteEnv(e unsafe.Pointer) native.Retcode {
	a.count("DeleteEnv")
	ev := (*env)(e)
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.envs[ev]; !ok {
		return native.Invalid
	}
	delete(a.envs, ev)
	return native.OK
}

func (a *API) GetLicenseMsg(e unsafe.Pointer) (string, native.Retcode) {
	a.count("GetLicenseMsg")
	if _, ok := a.env(e); !ok {
		return "", native.Invalid
	}
	return "Fake license, no expiry", native.OK
}

func (a *API) CreateProb(e unsafe.Pointer) (unsafe.Pointer, native.Retcode) {
	a.count("CreateProb")
	if _, ok := a.env(e); !ok {
		return nil, native.Invalid
	}
	pr := newProblem()
	a.track(pr)
	return unsafe.Pointer(pr), native.OK
}

func (a *API) CreateCopy(src unsafe.Pointer) (unsafe.Pointer, native.Retcode) {
	a.count("CreateCopy")
	pr, ok := a.prob(src)
	if !ok {
		return nil, native.Invalid
	}
	pr.mu.Lock()
	cp := newProblem()
	cp.restore(pr.snapshot())
	for k, v := range pr.intParams {
		cp.intParams[k] = v
	}
	for k, v := range pr.dblParams {
		cp.dblParams[k] = v
	}
	pr.mu.Unlock()

	a.track(cp)
	return unsafe.Pointer(cp), native.OK
}

func (a *API) track(pr *problem) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.seq++
	pr.seq = a.seq
	a.probs[pr] = struct{}{}
}

func (a *API) DeleteProb(p unsafe.Pointer) native.Retcode {
	a.count("DeleteProb")
	pr := (*problem)(p)
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.probs[pr]; !ok {
		return native.Invalid
	}
	delete(a.probs, pr)
	return native.OK
}

// withProb runs fn under the problem lock after validating the handle.
func (a *API) withProb(method string, p unsafe.Pointer, fn func(pr *problem) native.Retcode) native.Retcode {
	a.count(method)
	pr, ok := a.prob(p)
	if !ok {
		return native.Invalid
	}
	pr.mu.Lock()
	defer pr.mu.Unlock()
	return fn(pr)
}

func validType(t byte) bool {
	return t == native.ColContinuous || t == native.ColBinary || t == native.ColInteger
}

func validSense(s byte) bool {
	switch s {
	case native.RowEqual, native.RowLess, native.RowGreater, native.RowRange, native.RowFree:
		return true
	}
	return false
}

func (a *API) AddCol(p unsafe.Pointer, obj float64, rows []int32, elems []float64, colType byte, lower, upper float64, name string) native.Retcode {
	return a.withProb("AddCol", p, func(pr *problem) native.Retcode {
		if len(rows) != len(elems) || !validType(colType) || lower > upper {
			return native.Invalid
		}
		for _, r := range rows {
			if r < 0 || int(r) >= len(pr.rows) {
				return native.Invalid
			}
		}
		if colType == native.ColBinary {
			lower, upper = math.Max(lower, 0), math.Min(upper, 1)
		}
		col := int32(len(pr.cols))
		pr.cols = append(pr.cols, Column{Name: name, Obj: obj, Type: colType, Lower: lower, Upper: upper})
		for i, r := range rows {
			pr.rows[r].setElem(col, elems[i])
		}
		pr.invalidate()
		return native.OK
	})
}

func (a *API) AddRow(p unsafe.Pointer, cols []int32, elems []float64, sense byte, bound, upper float64, name string) native.Retcode {
	return a.withProb("AddRow", p, func(pr *problem) native.Retcode {
		if len(cols) != len(elems) || !validSense(sense) {
			return native.Invalid
		}
		for _, c := range cols {
			if c < 0 || int(c) >= len(pr.cols) {
				return native.Invalid
			}
		}
		lo, up, ok := rowBounds(sense, bound, upper)
		if !ok {
			return native.Invalid
		}
		r := Row{Name: name, Sense: sense, Lower: lo, Upper: up}
		for i, c := range cols {
			r.setElem(c, elems[i])
		}
		pr.rows = append(pr.rows, r)
		pr.invalidate()
		return native.OK
	})
}

// rowBounds converts the native (sense, bound, upper) triple to an interval.
func rowBounds(sense byte, bound, upper float64) (float64, float64, bool) {
	switch sense {
	case native.RowEqual:
		return bound, bound, true
	case native.RowLess:
		return -native.Infinity, bound, true
	case native.RowGreater:
		return bound, native.Infinity, true
	case native.RowRange:
		return bound, upper, bound <= upper
	case native.RowFree:
		return -native.Infinity, native.Infinity, true
	}
	return 0, 0, false
}

func (a *API) SetObjSense(p unsafe.Pointer, sense int32) native.Retcode {
	return a.withProb("SetObjSense", p, func(pr *problem) native.Retcode {
		if sense != native.Minimize && sense != native.Maximize {
			return native.Invalid
		}
		pr.objSense = sense
		pr.invalidate()
		return native.OK
	})
}

func (a *API) SetObjConst(p unsafe.Pointer, constant float64) native.Retcode {
	return a.withProb("SetObjConst", p, func(pr *problem) native.Retcode {
		pr.objConst = constant
		pr.invalidate()
		return native.OK
	})
}

// setCols validates a column list and applies fn to every (column, index) pair.
func (pr *problem) setCols(list []int32, n int, fn func(col int32, i int) bool) native.Retcode {
	if len(list) != n {
		return native.Invalid
	}
	for _, c := range list {
		if c < 0 || int(c) >= len(pr.cols) {
			return native.Invalid
		}
	}
	for i, c := range list {
		if !fn(c, i) {
			return native.Invalid
		}
	}
	pr.invalidate()
	return native.OK
}

func (pr *problem) setRows(list []int32, n int, fn func(row int32, i int)) native.Retcode {
	if len(list) != n {
		return native.Invalid
	}
	for _, r := range list {
		if r < 0 || int(r) >= len(pr.rows) {
			return native.Invalid
		}
	}
	for i, r := range list {
		fn(r, i)
	}
	pr.invalidate()
	return native.OK
}

func (a *API) SetColObj(p unsafe.Pointer, list []int32, obj []float64) native.Retcode {
	return a.withProb("SetColObj", p, func(pr *problem) native.Retcode {
		return pr.setCols(list, len(obj), func(c int32, i int) bool {
			pr.cols[c].Obj = obj[i]
			return true
		})
	})
}

func (a *API) SetColType(p unsafe.Pointer, list []int32, types []byte) native.Retcode {
	return a.withProb("SetColType", p, func(pr *problem) native.Retcode {
		for _, t := range types {
			if !validType(t) {
				return native.Invalid
			}
		}
		return pr.setCols(list, len(types), func(c int32, i int) bool {
			pr.cols[c].Type = types[i]
			return true
		})
	})
}

func (a *API) SetColLower(p unsafe.Pointer, list []int32, lower []float64) native.Retcode {
	return a.withProb("SetColLower", p, func(pr *problem) native.Retcode {
		return pr.setCols(list, len(lower), func(c int32, i int) bool {
			pr.cols[c].Lower = lower[i]
			return true
		})
	})
}

func (a *API) SetColUpper(p unsafe.Pointer, list []int32, upper []float64) native.Retcode {
	return a.withProb("SetColUpper", p, func(pr *problem) native.Retcode {
		return pr.setCols(list, len(upper), func(c int32, i int) bool {
			pr.cols[c].Upper = upper[i]
			return true
		})
	})
}

func (a *API) SetRowLower(p unsafe.Pointer, list []int32, lower []float64) native.Retcode {
	return a.withProb("SetRowLower", p, func(pr *problem) native.Retcode {
		return pr.setRows(list, len(lower), func(r int32, i int) { pr.rows[r].Lower = lower[i] })
	})
}

func (a *API) SetRowUpper(p unsafe.Pointer, list []int32, upper []float64) native.Retcode {
	return a.withProb("SetRowUpper", p, func(pr *problem) native.Retcode {
		return pr.setRows(list, len(upper), func(r int32, i int) { pr.rows[r].Upper = upper[i] })
	})
}

func (a *API) AddMipStart(p unsafe.Pointer, list []int32, values []float64) native.Retcode {
	return a.withProb("AddMipStart", p, func(pr *problem) native.Retcode {
		if len(list) != len(values) {
			return native.Invalid
		}
		start := make(map[int32]float64, len(list))
		for i, c := range list {
			if c < 0 || int(c) >= len(pr.cols) {
				return native.Invalid
			}
			start[c] = values[i]
		}
		pr.mipStarts = append(pr.mipStarts, start)
		return native.OK
	})
}

func (a *API) Interrupt(p unsafe.Pointer) native.Retcode {
	a.count("Interrupt")
	pr, ok := a.prob(p)
	if !ok {
		return native.Invalid
	}
	pr.interrupted.Store(true)
	return native.OK
}

func (a *API) GetSolution(p unsafe.Pointer, values []float64) native.Retcode {
	return a.withProb("GetSolution", p, func(pr *problem) native.Retcode {
		if pr.result == nil || !pr.result.hasSol {
			return native.Invalid
		}
		copy(values, pr.result.values)
		return native.OK
	})
}

func (a *API) GetLpSolution(p unsafe.Pointer, values, slack, rowDual, redCost []float64) native.Retcode {
	return a.withProb("GetLpSolution", p, func(pr *problem) native.Retcode {
		res := pr.result
		if res == nil || !res.hasSol || res.mip {
			return native.Invalid
		}
		copy(values, res.values)
		copy(slack, res.activity)
		copy(rowDual, res.rowDual)
		copy(redCost, res.redCost)
		return native.OK
	})
}

func (a *API) GetBasis(p unsafe.Pointer, colBasis, rowBasis []int32) native.Retcode {
	return a.withProb("GetBasis", p, func(pr *problem) native.Retcode {
		res := pr.result
		if res == nil || !res.hasSol || res.mip {
			return native.Invalid
		}
		copy(colBasis, res.colBasis)
		copy(rowBasis, res.rowBasis)
		return native.OK
	})
}

func (a *API) GetPoolObjVal(p unsafe.Pointer, index int32) (float64, native.Retcode) {
	var obj float64
	code := a.withProb("GetPoolObjVal", p, func(pr *problem) native.Retcode {
		if pr.result == nil || index < 0 || int(index) >= len(pr.result.pool) {
			return native.Invalid
		}
		obj = pr.result.pool[index].obj
		return native.OK
	})
	return obj, code
}

func (a *API) GetPoolSolution(p unsafe.Pointer, index int32, list []int32, values []float64) native.Retcode {
	return a.withProb("GetPoolSolution", p, func(pr *problem) native.Retcode {
		if pr.result == nil || index < 0 || int(index) >= len(pr.result.pool) || len(list) != len(values) {
			return native.Invalid
		}
		sol := pr.result.pool[index].values
		for i, c := range list {
			if c < 0 || int(c) >= len(sol) {
				return native.Invalid
			}
			values[i] = sol[c]
		}
		return native.OK
	})
}

func known(names []string, name string) bool {
	if names == nil {
		return true
	}
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func (a *API) intRange(name string) Range[int32] {
	if r, ok := a.cfg.IntRanges[name]; ok {
		return r
	}
	return genericIntRange
}

func (a *API) doubleRange(name string) Range[float64] {
	if r, ok := a.cfg.DoubleRanges[name]; ok {
		return r
	}
	return genericDoubleRange
}

func (a *API) SetIntParam(p unsafe.Pointer, name string, value int32) native.Retcode {
	return a.withProb("SetIntParam", p, func(pr *problem) native.Retcode {
		r := a.intRange(name)
		if !known(a.cfg.IntParams, name) || value < r.Min || value > r.Max {
			return native.Invalid
		}
		pr.intParams[name] = value
		return native.OK
	})
}

func (a *API) getIntParam(method string, p unsafe.Pointer, name string, out *int32, pick func(pr *problem, r Range[int32]) int32) native.Retcode {
	return a.withProb(method, p, func(pr *problem) native.Retcode {
		if !known(a.cfg.IntParams, name) {
			return native.Invalid
		}
		*out = pick(pr, a.intRange(name))
		return native.OK
	})
}

func (a *API) GetIntParam(p unsafe.Pointer, name string, out *int32) native.Retcode {
	return a.getIntParam("GetIntParam", p, name, out, func(pr *problem, r Range[int32]) int32 {
		if v, ok := pr.intParams[name]; ok {
			return v
		}
		return r.Def
	})
}

func (a *API) GetIntParamDef(p unsafe.Pointer, name string, out *int32) native.Retcode {
	return a.getIntParam("GetIntParamDef", p, name, out, func(_ *problem, r Range[int32]) int32 { return r.Def })
}

func (a *API) GetIntParamMin(p unsafe.Pointer, name string, out *int32) native.Retcode {
	return a.getIntParam("GetIntParamMin", p, name, out, func(_ *problem, r Range[int32]) int32 { return r.Min })
}

func (a *API) GetIntParamMax(p unsafe.Pointer, name string, out *int32) native.Retcode {
	return a.getIntParam("GetIntParamMax", p, name, out, func(_ *problem, r Range[int32]) int32 { return r.Max })
}

func (a *API) SetDblParam(p unsafe.Pointer, name string, value float64) native.Retcode {
	return a.withProb("SetDblParam", p, func(pr *problem) native.Retcode {
		r := a.doubleRange(name)
		if !known(a.cfg.DoubleParams, name) || math.IsNaN(value) || value < r.Min || value > r.Max {
			return native.Invalid
		}
		pr.dblParams[name] = value
		return native.OK
	})
}

func (a *API) getDblParam(method string, p unsafe.Pointer, name string, out *float64, pick func(pr *problem, r Range[float64]) float64) native.Retcode {
	return a.withProb(method, p, func(pr *problem) native.Retcode {
		if !known(a.cfg.DoubleParams, name) {
			return native.Invalid
		}
		*out = pick(pr, a.doubleRange(name))
		return native.OK
	})
}

func (a *API) GetDblParam(p unsafe.Pointer, name string, out *float64) native.Retcode {
	return a.getDblParam("GetDblParam", p, name, out, func(pr *problem, r Range[float64]) float64 {
		if v, ok := pr.dblParams[name]; ok {
			return v
		}
		return r.Def
	})
}

func (a *API) GetDblParamDef(p unsafe.Pointer, name string, out *float64) native.Retcode {
	return a.getDblParam("GetDblParamDef", p, name, out, func(_ *problem, r Range[float64]) float64 { return r.Def })
}

func (a *API) GetDblParamMin(p unsafe.Pointer, name string, out *float64) native.Retcode {
	return a.getDblParam("GetDblParamMin", p, name, out, func(_ *problem, r Range[float64]) float64 { return r.Min })
}

func (a *API) GetDblParamMax(p unsafe.Pointer, name string, out *float64) native.Retcode {
	return a.getDblParam("GetDblParamMax", p, name, out, func(_ *problem, r Range[float64]) float64 { return r.Max })
}

func (a *API) ResetParam(p unsafe.Pointer) native.Retcode {
	return a.withProb("ResetParam", p, func(pr *problem) native.Retcode {
		pr.intParams = map[string]int32{}
		pr.dblParams = map[string]float64{}
		return native.OK
	})
}

func (a *API) Reset(p unsafe.Pointer, clearAll bool) native.Retcode {
	return a.withProb("Reset", p, func(pr *problem) native.Retcode {
		pr.result = nil
		if clearAll {
			pr.mipStarts = nil
		}
		return native.OK
	})
}

func (a *API) GetIntAttr(p unsafe.Pointer, name string, out *int32) native.Retcode {
	return a.withProb("GetIntAttr", p, func(pr *problem) native.Retcode {
		if !known(a.cfg.IntAttrs, name) {
			return native.Invalid
		}
		*out = pr.intAttr(name)
		return native.OK
	})
}

func (a *API) GetDblAttr(p unsafe.Pointer, name string, out *float64) native.Retcode {
	return a.withProb("GetDblAttr", p, func(pr *problem) native.Retcode {
		if !known(a.cfg.DoubleAttrs, name) {
			return native.Invalid
		}
		*out = pr.dblAttr(name)
		return native.OK
	})
}

func (a *API) SetLogFile(p unsafe.Pointer, path string) native.Retcode {
	return a.withProb("SetLogFile", p, func(pr *problem) native.Retcode {
		pr.logFile = path
		return native.OK
	})
}

func (a *API) SetLogCallback(p unsafe.Pointer, userdata uintptr) native.Retcode {
	return a.withProb("SetLogCallback", p, func(pr *problem) native.Retcode {
		pr.logUserdata = userdata
		return native.OK
	})
}

func (a *API) SetCallback(p unsafe.Pointer, cbctx int32, userdata uintptr) native.Retcode {
	return a.withProb("SetCallback", p, func(pr *problem) native.Retcode {
		if cbctx == 0 {
			return native.Invalid
		}
		pr.cbUserdata = userdata
		pr.cbContext = cbctx
		return native.OK
	})
}
