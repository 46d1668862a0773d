package fake

import (
	"fmt"
	"math"
	"sort"
	"time"
	"unsafe"

	"github.com/bartolsthoorn/gocopt/internal/bridge"
	"github.com/bartolsthoorn/gocopt/internal/native"
)

// Solve status values shared by LP and MIP solves.
const (
	statusUnstarted   int32 = 0
	statusOptimal     int32 = 1
	statusInfeasible  int32 = 2
	statusTimeout     int32 = 8
	statusInterrupted int32 = 10
)

const feasTol = 1e-6

func (a *API) Solve(p unsafe.Pointer) native.Retcode { return a.solve("Solve", p, false) }

func (a *API) SolveLp(p unsafe.Pointer) native.Retcode { return a.solve("SolveLp", p, true) }

// Time limits at or above this many seconds are treated as unlimited.
const maxTimeLimit = 1e9

type runOutcome struct {
	iters  int
	status int32
}

type runParams struct {
	logUserdata uintptr
	cbUserdata  uintptr
	logging     bool
	timeLimit   time.Duration
}

func (a *API) solve(method string, p unsafe.Pointer, lpOnly bool) native.Retcode {
	a.count(method)
	pr, ok := a.prob(p)
	if !ok {
		return native.Invalid
	}
	if a.cfg.SolveRetcode != native.OK {
		return a.cfg.SolveRetcode
	}

	pr.mu.Lock()
	snap := pr.snapshot()
	pr.interrupted.Store(false)
	pr.mu.Unlock()

	rp := runParams{
		logUserdata: snap.LogUserdata,
		cbUserdata:  snap.CallbackUserdata,
		logging:     true,
		timeLimit:   time.Duration(math.MaxInt64),
	}
	if v, ok := snap.IntParams["Logging"]; ok && v == 0 {
		rp.logging = false
	}
	limit := a.doubleRange("TimeLimit").Def
	if v, ok := snap.DblParams["TimeLimit"]; ok {
		limit = v
	}
	if limit > 0 && limit < maxTimeLimit {
		rp.timeLimit = time.Duration(limit * float64(time.Second))
	}

	mip := !lpOnly && snap.IsMIP()
	start := time.Now()

	// Callbacks must fire from a goroutine other than the caller's.
	done := make(chan runOutcome)
	go func() {
		done <- a.iterate(p, pr, rp)
	}()
	run := <-done

	res := evaluate(snap, mip)
	res.iters = run.iters
	res.elapsed = time.Since(start)
	if run.status != statusUnstarted {
		res.status = run.status
		if !res.mip {
			res.hasSol = false
			res.pool = nil
		}
	}
	if a.cfg.Status != statusUnstarted {
		res.status = a.cfg.Status
		res.hasSol = res.hasSol && res.status == statusOptimal
		if !res.hasSol {
			res.pool = nil
		}
	}

	a.log(rp, fmt.Sprintf("Solving finished with status %d", res.status))

	pr.mu.Lock()
	pr.result = res
	pr.mu.Unlock()
	return native.OK
}

func (a *API) log(rp runParams, line string) {
	if rp.logging {
		bridge.Log(rp.logUserdata, []byte(line))
	}
}

// iterate emits progress lines and polls the terminate callback. The outcome
// carries a nonzero status when the run stopped early.
func (a *API) iterate(p unsafe.Pointer, pr *problem, rp runParams) runOutcome {
	start := time.Now()
	if a.cfg.EmitInvalidUTF8 && rp.logging {
		bridge.Log(rp.logUserdata, []byte{0xff, 0xfe, 0xfd})
	}
	a.log(rp, "Iteration       Time")

	for i := 1; i <= a.cfg.Iterations; i++ {
		if a.cfg.IterationDelay > 0 {
			time.Sleep(a.cfg.IterationDelay)
		}
		a.log(rp, fmt.Sprintf("%9d %9.2fs", i, time.Since(start).Seconds()))

		if rp.cbUserdata != 0 {
			bridge.Terminate(rp.cbUserdata, func() { a.Interrupt(p) })
		}
		if pr.interrupted.Load() {
			a.log(rp, "Solving interrupted")
			return runOutcome{iters: i, status: statusInterrupted}
		}
		if time.Since(start) > rp.timeLimit {
			a.log(rp, "Time limit reached")
			return runOutcome{iters: i, status: statusTimeout}
		}
	}
	return runOutcome{iters: a.cfg.Iterations}
}

// evaluate picks the best feasible candidate among the trivial point and the
// MIP starts. It is bookkeeping, not optimization.
func evaluate(p Problem, mip bool) *result {
	res := &result{mip: mip, status: statusInfeasible}

	candidates := [][]float64{trivialPoint(p.Cols, mip)}
	if mip {
		for _, s := range p.MipStarts {
			candidates = append(candidates, startPoint(p.Cols, s))
		}
	}

	var feasible []poolSol
	for _, vals := range candidates {
		if isFeasible(p, vals, mip) {
			feasible = append(feasible, poolSol{obj: objective(p, vals), values: vals})
		}
	}
	if len(feasible) == 0 {
		return res
	}

	sense := float64(p.ObjSense)
	sort.SliceStable(feasible, func(i, j int) bool {
		return feasible[i].obj*sense < feasible[j].obj*sense
	})

	best := feasible[0]
	res.status = statusOptimal
	res.hasSol = true
	res.obj = best.obj
	res.values = best.values
	res.activity = make([]float64, len(p.Rows))
	res.rowDual = make([]float64, len(p.Rows))
	res.rowBasis = make([]int32, len(p.Rows))
	for i, r := range p.Rows {
		res.activity[i] = r.activity(best.values)
		res.rowBasis[i] = basisBasic
	}
	res.redCost = make([]float64, len(p.Cols))
	res.colBasis = make([]int32, len(p.Cols))
	for i, c := range p.Cols {
		res.redCost[i] = c.Obj
		res.colBasis[i] = colBasis(c, best.values[i])
	}
	if mip {
		res.pool = feasible
	}
	return res
}

// Basis status codes.
const (
	basisLower int32 = 0
	basisBasic int32 = 1
	basisUpper int32 = 2
	basisFixed int32 = 4
)

func colBasis(c Column, v float64) int32 {
	switch {
	case c.Lower == c.Upper:
		return basisFixed
	case v == c.Lower:
		return basisLower
	case v == c.Upper:
		return basisUpper
	}
	return basisBasic
}

func clamp(v, lo, up float64) float64 {
	return math.Min(math.Max(v, lo), up)
}

func trivialPoint(cols []Column, mip bool) []float64 {
	vals := make([]float64, len(cols))
	for i, c := range cols {
		v := clamp(0, c.Lower, c.Upper)
		if mip && c.Type != native.ColContinuous {
			v = clamp(math.Ceil(v-feasTol), c.Lower, c.Upper)
		}
		vals[i] = v
	}
	return vals
}

func startPoint(cols []Column, start map[int32]float64) []float64 {
	vals := trivialPoint(cols, true)
	for c, v := range start {
		if int(c) < len(vals) {
			vals[c] = v
		}
	}
	return vals
}

func isFeasible(p Problem, vals []float64, mip bool) bool {
	for i, c := range p.Cols {
		v := vals[i]
		if v < c.Lower-feasTol || v > c.Upper+feasTol {
			return false
		}
		if mip && c.Type != native.ColContinuous && math.Abs(v-math.Round(v)) > feasTol {
			return false
		}
	}
	for _, r := range p.Rows {
		act := r.activity(vals)
		if act < r.Lower-feasTol || act > r.Upper+feasTol {
			return false
		}
	}
	return true
}

func objective(p Problem, vals []float64) float64 {
	obj := p.ObjConst
	for i, c := range p.Cols {
		obj += c.Obj * vals[i]
	}
	return obj
}
