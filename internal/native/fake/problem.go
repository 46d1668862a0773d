package fake

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/bartolsthoorn/gocopt/internal/native"
)

// Column is a problem column.
type Column struct {
	Name  string
	Obj   float64
	Type  byte
	Lower float64
	Upper float64
}

// Row is a problem row stored as an interval with sparse coefficients.
type Row struct {
	Name  string
	Sense byte
	Lower float64
	Upper float64
	Cols  []int32
	Elems []float64
}

// setElem adds coef to the coefficient of col, keeping one entry per column.
func (r *Row) setElem(col int32, coef float64) {
	for i, c := range r.Cols {
		if c == col {
			r.Elems[i] += coef
			return
		}
	}
	r.Cols = append(r.Cols, col)
	r.Elems = append(r.Elems, coef)
}

func (r Row) activity(values []float64) float64 {
	var sum float64
	for i, c := range r.Cols {
		sum += r.Elems[i] * values[c]
	}
	return sum
}

// Problem is a point in time copy of a fake problem.
type Problem struct {
	Cols      []Column
	Rows      []Row
	ObjSense  int32
	ObjConst  float64
	MipStarts []map[int32]float64
	IntParams map[string]int32
	DblParams map[string]float64
	LogFile   string

	LogUserdata      uintptr
	CallbackUserdata uintptr
	CallbackContext  int32
}

// IsMIP reports whether any column is integral.
func (p Problem) IsMIP() bool {
	for _, c := range p.Cols {
		if c.Type != native.ColContinuous {
			return true
		}
	}
	return false
}

type poolSol struct {
	obj    float64
	values []float64
}

type result struct {
	mip      bool
	status   int32
	hasSol   bool
	obj      float64
	values   []float64
	activity []float64
	rowDual  []float64
	redCost  []float64
	colBasis []int32
	rowBasis []int32
	pool     []poolSol
	iters    int
	elapsed  time.Duration
}

type problem struct {
	mu  sync.Mutex
	seq int

	cols      []Column
	rows      []Row
	objSense  int32
	objConst  float64
	mipStarts []map[int32]float64
	intParams map[string]int32
	dblParams map[string]float64
	logFile   string

	logUserdata uintptr
	cbUserdata  uintptr
	cbContext   int32

	interrupted atomic.Bool
	result      *result
}

func newProblem() *problem {
	return &problem{
		objSense:  native.Minimize,
		intParams: map[string]int32{},
		dblParams: map[string]float64{},
	}
}

// invalidate drops the solution after a structural edit, as the native
// library does.
func (pr *problem) invalidate() { pr.result = nil }

func (pr *problem) snapshot() Problem {
	p := Problem{
		Cols:             append([]Column(nil), pr.cols...),
		Rows:             make([]Row, len(pr.rows)),
		ObjSense:         pr.objSense,
		ObjConst:         pr.objConst,
		IntParams:        map[string]int32{},
		DblParams:        map[string]float64{},
		LogFile:          pr.logFile,
		LogUserdata:      pr.logUserdata,
		CallbackUserdata: pr.cbUserdata,
		CallbackContext:  pr.cbContext,
	}
	for i, r := range pr.rows {
		r.Cols = append([]int32(nil), r.Cols...)
		r.Elems = append([]float64(nil), r.Elems...)
		p.Rows[i] = r
	}
	for _, s := range pr.mipStarts {
		cp := make(map[int32]float64, len(s))
		for k, v := range s {
			cp[k] = v
		}
		p.MipStarts = append(p.MipStarts, cp)
	}
	for k, v := range pr.intParams {
		p.IntParams[k] = v
	}
	for k, v := range pr.dblParams {
		p.DblParams[k] = v
	}
	return p
}

// restore replaces the model data (not parameters or callbacks).
func (pr *problem) restore(p Problem) {
	pr.cols = append([]Column(nil), p.Cols...)
	pr.rows = make([]Row, len(p.Rows))
	for i, r := range p.Rows {
		r.Cols = append([]int32(nil), r.Cols...)
		r.Elems = append([]float64(nil), r.Elems...)
		pr.rows[i] = r
	}
	pr.objSense = p.ObjSense
	if pr.objSense == 0 {
		pr.objSense = native.Minimize
	}
	pr.objConst = p.ObjConst
	pr.mipStarts = nil
	pr.result = nil
}

func boolAttr(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

func (pr *problem) intAttr(name string) int32 {
	res := pr.result
	switch name {
	case "Cols":
		return int32(len(pr.cols))
	case "Rows":
		return int32(len(pr.rows))
	case "Elems":
		n := 0
		for _, r := range pr.rows {
			n += len(r.Cols)
		}
		return int32(n)
	case "Bins", "Ints":
		want := native.ColBinary
		if name == "Ints" {
			want = native.ColInteger
		}
		n := 0
		for _, c := range pr.cols {
			if c.Type == want {
				n++
			}
		}
		return int32(n)
	case "ObjSense":
		return pr.objSense
	case "IsMIP":
		return boolAttr(Problem{Cols: pr.cols}.IsMIP())
	}

	if res == nil {
		return 0
	}
	switch name {
	case "LpStatus":
		if !res.mip {
			return res.status
		}
	case "MipStatus":
		if res.mip {
			return res.status
		}
	case "SimplexIter":
		if !res.mip {
			return int32(res.iters)
		}
	case "NodeCnt":
		if res.mip {
			return int32(res.iters)
		}
	case "PoolSols":
		return int32(len(res.pool))
	case "HasLpSol", "HasBasis":
		return boolAttr(!res.mip && res.hasSol)
	case "HasMipSol":
		return boolAttr(res.mip && res.hasSol)
	}
	return 0
}

func (pr *problem) dblAttr(name string) float64 {
	if name == "ObjConst" {
		return pr.objConst
	}
	res := pr.result
	if res == nil {
		return 0
	}
	switch name {
	case "SolvingTime":
		return res.elapsed.Seconds()
	case "LpObjval":
		if !res.mip && res.hasSol {
			return res.obj
		}
	case "BestObj", "BestBnd":
		if res.mip && res.hasSol {
			return res.obj
		}
		if res.mip {
			return native.Infinity * float64(pr.objSense)
		}
	case "BestGap":
		if res.mip && res.status == statusOptimal {
			return 0
		}
		if res.mip {
			return native.Infinity
		}
	}
	return 0
}
