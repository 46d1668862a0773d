package copt

import (
	"errors"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"unsafe"

	"github.com/bartolsthoorn/gocopt/internal/log"
	"github.com/bartolsthoorn/gocopt/internal/native"
)

// Model is one optimization problem. It keeps its environment alive until it
// is closed.
//
// Variables and constraints are identified by their 0-based index, assigned in
// creation order. Indices are only meaningful for the model that returned them.
//
// Always call Close() when done to release resources:
//
//	model, _ := copt.NewModel(env)
//	defer model.Close()
type Model struct {
	// mu guards ptr against Terminate running on another goroutine.
	mu     sync.Mutex
	ptr    unsafe.Pointer
	api    native.API
	env    *envHandle
	logger log.Logger

	numVars    int
	numConstrs int
	lastLp     bool
}

// NewModel creates an empty model in env.
//
// The model must be closed with Close() when no longer needed.
func NewModel(env *Env) (*Model, error) {
	if env == nil {
		return nil, wrapError("NewModel", native.OK, ErrClosed)
	}
	if _, err := env.pointer("NewModel"); err != nil {
		return nil, err
	}
	envPtr, err := env.h.acquire()
	if err != nil {
		return nil, err
	}

	ptr, code := env.h.api.CreateProb(envPtr)
	if err := newError("NewModel", code); err != nil {
		return nil, errors.Join(err, env.h.release())
	}
	return newModel(ptr, env.h), nil
}

func newModel(ptr unsafe.Pointer, h *envHandle) *Model {
	m := &Model{
		ptr:    ptr,
		api:    h.api,
		env:    h,
		logger: h.logger.WithValues(log.Kv{"svc": "copt.Model"}),
	}
	runtime.SetFinalizer(m, (*Model).Close)
	return m
}

// Close releases the native problem and the model's reference to its
// environment. It is safe to call Close multiple times.
func (m *Model) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ptr == nil {
		return nil
	}
	code := m.api.DeleteProb(m.ptr)
	m.ptr = nil
	runtime.SetFinalizer(m, nil)
	return errors.Join(newError("Close", code), m.env.release())
}

// Clone returns an independent copy of the model in the same environment,
// including its parameters.
func (m *Model) Clone() (*Model, error) {
	prob, err := m.handle("Clone")
	if err != nil {
		return nil, err
	}
	if _, err := m.env.acquire(); err != nil {
		return nil, err
	}

	ptr, code := m.api.CreateCopy(prob)
	if err := newError("Clone", code); err != nil {
		return nil, errors.Join(err, m.env.release())
	}
	cp := newModel(ptr, m.env)
	cp.numVars = m.numVars
	cp.numConstrs = m.numConstrs
	return cp, nil
}

func (m *Model) handle(op string) (unsafe.Pointer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ptr == nil {
		return nil, wrapError(op, native.OK, ErrClosed)
	}
	return m.ptr, nil
}

// NumVars returns the number of variables added through this model.
func (m *Model) NumVars() int { return m.numVars }

// NumConstrs returns the number of constraints added through this model.
func (m *Model) NumConstrs() int { return m.numConstrs }

// AddVar adds a variable with objective coefficient obj and bounds [lb, ub].
// constrs and coeffs optionally place it into existing constraints.
func (m *Model) AddVar(name string, vtype VarType, obj, lb, ub float64, constrs []Constr, coeffs []float64) (Var, error) {
	prob, err := m.handle("AddVar")
	if err != nil {
		return 0, err
	}
	if err := checkName("AddVar", name); err != nil {
		return 0, err
	}
	if len(constrs) != len(coeffs) {
		return 0, wrapError("AddVar", native.OK, ErrDimensionMismatch)
	}
	if !vtype.valid() {
		return 0, invalidArg("AddVar", "unknown variable type")
	}

	rows := make([]int32, len(constrs))
	for i, c := range constrs {
		rows[i] = int32(c)
	}
	code := m.api.AddCol(prob, obj, rows, coeffs, byte(vtype), lb, ub, name)
	if err := newError("AddVar", code); err != nil {
		return 0, err
	}
	m.numVars++
	return Var(m.numVars - 1), nil
}

// AddConstr adds the constraint expr sense rhs. The expression's offset is
// moved to the right-hand side.
func (m *Model) AddConstr(name string, expr *LinExpr, sense ConstrSense, rhs float64) (Constr, error) {
	if !sense.valid() {
		return 0, invalidArg("AddConstr", "unknown constraint sense")
	}
	return m.addRow("AddConstr", name, expr.Vars(), expr.Coeffs(), byte(sense), rhs-expr.Offset(), 0)
}

// AddConstrTerms adds the constraint sum(coeffs[i]*vars[i]) sense rhs.
func (m *Model) AddConstrTerms(name string, vars []Var, coeffs []float64, sense ConstrSense, rhs float64) (Constr, error) {
	if !sense.valid() {
		return 0, invalidArg("AddConstrTerms", "unknown constraint sense")
	}
	return m.addRow("AddConstrTerms", name, vars, coeffs, byte(sense), rhs, 0)
}

// AddRangeConstr adds the constraint lower <= expr <= upper.
func (m *Model) AddRangeConstr(name string, expr *LinExpr, lower, upper float64) (Constr, error) {
	off := expr.Offset()
	return m.addRow("AddRangeConstr", name, expr.Vars(), expr.Coeffs(), native.RowRange, lower-off, upper-off)
}

func (m *Model) addRow(op, name string, vars []Var, coeffs []float64, sense byte, bound, upper float64) (Constr, error) {
	prob, err := m.handle(op)
	if err != nil {
		return 0, err
	}
	if err := checkName(op, name); err != nil {
		return 0, err
	}
	if len(vars) != len(coeffs) {
		return 0, wrapError(op, native.OK, ErrDimensionMismatch)
	}

	code := m.api.AddRow(prob, varList(vars), coeffs, sense, bound, upper, name)
	if err := newError(op, code); err != nil {
		return 0, err
	}
	m.numConstrs++
	return Constr(m.numConstrs - 1), nil
}

// SetObjective sets the objective coefficients of the variables in expr, the
// objective constant (only when the offset is nonzero) and the sense.
// Coefficients of variables not in expr are left unchanged.
func (m *Model) SetObjective(expr *LinExpr, sense ObjSense) error {
	prob, err := m.handle("SetObjective")
	if err != nil {
		return err
	}
	if expr.Len() > 0 {
		code := m.api.SetColObj(prob, varList(expr.Vars()), expr.Coeffs())
		if err := newError("SetObjective", code); err != nil {
			return err
		}
	}
	if off := expr.Offset(); off != 0 {
		if err := newError("SetObjective", m.api.SetObjConst(prob, off)); err != nil {
			return err
		}
	}
	return newError("SetObjective", m.api.SetObjSense(prob, int32(sense)))
}

// SetObjectiveTerms sets the objective coefficients of vars and the sense.
func (m *Model) SetObjectiveTerms(vars []Var, coeffs []float64, sense ObjSense) error {
	expr := NewLinExpr()
	if err := expr.AddTerms(vars, coeffs); err != nil {
		return err
	}
	return m.SetObjective(expr, sense)
}

// SetObjSense sets the optimization direction.
func (m *Model) SetObjSense(sense ObjSense) error {
	prob, err := m.handle("SetObjSense")
	if err != nil {
		return err
	}
	return newError("SetObjSense", m.api.SetObjSense(prob, int32(sense)))
}

// SetVarBounds sets the bounds of a variable.
func (m *Model) SetVarBounds(v Var, lb, ub float64) error {
	prob, err := m.handle("SetVarBounds")
	if err != nil {
		return err
	}
	list := []int32{int32(v)}
	if err := newError("SetVarBounds", m.api.SetColLower(prob, list, []float64{lb})); err != nil {
		return err
	}
	return newError("SetVarBounds", m.api.SetColUpper(prob, list, []float64{ub}))
}

// SetVarType sets the type of a variable.
func (m *Model) SetVarType(v Var, vtype VarType) error {
	prob, err := m.handle("SetVarType")
	if err != nil {
		return err
	}
	if !vtype.valid() {
		return invalidArg("SetVarType", "unknown variable type")
	}
	return newError("SetVarType", m.api.SetColType(prob, []int32{int32(v)}, []byte{byte(vtype)}))
}

// SetConstrBounds sets the bounds of a constraint to [lower, upper].
func (m *Model) SetConstrBounds(c Constr, lower, upper float64) error {
	prob, err := m.handle("SetConstrBounds")
	if err != nil {
		return err
	}
	list := []int32{int32(c)}
	if err := newError("SetConstrBounds", m.api.SetRowLower(prob, list, []float64{lower})); err != nil {
		return err
	}
	return newError("SetConstrBounds", m.api.SetRowUpper(prob, list, []float64{upper}))
}

// AddMipStart adds a (possibly partial) starting point for the MIP search.
// An empty start is ignored.
func (m *Model) AddMipStart(start []VarValue) error {
	prob, err := m.handle("AddMipStart")
	if err != nil {
		return err
	}
	if len(start) == 0 {
		return nil
	}

	list := make([]int32, len(start))
	values := make([]float64, len(start))
	for i, s := range start {
		list[i] = int32(s.Var)
		values[i] = s.Value
	}
	return newError("AddMipStart", m.api.AddMipStart(prob, list, values))
}

// Terminate asks a running solve to stop. It may be called from any goroutine
// and has no effect when no solve is running.
func (m *Model) Terminate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ptr != nil {
		m.api.Interrupt(m.ptr)
	}
}

// Reset discards the solution information. With clearAll it also discards MIP
// starts and other solver hints.
func (m *Model) Reset(clearAll bool) error {
	prob, err := m.handle("Reset")
	if err != nil {
		return err
	}
	return newError("Reset", m.api.Reset(prob, clearAll))
}

// SetLogFile writes the solver log to path.
func (m *Model) SetLogFile(path string) error {
	prob, err := m.handle("SetLogFile")
	if err != nil {
		return err
	}
	if err := checkName("SetLogFile", path); err != nil {
		return err
	}
	return newError("SetLogFile", m.api.SetLogFile(prob, path))
}

// FileFormat is a file kind the solver can read or write.
type FileFormat int

// Supported file formats.
const (
	FormatMPS FileFormat = iota
	FormatLP
	FormatSDPA
	FormatCBF
	FormatBin
	FormatSol
	FormatBasis
	FormatMst
	FormatParam
	FormatIIS
	FormatRelax
	FormatPoolSol
)

func (f FileFormat) kind() native.FileKind { return native.FileKind(f) }

// String returns the conventional file extension of the format.
func (f FileFormat) String() string { return f.kind().String() }

// formatFromPath maps a file name to a model format by its suffix, ignoring case.
func formatFromPath(op, path string) (FileFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mps":
		return FormatMPS, nil
	case ".lp":
		return FormatLP, nil
	}
	return 0, wrapError(op, native.File, ErrUnsupportedFormat)
}

// Read replaces the model with the one in path. The format is chosen by the
// suffix, .mps or .lp in any case.
func (m *Model) Read(path string) error {
	f, err := formatFromPath("Read", path)
	if err != nil {
		return err
	}
	return m.readFile("Read", f, path)
}

// Write writes the model to path. The format is chosen by the suffix, .mps or
// .lp in any case.
func (m *Model) Write(path string) error {
	f, err := formatFromPath("Write", path)
	if err != nil {
		return err
	}
	return m.writeFile("Write", f, path)
}

// ReadFile reads path in the given format. Reading a model format replaces the
// model; other formats load solutions, starts, bases or parameters into it.
func (m *Model) ReadFile(f FileFormat, path string) error {
	return m.readFile("ReadFile", f, path)
}

// WriteFile writes the model, or its solution data, to path in the given format.
func (m *Model) WriteFile(f FileFormat, path string) error {
	return m.writeFile("WriteFile", f, path)
}

func (m *Model) readFile(op string, f FileFormat, path string) error {
	prob, err := m.handle(op)
	if err != nil {
		return err
	}
	if !f.kind().CanRead() {
		return wrapError(op, native.File, ErrUnsupportedFormat)
	}
	if err := checkName(op, path); err != nil {
		return err
	}
	if err := newError(op, m.api.Read(prob, f.kind(), path)); err != nil {
		m.logger.Warningf("could not read %q: %s", path, err)
		return err
	}
	return m.syncCounts(op)
}

func (m *Model) writeFile(op string, f FileFormat, path string) error {
	prob, err := m.handle(op)
	if err != nil {
		return err
	}
	if !f.kind().CanWrite() {
		return wrapError(op, native.File, ErrUnsupportedFormat)
	}
	if err := checkName(op, path); err != nil {
		return err
	}
	return newError(op, m.api.Write(prob, f.kind(), path))
}

// ReadBlob replaces the model with one serialized by WriteBlob.
func (m *Model) ReadBlob(blob []byte) error {
	prob, err := m.handle("ReadBlob")
	if err != nil {
		return err
	}
	if err := newError("ReadBlob", m.api.ReadBlob(prob, blob)); err != nil {
		return err
	}
	return m.syncCounts("ReadBlob")
}

// WriteBlob serializes the model to memory.
func (m *Model) WriteBlob(compress bool) ([]byte, error) {
	prob, err := m.handle("WriteBlob")
	if err != nil {
		return nil, err
	}
	blob, code := m.api.WriteBlob(prob, compress)
	if err := newError("WriteBlob", code); err != nil {
		return nil, err
	}
	return blob, nil
}

// syncCounts resets the local counters from the native dimensions.
func (m *Model) syncCounts(op string) error {
	cols, err := m.GetIntAttr(AttrCols)
	if err != nil {
		return err
	}
	rows, err := m.GetIntAttr(AttrRows)
	if err != nil {
		return err
	}
	m.numVars, m.numConstrs = cols, rows
	m.logger.Debugf("%s: model has %d variables and %d constraints", op, cols, rows)
	return nil
}

func varList(vars []Var) []int32 {
	out := make([]int32, len(vars))
	for i, v := range vars {
		out[i] = int32(v)
	}
	return out
}
