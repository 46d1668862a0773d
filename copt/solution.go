package copt

import "time"

// Solution contains the results from solving a model.
type Solution struct {
	// Status indicates the outcome of the solve.
	Status Status

	// MIP reports whether the solve was a MIP solve. LP-only fields are
	// empty for MIP solves.
	MIP bool

	// Values contains the primal value of each variable.
	Values []float64

	// Slacks contains the activity of each constraint.
	// Only populated for LP solves.
	Slacks []float64

	// RowDuals contains the dual value of each constraint.
	// Only populated for LP solves.
	RowDuals []float64

	// RedCosts contains the reduced cost of each variable.
	// Only populated for LP solves.
	RedCosts []float64

	// ColBasis contains the basis status for each variable.
	// Only populated when a basis is available.
	ColBasis []BasisStatus

	// RowBasis contains the basis status for each constraint.
	// Only populated when a basis is available.
	RowBasis []BasisStatus

	// Objective is the value of the objective function at the solution.
	Objective float64

	// BestBound and Gap are the MIP dual bound and relative gap.
	BestBound float64
	Gap       float64

	// Elapsed is the time the solver reported spending.
	Elapsed time.Duration
}

// IsOptimal returns true if the solution is optimal.
func (s *Solution) IsOptimal() bool {
	return s.Status == StatusOptimal
}

// IsInfeasible returns true if the model is infeasible.
func (s *Solution) IsInfeasible() bool {
	return s.Status == StatusInfeasible ||
		s.Status == StatusInfOrUnb
}

// IsUnbounded returns true if the model is unbounded.
func (s *Solution) IsUnbounded() bool {
	return s.Status == StatusUnbounded ||
		s.Status == StatusInfOrUnb
}

// IsTimeLimit returns true if the solve terminated due to the time limit.
func (s *Solution) IsTimeLimit() bool {
	return s.Status == StatusTimeout
}

// IsInterrupted returns true if the solve was stopped by a callback,
// Terminate or a cancelled context.
func (s *Solution) IsInterrupted() bool {
	return s.Status == StatusInterrupted
}

// HasSolution returns true if the solution contains primal values.
func (s *Solution) HasSolution() bool {
	return len(s.Values) > 0
}

// Value returns the solution value for a variable.
// Returns 0 if the variable is out of range.
func (s *Solution) Value(v Var) float64 {
	if v < 0 || int(v) >= len(s.Values) {
		return 0
	}
	return s.Values[v]
}

// Eval evaluates expr at the solution.
func (s *Solution) Eval(expr *LinExpr) float64 {
	return expr.Value(s.Values)
}

// LpSolution holds the full result of an LP solve.
type LpSolution struct {
	Values   []float64
	Slacks   []float64
	RowDuals []float64
	RedCosts []float64
}

// Status returns the status of the last solve. It reads the LP status after
// OptimizeLp or when the model has no integer variables, and the MIP status
// otherwise.
func (m *Model) Status() (Status, error) {
	attr := AttrLpStatus
	mip, err := m.isMIPSolve()
	if err != nil {
		return StatusUnstarted, err
	}
	if mip {
		attr = AttrMipStatus
	}
	s, err := m.GetIntAttr(attr)
	if err != nil {
		return StatusUnstarted, err
	}
	return Status(s), nil
}

func (m *Model) isMIPSolve() (bool, error) {
	if m.lastLp {
		return false, nil
	}
	isMIP, err := m.GetIntAttr(AttrIsMIP)
	if err != nil {
		return false, err
	}
	return isMIP != 0, nil
}

// Objective returns the objective value of the last solve: the best MIP
// objective for MIP solves and the LP objective otherwise.
func (m *Model) Objective() (float64, error) {
	mip, err := m.isMIPSolve()
	if err != nil {
		return 0, err
	}
	if mip {
		return m.GetDoubleAttr(AttrBestObj)
	}
	return m.GetDoubleAttr(AttrLpObjval)
}

// Values returns the value of every variable in the last solution.
func (m *Model) Values() ([]float64, error) {
	prob, err := m.handle("Values")
	if err != nil {
		return nil, err
	}
	values := make([]float64, m.numVars)
	if err := newError("Values", m.api.GetSolution(prob, values)); err != nil {
		return nil, err
	}
	return values, nil
}

// LpSolution returns the primal and dual results of the last LP solve.
func (m *Model) LpSolution() (*LpSolution, error) {
	prob, err := m.handle("LpSolution")
	if err != nil {
		return nil, err
	}
	sol := &LpSolution{
		Values:   make([]float64, m.numVars),
		Slacks:   make([]float64, m.numConstrs),
		RowDuals: make([]float64, m.numConstrs),
		RedCosts: make([]float64, m.numVars),
	}
	code := m.api.GetLpSolution(prob, sol.Values, sol.Slacks, sol.RowDuals, sol.RedCosts)
	if err := newError("LpSolution", code); err != nil {
		return nil, err
	}
	return sol, nil
}

// Basis returns the basis status of every variable and constraint.
func (m *Model) Basis() (cols, rows []BasisStatus, err error) {
	prob, err := m.handle("Basis")
	if err != nil {
		return nil, nil, err
	}
	colBasis := make([]int32, m.numVars)
	rowBasis := make([]int32, m.numConstrs)
	if err := newError("Basis", m.api.GetBasis(prob, colBasis, rowBasis)); err != nil {
		return nil, nil, err
	}
	return basisFromNative(colBasis), basisFromNative(rowBasis), nil
}

func basisFromNative(b []int32) []BasisStatus {
	out := make([]BasisStatus, len(b))
	for i, s := range b {
		out[i] = BasisStatus(s)
	}
	return out
}

// PoolSolution returns the values and objective of the i-th solution in the
// MIP solution pool. Use AttrPoolSols for the pool size.
func (m *Model) PoolSolution(i int) (values []float64, objective float64, err error) {
	prob, err := m.handle("PoolSolution")
	if err != nil {
		return nil, 0, err
	}
	objective, code := m.api.GetPoolObjVal(prob, int32(i))
	if err := newError("PoolSolution", code); err != nil {
		return nil, 0, err
	}

	list := make([]int32, m.numVars)
	for j := range list {
		list[j] = int32(j)
	}
	values = make([]float64, m.numVars)
	if err := newError("PoolSolution", m.api.GetPoolSolution(prob, int32(i), list, values)); err != nil {
		return nil, 0, err
	}
	return values, objective, nil
}

// solution collects everything the last solve produced.
func (m *Model) solution() (*Solution, error) {
	status, err := m.Status()
	if err != nil {
		return nil, err
	}
	mip, err := m.isMIPSolve()
	if err != nil {
		return nil, err
	}
	secs, err := m.GetDoubleAttr(AttrSolvingTime)
	if err != nil {
		return nil, err
	}
	sol := &Solution{
		Status:  status,
		MIP:     mip,
		Elapsed: time.Duration(secs * float64(time.Second)),
	}

	if mip {
		return sol, m.fillMIP(sol)
	}
	return sol, m.fillLP(sol)
}

func (m *Model) fillMIP(sol *Solution) error {
	var err error
	if sol.BestBound, err = m.GetDoubleAttr(AttrBestBnd); err != nil {
		return err
	}
	if sol.Gap, err = m.GetDoubleAttr(AttrBestGap); err != nil {
		return err
	}
	has, err := m.GetIntAttr(AttrHasMipSol)
	if err != nil || has == 0 {
		return err
	}
	if sol.Objective, err = m.GetDoubleAttr(AttrBestObj); err != nil {
		return err
	}
	sol.Values, err = m.Values()
	return err
}

func (m *Model) fillLP(sol *Solution) error {
	has, err := m.GetIntAttr(AttrHasLpSol)
	if err != nil || has == 0 {
		return err
	}
	if sol.Objective, err = m.GetDoubleAttr(AttrLpObjval); err != nil {
		return err
	}
	lp, err := m.LpSolution()
	if err != nil {
		return err
	}
	sol.Values, sol.Slacks, sol.RowDuals, sol.RedCosts = lp.Values, lp.Slacks, lp.RowDuals, lp.RedCosts

	hasBasis, err := m.GetIntAttr(AttrHasBasis)
	if err != nil || hasBasis == 0 {
		return err
	}
	sol.ColBasis, sol.RowBasis, err = m.Basis()
	return err
}

