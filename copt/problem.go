package copt

import (
	"context"
	"errors"

	"github.com/bartolsthoorn/gocopt/internal/native"
)

// Nonzero represents a non-zero entry in a sparse matrix.
// Row and Col are zero-indexed.
type Nonzero struct {
	Row int
	Col int
	Val float64
}

// Problem is a declarative LP or MIP. It provides a convenient way to define a
// whole problem at once instead of building a Model call by call.
//
// The problem has the form:
//
//	Minimize (or Maximize): ColCosts · x + Offset
//	Subject to:             RowLower ≤ A·x ≤ RowUpper
//	And:                    ColLower ≤ x ≤ ColUpper
//
// Where A is the constraint matrix specified by ConstMatrix. Bounds at or
// beyond Infinity, including IEEE infinities, are unbounded.
type Problem struct {
	// Maximize indicates whether to maximize (true) or minimize (false).
	Maximize bool

	// Offset is a constant added to the objective function.
	Offset float64

	// ColCosts are the objective function coefficients for each variable.
	ColCosts []float64

	// ColLower are the lower bounds for each variable.
	// If empty, defaults to -∞.
	ColLower []float64

	// ColUpper are the upper bounds for each variable.
	// If empty, defaults to +∞.
	ColUpper []float64

	// RowLower are the lower bounds for each constraint.
	// Use NegInf() for no lower bound.
	RowLower []float64

	// RowUpper are the upper bounds for each constraint.
	// Use Inf() for no upper bound.
	RowUpper []float64

	// ConstMatrix defines the constraint matrix as a list of non-zero entries.
	// Each entry specifies (row, column, value).
	ConstMatrix []Nonzero

	// VarTypes specifies the type of each variable.
	// If empty, all variables are continuous.
	VarTypes []VarType
}

// AddDenseRow adds a constraint to the problem using a dense coefficient vector.
// Zero coefficients are automatically filtered out.
//
// Example:
//
//	p.AddDenseRow(1.0, []float64{1.0, 2.0, 0.0, 3.0}, 10.0)
//	// Adds constraint: 1.0 <= x0 + 2*x1 + 3*x3 <= 10.0
func (p *Problem) AddDenseRow(lower float64, coeffs []float64, upper float64) {
	row := len(p.RowLower)
	p.RowLower = append(p.RowLower, lower)
	p.RowUpper = append(p.RowUpper, upper)

	for col, val := range coeffs {
		if val != 0.0 {
			p.ConstMatrix = append(p.ConstMatrix, Nonzero{
				Row: row,
				Col: col,
				Val: val,
			})
		}
	}
}

// AddSparseRow adds a constraint using sparse coefficient representation.
// cols and vals must have the same length; otherwise nothing is added and the
// error wraps ErrDimensionMismatch.
//
// Example:
//
//	p.AddSparseRow(1.0, []int{0, 1, 3}, []float64{1.0, 2.0, 3.0}, 10.0)
//	// Adds constraint: 1.0 <= x0 + 2*x1 + 3*x3 <= 10.0
func (p *Problem) AddSparseRow(lower float64, cols []int, vals []float64, upper float64) error {
	if len(cols) != len(vals) {
		return wrapError("AddSparseRow", native.OK, ErrDimensionMismatch)
	}

	row := len(p.RowLower)
	p.RowLower = append(p.RowLower, lower)
	p.RowUpper = append(p.RowUpper, upper)

	for i, col := range cols {
		if vals[i] != 0.0 {
			p.ConstMatrix = append(p.ConstMatrix, Nonzero{
				Row: row,
				Col: col,
				Val: vals[i],
			})
		}
	}
	return nil
}

// AddEqRow adds an equality constraint: sum(coeffs * x) = rhs.
func (p *Problem) AddEqRow(coeffs []float64, rhs float64) {
	p.AddDenseRow(rhs, coeffs, rhs)
}

// AddLeRow adds a less-than-or-equal constraint: sum(coeffs * x) <= rhs.
func (p *Problem) AddLeRow(coeffs []float64, rhs float64) {
	p.AddDenseRow(NegInf(), coeffs, rhs)
}

// AddGeRow adds a greater-than-or-equal constraint: sum(coeffs * x) >= rhs.
func (p *Problem) AddGeRow(coeffs []float64, rhs float64) {
	p.AddDenseRow(rhs, coeffs, Inf())
}

// NumVars returns the number of variables in the problem.
func (p *Problem) NumVars() int {
	_, maxCol := maxRowCol(p.ConstMatrix)
	n := maxCol + 1
	for _, l := range []int{len(p.ColCosts), len(p.ColLower), len(p.ColUpper), len(p.VarTypes)} {
		n = max(n, l)
	}
	return n
}

// NumConstraints returns the number of constraints in the problem.
func (p *Problem) NumConstraints() int {
	maxRow, _ := maxRowCol(p.ConstMatrix)
	return max(maxRow+1, len(p.RowLower), len(p.RowUpper))
}

// Build creates a Model in env holding the problem.
//
// The model must be closed with Close() when no longer needed.
func (p *Problem) Build(env *Env) (*Model, error) {
	numCol := p.NumVars()
	numRow := p.NumConstraints()

	// Prepare column data with defaults
	colCosts, err := expandSlice(numCol, p.ColCosts, 0.0)
	if err != nil {
		return nil, newErrorMsg("Build", "inconsistent ColCosts length")
	}
	colLower, err := expandSlice(numCol, p.ColLower, NegInf())
	if err != nil {
		return nil, newErrorMsg("Build", "inconsistent ColLower length")
	}
	colUpper, err := expandSlice(numCol, p.ColUpper, Inf())
	if err != nil {
		return nil, newErrorMsg("Build", "inconsistent ColUpper length")
	}
	varTypes, err := expandSlice(numCol, p.VarTypes, Continuous)
	if err != nil {
		return nil, newErrorMsg("Build", "inconsistent VarTypes length")
	}

	// Prepare row data with defaults
	rowLower, err := expandSlice(numRow, p.RowLower, NegInf())
	if err != nil {
		return nil, newErrorMsg("Build", "inconsistent RowLower length")
	}
	rowUpper, err := expandSlice(numRow, p.RowUpper, Inf())
	if err != nil {
		return nil, newErrorMsg("Build", "inconsistent RowUpper length")
	}

	// Convert constraint matrix to CSR format
	aStart, aIndex, aValue, err := nonzerosToCSR(p.ConstMatrix, numRow)
	if err != nil {
		return nil, err
	}

	m, err := NewModel(env)
	if err != nil {
		return nil, err
	}
	if err := p.populate(m, colCosts, colLower, colUpper, varTypes, rowLower, rowUpper, aStart, aIndex, aValue); err != nil {
		return nil, errors.Join(err, m.Close())
	}
	return m, nil
}

func (p *Problem) populate(m *Model,
	colCosts, colLower, colUpper []float64, varTypes []VarType,
	rowLower, rowUpper []float64,
	aStart, aIndex []int, aValue []float64,
) error {
	for j := range colCosts {
		vtype := varTypes[j]
		if vtype == 0 {
			vtype = Continuous
		}
		if _, err := m.AddVar("", vtype, colCosts[j], clampInf(colLower[j]), clampInf(colUpper[j]), nil, nil); err != nil {
			return err
		}
	}

	for i := range rowLower {
		lo, up := clampInf(rowLower[i]), clampInf(rowUpper[i])
		vars := make([]Var, 0, aStart[i+1]-aStart[i])
		for _, col := range aIndex[aStart[i]:aStart[i+1]] {
			vars = append(vars, Var(col))
		}
		coeffs := aValue[aStart[i]:aStart[i+1]]

		var err error
		switch {
		case lo == up:
			_, err = m.addRow("Build", "", vars, coeffs, byte(Equal), lo, 0)
		case lo <= -Infinity:
			_, err = m.addRow("Build", "", vars, coeffs, byte(Less), up, 0)
		case up >= Infinity:
			_, err = m.addRow("Build", "", vars, coeffs, byte(Greater), lo, 0)
		default:
			_, err = m.addRow("Build", "", vars, coeffs, native.RowRange, lo, up)
		}
		if err != nil {
			return err
		}
	}

	sense := Minimize
	if p.Maximize {
		sense = Maximize
	}
	return m.SetObjective(Constant(p.Offset), sense)
}

// Solve builds the problem in env, solves it and returns the solution.
//
// Options can be set using SolveOptions:
//
//	solution, err := p.Solve(ctx, env,
//		copt.WithTimeLimit(60),
//		copt.WithRelGap(0.01),
//		copt.WithLogging(false),
//	)
func (p *Problem) Solve(ctx context.Context, env *Env, opts ...SolveOption) (*Solution, error) {
	if p.NumVars() == 0 {
		return &Solution{Status: StatusOptimal, Objective: p.Offset}, nil
	}

	m, err := p.Build(env)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	return m.Solve(ctx, opts...)
}
