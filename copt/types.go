package copt

import (
	"strings"

	"github.com/bartolsthoorn/gocopt/internal/native"
)

// Var is the 0-based column index of a variable in the model that created it.
type Var int

// Constr is the 0-based row index of a constraint in the model that created it.
type Constr int

// VarValue pairs a variable with a value, for example in a MIP start.
type VarValue struct {
	Var   Var
	Value float64
}

// VarType is the domain of a variable.
type VarType byte

const (
	// Continuous is a real valued variable.
	Continuous VarType = VarType(native.ColContinuous)
	// Binary is a 0/1 variable.
	Binary VarType = VarType(native.ColBinary)
	// Integer is an integer valued variable.
	Integer VarType = VarType(native.ColInteger)
)

// String returns a human-readable representation of the variable type.
func (v VarType) String() string {
	switch v {
	case Continuous:
		return "Continuous"
	case Binary:
		return "Binary"
	case Integer:
		return "Integer"
	default:
		return "Unknown"
	}
}

func (v VarType) valid() bool {
	return v == Continuous || v == Binary || v == Integer
}

// ConstrSense is the relation of a constraint to its right-hand side.
type ConstrSense byte

const (
	Equal   ConstrSense = ConstrSense(native.RowEqual)
	Greater ConstrSense = ConstrSense(native.RowGreater)
	Less    ConstrSense = ConstrSense(native.RowLess)
)

// String returns the relation symbol.
func (s ConstrSense) String() string {
	switch s {
	case Equal:
		return "="
	case Greater:
		return ">="
	case Less:
		return "<="
	default:
		return "?"
	}
}

func (s ConstrSense) valid() bool {
	return s == Equal || s == Greater || s == Less
}

// ObjSense is the optimization direction.
type ObjSense int32

const (
	Minimize ObjSense = ObjSense(native.Minimize)
	Maximize ObjSense = ObjSense(native.Maximize)
)

// String returns a human-readable representation of the sense.
func (s ObjSense) String() string {
	switch s {
	case Minimize:
		return "Minimize"
	case Maximize:
		return "Maximize"
	default:
		return "Unknown"
	}
}

// Status is the outcome of the last solve, shared by LP and MIP solves.
type Status int

const (
	// StatusUnstarted means no solve has run since the last change.
	StatusUnstarted Status = 0
	// StatusOptimal means an optimal solution was found.
	StatusOptimal Status = 1
	// StatusInfeasible means the model is proven infeasible.
	StatusInfeasible Status = 2
	// StatusUnbounded means the model is proven unbounded.
	StatusUnbounded Status = 3
	// StatusInfOrUnb means the model is infeasible or unbounded.
	StatusInfOrUnb Status = 4
	// StatusNumerical means the solve stopped on numerical trouble.
	StatusNumerical Status = 5
	// StatusNodeLimit means the node limit was reached.
	StatusNodeLimit Status = 6
	// StatusImprecise means a solution was found but tolerances are not met.
	StatusImprecise Status = 7
	// StatusTimeout means the time limit was reached.
	StatusTimeout Status = 8
	// StatusUnfinished means the solve stopped for another reason.
	StatusUnfinished Status = 9
	// StatusInterrupted means the solve was interrupted.
	StatusInterrupted Status = 10
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusUnstarted:
		return "Unstarted"
	case StatusOptimal:
		return "Optimal"
	case StatusInfeasible:
		return "Infeasible"
	case StatusUnbounded:
		return "Unbounded"
	case StatusInfOrUnb:
		return "InfeasibleOrUnbounded"
	case StatusNumerical:
		return "Numerical"
	case StatusNodeLimit:
		return "NodeLimit"
	case StatusImprecise:
		return "Imprecise"
	case StatusTimeout:
		return "Timeout"
	case StatusUnfinished:
		return "Unfinished"
	case StatusInterrupted:
		return "Interrupted"
	default:
		return "Unknown"
	}
}

// BasisStatus represents the basis status of a variable or constraint.
type BasisStatus int

const (
	// BasisLower indicates the variable is at its lower bound.
	BasisLower BasisStatus = 0
	// BasisBasic indicates the variable is basic.
	BasisBasic BasisStatus = 1
	// BasisUpper indicates the variable is at its upper bound.
	BasisUpper BasisStatus = 2
	// BasisSuperBasic indicates a nonbasic variable strictly between its bounds.
	BasisSuperBasic BasisStatus = 3
	// BasisFixed indicates the variable is fixed (lower == upper).
	BasisFixed BasisStatus = 4
)

// String returns a human-readable representation of the basis status.
func (s BasisStatus) String() string {
	switch s {
	case BasisLower:
		return "Lower"
	case BasisBasic:
		return "Basic"
	case BasisUpper:
		return "Upper"
	case BasisSuperBasic:
		return "SuperBasic"
	case BasisFixed:
		return "Fixed"
	default:
		return "Unknown"
	}
}

// checkName rejects strings that cannot cross the C boundary.
func checkName(op, s string) error {
	if strings.IndexByte(s, 0) >= 0 {
		return wrapError(op, native.OK, ErrInvalidName)
	}
	return nil
}
