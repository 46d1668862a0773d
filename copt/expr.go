package copt

import (
	"strconv"
	"strings"
)

// LinExpr is a linear expression sum(coeff_i * var_i) + offset.
//
// Each variable appears at most once: adding a term for a variable already in
// the expression adds to its coefficient. Terms keep the order in which their
// variable first appeared. Coefficients that cancel to zero are kept, so an
// expression used as an objective explicitly resets those coefficients.
//
// Methods mutate the receiver and return it to allow chaining:
//
//	e := copt.Term(x, 2).AddTerm(y, 3).AddConstant(1) // 2x + 3y + 1
//
// The zero value is the empty expression.
type LinExpr struct {
	vars   []Var
	coeffs []float64
	offset float64
	pos    map[Var]int
}

// NewLinExpr returns an empty expression.
func NewLinExpr() *LinExpr {
	return &LinExpr{}
}

// Term returns the expression coeff*v.
func Term(v Var, coeff float64) *LinExpr {
	return NewLinExpr().AddTerm(v, coeff)
}

// Constant returns the expression holding only the offset c.
func Constant(c float64) *LinExpr {
	return NewLinExpr().AddConstant(c)
}

// Sum returns a new expression with the sum of exprs. Nil expressions count
// as zero.
func Sum(exprs ...*LinExpr) *LinExpr {
	out := NewLinExpr()
	for _, e := range exprs {
		out.Add(e)
	}
	return out
}

// AddTerm adds coeff*v, merging with an existing term for v.
func (e *LinExpr) AddTerm(v Var, coeff float64) *LinExpr {
	if e.pos == nil {
		e.pos = make(map[Var]int, len(e.vars)+1)
		for i, u := range e.vars {
			e.pos[u] = i
		}
	}
	if i, ok := e.pos[v]; ok {
		e.coeffs[i] += coeff
		return e
	}
	e.pos[v] = len(e.vars)
	e.vars = append(e.vars, v)
	e.coeffs = append(e.coeffs, coeff)
	return e
}

// AddTerms adds coeffs[i]*vars[i] for every i.
func (e *LinExpr) AddTerms(vars []Var, coeffs []float64) error {
	if len(vars) != len(coeffs) {
		return wrapError("AddTerms", 0, ErrDimensionMismatch)
	}
	for i, v := range vars {
		e.AddTerm(v, coeffs[i])
	}
	return nil
}

// AddConstant adds c to the offset.
func (e *LinExpr) AddConstant(c float64) *LinExpr {
	e.offset += c
	return e
}

// Add adds other to e.
func (e *LinExpr) Add(other *LinExpr) *LinExpr {
	return e.addScaled(other, 1)
}

// Sub subtracts other from e.
func (e *LinExpr) Sub(other *LinExpr) *LinExpr {
	return e.addScaled(other, -1)
}

func (e *LinExpr) addScaled(other *LinExpr, k float64) *LinExpr {
	if other == nil {
		return e
	}
	if other == e {
		other = e.Clone()
	}
	for i, v := range other.vars {
		e.AddTerm(v, k*other.coeffs[i])
	}
	e.offset += k * other.offset
	return e
}

// Neg negates every coefficient and the offset.
func (e *LinExpr) Neg() *LinExpr {
	return e.Scale(-1)
}

// Scale multiplies every coefficient and the offset by k.
func (e *LinExpr) Scale(k float64) *LinExpr {
	for i := range e.coeffs {
		e.coeffs[i] *= k
	}
	e.offset *= k
	return e
}

// Div divides every coefficient and the offset by k. Dividing by zero returns
// ErrDivisionByZero and leaves e unchanged.
func (e *LinExpr) Div(k float64) (*LinExpr, error) {
	if k == 0 {
		return e, wrapError("Div", 0, ErrDivisionByZero)
	}
	return e.Scale(1 / k), nil
}

// Clone returns a deep copy of e.
func (e *LinExpr) Clone() *LinExpr {
	out := &LinExpr{
		vars:   append([]Var(nil), e.vars...),
		coeffs: append([]float64(nil), e.coeffs...),
		offset: e.offset,
	}
	return out
}

// Len returns the number of terms.
func (e *LinExpr) Len() int {
	if e == nil {
		return 0
	}
	return len(e.vars)
}

// Vars returns the variables in term order.
func (e *LinExpr) Vars() []Var {
	if e == nil {
		return nil
	}
	return append([]Var(nil), e.vars...)
}

// Coeffs returns the coefficients in term order.
func (e *LinExpr) Coeffs() []float64 {
	if e == nil {
		return nil
	}
	return append([]float64(nil), e.coeffs...)
}

// Offset returns the constant part.
func (e *LinExpr) Offset() float64 {
	if e == nil {
		return 0
	}
	return e.offset
}

// Coeff returns the coefficient of v and whether v has a term.
func (e *LinExpr) Coeff(v Var) (float64, bool) {
	if e == nil {
		return 0, false
	}
	for i, u := range e.vars {
		if u == v {
			return e.coeffs[i], true
		}
	}
	return 0, false
}

// Value evaluates e at values, indexed by variable. Variables outside values
// count as zero.
func (e *LinExpr) Value(values []float64) float64 {
	if e == nil {
		return 0
	}
	sum := e.offset
	for i, v := range e.vars {
		if int(v) >= 0 && int(v) < len(values) {
			sum += e.coeffs[i] * values[v]
		}
	}
	return sum
}

// String formats e as, for example, "2 x0 - x3 + 1.5".
func (e *LinExpr) String() string {
	if e.Len() == 0 {
		return formatFloat(e.Offset())
	}

	var sb strings.Builder
	for i, v := range e.vars {
		c := e.coeffs[i]
		switch {
		case i == 0 && c < 0:
			sb.WriteString("-")
		case i > 0 && c < 0:
			sb.WriteString(" - ")
		case i > 0:
			sb.WriteString(" + ")
		}
		if c < 0 {
			c = -c
		}
		if c != 1 {
			sb.WriteString(formatFloat(c))
			sb.WriteString(" ")
		}
		sb.WriteString("x")
		sb.WriteString(strconv.Itoa(int(v)))
	}
	switch {
	case e.offset > 0:
		sb.WriteString(" + ")
		sb.WriteString(formatFloat(e.offset))
	case e.offset < 0:
		sb.WriteString(" - ")
		sb.WriteString(formatFloat(-e.offset))
	}
	return sb.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
