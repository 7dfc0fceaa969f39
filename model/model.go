// Package model defines the parsed-problem representation that the
// canonical builder, solvers and analyzer all consume and produce.
package model

import "fmt"

// Sense is the optimisation direction of a Model.
type Sense int

const (
	Maximize Sense = iota
	Minimize
)

func (s Sense) String() string {
	if s == Maximize {
		return "max"
	}
	return "min"
}

// Relation is the comparison operator of a Constraint.
type Relation int

const (
	LessEqual Relation = iota
	GreaterEqual
	Equal
)

func (r Relation) String() string {
	switch r {
	case LessEqual:
		return "<="
	case GreaterEqual:
		return ">="
	default:
		return "="
	}
}

// SignRestriction is the per-variable domain restriction.
type SignRestriction int

const (
	NonNeg SignRestriction = iota
	NonPos
	Free
	Integer
	Binary
)

func (s SignRestriction) String() string {
	switch s {
	case NonNeg:
		return "+"
	case NonPos:
		return "-"
	case Free:
		return "urs"
	case Integer:
		return "int"
	case Binary:
		return "bin"
	default:
		return "?"
	}
}

// Integral reports whether the restriction implies an integrality
// requirement on the variable. Integer and Binary imply integrality;
// for LP relaxation purposes both otherwise behave like NonNeg.
func (s SignRestriction) Integral() bool {
	return s == Integer || s == Binary
}

// Constraint is one row of the problem: a linear expression related to a
// right-hand-side scalar.
type Constraint struct {
	Coeffs   []float64
	Relation Relation
	RHS      float64
}

// Model is the parsed problem: an objective, a list of constraints and a
// per-variable sign restriction, all aligned on n0 decision variables.
type Model struct {
	Sense       Sense
	Cost        []float64
	Constraints []Constraint
	Signs       []SignRestriction
	VarNames    []string
}

// NVars returns n0, the number of original decision variables.
func (m Model) NVars() int {
	return len(m.Cost)
}

// Validate enforces the dimensional invariants: every constraint's
// coefficient vector and the sign vector must have length n0.
func (m Model) Validate() error {
	n0 := len(m.Cost)
	if n0 == 0 {
		return fmt.Errorf("model: empty objective")
	}
	if len(m.Signs) != n0 {
		return fmt.Errorf("model: sign restriction vector has length %d, want %d", len(m.Signs), n0)
	}
	for i, c := range m.Constraints {
		if len(c.Coeffs) != n0 {
			return fmt.Errorf("model: constraint %d has %d coefficients, want %d", i, len(c.Coeffs), n0)
		}
	}
	if m.VarNames != nil && len(m.VarNames) != n0 {
		return fmt.Errorf("model: variable name count %d, want %d", len(m.VarNames), n0)
	}
	return nil
}

// Names returns the variable names, falling back to x1..xn0 if the model
// was not given explicit names.
func (m Model) Names() []string {
	if len(m.VarNames) == m.NVars() {
		return m.VarNames
	}
	names := make([]string, m.NVars())
	for i := range names {
		names[i] = fmt.Sprintf("x%d", i+1)
	}
	return names
}

// Clone returns a deep copy of the model, safe to mutate independently
// (branch-and-bound and cutting-plane each append constraints to their own
// working copy without disturbing the parent node's model).
func (m Model) Clone() Model {
	out := Model{
		Sense:    m.Sense,
		Cost:     append([]float64(nil), m.Cost...),
		Signs:    append([]SignRestriction(nil), m.Signs...),
		VarNames: append([]string(nil), m.VarNames...),
	}
	out.Constraints = make([]Constraint, len(m.Constraints))
	for i, c := range m.Constraints {
		out.Constraints[i] = Constraint{
			Coeffs:   append([]float64(nil), c.Coeffs...),
			Relation: c.Relation,
			RHS:      c.RHS,
		}
	}
	return out
}

// AddConstraint returns the model with a new row appended, for chaining
// (used by the cutting-plane loop to add each cut). The receiver is a
// value, so only the returned model carries the new row.
func (m Model) AddConstraint(coeffs []float64, rel Relation, rhs float64) Model {
	m.Constraints = append(m.Constraints, Constraint{Coeffs: coeffs, Relation: rel, RHS: rhs})
	return m
}

// ParseError reports malformed model input, fatal to the parse call.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("parse error: %s", e.Msg)
}

// DomainError reports a request made to a solver outside its applicable
// domain, e.g. handing a minimisation model to the knapsack solver.
type DomainError struct {
	Msg string
}

func (e *DomainError) Error() string {
	return "domain error: " + e.Msg
}
