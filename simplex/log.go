// Package simplex implements the tableau-form and revised primal simplex
// engines: shared Bland's-rule pivoting policy, unboundedness/infeasibility
// detection, and an append-only iteration log suitable for post-mortem
// inspection by the sensitivity analyzer and for rendering by package
// report.
package simplex

import "github.com/kvlabs/lpsolve/model"

// Iteration is one append-only entry of a Log: a full snapshot of the
// tableau and basis after the pivot that produced it (or, for the first
// entry, the canonical starting tableau).
type Iteration struct {
	Tableau  [][]float64
	Basis    []int
	Entering int // -1 for the initial snapshot
	Leaving  int // -1 for the initial snapshot
}

// PriceOut is a revised-simplex-only log entry recorded before an
// entering-column decision: the dual vector, reduced costs, the chosen
// entering column, and the current objective value.
type PriceOut struct {
	Y        []float64
	Reduced  []float64
	Entering int // -1 if none found (optimal)
	Z        float64
}

// ProductForm is a revised-simplex-only log entry recorded for the ratio
// test and basis update of one iteration.
type ProductForm struct {
	Direction []float64
	XBBefore  []float64
	Theta     float64
	XBAfter   []float64
	Leaving   int
}

// Log is the append-only solve record shared by both simplex variants.
// Created at solve start, mutated only by the solver, read by exporters
// and by the sensitivity analyzer, which needs the final basis.
type Log struct {
	Iterations []Iteration

	// Revised-simplex-only entries, empty for the tableau-form solver.
	PriceOuts    []PriceOut
	ProductForms []ProductForm

	// ColumnLabels has one entry per tableau column (length NCols), not
	// per original decision variable -- see canonical.Tableau.ColumnLabels.
	ColumnLabels []string
	CFull        []float64
	M            int
	NCols        int
	Sense        model.Sense
}

func copyRows(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = append([]float64(nil), r...)
	}
	return out
}

func copyInts(xs []int) []int {
	return append([]int(nil), xs...)
}

func copyFloats(xs []float64) []float64 {
	return append([]float64(nil), xs...)
}
