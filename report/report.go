// Package report renders the plain-text output artefacts: fixed-width
// tableau blocks, entering/leaving annotations, the interleaved
// revised-solver trace, and the final objective/value report.
// It is a pure formatter, kept separate from the core so the numerical
// packages never need an output-formatting dependency.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/kvlabs/lpsolve/simplex"
)

const colWidth = 10

func cell(v float64) string {
	return fmt.Sprintf("%*.3f", colWidth, v)
}

// Tableau renders one fixed-width tableau block: a header row of column
// labels, a separator, and body rows labelled with the basic variable's
// column label (or "xB" when the basis entry has no label) and "z" for the
// final (objective) row.
func Tableau(w io.Writer, rows [][]float64, labels []string, basis []int) {
	m := len(rows) - 1

	fmt.Fprintf(w, "%*s", colWidth, "")
	for _, l := range labels {
		fmt.Fprintf(w, "%*s", colWidth, l)
	}
	fmt.Fprintf(w, "%*s\n", colWidth, "RHS")

	fmt.Fprintln(w, strings.Repeat("-", colWidth*(len(labels)+2)))

	for i := 0; i < m; i++ {
		rowLabel := "xB"
		if i < len(basis) && basis[i] < len(labels) {
			rowLabel = labels[basis[i]]
		}
		fmt.Fprintf(w, "%*s", colWidth, rowLabel)
		for _, v := range rows[i] {
			fmt.Fprint(w, cell(v))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%*s", colWidth, "z")
	for _, v := range rows[m] {
		fmt.Fprint(w, cell(v))
	}
	fmt.Fprintln(w)
}

// Log renders the tableau-form simplex trace: one Tableau block per
// iteration, with an entering/leaving annotation line between iterations.
func Log(w io.Writer, log *simplex.Log) {
	for i, it := range log.Iterations {
		if i > 0 {
			fmt.Fprintf(w, "\n-- entering %s, leaving row %d --\n\n",
				log.ColumnLabels[it.Entering], it.Leaving)
		}
		Tableau(w, it.Tableau, log.ColumnLabels, it.Basis)
	}
}

// RevisedLog renders the revised-simplex trace: interleaved [Price-Out]
// and [Product-Form] blocks, one pair per iteration that did not
// terminate the search.
func RevisedLog(w io.Writer, log *simplex.Log) {
	for i, po := range log.PriceOuts {
		fmt.Fprintf(w, "[Price-Out] y=%v reduced=%v entering=%v z=%.3f\n", po.Y, po.Reduced, enteringLabel(log, po.Entering), po.Z)
		if i < len(log.ProductForms) {
			pf := log.ProductForms[i]
			fmt.Fprintf(w, "[Product-Form] d=%v xB_before=%v theta=%.3f xB_after=%v leaving_row=%d\n",
				pf.Direction, pf.XBBefore, pf.Theta, pf.XBAfter, pf.Leaving)
		}
	}
}

func enteringLabel(log *simplex.Log, entering int) string {
	if entering < 0 || entering >= len(log.ColumnLabels) {
		return "none"
	}
	return log.ColumnLabels[entering]
}

// Status is the footer line for a completed solve.
type Status string

const (
	StatusOptimal      Status = "OPTIMAL"
	StatusUnbounded    Status = "UNBOUNDED"
	StatusInfeasible   Status = "INFEASIBLE"
	StatusIterationCap Status = "ITERATION_LIMIT"
)

// Footer prints the one-word terminal status line.
func Footer(w io.Writer, status Status) {
	fmt.Fprintln(w, status)
}

// FinalReport prints "Objective z = ..." followed by each decision
// variable's value.
func FinalReport(w io.Writer, objective float64, varNames []string, values []float64) {
	fmt.Fprintf(w, "Objective z = %.3f\n", objective)
	for i, name := range varNames {
		fmt.Fprintf(w, "%s = %.3f\n", name, values[i])
	}
}
