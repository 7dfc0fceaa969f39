package simplex

import (
	"math"

	"github.com/kvlabs/lpsolve/canonical"
	"github.com/kvlabs/lpsolve/config"
)

// Solve runs the tableau-form primal simplex on a canonical model:
// Bland's-rule pivoting (lowest-index entering column, lowest-index
// tie-break on the leaving ratio test), cycling-free by construction.
func Solve(t *canonical.Tableau, cfg config.Solver) (*Result, error) {
	rows := copyRows(t.Rows)
	basis := copyInts(t.Basis)

	log := &Log{
		ColumnLabels: t.ColumnLabels(),
		CFull:        t.CFull,
		M:            t.M,
		NCols:        t.N,
		Sense:        t.Sense,
	}
	log.Iterations = append(log.Iterations, Iteration{
		Tableau:  copyRows(rows),
		Basis:    copyInts(basis),
		Entering: -1,
		Leaving:  -1,
	})

	for iter := 0; iter < cfg.MaxSimplexIterations; iter++ {
		entering := -1
		for j := 0; j < t.N; j++ {
			if rows[t.M][j] > cfg.EpsReducedCost {
				entering = j
				break
			}
		}

		if entering == -1 {
			return finishOptimal(t, rows, basis, log, cfg)
		}

		leaving := -1
		bestRatio := math.Inf(1)
		for i := 0; i < t.M; i++ {
			a := rows[i][entering]
			if a <= cfg.EpsReducedCost {
				continue
			}
			ratio := rows[i][t.N] / a
			// scanning i ascending: only replace on a strictly smaller
			// ratio, so a tie keeps the lower row index (Bland's rule).
			if ratio < bestRatio-cfg.EpsPivot {
				bestRatio = ratio
				leaving = i
			}
		}

		if leaving == -1 {
			return nil, &UnboundedError{Log: log}
		}

		pivot(rows, leaving, entering, t.M, t.N, cfg.EpsPivot)
		basis[leaving] = entering

		log.Iterations = append(log.Iterations, Iteration{
			Tableau:  copyRows(rows),
			Basis:    copyInts(basis),
			Entering: entering,
			Leaving:  leaving,
		})
	}

	return nil, &IterationLimitError{Log: log}
}

// pivot scales the pivot row to make the pivot element 1, then clears the
// entering column in every other row (including the z row) by subtracting
// the appropriate multiple of the pivot row.
func pivot(rows [][]float64, pivotRow, pivotCol, m, n int, epsPivot float64) {
	pv := rows[pivotRow][pivotCol]
	for j := 0; j <= n; j++ {
		rows[pivotRow][j] /= pv
	}
	for i := 0; i <= m; i++ {
		if i == pivotRow {
			continue
		}
		factor := rows[i][pivotCol]
		if math.Abs(factor) <= epsPivot {
			continue
		}
		for j := 0; j <= n; j++ {
			rows[i][j] -= factor * rows[pivotRow][j]
		}
	}
}

// finishOptimal checks the infeasibility condition (an artificial variable
// remaining basic at a positive value) and, if clean, assembles the
// Result.
func finishOptimal(t *canonical.Tableau, rows [][]float64, basis []int, log *Log, cfg config.Solver) (*Result, error) {
	for i, bi := range basis {
		if t.Columns[bi].Kind == canonical.ColArtificial && rows[i][t.N] > cfg.EpsFeasibility {
			return nil, &InfeasibleError{Log: log}
		}
	}

	basicValues := make([]float64, t.M)
	for i := 0; i < t.M; i++ {
		basicValues[i] = rows[i][t.N]
	}

	return &Result{
		Log:          log,
		Objective:    t.ReportObjective(rows[t.M][t.N]),
		Values:       t.DecisionValues(basicValues, basis),
		FinalTableau: rows,
		FinalBasis:   basis,
	}, nil
}
