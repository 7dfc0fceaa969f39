package simplex

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/kvlabs/lpsolve/canonical"
	"github.com/kvlabs/lpsolve/config"
)

// SolveRevised runs the revised primal simplex on a canonical model: same
// external contract and Bland's-rule pivoting policy as Solve, but
// maintains the basis inverse explicitly (recomputed each iteration by
// Gaussian elimination, via the canonical builder's own basis-inversion
// routine) instead of the full tableau.
func SolveRevised(t *canonical.Tableau, cfg config.Solver) (*Result, error) {
	m, n := t.M, t.N

	A := t.Rows
	b := make([]float64, m)
	for i := 0; i < m; i++ {
		b[i] = A[i][n]
	}
	c := t.CFull

	basis := copyInts(t.Basis)
	inBasis := make([]bool, n)
	for _, bi := range basis {
		inBasis[bi] = true
	}

	log := &Log{
		ColumnLabels: t.ColumnLabels(),
		CFull:        t.CFull,
		M:            m,
		NCols:        n,
		Sense:        t.Sense,
	}

	for iter := 0; iter < cfg.MaxSimplexIterations; iter++ {
		bInv, err := canonical.InvertBasis(A, basis, m, cfg.EpsPivot)
		if err != nil {
			return nil, err
		}

		cB := make([]float64, m)
		for i, bi := range basis {
			cB[i] = c[bi]
		}

		y := canonical.RowWeighted(bInv, cB, m)

		reduced := make([]float64, n)
		for j := 0; j < n; j++ {
			aj := 0.0
			for i := 0; i < m; i++ {
				aj += A[i][j] * y[i]
			}
			reduced[j] = c[j] - aj
		}

		z := 0.0
		for i := 0; i < m; i++ {
			z += y[i] * b[i]
		}

		entering := -1
		for j := 0; j < n; j++ {
			if !inBasis[j] && reduced[j] > cfg.EpsReducedCost {
				entering = j
				break
			}
		}

		log.PriceOuts = append(log.PriceOuts, PriceOut{
			Y:        copyFloats(y),
			Reduced:  copyFloats(reduced),
			Entering: entering,
			Z:        z,
		})

		if entering == -1 {
			return finishOptimalRevised(t, bInv, b, basis, log, cfg)
		}

		colEntering := make([]float64, m)
		for i := 0; i < m; i++ {
			colEntering[i] = A[i][entering]
		}
		direction := canonical.MatVec(bInv, colEntering, m)

		xB := canonical.MatVec(bInv, b, m)

		leaving := -1
		theta := math.Inf(1)
		for i := 0; i < m; i++ {
			d := direction[i]
			if d <= cfg.EpsReducedCost {
				continue
			}
			ratio := xB[i] / d
			switch {
			case leaving == -1 || ratio < theta-cfg.EpsPivot:
				theta = ratio
				leaving = i
			case ratio < theta+cfg.EpsPivot && basis[i] < basis[leaving]:
				// tie: fall back to the lower basis index, matching the
				// tableau-form solver's lowest-index tie-break.
				leaving = i
			}
		}

		if leaving == -1 {
			return nil, &UnboundedError{Log: log}
		}

		xBAfter := make([]float64, m)
		for i := 0; i < m; i++ {
			if i == leaving {
				xBAfter[i] = theta
			} else {
				xBAfter[i] = xB[i] - theta*direction[i]
			}
		}

		log.ProductForms = append(log.ProductForms, ProductForm{
			Direction: copyFloats(direction),
			XBBefore:  copyFloats(xB),
			Theta:     theta,
			XBAfter:   xBAfter,
			Leaving:   leaving,
		})

		inBasis[basis[leaving]] = false
		basis[leaving] = entering
		inBasis[entering] = true
	}

	return nil, &IterationLimitError{Log: log}
}

func finishOptimalRevised(t *canonical.Tableau, bInv *mat.Dense, b []float64, basis []int, log *Log, cfg config.Solver) (*Result, error) {
	xB := canonical.MatVec(bInv, b, t.M)

	for i, bi := range basis {
		if t.Columns[bi].Kind == canonical.ColArtificial && xB[i] > cfg.EpsFeasibility {
			return nil, &InfeasibleError{Log: log}
		}
	}

	cB := make([]float64, t.M)
	for i, bi := range basis {
		cB[i] = t.CFull[bi]
	}
	z := 0.0
	for i := range cB {
		z += cB[i] * xB[i]
	}

	return &Result{
		Log:        log,
		Objective:  t.ReportObjective(z),
		Values:     t.DecisionValues(xB, basis),
		FinalBasis: copyInts(basis),
	}, nil
}
