// Package sensitivity implements post-optimality analysis: shadow prices
// and one-at-a-time ranging on cost coefficients and right-hand sides,
// using a solved problem's final basis.
package sensitivity

import (
	"math"

	"github.com/kvlabs/lpsolve/canonical"
	"github.com/kvlabs/lpsolve/config"
)

const unbounded = math.MaxFloat64

// Range is a one-at-a-time allowable-change interval. A bound at
// +/-unbounded means that side is unconstrained.
type Range struct {
	Lower float64
	Upper float64
}

// Analyzer reconstructs A, b, c from a canonical tableau's structure and
// final basis, then answers shadow-price and ranging queries against it.
type Analyzer struct {
	t     *canonical.Tableau
	basis []int

	binv *canonicalMatrix
	y    []float64 // shadow prices
	xB   []float64 // B^-1 b
	cfg  config.Solver
}

// canonicalMatrix is a tiny wrapper so this package does not need to
// import gonum/mat's full surface just to index B^-1.
type canonicalMatrix struct {
	data []float64
	m    int
}

func (cm *canonicalMatrix) at(i, j int) float64 { return cm.data[i*cm.m+j] }

// New builds an Analyzer from the canonical tableau and the basis a
// simplex solve finished on.
func New(t *canonical.Tableau, finalBasis []int, cfg config.Solver) (*Analyzer, error) {
	binvDense, err := canonical.InvertBasis(t.Rows, finalBasis, t.M, cfg.EpsPivot)
	if err != nil {
		return nil, err
	}
	binv := &canonicalMatrix{data: make([]float64, t.M*t.M), m: t.M}
	for i := 0; i < t.M; i++ {
		for j := 0; j < t.M; j++ {
			binv.data[i*t.M+j] = binvDense.At(i, j)
		}
	}

	cB := make([]float64, t.M)
	for i, bi := range finalBasis {
		cB[i] = t.CFull[bi]
	}
	y := make([]float64, t.M)
	for j := 0; j < t.M; j++ {
		sum := 0.0
		for i := 0; i < t.M; i++ {
			sum += cB[i] * binv.at(i, j)
		}
		y[j] = sum
	}

	b := make([]float64, t.M)
	for i := 0; i < t.M; i++ {
		b[i] = t.Rows[i][t.N]
	}
	xB := make([]float64, t.M)
	for i := 0; i < t.M; i++ {
		sum := 0.0
		for k := 0; k < t.M; k++ {
			sum += binv.at(i, k) * b[k]
		}
		xB[i] = sum
	}

	return &Analyzer{t: t, basis: finalBasis, binv: binv, y: y, xB: xB, cfg: cfg}, nil
}

// ShadowPrices returns y = B^-T c_B, one entry per constraint row.
func (a *Analyzer) ShadowPrices() []float64 {
	return append([]float64(nil), a.y...)
}

// reducedCost computes r_j = c_j - A_j^T y for tableau column j.
func (a *Analyzer) reducedCost(j int) float64 {
	aj := 0.0
	for i := 0; i < a.t.M; i++ {
		aj += a.t.Rows[i][j] * a.y[i]
	}
	return a.t.CFull[j] - aj
}

func (a *Analyzer) isBasic(j int) bool {
	for _, bi := range a.basis {
		if bi == j {
			return true
		}
	}
	return false
}

// NonBasicCostRange returns the allowable-change range for a non-basic
// column's objective coefficient: increasing c_j by up to -r_j keeps r_j
// <= 0 (Maximize convention); the decrease side is unbounded.
func (a *Analyzer) NonBasicCostRange(j int) Range {
	r := a.reducedCost(j)
	return Range{Lower: -unbounded, Upper: -r}
}

// BasicCostRange returns the allowable-change range for the objective
// coefficient of the variable basic at basis position i.
func (a *Analyzer) BasicCostRange(i int) Range {
	m := a.t.M
	w := make([]float64, m)
	for j := 0; j < m; j++ {
		w[j] = a.binv.at(i, j)
	}

	lower, upper := -unbounded, unbounded
	for j := 0; j < a.t.N; j++ {
		if a.isBasic(j) {
			continue
		}
		av := 0.0
		for k := 0; k < m; k++ {
			av += a.t.Rows[k][j] * w[k]
		}
		if math.Abs(av) <= a.cfg.EpsPivot {
			continue
		}
		r0 := a.reducedCost(j)
		delta := r0 / av
		if av > a.cfg.EpsPivot {
			if delta < upper {
				upper = delta
			}
		} else {
			if delta > lower {
				lower = delta
			}
		}
	}
	return Range{Lower: lower, Upper: upper}
}

// RHSRange returns the allowable-change range for constraint row i's
// right-hand side, holding the current basis optimal.
func (a *Analyzer) RHSRange(i int) Range {
	m := a.t.M
	v := make([]float64, m)
	for r := 0; r < m; r++ {
		v[r] = a.binv.at(r, i)
	}

	decreaseBound, increaseBound := unbounded, unbounded
	for r := 0; r < m; r++ {
		if v[r] > a.cfg.EpsPivot {
			bound := a.xB[r] / v[r]
			if bound < decreaseBound {
				decreaseBound = bound
			}
		} else if v[r] < -a.cfg.EpsPivot {
			bound := -a.xB[r] / v[r]
			if bound < increaseBound {
				increaseBound = bound
			}
		}
	}
	return Range{Lower: -decreaseBound, Upper: increaseBound}
}
