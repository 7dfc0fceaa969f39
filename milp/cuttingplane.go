package milp

import (
	"errors"
	"math"

	"github.com/kvlabs/lpsolve/canonical"
	"github.com/kvlabs/lpsolve/config"
	"github.com/kvlabs/lpsolve/model"
	"github.com/kvlabs/lpsolve/simplex"
)

// ErrCuttingPlaneCapReached is returned alongside the last relaxation
// solved when the iteration cap is hit without reaching an all-integer
// solution.
var ErrCuttingPlaneCapReached = errors.New("milp: cutting-plane iteration cap reached")

// CuttingPlane runs a simplified Gomory-style cutting-plane loop: solve
// the relaxation, pick the decision variable with maximum fractionality,
// append a rounding cut x_j <= floor(x_j*), and re-canonicalise. This is
// a weak cut -- it is not a true fractional-part Gomory cut derived from
// the final tableau row, and is not guaranteed to terminate with an
// integer solution.
func CuttingPlane(base model.Model, cfg config.Solver) (*Result, error) {
	if err := base.Validate(); err != nil {
		return nil, err
	}

	working := base.Clone()
	tree := &Tree{}

	for iter := 0; iter < cfg.MaxCuttingPlaneIterations; iter++ {
		parentID := iter - 1

		tbl, err := canonical.Build(working, cfg)
		if err != nil {
			return nil, err
		}

		res, err := simplex.Solve(tbl, cfg)
		if err != nil {
			if infeasible, ok := err.(*simplex.InfeasibleError); ok {
				tree.add(&Node{ID: iter, ParentID: parentID, Decision: DecisionSubproblemInfeasible, LPLog: infeasible.Log})
				return &Result{Tree: tree}, infeasible
			}
			return nil, err
		}

		fracIdx, fracVal, allIntegral := mostFractional(working.Signs, res.Values, cfg.EpsFeasibility)
		if allIntegral {
			tree.add(&Node{ID: iter, ParentID: parentID, Decision: DecisionIntegerFeasible,
				LPLog: res.Log, Objective: res.Objective, Values: res.Values})
			return &Result{Objective: res.Objective, Values: res.Values, Tree: tree}, nil
		}

		tree.add(&Node{ID: iter, ParentID: parentID, Decision: DecisionCutAdded,
			LPLog: res.Log, Objective: res.Objective, Values: res.Values})

		floorVal := math.Floor(fracVal)
		working = working.AddConstraint(unitVector(len(working.Cost), fracIdx), model.LessEqual, floorVal)

		if iter == cfg.MaxCuttingPlaneIterations-1 {
			return &Result{Objective: res.Objective, Values: res.Values, Tree: tree}, ErrCuttingPlaneCapReached
		}
	}

	return &Result{Tree: tree}, ErrCuttingPlaneCapReached
}
