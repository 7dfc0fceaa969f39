package milp

import (
	"errors"
	"math"

	"github.com/kvlabs/lpsolve/canonical"
	"github.com/kvlabs/lpsolve/config"
	"github.com/kvlabs/lpsolve/model"
	"github.com/kvlabs/lpsolve/simplex"
)

// ErrNoIntegerFeasible is returned when the search ends, either by
// exhausting every node or by reaching the node-count cap, without ever
// finding an integer-feasible relaxation.
var ErrNoIntegerFeasible = errors.New("milp: no integer-feasible solution found")

// ErrNodeCapReached is returned alongside the best incumbent found so far
// when the node-count cap aborts the search before it would otherwise
// have concluded.
var ErrNodeCapReached = errors.New("milp: node cap reached before search concluded")

// Result is the outcome of BranchAndBound or CuttingPlane: the best
// integer objective seen, the corresponding solution vector, and the full
// visited-node list for auditing.
type Result struct {
	Objective float64
	Values    []float64
	Tree      *Tree
}

// BranchAndBound runs recursive depth-first branch-and-bound over LP
// relaxations.
func BranchAndBound(base model.Model, cfg config.Solver) (*Result, error) {
	if err := base.Validate(); err != nil {
		return nil, err
	}

	s := &bnbSearch{base: base, cfg: cfg, tree: &Tree{}, bestInternal: math.Inf(-1)}
	capped, err := s.visit(nil, -1)
	if err != nil {
		return nil, err
	}

	if !s.haveIncumbent {
		return &Result{Tree: s.tree}, ErrNoIntegerFeasible
	}
	result := &Result{Objective: s.bestObjective, Values: s.bestValues, Tree: s.tree}
	if capped {
		return result, ErrNodeCapReached
	}
	return result, nil
}

type bnbSearch struct {
	base         model.Model
	cfg          config.Solver
	tree         *Tree
	nodeCount    int
	bestInternal float64

	haveIncumbent bool
	bestObjective float64
	bestValues    []float64
}

// visit solves one node's LP relaxation and, depending on its outcome,
// fathoms it, records it as an integer-feasible candidate, or branches
// into two children. Returns capped=true if the node-count cap was hit
// during this call or any of its descendants.
func (s *bnbSearch) visit(constraints []model.Constraint, parentID int) (bool, error) {
	if s.nodeCount >= s.cfg.MaxBranchAndBoundNodes {
		s.tree.add(&Node{ID: s.nodeCount, ParentID: parentID, Decision: DecisionNodeCapReached})
		return true, nil
	}

	id := s.nodeCount
	s.nodeCount++

	augmented := s.base.Clone()
	augmented.Constraints = append(augmented.Constraints, constraints...)

	tbl, err := canonical.Build(augmented, s.cfg)
	if err != nil {
		return false, err
	}

	lpResult, err := simplex.Solve(tbl, s.cfg)
	if err != nil {
		switch e := err.(type) {
		case *simplex.InfeasibleError:
			s.tree.add(&Node{ID: id, ParentID: parentID, Constraints: constraints, LPLog: e.Log, Decision: DecisionSubproblemInfeasible})
			return false, nil
		case *simplex.UnboundedError:
			// An unbounded relaxation at a node is a relaxation failure,
			// not a problem-wide unboundedness claim: prune it.
			s.tree.add(&Node{ID: id, ParentID: parentID, Constraints: constraints, LPLog: e.Log, Decision: DecisionSubproblemUnbounded})
			return false, nil
		default:
			return false, err
		}
	}

	objInternal := internalObjective(s.base.Sense, lpResult.Objective)

	if s.haveIncumbent && objInternal < s.bestInternal-s.cfg.EpsFeasibility {
		s.tree.add(&Node{ID: id, ParentID: parentID, Constraints: constraints, LPLog: lpResult.Log,
			Objective: lpResult.Objective, Values: lpResult.Values, Decision: DecisionFathomedByBound})
		return false, nil
	}

	fracIdx, fracVal, allIntegral := mostFractional(s.base.Signs, lpResult.Values, s.cfg.EpsFeasibility)

	if allIntegral {
		s.tree.add(&Node{ID: id, ParentID: parentID, Constraints: constraints, LPLog: lpResult.Log,
			Objective: lpResult.Objective, Values: lpResult.Values, Decision: DecisionIntegerFeasible})

		if !s.haveIncumbent || objInternal > s.bestInternal {
			s.haveIncumbent = true
			s.bestInternal = objInternal
			s.bestObjective = lpResult.Objective
			s.bestValues = append([]float64(nil), lpResult.Values...)
		}
		return false, nil
	}

	s.tree.add(&Node{ID: id, ParentID: parentID, Constraints: constraints, LPLog: lpResult.Log,
		Objective: lpResult.Objective, Values: lpResult.Values, Decision: DecisionBranched})

	floorVal := math.Floor(fracVal)
	left := append(append([]model.Constraint(nil), constraints...),
		model.Constraint{Coeffs: unitVector(len(s.base.Cost), fracIdx), Relation: model.LessEqual, RHS: floorVal})
	right := append(append([]model.Constraint(nil), constraints...),
		model.Constraint{Coeffs: unitVector(len(s.base.Cost), fracIdx), Relation: model.GreaterEqual, RHS: floorVal + 1})

	if capped, err := s.visit(left, id); capped || err != nil {
		return capped, err
	}
	return s.visit(right, id)
}

// mostFractional returns the integer/binary-constrained variable with the
// greatest fractionality, i.e. the largest |x - round(x)|.
func mostFractional(signs []model.SignRestriction, values []float64, eps float64) (idx int, val float64, allIntegral bool) {
	allIntegral = true
	best := -1.0
	idx = -1
	for i, sign := range signs {
		if !sign.Integral() {
			continue
		}
		frac := math.Abs(values[i] - math.Round(values[i]))
		if frac > eps {
			allIntegral = false
			if frac > best {
				best = frac
				idx = i
				val = values[i]
			}
		}
	}
	return idx, val, allIntegral
}

func unitVector(n, idx int) []float64 {
	v := make([]float64, n)
	v[idx] = 1
	return v
}

// internalObjective un-negates a user-facing objective back to the
// solver's internal always-maximise convention, used for bound
// comparisons during the search.
func internalObjective(sense model.Sense, reported float64) float64 {
	if sense == model.Minimize {
		return -reported
	}
	return reported
}
