package milp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvlabs/lpsolve/config"
	"github.com/kvlabs/lpsolve/model"
)

// max 5x1 + 4x2 s.t. 6x1+4x2<=24, x1+2x2<=6, x1,x2 integer.
// LP relaxation optimum is (3, 1.5) with z=21; the integer optimum is
// (4, 0) with z=20 (a standard branch-and-bound textbook example).
func knapsackLikeIPModel() model.Model {
	return model.Model{
		Sense: model.Maximize,
		Cost:  []float64{5, 4},
		Constraints: []model.Constraint{
			{Coeffs: []float64{6, 4}, Relation: model.LessEqual, RHS: 24},
			{Coeffs: []float64{1, 2}, Relation: model.LessEqual, RHS: 6},
		},
		Signs: []model.SignRestriction{model.Integer, model.Integer},
	}
}

func TestBranchAndBound_findsIntegerOptimum(t *testing.T) {
	cfg := config.Default()
	res, err := BranchAndBound(knapsackLikeIPModel(), cfg)
	require.NoError(t, err)

	assert.InDelta(t, 20.0, res.Objective, 1e-6)
	for _, v := range res.Values {
		assert.InDelta(t, v, float64(int(v+0.5)), 1e-6)
	}
	assert.NotEmpty(t, res.Tree.Nodes)
}

func TestBranchAndBound_infeasibleSubproblemsArePruned(t *testing.T) {
	cfg := config.Default()
	m := model.Model{
		Sense: model.Maximize,
		Cost:  []float64{1, 1},
		Constraints: []model.Constraint{
			{Coeffs: []float64{1, 1}, Relation: model.LessEqual, RHS: 2},
			{Coeffs: []float64{1, 1}, Relation: model.GreaterEqual, RHS: 10},
		},
		Signs: []model.SignRestriction{model.Integer, model.Integer},
	}
	_, err := BranchAndBound(m, cfg)
	assert.ErrorIs(t, err, ErrNoIntegerFeasible)
}

func TestBranchAndBound_nodeCapStopsSearchEarly(t *testing.T) {
	cfg := config.Default()
	cfg.MaxBranchAndBoundNodes = 1
	_, err := BranchAndBound(knapsackLikeIPModel(), cfg)
	// with only one node permitted, the root relaxation (fractional) is
	// the only node visited before the cap aborts the search, so no
	// incumbent is ever found.
	assert.ErrorIs(t, err, ErrNoIntegerFeasible)
}

func TestMostFractional_allIntegralTrueWhenNoFractionalIntegerVars(t *testing.T) {
	signs := []model.SignRestriction{model.Integer, model.NonNeg}
	_, _, allIntegral := mostFractional(signs, []float64{2, 3.7}, 1e-6)
	assert.True(t, allIntegral)
}
