package knapsack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvlabs/lpsolve/config"
	"github.com/kvlabs/lpsolve/model"
)

// classic 4-item 0/1-knapsack: weights [2,3,4,5], profits [3,4,5,6],
// capacity 5. Optimal is items {1,2} (weight 5, profit 7).
func TestSolve_classicKnapsack(t *testing.T) {
	m := model.Model{
		Sense: model.Maximize,
		Cost:  []float64{3, 4, 5, 6},
		Constraints: []model.Constraint{
			{Coeffs: []float64{2, 3, 4, 5}, Relation: model.LessEqual, RHS: 5},
		},
		Signs: []model.SignRestriction{model.Binary, model.Binary, model.Binary, model.Binary},
	}
	res, err := Solve(m, config.Default())
	require.NoError(t, err)

	assert.InDelta(t, 7.0, res.BestProfit, 1e-9)
	assert.Equal(t, []int{1, 2}, res.BestTaken)
	assert.NotEmpty(t, res.Nodes)
}

func TestSolve_rejectsNonMaximize(t *testing.T) {
	m := model.Model{
		Sense:       model.Minimize,
		Cost:        []float64{1},
		Constraints: []model.Constraint{{Coeffs: []float64{1}, Relation: model.LessEqual, RHS: 1}},
		Signs:       []model.SignRestriction{model.Binary},
	}
	_, err := Solve(m, config.Default())
	var de *model.DomainError
	assert.ErrorAs(t, err, &de)
}

func TestSolve_rejectsWrongFirstRelation(t *testing.T) {
	m := model.Model{
		Sense:       model.Maximize,
		Cost:        []float64{1},
		Constraints: []model.Constraint{{Coeffs: []float64{1}, Relation: model.GreaterEqual, RHS: 1}},
		Signs:       []model.SignRestriction{model.Binary},
	}
	_, err := Solve(m, config.Default())
	assert.Error(t, err)
}

func TestBound_isGreedyFractionalTopUp(t *testing.T) {
	s := &search{
		items: []Item{
			{Index: 1, Weight: 2, Profit: 4, Ratio: 2},
			{Index: 2, Weight: 4, Profit: 4, Ratio: 1},
		},
		capacity: 3,
		eps:      config.Default().EpsFeasibility,
	}
	// item1 fully fits (weight 2, profit 4), leaving capacity 1 of item2
	// (ratio 1): bound = 4 + 1*1 = 5.
	assert.InDelta(t, 5.0, s.bound(0, 3, 0), 1e-9)
}
