package milp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvlabs/lpsolve/config"
	"github.com/kvlabs/lpsolve/model"
)

func TestCuttingPlane_integerModelNeedsNoCuts(t *testing.T) {
	cfg := config.Default()
	m := model.Model{
		Sense:       model.Maximize,
		Cost:        []float64{1, 1},
		Constraints: []model.Constraint{{Coeffs: []float64{1, 1}, Relation: model.LessEqual, RHS: 4}},
		Signs:       []model.SignRestriction{model.Integer, model.Integer},
	}
	res, err := CuttingPlane(m, cfg)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, res.Objective, 1e-6)
	assert.Len(t, res.Tree.Nodes, 1)
}

func TestCuttingPlane_capReachedIsReported(t *testing.T) {
	cfg := config.Default()
	cfg.MaxCuttingPlaneIterations = 1
	m := knapsackLikeIPModel()
	_, err := CuttingPlane(m, cfg)
	assert.ErrorIs(t, err, ErrCuttingPlaneCapReached)
}
