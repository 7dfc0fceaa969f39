package simplex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvlabs/lpsolve/canonical"
	"github.com/kvlabs/lpsolve/config"
	"github.com/kvlabs/lpsolve/model"
)

func TestSolveRevised_matchesTableauForm(t *testing.T) {
	cfg := config.Default()
	tbl, err := canonical.Build(textbookModel(), cfg)
	require.NoError(t, err)

	res, err := SolveRevised(tbl, cfg)
	require.NoError(t, err)

	assert.InDelta(t, 36.0, res.Objective, 1e-6)
	assert.InDelta(t, 2.0, res.Values[0], 1e-6)
	assert.InDelta(t, 6.0, res.Values[1], 1e-6)
	assert.NotEmpty(t, res.Log.PriceOuts)
	assert.Equal(t, len(res.Log.PriceOuts)-1, len(res.Log.ProductForms))
}

func TestSolveRevised_unbounded(t *testing.T) {
	cfg := config.Default()
	m := model.Model{
		Sense:       model.Maximize,
		Cost:        []float64{1},
		Constraints: []model.Constraint{{Coeffs: []float64{-1}, Relation: model.LessEqual, RHS: 10}},
		Signs:       []model.SignRestriction{model.NonNeg},
	}
	tbl, err := canonical.Build(m, cfg)
	require.NoError(t, err)

	_, err = SolveRevised(tbl, cfg)
	var unb *UnboundedError
	assert.ErrorAs(t, err, &unb)
}
