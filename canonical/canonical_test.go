package canonical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvlabs/lpsolve/config"
	"github.com/kvlabs/lpsolve/model"
)

func TestBuild_lessEqualGetsBasicSlack(t *testing.T) {
	m := model.Model{
		Sense:       model.Maximize,
		Cost:        []float64{3, 5},
		Constraints: []model.Constraint{{Coeffs: []float64{1, 0}, Relation: model.LessEqual, RHS: 4}},
		Signs:       []model.SignRestriction{model.NonNeg, model.NonNeg},
	}
	tbl, err := Build(m, config.Default())
	require.NoError(t, err)

	assert.Equal(t, 0, tbl.NArtificial)
	assert.Equal(t, 1, tbl.NSlack)
	assert.Equal(t, []int{2}, tbl.Basis) // column 2 is the slack
}

func TestBuild_equalityGetsArtificial(t *testing.T) {
	m := model.Model{
		Sense:       model.Maximize,
		Cost:        []float64{1, 1},
		Constraints: []model.Constraint{{Coeffs: []float64{1, 1}, Relation: model.Equal, RHS: 4}},
		Signs:       []model.SignRestriction{model.NonNeg, model.NonNeg},
	}
	tbl, err := Build(m, config.Default())
	require.NoError(t, err)

	assert.Equal(t, 1, tbl.NArtificial)
	assert.Equal(t, 0, tbl.NSlack)
	assert.Equal(t, ColArtificial, tbl.Columns[tbl.Basis[0]].Kind)
	assert.Equal(t, -tbl.BigM, tbl.CFull[tbl.Basis[0]])
}

func TestBuild_greaterEqualGetsSurplusAndArtificial(t *testing.T) {
	m := model.Model{
		Sense:       model.Minimize,
		Cost:        []float64{1, 1},
		Constraints: []model.Constraint{{Coeffs: []float64{1, 1}, Relation: model.GreaterEqual, RHS: 4}},
		Signs:       []model.SignRestriction{model.NonNeg, model.NonNeg},
	}
	tbl, err := Build(m, config.Default())
	require.NoError(t, err)

	assert.Equal(t, 1, tbl.NSlack)
	assert.Equal(t, 1, tbl.NArtificial)
	assert.Equal(t, ColSlackNegative, tbl.Columns[2].Kind)
}

func TestBuild_negativeRHSIsNormalised(t *testing.T) {
	m := model.Model{
		Sense:       model.Maximize,
		Cost:        []float64{1, 1},
		Constraints: []model.Constraint{{Coeffs: []float64{1, 1}, Relation: model.LessEqual, RHS: -4}},
		Signs:       []model.SignRestriction{model.NonNeg, model.NonNeg},
	}
	tbl, err := Build(m, config.Default())
	require.NoError(t, err)

	// flipped to >= 4, so it now needs a surplus + artificial, not a slack.
	assert.Equal(t, 1, tbl.NArtificial)
	assert.Equal(t, 4.0, tbl.Rows[0][tbl.N])
}

func TestBuild_freeVariableSplitsIntoTwoColumns(t *testing.T) {
	m := model.Model{
		Sense:       model.Maximize,
		Cost:        []float64{1, -1},
		Constraints: []model.Constraint{{Coeffs: []float64{1, 1}, Relation: model.LessEqual, RHS: 4}},
		Signs:       []model.SignRestriction{model.Free, model.NonNeg},
	}
	tbl, err := Build(m, config.Default())
	require.NoError(t, err)

	assert.Equal(t, 3, tbl.NDecision) // x1+, x1-, x2
	assert.Equal(t, ColFreeSplitPositive, tbl.Columns[0].Kind)
	assert.Equal(t, ColFreeSplitNegative, tbl.Columns[1].Kind)
}

func TestBuild_nonPosVariableIsNegated(t *testing.T) {
	m := model.Model{
		Sense:       model.Maximize,
		Cost:        []float64{2, 1},
		Constraints: []model.Constraint{{Coeffs: []float64{1, 1}, Relation: model.LessEqual, RHS: 4}},
		Signs:       []model.SignRestriction{model.NonPos, model.NonNeg},
	}
	tbl, err := Build(m, config.Default())
	require.NoError(t, err)

	assert.Equal(t, ColNonPosNegated, tbl.Columns[0].Kind)
	assert.Equal(t, -2.0, tbl.CFull[0])
	assert.Equal(t, -1.0, tbl.Rows[0][0])
}

func TestDecisionValues_foldsSignsBack(t *testing.T) {
	m := model.Model{
		Sense:       model.Maximize,
		Cost:        []float64{1, 1},
		Constraints: []model.Constraint{{Coeffs: []float64{1, 0}, Relation: model.LessEqual, RHS: 4}},
		Signs:       []model.SignRestriction{model.NonPos, model.NonNeg},
	}
	tbl, err := Build(m, config.Default())
	require.NoError(t, err)

	basicValues := make([]float64, tbl.M)
	basicValues[0] = 4
	values := tbl.DecisionValues(basicValues, tbl.Basis)
	assert.Len(t, values, 2)

	// with x1's negated column (column 0) basic at 4, x1 folds back to -4.
	values = tbl.DecisionValues([]float64{4}, []int{0})
	assert.Equal(t, -4.0, values[0])
}

func TestColumnLabels_namesSlacksAndArtificials(t *testing.T) {
	m := model.Model{
		Sense:       model.Maximize,
		Cost:        []float64{1, 1},
		Constraints: []model.Constraint{{Coeffs: []float64{1, 1}, Relation: model.Equal, RHS: 4}},
		Signs:       []model.SignRestriction{model.NonNeg, model.NonNeg},
		VarNames:    []string{"x", "y"},
	}
	tbl, err := Build(m, config.Default())
	require.NoError(t, err)

	labels := tbl.ColumnLabels()
	assert.Equal(t, []string{"x", "y", "a1"}, labels)
}

func TestInvertBasis_identityAtConstruction(t *testing.T) {
	m := model.Model{
		Sense:       model.Maximize,
		Cost:        []float64{1, 1},
		Constraints: []model.Constraint{{Coeffs: []float64{1, 0}, Relation: model.LessEqual, RHS: 4}},
		Signs:       []model.SignRestriction{model.NonNeg, model.NonNeg},
	}
	tbl, err := Build(m, config.Default())
	require.NoError(t, err)

	binv, err := InvertBasis(tbl.Rows, tbl.Basis, tbl.M, config.Default().EpsPivot)
	require.NoError(t, err)
	assert.Equal(t, 1.0, binv.At(0, 0))
}

func TestInvertBasis_singularIsAnError(t *testing.T) {
	rows := [][]float64{{0, 1, 5}, {0, 1, 5}}
	_, err := InvertBasis(rows, []int{0, 1}, 2, config.Default().EpsPivot)
	assert.Error(t, err)
}
