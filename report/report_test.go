package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvlabs/lpsolve/canonical"
	"github.com/kvlabs/lpsolve/config"
	"github.com/kvlabs/lpsolve/model"
	"github.com/kvlabs/lpsolve/simplex"
)

func TestLog_rendersOneBlockPerIteration(t *testing.T) {
	cfg := config.Default()
	m := model.Model{
		Sense:       model.Maximize,
		Cost:        []float64{3, 5},
		Constraints: []model.Constraint{{Coeffs: []float64{1, 0}, Relation: model.LessEqual, RHS: 4}},
		Signs:       []model.SignRestriction{model.NonNeg, model.NonNeg},
	}
	tbl, err := canonical.Build(m, cfg)
	require.NoError(t, err)
	res, err := simplex.Solve(tbl, cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	Log(&buf, res.Log)

	out := buf.String()
	assert.Contains(t, out, "RHS")
	assert.Contains(t, out, "z")
}

func TestFinalReport_printsObjectiveAndValues(t *testing.T) {
	var buf bytes.Buffer
	FinalReport(&buf, 36, []string{"x1", "x2"}, []float64{2, 6})

	out := buf.String()
	assert.True(t, strings.Contains(out, "Objective z = 36.000"))
	assert.True(t, strings.Contains(out, "x1 = 2.000"))
	assert.True(t, strings.Contains(out, "x2 = 6.000"))
}

func TestFooter_printsStatus(t *testing.T) {
	var buf bytes.Buffer
	Footer(&buf, StatusOptimal)
	assert.Equal(t, "OPTIMAL\n", buf.String())
}
