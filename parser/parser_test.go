package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvlabs/lpsolve/model"
)

func TestParse_validModel(t *testing.T) {
	src := `max 3 5
1 0 <= 4
0 2 <= 12
3 2 <= 18
+ +`
	m, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, model.Maximize, m.Sense)
	assert.Equal(t, []float64{3, 5}, m.Cost)
	assert.Len(t, m.Constraints, 3)
	assert.Equal(t, []model.SignRestriction{model.NonNeg, model.NonNeg}, m.Signs)
}

func TestParse_signTokens(t *testing.T) {
	src := `min 1 1 1 1
1 1 1 1 = 4
- urs int bin`
	m, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []model.SignRestriction{model.NonPos, model.Free, model.Integer, model.Binary}, m.Signs)
}

func TestParse_rejectsUnknownSense(t *testing.T) {
	_, err := Parse(strings.NewReader("zzz 1 2\n+ +"))
	require.Error(t, err)
	var pe *model.ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestParse_rejectsWrongConstraintWidth(t *testing.T) {
	src := `max 1 2
1 <= 4
+ +`
	_, err := Parse(strings.NewReader(src))
	require.Error(t, err)
}

func TestParse_rejectsWrongSignCount(t *testing.T) {
	src := `max 1 2
1 1 <= 4
+`
	_, err := Parse(strings.NewReader(src))
	require.Error(t, err)
}

func TestParse_rejectsUnknownSignToken(t *testing.T) {
	src := `max 1 2
1 1 <= 4
+ ???`
	_, err := Parse(strings.NewReader(src))
	require.Error(t, err)
}

func TestParse_ignoresBlankLines(t *testing.T) {
	src := "\nmax 1 2\n\n1 1 <= 4\n\n+ +\n\n"
	m, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Len(t, m.Constraints, 1)
}
