// Package canonical translates a parsed model.Model into a standard-form
// maximisation tableau with an explicit basic-feasible starting point, via
// sign-split column construction, slack/artificial introduction, and a
// Big-M penalty on artificial variables.
package canonical

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/kvlabs/lpsolve/config"
	"github.com/kvlabs/lpsolve/model"
)

// ColumnKind tags how a tableau column relates back to the user's model.
type ColumnKind int

const (
	ColDecision ColumnKind = iota
	ColNonPosNegated
	ColFreeSplitPositive
	ColFreeSplitNegative
	ColSlackPositive
	ColSlackNegative
	ColArtificial
)

// ColumnInfo records, for every tableau column, which original decision
// variable (if any) it came from and the sign needed to fold its value
// back into that variable's value.
type ColumnInfo struct {
	Kind        ColumnKind
	OriginalVar int // index into the original model; -1 for slack/artificial
	Sign        float64
}

// Tableau is the canonical-form standard-maximisation tableau: shape
// (M+1) x (N+1), row M is the reduced-cost row, column N is the RHS.
// Column order is [decision-like | slacks | artificials | RHS].
type Tableau struct {
	Rows  [][]float64
	Basis []int
	CFull []float64

	NDecision   int
	NSlack      int
	NArtificial int

	Sense    model.Sense
	BigM     float64
	VarNames []string
	Columns  []ColumnInfo

	M int // number of constraint rows
	N int // number of columns excluding the RHS column
}

// Error reports a singular basis or an inconsistent-dimensions condition
// encountered while building or re-inverting a basis; fatal to the call.
type Error struct{ Msg string }

func (e *Error) Error() string { return "canonical: " + e.Msg }

type decisionColumn struct {
	originalVar int
	sign        float64
}

// Build converts a validated model into canonical form.
func Build(m model.Model, cfg config.Solver) (*Tableau, error) {
	if err := m.Validate(); err != nil {
		return nil, &Error{Msg: err.Error()}
	}

	n0 := m.NVars()

	// Sense normalisation. Internally we always maximise;
	// the reported objective is re-negated by callers when Sense was
	// Minimize (see Tableau.ReportObjective).
	cBase := make([]float64, n0)
	copy(cBase, m.Cost)
	if m.Sense == model.Minimize {
		for i := range cBase {
			cBase[i] = -cBase[i]
		}
	}

	// Variable sign transforms, applied column-by-column.
	var decCols []decisionColumn
	for i, sign := range m.Signs {
		switch sign {
		case model.NonPos:
			decCols = append(decCols, decisionColumn{originalVar: i, sign: -1})
		case model.Free:
			decCols = append(decCols,
				decisionColumn{originalVar: i, sign: 1},
				decisionColumn{originalVar: i, sign: -1},
			)
		default: // NonNeg, Integer, Binary
			decCols = append(decCols, decisionColumn{originalVar: i, sign: 1})
		}
	}
	nDecision := len(decCols)

	mRows := len(m.Constraints)

	// Assemble the decision-column coefficients per row, and the RHS
	// vector, before RHS normalisation.
	rowCoeffs := make([][]float64, mRows)
	rhs := make([]float64, mRows)
	relations := make([]model.Relation, mRows)
	for r, c := range m.Constraints {
		row := make([]float64, nDecision)
		for j, dc := range decCols {
			row[j] = dc.sign * c.Coeffs[dc.originalVar]
		}
		rowCoeffs[r] = row
		rhs[r] = c.RHS
		relations[r] = c.Relation
	}

	// RHS normalisation.
	for r := range rowCoeffs {
		if rhs[r] < 0 {
			for j := range rowCoeffs[r] {
				rowCoeffs[r][j] = -rowCoeffs[r][j]
			}
			rhs[r] = -rhs[r]
			switch relations[r] {
			case model.LessEqual:
				relations[r] = model.GreaterEqual
			case model.GreaterEqual:
				relations[r] = model.LessEqual
			}
		}
	}

	// Slack/artificial introduction per row.
	type rowExtra struct {
		slackSign   float64 // 0 if no slack
		hasArtif    bool
	}
	extras := make([]rowExtra, mRows)
	nSlack, nArtificial := 0, 0
	for r, rel := range relations {
		switch rel {
		case model.LessEqual:
			extras[r].slackSign = 1
			nSlack++
		case model.GreaterEqual:
			extras[r].slackSign = -1
			extras[r].hasArtif = true
			nSlack++
			nArtificial++
		case model.Equal:
			extras[r].hasArtif = true
			nArtificial++
		}
	}

	n := nDecision + nSlack + nArtificial

	// Build column metadata in the invariant order: decision-like, slacks,
	// artificials.
	columns := make([]ColumnInfo, n)
	for j, dc := range decCols {
		kind := ColDecision
		if dc.sign < 0 {
			if m.Signs[dc.originalVar] == model.Free {
				kind = ColFreeSplitNegative
			} else {
				kind = ColNonPosNegated
			}
		} else if m.Signs[dc.originalVar] == model.Free {
			kind = ColFreeSplitPositive
		}
		columns[j] = ColumnInfo{Kind: kind, OriginalVar: dc.originalVar, Sign: dc.sign}
	}

	slackCol := make([]int, mRows) // -1 if none
	for r := range slackCol {
		slackCol[r] = -1
	}
	col := nDecision
	for r := range extras {
		if extras[r].slackSign != 0 {
			kind := ColSlackPositive
			if extras[r].slackSign < 0 {
				kind = ColSlackNegative
			}
			columns[col] = ColumnInfo{Kind: kind, OriginalVar: -1}
			slackCol[r] = col
			col++
		}
	}
	artifCol := make([]int, mRows)
	for r := range artifCol {
		artifCol[r] = -1
	}
	for r := range extras {
		if extras[r].hasArtif {
			columns[col] = ColumnInfo{Kind: ColArtificial, OriginalVar: -1}
			artifCol[r] = col
			col++
		}
	}

	// Assemble the (M+1) x (N+1) tableau body (rows 0..M-1).
	rows := make([][]float64, mRows+1)
	for r := 0; r < mRows; r++ {
		row := make([]float64, n+1)
		copy(row, rowCoeffs[r])
		if slackCol[r] >= 0 {
			row[slackCol[r]] = extras[r].slackSign
		}
		if artifCol[r] >= 0 {
			row[artifCol[r]] = 1
		}
		row[n] = rhs[r]
		rows[r] = row
	}
	rows[mRows] = make([]float64, n+1)

	// Basis vector: slack if the row has one and no artificial, else the
	// artificial (artificials are always basic; a ">=" row's slack is
	// non-basic).
	basis := make([]int, mRows)
	for r := range basis {
		if artifCol[r] >= 0 {
			basis[r] = artifCol[r]
		} else {
			basis[r] = slackCol[r]
		}
	}

	// Big-M computation.
	maxAbs := 1.0
	for _, v := range cBase {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	for _, v := range rhs {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	for _, row := range rowCoeffs {
		for _, v := range row {
			if a := math.Abs(v); a > maxAbs {
				maxAbs = a
			}
		}
	}
	bigM := cfg.BigMMultiplier * maxAbs

	cFull := make([]float64, n)
	for j, dc := range decCols {
		cFull[j] = dc.sign * cBase[dc.originalVar]
	}
	for r := range extras {
		if artifCol[r] >= 0 {
			cFull[artifCol[r]] = -bigM
		}
	}
	// slack costs default to 0, already zero-valued.

	t := &Tableau{
		Rows:        rows,
		Basis:       basis,
		CFull:       cFull,
		NDecision:   nDecision,
		NSlack:      nSlack,
		NArtificial: nArtificial,
		Sense:       m.Sense,
		BigM:        bigM,
		VarNames:    m.Names(),
		Columns:     columns,
		M:           mRows,
		N:           n,
	}

	if err := t.computeReducedCostRow(cfg); err != nil {
		return nil, err
	}

	return t, nil
}

// computeReducedCostRow forms the basis matrix from the current basic
// columns, inverts it by Gaussian elimination with partial pivoting, and
// sets the z row (reduced costs plus the current objective value).
func (t *Tableau) computeReducedCostRow(cfg config.Solver) error {
	m := t.M
	bInv, err := invertBasis(t.Rows, t.Basis, m, cfg.EpsPivot)
	if err != nil {
		return err
	}

	cB := make([]float64, m)
	for i, bi := range t.Basis {
		cB[i] = t.CFull[bi]
	}

	y := RowWeighted(bInv, cB, m)

	b := make([]float64, m)
	for i := 0; i < m; i++ {
		b[i] = t.Rows[i][t.N]
	}

	for j := 0; j < t.N; j++ {
		yAj := 0.0
		for i := 0; i < m; i++ {
			yAj += y[i] * t.Rows[i][j]
		}
		t.Rows[m][j] = t.CFull[j] - yAj
	}
	z := 0.0
	for i := 0; i < m; i++ {
		z += y[i] * b[i]
	}
	t.Rows[m][t.N] = z

	return nil
}

// invertBasis extracts the m x m basis matrix from the basic columns of
// rows and inverts it via Gauss-Jordan elimination with partial pivoting.
// Reused by the revised simplex for its per-iteration re-inversion.
func invertBasis(rows [][]float64, basis []int, m int, epsPivot float64) (*mat.Dense, error) {
	aug := mat.NewDense(m, 2*m, nil)
	for i := 0; i < m; i++ {
		for k := 0; k < m; k++ {
			aug.Set(i, k, rows[i][basis[k]])
		}
		aug.Set(i, m+i, 1)
	}

	for col := 0; col < m; col++ {
		// partial pivoting: find the largest-magnitude entry at or below
		// the diagonal in this column.
		pivotRow := col
		pivotVal := math.Abs(aug.At(col, col))
		for r := col + 1; r < m; r++ {
			if v := math.Abs(aug.At(r, col)); v > pivotVal {
				pivotVal = v
				pivotRow = r
			}
		}
		if pivotVal < epsPivot {
			return nil, &Error{Msg: "singular basis"}
		}
		if pivotRow != col {
			for k := 0; k < 2*m; k++ {
				a, b := aug.At(col, k), aug.At(pivotRow, k)
				aug.Set(col, k, b)
				aug.Set(pivotRow, k, a)
			}
		}

		pivot := aug.At(col, col)
		for k := 0; k < 2*m; k++ {
			aug.Set(col, k, aug.At(col, k)/pivot)
		}

		for r := 0; r < m; r++ {
			if r == col {
				continue
			}
			factor := aug.At(r, col)
			if math.Abs(factor) <= epsPivot {
				continue
			}
			for k := 0; k < 2*m; k++ {
				aug.Set(r, k, aug.At(r, k)-factor*aug.At(col, k))
			}
		}
	}

	inv := mat.NewDense(m, m, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			inv.Set(i, j, aug.At(i, m+j))
		}
	}
	return inv, nil
}

// InvertBasis exposes the basis-inversion routine for the revised simplex
// and the sensitivity analyzer, which both maintain B^-1 explicitly rather
// than a full tableau.
func InvertBasis(rows [][]float64, basis []int, m int, epsPivot float64) (*mat.Dense, error) {
	return invertBasis(rows, basis, m, epsPivot)
}

// RowWeighted computes weights^T * binv, i.e. out[j] = sum_i weights[i] *
// binv[i][j]. Used to form y = B^-T c_B (shadow prices).
func RowWeighted(binv *mat.Dense, weights []float64, m int) []float64 {
	out := make([]float64, m)
	for j := 0; j < m; j++ {
		sum := 0.0
		for i := 0; i < m; i++ {
			sum += weights[i] * binv.At(i, j)
		}
		out[j] = sum
	}
	return out
}

// MatVec computes binv * vec, i.e. out[i] = sum_k binv[i][k] * vec[k].
// Used to form x_B = B^-1 b and entering-column directions d = B^-1 A_j.
func MatVec(binv *mat.Dense, vec []float64, m int) []float64 {
	out := make([]float64, m)
	for i := 0; i < m; i++ {
		sum := 0.0
		for k := 0; k < m; k++ {
			sum += binv.At(i, k) * vec[k]
		}
		out[i] = sum
	}
	return out
}

// ReportObjective re-negates the internal (always-maximise) objective
// value back to the user's original sense.
func (t *Tableau) ReportObjective(internalZ float64) float64 {
	if t.Sense == model.Minimize {
		return -internalZ
	}
	return internalZ
}

// DecisionValues folds the final tableau's basic-variable values back into
// one value per original decision variable, applying the sign-split /
// NonPos-negation column transforms in reverse.
func (t *Tableau) DecisionValues(basicValues []float64, basis []int) []float64 {
	n0 := len(t.VarNames)
	values := make([]float64, n0)
	x := make([]float64, t.N)
	for i, bi := range basis {
		if bi < t.N {
			x[bi] = basicValues[i]
		}
	}
	for j, info := range t.Columns {
		if info.OriginalVar < 0 {
			continue
		}
		values[info.OriginalVar] += info.Sign * x[j]
	}
	return values
}

// String renders a compact debugging summary; the fixed-width tableau
// report format lives in package report.
func (t *Tableau) String() string {
	return fmt.Sprintf("canonical.Tableau{M:%d N:%d decision:%d slack:%d artificial:%d bigM:%g}",
		t.M, t.N, t.NDecision, t.NSlack, t.NArtificial, t.BigM)
}

// ColumnLabels returns one human-readable label per tableau column (decision
// columns named from the original variable, with a mark for substituted
// columns, plus s1, s2, ... for slacks and a1, a2, ... for artificials),
// for use by package report and by simplex.Log.
func (t *Tableau) ColumnLabels() []string {
	labels := make([]string, t.N)
	slackN, artifN := 0, 0
	for j, info := range t.Columns {
		switch info.Kind {
		case ColDecision:
			labels[j] = t.VarNames[info.OriginalVar]
		case ColNonPosNegated:
			labels[j] = t.VarNames[info.OriginalVar] + "'"
		case ColFreeSplitPositive:
			labels[j] = t.VarNames[info.OriginalVar] + "+"
		case ColFreeSplitNegative:
			labels[j] = t.VarNames[info.OriginalVar] + "-"
		case ColSlackPositive, ColSlackNegative:
			slackN++
			labels[j] = fmt.Sprintf("s%d", slackN)
		case ColArtificial:
			artifN++
			labels[j] = fmt.Sprintf("a%d", artifN)
		}
	}
	return labels
}
