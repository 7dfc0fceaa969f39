package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kvlabs/lpsolve/canonical"
	"github.com/kvlabs/lpsolve/model"
	"github.com/kvlabs/lpsolve/parser"
	"github.com/kvlabs/lpsolve/sensitivity"
	"github.com/kvlabs/lpsolve/simplex"
)

func newSensitivityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sensitivity [model-file]",
		Short: "Solve a linear program and report shadow prices and ranging",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening model file: %w", err)
			}
			defer f.Close()

			m, err := parser.Parse(f)
			if err != nil {
				return fmt.Errorf("parsing model: %w", err)
			}

			tbl, err := canonical.Build(m, cfg)
			if err != nil {
				return fmt.Errorf("building canonical form: %w", err)
			}

			res, err := simplex.Solve(tbl, cfg)
			if err != nil {
				return fmt.Errorf("solving: %w", err)
			}

			an, err := sensitivity.New(tbl, res.FinalBasis, cfg)
			if err != nil {
				return fmt.Errorf("building sensitivity analysis: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Objective z = %.3f\n", res.Objective)

			fmt.Fprintln(out, "\nShadow prices:")
			for i, y := range an.ShadowPrices() {
				fmt.Fprintf(out, "  row %d: %.3f\n", i+1, y)
			}

			fmt.Fprintln(out, "\nRHS ranging:")
			for i := range m.Constraints {
				r := an.RHSRange(i)
				fmt.Fprintf(out, "  row %d: [%s, %s]\n", i+1, formatBound(r.Lower), formatBound(r.Upper))
			}

			fmt.Fprintln(out, "\nCost-coefficient ranging:")
			for i := 0; i < m.NVars(); i++ {
				r := originalCostRange(an, tbl, res.FinalBasis, i)
				fmt.Fprintf(out, "  %s: [%s, %s]\n", m.Names()[i], formatBound(r.Lower), formatBound(r.Upper))
			}

			return nil
		},
	}
	return cmd
}

// originalCostRange maps a cost-coefficient ranging query back from
// tableau-column space to the original model's decision variable space.
// A Free variable occupies two tableau columns (positive and negative
// split, opposite signs), so its allowable range is the intersection of
// both columns' ranges once each is translated through its sign.
func originalCostRange(an *sensitivity.Analyzer, tbl *canonical.Tableau, finalBasis []int, varIdx int) sensitivity.Range {
	lower, upper := -unboundedRange, unboundedRange

	for j, info := range tbl.Columns {
		if info.OriginalVar != varIdx {
			continue
		}

		var r sensitivity.Range
		if isBasicColumn(finalBasis, j) {
			r = an.BasicCostRange(basisPosition(finalBasis, j))
		} else {
			r = an.NonBasicCostRange(j)
		}

		// the tableau column's cost coefficient is sign * original cost
		// (negated once more for a Minimize model), so a change dt in the
		// column's coefficient corresponds to an original-cost change of
		// dt * sign, or -dt * sign when minimising (sign is always +/-1).
		sign := info.Sign
		if tbl.Sense == model.Minimize {
			sign = -sign
		}
		lo, hi := r.Lower, r.Upper
		if sign < 0 {
			lo, hi = -r.Upper, -r.Lower
		}
		lower = max(lower, lo)
		upper = min(upper, hi)
	}

	return sensitivity.Range{Lower: lower, Upper: upper}
}

const unboundedRange = 1e300

func isBasicColumn(basis []int, j int) bool {
	for _, bi := range basis {
		if bi == j {
			return true
		}
	}
	return false
}

func basisPosition(basis []int, j int) int {
	for i, bi := range basis {
		if bi == j {
			return i
		}
	}
	return -1
}

func formatBound(v float64) string {
	if v >= 1e300 {
		return "+inf"
	}
	if v <= -1e300 {
		return "-inf"
	}
	return fmt.Sprintf("%.3f", v)
}
