package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kvlabs/lpsolve/canonical"
	"github.com/kvlabs/lpsolve/parser"
	"github.com/kvlabs/lpsolve/report"
	"github.com/kvlabs/lpsolve/simplex"
)

func newSolveCmd() *cobra.Command {
	var revised bool

	cmd := &cobra.Command{
		Use:   "solve [model-file]",
		Short: "Solve a linear program by the primal simplex method",
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
			logrus.WithField("vars", m.NVars()).WithField("constraints", len(m.Constraints)).Debug("parsed model")

			tbl, err := canonical.Build(m, cfg)
			if err != nil {
				return fmt.Errorf("building canonical form: %w", err)
			}

			var res *simplex.Result
			if revised {
				res, err = simplex.SolveRevised(tbl, cfg)
			} else {
				res, err = simplex.Solve(tbl, cfg)
			}

			switch e := err.(type) {
			case nil:
				if revised {
					report.RevisedLog(cmd.OutOrStdout(), res.Log)
				} else {
					report.Log(cmd.OutOrStdout(), res.Log)
				}
				report.Footer(cmd.OutOrStdout(), report.StatusOptimal)
				report.FinalReport(cmd.OutOrStdout(), res.Objective, m.Names(), res.Values)
				return nil
			case *simplex.UnboundedError:
				report.Footer(cmd.OutOrStdout(), report.StatusUnbounded)
				return nil
			case *simplex.InfeasibleError:
				report.Footer(cmd.OutOrStdout(), report.StatusInfeasible)
				return nil
			case *simplex.IterationLimitError:
				report.Footer(cmd.OutOrStdout(), report.StatusIterationCap)
				return nil
			default:
				return fmt.Errorf("solving: %w", e)
			}
		},
	}

	cmd.Flags().BoolVar(&revised, "revised", false, "use the revised simplex instead of the tableau form")
	return cmd
}
