package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kvlabs/lpsolve/milp"
	"github.com/kvlabs/lpsolve/parser"
)

func newIPCmd() *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "ip [model-file]",
		Short: "Solve a mixed-integer program by branch-and-bound or cutting planes",
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

			var result *milp.Result
			switch method {
			case "branch-and-bound":
				result, err = milp.BranchAndBound(m, cfg)
			case "cutting-plane":
				result, err = milp.CuttingPlane(m, cfg)
			default:
				return fmt.Errorf("unknown --method %q, want branch-and-bound or cutting-plane", method)
			}

			if result != nil {
				logrus.WithField("nodes_visited", len(result.Tree.Nodes)).Debug("search finished")
			}

			switch {
			case err == nil:
				fmt.Fprintf(cmd.OutOrStdout(), "Objective z = %.3f\n", result.Objective)
				for i, name := range m.Names() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s = %.3f\n", name, result.Values[i])
				}
				return nil
			case errors.Is(err, milp.ErrNoIntegerFeasible):
				fmt.Fprintln(cmd.OutOrStdout(), "NO_INTEGER_FEASIBLE_SOLUTION")
				return nil
			case errors.Is(err, milp.ErrNodeCapReached), errors.Is(err, milp.ErrCuttingPlaneCapReached):
				fmt.Fprintf(cmd.OutOrStdout(), "SEARCH_CAP_REACHED best z = %.3f\n", result.Objective)
				return nil
			default:
				return fmt.Errorf("solving: %w", err)
			}
		},
	}

	cmd.Flags().StringVar(&method, "method", "branch-and-bound", "branch-and-bound or cutting-plane")
	return cmd
}
