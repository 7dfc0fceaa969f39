package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kvlabs/lpsolve/knapsack"
	"github.com/kvlabs/lpsolve/parser"
)

func newKnapsackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "knapsack [model-file]",
		Short: "Solve a 0/1-knapsack problem by branch-and-bound",
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

			res, err := knapsack.Solve(m, cfg)
			if err != nil {
				return fmt.Errorf("solving: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Best profit = %.3f\n", res.BestProfit)
			fmt.Fprintf(cmd.OutOrStdout(), "Items taken: %v\n", res.BestTaken)
			return nil
		},
	}
	return cmd
}
