package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kvlabs/lpsolve/canonical"
	"github.com/kvlabs/lpsolve/milp"
	"github.com/kvlabs/lpsolve/parser"
	"github.com/kvlabs/lpsolve/report"
	"github.com/kvlabs/lpsolve/simplex"
)

// newInteractiveCmd builds a menu-driven REPL: read a model once, then
// repeatedly choose which solver to run against it without re-parsing.
func newInteractiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive [model-file]",
		Short: "Load a model once and run repeated solves against it",
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
			m, err := parser.Parse(f)
			f.Close()
			if err != nil {
				return fmt.Errorf("parsing model: %w", err)
			}

			out := cmd.OutOrStdout()
			in := bufio.NewScanner(cmd.InOrStdin())

			for {
				fmt.Fprint(out, "\n[1] solve  [2] solve --revised  [3] ip  [4] quit\nchoice: ")
				if !in.Scan() {
					return nil
				}
				choice := strings.TrimSpace(in.Text())

				switch choice {
				case "1", "2":
					tbl, err := canonical.Build(m, cfg)
					if err != nil {
						fmt.Fprintln(out, err)
						continue
					}
					var res *simplex.Result
					if choice == "2" {
						res, err = simplex.SolveRevised(tbl, cfg)
					} else {
						res, err = simplex.Solve(tbl, cfg)
					}
					if err != nil {
						fmt.Fprintln(out, err)
						continue
					}
					report.FinalReport(out, res.Objective, m.Names(), res.Values)
				case "3":
					result, err := milp.BranchAndBound(m, cfg)
					if err != nil && result == nil {
						fmt.Fprintln(out, err)
						continue
					}
					fmt.Fprintf(out, "Objective z = %.3f\n", result.Objective)
				case "4", "q", "quit":
					return nil
				default:
					fmt.Fprintln(out, "unrecognised choice")
				}
			}
		},
	}
	return cmd
}
