// Package cli wires the cobra command tree for the lpsolve binary: one
// subcommand per solver entry point, sharing a --config flag that feeds
// config.Load and a --verbose flag that raises the logrus level.
package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kvlabs/lpsolve/config"
)

var (
	cfgPath string
	verbose bool
)

// Root assembles the top-level lpsolve command and its subcommands.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "lpsolve",
		Short: "A linear and integer programming solver",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a solver tolerance config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newIPCmd())
	root.AddCommand(newKnapsackCmd())
	root.AddCommand(newSensitivityCmd())
	root.AddCommand(newInteractiveCmd())

	return root
}

func loadConfig() (config.Solver, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return config.Solver{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
