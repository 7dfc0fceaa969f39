// Package config centralises the small-epsilon tolerances and iteration
// caps that every numerical comparison in the solver packages references,
// per the "pervasive small-epsilon tolerances" design note: nothing else in
// this module should invent its own threshold.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Solver bundles every tunable the core packages consult.
type Solver struct {
	// EpsReducedCost is the entering-column threshold: a column is
	// improving when its reduced cost exceeds this.
	EpsReducedCost float64

	// EpsPivot is the minimum pivot/ratio magnitude treated as nonzero.
	EpsPivot float64

	// EpsFeasibility is the tolerance for basic-feasibility and
	// integrality checks (artificial-at-zero, |x - round(x)|).
	EpsFeasibility float64

	// BigMMultiplier scales the Big-M penalty: M = BigMMultiplier *
	// max(1, max|c|, max|b|, max|A|).
	BigMMultiplier float64

	// MaxSimplexIterations caps both simplex variants.
	MaxSimplexIterations int

	// MaxBranchAndBoundNodes caps the branch-and-bound search.
	MaxBranchAndBoundNodes int

	// MaxCuttingPlaneIterations caps the Gomory-style cutting-plane loop.
	MaxCuttingPlaneIterations int
}

// Default returns the compiled-in tolerance and cap defaults, with no
// dependency on viper or the environment — library callers that do not
// want configuration plumbing can just use this.
func Default() Solver {
	return Solver{
		EpsReducedCost:            1e-9,
		EpsPivot:                  1e-12,
		EpsFeasibility:            1e-6,
		BigMMultiplier:            1e6,
		MaxSimplexIterations:      10000,
		MaxBranchAndBoundNodes:    1000,
		MaxCuttingPlaneIterations: 30,
	}
}

// Load reads solver tunables from an optional config file and from
// LPSOLVE_*-prefixed environment variables, falling back to Default for
// anything unset. path may be empty, in which case only the environment
// and compiled-in defaults apply.
func Load(path string) (Solver, error) {
	v := viper.New()
	v.SetEnvPrefix("LPSOLVE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := Default()
	v.SetDefault("eps_reduced_cost", d.EpsReducedCost)
	v.SetDefault("eps_pivot", d.EpsPivot)
	v.SetDefault("eps_feasibility", d.EpsFeasibility)
	v.SetDefault("big_m_multiplier", d.BigMMultiplier)
	v.SetDefault("max_simplex_iterations", d.MaxSimplexIterations)
	v.SetDefault("max_branch_and_bound_nodes", d.MaxBranchAndBoundNodes)
	v.SetDefault("max_cutting_plane_iterations", d.MaxCuttingPlaneIterations)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Solver{}, err
		}
	}

	return Solver{
		EpsReducedCost:            v.GetFloat64("eps_reduced_cost"),
		EpsPivot:                  v.GetFloat64("eps_pivot"),
		EpsFeasibility:            v.GetFloat64("eps_feasibility"),
		BigMMultiplier:            v.GetFloat64("big_m_multiplier"),
		MaxSimplexIterations:      v.GetInt("max_simplex_iterations"),
		MaxBranchAndBoundNodes:    v.GetInt("max_branch_and_bound_nodes"),
		MaxCuttingPlaneIterations: v.GetInt("max_cutting_plane_iterations"),
	}, nil
}
