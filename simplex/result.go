package simplex

// Result is the outcome of a successful (optimal) solve.
type Result struct {
	Log       *Log
	Objective float64
	Values    []float64 // per original decision variable, in model order

	FinalTableau [][]float64
	FinalBasis   []int
}
