package simplex

// UnboundedError is returned when no leaving row is eligible for the
// chosen entering column: the objective can be improved without limit.
type UnboundedError struct{ Log *Log }

func (e *UnboundedError) Error() string { return "simplex: problem is unbounded" }

// InfeasibleError is returned when an artificial variable remains basic
// at a strictly positive value at an otherwise-optimal tableau.
type InfeasibleError struct{ Log *Log }

func (e *InfeasibleError) Error() string { return "simplex: problem is infeasible" }

// IterationLimitError is returned when the iteration safety cap is
// reached before an optimal tableau is found.
type IterationLimitError struct{ Log *Log }

func (e *IterationLimitError) Error() string { return "simplex: iteration limit reached" }
