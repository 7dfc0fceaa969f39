// Package milp implements the integer-programming drivers: branch-and-bound
// over LP relaxations and a simplified Gomory-style cutting-plane loop. Both
// re-canonicalise and re-solve the LP relaxation from scratch at every
// node/iteration rather than warm-starting from a parent basis.
package milp

import (
	"fmt"
	"io"

	"github.com/kvlabs/lpsolve/model"
	"github.com/kvlabs/lpsolve/simplex"
)

// Decision tags the reason a node was resolved the way it was, kept for
// auditing via Tree.
type Decision string

const (
	DecisionSubproblemInfeasible Decision = "subproblem has no feasible solution"
	DecisionSubproblemUnbounded  Decision = "subproblem relaxation is unbounded"
	DecisionFathomedByBound      Decision = "fathomed: worse than incumbent"
	DecisionIntegerFeasible      Decision = "integer-feasible: incumbent candidate"
	DecisionBranched             Decision = "fractional: branching"
	DecisionNodeCapReached       Decision = "node cap reached, search aborted"
	DecisionCutAdded             Decision = "fractional: added rounding cut"
)

// Node is one visited branch-and-bound node: the branching constraints
// accumulated from the root, the LP solve log for this node's relaxation,
// and the decision the search made about it.
type Node struct {
	ID          int
	ParentID    int
	Constraints []model.Constraint
	LPLog       *simplex.Log
	Objective   float64
	Values      []float64
	Decision    Decision
}

// Tree is the append-only list of every node visited during a search.
type Tree struct {
	Nodes []*Node
}

func (t *Tree) add(n *Node) {
	t.Nodes = append(t.Nodes, n)
}

// ToDOT writes a Graphviz DOT rendering of the search tree: one node per
// visited Node, coloured by Decision, edges from parent to child.
func (t *Tree) ToDOT(out io.Writer) {
	writeRow := func(r string, args ...interface{}) {
		if len(args) > 0 {
			out.Write([]byte(fmt.Sprintf(r, args...)))
		} else {
			out.Write([]byte(r))
		}
		out.Write([]byte("\n"))
	}

	writeRow("digraph enumtree {")
	writeRow("node [fontname=Courier,shape=rectangle];")
	writeRow("edge [color=Blue, style=dashed];")

	for _, n := range t.Nodes {
		color, tag := decisionStyle(n.Decision)
		label := fmt.Sprintf("\"z=%.2f\\nid:%d\\n%s\"", n.Objective, n.ID, tag)
		writeRow("%d [label=%s,color=%s];", n.ID, label, color)
	}

	for _, n := range t.Nodes {
		if n.ID == n.ParentID || n.ParentID < 0 {
			continue
		}
		writeRow("%d -> %d ;", n.ParentID, n.ID)
	}

	writeRow("}")
}

func decisionStyle(d Decision) (color, tag string) {
	switch d {
	case DecisionIntegerFeasible:
		return "Green", "integer-feasible"
	case DecisionSubproblemInfeasible:
		return "Red", "infeasible"
	case DecisionSubproblemUnbounded:
		return "Red", "unbounded"
	case DecisionFathomedByBound:
		return "Gray", "fathomed"
	case DecisionBranched:
		return "Black", "branching"
	case DecisionCutAdded:
		return "Black", "cut added"
	case DecisionNodeCapReached:
		return "Red", "node cap reached"
	default:
		return "Pink", string(d)
	}
}
