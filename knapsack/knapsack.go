// Package knapsack implements standalone 0/1-knapsack branch-and-bound.
// It bypasses the simplex entirely, taking a maximisation model whose
// first constraint encodes capacity.
package knapsack

import (
	"math"
	"sort"

	"github.com/kvlabs/lpsolve/config"
	"github.com/kvlabs/lpsolve/model"
)

// Item is one knapsack item, sorted by decreasing profit/weight ratio.
// Index is the item's 1-based position in the original model.
type Item struct {
	Index  int
	Weight float64
	Profit float64
	Ratio  float64
}

// Node is one visited search-tree node, recorded for auditing.
type Node struct {
	ID                int
	ItemIndex         int // 1-based; 0 for a leaf node
	Included          bool
	Profit            float64
	RemainingCapacity float64
	Bound             float64
	Decision          string
}

// Result is the outcome of Solve: the best profit found, the 1-based
// indices of the items taken, and the full exploration log.
type Result struct {
	BestProfit float64
	BestTaken  []int
	Nodes      []Node
}

// Solve runs the 0/1-knapsack branch-and-bound. The model must be a
// maximisation problem whose first constraint is a "<=" capacity bound;
// anything else is a DomainError.
func Solve(m model.Model, cfg config.Solver) (*Result, error) {
	if m.Sense != model.Maximize {
		return nil, &model.DomainError{Msg: "knapsack requires a maximisation model"}
	}
	if len(m.Constraints) == 0 {
		return nil, &model.DomainError{Msg: "knapsack requires at least one constraint"}
	}
	first := m.Constraints[0]
	if first.Relation != model.LessEqual {
		return nil, &model.DomainError{Msg: "knapsack requires the first constraint to be \"<=\""}
	}

	capacity := math.Floor(first.RHS)

	items := make([]Item, m.NVars())
	for i := 0; i < m.NVars(); i++ {
		w := first.Coeffs[i]
		p := m.Cost[i]
		ratio := math.Inf(1)
		if w != 0 {
			ratio = p / w
		}
		items[i] = Item{Index: i + 1, Weight: w, Profit: p, Ratio: ratio}
	}
	sort.SliceStable(items, func(a, b int) bool {
		return items[a].Ratio > items[b].Ratio
	})

	s := &search{items: items, capacity: capacity, eps: cfg.EpsFeasibility}
	taken := make([]bool, len(items))
	s.explore(0, capacity, 0, taken)

	var bestTaken []int
	for i, in := range s.bestTaken {
		if in {
			bestTaken = append(bestTaken, items[i].Index)
		}
	}
	sort.Ints(bestTaken)

	return &Result{BestProfit: s.bestProfit, BestTaken: bestTaken, Nodes: s.nodes}, nil
}

type search struct {
	items    []Item
	capacity float64
	eps      float64

	bestProfit float64
	bestTaken  []bool
	nodes      []Node
}

// bound computes the LP-relaxation upper bound from index idx onward: a
// greedy fill of items (already sorted by decreasing ratio) followed by a
// fractional top-up of the next item that does not fully fit.
func (s *search) bound(idx int, remainingCapacity, currentProfit float64) float64 {
	profit := currentProfit
	cap := remainingCapacity
	for i := idx; i < len(s.items); i++ {
		it := s.items[i]
		if it.Weight <= cap {
			cap -= it.Weight
			profit += it.Profit
		} else {
			if it.Weight > 0 {
				profit += it.Ratio * cap
			}
			break
		}
	}
	return profit
}

// explore performs the include-then-exclude depth-first enumeration.
func (s *search) explore(idx int, remainingCapacity, currentProfit float64, taken []bool) {
	bnd := s.bound(idx, remainingCapacity, currentProfit)

	if idx == len(s.items) {
		s.nodes = append(s.nodes, Node{ID: len(s.nodes), Profit: currentProfit, RemainingCapacity: remainingCapacity, Bound: bnd, Decision: "leaf"})
		return
	}

	if bnd <= s.bestProfit+s.eps {
		s.nodes = append(s.nodes, Node{ID: len(s.nodes), ItemIndex: s.items[idx].Index, RemainingCapacity: remainingCapacity, Bound: bnd, Decision: "pruned"})
		return
	}

	it := s.items[idx]

	if it.Weight <= remainingCapacity {
		taken[idx] = true
		newProfit := currentProfit + it.Profit
		s.nodes = append(s.nodes, Node{
			ID: len(s.nodes), ItemIndex: it.Index, Included: true,
			Profit: newProfit, RemainingCapacity: remainingCapacity - it.Weight, Bound: bnd, Decision: "included",
		})
		if newProfit > s.bestProfit {
			s.bestProfit = newProfit
			s.bestTaken = append([]bool(nil), taken...)
		}
		s.explore(idx+1, remainingCapacity-it.Weight, newProfit, taken)
		taken[idx] = false
	}

	s.nodes = append(s.nodes, Node{
		ID: len(s.nodes), ItemIndex: it.Index, Included: false,
		Profit: currentProfit, RemainingCapacity: remainingCapacity, Bound: bnd, Decision: "excluded",
	})
	s.explore(idx+1, remainingCapacity, currentProfit, taken)
}
