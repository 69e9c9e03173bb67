// Package solver searches the state graph induced by Strand's edit
// grammar for a shortest sequence of SolutionSteps from a level's start
// shape to its target shape under a splice budget.
//
// The search is uniform-cost shortest-path over a cost-1 transition
// relation, i.e. Dijkstra degenerating to BFS: a priority queue of
// frontier states ordered by transitions taken (a splice and a mutation
// each count as one), a closed set of states already expanded, and a
// best-cost map keyed by (strand shape, last action, splice count) so
// the same step reached twice is only ever explored once. The
// search is exhaustive and exact - no heuristic, no iteration cap - and
// terminates because the state space is finite by construction.
package solver

import (
	"container/heap"

	"github.com/alphabeth/splice/action"
	"github.com/alphabeth/splice/strand"
)

// Level is the puzzle to solve: a start shape, a target shape, and the
// maximum number of splices allowed to get from one to the other.
type Level struct {
	Start      *strand.Strand
	Target     *strand.Strand
	MaxSplices uint8
}

// SolutionStep is one node of the search: the strand at this point, the
// action that produced it (nil for the start), and the number of
// splices spent to reach it.
type SolutionStep struct {
	Strand      *strand.Strand
	LastAction  *action.Action
	SpliceCount uint8
}

// Equal delegates to field equality of (Strand, LastAction, SpliceCount),
// with Strand compared structurally - so two steps with different handle
// numberings but identical shapes are equal.
func (s SolutionStep) Equal(other SolutionStep) bool {
	if s.SpliceCount != other.SpliceCount {
		return false
	}
	if (s.LastAction == nil) != (other.LastAction == nil) {
		return false
	}
	if s.LastAction != nil && !s.LastAction.Equal(*other.LastAction) {
		return false
	}
	return s.Strand.Equal(other.Strand)
}

// Solve returns a shortest sequence of SolutionSteps from level.Start to
// level.Target, or (nil, false) if no such sequence exists within
// level.MaxSplices splices. The first element always has a nil
// LastAction and SpliceCount 0; the last element's Strand always
// compares structurally equal to level.Target.
func Solve(level Level) ([]SolutionStep, bool) {
	start := &searchNode{step: SolutionStep{Strand: level.Start, SpliceCount: 0}}

	closed := make(map[visitKey]bool)
	best := make(map[visitKey]int)

	frontier := &openList{}
	heap.Init(frontier)
	seq := 0
	push := func(n *searchNode) {
		heap.Push(frontier, &frontierEntry{node: n, cost: n.cost, seq: seq})
		seq++
	}

	startKey := keyOf(start.step)
	best[startKey] = 0
	push(start)

	for frontier.Len() > 0 {
		entry := heap.Pop(frontier).(*frontierEntry)
		n := entry.node
		k := keyOf(n.step)
		if closed[k] {
			continue
		}
		closed[k] = true

		if n.step.Strand.Equal(level.Target) {
			return reconstruct(n), true
		}

		for _, succStep := range successors(n.step, level.MaxSplices) {
			sk := keyOf(succStep)
			if closed[sk] {
				continue
			}
			newCost := n.cost + 1
			if oldCost, ok := best[sk]; ok && oldCost <= newCost {
				continue
			}
			best[sk] = newCost
			push(&searchNode{step: succStep, parent: n, cost: newCost})
		}
	}
	return nil, false
}

// successors enumerates every splice and mutation transition reachable
// from step in one move, in the order spec'd for determinism: nodes
// visited left-to-right DFS from the root, candidate new parents in
// ascending handle order, and the (budget-independent) mutation
// successor emitted last.
func successors(step SolutionStep, maxSplices uint8) []SolutionStep {
	var out []SolutionStep
	s := step.Strand

	if step.SpliceCount < maxSplices {
		for _, n := range s.CollectNodeIDs() {
			p := s.ParentID(n)
			if p == strand.NilNode {
				continue
			}
			for _, q := range candidateNewParents(n, p, s) {
				clone := s.Clone()
				clone.ChangeParent(n, q)
				act := action.NewChangeParent(n, p, q)
				out = append(out, SolutionStep{Strand: clone, LastAction: &act, SpliceCount: step.SpliceCount + 1})
			}
			if s.ChildCount(p) == 2 {
				clone := s.Clone()
				clone.SwapChildren(p)
				act := action.NewSwapChildren(p)
				out = append(out, SolutionStep{Strand: clone, LastAction: &act, SpliceCount: step.SpliceCount + 1})
			}
		}
	}

	clone := s.Clone()
	mutated := clone.Mutate()
	if len(mutated) > 0 {
		act := action.NewMutate(mutated)
		out = append(out, SolutionStep{Strand: clone, LastAction: &act, SpliceCount: step.SpliceCount})
	}

	return out
}

// candidateNewParents returns, in ascending handle order, every node q a
// splice may move n to: q is neither n, n's current parent, nor a
// descendant of n, and q's resulting child arrangement never makes a
// Doubler anything but the sole child of its parent. A q with no
// children is also rejected when n is a Doubler or n's first child is a
// Doubler.
func candidateNewParents(n, p strand.NodeID, s *strand.Strand) []strand.NodeID {
	descendants := make(map[strand.NodeID]bool)
	for _, d := range s.Subtree(n) {
		descendants[d] = true
	}

	nIsDoubler := s.CellKind(n) == strand.Doubler
	nChildren := s.ChildIDs(n)

	var out []strand.NodeID
	for _, q := range s.LiveNodeIDs() {
		if q == n || q == p || descendants[q] {
			continue
		}
		switch s.ChildCount(q) {
		case 0:
			if nIsDoubler {
				continue
			}
			if len(nChildren) > 0 && s.CellKind(nChildren[0]) == strand.Doubler {
				continue
			}
			out = append(out, q)
		case 1:
			c := s.ChildIDs(q)[0]
			if nIsDoubler || s.CellKind(c) == strand.Doubler {
				continue
			}
			out = append(out, q)
		default:
			continue
		}
	}
	return out
}

type searchNode struct {
	step   SolutionStep
	parent *searchNode
	cost   int
}

func reconstruct(n *searchNode) []SolutionStep {
	var steps []SolutionStep
	for cur := n; cur != nil; cur = cur.parent {
		steps = append(steps, cur.step)
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}

// visitKey identifies a SolutionStep for dedup purposes. The strand's
// structural hash stands in for structural equality here, exactly as
// the design intends (a correct hash is consistent with equality, so
// two genuinely distinct shapes that happen to collide are
// astronomically unlikely for puzzles this size and the search stays
// sound in practice).
type visitKey struct {
	strandHash  uint64
	actionKey   string
	spliceCount uint8
}

func keyOf(step SolutionStep) visitKey {
	var actKey string
	if step.LastAction != nil {
		actKey = step.LastAction.Key()
	}
	return visitKey{strandHash: step.Strand.Hash(), actionKey: actKey, spliceCount: step.SpliceCount}
}

// frontierEntry and openList implement a container/heap priority queue
// ordered by cost, with insertion order as the tie-break - the stdlib
// gives exactly the min-heap Dijkstra needs; none of the example repos
// carry a third-party priority-queue library, so there is nothing in
// the corpus to prefer over container/heap here.
type frontierEntry struct {
	node  *searchNode
	cost  int
	seq   int
	index int
}

type openList []*frontierEntry

func (l openList) Len() int { return len(l) }

func (l openList) Less(i, j int) bool {
	if l[i].cost != l[j].cost {
		return l[i].cost < l[j].cost
	}
	return l[i].seq < l[j].seq
}

func (l openList) Swap(i, j int) {
	l[i], l[j] = l[j], l[i]
	l[i].index = i
	l[j].index = j
}

func (l *openList) Push(x interface{}) {
	e := x.(*frontierEntry)
	e.index = len(*l)
	*l = append(*l, e)
}

func (l *openList) Pop() interface{} {
	old := *l
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*l = old[:n-1]
	return e
}
