// Package catalogue is the level source: a pure, hard-coded table of
// (sequence, strand) puzzles, data only - no solving logic lives here.
package catalogue

import (
	"github.com/pkg/errors"

	"github.com/alphabeth/splice/solver"
	"github.com/alphabeth/splice/strand"
)

type strandInfo struct {
	nodeCount int
	edges     []strand.Edge
	mutables  []strand.Mutable
}

type levelInfo struct {
	start      strandInfo
	target     strandInfo
	maxSplices uint8
}

func e(parent, child int) strand.Edge {
	return strand.Edge{Parent: strand.NodeID(parent), Child: strand.NodeID(child)}
}

func m(node int, kind strand.CellKind) strand.Mutable {
	return strand.Mutable{Node: strand.NodeID(node), Kind: kind}
}

// sequences holds every (sequence, strand) level this repository ships.
// Sequence 1 is a run of ChangeParent/SwapChildren puzzles of three to
// thirteen nodes. Sequence 2 adds one demonstration level per special cell kind.
// Sequence 3 is a single deliberately unsolvable fixture.
var sequences = map[uint8]map[uint8]levelInfo{
	1: {
		1: { // a single ChangeParent solves this in one splice
			start:      strandInfo{nodeCount: 3, edges: []strand.Edge{e(0, 1), e(1, 2)}},
			target:     strandInfo{nodeCount: 3, edges: []strand.Edge{e(0, 1), e(0, 2)}},
			maxSplices: 1,
		},
		2: { // one ChangeParent rearranges a larger subtree
			start:      strandInfo{nodeCount: 5, edges: []strand.Edge{e(0, 1), e(1, 2), e(2, 3), e(1, 4)}},
			target:     strandInfo{nodeCount: 5, edges: []strand.Edge{e(0, 1), e(1, 2), e(0, 3), e(3, 4)}},
			maxSplices: 1,
		},
		3: { // two splices needed across an eleven-node tree
			start: strandInfo{nodeCount: 11, edges: []strand.Edge{
				e(0, 1), e(1, 2), e(1, 3), e(3, 4), e(3, 5), e(0, 6), e(6, 7), e(6, 8), e(8, 9), e(8, 10),
			}},
			target: strandInfo{nodeCount: 11, edges: []strand.Edge{
				e(0, 1), e(1, 2), e(2, 3), e(3, 4), e(3, 5), e(0, 6), e(6, 7), e(7, 8), e(8, 9), e(8, 10),
			}},
			maxSplices: 2,
		},
		4: {
			start: strandInfo{nodeCount: 11, edges: []strand.Edge{
				e(0, 1), e(1, 2), e(2, 3), e(2, 4), e(4, 5), e(1, 6), e(6, 7), e(7, 8), e(6, 9), e(0, 10),
			}},
			target: strandInfo{nodeCount: 11, edges: []strand.Edge{
				e(0, 1), e(1, 2), e(2, 3), e(3, 4), e(2, 5), e(0, 6), e(6, 7), e(7, 8), e(7, 9), e(9, 10),
			}},
			maxSplices: 1,
		},
		5: {
			start: strandInfo{nodeCount: 10, edges: []strand.Edge{
				e(0, 1), e(1, 2), e(1, 3), e(0, 4), e(4, 5), e(4, 6), e(6, 7), e(7, 8), e(7, 9),
			}},
			target: strandInfo{nodeCount: 10, edges: []strand.Edge{
				e(0, 1), e(1, 2), e(2, 3), e(3, 4), e(3, 5), e(1, 6), e(6, 7), e(7, 8), e(7, 9),
			}},
			maxSplices: 1,
		},
		6: {
			start: strandInfo{nodeCount: 13, edges: []strand.Edge{
				e(0, 1), e(1, 2), e(1, 3), e(3, 4), e(4, 5), e(4, 6), e(0, 7), e(7, 8), e(8, 9), e(9, 10), e(9, 11), e(7, 12),
			}},
			target: strandInfo{nodeCount: 13, edges: []strand.Edge{
				e(0, 1), e(1, 2), e(2, 3), e(3, 4), e(3, 5), e(1, 6), e(0, 7), e(7, 8), e(7, 9), e(9, 10), e(10, 11), e(10, 12),
			}},
			maxSplices: 1,
		},
		7: {
			start: strandInfo{nodeCount: 13, edges: []strand.Edge{
				e(0, 1), e(1, 2), e(2, 3), e(3, 4), e(3, 5), e(5, 6), e(5, 7), e(2, 8), e(8, 9), e(9, 10), e(9, 11), e(8, 12),
			}},
			target: strandInfo{nodeCount: 13, edges: []strand.Edge{
				e(0, 1), e(1, 2), e(2, 3), e(2, 4), e(4, 5), e(4, 6), e(0, 7), e(7, 8), e(8, 9), e(9, 10), e(9, 11), e(8, 12),
			}},
			maxSplices: 2,
		},
	},
	2: {
		1: { // a Doubler under the root duplicates its two-node subtree
			start: strandInfo{
				nodeCount: 3,
				edges:     []strand.Edge{e(0, 1), e(1, 2)},
				mutables:  []strand.Mutable{m(1, strand.Doubler)},
			},
			target: strandInfo{
				nodeCount: 5,
				edges:     []strand.Edge{e(0, 1), e(1, 2), e(0, 3), e(3, 4)},
			},
			maxSplices: 1,
		},
		2: { // an Eraser removes its whole subtree
			start: strandInfo{
				nodeCount: 4,
				edges:     []strand.Edge{e(0, 1), e(1, 2), e(1, 3)},
				mutables:  []strand.Mutable{m(1, strand.Eraser)},
			},
			target: strandInfo{
				nodeCount: 1,
			},
			maxSplices: 1,
		},
		3: { // an Extender inserts a fresh node above its single child.
			start: strandInfo{
				nodeCount: 3,
				edges:     []strand.Edge{e(0, 1), e(1, 2)},
				mutables:  []strand.Mutable{m(1, strand.Extender)},
			},
			target: strandInfo{
				nodeCount: 4,
				edges:     []strand.Edge{e(0, 1), e(1, 3), e(3, 2)},
			},
			maxSplices: 1,
		},
	},
	3: {
		1: { // same shapes as sequence 1 strand 1, but no splices allowed
			start:      strandInfo{nodeCount: 3, edges: []strand.Edge{e(0, 1), e(1, 2)}},
			target:     strandInfo{nodeCount: 3, edges: []strand.Edge{e(0, 1), e(0, 2)}},
			maxSplices: 0,
		},
	},
}

// MakeLevel looks up the (sequence, strand) pair and builds its Level.
// Both arguments are 1-based; 0 is a user error, as is any pair absent
// from the table.
func MakeLevel(sequence, strandNumber uint8) (solver.Level, error) {
	if sequence == 0 {
		return solver.Level{}, errors.New("catalogue: sequence number must start at 1, got 0")
	}
	if strandNumber == 0 {
		return solver.Level{}, errors.New("catalogue: strand number must start at 1, got 0")
	}

	seq, ok := sequences[sequence]
	if !ok {
		return solver.Level{}, errors.Errorf("catalogue: unsupported sequence number: %d", sequence)
	}
	info, ok := seq[strandNumber]
	if !ok {
		return solver.Level{}, errors.Errorf("catalogue: unsupported strand number: %d in sequence %d", strandNumber, sequence)
	}
	return makeLevel(info), nil
}

func makeLevel(info levelInfo) solver.Level {
	return solver.Level{
		Start:      makeStrand(info.start),
		Target:     makeStrand(info.target),
		MaxSplices: info.maxSplices,
	}
}

func makeStrand(info strandInfo) *strand.Strand {
	return strand.New(info.nodeCount, info.edges, info.mutables)
}
