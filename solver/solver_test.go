package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alphabeth/splice/strand"
)

func edge(p, c int) strand.Edge {
	return strand.Edge{Parent: strand.NodeID(p), Child: strand.NodeID(c)}
}

func mut(n int, k strand.CellKind) strand.Mutable {
	return strand.Mutable{Node: strand.NodeID(n), Kind: k}
}

func assertValidChain(t *testing.T, level Level, steps []SolutionStep) {
	t.Helper()
	require.NotEmpty(t, steps)
	assert.Nil(t, steps[0].LastAction)
	assert.Equal(t, uint8(0), steps[0].SpliceCount)
	assert.True(t, steps[0].Strand.Equal(level.Start))
	assert.True(t, steps[len(steps)-1].Strand.Equal(level.Target))
	for _, s := range steps {
		assert.LessOrEqual(t, s.SpliceCount, level.MaxSplices)
	}
}

// S1: a single ChangeParent solves the puzzle in one splice.
func TestSolveSimpleChangeParent(t *testing.T) {
	level := Level{
		Start:      strand.New(3, []strand.Edge{edge(0, 1), edge(1, 2)}, nil),
		Target:     strand.New(3, []strand.Edge{edge(0, 1), edge(0, 2)}, nil),
		MaxSplices: 1,
	}
	steps, ok := Solve(level)
	require.True(t, ok)
	assertValidChain(t, level, steps)
	assert.Len(t, steps, 2)
	assert.Equal(t, uint8(1), steps[1].SpliceCount)
}

// S4: the Doubler fires for free; no splice is needed at all.
func TestSolveDoublerNeedsNoSplice(t *testing.T) {
	level := Level{
		Start: strand.New(3, []strand.Edge{edge(0, 1), edge(1, 2)}, []strand.Mutable{
			mut(1, strand.Doubler),
		}),
		Target:     strand.New(5, []strand.Edge{edge(0, 1), edge(1, 2), edge(0, 3), edge(3, 4)}, nil),
		MaxSplices: 1,
	}
	steps, ok := Solve(level)
	require.True(t, ok)
	assertValidChain(t, level, steps)
	assert.Len(t, steps, 2)
	assert.Equal(t, uint8(0), steps[len(steps)-1].SpliceCount)
}

// S5: the Eraser collapses the whole subtree to the root in one move.
func TestSolveEraserCollapsesSubtree(t *testing.T) {
	level := Level{
		Start: strand.New(4, []strand.Edge{edge(0, 1), edge(1, 2), edge(1, 3)}, []strand.Mutable{
			mut(1, strand.Eraser),
		}),
		Target:     strand.New(1, nil, nil),
		MaxSplices: 1,
	}
	steps, ok := Solve(level)
	require.True(t, ok)
	assertValidChain(t, level, steps)
	assert.Len(t, steps, 2)
}

// An Extender inserts a node above its single child.
func TestSolveExtenderInsertsNode(t *testing.T) {
	level := Level{
		Start: strand.New(3, []strand.Edge{edge(0, 1), edge(1, 2)}, []strand.Mutable{
			mut(1, strand.Extender),
		}),
		Target:     strand.New(4, []strand.Edge{edge(0, 1), edge(1, 3), edge(3, 2)}, nil),
		MaxSplices: 1,
	}
	steps, ok := Solve(level)
	require.True(t, ok)
	assertValidChain(t, level, steps)
}

// S6: the same shapes as TestSolveSimpleChangeParent but with a zero
// splice budget - no solution exists.
func TestSolveUnsolvableWithoutBudget(t *testing.T) {
	level := Level{
		Start:      strand.New(3, []strand.Edge{edge(0, 1), edge(1, 2)}, nil),
		Target:     strand.New(3, []strand.Edge{edge(0, 1), edge(0, 2)}, nil),
		MaxSplices: 0,
	}
	steps, ok := Solve(level)
	assert.False(t, ok)
	assert.Nil(t, steps)
}

func TestSolveIsDeterministic(t *testing.T) {
	level := Level{
		Start:      strand.New(3, []strand.Edge{edge(0, 1), edge(1, 2)}, nil),
		Target:     strand.New(3, []strand.Edge{edge(0, 1), edge(0, 2)}, nil),
		MaxSplices: 1,
	}
	first, ok1 := Solve(level)
	second, ok2 := Solve(level)
	require.True(t, ok1)
	require.True(t, ok2)
	require.Len(t, second, len(first))
	for i := range first {
		assert.True(t, first[i].Equal(second[i]))
	}
}

func TestSolveFindsMinimalSplices(t *testing.T) {
	level := Level{
		Start: strand.New(11, []strand.Edge{
			edge(0, 1), edge(1, 2), edge(1, 3), edge(3, 4), edge(3, 5),
			edge(0, 6), edge(6, 7), edge(6, 8), edge(8, 9), edge(8, 10),
		}, nil),
		Target: strand.New(11, []strand.Edge{
			edge(0, 1), edge(1, 2), edge(2, 3), edge(3, 4), edge(3, 5),
			edge(0, 6), edge(6, 7), edge(7, 8), edge(8, 9), edge(8, 10),
		}, nil),
		MaxSplices: 2,
	}
	steps, ok := Solve(level)
	require.True(t, ok)
	assertValidChain(t, level, steps)
	assert.Len(t, steps, 3)
	assert.Equal(t, uint8(2), steps[len(steps)-1].SpliceCount)
}
