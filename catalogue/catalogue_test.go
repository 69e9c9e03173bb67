package catalogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alphabeth/splice/solver"
)

func TestMakeLevelRejectsZeroSequence(t *testing.T) {
	_, err := MakeLevel(0, 1)
	assert.Error(t, err)
}

func TestMakeLevelRejectsZeroStrand(t *testing.T) {
	_, err := MakeLevel(1, 0)
	assert.Error(t, err)
}

func TestMakeLevelRejectsUnknownPair(t *testing.T) {
	_, err := MakeLevel(99, 99)
	assert.Error(t, err)
}

// Every catalogued level must be solvable within its own declared splice
// budget, except the deliberately unsolvable sequence 3 fixture.
func TestAllSequence1And2LevelsAreSolvable(t *testing.T) {
	for seq, strands := range sequences {
		if seq == 3 {
			continue
		}
		for num := range strands {
			level, err := MakeLevel(seq, num)
			require.NoError(t, err)
			_, ok := solver.Solve(level)
			assert.Truef(t, ok, "sequence %d strand %d expected to be solvable", seq, num)
		}
	}
}

func TestSequence3Strand1IsUnsolvable(t *testing.T) {
	level, err := MakeLevel(3, 1)
	require.NoError(t, err)
	_, ok := solver.Solve(level)
	assert.False(t, ok)
}

func TestSequence1Strand1MatchesDocumentedSingleSpliceSolution(t *testing.T) {
	level, err := MakeLevel(1, 1)
	require.NoError(t, err)
	steps, ok := solver.Solve(level)
	require.True(t, ok)
	assert.Len(t, steps, 2)
	assert.Equal(t, uint8(1), steps[1].SpliceCount)
}

func TestSequence2Strand1DoublerNeedsNoSplice(t *testing.T) {
	level, err := MakeLevel(2, 1)
	require.NoError(t, err)
	steps, ok := solver.Solve(level)
	require.True(t, ok)
	assert.Equal(t, uint8(0), steps[len(steps)-1].SpliceCount)
}

func TestSequence2Strand2EraserSolution(t *testing.T) {
	level, err := MakeLevel(2, 2)
	require.NoError(t, err)
	steps, ok := solver.Solve(level)
	require.True(t, ok)
	assert.True(t, steps[len(steps)-1].Strand.Equal(level.Target))
}

func TestSequence2Strand3ExtenderSolution(t *testing.T) {
	level, err := MakeLevel(2, 3)
	require.NoError(t, err)
	steps, ok := solver.Solve(level)
	require.True(t, ok)
	assert.True(t, steps[len(steps)-1].Strand.Equal(level.Target))
}
