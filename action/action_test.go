package action

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alphabeth/splice/strand"
)

func TestChangeParentEqualityAndKey(t *testing.T) {
	a := NewChangeParent(2, 1, 0)
	b := NewChangeParent(2, 1, 0)
	c := NewChangeParent(2, 1, 3)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestSwapChildrenEqualityAndKey(t *testing.T) {
	a := NewSwapChildren(1)
	b := NewSwapChildren(1)
	c := NewSwapChildren(2)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestMutateEqualityAndKey(t *testing.T) {
	a := NewMutate([]strand.NodeID{1, 3})
	b := NewMutate([]strand.NodeID{1, 3})
	c := NewMutate([]strand.NodeID{1})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestDifferentKindsAreNeverEqual(t *testing.T) {
	cp := NewChangeParent(1, 0, 2)
	sw := NewSwapChildren(1)
	assert.False(t, cp.Equal(sw))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "ChangeParent", ChangeParent.String())
	assert.Equal(t, "SwapChildren", SwapChildren.String())
	assert.Equal(t, "Mutate", Mutate.String())
}
