package poslisttesting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefListMirrorsPositionalSemantics(t *testing.T) {
	var r RefList[string]

	require.True(t, r.Insert(0, "b"))
	require.True(t, r.Insert(0, "a"))
	require.True(t, r.Insert(2, "c"))
	assert.Equal(t, []string{"a", "b", "c"}, r.Values)

	assert.False(t, r.Insert(1, "a"), "duplicate")
	assert.False(t, r.Insert(4, "d"), "past the end")
	assert.False(t, r.Insert(-1, "d"))

	v, ok := r.Remove(1)
	require.True(t, ok)
	assert.Equal(t, "b", v)
	_, ok = r.Remove(2)
	assert.False(t, ok)

	i, ok := r.Find("c")
	require.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = r.Find("b")
	assert.False(t, ok)
}

func TestNextOpStaysInRange(t *testing.T) {
	c := NewTestContext(t, TestConfig{Seed: 7, TestLabelPrefix: "TestNextOpStaysInRange"})

	require.Equal(t, OpInsert, c.NextOp(0).Kind)
	for n := 0; n < 50; n++ {
		op := c.NextOp(n)
		switch op.Kind {
		case OpInsert:
			require.GreaterOrEqual(t, op.Index, 0)
			require.LessOrEqual(t, op.Index, n)
		case OpRemove:
			require.GreaterOrEqual(t, op.Index, 0)
			require.Less(t, op.Index, n)
		}
	}
}
