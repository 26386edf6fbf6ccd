package poslist

import (
	"testing"

	"github.com/forestrie/go-poslist/poslisttesting"
	"github.com/stretchr/testify/require"
)

// checkAll verifies the structural invariants of l and that its content
// matches the reference model through every read path.
func checkAll[V comparable](t *testing.T, l *List[V], ref *poslisttesting.RefList[V]) {
	t.Helper()
	require.NoError(t, l.Verify())

	require.Equal(t, ref.Len(), l.Len())
	require.Equal(t, ref.Len() == 0, l.IsEmpty())
	if len(l.nodes) != 0 {
		// One slot per value plus the sentinel: compaction leaves no holes.
		require.Len(t, l.nodes, ref.Len()+1)
	}

	got := l.Values()
	if ref.Len() == 0 {
		require.Empty(t, got)
	} else {
		require.Equal(t, ref.Values, got)
	}

	for i, want := range ref.Values {
		v, ok := l.Get(i)
		require.Truef(t, ok, "Get(%d)", i)
		require.Equalf(t, want, v, "Get(%d)", i)
		require.Equal(t, want, l.At(i))

		j, ok := l.Find(want)
		require.Truef(t, ok, "Find(%v)", want)
		require.Equalf(t, i, j, "Find(%v)", want)
	}
	_, ok := l.Get(ref.Len())
	require.False(t, ok)
	_, ok = l.Get(-1)
	require.False(t, ok)
}

// snapshot captures the raw state of l for byte-for-byte comparisons.
type snapshot[V comparable] struct {
	nodes  []node[V]
	lookup map[V]slot
}

func takeSnapshot[V comparable](l *List[V]) snapshot[V] {
	s := snapshot[V]{
		nodes:  append([]node[V](nil), l.nodes...),
		lookup: make(map[V]slot, len(l.lookup)),
	}
	for k, v := range l.lookup {
		s.lookup[k] = v
	}
	return s
}

func requireUnchanged[V comparable](t *testing.T, before snapshot[V], l *List[V]) {
	t.Helper()
	after := takeSnapshot(l)
	require.Equal(t, before.nodes, after.nodes)
	require.Equal(t, before.lookup, after.lookup)
}
