package poslist

// node is an arena record. See the package documentation for the meaning of
// each field.
type node[V comparable] struct {
	child     [2]slot
	parent    slot
	direction uint8
	balance   int8
	rank      int
	value     V
}

func (l *List[V]) at(s slot) *node[V] {
	return &l.nodes[s]
}

// leftRank returns the rank of the left child of s, or 0.
func (l *List[V]) leftRank(s slot) int {
	c := l.nodes[s].child[left]
	if c == noSlot {
		return 0
	}
	return l.nodes[c].rank
}

// rerank recomputes the rank of s from its children.
func (l *List[V]) rerank(s slot) {
	n := l.at(s)
	n.rank = 1
	for _, c := range n.child {
		if c != noSlot {
			n.rank += l.nodes[c].rank
		}
	}
}

// link makes c the dir child of p. c may be noSlot.
func (l *List[V]) link(p slot, dir uint8, c slot) {
	l.nodes[p].child[dir] = c
	if c != noSlot {
		l.nodes[c].parent = p
		l.nodes[c].direction = dir
	}
}
