package poslist

// allocate appends a leaf holding value as the dir child of parent and
// records it in the reverse index. Pointers into the arena taken before the
// call may be invalidated by it.
func (l *List[V]) allocate(value V, parent slot, dir uint8) slot {
	s := slot(len(l.nodes))
	l.nodes = append(l.nodes, node[V]{
		child:     [2]slot{noSlot, noSlot},
		parent:    parent,
		direction: dir,
		rank:      1,
		value:     value,
	})
	l.nodes[parent].child[dir] = s
	l.lookup[value] = s
	return s
}

// free releases slot s, which must already be unlinked from the tree and
// from the reverse index. The last node in the arena is moved into s and
// every reference to its old slot number is rewritten.
func (l *List[V]) free(s slot) {
	last := slot(len(l.nodes) - 1)
	moved := l.nodes[last]
	l.nodes[last] = node[V]{}
	l.nodes = l.nodes[:last]
	if s == last {
		return
	}

	l.nodes[moved.parent].child[moved.direction] = s
	for _, c := range moved.child {
		if c != noSlot {
			l.nodes[c].parent = s
		}
	}
	l.lookup[moved.value] = s
	l.nodes[s] = moved
}
