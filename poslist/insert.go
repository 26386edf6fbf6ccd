package poslist

// Insert places value at index, shifting the values at index and above up by
// one. It returns false, and changes nothing, if value is already present or
// index is not in [0, Len()].
func (l *List[V]) Insert(index int, value V) bool {
	l.lazyInit()
	if index < 0 || index > l.Len() {
		return false
	}
	if _, ok := l.lookup[value]; ok {
		return false
	}

	p := l.root()
	if p == noSlot {
		l.allocate(value, headSlot, right)
		return true
	}

	// A1. s is the deepest node on the path with a nonzero balance (the
	// place rebalancing may be necessary) and t is its parent. sIndex is
	// the target index relative to the subtree at s.
	s, t := p, headSlot
	sIndex, cIndex := index, index
	var q slot
	for {
		// A2, A3, A4. Every node on the path gains a descendant.
		dir := left
		if lr := l.leftRank(p); cIndex > lr {
			dir = right
			cIndex -= lr + 1
		}
		l.nodes[p].rank++

		q = l.nodes[p].child[dir]
		if q == noSlot {
			// A5.
			q = l.allocate(value, p, dir)
			break
		}
		if l.nodes[q].balance != 0 {
			t, s, sIndex = p, q, cIndex
		}
		p = q
	}

	// A6. Nodes between s and q were balanced; they now lean toward the
	// inserted side. The ranks on the path already include q, which does
	// not change any of the left/right decisions.
	cIndex = sIndex
	var r slot
	if lr := l.leftRank(s); cIndex <= lr {
		r = l.nodes[s].child[left]
	} else {
		cIndex -= lr + 1
		r = l.nodes[s].child[right]
	}
	for p = r; p != q; {
		if lr := l.leftRank(p); cIndex <= lr {
			l.nodes[p].balance = -1
			p = l.nodes[p].child[left]
		} else {
			cIndex -= lr + 1
			l.nodes[p].balance = 1
			p = l.nodes[p].child[right]
		}
	}

	// A7.
	dir := left
	if sIndex > l.leftRank(s) {
		dir = right
	}
	a := balanceToward(dir)
	switch l.nodes[s].balance {
	case 0:
		// The tree has grown higher.
		l.nodes[s].balance = a
		return true
	case -a:
		// The tree has become more balanced.
		l.nodes[s].balance = 0
		return true
	}

	// A8, A9. r is the dir child of s.
	if l.nodes[r].balance == a {
		p = l.singleRotation(r, s, dir)
	} else {
		p = l.doubleRotation(r, s, dir)
	}
	l.rerank3(s, r, p)

	// A10.
	if l.nodes[t].child[right] == s {
		l.link(t, right, p)
	} else {
		l.link(t, left, p)
	}
	return true
}
