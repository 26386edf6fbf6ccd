package poslist

// Remove deletes the value at index, shifting the values above it down by
// one, and returns the removed value. ok is false, and nothing changes, if
// index is out of range.
func (l *List[V]) Remove(index int) (value V, ok bool) {
	p := l.root()
	if p == noSlot || index < 0 || index >= l.nodes[p].rank {
		return value, false
	}

	// Descend to the target. adjust/adjustDir track the parent of p and the
	// side p hangs from: the point where the height reduction enters.
	adjust, adjustDir := headSlot, right
	for {
		l.nodes[p].rank--
		lr := l.leftRank(p)
		if index == lr {
			break
		}
		adjust = p
		if index < lr {
			adjustDir = left
			p = l.nodes[p].child[left]
		} else {
			adjustDir = right
			index -= lr + 1
			p = l.nodes[p].child[right]
		}
	}
	value = l.nodes[p].value
	delete(l.lookup, value)

	var spliced slot
	if l.nodes[p].child[left] != noSlot && l.nodes[p].child[right] != noSlot {
		// Two children. The in-order successor, the leftmost node of the
		// right subtree, has no left child; its value moves into p and its
		// own slot is the one spliced out.
		q := p
		adjust, adjustDir = q, right
		p = l.nodes[q].child[right]
		for l.nodes[p].child[left] != noSlot {
			l.nodes[p].rank--
			adjust, adjustDir = p, left
			p = l.nodes[p].child[left]
		}
		l.nodes[p].rank--

		moved := l.nodes[p].value
		l.nodes[q].value = moved
		l.lookup[moved] = q

		l.link(adjust, adjustDir, l.nodes[p].child[right])
		spliced = p
	} else {
		c := l.nodes[p].child[left]
		if c == noSlot {
			c = l.nodes[p].child[right]
		}
		l.link(adjust, adjustDir, c)
		spliced = p
	}

	l.rebalanceAfterRemove(adjust, adjustDir)

	// Slot numbers held above must stay valid until here.
	l.free(spliced)
	return value, true
}

// rebalanceAfterRemove climbs from adjust, whose adjustDir subtree just lost
// one level of height, toward the root.
func (l *List[V]) rebalanceAfterRemove(adjust slot, adjustDir uint8) {
	for l.nodes[adjust].parent != noSlot {
		nextDir := l.nodes[adjust].direction
		next := l.nodes[adjust].parent
		a := balanceToward(adjustDir)

		switch l.nodes[adjust].balance {
		case a:
			// The taller side shrank: this subtree is now shorter too.
			l.nodes[adjust].balance = 0

		case 0:
			// Height above is unchanged.
			l.nodes[adjust].balance = -a
			return

		default:
			// The shorter side shrank: rotate the opposite child up.
			s := adjust
			rdir := 1 - adjustDir
			r := l.nodes[s].child[rdir]

			var top slot
			stop := false
			switch l.nodes[r].balance {
			case -a:
				top = l.singleRotation(r, s, rdir)
			case a:
				top = l.doubleRotation(r, s, rdir)
			default:
				// r is balanced: a single rotation leaves the subtree
				// height unchanged, so the climb ends here.
				top = l.singleRotation(r, s, rdir)
				l.nodes[s].balance = -a
				l.nodes[top].balance = a
				stop = true
			}
			l.link(next, nextDir, top)
			l.rerank3(s, r, top)
			if stop {
				return
			}
		}
		adjust, adjustDir = next, nextDir
	}
}
