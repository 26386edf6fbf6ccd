package poslist

import "fmt"

// Verify checks every structural invariant of the list against values
// recomputed from the raw child links. It is intended for tests and debug
// builds of consumers; it costs O(n).
func (l *List[V]) Verify() error {
	if len(l.nodes) == 0 {
		if len(l.lookup) != 0 {
			return fmt.Errorf("%w: %d entries in an uninitialised list", ErrCorruptIndex, len(l.lookup))
		}
		return nil
	}

	head := l.nodes[headSlot]
	if head.parent != noSlot || head.child[left] != noSlot {
		return fmt.Errorf("%w: sentinel has parent %d, left child %d", ErrCorruptLink, head.parent, head.child[left])
	}
	if len(l.nodes) != len(l.lookup)+1 {
		return fmt.Errorf("%w: arena holds %d slots for %d values", ErrCorruptIndex, len(l.nodes), len(l.lookup))
	}

	root := head.child[right]
	if root == noSlot {
		if len(l.lookup) != 0 {
			return fmt.Errorf("%w: empty tree with %d index entries", ErrCorruptIndex, len(l.lookup))
		}
		return nil
	}

	heights := make(map[slot]int, len(l.lookup))
	visited := 0
	var check func(s, parent slot, dir uint8) error
	check = func(s, parent slot, dir uint8) error {
		if int(s) >= len(l.nodes) || s == headSlot {
			return fmt.Errorf("%w: slot %d referenced from %d is outside the arena", ErrCorruptLink, s, parent)
		}
		if _, seen := heights[s]; seen {
			return fmt.Errorf("%w: slot %d reached twice", ErrCorruptLink, s)
		}
		heights[s] = 0
		visited++

		n := l.nodes[s]
		if n.parent != parent || n.direction != dir {
			return fmt.Errorf("%w: slot %d records parent %d/%d, reached from %d/%d",
				ErrCorruptLink, s, n.parent, n.direction, parent, dir)
		}

		rank := 1
		var h [2]int
		for d, c := range n.child {
			if c == noSlot {
				continue
			}
			if err := check(c, s, uint8(d)); err != nil {
				return err
			}
			rank += l.nodes[c].rank
			h[d] = heights[c]
		}
		if rank != n.rank {
			return fmt.Errorf("%w: slot %d stores %d, subtree holds %d", ErrCorruptRank, s, n.rank, rank)
		}
		balance := h[right] - h[left]
		if balance < -1 || balance > 1 || int8(balance) != n.balance {
			return fmt.Errorf("%w: slot %d stores %d, heights give %d", ErrCorruptBalance, s, n.balance, balance)
		}
		heights[s] = 1 + max(h[left], h[right])

		if got, ok := l.lookup[n.value]; !ok || got != s {
			return fmt.Errorf("%w: value at slot %d is indexed at %d (present %t)", ErrCorruptIndex, s, got, ok)
		}
		return nil
	}
	if err := check(root, headSlot, right); err != nil {
		return err
	}
	if visited != len(l.lookup) {
		return fmt.Errorf("%w: tree holds %d nodes, index holds %d", ErrCorruptIndex, visited, len(l.lookup))
	}
	return nil
}
