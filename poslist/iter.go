package poslist

import "iter"

type iterFrame struct {
	at  slot
	dir uint8 // the direction taken to reach at from the frame below
}

// Iterator walks a List in order. Modifying the list invalidates the
// iterator.
type Iterator[V comparable] struct {
	list  *List[V]
	stack []iterFrame
}

// Iter returns an iterator positioned before the first value.
func (l *List[V]) Iter() *Iterator[V] {
	it := &Iterator[V]{list: l}
	if !l.IsEmpty() {
		// The walk starts at the sentinel, whose right child is the root.
		it.stack = append(it.stack, iterFrame{at: headSlot, dir: right})
	}
	return it
}

// Next returns the next value. ok is false once the list is exhausted.
func (it *Iterator[V]) Next() (value V, ok bool) {
	if len(it.stack) == 0 {
		return value, false
	}
	nodes := it.list.nodes

	c := nodes[it.stack[len(it.stack)-1].at].child[right]
	if c != noSlot {
		// Step into the right subtree, then down its left spine.
		it.stack = append(it.stack, iterFrame{at: c, dir: right})
		for c = nodes[c].child[left]; c != noSlot; c = nodes[c].child[left] {
			it.stack = append(it.stack, iterFrame{at: c, dir: left})
		}
	} else {
		// Climb until we arrive from a left child.
		for {
			top := it.stack[len(it.stack)-1]
			it.stack = it.stack[:len(it.stack)-1]
			if top.dir == left {
				break
			}
			if len(it.stack) == 0 {
				return value, false
			}
		}
	}
	return nodes[it.stack[len(it.stack)-1].at].value, true
}

// All returns the values in list order. Each call starts a new walk.
func (l *List[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		it := l.Iter()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Collect builds a list by appending every value of seq. Repeated values are
// skipped.
func Collect[V comparable](seq iter.Seq[V], opts ...Option) *List[V] {
	l := New[V](opts...)
	for v := range seq {
		l.Append(v)
	}
	return l
}
