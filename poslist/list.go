package poslist

import "fmt"

// List is an indexed positional container of unique values.
//
// The zero value is an empty list ready to use.
type List[V comparable] struct {
	nodes  []node[V]
	lookup map[V]slot
}

// New returns an empty list.
func New[V comparable](opts ...Option) *List[V] {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	l := &List[V]{}
	l.init(o.Capacity)
	return l
}

func (l *List[V]) init(capacity int) {
	l.nodes = make([]node[V], 1, capacity+1)
	l.nodes[headSlot] = node[V]{
		child:     [2]slot{noSlot, noSlot},
		parent:    noSlot,
		direction: right,
	}
	l.lookup = make(map[V]slot, capacity)
}

func (l *List[V]) lazyInit() {
	if len(l.nodes) == 0 {
		l.init(0)
	}
}

// root returns the real tree root, or noSlot if the list is empty.
func (l *List[V]) root() slot {
	if len(l.nodes) == 0 {
		return noSlot
	}
	return l.nodes[headSlot].child[right]
}

// Len returns the number of values in the list.
func (l *List[V]) Len() int {
	return len(l.lookup)
}

// IsEmpty reports whether the list holds no values.
func (l *List[V]) IsEmpty() bool {
	return len(l.lookup) == 0
}

// Clear removes every value. The arena keeps its sentinel slot and its
// capacity.
func (l *List[V]) Clear() {
	if len(l.nodes) == 0 {
		return
	}
	clear(l.nodes[1:])
	l.nodes = l.nodes[:1]
	l.nodes[headSlot].child = [2]slot{noSlot, noSlot}
	clear(l.lookup)
}

// Contains reports whether value is in the list.
func (l *List[V]) Contains(value V) bool {
	_, ok := l.lookup[value]
	return ok
}

// Get returns the value at index. ok is false if index is out of range.
func (l *List[V]) Get(index int) (value V, ok bool) {
	if index < 0 {
		return value, false
	}
	p := l.root()
	for p != noSlot {
		lr := l.leftRank(p)
		switch {
		case index < lr:
			p = l.nodes[p].child[left]
		case index == lr:
			return l.nodes[p].value, true
		default:
			index -= lr + 1
			p = l.nodes[p].child[right]
		}
	}
	return value, false
}

// At returns the value at index and panics if index is out of range.
func (l *List[V]) At(index int) V {
	v, ok := l.Get(index)
	if !ok {
		panic(fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, l.Len()))
	}
	return v
}

// Find returns the index of value. ok is false, and index is -1, if value is
// not present.
func (l *List[V]) Find(value V) (index int, ok bool) {
	p, ok := l.lookup[value]
	if !ok {
		return -1, false
	}

	index = l.leftRank(p)
	root := l.root()
	for p != root {
		n := l.at(p)
		p = n.parent
		if n.direction == right {
			index += l.leftRank(p) + 1
		}
	}
	return index, true
}

// Append inserts value at the end of the list.
func (l *List[V]) Append(value V) bool {
	return l.Insert(l.Len(), value)
}

// Values returns the values in list order.
func (l *List[V]) Values() []V {
	values := make([]V, 0, l.Len())
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}

// Equal reports whether both lists hold the same values in the same order.
func (l *List[V]) Equal(other *List[V]) bool {
	if l.Len() != other.Len() {
		return false
	}
	a, b := l.Iter(), other.Iter()
	for {
		va, oka := a.Next()
		vb, okb := b.Next()
		if !oka || !okb {
			return oka == okb
		}
		if va != vb {
			return false
		}
	}
}
