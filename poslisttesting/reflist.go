package poslisttesting

import "slices"

// RefList is the reference model for positional lists: a plain slice on
// which every operation is O(n) and obviously correct.
type RefList[V comparable] struct {
	Values []V
}

func (r *RefList[V]) Len() int { return len(r.Values) }

// Insert mirrors List.Insert, including its refusals.
func (r *RefList[V]) Insert(index int, value V) bool {
	if index < 0 || index > len(r.Values) || slices.Contains(r.Values, value) {
		return false
	}
	r.Values = slices.Insert(r.Values, index, value)
	return true
}

// Remove mirrors List.Remove.
func (r *RefList[V]) Remove(index int) (value V, ok bool) {
	if index < 0 || index >= len(r.Values) {
		return value, false
	}
	value = r.Values[index]
	r.Values = slices.Delete(r.Values, index, index+1)
	return value, true
}

// Find mirrors List.Find.
func (r *RefList[V]) Find(value V) (int, bool) {
	i := slices.Index(r.Values, value)
	return i, i >= 0
}

func (r *RefList[V]) Clear() {
	r.Values = r.Values[:0]
}
