package poslist

// singleRotation rotates r, the dir child of s, above s and returns r, the
// new subtree root. With dir = right:
//
//	    s                 r
//	  /   \             /   \
//	 α     r    ->     s     γ
//	     /   \       /   \
//	    β     γ     α     β
//
// dir = left is the mirror image. The caller relinks r into the parent of s
// and reranks s then r.
func (l *List[V]) singleRotation(r, s slot, dir uint8) slot {
	opp := 1 - dir

	l.link(s, dir, l.nodes[r].child[opp])
	l.link(r, opp, s)
	l.nodes[s].balance = 0
	l.nodes[r].balance = 0
	return r
}

// doubleRotation lifts p, the opposite child of r (itself the dir child of
// s), above both and returns p. With dir = right:
//
//	    s                     p
//	  /   \                /     \
//	 α     r              s       r
//	     /   \    ->    /   \   /   \
//	    p     δ        α     β γ     δ
//	  /   \
//	 β     γ
//
// dir = left is the mirror image. The caller relinks p into the parent of s
// and reranks s, r, then p.
func (l *List[V]) doubleRotation(r, s slot, dir uint8) slot {
	opp := 1 - dir
	a := balanceToward(dir)

	p := l.nodes[r].child[opp]
	l.link(r, opp, l.nodes[p].child[dir])
	l.link(s, dir, l.nodes[p].child[opp])
	l.link(p, dir, r)
	l.link(p, opp, s)

	switch l.nodes[p].balance {
	case a:
		l.nodes[s].balance = -a
		l.nodes[r].balance = 0
	case 0:
		l.nodes[s].balance = 0
		l.nodes[r].balance = 0
	default:
		l.nodes[s].balance = 0
		l.nodes[r].balance = a
	}
	l.nodes[p].balance = 0
	return p
}

// rerank3 recomputes ranks bottom up after a rotation below top.
func (l *List[V]) rerank3(s, r, top slot) {
	l.rerank(s)
	l.rerank(r)
	l.rerank(top)
}
