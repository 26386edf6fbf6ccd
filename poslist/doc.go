package poslist

/*

# Indexed positional lists

This package provides List, a list-like container in which every operation
that names a position is O(log n):

- Insert(index, value) and Remove(index) shift the positions of later values
- Get(index) and At(index) read by position
- Find(value) answers the reverse question: at which position is value?

Values are unique, like a set. Inserting a value that is already present has
no effect and reports false.

## Representation

The list is a rank-augmented AVL tree. Ordering is purely positional: values
are never compared, only hashed (for the reverse index). Nodes live in a flat
arena and refer to each other by slot number rather than by pointer:

	type node struct {
		child     [2]slot // 0 = left, 1 = right
		parent    slot
		direction uint8   // which child of parent this node is
		balance   int8    // height(right) - height(left)
		rank      int     // nodes in this subtree, including this one
		value     V
	}

Slot 0 is a permanent sentinel head whose right child is the real root, so an
empty tree is never a special case once the list exists.

The reverse index maps value to slot. Find looks up the slot and climbs to
the root, adding leftRank(parent)+1 every time it arrives from a right child.

## Invariants

After every completed operation:

1. n == parent(n).child[n.direction]
2. rank(n) = 1 + rank(left) + rank(right)
3. balance(n) = height(right) - height(left), in {-1, 0, 1}
4. every value has exactly one reverse index entry, naming the slot that holds it

Verify recomputes all of these from the raw child links.

## Arena compaction

Remove frees the physically spliced node by moving the last arena slot into
the hole and rewriting every reference to the old slot number: the parent's
child link, both children's parent links and the reverse index entry. The
arena therefore always holds exactly Len()+1 nodes.

## Algorithms

Insertion and deletion are iterative and follow Knuth, TAOCP vol. 3,
"Sorting and Searching", Algorithm A (6.2.3) and the deletion discussion that
follows it, with the book's variable names (s, t, r, p, q) kept where the
steps are replicated. The descent compares the running index with the left
rank rather than comparing keys.

## Iteration

Iterator walks the tree in order using an explicit stack, so deep trees do
not recurse. A full walk visits each edge at most twice: O(n) in total and
O(1) amortized per value (O(log n) worst case for a single step).

## Concurrency

None. A List must not be used from more than one goroutine without external
locking.

*/
