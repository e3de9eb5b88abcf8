package ordtree

// Iterator is a bidirectional in-order cursor over a live Tree. The
// sentinel ("absent") position represents End(); decrementing it lands on
// the tree's maximum as of when the iterator was produced, via the
// maxSnap snapshot — this is why the tree keeps an extremal cache rather
// than re-descending from root on every --end().
type Iterator[K any, M any] struct {
	t       *Tree[K, M]
	cur     *Node[K, M]
	maxSnap *Node[K, M]
}

func (t *Tree[K, M]) iterFrom(n *Node[K, M]) Iterator[K, M] {
	return Iterator[K, M]{t: t, cur: n, maxSnap: t.maxNode}
}

// Begin returns an iterator at the minimum key, or End() if the tree is
// empty.
func (t *Tree[K, M]) Begin() Iterator[K, M] {
	return t.iterFrom(t.minNode)
}

// End returns the past-the-end iterator.
func (t *Tree[K, M]) End() Iterator[K, M] {
	return t.iterFrom(t.nilNode)
}

// IteratorAt wraps an existing node (e.g. one returned by Insert or Find)
// in an iterator.
func (t *Tree[K, M]) IteratorAt(n *Node[K, M]) Iterator[K, M] {
	return t.iterFrom(n)
}

// Done reports whether it is at End().
func (it Iterator[K, M]) Done() bool {
	return it.t.IsNil(it.cur)
}

// Key returns the key at it's current position. Calling Key on a Done
// iterator is a precondition violation (spec.md §7): it panics.
func (it Iterator[K, M]) Key() K {
	if it.Done() {
		panic("ordtree: Key called on a past-the-end iterator")
	}
	return it.cur.key
}

// Node exposes the current node, chiefly so rbtree/splaytree can pass it
// back into Tree.Erase.
func (it Iterator[K, M]) Node() *Node[K, M] {
	return it.cur
}

// Next returns an iterator advanced one position: if cur has a right
// child, descend to its leftmost descendant; otherwise ascend while cur
// is a right child, then one more step. Ported from Tree.Successor's
// shape, generalized to also produce End() correctly.
func (it Iterator[K, M]) Next() Iterator[K, M] {
	t := it.t
	if it.Done() {
		return it
	}
	n := it.cur
	if !t.IsNil(n.right) {
		n = t.descMin(n.right)
	} else {
		p := n.parent
		for !t.IsNil(p) && n == p.right {
			n = p
			p = p.parent
		}
		n = p
	}
	return Iterator[K, M]{t: t, cur: n, maxSnap: t.maxNode}
}

// Prev returns an iterator stepped back one position. Decrementing End()
// lands on the snapshot maximum; otherwise it mirrors Next.
func (it Iterator[K, M]) Prev() Iterator[K, M] {
	t := it.t
	if it.Done() {
		return Iterator[K, M]{t: t, cur: it.maxSnap, maxSnap: it.maxSnap}
	}
	n := it.cur
	if !t.IsNil(n.left) {
		n = t.descMax(n.left)
	} else {
		p := n.parent
		for !t.IsNil(p) && n == p.left {
			n = p
			p = p.parent
		}
		n = p
	}
	return Iterator[K, M]{t: t, cur: n, maxSnap: it.maxSnap}
}

// Equal reports whether it and other reference the same node and the same
// max snapshot.
func (it Iterator[K, M]) Equal(other Iterator[K, M]) bool {
	return it.cur == other.cur && it.maxSnap == other.maxSnap
}
