// Package ordtree is the shared ordered-search-tree skeleton used by both
// the red-black (rbtree) and splay (splaytree) engines. It owns the node
// graph, the BST search/insert/erase mechanics, the augmented-size
// bookkeeping, the bidirectional iterator, and structural copying; it
// delegates rebalancing to a Balancer supplied at construction time.
//
// This package is not a public API: rbtree.Tree and splaytree.Tree each
// embed a *Tree and expose the operations spec.md's ordset.Set interface
// names. Neither engine shadows RotateLeft or RotateRight: both are
// promoted through the embedding, and a caller that rotates directly can
// break the engine's invariants.
package ordtree

// LessFunc reports whether a is strictly less than b. It must define a
// strict weak ordering: irreflexive, transitive, and consistent — the same
// two keys must always compare the same way.
type LessFunc[K any] func(a, b K) bool

// Tree is the generic ordered-search-tree skeleton, parameterised over the
// key type K and the balancer-owned per-node metadata M.
type Tree[K any, M any] struct {
	root     *Node[K, M]
	nilNode  *Node[K, M] // sentinel: size 0, children never walked, parent reused as erase scratch
	minNode  *Node[K, M]
	maxNode  *Node[K, M]
	less     LessFunc[K]
	size     int
	balancer Balancer[K, M]
}

// New creates an empty tree ordered by less, rebalanced by bal.
func New[K any, M any](less LessFunc[K], bal Balancer[K, M]) *Tree[K, M] {
	t := &Tree[K, M]{
		less:     less,
		balancer: bal,
	}
	t.nilNode = &Node[K, M]{}
	t.nilNode.parent = t.nilNode
	t.nilNode.left = t.nilNode
	t.nilNode.right = t.nilNode
	t.root = t.nilNode
	t.minNode = t.nilNode
	t.maxNode = t.nilNode
	return t
}

func (t *Tree[K, M]) keyEq(a, b K) bool {
	return !t.less(a, b) && !t.less(b, a)
}

// Sentinel returns the tree's "absent" marker. IsNil(n) reports whether n
// is it.
func (t *Tree[K, M]) Sentinel() *Node[K, M] {
	return t.nilNode
}

// IsNil reports whether n is the tree's sentinel (absent) node.
func (t *Tree[K, M]) IsNil(n *Node[K, M]) bool {
	return n == nil || n == t.nilNode
}

// Root returns the tree's root, or the sentinel if the tree is empty.
func (t *Tree[K, M]) Root() *Node[K, M] {
	return t.root
}

// Len returns the number of stored keys. O(1).
func (t *Tree[K, M]) Len() int {
	return t.size
}

// Empty reports whether the tree holds no keys. O(1).
func (t *Tree[K, M]) Empty() bool {
	return t.size == 0
}

// Key returns n's key.
func (t *Tree[K, M]) Key(n *Node[K, M]) K {
	return n.key
}

// Left returns n's left child, or the sentinel.
func (t *Tree[K, M]) Left(n *Node[K, M]) *Node[K, M] {
	return n.left
}

// Right returns n's right child, or the sentinel.
func (t *Tree[K, M]) Right(n *Node[K, M]) *Node[K, M] {
	return n.right
}

// Parent returns n's parent, or the sentinel if n is the root.
func (t *Tree[K, M]) Parent(n *Node[K, M]) *Node[K, M] {
	return n.parent
}

// SizeOf returns the augmented subtree size rooted at n (0 for the
// sentinel).
func (t *Tree[K, M]) SizeOf(n *Node[K, M]) int {
	if t.IsNil(n) {
		return 0
	}
	return n.size
}

// Metadata returns n's balancer-owned metadata.
func (t *Tree[K, M]) Metadata(n *Node[K, M]) M {
	return n.metadata
}

// SetMetadata sets n's balancer-owned metadata. No-op on the sentinel.
func (t *Tree[K, M]) SetMetadata(n *Node[K, M], m M) {
	if !t.IsNil(n) {
		n.metadata = m
	}
}

// recomputeSize sets n.size from its children's sizes. No-op on the
// sentinel.
func (t *Tree[K, M]) recomputeSize(n *Node[K, M]) {
	if t.IsNil(n) {
		return
	}
	n.size = t.SizeOf(n.left) + t.SizeOf(n.right) + 1
}

// descMin returns the leftmost node of the subtree rooted at n.
func (t *Tree[K, M]) descMin(n *Node[K, M]) *Node[K, M] {
	for !t.IsNil(n.left) {
		n = n.left
	}
	return n
}

// descMax returns the rightmost node of the subtree rooted at n.
func (t *Tree[K, M]) descMax(n *Node[K, M]) *Node[K, M] {
	for !t.IsNil(n.right) {
		n = n.right
	}
	return n
}

// Min returns the node with the smallest key. O(1). Returns the sentinel
// on an empty tree — callers of the public Set.Min should check Empty
// first.
func (t *Tree[K, M]) Min() *Node[K, M] {
	return t.minNode
}

// Max returns the node with the largest key. O(1).
func (t *Tree[K, M]) Max() *Node[K, M] {
	return t.maxNode
}

// Successor returns n's in-order successor, or the sentinel if n is the
// maximum.
func (t *Tree[K, M]) Successor(n *Node[K, M]) *Node[K, M] {
	if !t.IsNil(n.right) {
		return t.descMin(n.right)
	}
	p := n.parent
	for !t.IsNil(p) && n == p.right {
		n = p
		p = p.parent
	}
	return p
}

// Predecessor returns n's in-order predecessor, or the sentinel if n is
// the minimum.
func (t *Tree[K, M]) Predecessor(n *Node[K, M]) *Node[K, M] {
	if !t.IsNil(n.left) {
		return t.descMax(n.left)
	}
	p := n.parent
	for !t.IsNil(p) && n == p.left {
		n = p
		p = p.parent
	}
	return p
}

// search performs the shared BST descent for key, returning the matching
// node (or the sentinel) and the last node visited along the way (useful
// even on a miss, so a Balancer can splay the deepest probe). After
// returning, the caller is responsible for invoking OnAccess.
func (t *Tree[K, M]) search(key K) (found *Node[K, M], last *Node[K, M]) {
	cur := t.root
	last = t.nilNode
	for !t.IsNil(cur) {
		last = cur
		if t.keyEq(cur.key, key) {
			return cur, cur
		}
		if t.less(key, cur.key) {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return t.nilNode, last
}

// Find looks up key, splaying/no-oping per the tree's Balancer as it goes.
func (t *Tree[K, M]) Find(key K) (*Node[K, M], bool) {
	found, last := t.search(key)
	t.balancer.OnAccess(t, last)
	return found, !t.IsNil(found)
}

// Insert adds key if absent. Returns the existing or newly-created node,
// and whether a new node was created.
func (t *Tree[K, M]) Insert(key K) (*Node[K, M], bool) {
	parent := t.nilNode
	cur := t.root
	for !t.IsNil(cur) {
		parent = cur
		if t.keyEq(cur.key, key) {
			t.balancer.OnAccess(t, cur)
			return cur, false
		}
		if t.less(key, cur.key) {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}

	n := &Node[K, M]{
		key:    key,
		parent: parent,
		left:   t.nilNode,
		right:  t.nilNode,
		size:   1,
	}
	if t.IsNil(parent) {
		t.root = n
	} else if t.less(key, parent.key) {
		parent.left = n
	} else {
		parent.right = n
	}

	// insert-path size maintenance (spec.md §4.6): every ancestor gains
	// one node. Harmless for the splay engine too — the rotations that
	// bring n to the root recompute the same sizes on the way.
	for p := parent; !t.IsNil(p); p = p.parent {
		p.size++
	}

	if t.size == 0 || t.less(key, t.minNode.key) {
		t.minNode = n
	}
	if t.size == 0 || t.less(t.maxNode.key, key) {
		t.maxNode = n
	}
	t.size++

	t.balancer.OnInsert(t, n)
	return n, true
}

// transplant replaces the subtree rooted at u with the subtree rooted at
// v in u's parent, unconditionally updating v's parent pointer — even
// when v is the sentinel, so a Balancer can still walk up from it (the
// classical CLRS double-black trick).
func (t *Tree[K, M]) transplant(u, v *Node[K, M]) {
	v.parent = u.parent
	if t.IsNil(u.parent) {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
}

// Erase removes z from the tree. z must be a node obtained from this tree
// (Find/Insert/iteration); erasing the sentinel is a no-op returning
// false.
func (t *Tree[K, M]) Erase(z *Node[K, M]) bool {
	if t.IsNil(z) {
		return false
	}

	var y, x *Node[K, M]
	var removedMeta M
	if t.IsNil(z.left) || t.IsNil(z.right) {
		// at most one child: z itself is physically removed.
		y = z
		removedMeta = y.metadata
		if !t.IsNil(z.left) {
			x = z.left
		} else {
			x = z.right
		}
		t.transplant(z, x)
	} else {
		// two children: y, the in-order successor, is physically
		// removed and takes z's place structurally (spec.md §4.5) —
		// z's key is never overwritten, so a live iterator on z would
		// observe z vanish, never silently change key.
		y = t.descMin(z.right)
		removedMeta = y.metadata
		x = y.right
		if y.parent == z {
			x.parent = y // keep x.parent correct even when x is the sentinel
		} else {
			t.transplant(y, x)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.metadata = z.metadata
	}

	// every node from x's parent up to the root lost one descendant (or,
	// for y, gained z's children): recompute sizes bottom-up.
	for p := x.parent; !t.IsNil(p); p = p.parent {
		t.recomputeSize(p)
	}

	if t.minNode == z {
		if t.size == 1 {
			t.minNode = t.nilNode
		} else {
			t.minNode = t.descMin(t.root)
		}
	}
	if t.maxNode == z {
		if t.size == 1 {
			t.maxNode = t.nilNode
		} else {
			t.maxNode = t.descMax(t.root)
		}
	}
	t.size--

	t.balancer.OnErase(t, x, removedMeta)
	return true
}

// EraseKey removes key if present, returning an iterator to its in-order
// successor (or End()).
func (t *Tree[K, M]) EraseKey(key K) Iterator[K, M] {
	n, found := t.search2(key)
	if !found {
		return t.End()
	}
	succ := t.Successor(n)
	t.Erase(n)
	return t.iterFrom(succ)
}

// search2 is Find without the OnAccess side effect, used where the
// caller (EraseKey) will mutate the tree right after and doesn't want a
// spurious splay of a node about to be removed.
func (t *Tree[K, M]) search2(key K) (*Node[K, M], bool) {
	n, _ := t.search(key)
	return n, !t.IsNil(n)
}

// RotateLeft performs the textbook left rotation around x, recomputing
// size on x (the former parent, now child) then on its former right child
// (the new parent) — the shared rotation primitive both engines call.
func (t *Tree[K, M]) RotateLeft(x *Node[K, M]) {
	if t.IsNil(x) || t.IsNil(x.right) {
		return
	}
	y := x.right
	x.right = y.left
	if !t.IsNil(y.left) {
		y.left.parent = x
	}
	y.parent = x.parent
	if t.IsNil(x.parent) {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y

	t.recomputeSize(x)
	t.recomputeSize(y)
}

// RotateRight is RotateLeft's mirror image.
func (t *Tree[K, M]) RotateRight(x *Node[K, M]) {
	if t.IsNil(x) || t.IsNil(x.left) {
		return
	}
	y := x.left
	x.left = y.right
	if !t.IsNil(y.right) {
		y.right.parent = x
	}
	y.parent = x.parent
	if t.IsNil(x.parent) {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.right = x
	x.parent = y

	t.recomputeSize(x)
	t.recomputeSize(y)
}

// LowerBound returns the least node with key >= key, or the sentinel.
func (t *Tree[K, M]) LowerBound(key K) *Node[K, M] {
	cur := t.root
	var candidate *Node[K, M] = t.nilNode
	last := t.nilNode
	for !t.IsNil(cur) {
		last = cur
		if !t.less(cur.key, key) { // cur.key >= key
			candidate = cur
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	if !t.IsNil(candidate) {
		t.balancer.OnAccess(t, candidate)
	} else {
		t.balancer.OnAccess(t, last)
	}
	return candidate
}

// UpperBound returns the least node with key > key, or the sentinel.
func (t *Tree[K, M]) UpperBound(key K) *Node[K, M] {
	cur := t.root
	var candidate *Node[K, M] = t.nilNode
	last := t.nilNode
	for !t.IsNil(cur) {
		last = cur
		if t.less(key, cur.key) { // cur.key > key
			candidate = cur
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	if !t.IsNil(candidate) {
		t.balancer.OnAccess(t, candidate)
	} else {
		t.balancer.OnAccess(t, last)
	}
	return candidate
}

// RankLT returns the number of stored keys strictly less than key.
func (t *Tree[K, M]) RankLT(key K) int {
	count := 0
	cur := t.root
	last := t.nilNode
	for !t.IsNil(cur) {
		last = cur
		if t.less(cur.key, key) {
			count += t.SizeOf(cur.left) + 1
			cur = cur.right
		} else {
			cur = cur.left
		}
	}
	t.balancer.OnAccess(t, last)
	return count
}

// RankLE returns the number of stored keys less than or equal to key.
func (t *Tree[K, M]) RankLE(key K) int {
	count := 0
	cur := t.root
	last := t.nilNode
	for !t.IsNil(cur) {
		last = cur
		if !t.less(key, cur.key) { // cur.key <= key
			count += t.SizeOf(cur.left) + 1
			cur = cur.right
		} else {
			cur = cur.left
		}
	}
	t.balancer.OnAccess(t, last)
	return count
}

// CountInRange returns the number of stored keys k with lo <= k <= hi.
func (t *Tree[K, M]) CountInRange(lo, hi K) int {
	return t.RankLE(hi) - t.RankLT(lo)
}

// Clone performs a non-recursive deep copy: an isomorphic tree with the
// same keys, metadata and sizes, requiring no rebalancing to be valid.
// The (sourceCursor, destCursor) walk descends left whenever the source
// has an uncopied left child, then right under the same rule, else
// ascends — pre-order shape reconstruction with O(1) extra stack.
func (t *Tree[K, M]) Clone() *Tree[K, M] {
	clone := New[K, M](t.less, t.balancer)
	if t.Empty() {
		return clone
	}

	srcCur := t.root
	dstCur := &Node[K, M]{key: srcCur.key, metadata: srcCur.metadata, size: srcCur.size}
	dstCur.parent, dstCur.left, dstCur.right = clone.nilNode, clone.nilNode, clone.nilNode
	clone.root = dstCur

	for {
		if !t.IsNil(srcCur.left) && t.IsNil(dstCur.left) {
			srcCur = srcCur.left
			n := &Node[K, M]{key: srcCur.key, metadata: srcCur.metadata, size: srcCur.size, parent: dstCur}
			n.left, n.right = clone.nilNode, clone.nilNode
			dstCur.left = n
			dstCur = n
		} else if !t.IsNil(srcCur.right) && t.IsNil(dstCur.right) {
			srcCur = srcCur.right
			n := &Node[K, M]{key: srcCur.key, metadata: srcCur.metadata, size: srcCur.size, parent: dstCur}
			n.left, n.right = clone.nilNode, clone.nilNode
			dstCur.right = n
			dstCur = n
		} else {
			if srcCur == t.root {
				break
			}
			srcCur = srcCur.parent
			dstCur = dstCur.parent
		}
	}

	clone.size = t.size
	clone.minNode = clone.descMin(clone.root)
	clone.maxNode = clone.descMax(clone.root)
	return clone
}

// Clear empties the tree with a non-recursive descend-to-leaf /
// detach / ascend walk: O(n) time, O(1) extra stack. Go's garbage
// collector reclaims the detached nodes; the walk shape is what spec.md's
// structural-destroy step describes.
func (t *Tree[K, M]) Clear() {
	n := t.root
	for !t.IsNil(n) {
		if !t.IsNil(n.left) {
			n = n.left
			continue
		}
		if !t.IsNil(n.right) {
			n = n.right
			continue
		}
		p := n.parent
		if !t.IsNil(p) {
			if p.left == n {
				p.left = t.nilNode
			} else {
				p.right = t.nilNode
			}
		}
		n = p
	}
	t.root = t.nilNode
	t.minNode = t.nilNode
	t.maxNode = t.nilNode
	t.size = 0
}

// Equal reports whether t and other hold the same size and the same
// in-order key sequence under keyEq.
func (t *Tree[K, M]) Equal(other *Tree[K, M]) bool {
	if t.size != other.size {
		return false
	}
	a, b := t.descMin(t.root), other.descMin(other.root)
	for !t.IsNil(a) {
		if other.IsNil(b) || !t.keyEq(a.key, b.key) {
			return false
		}
		a = t.Successor(a)
		b = other.Successor(b)
	}
	return other.IsNil(b)
}
