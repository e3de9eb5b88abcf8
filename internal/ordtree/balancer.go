package ordtree

// Balancer is the capability the shared skeleton delegates rebalancing to.
//
// The skeleton (Tree) owns search, transplant, iteration and structural
// copying; a Balancer owns rotations and whatever colour/size-relevant
// bookkeeping its discipline requires. rbtree and splaytree each supply
// one: the red-black balancer fixes up colours and runs rotation cases
// after insert/erase and does nothing on access; the splay balancer
// splays to the root after every access, insert and erase.
type Balancer[K any, M any] interface {
	// OnInsert runs once, immediately after n has been linked into the
	// tree (with size already correct on every ancestor).
	OnInsert(t *Tree[K, M], n *Node[K, M])

	// OnErase runs once, after the physically-removed node's old slot has
	// been filled by x (x may be the sentinel). removedMeta is the
	// metadata the physically-removed node carried immediately before
	// removal (its colour, for the red-black engine).
	OnErase(t *Tree[K, M], x *Node[K, M], removedMeta M)

	// OnAccess runs after every read that should concentrate
	// frequently-visited nodes near the root. n is the last node visited
	// by the search/rank walk, even when the walk missed; for a bound
	// query it is the returned node, or the last node visited when there
	// is none. n is the sentinel when the tree is empty, so implementers
	// must handle that case.
	OnAccess(t *Tree[K, M], n *Node[K, M])
}
