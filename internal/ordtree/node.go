package ordtree

import "fmt"

// Node is a single element of the tree: a key, structural links to its
// parent and children, the subtree size rooted at this node (including
// itself), and one slot of balancer-owned metadata (the red-black colour,
// or struct{} for the splay engine, which needs none).
type Node[K any, M any] struct {
	key                 K
	parent, left, right *Node[K, M]
	size                int
	metadata            M
}

// Key returns the key stored at n.
func (n *Node[K, M]) Key() K {
	return n.key
}

// String renders "key (sz=N) [metadata]" when metadata implements
// fmt.Stringer, or "key (sz=N)" otherwise.
func (n *Node[K, M]) String() string {
	if s, ok := any(n.metadata).(fmt.Stringer); ok {
		return fmt.Sprintf("%v (sz=%d) [%s]", n.key, n.size, s.String())
	}
	return fmt.Sprintf("%v (sz=%d)", n.key, n.size)
}
