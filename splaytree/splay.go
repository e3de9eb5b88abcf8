package splaytree

import "github.com/mikenye/ordstat/internal/ordtree"

// splayBalancer implements ordtree.Balancer[K, struct{}]: every insert,
// erase and read access concludes by splaying a node to the root. It
// carries no state — struct{} metadata means there is nothing for a
// splay tree to colour.
type splayBalancer[K any] struct{}

func (splayBalancer[K]) OnInsert(t *ordtree.Tree[K, struct{}], n *ordtree.Node[K, struct{}]) {
	splay(t, n)
}

// OnErase splays the "surviving parent-of-removed" node spec.md names: x,
// the node that took the physically-removed node's old slot, if x is a
// real node; otherwise x.parent, which Erase sets even when x is the
// sentinel; otherwise (the tree is now empty) there is nothing to splay.
func (splayBalancer[K]) OnErase(t *ordtree.Tree[K, struct{}], x *ordtree.Node[K, struct{}], _ struct{}) {
	if !t.IsNil(x) {
		splay(t, x)
		return
	}
	if p := t.Parent(x); !t.IsNil(p) {
		splay(t, p)
	}
}

func (splayBalancer[K]) OnAccess(t *ordtree.Tree[K, struct{}], n *ordtree.Node[K, struct{}]) {
	splay(t, n)
}

// splay lifts n to the root of t through zig / zig-zig / zig-zag
// rotations, per spec.md §4.7. Every rotation goes through the shared
// RotateLeft/RotateRight primitives, so subtree sizes stay correct on
// every step rather than only being patched up afterward.
func splay[K any](t *ordtree.Tree[K, struct{}], n *ordtree.Node[K, struct{}]) {
	if t.IsNil(n) {
		return
	}
	for !t.IsNil(t.Parent(n)) {
		parent := t.Parent(n)
		grandparent := t.Parent(parent)

		if t.IsNil(grandparent) {
			// zig: parent is the root.
			if n == t.Left(parent) {
				t.RotateRight(parent)
			} else {
				t.RotateLeft(parent)
			}
			continue
		}

		nIsLeft := n == t.Left(parent)
		parentIsLeft := parent == t.Left(grandparent)

		if nIsLeft == parentIsLeft {
			// zig-zig: rotate grandparent then parent, same direction.
			if parentIsLeft {
				t.RotateRight(grandparent)
				t.RotateRight(parent)
			} else {
				t.RotateLeft(grandparent)
				t.RotateLeft(parent)
			}
		} else {
			// zig-zag: rotate parent toward n, then rotate the (now
			// grandparent) the opposite way.
			if nIsLeft {
				t.RotateRight(parent)
				t.RotateLeft(grandparent)
			} else {
				t.RotateLeft(parent)
				t.RotateRight(grandparent)
			}
		}
	}
}
