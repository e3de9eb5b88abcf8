package rbtree

import "github.com/mikenye/ordstat/internal/ordtree"

// rbBalancer implements ordtree.Balancer[K, Color]: it colours and
// rotates after insert/erase, and does nothing on read access, since
// reading a red-black tree never needs to mutate its shape.
type rbBalancer[K any] struct{}

func (rbBalancer[K]) OnAccess(t *ordtree.Tree[K, Color], n *ordtree.Node[K, Color]) {
	// no-op: reads never mutate a red-black tree (spec.md §5).
}

func (b rbBalancer[K]) setColor(t *ordtree.Tree[K, Color], n *ordtree.Node[K, Color], c Color) {
	if !t.IsNil(n) {
		t.SetMetadata(n, c)
	}
}

func (b rbBalancer[K]) isBlack(t *ordtree.Tree[K, Color], n *ordtree.Node[K, Color]) bool {
	return t.IsNil(n) || t.Metadata(n) == Black
}

func (b rbBalancer[K]) isRed(t *ordtree.Tree[K, Color], n *ordtree.Node[K, Color]) bool {
	return !t.IsNil(n) && t.Metadata(n) == Red
}

// OnInsert colours the new node red and restores the red-black invariants
// by walking up from it while its parent is red, applying the standard
// recolour-and-climb / rotate-and-terminate cases.
func (b rbBalancer[K]) OnInsert(t *ordtree.Tree[K, Color], z *ordtree.Node[K, Color]) {
	b.setColor(t, z, Red)

	for b.isRed(t, t.Parent(z)) {
		parent := t.Parent(z)
		grandparent := t.Parent(parent)
		if parent == t.Left(grandparent) {
			uncle := t.Right(grandparent)
			if b.isRed(t, uncle) {
				// case 1: parent and uncle red — recolour and climb.
				b.setColor(t, parent, Black)
				b.setColor(t, uncle, Black)
				b.setColor(t, grandparent, Red)
				z = grandparent
			} else {
				if z == t.Right(parent) {
					// case 2: z is a right child — rotate left to fall
					// through to case 3.
					z = parent
					t.RotateLeft(z)
					parent = t.Parent(z)
					grandparent = t.Parent(parent)
				}
				// case 3: z is a left child.
				b.setColor(t, parent, Black)
				b.setColor(t, grandparent, Red)
				t.RotateRight(grandparent)
			}
		} else {
			// mirror image, left and right exchanged.
			uncle := t.Left(grandparent)
			if b.isRed(t, uncle) {
				b.setColor(t, parent, Black)
				b.setColor(t, uncle, Black)
				b.setColor(t, grandparent, Red)
				z = grandparent
			} else {
				if z == t.Left(parent) {
					z = parent
					t.RotateRight(z)
					parent = t.Parent(z)
					grandparent = t.Parent(parent)
				}
				b.setColor(t, parent, Black)
				b.setColor(t, grandparent, Red)
				t.RotateLeft(grandparent)
			}
		}
	}
	b.setColor(t, t.Root(), Black)
}

// OnErase runs the classical red-black deletion fixup only when the node
// physically spliced out of the tree was black — removing a red node
// can't violate any red-black invariant.
func (b rbBalancer[K]) OnErase(t *ordtree.Tree[K, Color], x *ordtree.Node[K, Color], removedColor Color) {
	if removedColor == Black {
		b.deleteFixup(t, x)
	}
}

// deleteFixup restores the red-black invariants after a black node has
// been physically removed, given x — the node (possibly the sentinel)
// that took its place. The loop climbs toward the root through a
// sibling-case analysis:
//
//  1. sibling red: rotate and recolour, then fall through with a new
//     (black) sibling.
//  2. sibling black with two black children: recolour sibling red and
//     move the "extra black" up to the parent.
//  3. sibling black, near child red, far child black: rotate the sibling
//     so the red child ends up on the far side.
//  4. sibling black, far child red: rotate the parent and recolour —
//     terminates the loop.
func (b rbBalancer[K]) deleteFixup(t *ordtree.Tree[K, Color], x *ordtree.Node[K, Color]) {
	for x != t.Root() && b.isBlack(t, x) {
		parent := t.Parent(x)
		if x == t.Left(parent) {
			sib := t.Right(parent)
			if b.isRed(t, sib) {
				b.setColor(t, sib, Black)
				b.setColor(t, parent, Red)
				t.RotateLeft(parent)
				parent = t.Parent(x)
				sib = t.Right(parent)
			}
			if b.isBlack(t, t.Left(sib)) && b.isBlack(t, t.Right(sib)) {
				b.setColor(t, sib, Red)
				x = parent
			} else {
				if b.isBlack(t, t.Right(sib)) {
					b.setColor(t, t.Left(sib), Black)
					b.setColor(t, sib, Red)
					t.RotateRight(sib)
					parent = t.Parent(x)
					sib = t.Right(parent)
				}
				b.setColor(t, sib, t.Metadata(parent))
				b.setColor(t, parent, Black)
				b.setColor(t, t.Right(sib), Black)
				t.RotateLeft(parent)
				x = t.Root()
			}
		} else {
			sib := t.Left(parent)
			if b.isRed(t, sib) {
				b.setColor(t, sib, Black)
				b.setColor(t, parent, Red)
				t.RotateRight(parent)
				parent = t.Parent(x)
				sib = t.Left(parent)
			}
			if b.isBlack(t, t.Right(sib)) && b.isBlack(t, t.Left(sib)) {
				b.setColor(t, sib, Red)
				x = parent
			} else {
				if b.isBlack(t, t.Left(sib)) {
					b.setColor(t, t.Right(sib), Black)
					b.setColor(t, sib, Red)
					t.RotateLeft(sib)
					parent = t.Parent(x)
					sib = t.Left(parent)
				}
				b.setColor(t, sib, t.Metadata(parent))
				b.setColor(t, parent, Black)
				b.setColor(t, t.Left(sib), Black)
				t.RotateRight(parent)
				x = t.Root()
			}
		}
	}
	b.setColor(t, x, Black)
}
