// Package rbtree provides a generic, self-balancing red-black
// order-statistic set.
//
// Every stored key is unique and kept in sorted order. Insertion,
// deletion, membership, predecessor/successor bounds, and the rank
// queries RankLT/RankLE all run in worst-case O(log n), because every
// public operation ends with the tree's red-black invariants restored:
//
//   - The root is always black.
//   - A red node never has a red child.
//   - Every root-to-sentinel path carries the same number of black links.
//
// Each node also carries its subtree size, maintained across every
// rotation and insertion, which is what lets RankLT and RankLE answer in
// O(log n) instead of scanning.
//
// # Usage
//
//	tree := rbtree.New[int](func(a, b int) bool { return a < b })
//	tree.Insert(10)
//	tree.Insert(20)
//	it, found := tree.Find(10)
//
//	if found {
//		tree.Erase(it)
//	}
//
// # Limitations
//
//   - Not thread-safe for concurrent mutation; concurrent read-only
//     access is safe, since Find/LowerBound/UpperBound/RankLT/RankLE never
//     mutate a red-black tree.
//   - No duplicate keys.
package rbtree

import (
	"fmt"
	"strings"

	ordset "github.com/mikenye/ordstat"
	"github.com/mikenye/ordstat/internal/ordtree"
)

// Color is a red-black node's colour. Black is the zero value, so the
// sentinel is black.
type Color bool

const (
	Red   Color = true
	Black Color = false
)

// String renders Color the way a debug dump of the tree wants it.
func (c Color) String() string {
	if c == Black {
		return "⬛"
	}
	return "🟥"
}

// Tree is a red-black order-statistic set over keys of type K.
type Tree[K any] struct {
	*ordtree.Tree[K, Color]
}

// New creates an empty red-black tree ordered by less.
func New[K any](less func(a, b K) bool) *Tree[K] {
	t := &Tree[K]{}
	t.Tree = ordtree.New[K, Color](less, rbBalancer[K]{})
	return t
}

// FromSlice builds a tree from keys, deduplicating repeats. O(n log n).
func FromSlice[K any](less func(a, b K) bool, keys []K) *Tree[K] {
	t := New[K](less)
	for _, k := range keys {
		t.Insert(k)
	}
	return t
}

func (t *Tree[K]) isBlack(n *ordtree.Node[K, Color]) bool {
	return t.IsNil(n) || t.Metadata(n) == Black
}

func (t *Tree[K]) isRed(n *ordtree.Node[K, Color]) bool {
	return !t.IsNil(n) && t.Metadata(n) == Red
}

// Insert adds k if absent, returning an iterator to it and whether it was
// newly inserted.
func (t *Tree[K]) Insert(k K) (ordset.Iterator[K], bool) {
	n, inserted := t.Tree.Insert(k)
	return Iterator[K]{it: t.Tree.IteratorAt(n)}, inserted
}

// Find returns an iterator to k, or End() if k is absent.
func (t *Tree[K]) Find(k K) (ordset.Iterator[K], bool) {
	n, found := t.Tree.Find(k)
	return Iterator[K]{it: t.Tree.IteratorAt(n)}, found
}

// Erase removes the key at it, returning an iterator to what followed it.
func (t *Tree[K]) Erase(it ordset.Iterator[K]) ordset.Iterator[K] {
	rit := it.(Iterator[K])
	succ := t.Tree.Successor(rit.it.Node())
	t.Tree.Erase(rit.it.Node())
	return Iterator[K]{it: t.Tree.IteratorAt(succ)}
}

// EraseKey removes k if present, returning an iterator to its successor.
func (t *Tree[K]) EraseKey(k K) ordset.Iterator[K] {
	return Iterator[K]{it: t.Tree.EraseKey(k)}
}

// LowerBound returns an iterator to the least key >= k, or End().
func (t *Tree[K]) LowerBound(k K) ordset.Iterator[K] {
	return Iterator[K]{it: t.Tree.IteratorAt(t.Tree.LowerBound(k))}
}

// UpperBound returns an iterator to the least key > k, or End().
func (t *Tree[K]) UpperBound(k K) ordset.Iterator[K] {
	return Iterator[K]{it: t.Tree.IteratorAt(t.Tree.UpperBound(k))}
}

// Begin returns an iterator to the minimum key, or End().
func (t *Tree[K]) Begin() ordset.Iterator[K] {
	return Iterator[K]{it: t.Tree.Begin()}
}

// End returns the past-the-end iterator.
func (t *Tree[K]) End() ordset.Iterator[K] {
	return Iterator[K]{it: t.Tree.End()}
}

// Min returns the smallest stored key.
func (t *Tree[K]) Min() (K, bool) {
	if t.Empty() {
		var zero K
		return zero, false
	}
	return t.Tree.Min().Key(), true
}

// Max returns the largest stored key.
func (t *Tree[K]) Max() (K, bool) {
	if t.Empty() {
		var zero K
		return zero, false
	}
	return t.Tree.Max().Key(), true
}

// Clone returns a deep, independent copy of t.
func (t *Tree[K]) Clone() *Tree[K] {
	return &Tree[K]{Tree: t.Tree.Clone()}
}

// EqualTree reports whether t and other hold the same size and the same
// in-order key sequence.
func (t *Tree[K]) EqualTree(other *Tree[K]) bool {
	return t.Tree.Equal(other.Tree)
}

// IsTreeValid verifies the shared BST/size invariants plus the five
// red-black invariants: every node is red or black (enforced by Color's
// type), the root is black, the sentinel is black, no red node has a red
// child, and every root-to-sentinel path has the same black-link count.
func (t *Tree[K]) IsTreeValid() error {
	if err := t.Tree.CheckStructure(); err != nil {
		return fmt.Errorf("underlying structure invalid: %w", err)
	}

	if !t.isBlack(t.Root()) {
		return fmt.Errorf("root node is not black")
	}
	if t.Metadata(t.Sentinel()) != Black {
		return fmt.Errorf("sentinel nil node is not black")
	}

	var checkErr error
	blackHeight := -1
	var walk func(n *ordtree.Node[K, Color], blacksSoFar int)
	walk = func(n *ordtree.Node[K, Color], blacksSoFar int) {
		if checkErr != nil {
			return
		}
		if t.IsNil(n) {
			if blackHeight == -1 {
				blackHeight = blacksSoFar
			} else if blacksSoFar != blackHeight {
				checkErr = fmt.Errorf("black height mismatch: got %d, want %d", blacksSoFar, blackHeight)
			}
			return
		}
		if t.isRed(n) && t.isRed(t.Left(n)) {
			checkErr = fmt.Errorf("node %v is red and has red left child", t.Key(n))
			return
		}
		if t.isRed(n) && t.isRed(t.Right(n)) {
			checkErr = fmt.Errorf("node %v is red and has red right child", t.Key(n))
			return
		}
		next := blacksSoFar
		if t.isBlack(n) {
			next++
		}
		walk(t.Left(n), next)
		walk(t.Right(n), next)
	}
	walk(t.Root(), 0)
	return checkErr
}

// String renders the tree using the teacher's connector-drawing layout,
// labelling each node with its key, subtree size and colour.
func (t *Tree[K]) String() string {
	if t.Empty() {
		return "Empty Tree"
	}

	const (
		connectorLeft     = " ╭── "
		connectorRight    = " ╰── "
		connectorVertical = " │   "
		connectorSpace    = "     "
	)

	var b strings.Builder
	vertical := make(map[int]bool)

	var depth func(n *ordtree.Node[K, Color]) int
	depth = func(n *ordtree.Node[K, Color]) int {
		h := 0
		for p := t.Parent(n); !t.IsNil(p); p = t.Parent(p) {
			h++
		}
		return h
	}

	n := t.Tree.Begin().Node()
	for !t.IsNil(n) {
		h := depth(n)
		for j := 0; j < h-1; j++ {
			if vertical[j+1] {
				b.WriteString(connectorVertical)
			} else {
				b.WriteString(connectorSpace)
			}
		}
		parent := t.Parent(n)
		if !t.IsNil(parent) && t.Left(parent) == n {
			b.WriteString(connectorLeft)
		} else if !t.IsNil(parent) && t.Right(parent) == n {
			b.WriteString(connectorRight)
		}
		b.WriteString(n.String())
		b.WriteString("\n")

		if !t.IsNil(parent) && t.Left(parent) == n {
			vertical[h] = true
		}
		if !t.IsNil(parent) && t.Right(parent) == n {
			vertical[h] = false
		}
		vertical[h+1] = !t.IsNil(t.Right(n))

		n = t.Successor(n)
	}
	return b.String()
}
