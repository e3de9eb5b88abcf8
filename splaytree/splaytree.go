// Package splaytree provides a generic, self-adjusting splay
// order-statistic set.
//
// Every stored key is unique and kept in sorted order. Unlike rbtree,
// splaytree keeps no colour or balance-factor invariant at all: its only
// balancing discipline is that every access — Insert, Find, Erase,
// LowerBound, UpperBound, RankLT, RankLE — concludes by splaying the
// accessed (or last-visited) node to the root through a sequence of zig,
// zig-zig and zig-zag rotations. This gives amortised O(log n) per
// operation and makes repeated or temporally-clustered access to the same
// keys cheaper over time, at the cost of making any single access
// (including a read) a tree mutation.
//
// # Usage
//
//	tree := splaytree.New[int](func(a, b int) bool { return a < b })
//	tree.Insert(10)
//	tree.Insert(20)
//	it, found := tree.Find(10) // 10 is now the root
//
// # Limitations
//
//   - Not thread-safe for concurrent mutation, and — unlike rbtree — not
//     safe for concurrent read-only access either, because every read
//     splays. Concurrent readers must be serialised externally.
//   - No duplicate keys.
package splaytree

import (
	"fmt"

	ordset "github.com/mikenye/ordstat"
	"github.com/mikenye/ordstat/internal/ordtree"
)

// Tree is a splay order-statistic set over keys of type K.
type Tree[K any] struct {
	*ordtree.Tree[K, struct{}]
}

// New creates an empty splay tree ordered by less.
func New[K any](less func(a, b K) bool) *Tree[K] {
	t := &Tree[K]{}
	t.Tree = ordtree.New[K, struct{}](less, splayBalancer[K]{})
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

// Insert adds k if absent, returning an iterator to it and whether it was
// newly inserted. Either way, the affected node ends up at the root.
func (t *Tree[K]) Insert(k K) (ordset.Iterator[K], bool) {
	n, inserted := t.Tree.Insert(k)
	return Iterator[K]{it: t.Tree.IteratorAt(n)}, inserted
}

// Find returns an iterator to k, or End() if k is absent. The last node
// visited — the match if found, otherwise the deepest probe — ends up at
// the root.
func (t *Tree[K]) Find(k K) (ordset.Iterator[K], bool) {
	n, found := t.Tree.Find(k)
	return Iterator[K]{it: t.Tree.IteratorAt(n)}, found
}

// Erase removes the key at it, returning an iterator to what followed it.
func (t *Tree[K]) Erase(it ordset.Iterator[K]) ordset.Iterator[K] {
	sit := it.(Iterator[K])
	succ := t.Tree.Successor(sit.it.Node())
	t.Tree.Erase(sit.it.Node())
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

// IsTreeValid verifies the shared BST-order and size-augmentation
// invariants. A splay tree carries no shape invariant beyond being a
// valid, size-augmented BST.
func (t *Tree[K]) IsTreeValid() error {
	if err := t.Tree.CheckStructure(); err != nil {
		return fmt.Errorf("underlying structure invalid: %w", err)
	}
	return nil
}
