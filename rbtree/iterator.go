package rbtree

import (
	ordset "github.com/mikenye/ordstat"
	"github.com/mikenye/ordstat/internal/ordtree"
)

// compile-time assertions: Tree implements ordset.Set, Iterator implements
// ordset.Iterator.
var (
	_ ordset.Set[int]      = (*Tree[int])(nil)
	_ ordset.Iterator[int] = Iterator[int]{}
)

// Iterator is a bidirectional in-order cursor over a Tree.
type Iterator[K any] struct {
	it ordtree.Iterator[K, Color]
}

// Key returns the key at it's current position. Panics if Done.
func (it Iterator[K]) Key() K { return it.it.Key() }

// Next returns an iterator advanced one position.
func (it Iterator[K]) Next() ordset.Iterator[K] { return Iterator[K]{it: it.it.Next()} }

// Prev returns an iterator stepped back one position.
func (it Iterator[K]) Prev() ordset.Iterator[K] { return Iterator[K]{it: it.it.Prev()} }

// Done reports whether the iterator is past the end.
func (it Iterator[K]) Done() bool { return it.it.Done() }

// Equal reports whether two iterators reference the same position.
func (it Iterator[K]) Equal(other ordset.Iterator[K]) bool {
	o, ok := other.(Iterator[K])
	return ok && it.it.Equal(o.it)
}
