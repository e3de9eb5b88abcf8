package ordset

// Iterator is a bidirectional in-order cursor over a Set, engine-agnostic
// so callers that hold an Iterator[K] don't need to know whether it came
// from an rbtree.Tree or a splaytree.Tree.
type Iterator[K any] interface {
	// Key returns the key at the iterator's current position. Panics if
	// Done.
	Key() K

	// Next returns an iterator advanced one position. Calling Next at
	// End() returns End() again.
	Next() Iterator[K]

	// Prev returns an iterator stepped back one position. Decrementing
	// End() lands on the set's maximum.
	Prev() Iterator[K]

	// Done reports whether the iterator is past the end.
	Done() bool

	// Equal reports whether two iterators reference the same position in
	// the same set.
	Equal(Iterator[K]) bool
}

// Set is the contract both order-statistic engines (rbtree.Tree and
// splaytree.Tree) satisfy. It is spec.md §6's operation table expressed
// as a Go interface.
type Set[K any] interface {
	// Len returns the number of stored keys. O(1).
	Len() int

	// Empty reports whether the set holds no keys. O(1).
	Empty() bool

	// Min returns the smallest stored key. The second return is false on
	// an empty set.
	Min() (K, bool)

	// Max returns the largest stored key. The second return is false on
	// an empty set.
	Max() (K, bool)

	// Find returns an iterator to k, or End() if k is absent.
	Find(k K) (Iterator[K], bool)

	// Insert adds k if absent, returning an iterator to it and whether it
	// was newly inserted.
	Insert(k K) (Iterator[K], bool)

	// Erase removes the key at it, returning an iterator to what
	// followed it (or End()).
	Erase(it Iterator[K]) Iterator[K]

	// EraseKey removes k if present, returning an iterator to its
	// successor (or End()).
	EraseKey(k K) Iterator[K]

	// LowerBound returns an iterator to the least key >= k, or End().
	LowerBound(k K) Iterator[K]

	// UpperBound returns an iterator to the least key > k, or End().
	UpperBound(k K) Iterator[K]

	// RankLT returns the count of stored keys strictly less than k.
	RankLT(k K) int

	// RankLE returns the count of stored keys less than or equal to k.
	RankLE(k K) int

	// CountInRange returns the count of stored keys in [lo, hi].
	CountInRange(lo, hi K) int

	// Begin returns an iterator to the minimum key, or End().
	Begin() Iterator[K]

	// End returns the past-the-end iterator.
	End() Iterator[K]
}
