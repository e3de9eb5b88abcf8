// Package ordset provides order-statistic ordered sets: in-memory
// associative containers holding unique keys under a total order, with
// logarithmic insertion, deletion, membership, predecessor/successor
// bounds, and rank queries — RankLT and RankLE — that count how many
// stored keys fall below a threshold without scanning the set.
//
// Two interchangeable engines implement Set: rbtree, a red-black tree
// giving worst-case O(log n) on every operation, and splaytree, a splay
// tree giving amortised O(log n) while keeping recently- or
// frequently-accessed keys cheap to reach again. Both satisfy the same
// Set interface, so code that only needs the ordered-set contract can
// stay agnostic to which discipline backs it; code that cares about
// worst-case latency (a single slow query) should reach for rbtree, and
// code with skewed, bursty access patterns should reach for splaytree.
//
// # Usage
//
//	tree := rbtree.New[int](func(a, b int) bool { return a < b })
//	tree.Insert(3)
//	tree.Insert(1)
//	tree.Insert(7)
//
//	n := tree.CountInRange(1, 5) // keys in [1, 5]: 1 and 3 -> 2
//
// # Rank and range-count
//
// RankLT(k) counts stored keys strictly less than k; RankLE(k) counts
// stored keys less than or equal to k. CountInRange(lo, hi) is
// RankLE(hi) - RankLT(lo): the number of stored keys in the closed
// interval [lo, hi]. All three run in O(log n) amortised time against the
// size-augmented tree, without iterating the matched keys.
//
// # Complexity
//
//	New                    O(1)
//	Len, Empty             O(1)
//	Min, Max               O(1)
//	Find, Insert, Erase    O(log n) amortised
//	LowerBound, UpperBound O(log n) amortised
//	RankLT, RankLE         O(log n) amortised
//	CountInRange           O(log n) amortised
//	Clone                  O(n)
//
// # Concurrency
//
// Neither engine is safe for concurrent mutation. A red-black tree is
// safe for concurrent read-only access, because reads never mutate its
// structure. A splay tree is not: every read — Find, LowerBound,
// RankLT, and so on — splays and therefore mutates structure, so
// concurrent readers of a splaytree.Tree must be serialised externally.
package ordset
