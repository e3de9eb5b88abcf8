package splaytree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lessInt(a, b int) bool { return a < b }

// FuzzTree inserts 10 nodes and deletes between 1 and 10 of them, checking
// structural validity throughout.
func FuzzTree(f *testing.F) {
	f.Add(1, 11, 12, 69, 4, 14, 82, 50, 77, 3, 10)
	f.Fuzz(func(t *testing.T, k1, k2, k3, k4, k5, k6, k7, k8, k9, k10, deleteKeys int) {
		if deleteKeys < 0 || deleteKeys > 9 {
			return
		}

		tree := New[int](lessInt)
		keys := []int{k1, k2, k3, k4, k5, k6, k7, k8, k9, k10}
		for _, k := range keys {
			tree.Insert(k)
			if err := tree.IsTreeValid(); err != nil {
				t.Error(err)
			}
		}

		deleted := map[int]struct{}{}
		for i := 0; i <= deleteKeys; i++ {
			k := keys[i]
			_, alreadyGone := deleted[k]

			it, found := tree.Find(k)
			if !found && !alreadyGone {
				t.Errorf("key %d not found", k)
			}
			if found {
				tree.Erase(it)
			}
			if err := tree.IsTreeValid(); err != nil {
				t.Error(err)
			}
			deleted[k] = struct{}{}
		}
	})
}

func TestInsertFindErase(t *testing.T) {
	tree := New[int](lessInt)

	_, inserted := tree.Insert(10)
	assert.True(t, inserted)
	_, inserted = tree.Insert(10)
	assert.False(t, inserted)

	it, found := tree.Find(10)
	require.True(t, found)
	assert.Equal(t, 10, it.Key())

	next := tree.Erase(it)
	assert.True(t, next.Done())
	assert.Equal(t, 0, tree.Len())
}

// TestFindSplaysToRoot is splaytree's distinguishing behaviour versus
// rbtree: a successful Find moves the matched key to the root.
func TestFindSplaysToRoot(t *testing.T) {
	tree := New[int](lessInt)
	for _, k := range []int{50, 25, 75, 10, 30, 60, 90} {
		tree.Insert(k)
	}

	_, found := tree.Find(10)
	require.True(t, found)
	require.NoError(t, tree.IsTreeValid())
	assert.Equal(t, 10, tree.Root().Key())

	_, found = tree.Find(90)
	require.True(t, found)
	assert.Equal(t, 90, tree.Root().Key())
}

// TestInsertSplaysToRoot checks that a fresh insert ends up at the root.
func TestInsertSplaysToRoot(t *testing.T) {
	tree := New[int](lessInt)
	for _, k := range []int{10, 20, 30, 40, 50} {
		tree.Insert(k)
		assert.Equal(t, k, tree.Root().Key())
		require.NoError(t, tree.IsTreeValid())
	}
}

func TestEraseEveryNodeKeepsStructureValid(t *testing.T) {
	tree := New[int](lessInt)
	keys := []int{8, 7, 0, 1, 5, 3, -1, 20, -20, 11, 9}
	for _, k := range keys {
		tree.Insert(k)
	}
	for _, k := range keys {
		it, found := tree.Find(k)
		require.True(t, found)
		tree.Erase(it)
		require.NoError(t, tree.IsTreeValid())
	}
	assert.True(t, tree.Empty())
}

func TestIterationOrderSurvivesSplaying(t *testing.T) {
	tree := New[int](lessInt)
	for _, k := range []int{8, 7, 0, 1, 5, 3, -1} {
		tree.Insert(k)
	}
	tree.Find(7)
	tree.Find(-1)
	tree.Find(3)

	var got []int
	for it := tree.Begin(); !it.Done(); it = it.Next() {
		got = append(got, it.Key())
	}
	assert.Equal(t, []int{-1, 0, 1, 3, 5, 7, 8}, got)
}

func TestLowerUpperBoundSplaysLastVisited(t *testing.T) {
	tree := New[int](lessInt)
	for _, k := range []int{-5, -4, -3, 6, 8, 9, 10, 11, 15, 17} {
		tree.Insert(k)
	}
	lb := tree.LowerBound(7)
	assert.Equal(t, 8, lb.Key())
	assert.Equal(t, 8, tree.Root().Key())
	require.NoError(t, tree.IsTreeValid())

	ub := tree.UpperBound(13)
	assert.Equal(t, 15, ub.Key())
	assert.Equal(t, 15, tree.Root().Key())
	require.NoError(t, tree.IsTreeValid())

	// a miss past the largest key still leaves the tree valid and splays
	// the last real node visited (the maximum, 17), never the sentinel
	// (spec.md §9's resolved open question).
	assert.True(t, tree.LowerBound(100).Done())
	assert.Equal(t, 17, tree.Root().Key())
	require.NoError(t, tree.IsTreeValid())
}

func TestRankQueriesAndRangeCount(t *testing.T) {
	tree := New[int](lessInt)
	for _, k := range []int{0, 1, 2, 3, 7, 9, 11, 15, 20, 21, 56, 70} {
		tree.Insert(k)
	}
	assert.Equal(t, 7, tree.RankLE(70)-tree.RankLT(8))
	require.NoError(t, tree.IsTreeValid())
}

func TestEraseLastNodeLeavesTreeEmpty(t *testing.T) {
	tree := New[int](lessInt)
	tree.Insert(1)
	it, _ := tree.Find(1)
	tree.Erase(it)
	assert.True(t, tree.Empty())
	require.NoError(t, tree.IsTreeValid())
}

func TestCloneAndEqualTree(t *testing.T) {
	tree := New[int](lessInt)
	for i := 1; i <= 10; i++ {
		tree.Insert(i)
	}
	clone := tree.Clone()
	assert.True(t, tree.EqualTree(clone))

	it, found := clone.Find(5)
	require.True(t, found)
	clone.Erase(it)

	assert.Equal(t, 9, clone.Len())
	assert.Equal(t, 10, tree.Len())
	assert.False(t, tree.EqualTree(clone))
}

func TestFromSliceDeduplicates(t *testing.T) {
	tree := FromSlice[int](lessInt, []int{3, 1, 2, 1, 3, 3})
	assert.Equal(t, 3, tree.Len())
	require.NoError(t, tree.IsTreeValid())
}

func TestMinMaxOnEmpty(t *testing.T) {
	tree := New[int](lessInt)
	_, ok := tree.Min()
	assert.False(t, ok)
	_, ok = tree.Max()
	assert.False(t, ok)
}
