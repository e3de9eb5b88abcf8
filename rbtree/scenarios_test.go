package rbtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenarios runs the worked end-to-end scenarios against the red-black
// engine.
func TestScenarios(t *testing.T) {
	t.Run("S1_rank_lt", func(t *testing.T) {
		tree := New[int](lessInt)
		for _, k := range []int{0, 1, 2} {
			tree.Insert(k)
		}
		assert.Equal(t, 1, tree.RankLT(1))
	})

	t.Run("S2_rank_le", func(t *testing.T) {
		tree := New[int](lessInt)
		for _, k := range []int{0, 1, 2} {
			tree.Insert(k)
		}
		assert.Equal(t, 2, tree.RankLE(1))
	})

	t.Run("S3_range_count", func(t *testing.T) {
		tree := New[int](lessInt)
		for _, k := range []int{0, 1, 2, 3, 7, 9, 11, 15, 20, 21, 56, 70} {
			tree.Insert(k)
		}
		assert.Equal(t, 7, tree.RankLE(70)-tree.RankLT(8))
	})

	t.Run("S4_iterate_sorted", func(t *testing.T) {
		tree := New[int](lessInt)
		for _, k := range []int{8, 7, 0, 1, 5, 3, -1} {
			tree.Insert(k)
		}
		var got []int
		for it := tree.Begin(); !it.Done(); it = it.Next() {
			got = append(got, it.Key())
		}
		assert.Equal(t, []int{-1, 0, 1, 3, 5, 7, 8}, got)
	})

	t.Run("S5_erase_then_begin", func(t *testing.T) {
		tree := New[int](lessInt)
		for i := 0; i < 20; i++ {
			tree.Insert(i)
		}
		tree.EraseKey(1)
		assert.Equal(t, 0, tree.Begin().Key())
	})

	t.Run("S6_bounds", func(t *testing.T) {
		tree := New[int](lessInt)
		for _, k := range []int{-5, -4, -3, 6, 8, 9, 10, 11, 15, 17} {
			tree.Insert(k)
		}
		assert.Equal(t, 8, tree.LowerBound(7).Key())
		assert.Equal(t, 15, tree.UpperBound(13).Key())
	})

	t.Run("S7_clone_independence", func(t *testing.T) {
		tree := New[int](lessInt)
		for i := 1; i <= 10; i++ {
			tree.Insert(i)
		}
		clone := tree.Clone()
		clone.EraseKey(5)

		assert.Equal(t, 9, clone.Len())
		assert.Equal(t, 10, tree.Len())
	})
}

// TestSizeAugmentationEveryNode checks invariant 3 after a mixed
// insert/erase workload, through IsTreeValid, whose CheckStructure call
// compares every node's size with its children's sizes.
func TestSizeAugmentationEveryNode(t *testing.T) {
	tree := New[int](lessInt)
	for i := 0; i < 50; i++ {
		tree.Insert(i * 7 % 97)
	}
	for i := 0; i < 20; i++ {
		tree.EraseKey(i * 11 % 97)
	}
	require.NoError(t, tree.IsTreeValid())
}
