package rbtree

import (
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
)

func BenchmarkTree_InsertFindErase(b *testing.B) {
	tree := New[int](lessInt)
	for i := 0; i <= 1_000_000; i++ {
		tree.Insert(i)
	}

	i := 0
	for b.Loop() {
		it, _ := tree.Find(i)
		tree.Erase(it)
		tree.Insert(i)
		i++
	}
}

func BenchmarkGoDSRedBlackTree_InsertFindErase(b *testing.B) {
	tree := redblacktree.NewWithIntComparator()
	for i := 0; i <= 1_000_000; i++ {
		tree.Put(i, struct{}{})
	}

	i := 0
	for b.Loop() {
		tree.Remove(i)
		tree.Put(i, struct{}{})
		i++
	}
}

func BenchmarkTree_Insert(b *testing.B) {
	tree := New[int](lessInt)
	i := 0
	for b.Loop() {
		tree.Insert(i)
		i++
	}
}

func BenchmarkGoDSRedBlackTree_Insert(b *testing.B) {
	tree := redblacktree.NewWithIntComparator()
	i := 0
	for b.Loop() {
		tree.Put(i, struct{}{})
		i++
	}
}

func BenchmarkTree_RankLE(b *testing.B) {
	tree := New[int](lessInt)
	for i := 0; i <= 1_000_000; i++ {
		tree.Insert(i)
	}

	i := 0
	for b.Loop() {
		tree.RankLE(i % 1_000_000)
		i++
	}
}
