package collections_test

import (
	"testing"

	"github.com/hasbyte1/figstats/collections"
)

// makeInts creates a Collection[int] of size n for benchmarks.
func makeInts(n int) *collections.Collection[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return collections.From(items)
}

func BenchmarkFilter(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Filter(func(n int) bool { return n%2 == 0 })
	}
}

func BenchmarkFindLast(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.FindLast(func(n int) bool { return n == 1 })
	}
}

func BenchmarkMapFunc(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Map(c, func(n int) int { return n * 2 })
	}
}

func BenchmarkReduceFunc(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.Reduce(c, func(n, acc int) int { return acc + n }, 0)
	}
}

func BenchmarkPairIf(b *testing.B) {
	c := makeInts(1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.PairIf(c, c, func(x, y int) bool { return x == y })
	}
}

func BenchmarkPairIfKeyed(b *testing.B) {
	c := makeInts(1_000)
	id := func(n int) int { return n }
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collections.PairIfKeyed(c, c, id, id, nil)
	}
}
