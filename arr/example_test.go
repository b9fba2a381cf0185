package arr_test

import (
	"fmt"

	"github.com/hasbyte1/figstats/arr"
)

func ExampleFilter() {
	evens := arr.Filter([]int{1, 2, 3, 4, 5}, func(n int) bool { return n%2 == 0 })
	fmt.Println(evens)
	// Output: [2 4]
}

func ExampleFindLast() {
	v, ok := arr.FindLast([]int{10, 250, 300, 50}, func(n int) bool { return n > 200 })
	fmt.Println(v, ok)
	_, ok = arr.FindLast([]int{1, 2}, func(n int) bool { return n > 200 })
	fmt.Println(ok)
	// Output:
	// 300 true
	// false
}

func ExampleMap() {
	doubled := arr.Map([]int{1, 2, 3}, func(n int) int { return n * 2 })
	fmt.Println(doubled)
	// Output: [2 4 6]
}

func ExamplePairIf() {
	pairs := arr.PairIf([]int{1, 2}, []int{2, 3}, func(x, y int) bool { return x < y })
	fmt.Println(pairs)
	// Output: [(1, 2) (1, 3) (2, 3)]
}

func ExampleReduce() {
	sum := arr.Reduce([]int{1, 2, 3, 4}, func(n, acc int) int { return acc + n }, 0)
	fmt.Println(sum)
	// Output: 10
}
