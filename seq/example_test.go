package seq_test

import (
	"fmt"

	"github.com/katalvlaran/recurse/seq"
)

// ExampleAll checks evenness over two small slices.
func ExampleAll() {
	even := func(x int) bool { return x%2 == 0 }

	a, _ := seq.All([]int{2, 4, 6}, even)
	b, _ := seq.All([]int{2, 3, 6}, even)
	fmt.Println(a, b)
	// Output:
	// true false
}

// ExampleProduct multiplies a slice and shows the empty-input identity.
func ExampleProduct() {
	p, _ := seq.Product([]int{1, 2, 3, 10})
	e, _ := seq.Product([]int{})
	_, err := seq.Product([]int{}, seq.WithRejectEmpty())
	fmt.Println(p, e, err)
	// Output:
	// 60 1 Product: seq: empty input
}

// ExampleReplicate builds copies of a value.
func ExampleReplicate() {
	fives, _ := seq.Replicate(3, 5)
	none, _ := seq.Replicate(-2, 6)
	fmt.Println(fives, len(none))
	// Output:
	// [5 5 5] 0
}
