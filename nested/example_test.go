package nested_test

import (
	"fmt"

	"github.com/katalvlaran/recurse/nested"
)

// ExampleContains searches a decoded JSON object for a number and a string.
func ExampleContains() {
	tree, err := nested.ParseTree([]byte(`{"a": {"b": {"c": 44}}}`))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	hasIt, _ := nested.Contains(tree, nested.Int(44))
	doesntHaveIt, _ := nested.Contains(tree, nested.String("foo"))
	fmt.Println(hasIt, doesntHaveIt)
	// Output:
	// true false
}

// ExampleTotalIntegers counts integers in a ragged nested list.
func ExampleTotalIntegers() {
	v, _ := nested.ParseValue([]byte(`[[[5],3],0,2,["foo"],[],[4,[5,6]]]`))
	n, _ := nested.TotalIntegers(v)
	fmt.Println(n)
	// Output:
	// 7
}

// ExampleSumSquares sums squares of a hand-built nested list.
func ExampleSumSquares() {
	v := nested.List{
		nested.Int(10),
		nested.List{nested.List{nested.Int(10)}, nested.Int(10)},
		nested.List{nested.Int(10)},
	}
	s, _ := nested.SumSquares(v)
	fmt.Println(s)
	// Output:
	// 400
}
