// Package recurse is a small collection of recursive algorithms, each kept
// in its own package with explicit base cases, explicit domains and
// sentinel errors instead of undefined behavior.
//
// 🚀 What is inside?
//
//		• Arithmetic:  SumRange, Power, Factorial                (arith/)
//		• Sequences:   All, Product, Replicate                   (seq/)
//		• Nested data: Contains, TotalIntegers, SumSquares       (nested/)
//		• CLI:         every operation from the shell            (cmd/recurse)
//
// ✨ Why recurse?
//
//   - No mutation: recursion walks sub-slice views, never the caller's data
//   - Typed nesting: nested data is a closed tagged variant, not interface{}
//   - Defined edges: empty inputs, negative counts and int64 overflow all
//     have a documented result or a sentinel error
//
// Under the hood:
//
//	arith/       - int64 recursions with overflow checks
//	seq/         - generic reductions with functional options
//	nested/      - Scalar/Value/Tree variants + YAML/JSON decoding
//	cmd/recurse/ - cobra front end with zap logging
//
//	go get github.com/katalvlaran/recurse
package recurse
