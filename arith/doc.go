// Package arith implements integer arithmetic by recursion: triangular
// sums, exponentiation and factorials over int64.
//
// 🚀 What is inside?
//
//	Three classic exercises, each with an explicit base case and an explicit
//	domain. Inputs outside the domain are rejected with a sentinel error
//	instead of recursing forever or silently wrapping around.
//
//	  • SumRange(n)   - 1 + 2 + … + n, base case n == 1
//	  • Power(b, e)   - b^e, base case e == 0
//	  • Factorial(n)  - n!, base case n == 0
//
// ✨ Key features:
//   - O(log n) recursion depth for SumRange and Power (range halving and
//     exponentiation by squaring), so large inputs never exhaust the stack
//   - overflow detection: results that do not fit int64 return ErrOverflow
//   - no allocation, no shared state; every function is safe for concurrent use
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/recurse/arith"
//
//	s, err := arith.SumRange(100) // 5050
//	p, err := arith.Power(2, 10)  // 1024
//	f, err := arith.Factorial(5)  // 120
//
// Errors:
//   - ErrInvalidArgument: n < 1 (SumRange), e < 0 (Power), n < 0 (Factorial)
//   - ErrOverflow: result outside the int64 range
//
// See example_test.go for runnable examples.
package arith
