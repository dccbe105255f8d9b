package arith_test

import (
	"testing"

	"github.com/katalvlaran/recurse/arith"
)

// BenchmarkSumRange_1e6 benchmarks the halving recursion on a 1e6-element range.
func BenchmarkSumRange_1e6(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := arith.SumRange(1_000_000); err != nil {
			b.Fatalf("SumRange failed: %v", err)
		}
	}
}

// BenchmarkPower benchmarks exponentiation by squaring near the int64 limit.
func BenchmarkPower(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := arith.Power(3, 39); err != nil {
			b.Fatalf("Power failed: %v", err)
		}
	}
}

// BenchmarkFactorial benchmarks the largest representable factorial.
func BenchmarkFactorial(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := arith.Factorial(arith.MaxFactorial); err != nil {
			b.Fatalf("Factorial failed: %v", err)
		}
	}
}
