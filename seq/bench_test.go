package seq_test

import (
	"testing"

	"github.com/katalvlaran/recurse/seq"
)

// BenchmarkAll_10k benchmarks All over 10k passing elements (no short-circuit).
func BenchmarkAll_10k(b *testing.B) {
	items, err := seq.Replicate(10_000, 2)
	if err != nil {
		b.Fatalf("Replicate failed: %v", err)
	}
	even := func(x int) bool { return x%2 == 0 }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := seq.All(items, even); err != nil {
			b.Fatalf("All failed: %v", err)
		}
	}
}

// BenchmarkProduct_10k benchmarks the product of 10k ones.
func BenchmarkProduct_10k(b *testing.B) {
	items, err := seq.Replicate(10_000, 1.0)
	if err != nil {
		b.Fatalf("Replicate failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := seq.Product(items); err != nil {
			b.Fatalf("Product failed: %v", err)
		}
	}
}

// BenchmarkReplicate_10k benchmarks building a 10k-element slice.
func BenchmarkReplicate_10k(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := seq.Replicate(10_000, 7); err != nil {
			b.Fatalf("Replicate failed: %v", err)
		}
	}
}
