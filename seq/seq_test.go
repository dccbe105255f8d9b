package seq_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/recurse/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isEven(x int) bool { return x%2 == 0 }

// TestAll_Cases covers the universal-quantifier contract.
func TestAll_Cases(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		want  bool
	}{
		{"all even", []int{2, 4, 6}, true},
		{"one odd", []int{2, 3, 6}, false},
		{"single pass", []int{8}, true},
		{"single fail", []int{7}, false},
		{"empty", []int{}, true},
		{"nil", nil, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := seq.All(tc.items, isEven)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestAll_LessThanSeven mirrors the classic "all below seven" exercise.
func TestAll_LessThanSeven(t *testing.T) {
	got, err := seq.All([]int{1, 3, 5, 8, 1, 3, 5, 3, 2}, func(n int) bool { return n < 7 })
	require.NoError(t, err)
	assert.False(t, got)
}

// TestAll_BackwardOrderAndShortCircuit records which elements were tested.
func TestAll_BackwardOrderAndShortCircuit(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	var seen []int
	got, err := seq.All(items, func(n int) bool {
		seen = append(seen, n)
		return true
	})
	require.NoError(t, err)
	assert.True(t, got)
	assert.Equal(t, []int{7, 6, 5, 4, 3, 2, 1}, seen, "elements must be tested last to first")

	seen = nil
	got, err = seq.All(items, func(n int) bool {
		seen = append(seen, n)
		return n != 5
	})
	require.NoError(t, err)
	assert.False(t, got)
	assert.Equal(t, []int{7, 6, 5}, seen, "first failure must stop the recursion")
}

// TestAll_DoesNotMutate ensures the caller's slice is untouched.
func TestAll_DoesNotMutate(t *testing.T) {
	items := []int{2, 4, 6, 8}
	snapshot := append([]int(nil), items...)
	_, err := seq.All(items, isEven)
	require.NoError(t, err)
	assert.Equal(t, snapshot, items)
	assert.Len(t, items, 4)
}

// TestAll_Errors verifies nil predicate and strict empty handling.
func TestAll_Errors(t *testing.T) {
	_, err := seq.All([]int{1}, nil)
	assert.ErrorIs(t, err, seq.ErrInvalidArgument)

	_, err = seq.All([]int{}, isEven, seq.WithRejectEmpty())
	assert.ErrorIs(t, err, seq.ErrEmptyInput)

	ok, err := seq.All([]int{2}, isEven, seq.WithRejectEmpty(), nil)
	require.NoError(t, err, "nil options are skipped")
	assert.True(t, ok)
}

// TestProduct_Cases covers the product reduction.
func TestProduct_Cases(t *testing.T) {
	got, err := seq.Product([]int{1, 2, 3, 10})
	require.NoError(t, err)
	assert.Equal(t, 60, got)

	got, err = seq.Product([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 6, got)

	got, err = seq.Product([]int{7})
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	got, err = seq.Product([]int{})
	require.NoError(t, err)
	assert.Equal(t, 1, got, "empty product is the multiplicative identity")

	got, err = seq.Product([]int{4, 0, 9})
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	f, err := seq.Product([]float64{0.5, 4, -1.5})
	require.NoError(t, err)
	assert.InDelta(t, -3.0, f, 1e-12)
}

// TestProduct_RejectEmpty verifies the strict empty-input option.
func TestProduct_RejectEmpty(t *testing.T) {
	_, err := seq.Product([]int64(nil), seq.WithRejectEmpty())
	assert.ErrorIs(t, err, seq.ErrEmptyInput)
	assert.Contains(t, err.Error(), seq.MethodProduct)
}

// TestProduct_DoesNotMutate ensures the caller's slice is untouched.
func TestProduct_DoesNotMutate(t *testing.T) {
	items := []int{1, 2, 3, 10}
	_, err := seq.Product(items)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 10}, items)
}

// TestReplicate_Cases covers positive, zero and negative counts.
func TestReplicate_Cases(t *testing.T) {
	got, err := seq.Replicate(3, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 5, 5}, got)

	one, err := seq.Replicate(1, "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, one)

	for _, n := range []int{0, -2} {
		got, err := seq.Replicate(n, 6)
		require.NoError(t, err, "count=%d", n)
		assert.NotNil(t, got, "count=%d", n)
		assert.Empty(t, got, "count=%d", n)
	}

	big, err := seq.Replicate(1000, 'z')
	require.NoError(t, err)
	require.Len(t, big, 1000)
	for i, r := range big {
		require.Equal(t, 'z', r, "index %d", i)
	}
}

// TestReplicate_CountTooLarge verifies oversized counts are rejected
// before any allocation.
func TestReplicate_CountTooLarge(t *testing.T) {
	for _, n := range []int{seq.MaxReplicate + 1, math.MaxInt} {
		got, err := seq.Replicate(n, 0)
		assert.ErrorIs(t, err, seq.ErrInvalidArgument, "count=%d", n)
		assert.Nil(t, got, "count=%d", n)
	}
}

// TestProduct_IntegerOverflow verifies integer products never wrap silently.
func TestProduct_IntegerOverflow(t *testing.T) {
	_, err := seq.Product([]int64{1 << 32, 1 << 32})
	assert.ErrorIs(t, err, seq.ErrOverflow)

	_, err = seq.Product([]int8{16, 16})
	assert.ErrorIs(t, err, seq.ErrOverflow)

	_, err = seq.Product([]uint8{16, 16})
	assert.ErrorIs(t, err, seq.ErrOverflow)

	_, err = seq.Product([]int64{math.MinInt64, -1})
	assert.ErrorIs(t, err, seq.ErrOverflow, "MinInt64 · -1")
	assert.Contains(t, err.Error(), seq.MethodProduct)

	_, err = seq.Product([]int{2, 3, math.MaxInt / 4})
	assert.ErrorIs(t, err, seq.ErrOverflow, "overflow deep in the recursion")
}

// TestProduct_IntegerBounds verifies products that exactly reach a bound.
func TestProduct_IntegerBounds(t *testing.T) {
	i8, err := seq.Product([]int8{-2, 64})
	require.NoError(t, err)
	assert.Equal(t, int8(math.MinInt8), i8)

	u8, err := seq.Product([]uint8{15, 17})
	require.NoError(t, err)
	assert.Equal(t, uint8(255), u8)

	i64, err := seq.Product([]int64{math.MinInt64, 1})
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), i64)

	zero, err := seq.Product([]int64{math.MaxInt64, 0, math.MaxInt64})
	require.NoError(t, err)
	assert.Equal(t, int64(0), zero)
}

// TestProduct_FloatInfinity verifies float products keep IEEE 754 semantics.
func TestProduct_FloatInfinity(t *testing.T) {
	f, err := seq.Product([]float64{math.MaxFloat64, 2})
	require.NoError(t, err)
	assert.True(t, math.IsInf(f, 1))
}

// TestDefaultOptions verifies the identity-result default.
func TestDefaultOptions(t *testing.T) {
	assert.False(t, seq.DefaultOptions().RejectEmpty)
}
