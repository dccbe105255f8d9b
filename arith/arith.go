package arith

const (
	// MaxSumRange is the largest n for which 1+2+…+n fits in int64.
	MaxSumRange int64 = 4294967295

	// MaxFactorial is the largest n for which n! fits in int64.
	MaxFactorial int64 = 20
)

// SumRange returns 1 + 2 + … + n = n(n+1)/2 for n ≥ 1.
//
// Algorithm:
//  1. Validate 1 ≤ n ≤ MaxSumRange.
//  2. Split [1..n] into halves and recurse on each; a single-element range
//     [k..k] is the base case and contributes k. SumRange(1) is therefore 1.
//
// Complexity: O(n) time, O(log n) stack depth. Every integer in the range is
// a leaf call, so about 2n calls are made: n = 10^6 takes milliseconds,
// while n = MaxSumRange makes roughly 8.6·10^9 calls and runs for tens of
// seconds.
//
// Errors:
//   - ErrInvalidArgument if n < 1.
//   - ErrOverflow if n > MaxSumRange.
func SumRange(n int64) (int64, error) {
	if err := validateMin(MethodSumRange, n, 1); err != nil {
		return 0, err
	}
	if err := validateMax(MethodSumRange, n, MaxSumRange); err != nil {
		return 0, err
	}

	return sumBetween(1, n), nil
}

// sumBetween sums the closed range [lo..hi], lo ≤ hi.
func sumBetween(lo, hi int64) int64 {
	if lo == hi {
		return lo
	}
	mid := lo + (hi-lo)/2

	return sumBetween(lo, mid) + sumBetween(mid+1, hi)
}

// Power returns base raised to exp for exp ≥ 0. Power(b, 0) is 1 for every
// b, including 0.
//
// Recursion is by squaring: b^e = (b^(e/2))² · b^(e mod 2), with base case
// e == 0. Every multiplication is overflow-checked.
//
// Complexity: O(log exp) time and stack depth.
//
// Errors:
//   - ErrInvalidArgument if exp < 0.
//   - ErrOverflow if base^exp is outside the int64 range.
func Power(base, exp int64) (int64, error) {
	if err := validateMin(MethodPower, exp, 0); err != nil {
		return 0, err
	}
	res, ok := power(base, exp)
	if !ok {
		return 0, arithErrorf(MethodPower, ErrOverflow, "%d^%d", base, exp)
	}

	return res, nil
}

// power reports ok=false as soon as any partial product overflows.
func power(base, exp int64) (int64, bool) {
	if exp == 0 {
		return 1, true
	}
	half, ok := power(base, exp/2)
	if !ok {
		return 0, false
	}
	sq, ok := mulChecked(half, half)
	if !ok {
		return 0, false
	}
	if exp%2 == 0 {
		return sq, true
	}

	return mulChecked(sq, base)
}

// Factorial returns n! for 0 ≤ n ≤ MaxFactorial, with base case 0! = 1.
//
// Complexity: O(n) time and stack depth (n ≤ 20).
//
// Errors:
//   - ErrInvalidArgument if n < 0.
//   - ErrOverflow if n > MaxFactorial.
func Factorial(n int64) (int64, error) {
	if err := validateMin(MethodFactorial, n, 0); err != nil {
		return 0, err
	}
	if err := validateMax(MethodFactorial, n, MaxFactorial); err != nil {
		return 0, err
	}

	return factorial(n), nil
}

func factorial(n int64) int64 {
	if n == 0 {
		return 1
	}

	return n * factorial(n-1)
}

// mulChecked multiplies a and b, reporting false on int64 overflow.
func mulChecked(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	// sign mismatch catches MinInt64 · -1, which the division check misses
	if (c < 0) != ((a < 0) != (b < 0)) {
		return 0, false
	}
	if c/b != a {
		return 0, false
	}

	return c, true
}
