package seq

import "fmt"

// All reports whether pred holds for every element of items.
//
// Elements are visited from the last to the first; the first element for
// which pred returns false ends the recursion and All returns false.
// An empty slice yields true unless WithRejectEmpty is given.
//
// Errors:
//   - ErrInvalidArgument if pred is nil.
//   - ErrEmptyInput if items is empty and WithRejectEmpty is set.
func All[T any](items []T, pred func(T) bool, opts ...Option) (bool, error) {
	if pred == nil {
		return false, fmt.Errorf("%s: predicate is nil: %w", MethodAll, ErrInvalidArgument)
	}
	o := resolve(opts)
	if len(items) == 0 {
		if o.RejectEmpty {
			return false, fmt.Errorf("%s: %w", MethodAll, ErrEmptyInput)
		}

		return true, nil
	}

	return all(items, pred), nil
}

// all tests the right half before the left half, so evaluation order runs
// from the last element backwards.
func all[T any](items []T, pred func(T) bool) bool {
	switch len(items) {
	case 0:
		return true
	case 1:
		return pred(items[0])
	}
	mid := len(items) / 2

	return all(items[mid:], pred) && all(items[:mid], pred)
}

// Product returns the product of all elements of items. A single-element
// slice yields that element; an empty slice yields 1 unless WithRejectEmpty
// is given. Integer products are overflow-checked; float products follow
// IEEE 754 and may reach ±Inf.
//
// Errors:
//   - ErrEmptyInput if items is empty and WithRejectEmpty is set.
//   - ErrOverflow if an integer product does not fit T.
func Product[T Number](items []T, opts ...Option) (T, error) {
	o := resolve(opts)
	if len(items) == 0 {
		if o.RejectEmpty {
			return 0, fmt.Errorf("%s: %w", MethodProduct, ErrEmptyInput)
		}

		return 1, nil
	}
	res, ok := product(items)
	if !ok {
		return 0, fmt.Errorf("%s: %w", MethodProduct, ErrOverflow)
	}

	return res, nil
}

// product requires len(items) ≥ 1 and reports false on integer overflow.
func product[T Number](items []T) (T, bool) {
	if len(items) == 1 {
		return items[0], true
	}
	mid := len(items) / 2
	left, ok := product(items[:mid])
	if !ok {
		return 0, false
	}
	right, ok := product(items[mid:])
	if !ok {
		return 0, false
	}

	return mulChecked(left, right)
}

// mulChecked multiplies a and b. For integer T it reports false when the
// product wraps around; float T always succeeds.
func mulChecked[T Number](a, b T) (T, bool) {
	one, zero := T(1), T(0)
	if one/2 != zero {
		return a * b, true
	}
	if a == zero || b == zero {
		return zero, true
	}
	c := a * b
	if zero-one < zero {
		// signed: MinValue · -1 wraps to MinValue, which the division check misses
		if (c < zero) != ((a < zero) != (b < zero)) {
			return zero, false
		}
	}
	if c/b != a {
		return zero, false
	}

	return c, true
}

// Replicate returns a new slice holding count copies of value.
// A non-positive count yields an empty, non-nil slice.
//
// Errors:
//   - ErrInvalidArgument if count > MaxReplicate.
func Replicate[T any](count int, value T) ([]T, error) {
	if count > MaxReplicate {
		return nil, fmt.Errorf("%s: count must be ≤ %d, got %d: %w", MethodReplicate, MaxReplicate, count, ErrInvalidArgument)
	}
	if count <= 0 {
		return []T{}, nil
	}
	out := make([]T, count)
	fill(out, value)

	return out, nil
}

func fill[T any](dst []T, value T) {
	switch len(dst) {
	case 0:
		return
	case 1:
		dst[0] = value

		return
	}
	mid := len(dst) / 2
	fill(dst[:mid], value)
	fill(dst[mid:], value)
}
