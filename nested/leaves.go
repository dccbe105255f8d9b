package nested

import "fmt"

// TotalIntegers counts the whole-number leaves of v at any depth.
//
// Int leaves always count; Float leaves count when finite with no
// fractional part (5.0 counts, 5.5 does not). String and Bool leaves are
// ignored and an empty List contributes 0. A bare scalar is a single leaf.
//
// Errors:
//   - ErrInvalidArgument if v (or any element) is nil.
func TotalIntegers(v Value) (int, error) {
	switch x := v.(type) {
	case List:
		return totalIntegers(x)
	case Int:
		return 1, nil
	case Float:
		if isWhole(float64(x)) {
			return 1, nil
		}

		return 0, nil
	case String, Bool:
		return 0, nil
	default:
		return 0, fmt.Errorf("%s: nil value: %w", MethodTotalIntegers, ErrInvalidArgument)
	}
}

// totalIntegers peels the last element off a read-only view of items.
func totalIntegers(items List) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	last, err := TotalIntegers(items[len(items)-1])
	if err != nil {
		return 0, err
	}
	rest, err := totalIntegers(items[:len(items)-1])
	if err != nil {
		return 0, err
	}

	return last + rest, nil
}

// SumSquares returns the sum of x² over every numeric leaf of v at any
// depth. A bare numeric scalar is a single leaf; an empty List contributes 0.
//
// Squares and the running sum are float64, Int leaves included: a sum above
// 2^53 is rounded to the nearest representable float64 (Int(94906267)²
// already is), and a sum beyond math.MaxFloat64 becomes +Inf.
//
// Errors:
//   - ErrInvalidArgument if v (or any element) is nil, or a leaf is a
//     String or Bool.
func SumSquares(v Value) (float64, error) {
	switch x := v.(type) {
	case List:
		return sumSquares(x)
	case Int:
		f := float64(x)

		return f * f, nil
	case Float:
		return float64(x) * float64(x), nil
	case String:
		return 0, fmt.Errorf("%s: non-numeric leaf %q: %w", MethodSumSquares, string(x), ErrInvalidArgument)
	case Bool:
		return 0, fmt.Errorf("%s: non-numeric leaf %t: %w", MethodSumSquares, bool(x), ErrInvalidArgument)
	default:
		return 0, fmt.Errorf("%s: nil value: %w", MethodSumSquares, ErrInvalidArgument)
	}
}

func sumSquares(items List) (float64, error) {
	if len(items) == 0 {
		return 0, nil
	}
	last, err := SumSquares(items[len(items)-1])
	if err != nil {
		return 0, err
	}
	rest, err := sumSquares(items[:len(items)-1])
	if err != nil {
		return 0, err
	}

	return last + rest, nil
}
