package nested

import "math"

// Equal reports whether two scalars are the same leaf value.
//
// Int and Float are one numeric domain and compare by exact mathematical
// value, so Int(44) equals Float(44) but not Float(44.5). Numbers never
// equal String or Bool leaves, and no text is parsed: Int(44) does not
// equal String("44"). Float NaN equals nothing, itself included.
func Equal(a, b Scalar) bool {
	switch x := a.(type) {
	case Int:
		switch y := b.(type) {
		case Int:
			return x == y
		case Float:
			return intEqualsFloat(int64(x), float64(y))
		}
	case Float:
		switch y := b.(type) {
		case Int:
			return intEqualsFloat(int64(y), float64(x))
		case Float:
			return x == y
		}
	case String:
		if y, ok := b.(String); ok {
			return x == y
		}
	case Bool:
		if y, ok := b.(Bool); ok {
			return x == y
		}
	}

	return false
}

// int64 bounds as float64: [-2^63, 2^63).
const (
	minInt64Float = -9223372036854775808.0
	maxInt64Float = 9223372036854775808.0
)

func intEqualsFloat(i int64, f float64) bool {
	if !isWhole(f) || f < minInt64Float || f >= maxInt64Float {
		return false
	}

	return int64(f) == i
}

// isWhole reports whether f is a finite number with no fractional part.
func isWhole(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f) && math.Trunc(f) == f
}
