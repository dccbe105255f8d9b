package arith

// Method names used as error prefixes.
const (
	MethodSumRange  = "SumRange"
	MethodPower     = "Power"
	MethodFactorial = "Factorial"
)

// validateMin ensures that got ≥ min.
// Returns "<Method>: parameter must be ≥ <min>, got <got>: arith: invalid argument" otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int64) error {
	if got < min {
		return arithErrorf(method, ErrInvalidArgument, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validateMax ensures that got ≤ max, where max is the largest input whose
// result still fits int64.
//
// Complexity: O(1) time and space.
func validateMax(method string, got, max int64) error {
	if got > max {
		return arithErrorf(method, ErrOverflow, "parameter must be ≤ %d, got %d", max, got)
	}

	return nil
}
