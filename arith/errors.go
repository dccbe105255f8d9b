// SPDX-License-Identifier: MIT
// Package: recurse/arith
//
// errors.go - sentinel errors for the arith package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Context (function name, offending value) is attached with %w wrapping.
//   • Functions never panic on user input.

package arith

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates an argument outside the function domain,
	// e.g. SumRange(0), Power(2, -1) or Factorial(-3).
	ErrInvalidArgument = errors.New("arith: invalid argument")

	// ErrOverflow indicates that the exact result does not fit in int64.
	ErrOverflow = errors.New("arith: result overflows int64")
)

// arithErrorf prefixes the wrapped sentinel with the calling function name.
// The result reads "<method>: <formatted message>: <sentinel>".
func arithErrorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}
