// SPDX-License-Identifier: MIT
// Package: recurse/nested
//
// errors.go - sentinel errors for the nested package.
//
// Callers branch with errors.Is; context (method, offending leaf or key) is
// attached with %w at the return site.

package nested

import "errors"

// Method names used as error prefixes.
const (
	MethodContains      = "Contains"
	MethodTotalIntegers = "TotalIntegers"
	MethodSumSquares    = "SumSquares"
	MethodParseValue    = "ParseValue"
	MethodParseTree     = "ParseTree"
	MethodParseScalar   = "ParseScalar"
)

var (
	// ErrInvalidArgument indicates malformed input: a nil variant, a
	// non-numeric leaf where a number is required, a duplicate mapping key,
	// or a document whose shape does not match the requested variant.
	ErrInvalidArgument = errors.New("nested: invalid argument")

	// ErrDecode indicates that the input bytes are not a valid YAML/JSON document.
	ErrDecode = errors.New("nested: malformed document")
)
