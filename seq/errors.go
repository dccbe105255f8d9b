package seq

import "errors"

// Method names used as error prefixes.
const (
	MethodAll       = "All"
	MethodProduct   = "Product"
	MethodReplicate = "Replicate"
)

// MaxReplicate is the largest slice length Replicate will allocate.
const MaxReplicate = 1 << 24

var (
	// ErrInvalidArgument indicates a malformed argument, e.g. a nil predicate
	// or a Replicate count above MaxReplicate.
	ErrInvalidArgument = errors.New("seq: invalid argument")

	// ErrEmptyInput is returned for an empty slice when WithRejectEmpty is set.
	ErrEmptyInput = errors.New("seq: empty input")

	// ErrOverflow indicates an integer Product that does not fit its type.
	ErrOverflow = errors.New("seq: integer product overflows")
)
