package seq

// Number is the set of element types Product accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Option configures All and Product via functional arguments.
type Option func(*Options)

// Options holds the resolved settings of a reduction call.
type Options struct {
	// RejectEmpty makes an empty input an ErrEmptyInput error instead of
	// returning the identity element.
	RejectEmpty bool
}

// DefaultOptions returns Options with identity results for empty input.
func DefaultOptions() Options {
	return Options{RejectEmpty: false}
}

// WithRejectEmpty reports empty input as ErrEmptyInput.
func WithRejectEmpty() Option {
	return func(o *Options) {
		o.RejectEmpty = true
	}
}

// resolve applies opts over DefaultOptions, skipping nil entries.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
