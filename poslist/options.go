package poslist

// Options configures a List. Options are applied by New and Collect.
type Options struct {
	// Capacity pre-sizes the arena and the reverse index.
	Capacity int
}

// Option is a generic option type. Implementations type assert to their
// options record and ignore options that do not apply to them.
type Option func(any)

// WithCapacity reserves space for n values.
func WithCapacity(n int) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok && n > 0 {
			o.Capacity = n
		}
	}
}
