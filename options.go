package polydraw

// Option configures a Controller during creation.
//
// Example:
//
//	// Default behavior: CompletePolygon always moves on to a new polygon
//	ctrl := polydraw.NewController(factory)
//
//	// Refuse to file polygons that could not be closed
//	ctrl := polydraw.NewController(factory, polydraw.WithStrictCompletion())
type Option func(*options)

// options holds optional configuration for Controller creation.
type options struct {
	strict bool
}

// defaultOptions returns the default controller options.
func defaultOptions() options {
	return options{
		strict: false,
	}
}

// WithStrictCompletion makes CompletePolygon leave the scene untouched
// when the current polygon has too few vertices to close. The default
// files the open polygon and starts a new one anyway.
func WithStrictCompletion() Option {
	return func(o *options) {
		o.strict = true
	}
}
