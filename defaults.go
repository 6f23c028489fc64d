package tiercache

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

// Option configures diagnostics for a combinator.
type Option func(*config)

type config struct {
	log   Logger
	hooks Hooks
}

// WithLogger routes combinator trace lines to l. Default: NopLogger.
func WithLogger(l Logger) Option {
	return func(c *config) { c.log = l }
}

// WithHooks reports combinator events to h. Default: NopHooks.
func WithHooks(h Hooks) Option {
	return func(c *config) { c.hooks = h }
}

func newConfig(opts []Option) config {
	var c config
	for _, o := range opts {
		if o != nil {
			o(&c)
		}
	}
	c.log = coalesce[Logger](c.log, NopLogger{})
	c.hooks = coalesce[Hooks](c.hooks, NopHooks{})
	return c
}
