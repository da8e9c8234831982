package coloring

import "github.com/rs/zerolog"

// Option configures ColorShared.
type Option func(*options)

type options struct {
	logger zerolog.Logger
}

func defaultOptions() options {
	return options{logger: zerolog.Nop()}
}

// WithLogger routes worker diagnostics (budget exhaustion, progress) to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}
