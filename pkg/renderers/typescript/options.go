package typescript

import "github.com/rs/zerolog"

// Option customises the renderer configuration.
type Option func(*config)

type config struct {
	optional bool
	comments bool
	logger   zerolog.Logger
}

func newConfig(options ...Option) config {
	cfg := config{logger: zerolog.Nop()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// WithOptionalMarkers emits "?" on members that are not listed as required by
// their schema. Off by default: every member is required.
func WithOptionalMarkers(enabled bool) Option {
	return func(cfg *config) {
		cfg.optional = enabled
	}
}

// WithComments emits JSDoc lines built from schema and property descriptions.
func WithComments(enabled bool) Option {
	return func(cfg *config) {
		cfg.comments = enabled
	}
}

// WithLogger routes unsupported-type diagnostics to logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}
