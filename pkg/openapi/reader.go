package openapi

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-typegen/pkg/model"
)

// Reader turns a Document into the models declared under
// components/schemas, in document order.
type Reader interface {
	Models(ctx context.Context, doc Document) (ReadResult, error)
}

// ReadResult is the outcome of a successful read. Skipped lists every schema
// or property left out of Models, so "no models" can be told apart from
// "everything was skipped".
type ReadResult struct {
	Models  []model.Model
	Skipped []Skip
}

// ReaderOptions configures reader behaviour.
type ReaderOptions struct {
	// IntegerAsNumber maps "integer" properties onto model.TypeNumber. Off by
	// default, so integers surface as unsupported.
	IntegerAsNumber bool

	// Logger receives one warning per skipped schema or property.
	Logger zerolog.Logger
}

// ReaderOption mutates ReaderOptions during construction.
type ReaderOption func(*ReaderOptions)

// WithIntegerAsNumber toggles integer -> number mapping.
func WithIntegerAsNumber(enabled bool) ReaderOption {
	return func(opts *ReaderOptions) {
		opts.IntegerAsNumber = enabled
	}
}

// WithReaderLogger routes skip diagnostics to logger.
func WithReaderLogger(logger zerolog.Logger) ReaderOption {
	return func(opts *ReaderOptions) {
		opts.Logger = logger
	}
}

// NewReaderOptions applies ReaderOption functions and returns the resulting
// configuration. Implementations under internal/openapi call this helper to
// stay consistent.
func NewReaderOptions(options ...ReaderOption) ReaderOptions {
	cfg := ReaderOptions{
		Logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}
