package openapi

import (
	"context"
	"io/fs"
	"net/http"
	"time"
)

// Loader returns the raw document a Source points at.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions selects which source kinds a Loader serves. Files are always
// served; fs.FS entries need FileSystem and URLs need HTTPClient or
// AllowHTTPFallback.
type LoaderOptions struct {
	FileSystem        fs.FS
	HTTPClient        *http.Client
	AllowHTTPFallback bool
	// RequestTimeout bounds one remote fetch. Zero means no bound beyond the
	// caller's context.
	RequestTimeout time.Duration
}

// LoaderOption mutates LoaderOptions.
type LoaderOption func(*LoaderOptions)

// WithFileSystem serves SourceKindFS lookups from files.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient serves URL sources through client. The client's own timeout
// wins over RequestTimeout when both are set.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithHTTPFallback serves URL sources through a fresh client bounded by
// timeout.
func WithHTTPFallback(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowHTTPFallback = true
		opts.RequestTimeout = timeout
	}
}

// NewLoaderOptions folds options into a LoaderOptions value. Nil options are
// skipped.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	var cfg LoaderOptions
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
