package typegen

import (
	internalLoader "github.com/goliatone/go-typegen/internal/openapi/loader"
	internalReader "github.com/goliatone/go-typegen/internal/openapi/reader"
	pkgopenapi "github.com/goliatone/go-typegen/pkg/openapi"
)

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	cfg := pkgopenapi.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewReader constructs a schema reader backed by the internal implementation.
func NewReader(options ...pkgopenapi.ReaderOption) pkgopenapi.Reader {
	cfg := pkgopenapi.NewReaderOptions(options...)
	return internalReader.New(cfg)
}
