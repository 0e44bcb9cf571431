package typegen

import (
	"context"

	pkgopenapi "github.com/goliatone/go-typegen/pkg/openapi"
	"github.com/goliatone/go-typegen/pkg/orchestrator"
	"github.com/goliatone/go-typegen/pkg/render"
)

// RenderOptions is re-exported so callers writing custom renderers do not
// need to import pkg/render.
type RenderOptions = render.RenderOptions

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate loads the OpenAPI source and returns the content of models.ts:
// one TypeScript interface and one yup validator per object schema.
func Generate(ctx context.Context, source pkgopenapi.Source, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{Source: source})
}

// GenerateFromDocument renders a pre-loaded document, bypassing the loader
// stage while still delegating to the orchestrator.
func GenerateFromDocument(ctx context.Context, doc pkgopenapi.Document, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{Document: &doc})
}
