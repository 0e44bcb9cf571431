package render

import (
	"context"

	"github.com/goliatone/go-typegen/pkg/model"
)

// Renderer converts a single Model into a source fragment (a TypeScript
// interface, a validator declaration, ...).
type Renderer interface {
	Name() string
	Render(ctx context.Context, m model.Model, options RenderOptions) ([]byte, error)
}

// Preambler is implemented by renderers whose output needs file-level lines
// (imports) emitted once before any model.
type Preambler interface {
	Preamble() string
}
