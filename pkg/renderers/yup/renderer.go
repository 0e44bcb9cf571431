package yup

import (
	"context"

	"github.com/goliatone/go-typegen/pkg/model"
	"github.com/goliatone/go-typegen/pkg/render"
)

// Name is the registry key of the renderer.
const Name = "yup"

// Renderer emits one validator declaration per model.
type Renderer struct {
	options []Option
	cfg     config
}

var (
	_ render.Renderer  = (*Renderer)(nil)
	_ render.Preambler = (*Renderer)(nil)
)

// New constructs a Renderer. Options apply to every Render call.
func New(options ...Option) *Renderer {
	return &Renderer{
		options: append([]Option(nil), options...),
		cfg:     newConfig(options...),
	}
}

// Name implements render.Renderer.
func (r *Renderer) Name() string {
	return Name
}

// Preamble implements render.Preambler.
func (r *Renderer) Preamble() string {
	return "import * as " + r.cfg.library + " from 'yup';"
}

// Render implements render.Renderer.
func (r *Renderer) Render(ctx context.Context, m model.Model, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts := append([]Option(nil), r.options...)
	if options.HonorRequired {
		opts = append(opts, WithHonorRequired(true))
	}
	return []byte(Build(m, opts...)), nil
}
