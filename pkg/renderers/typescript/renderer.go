package typescript

import (
	"context"

	"github.com/goliatone/go-typegen/pkg/model"
	"github.com/goliatone/go-typegen/pkg/render"
)

// Name is the registry key of the renderer.
const Name = "typescript"

// Renderer emits one interface declaration per model.
type Renderer struct {
	options []Option
	cfg     config
}

var _ render.Renderer = (*Renderer)(nil)

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

// Render implements render.Renderer. The output ends with a newline.
func (r *Renderer) Render(ctx context.Context, m model.Model, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts := append([]Option(nil), r.options...)
	if options.HonorRequired {
		opts = append(opts, WithOptionalMarkers(true))
	}

	m.Properties.Each(func(prop model.ModelProperty) bool {
		if !prop.Type.Supported() {
			r.cfg.logger.Warn().
				Str("model", m.Name).
				Str("property", prop.Name).
				Msg("unsupported property type, emitting " + Fallback)
		}
		return true
	})

	return []byte(Build(m, opts...) + "\n"), nil
}
