package render

// RenderOptions describe per-run switches shared by every renderer in a
// pipeline.
type RenderOptions struct {
	// HonorRequired makes renderers mark properties missing from the parent
	// schema's required list as optional. Off by default, in which case every
	// property is emitted as required.
	HonorRequired bool
}
