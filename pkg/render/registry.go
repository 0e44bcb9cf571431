package render

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
)

var (
	// ErrUnknownRenderer is returned when a pipeline names a renderer that was
	// never registered.
	ErrUnknownRenderer = errors.New("render: unknown renderer")

	// ErrDuplicateRenderer is returned when two renderers share a name, or a
	// pipeline lists the same renderer twice.
	ErrDuplicateRenderer = errors.New("render: duplicate renderer")
)

// Registry maps renderer names to implementations. Safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

// NewRegistry returns a registry holding renderers.
func NewRegistry(renderers ...Renderer) (*Registry, error) {
	r := &Registry{renderers: make(map[string]Renderer, len(renderers))}
	for _, renderer := range renderers {
		if err := r.Register(renderer); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// MustNewRegistry panics when NewRegistry fails. Useful for init-time wiring.
func MustNewRegistry(renderers ...Renderer) *Registry {
	r, err := NewRegistry(renderers...)
	if err != nil {
		panic(err)
	}
	return r
}

// Register adds renderer under its Name().
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return errors.New("render: renderer is required")
	}
	name := renderer.Name()
	if name == "" {
		return errors.New("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateRenderer, name)
	}
	r.renderers[name] = renderer
	return nil
}

// Get retrieves a renderer by name.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.renderers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (registered: %v)", ErrUnknownRenderer, name, slices.Sorted(maps.Keys(r.renderers)))
	}
	return renderer, nil
}

// Resolve turns a pipeline of names into renderers, keeping the given order.
// Every renderer runs once per model, so a name may appear only once.
func (r *Registry) Resolve(names ...string) ([]Renderer, error) {
	if len(names) == 0 {
		return nil, errors.New("render: pipeline is empty")
	}
	seen := make(map[string]struct{}, len(names))
	out := make([]Renderer, 0, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w in pipeline: %q", ErrDuplicateRenderer, name)
		}
		seen[name] = struct{}{}

		renderer, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		out = append(out, renderer)
	}
	return out, nil
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.renderers))
}
