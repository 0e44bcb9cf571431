package yup

import (
	"strings"

	"github.com/goliatone/go-typegen/pkg/model"
	"github.com/goliatone/go-typegen/pkg/renderers/typescript"
)

// DefaultLibrary is the identifier the generated code imports yup under.
const DefaultLibrary = "yup"

// Option customises the builder and renderer.
type Option func(*config)

type config struct {
	library       string
	honorRequired bool
}

func newConfig(options ...Option) config {
	cfg := config{library: DefaultLibrary}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// WithLibrary changes the identifier chains start from. Blank names are
// ignored.
func WithLibrary(name string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cfg.library = trimmed
		}
	}
}

// WithHonorRequired ends the chain of properties missing from the schema's
// required list with notRequired().
func WithHonorRequired(enabled bool) Option {
	return func(cfg *config) {
		cfg.honorRequired = enabled
	}
}

// Entry renders one "name: yup.chain()," line including the
// trailing newline.
func Entry(prop model.ModelProperty, options ...Option) string {
	return entry(prop, newConfig(options...))
}

func entry(prop model.ModelProperty, cfg config) string {
	rules := Derive(prop)
	rules.Optional = cfg.honorRequired && !prop.Required
	return typescript.PropertyName(prop.Name) + ": " + cfg.library + Serialize(rules) + ",\n"
}

// Build renders the validator declaration for m, ending with a newline.
func Build(m model.Model, options ...Option) string {
	cfg := newConfig(options...)

	var b strings.Builder
	b.WriteString("export const ")
	b.WriteString(m.Name)
	b.WriteString("Validator = ")
	b.WriteString(cfg.library)
	b.WriteString(".object().shape({\n")
	m.Properties.Each(func(prop model.ModelProperty) bool {
		b.WriteString(entry(prop, cfg))
		return true
	})
	b.WriteString("});\n")
	return b.String()
}
