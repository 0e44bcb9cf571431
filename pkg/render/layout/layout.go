package layout

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/flosch/pongo2/v6"
)

// DefaultTemplate is the embedded template used when no override is given.
const DefaultTemplate = "templates/models.ts.tpl"

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// DefaultHeader is emitted at the top of every generated file.
var DefaultHeader = []string{
	"/* eslint-disable */",
	"// Code generated by typegen. DO NOT EDIT.",
}

// TemplatesFS exposes the embedded template bundle so callers can copy and
// customise it.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// Block holds the rendered fragments of one model, in pipeline order.
type Block struct {
	Name  string
	Parts []string
}

// Page is the input of a layout run.
type Page struct {
	Preambles []string
	Blocks    []Block
}

// Option configures the layout before construction.
type Option func(*config)

type config struct {
	templates fs.FS
	name      string
	header    []string
}

// WithTemplatesFS supplies an alternate template bundle and the template name
// to load from it.
func WithTemplatesFS(files fs.FS, name string) Option {
	return func(cfg *config) {
		if files == nil {
			return
		}
		cfg.templates = files
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cfg.name = trimmed
		}
	}
}

// WithHeader replaces the header comment lines.
func WithHeader(lines ...string) Option {
	return func(cfg *config) {
		cfg.header = append([]string(nil), lines...)
	}
}

// Layout assembles rendered fragments into a single file using pongo2.
type Layout struct {
	template *pongo2.Template
	header   []string
}

// New loads the configured template once; Execute can then be called
// repeatedly.
func New(options ...Option) (*Layout, error) {
	cfg := &config{
		templates: embeddedTemplates,
		name:      DefaultTemplate,
		header:    DefaultHeader,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	set := pongo2.NewSet("typegen", pongo2.NewFSLoader(cfg.templates))
	tmpl, err := set.FromFile(cfg.name)
	if err != nil {
		return nil, fmt.Errorf("layout: load template %q: %w", cfg.name, err)
	}

	return &Layout{
		template: tmpl,
		header:   append([]string(nil), cfg.header...),
	}, nil
}

// Execute renders page into file content.
func (l *Layout) Execute(page Page) ([]byte, error) {
	if l == nil || l.template == nil {
		return nil, errors.New("layout: template is not loaded")
	}

	blocks := make([]map[string]any, 0, len(page.Blocks))
	for _, block := range page.Blocks {
		blocks = append(blocks, map[string]any{
			"name":  block.Name,
			"parts": append([]string(nil), block.Parts...),
		})
	}

	ctx := pongo2.Context{
		"header":    l.header,
		"preambles": page.Preambles,
		"blocks":    blocks,
	}

	var buf bytes.Buffer
	if err := l.template.ExecuteWriter(ctx, &buf); err != nil {
		return nil, fmt.Errorf("layout: execute template: %w", err)
	}
	return buf.Bytes(), nil
}
