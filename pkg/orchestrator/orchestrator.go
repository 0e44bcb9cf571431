package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	internalLoader "github.com/goliatone/go-typegen/internal/openapi/loader"
	internalReader "github.com/goliatone/go-typegen/internal/openapi/reader"
	"github.com/goliatone/go-typegen/pkg/model"
	pkgopenapi "github.com/goliatone/go-typegen/pkg/openapi"
	"github.com/goliatone/go-typegen/pkg/render"
	"github.com/goliatone/go-typegen/pkg/render/layout"
	"github.com/goliatone/go-typegen/pkg/renderers/typescript"
	"github.com/goliatone/go-typegen/pkg/renderers/yup"
)

// DefaultHTTPTimeout bounds remote document fetches made by the default
// loader.
const DefaultHTTPTimeout = 30 * time.Second

// DefaultPipeline lists the renderers run for every model, in output order.
var DefaultPipeline = []string{typescript.Name, yup.Name}

// Confirmer decides whether an existing output file may be replaced.
type Confirmer interface {
	ConfirmOverwrite(ctx context.Context, project, path string) (bool, error)
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom OpenAPI loader.
func WithLoader(loader pkgopenapi.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithReader injects a custom schema reader.
func WithReader(reader pkgopenapi.Reader) Option {
	return func(o *Orchestrator) {
		o.reader = reader
	}
}

// WithLoaderOptions tunes the default loader. Ignored when WithLoader is
// used.
func WithLoaderOptions(options ...pkgopenapi.LoaderOption) Option {
	return func(o *Orchestrator) {
		o.loaderOptions = append(o.loaderOptions, options...)
	}
}

// WithReaderOptions tunes the default reader. Ignored when WithReader is
// used.
func WithReaderOptions(options ...pkgopenapi.ReaderOption) Option {
	return func(o *Orchestrator) {
		o.readerOptions = append(o.readerOptions, options...)
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithPipeline overrides the renderer names run for each model.
func WithPipeline(names ...string) Option {
	return func(o *Orchestrator) {
		if len(names) == 0 {
			return
		}
		o.pipeline = append([]string(nil), names...)
	}
}

// WithLayout injects a custom file layout.
func WithLayout(l *layout.Layout) Option {
	return func(o *Orchestrator) {
		o.layout = l
	}
}

// WithLogger routes progress and skip diagnostics to logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithConfirmer asks c before replacing outputs of projects that disable
// overwriting.
func WithConfirmer(c Confirmer) Option {
	return func(o *Orchestrator) {
		o.confirmer = c
	}
}

// WithHonorRequired makes renderers mark properties outside the schema's
// required list as optional.
func WithHonorRequired(enabled bool) Option {
	return func(o *Orchestrator) {
		o.honorRequired = enabled
	}
}

// WithCheck turns GenerateProject into a dry run that fails with
// ErrOutputStale when the output file would change.
func WithCheck(enabled bool) Option {
	return func(o *Orchestrator) {
		o.check = enabled
	}
}

// Orchestrator coordinates the full pipeline from OpenAPI document to
// models.ts. It applies sensible defaults (file and HTTP loading, TypeScript
// and yup renderers, embedded layout) while remaining open to dependency
// injection for advanced callers.
type Orchestrator struct {
	loader          pkgopenapi.Loader
	loaderOptions   []pkgopenapi.LoaderOption
	reader          pkgopenapi.Reader
	readerOptions   []pkgopenapi.ReaderOption
	registry        *render.Registry
	pipeline        []string
	layout          *layout.Layout
	logger          zerolog.Logger
	confirmer       Confirmer
	honorRequired   bool
	check           bool
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		pipeline: append([]string(nil), DefaultPipeline...),
		logger:   zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the input document of a single generation.
type Request struct {
	// Source identifies where the OpenAPI document lives. Optional when Document
	// is supplied.
	Source pkgopenapi.Source

	// Document allows callers to bypass the loader when they already have the
	// payload.
	Document *pkgopenapi.Document
}

// Output is the result of Build.
type Output struct {
	Content []byte
	Models  []model.Model
	Skipped []pkgopenapi.Skip
}

// Build executes the loader → reader → renderers → layout sequence without
// touching the filesystem.
func (o *Orchestrator) Build(ctx context.Context, req Request) (Output, error) {
	if ctx == nil {
		return Output{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Output{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Output{}, err
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return Output{}, err
	}

	result, err := o.reader.Models(ctx, doc)
	if err != nil {
		return Output{}, fmt.Errorf("orchestrator: read models: %w", err)
	}

	renderers, err := o.registry.Resolve(o.pipeline...)
	if err != nil {
		return Output{}, fmt.Errorf("orchestrator: %w", err)
	}

	page := layout.Page{}
	for _, renderer := range renderers {
		if preambler, ok := renderer.(render.Preambler); ok {
			if preamble := preambler.Preamble(); preamble != "" {
				page.Preambles = append(page.Preambles, preamble)
			}
		}
	}

	options := render.RenderOptions{HonorRequired: o.honorRequired}
	for _, m := range result.Models {
		block := layout.Block{Name: m.Name}
		for _, renderer := range renderers {
			out, err := renderer.Render(ctx, m, options)
			if err != nil {
				return Output{}, fmt.Errorf("orchestrator: render %s with %s: %w", m.Name, renderer.Name(), err)
			}
			block.Parts = append(block.Parts, string(out))
		}
		page.Blocks = append(page.Blocks, block)
	}

	content, err := o.layout.Execute(page)
	if err != nil {
		return Output{}, fmt.Errorf("orchestrator: %w", err)
	}

	return Output{
		Content: content,
		Models:  result.Models,
		Skipped: result.Skipped,
	}, nil
}

// Generate returns the file content Build produces.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	out, err := o.Build(ctx, req)
	if err != nil {
		return nil, err
	}
	return out.Content, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (pkgopenapi.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return pkgopenapi.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		options := append([]pkgopenapi.LoaderOption{pkgopenapi.WithHTTPFallback(DefaultHTTPTimeout)}, o.loaderOptions...)
		o.loader = internalLoader.New(pkgopenapi.NewLoaderOptions(options...))
	}
	if o.reader == nil {
		options := append([]pkgopenapi.ReaderOption{pkgopenapi.WithReaderLogger(o.logger)}, o.readerOptions...)
		o.reader = internalReader.New(pkgopenapi.NewReaderOptions(options...))
	}
	if o.registry == nil {
		o.registry = render.MustNewRegistry(
			typescript.New(typescript.WithLogger(o.logger)),
			yup.New(),
		)
	}
	if len(o.pipeline) == 0 {
		o.pipeline = append([]string(nil), DefaultPipeline...)
	}
	if o.layout == nil {
		l, err := layout.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default layout: %w", err)
		} else {
			o.layout = l
		}
	}

	o.defaultsApplied = true
}
