package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-typegen/internal/logging"
	"github.com/goliatone/go-typegen/pkg/config"
	pkgopenapi "github.com/goliatone/go-typegen/pkg/openapi"
	"github.com/goliatone/go-typegen/pkg/orchestrator"
	"github.com/goliatone/go-typegen/pkg/prompt"
	"github.com/goliatone/go-typegen/pkg/render"
	"github.com/goliatone/go-typegen/pkg/renderers/typescript"
	"github.com/goliatone/go-typegen/pkg/renderers/yup"
)

// adHocProject names the project built from --schema/--output.
const adHocProject = "default"

type GenerateCmd struct {
	Config          string   `help:"Config file (JSON or YAML)." short:"c" default:"typegen.config.json" type:"path"`
	Schema          string   `help:"Generate a single project from this OpenAPI document instead of the config file."`
	Output          string   `help:"Output directory used with --schema." type:"path"`
	Projects        []string `help:"Only generate the named projects." short:"p"`
	Interactive     bool     `help:"Pick projects and confirm overwrites interactively." short:"i"`
	Check           bool     `help:"Fail when an output file is missing or out of date instead of writing it."`
	HonorRequired   bool     `help:"Mark properties missing from the schema's required list as optional." name:"honor-required"`
	IntegerAsNumber bool     `help:"Map integer properties onto number." name:"integer-as-number"`
	Comments        bool     `help:"Emit JSDoc comments from schema descriptions."`
	TypesOnly       bool     `help:"Only emit TypeScript interfaces." name:"types-only"`
	LogLevel        string   `help:"Log level (trace, debug, info, warn, error)." name:"log-level"`
	Pretty          bool     `help:"Human friendly console logs."`
	JSONLogs        bool     `help:"Emit logs as JSON lines." name:"json-logs"`
}

func (c *GenerateCmd) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Pretty, os.Stderr)
	logger.Info().Str("version", Version()).Msg("welcome to typegen")

	if len(c.Projects) > 0 {
		cfg = cfg.Select(c.Projects...)
		if len(cfg.Projects) == 0 {
			return fmt.Errorf("no configured project matches %s", strings.Join(c.Projects, ", "))
		}
	}

	names := cfg.ProjectNames()
	logger.Info().Strs("projects", names).Msgf("Found %d target projects", len(names))

	var driver prompt.Driver
	if c.Interactive {
		driver = prompt.NewSurveyDriver()
		picked, err := prompt.SelectProjects(ctx, driver, names)
		if err != nil {
			return err
		}
		if len(picked) == 0 {
			logger.Warn().Msg("no project selected")
			return nil
		}
		cfg = cfg.Select(picked...)
	}

	orch := orchestrator.New(c.orchestratorOptions(logger, driver)...)
	summary, err := orch.Run(ctx, cfg)
	if err != nil {
		logger.Error().Strs("failed", summary.Failed).Msg("generation finished with errors")
		return errors.New("generation failed")
	}

	logger.Info().Int("projects", len(summary.Projects)).Msg("generation complete")
	return nil
}

func (c *GenerateCmd) loadConfig() (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if c.Schema != "" {
		cfg, err = c.adHocConfig()
	} else {
		cfg, err = config.Load(config.WithFile(c.Config))
	}
	if err != nil {
		return config.Config{}, err
	}

	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}
	if c.Pretty {
		cfg.Log.Pretty = true
	}
	if c.JSONLogs {
		cfg.Log.Pretty = false
	}
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func (c *GenerateCmd) adHocConfig() (config.Config, error) {
	if c.Output == "" {
		return config.Config{}, errors.New("--output is required with --schema")
	}
	src, err := pkgopenapi.SourceFromString(c.Schema)
	if err != nil {
		return config.Config{}, err
	}

	cfg := config.Config{
		Log: config.LogConfig{Level: "info", Pretty: true},
		Projects: map[string]config.Project{
			adHocProject: {
				Output: config.Output{Target: c.Output},
				Input: config.Input{
					Target:  c.Schema,
					FromURL: src.Kind() == pkgopenapi.SourceKindURL,
				},
			},
		},
	}
	return cfg, nil
}

func (c *GenerateCmd) orchestratorOptions(logger zerolog.Logger, driver prompt.Driver) []orchestrator.Option {
	registry := render.MustNewRegistry(
		typescript.New(
			typescript.WithLogger(logger),
			typescript.WithComments(c.Comments),
		),
		yup.New(),
	)

	options := []orchestrator.Option{
		orchestrator.WithLogger(logger),
		orchestrator.WithRegistry(registry),
		orchestrator.WithHonorRequired(c.HonorRequired),
		orchestrator.WithCheck(c.Check),
	}
	if c.IntegerAsNumber {
		options = append(options, orchestrator.WithReaderOptions(
			pkgopenapi.WithIntegerAsNumber(true),
		))
	}
	if c.TypesOnly {
		options = append(options, orchestrator.WithPipeline(typescript.Name))
	}
	if driver != nil {
		options = append(options, orchestrator.WithConfirmer(prompt.NewConfirmer(driver)))
	}
	return options
}
