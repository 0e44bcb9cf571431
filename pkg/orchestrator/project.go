package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-typegen/pkg/config"
	pkgopenapi "github.com/goliatone/go-typegen/pkg/openapi"
)

// OutputFile is the name of the file written into each project's output
// directory.
const OutputFile = "models.ts"

// ProjectResult reports the outcome of one project.
type ProjectResult struct {
	Name       string
	OutputPath string
	Models     int
	Skipped    []pkgopenapi.Skip
	// Written is false when the existing file already had the same content.
	Written bool
}

// Summary aggregates a Run.
type Summary struct {
	Projects []ProjectResult
	Failed   []string
}

// GenerateProject builds the project's input and writes
// <output.target>/models.ts. Nothing is written when any step fails.
func (o *Orchestrator) GenerateProject(ctx context.Context, name string, project config.Project) (ProjectResult, error) {
	result := ProjectResult{
		Name:       name,
		OutputPath: filepath.Join(project.Output.Target, OutputFile),
	}

	source, err := sourceFor(project.Input)
	if err != nil {
		return result, fmt.Errorf("orchestrator: project %q: %w", name, err)
	}

	out, err := o.Build(ctx, Request{Source: source})
	if err != nil {
		return result, fmt.Errorf("orchestrator: project %q: %w", name, err)
	}
	result.Models = len(out.Models)
	result.Skipped = out.Skipped

	written, err := o.writeOutput(ctx, name, result.OutputPath, out.Content, project.Output.ShouldOverwrite())
	if err != nil {
		return result, fmt.Errorf("orchestrator: project %q: %w", name, err)
	}
	result.Written = written
	return result, nil
}

// Run generates every project of cfg in name order. A failing project is
// logged and reported but does not stop its siblings; the returned error joins
// every project failure.
func (o *Orchestrator) Run(ctx context.Context, cfg config.Config) (Summary, error) {
	var (
		summary Summary
		errs    []error
	)
	for _, name := range cfg.ProjectNames() {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		o.logger.Info().Str("project", name).Msg("starting generation")
		result, err := o.GenerateProject(ctx, name, cfg.Projects[name])
		if err != nil {
			o.logger.Error().Err(err).Str("project", name).Msg("generation failed")
			summary.Failed = append(summary.Failed, name)
			errs = append(errs, err)
			continue
		}

		o.logger.Info().
			Str("project", name).
			Str("output", result.OutputPath).
			Int("models", result.Models).
			Int("skipped", len(result.Skipped)).
			Bool("written", result.Written).
			Msg("generation finished")
		summary.Projects = append(summary.Projects, result)
	}
	return summary, errors.Join(errs...)
}

func sourceFor(input config.Input) (pkgopenapi.Source, error) {
	if input.FromURL {
		return pkgopenapi.ParseURLSource(input.Target)
	}
	if input.Target == "" {
		return nil, errors.New("input target is required")
	}
	return pkgopenapi.SourceFromFile(input.Target), nil
}

// writeOutput replaces path with data via a temporary file and rename. It
// returns false when the file already holds data.
func (o *Orchestrator) writeOutput(ctx context.Context, project, path string, data []byte, overwrite bool) (bool, error) {
	existing, readErr := os.ReadFile(path)
	exists := readErr == nil
	if readErr != nil && !errors.Is(readErr, os.ErrNotExist) {
		return false, fmt.Errorf("read existing output: %w", readErr)
	}
	if exists && bytes.Equal(existing, data) {
		return false, nil
	}
	if o.check {
		return false, fmt.Errorf("%s: %w", path, ErrOutputStale)
	}

	if exists && !overwrite {
		if o.confirmer == nil {
			return false, fmt.Errorf("%s: %w", path, ErrOutputExists)
		}
		ok, err := o.confirmer.ConfirmOverwrite(ctx, project, path)
		if err != nil {
			return false, fmt.Errorf("confirm overwrite: %w", err)
		}
		if !ok {
			return false, fmt.Errorf("%s: %w", path, ErrOverwriteDeclined)
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+OutputFile+".*.tmp")
	if err != nil {
		return false, fmt.Errorf("create tmp: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return false, fmt.Errorf("write tmp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return false, fmt.Errorf("close tmp: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return false, fmt.Errorf("chmod tmp: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return false, fmt.Errorf("rename tmp: %w", err)
	}
	return true, nil
}
