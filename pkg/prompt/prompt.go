// Package prompt asks the user questions during generation: whether an
// existing output may be replaced, and which projects to run.
package prompt

import (
	"context"
	"fmt"
)

// Confirmer asks before replacing an existing models.ts.
type Confirmer struct {
	driver Driver
}

// NewConfirmer wraps driver; a nil driver uses survey.
func NewConfirmer(driver Driver) *Confirmer {
	if driver == nil {
		driver = NewSurveyDriver()
	}
	return &Confirmer{driver: driver}
}

// ConfirmOverwrite asks whether path, produced by project, may be replaced.
// The default answer is no.
func (c *Confirmer) ConfirmOverwrite(ctx context.Context, project, path string) (bool, error) {
	return c.driver.Confirm(ctx, ConfirmConfig{
		Message: fmt.Sprintf("%s: %s already exists. Overwrite?", project, path),
		Help:    "set output.overwrite to true in the config to skip this question",
	})
}

// SelectProjects lets the user pick a subset of names. Every project starts
// selected.
func SelectProjects(ctx context.Context, driver Driver, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}
	if driver == nil {
		driver = NewSurveyDriver()
	}
	defaults := make([]int, len(names))
	for i := range names {
		defaults[i] = i
	}
	picked, err := driver.MultiSelect(ctx, SelectConfig{
		Message:  "Projects to generate",
		Options:  names,
		Defaults: defaults,
	})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(picked))
	for _, idx := range picked {
		if idx >= 0 && idx < len(names) {
			out = append(out, names[idx])
		}
	}
	return out, nil
}
