package config

import "sort"

// DefaultFile is the config file looked up when none is given.
const DefaultFile = "typegen.config.json"

// Config is the validated, immutable configuration of a run.
type Config struct {
	Log      LogConfig          `koanf:"log"`
	Projects map[string]Project `koanf:"projects" validate:"dive,keys,required,excludesall=.,endkeys"`
}

// LogConfig controls diagnostics output.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error disabled"`
	Pretty bool   `koanf:"pretty"`
}

// Project pairs one input document with one output directory.
type Project struct {
	Output Output `koanf:"output"`
	Input  Input  `koanf:"input"`
}

// Output describes where models.ts is written.
type Output struct {
	Target string `koanf:"target" validate:"required"`
	// Overwrite defaults to true when omitted.
	Overwrite *bool `koanf:"overwrite"`
}

// Input describes where the OpenAPI document is read from.
type Input struct {
	Target  string `koanf:"target" validate:"required"`
	FromURL bool   `koanf:"from_url"`
}

// ShouldOverwrite reports whether an existing output file may be replaced
// without asking.
func (o Output) ShouldOverwrite() bool {
	return o.Overwrite == nil || *o.Overwrite
}

// ProjectNames returns the configured project names in sorted order.
func (c Config) ProjectNames() []string {
	names := make([]string, 0, len(c.Projects))
	for name := range c.Projects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select returns a copy of c restricted to names. Unknown names are ignored.
func (c Config) Select(names ...string) Config {
	out := Config{Log: c.Log, Projects: make(map[string]Project, len(names))}
	for _, name := range names {
		if project, ok := c.Projects[name]; ok {
			out.Projects[name] = project
		}
	}
	return out
}
