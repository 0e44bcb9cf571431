package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	envprovider "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables that override the log section.
const EnvPrefix = "TYPEGEN_"

// Option customises Load.
type Option func(*loadOptions)

type loadOptions struct {
	path    string
	data    []byte
	environ func() []string
}

// WithFile reads the configuration from path. JSON is parsed as YAML.
func WithFile(path string) Option {
	return func(opts *loadOptions) {
		opts.path = path
	}
}

// WithBytes reads the configuration from an in-memory payload instead of a
// file.
func WithBytes(data []byte) Option {
	return func(opts *loadOptions) {
		opts.data = append([]byte(nil), data...)
	}
}

// WithEnviron replaces os.Environ as the source of environment overrides.
func WithEnviron(environ func() []string) Option {
	return func(opts *loadOptions) {
		opts.environ = environ
	}
}

// Load builds a validated Config: defaults, then the file (or bytes), then
// TYPEGEN_LOG_LEVEL / TYPEGEN_LOG_PRETTY.
func Load(options ...Option) (Config, error) {
	opts := loadOptions{path: DefaultFile, environ: os.Environ}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&opts)
	}

	k := koanf.New(".")

	if err := loadDefaults(k); err != nil {
		return Config{}, fmt.Errorf("config: load defaults: %w", err)
	}

	data := opts.data
	if data == nil {
		if _, err := os.Stat(opts.path); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", opts.path, err)
		}
		raw, err := file.Provider(opts.path).ReadBytes()
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", opts.path, err)
		}
		data = raw
	}
	parser := koanf.Parser(yaml.Parser())
	if json.Valid(data) {
		parser = jsonParser{}
	}
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}

	if err := k.Load(envprovider.Provider(".", envprovider.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: transformEnv,
		EnvironFunc:   opts.environ,
	}), nil); err != nil {
		return Config{}, fmt.Errorf("config: load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadDefaults(k *koanf.Koanf) error {
	defaults := map[string]any{
		"log.level":  "info",
		"log.pretty": true,
	}
	return k.Load(confmap.Provider(defaults, "."), nil)
}

// transformEnv maps TYPEGEN_LOG_LEVEL to log.level and so on. Only the log
// section can be overridden; other variables are ignored.
func transformEnv(key, value string) (string, any) {
	path := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), "_", ".")
	switch path {
	case "log.level":
		return path, value
	case "log.pretty":
		enabled, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return "", nil
		}
		return path, enabled
	default:
		return "", nil
	}
}

// jsonParser decodes JSON config files. YAML is not a strict superset of
// JSON: tabs, `\/` and surrogate pair escapes fail in the YAML scanner.
type jsonParser struct{}

func (jsonParser) Unmarshal(data []byte) (map[string]any, error) {
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (jsonParser) Marshal(values map[string]any) ([]byte, error) {
	return json.Marshal(values)
}
