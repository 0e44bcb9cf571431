package config

import (
	"errors"
	"strings"
)

// ErrNoProjects indicates a configuration without any project entry.
var ErrNoProjects = errors.New("config: no projects configured")

// ConfigError describes one invalid configuration field.
//
//nolint:revive // ConfigError reads better than Error at call sites.
type ConfigError struct {
	Field   string // koanf path, e.g. "projects[web].output.target"
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	parts := []string{"config:"}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	return strings.Join(parts, " ")
}
