// Package config loads the generator configuration: a set of named projects,
// each pairing an input OpenAPI document with an output directory.
//
// Sources are layered with koanf, lowest priority first: built-in defaults,
// the config file (JSON or YAML), then TYPEGEN_* environment variables for
// the log section. Project names are map keys and must not contain ".",
// which koanf uses as its path delimiter. Relative paths are resolved against
// the working directory of the process.
package config
