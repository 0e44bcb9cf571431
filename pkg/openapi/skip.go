package openapi

import "fmt"

// SkipReason explains why the reader left a schema or property out.
type SkipReason string

const (
	// SkipReference marks a $ref entry; references are not resolved.
	SkipReference SkipReason = "reference"
	// SkipNotObject marks a named schema whose root type is not object.
	SkipNotObject SkipReason = "not_object"
	// SkipUntyped marks a property without a declared type (composition
	// keywords or an empty schema).
	SkipUntyped SkipReason = "untyped"
	// SkipUnnamed marks a named schema whose key is blank.
	SkipUnnamed SkipReason = "unnamed"
)

// Skip records one omission. Property is empty for schema-level skips.
type Skip struct {
	Schema   string     `json:"schema"`
	Property string     `json:"property,omitempty"`
	Reason   SkipReason `json:"reason"`
	Ref      string     `json:"ref,omitempty"`
}

func (s Skip) String() string {
	target := s.Schema
	if s.Property != "" {
		target += "." + s.Property
	}
	if s.Ref != "" {
		return fmt.Sprintf("%s: %s (%s)", target, s.Reason, s.Ref)
	}
	return fmt.Sprintf("%s: %s", target, s.Reason)
}
