package model

import "strings"

// PropertyType is the closed set of property kinds renderers understand.
type PropertyType int

const (
	// TypeUnsupported covers every schema type outside the closed set
	// (integer, object, array, null, multi-type declarations).
	TypeUnsupported PropertyType = iota
	TypeNumber
	TypeString
	TypeBoolean
)

// String returns the OpenAPI spelling for supported kinds and "unsupported"
// otherwise.
func (t PropertyType) String() string {
	switch t {
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeBoolean:
		return "boolean"
	default:
		return "unsupported"
	}
}

// Supported reports whether t is one of the concrete kinds.
func (t PropertyType) Supported() bool {
	return t == TypeNumber || t == TypeString || t == TypeBoolean
}

// TypeOptions tweaks ParsePropertyType.
type TypeOptions struct {
	// IntegerAsNumber maps "integer" onto TypeNumber instead of
	// TypeUnsupported.
	IntegerAsNumber bool
}

// ParsePropertyType converts an OpenAPI type name into a PropertyType.
// Unknown names collapse to TypeUnsupported; it never fails.
func ParsePropertyType(name string, opts TypeOptions) PropertyType {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "number":
		return TypeNumber
	case "string":
		return TypeString
	case "boolean":
		return TypeBoolean
	case "integer":
		if opts.IntegerAsNumber {
			return TypeNumber
		}
		return TypeUnsupported
	default:
		return TypeUnsupported
	}
}
