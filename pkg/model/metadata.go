package model

// Metadata carries schema-level annotations. Renderers may ignore it; it is
// retained so later backends can use it without touching the reader.
type Metadata struct {
	Title       string
	Description string
	Nullable    bool
	Required    []string
	Extensions  map[string]any
	Raw         map[string]any
}

// PropertyMetadata is the superset of constraint data attached to a property
// in the source schema. Pointer fields distinguish "absent" from zero.
type PropertyMetadata struct {
	Description string
	Format      string
	Nullable    bool
	Minimum     *float64
	Maximum     *float64
	MinLength   *uint64
	MaxLength   *uint64
	Pattern     string
	Enum        []any
	Default     any
	Extensions  map[string]any
	Raw         map[string]any
}

// StringEnum returns the string members of Enum in declaration order. Non
// string members (null, numbers) are dropped.
func (m PropertyMetadata) StringEnum() []string {
	if len(m.Enum) == 0 {
		return nil
	}
	values := make([]string, 0, len(m.Enum))
	for _, item := range m.Enum {
		if str, ok := item.(string); ok {
			values = append(values, str)
		}
	}
	if len(values) == 0 {
		return nil
	}
	return values
}

// IsRequired reports whether name appears in the required list.
func (m Metadata) IsRequired(name string) bool {
	for _, item := range m.Required {
		if item == name {
			return true
		}
	}
	return false
}
