package reader

import (
	"encoding/json"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-typegen/pkg/model"
)

// decodeSchema decodes a schema node without resolving references. raw is the
// schema as a plain map, used for presence checks kin-openapi cannot express.
func decodeSchema(node *yaml.Node) (*openapi3.SchemaRef, map[string]any, error) {
	if !isMapping(node) {
		return nil, nil, errNotMapping
	}
	data, raw, err := toJSON(node)
	if err != nil {
		return nil, nil, err
	}
	ref := &openapi3.SchemaRef{}
	if err := json.Unmarshal(data, ref); err != nil {
		return nil, nil, err
	}
	return ref, raw, nil
}

// splitTypes returns the declared types with "null" removed, and whether
// "null" was present.
func splitTypes(types *openapi3.Types) ([]string, bool) {
	if types == nil {
		return nil, false
	}
	var (
		out      []string
		nullable bool
	)
	for _, value := range types.Slice() {
		if strings.EqualFold(value, "null") {
			nullable = true
			continue
		}
		out = append(out, value)
	}
	return out, nullable
}

func schemaMetadata(value *openapi3.Schema, raw map[string]any, nullable bool) model.Metadata {
	meta := model.Metadata{
		Title:       value.Title,
		Description: value.Description,
		Nullable:    value.Nullable || nullable,
		Extensions:  extractExtensions(value.Extensions),
		Raw:         raw,
	}
	if len(value.Required) > 0 {
		meta.Required = append([]string(nil), value.Required...)
	}
	return meta
}

func propertyMetadata(value *openapi3.Schema, raw map[string]any, nullable bool) model.PropertyMetadata {
	meta := model.PropertyMetadata{
		Description: value.Description,
		Format:      value.Format,
		Nullable:    value.Nullable || nullable,
		Minimum:     cloneFloat(value.Min),
		Maximum:     cloneFloat(value.Max),
		MaxLength:   cloneUint(value.MaxLength),
		Pattern:     value.Pattern,
		Default:     value.Default,
		Extensions:  extractExtensions(value.Extensions),
		Raw:         raw,
	}
	// minLength is not a pointer in kin-openapi, so an explicit 0 is only
	// visible in the raw map.
	if _, ok := raw["minLength"]; ok || value.MinLength != 0 {
		minLength := value.MinLength
		meta.MinLength = &minLength
	}
	if len(value.Enum) > 0 {
		meta.Enum = append([]any(nil), value.Enum...)
	}
	return meta
}

func extractExtensions(raw map[string]any) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	result := make(map[string]any, len(raw))
	for key, value := range raw {
		if strings.HasPrefix(key, "x-") {
			result[key] = value
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func cloneFloat(value *float64) *float64 {
	if value == nil {
		return nil
	}
	clone := *value
	return &clone
}

func cloneUint(value *uint64) *uint64 {
	if value == nil {
		return nil
	}
	clone := *value
	return &clone
}
