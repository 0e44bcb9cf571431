package reader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-typegen/pkg/model"
	pkgopenapi "github.com/goliatone/go-typegen/pkg/openapi"
)

// Reader implements pkgopenapi.Reader using yaml.v3 for ordering and
// kin-openapi for typed decoding.
type Reader struct {
	options pkgopenapi.ReaderOptions
}

// Ensure the implementation satisfies the public interface.
var _ pkgopenapi.Reader = (*Reader)(nil)

// New constructs a Reader with the given options.
func New(options pkgopenapi.ReaderOptions) pkgopenapi.Reader {
	return &Reader{options: options}
}

// Models extracts every object schema under components/schemas, in document
// order. References are reported in Skipped, never resolved.
func (r *Reader) Models(ctx context.Context, doc pkgopenapi.Document) (pkgopenapi.ReadResult, error) {
	if err := ctx.Err(); err != nil {
		return pkgopenapi.ReadResult{}, err
	}
	location := doc.Location()
	raw := doc.Raw()
	if len(raw) == 0 {
		return pkgopenapi.ReadResult{}, malformed(location, "document payload is empty", nil)
	}

	root, err := parseDocument(raw)
	if err != nil {
		return pkgopenapi.ReadResult{}, malformed(location, "parse", err)
	}
	if err := checkDocument(root); err != nil {
		return pkgopenapi.ReadResult{}, malformed(location, "decode", err)
	}

	components := lookup(root, "components")
	schemas := lookup(components, "schemas")
	if !isMapping(schemas) {
		return pkgopenapi.ReadResult{}, &pkgopenapi.DocumentError{
			Location: location,
			Kind:     pkgopenapi.ErrMissingComponents,
		}
	}

	var result pkgopenapi.ReadResult
	for _, item := range entries(schemas) {
		if err := ctx.Err(); err != nil {
			return pkgopenapi.ReadResult{}, err
		}
		m, skips, ok, err := r.readSchema(item)
		if err != nil {
			return pkgopenapi.ReadResult{}, malformed(location, fmt.Sprintf("schema %q", item.key), err)
		}
		result.Skipped = append(result.Skipped, skips...)
		if ok {
			result.Models = append(result.Models, m)
		}
	}
	return result, nil
}

// checkDocument runs the typed kin-openapi decode over the whole document.
func checkDocument(root *yaml.Node) error {
	data, _, err := toJSON(root)
	if err != nil {
		return err
	}
	var header openapi3.T
	if err := json.Unmarshal(data, &header); err != nil {
		return err
	}
	if header.OpenAPI == "" {
		return errors.New("missing openapi version")
	}
	return nil
}

func (r *Reader) readSchema(item entry) (model.Model, []pkgopenapi.Skip, bool, error) {
	if strings.TrimSpace(item.key) == "" {
		return model.Model{}, []pkgopenapi.Skip{r.skip(item.key, "", pkgopenapi.SkipUnnamed, "")}, false, nil
	}
	ref, raw, err := decodeSchema(item.value)
	if errors.Is(err, errNotMapping) {
		return model.Model{}, []pkgopenapi.Skip{r.skip(item.key, "", pkgopenapi.SkipNotObject, "")}, false, nil
	}
	if err != nil {
		return model.Model{}, nil, false, err
	}
	if ref.Ref != "" {
		return model.Model{}, []pkgopenapi.Skip{r.skip(item.key, "", pkgopenapi.SkipReference, ref.Ref)}, false, nil
	}
	value := ref.Value
	if value == nil {
		return model.Model{}, []pkgopenapi.Skip{r.skip(item.key, "", pkgopenapi.SkipNotObject, "")}, false, nil
	}
	types, nullable := splitTypes(value.Type)
	if len(types) != 1 || types[0] != openapi3.TypeObject {
		return model.Model{}, []pkgopenapi.Skip{r.skip(item.key, "", pkgopenapi.SkipNotObject, "")}, false, nil
	}

	meta := schemaMetadata(value, raw, nullable)

	var (
		props []model.ModelProperty
		skips []pkgopenapi.Skip
	)
	for _, prop := range entries(lookup(item.value, "properties")) {
		built, skip, ok, err := r.readProperty(item.key, meta, prop)
		if err != nil {
			return model.Model{}, nil, false, fmt.Errorf("property %q: %w", prop.key, err)
		}
		if !ok {
			skips = append(skips, skip)
			continue
		}
		props = append(props, built)
	}

	m, err := model.New(item.key, meta, props...)
	if err != nil {
		return model.Model{}, nil, false, err
	}
	return m, skips, true, nil
}

func (r *Reader) readProperty(schema string, parent model.Metadata, item entry) (model.ModelProperty, pkgopenapi.Skip, bool, error) {
	ref, raw, err := decodeSchema(item.value)
	if errors.Is(err, errNotMapping) {
		return model.ModelProperty{}, r.skip(schema, item.key, pkgopenapi.SkipUntyped, ""), false, nil
	}
	if err != nil {
		return model.ModelProperty{}, pkgopenapi.Skip{}, false, err
	}
	if ref.Ref != "" {
		return model.ModelProperty{}, r.skip(schema, item.key, pkgopenapi.SkipReference, ref.Ref), false, nil
	}
	value := ref.Value
	if value == nil {
		return model.ModelProperty{}, r.skip(schema, item.key, pkgopenapi.SkipUntyped, ""), false, nil
	}
	types, nullable := splitTypes(value.Type)
	if len(types) == 0 {
		return model.ModelProperty{}, r.skip(schema, item.key, pkgopenapi.SkipUntyped, ""), false, nil
	}

	typ := model.TypeUnsupported
	if len(types) == 1 {
		typ = model.ParsePropertyType(types[0], model.TypeOptions{IntegerAsNumber: r.options.IntegerAsNumber})
	}

	return model.ModelProperty{
		Name:     item.key,
		Metadata: propertyMetadata(value, raw, nullable),
		Type:     typ,
		Required: parent.IsRequired(item.key),
	}, pkgopenapi.Skip{}, true, nil
}

func (r *Reader) skip(schema, property string, reason pkgopenapi.SkipReason, ref string) pkgopenapi.Skip {
	event := r.options.Logger.Warn().
		Str("schema", schema).
		Str("reason", string(reason))
	if property != "" {
		event = event.Str("property", property)
	}
	if ref != "" {
		event = event.Str("ref", ref)
	}
	switch {
	case reason == pkgopenapi.SkipReference:
		event.Msg("references are not supported, skipping")
	case reason == pkgopenapi.SkipUnnamed:
		event.Msg("schema name is blank, skipping")
	case property == "":
		event.Msg("schema root is not an object, skipping")
	default:
		event.Msg("property has no primitive type, skipping")
	}
	return pkgopenapi.Skip{Schema: schema, Property: property, Reason: reason, Ref: ref}
}

func malformed(location, message string, cause error) error {
	return &pkgopenapi.DocumentError{
		Location: location,
		Kind:     pkgopenapi.ErrMalformedDocument,
		Message:  message,
		Cause:    cause,
	}
}
