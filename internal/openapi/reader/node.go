package reader

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// maxDepth bounds recursion through aliases that point back at an ancestor.
const maxDepth = 512

var errNotMapping = errors.New("node is not a mapping")

// entry is one key/value pair of a YAML mapping.
type entry struct {
	key   string
	value *yaml.Node
}

// parseDocument parses raw (JSON or YAML) into the root mapping node.
func parseDocument(raw []byte) (*yaml.Node, error) {
	var root *yaml.Node
	if json.Valid(raw) {
		node, err := decodeJSON(raw)
		if err != nil {
			return nil, err
		}
		root = node
	} else {
		var doc yaml.Node
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		root = resolve(&doc)
	}
	if root == nil || root.Kind != yaml.MappingNode {
		return nil, errors.New("document root is not a mapping")
	}
	return root, nil
}

// resolve unwraps document and alias nodes.
func resolve(node *yaml.Node) *yaml.Node {
	for depth := 0; node != nil && depth < maxDepth; depth++ {
		switch node.Kind {
		case yaml.DocumentNode:
			if len(node.Content) == 0 {
				return nil
			}
			node = node.Content[0]
		case yaml.AliasNode:
			node = node.Alias
		default:
			return node
		}
	}
	return nil
}

// entries lists the pairs of a mapping in source order. A repeated key keeps
// its first position and takes the last value.
func entries(node *yaml.Node) []entry {
	node = resolve(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	out := make([]entry, 0, len(node.Content)/2)
	index := make(map[string]int, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := resolve(node.Content[i])
		if key == nil {
			continue
		}
		item := entry{key: key.Value, value: node.Content[i+1]}
		if pos, ok := index[item.key]; ok {
			out[pos].value = item.value
			continue
		}
		index[item.key] = len(out)
		out = append(out, item)
	}
	return out
}

// lookup returns the value stored under key in a mapping node.
func lookup(node *yaml.Node, key string) *yaml.Node {
	var found *yaml.Node
	for _, item := range entries(node) {
		if item.key == key {
			found = item.value
		}
	}
	return resolve(found)
}

func isMapping(node *yaml.Node) bool {
	node = resolve(node)
	return node != nil && node.Kind == yaml.MappingNode
}

// generic converts a node into plain Go values suitable for encoding/json.
// Mapping keys are always strings.
func generic(node *yaml.Node) (any, error) {
	return genericAt(node, 0)
}

func genericAt(node *yaml.Node, depth int) (any, error) {
	if depth > maxDepth {
		return nil, errors.New("document nesting too deep")
	}
	node = resolve(node)
	if node == nil {
		return nil, nil
	}

	switch node.Kind {
	case yaml.MappingNode:
		items := entries(node)
		out := make(map[string]any, len(items))
		for _, item := range items {
			value, err := genericAt(item.value, depth+1)
			if err != nil {
				return nil, err
			}
			out[item.key] = value
		}
		return out, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			value, err := genericAt(child, depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, value)
		}
		return out, nil
	case yaml.ScalarNode:
		var value any
		if err := node.Decode(&value); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return value, nil
	default:
		return nil, fmt.Errorf("line %d: unsupported node kind", node.Line)
	}
}

// toJSON re-encodes a node as JSON so kin-openapi types can decode it.
func toJSON(node *yaml.Node) ([]byte, map[string]any, error) {
	value, err := generic(node)
	if err != nil {
		return nil, nil, err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return nil, nil, err
	}
	mapped, _ := value.(map[string]any)
	return data, mapped, nil
}
