package model

import (
	"errors"
	"strings"
)

// ErrEmptyName is returned when a Model is constructed without a name.
var ErrEmptyName = errors.New("model: name is required")

// Model is one named object schema.
type Model struct {
	Name       string
	Metadata   Metadata
	Properties Properties
}

// ModelProperty is a single property of a Model.
type ModelProperty struct {
	Name     string
	Metadata PropertyMetadata
	Type     PropertyType
	// Required mirrors the parent schema's required list. Renderers only
	// consult it when asked to honour optional properties.
	Required bool
}

// New builds a Model from props, preserving their order. Later duplicates
// overwrite earlier ones in place.
func New(name string, meta Metadata, props ...ModelProperty) (Model, error) {
	if strings.TrimSpace(name) == "" {
		return Model{}, ErrEmptyName
	}
	m := Model{Name: name, Metadata: meta}
	for _, prop := range props {
		m.Properties.Set(prop)
	}
	return m, nil
}

// MustNew panics when New fails. Useful for fixtures.
func MustNew(name string, meta Metadata, props ...ModelProperty) Model {
	m, err := New(name, meta, props...)
	if err != nil {
		panic(err)
	}
	return m
}
