package model_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-typegen/pkg/model"
)

func TestPropertiesPreserveInsertionOrder(t *testing.T) {
	var props model.Properties
	props.Set(model.ModelProperty{Name: "zeta", Type: model.TypeString})
	props.Set(model.ModelProperty{Name: "alpha", Type: model.TypeNumber})
	props.Set(model.ModelProperty{Name: "mid", Type: model.TypeBoolean})

	want := []string{"zeta", "alpha", "mid"}
	if diff := cmp.Diff(want, props.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestPropertiesLastWriteWinsInPlace(t *testing.T) {
	var props model.Properties
	props.Set(model.ModelProperty{Name: "a", Type: model.TypeString})
	props.Set(model.ModelProperty{Name: "b", Type: model.TypeString})
	props.Set(model.ModelProperty{Name: "a", Type: model.TypeBoolean})

	if props.Len() != 2 {
		t.Fatalf("expected 2 properties, got %d", props.Len())
	}
	if diff := cmp.Diff([]string{"a", "b"}, props.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	got, ok := props.Get("a")
	if !ok {
		t.Fatalf("expected property a")
	}
	if got.Type != model.TypeBoolean {
		t.Fatalf("expected last write to win, got %s", got.Type)
	}
}

func TestPropertiesValuesIsCopy(t *testing.T) {
	var props model.Properties
	props.Set(model.ModelProperty{Name: "a", Type: model.TypeString})

	values := props.Values()
	values[0].Name = "mutated"

	if got, _ := props.Get("a"); got.Name != "a" {
		t.Fatalf("Values leaked internal storage")
	}
}

func TestPropertiesEachStopsEarly(t *testing.T) {
	m := model.MustNew("Foo", model.Metadata{},
		model.ModelProperty{Name: "a"},
		model.ModelProperty{Name: "b"},
		model.ModelProperty{Name: "c"},
	)

	var seen []string
	m.Properties.Each(func(p model.ModelProperty) bool {
		seen = append(seen, p.Name)
		return p.Name != "b"
	})
	if diff := cmp.Diff([]string{"a", "b"}, seen); diff != "" {
		t.Fatalf("Each mismatch (-want +got):\n%s", diff)
	}
}

func TestNewRejectsEmptyName(t *testing.T) {
	if _, err := model.New("  ", model.Metadata{}); !errors.Is(err, model.ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
}

func TestParsePropertyTypeIsTotal(t *testing.T) {
	tests := []struct {
		in   string
		opts model.TypeOptions
		want model.PropertyType
	}{
		{"number", model.TypeOptions{}, model.TypeNumber},
		{"string", model.TypeOptions{}, model.TypeString},
		{"boolean", model.TypeOptions{}, model.TypeBoolean},
		{"integer", model.TypeOptions{}, model.TypeUnsupported},
		{"integer", model.TypeOptions{IntegerAsNumber: true}, model.TypeNumber},
		{"object", model.TypeOptions{}, model.TypeUnsupported},
		{"array", model.TypeOptions{}, model.TypeUnsupported},
		{"", model.TypeOptions{}, model.TypeUnsupported},
		{"  String ", model.TypeOptions{}, model.TypeString},
	}
	for _, tt := range tests {
		if got := model.ParsePropertyType(tt.in, tt.opts); got != tt.want {
			t.Fatalf("ParsePropertyType(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestStringEnumDropsNonStrings(t *testing.T) {
	meta := model.PropertyMetadata{Enum: []any{"a", nil, 3.0, "b"}}
	if diff := cmp.Diff([]string{"a", "b"}, meta.StringEnum()); diff != "" {
		t.Fatalf("enum mismatch (-want +got):\n%s", diff)
	}
	if got := (model.PropertyMetadata{Enum: []any{1.0}}).StringEnum(); got != nil {
		t.Fatalf("expected nil enum, got %v", got)
	}
}
