package yup_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-typegen/pkg/model"
	"github.com/goliatone/go-typegen/pkg/render"
	"github.com/goliatone/go-typegen/pkg/renderers/yup"
)

func float(v float64) *float64 { return &v }

func length(v uint64) *uint64 { return &v }

func TestDerive(t *testing.T) {
	cases := []struct {
		name string
		prop model.ModelProperty
		want yup.PropRules
	}{
		{
			name: "number with bounds",
			prop: model.ModelProperty{Name: "weight", Type: model.TypeNumber, Metadata: model.PropertyMetadata{Minimum: float(10.4), Maximum: float(40)}},
			want: yup.PropRules{Tag: yup.TagNumber, Rules: []yup.Rule{yup.Minimum(10.4), yup.Maximum(40)}},
		},
		{
			name: "number with only maximum",
			prop: model.ModelProperty{Name: "weight", Type: model.TypeNumber, Metadata: model.PropertyMetadata{Maximum: float(5)}},
			want: yup.PropRules{Tag: yup.TagNumber, Rules: []yup.Rule{yup.Maximum(5)}},
		},
		{
			name: "string in rule order",
			prop: model.ModelProperty{Name: "code", Type: model.TypeString, Metadata: model.PropertyMetadata{
				Pattern:   "^[A-Z]+$",
				MaxLength: length(128),
				MinLength: length(8),
				Enum:      []any{"ABCDEFGH", nil, 3},
			}},
			want: yup.PropRules{Tag: yup.TagString, Rules: []yup.Rule{
				yup.MinLength(8), yup.MaxLength(128), yup.Pattern("^[A-Z]+$"), yup.OneOf("ABCDEFGH"),
			}},
		},
		{
			name: "string length constraints ignored on numbers",
			prop: model.ModelProperty{Name: "n", Type: model.TypeNumber, Metadata: model.PropertyMetadata{MinLength: length(1)}},
			want: yup.PropRules{Tag: yup.TagNumber},
		},
		{
			name: "boolean",
			prop: model.ModelProperty{Name: "active", Type: model.TypeBoolean},
			want: yup.PropRules{Tag: yup.TagMixed},
		},
		{
			name: "unsupported",
			prop: model.ModelProperty{Name: "toys", Type: model.TypeUnsupported, Metadata: model.PropertyMetadata{Minimum: float(1)}},
			want: yup.PropRules{Tag: yup.TagMixed},
		},
		{
			name: "email format is not derived",
			prop: model.ModelProperty{Name: "email", Type: model.TypeString, Metadata: model.PropertyMetadata{Format: "email"}},
			want: yup.PropRules{Tag: yup.TagString},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, yup.Derive(tc.prop)); diff != "" {
				t.Fatalf("Derive mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func petModel() model.Model {
	return model.MustNew("Pet", model.Metadata{Required: []string{"name"}},
		model.ModelProperty{Name: "name", Type: model.TypeString, Required: true, Metadata: model.PropertyMetadata{MinLength: length(8), MaxLength: length(128)}},
		model.ModelProperty{Name: "weight", Type: model.TypeNumber, Metadata: model.PropertyMetadata{Minimum: float(10.4), Maximum: float(40)}},
		model.ModelProperty{Name: "full name", Type: model.TypeString},
		model.ModelProperty{Name: "vaccinated", Type: model.TypeBoolean},
	)
}

func TestBuild(t *testing.T) {
	want := "export const PetValidator = yup.object().shape({\n" +
		"name: yup.string().min(8).max(128).required(),\n" +
		"weight: yup.number().min(10.4).max(40).required(),\n" +
		"\"full name\": yup.string().required(),\n" +
		"vaccinated: yup.mixed().required(),\n" +
		"});\n"
	got := yup.Build(petModel())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Build mismatch (-want +got):\n%s", diff)
	}
	if again := yup.Build(petModel()); again != got {
		t.Fatalf("expected deterministic output")
	}
}

func TestBuildEmptyModel(t *testing.T) {
	want := "export const EmptyValidator = yup.object().shape({\n});\n"
	if diff := cmp.Diff(want, yup.Build(model.MustNew("Empty", model.Metadata{}))); diff != "" {
		t.Fatalf("Build mismatch (-want +got):\n%s", diff)
	}
}

func TestEntryLibraryAndRequiredness(t *testing.T) {
	prop := model.ModelProperty{Name: "nickname", Type: model.TypeString}

	if got := yup.Entry(prop); got != "nickname: yup.string().required(),\n" {
		t.Fatalf("default entry = %q", got)
	}
	got := yup.Entry(prop, yup.WithLibrary("Yup"), yup.WithHonorRequired(true))
	if got != "nickname: Yup.string().notRequired(),\n" {
		t.Fatalf("custom entry = %q", got)
	}
	if got := yup.Entry(prop, yup.WithLibrary("  ")); got != "nickname: yup.string().required(),\n" {
		t.Fatalf("blank library should be ignored, got %q", got)
	}
}

func TestRendererRender(t *testing.T) {
	renderer := yup.New()
	if renderer.Name() != yup.Name {
		t.Fatalf("unexpected name %q", renderer.Name())
	}
	if got := renderer.Preamble(); got != "import * as yup from 'yup';" {
		t.Fatalf("unexpected preamble %q", got)
	}

	out, err := renderer.Render(context.Background(), petModel(), render.RenderOptions{HonorRequired: true})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "export const PetValidator = yup.object().shape({\n" +
		"name: yup.string().min(8).max(128).required(),\n" +
		"weight: yup.number().min(10.4).max(40).notRequired(),\n" +
		"\"full name\": yup.string().notRequired(),\n" +
		"vaccinated: yup.mixed().notRequired(),\n" +
		"});\n"
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("Render mismatch (-want +got):\n%s", diff)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := renderer.Render(ctx, petModel(), render.RenderOptions{}); err == nil {
		t.Fatalf("expected cancelled context error")
	}
}
