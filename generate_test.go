package typegen_test

import (
	"context"
	"io/fs"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	typegen "github.com/goliatone/go-typegen"
	pkgopenapi "github.com/goliatone/go-typegen/pkg/openapi"
	"github.com/goliatone/go-typegen/pkg/orchestrator"
	"github.com/goliatone/go-typegen/pkg/render/layout"
)

const petstore = "pkg/orchestrator/testdata/petstore.yaml"

func TestGenerateFromFile(t *testing.T) {
	got, err := typegen.Generate(context.Background(), pkgopenapi.SourceFromFile(petstore))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	want, err := os.ReadFile("pkg/orchestrator/testdata/models.ts.golden")
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if diff := cmp.Diff(string(want), string(got)); diff != "" {
		t.Fatalf("models.ts mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateFromDocument(t *testing.T) {
	raw := []byte(`{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{},"components":{"schemas":{"Tag":{"type":"object","properties":{"label":{"type":"string","maxLength":12}}}}}}`)
	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromFile("inline.json"), raw)
	if err != nil {
		t.Fatalf("new document: %v", err)
	}

	got, err := typegen.GenerateFromDocument(context.Background(), doc, orchestrator.WithHonorRequired(true))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	content := string(got)
	for _, want := range []string{
		"interface Tag {\n\tlabel?: string\n}\n",
		"label: yup.string().max(12).notRequired(),\n",
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected output to contain %q:\n%s", want, content)
		}
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	data, err := fs.ReadFile(typegen.EmbeddedTemplates(), layout.DefaultTemplate)
	if err != nil {
		t.Fatalf("read embedded template: %v", err)
	}
	if !strings.Contains(string(data), "preambles") {
		t.Fatalf("unexpected template content:\n%s", data)
	}
}
