package layout_test

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-typegen/pkg/render/layout"
)

func TestExecuteDefaultTemplate(t *testing.T) {
	l, err := layout.New()
	if err != nil {
		t.Fatalf("new layout: %v", err)
	}

	got, err := l.Execute(layout.Page{
		Preambles: []string{"import * as yup from 'yup';"},
		Blocks: []layout.Block{
			{Name: "Foo", Parts: []string{"interface Foo {\n\tid: string\n}\n", "export const FooValidator = yup.object().shape({\nid: yup.string().required(),\n});\n"}},
			{Name: "Bar", Parts: []string{"interface Bar {\n}\n"}},
		},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	want := "/* eslint-disable */\n" +
		"// Code generated by typegen. DO NOT EDIT.\n" +
		"import * as yup from 'yup';\n" +
		"\n" +
		"interface Foo {\n\tid: string\n}\n" +
		"export const FooValidator = yup.object().shape({\nid: yup.string().required(),\n});\n" +
		"\n" +
		"\n" +
		"interface Bar {\n}\n" +
		"\n" +
		"\n"
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestExecuteDoesNotEscapeMarkup(t *testing.T) {
	l, err := layout.New(layout.WithHeader())
	if err != nil {
		t.Fatalf("new layout: %v", err)
	}
	got, err := l.Execute(layout.Page{
		Blocks: []layout.Block{{Name: "Tag", Parts: []string{"\t\"a<b>\": string & 'x'\n"}}},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if diff := cmp.Diff("\n\t\"a<b>\": string & 'x'\n\n\n", string(got)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestCustomTemplate(t *testing.T) {
	files := fstest.MapFS{
		"custom.tpl": {Data: []byte("{% for block in blocks %}// {{ block.name }}\n{% endfor %}")},
	}
	l, err := layout.New(layout.WithTemplatesFS(files, "custom.tpl"))
	if err != nil {
		t.Fatalf("new layout: %v", err)
	}
	got, err := l.Execute(layout.Page{Blocks: []layout.Block{{Name: "A"}, {Name: "B"}}})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if diff := cmp.Diff("// A\n// B\n", string(got)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestMissingTemplate(t *testing.T) {
	if _, err := layout.New(layout.WithTemplatesFS(fstest.MapFS{}, "missing.tpl")); err == nil {
		t.Fatalf("expected missing template error")
	}
}

func TestExecuteWithoutBlocks(t *testing.T) {
	l, err := layout.New()
	if err != nil {
		t.Fatalf("new layout: %v", err)
	}
	got, err := l.Execute(layout.Page{Preambles: []string{"import * as yup from 'yup';"}})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	want := "/* eslint-disable */\n// Code generated by typegen. DO NOT EDIT.\nimport * as yup from 'yup';\n"
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}
