package openapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-typegen"
	pkgopenapi "github.com/goliatone/go-typegen/pkg/openapi"
)

func TestLoaderReaderIntegration(t *testing.T) {
	ctx := context.Background()

	fixture := filepath.Join("testdata", "petstore.yaml")
	data, err := os.ReadFile(fixture)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	tmp := t.TempDir()
	filePath := filepath.Join(tmp, "petstore.yaml")
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		t.Fatalf("write temp fixture: %v", err)
	}

	reader := typegen.NewReader()

	// File source
	loader := typegen.NewLoader()
	docFile, err := loader.Load(ctx, pkgopenapi.SourceFromFile(filePath))
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	assertPetstore(t, reader, docFile)

	// fs.FS source
	loaderFS := typegen.NewLoader(pkgopenapi.WithFileSystem(fstest.MapFS{
		"schemas/petstore.yaml": {Data: data},
	}))
	docFS, err := loaderFS.Load(ctx, pkgopenapi.SourceFromFS("schemas/petstore.yaml"))
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	assertPetstore(t, reader, docFS)

	// HTTP source
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}))
	defer server.Close()

	loaderHTTP := typegen.NewLoader(pkgopenapi.WithHTTPFallback(0))
	docHTTP, err := loaderHTTP.Load(ctx, pkgopenapi.SourceFromURL(server.URL))
	if err != nil {
		t.Fatalf("load http: %v", err)
	}
	assertPetstore(t, reader, docHTTP)
}

func assertPetstore(t *testing.T, reader pkgopenapi.Reader, doc pkgopenapi.Document) {
	t.Helper()
	result, err := reader.Models(context.Background(), doc)
	if err != nil {
		t.Fatalf("read %s: %v", doc.Location(), err)
	}
	if len(result.Models) != 2 {
		t.Fatalf("%s: expected 2 models, got %d", doc.Location(), len(result.Models))
	}
}
