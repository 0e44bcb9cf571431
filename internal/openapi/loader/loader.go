package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	pkgopenapi "github.com/goliatone/go-typegen/pkg/openapi"
)

// MaxDocumentSize caps remote payloads.
const MaxDocumentSize = 32 << 20

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type fetchFunc func(ctx context.Context, location string) ([]byte, error)

// Loader implements pkgopenapi.Loader with one fetcher per source kind.
type Loader struct {
	fetchers map[pkgopenapi.SourceKind]fetchFunc
}

var _ pkgopenapi.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options. URL sources are only
// served when a client is supplied or the HTTP fallback is enabled.
func New(options pkgopenapi.LoaderOptions) pkgopenapi.Loader {
	l := &Loader{fetchers: map[pkgopenapi.SourceKind]fetchFunc{
		pkgopenapi.SourceKindFile: loadFile,
	}}

	if files := options.FileSystem; files != nil {
		l.fetchers[pkgopenapi.SourceKindFS] = func(ctx context.Context, name string) ([]byte, error) {
			return loadFromFS(ctx, files, name)
		}
	}

	if client := httpClient(options); client != nil {
		timeout := options.RequestTimeout
		l.fetchers[pkgopenapi.SourceKindURL] = func(ctx context.Context, url string) ([]byte, error) {
			return loadHTTP(ctx, client, url, timeout)
		}
	}
	return l
}

func httpClient(options pkgopenapi.LoaderOptions) *http.Client {
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if options.RequestTimeout > 0 && clone.Timeout == 0 {
			clone.Timeout = options.RequestTimeout
		}
		return &clone
	case options.AllowHTTPFallback:
		return &http.Client{Timeout: options.RequestTimeout}
	default:
		return nil
	}
}

// Load fetches src and wraps the payload in a Document. A leading UTF-8 byte
// order mark is dropped.
func (l *Loader) Load(ctx context.Context, src pkgopenapi.Source) (pkgopenapi.Document, error) {
	if src == nil {
		return pkgopenapi.Document{}, errors.New("openapi loader: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return pkgopenapi.Document{}, err
	}

	fetch, ok := l.fetchers[src.Kind()]
	if !ok {
		return pkgopenapi.Document{}, unavailable(src.Kind())
	}
	data, err := fetch(ctx, src.Location())
	if err != nil {
		return pkgopenapi.Document{}, err
	}
	return pkgopenapi.NewDocument(src, bytes.TrimPrefix(data, utf8BOM))
}

func unavailable(kind pkgopenapi.SourceKind) error {
	switch kind {
	case pkgopenapi.SourceKindURL:
		return errors.New("openapi loader: http support disabled")
	case pkgopenapi.SourceKindFS:
		return errors.New("openapi loader: filesystem is not configured")
	default:
		return fmt.Errorf("openapi loader: unsupported source kind %q", kind)
	}
}

func loadFromFS(ctx context.Context, files fs.FS, name string) ([]byte, error) {
	if name == "" {
		return nil, errors.New("openapi loader: fs path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(files, name)
	if err != nil {
		return nil, fmt.Errorf("openapi loader: read %s: %w", name, err)
	}
	return data, nil
}
