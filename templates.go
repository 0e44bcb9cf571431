package typegen

import (
	"io/fs"

	"github.com/goliatone/go-typegen/pkg/render/layout"
)

// EmbeddedTemplates exposes the built-in models.ts layout so callers can copy
// and customise it without importing the layout package directly.
func EmbeddedTemplates() fs.FS {
	return layout.TemplatesFS()
}
