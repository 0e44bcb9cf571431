package typescript

import (
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-typegen/pkg/model"
)

// Fallback is the literal used for property types outside the closed set.
const Fallback = "unknown"

var (
	quoteEscaper   = strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	commentPolicy  = bluemonday.StrictPolicy()
	commentEscaper = strings.NewReplacer("*/", `*\/`)
)

// LiteralType maps a property type onto its TypeScript literal.
func LiteralType(t model.PropertyType) string {
	switch t {
	case model.TypeNumber:
		return "number"
	case model.TypeString:
		return "string"
	case model.TypeBoolean:
		return "boolean"
	default:
		return Fallback
	}
}

// PropertyName returns name as a member key, double quoted when it is not a
// plain identifier (for example when it contains a space).
func PropertyName(name string) string {
	if isIdentifier(name) {
		return name
	}
	return `"` + quoteEscaper.Replace(name) + `"`
}

// Member renders one interface member without indentation.
func Member(prop model.ModelProperty, required bool) string {
	var b strings.Builder
	b.WriteString(PropertyName(prop.Name))
	if !required {
		b.WriteByte('?')
	}
	b.WriteString(": ")
	b.WriteString(LiteralType(prop.Type))
	return b.String()
}

// Build renders the interface declaration for m. The result has no trailing
// newline.
func Build(m model.Model, options ...Option) string {
	cfg := newConfig(options...)

	var b strings.Builder
	if cfg.comments {
		if doc := docComment(m.Metadata.Description); doc != "" {
			b.WriteString(doc)
			b.WriteByte('\n')
		}
	}
	b.WriteString("interface ")
	b.WriteString(m.Name)
	b.WriteString(" {")
	m.Properties.Each(func(prop model.ModelProperty) bool {
		if cfg.comments {
			if doc := docComment(prop.Metadata.Description); doc != "" {
				b.WriteString("\n\t")
				b.WriteString(doc)
			}
		}
		required := !cfg.optional || prop.Required
		b.WriteString("\n\t")
		b.WriteString(Member(prop, required))
		return true
	})
	b.WriteString("\n}")
	return b.String()
}

// docComment turns a description into a single JSDoc line. Markup is stripped
// and the comment terminator is escaped.
func docComment(description string) string {
	text := strings.Join(strings.Fields(commentPolicy.Sanitize(description)), " ")
	if text == "" {
		return ""
	}
	return "/** " + commentEscaper.Replace(text) + " */"
}

func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}
