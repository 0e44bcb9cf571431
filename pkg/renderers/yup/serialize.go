package yup

import (
	"strconv"
	"strings"
)

var templateEscaper = strings.NewReplacer("\\", "\\\\", "`", "\\`", "${", "\\${")

// Fragment renders a single rule as a method call, e.g. ".min(8)".
func Fragment(rule Rule) string {
	switch rule.Kind {
	case RuleMinimum:
		return ".min(" + formatNumber(rule.Number) + ")"
	case RuleMaximum:
		return ".max(" + formatNumber(rule.Number) + ")"
	case RuleMinLength:
		return ".min(" + strconv.FormatUint(rule.Length, 10) + ")"
	case RuleMaxLength:
		return ".max(" + strconv.FormatUint(rule.Length, 10) + ")"
	case RulePattern:
		return ".matches(/" + regexLiteral(rule.Pattern) + "/)"
	case RuleOneOf:
		quoted := make([]string, 0, len(rule.Values))
		for _, value := range rule.Values {
			quoted = append(quoted, "`"+templateEscaper.Replace(value)+"`")
		}
		return ".oneOf([" + strings.Join(quoted, ", ") + "])"
	case RuleEmail:
		return ".email()"
	case RuleUUID:
		return ".uuid()"
	default:
		return ""
	}
}

// Serialize renders the full chain: the type tag, every fragment in order and
// the requiredness terminator.
func Serialize(rules PropRules) string {
	tag := rules.Tag
	if tag == "" {
		tag = TagMixed
	}

	var b strings.Builder
	b.WriteString(".")
	b.WriteString(string(tag))
	b.WriteString("()")
	for _, rule := range rules.Rules {
		b.WriteString(Fragment(rule))
	}
	if rules.Optional {
		b.WriteString(".notRequired()")
	} else {
		b.WriteString(".required()")
	}
	return b.String()
}

// formatNumber prints the shortest decimal that round-trips, without a
// trailing ".0" for integral values.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// regexLiteral prepares a pattern for use between slashes. Only characters
// that would end the literal early are escaped.
func regexLiteral(pattern string) string {
	if pattern == "" {
		return "(?:)"
	}

	var (
		b       strings.Builder
		escaped bool
	)
	for _, r := range pattern {
		switch r {
		case '\n':
			b.WriteString(terminator(escaped, "n"))
		case '\r':
			b.WriteString(terminator(escaped, "r"))
		case '\u2028':
			b.WriteString(terminator(escaped, "u2028"))
		case '\u2029':
			b.WriteString(terminator(escaped, "u2029"))
		case '/':
			if !escaped {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
		escaped = !escaped && r == '\\'
	}
	if escaped {
		b.WriteByte('\\')
	}
	return b.String()
}

func terminator(escaped bool, name string) string {
	if escaped {
		return name
	}
	return `\` + name
}
