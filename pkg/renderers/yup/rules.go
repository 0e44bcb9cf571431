package yup

import "github.com/goliatone/go-typegen/pkg/model"

// Tag is the yup schema constructor a chain starts with.
type Tag string

const (
	TagNumber Tag = "number"
	TagString Tag = "string"
	TagMixed  Tag = "mixed"
)

// RuleKind enumerates the constraint fragments the grammar knows about.
type RuleKind int

const (
	RuleMinimum RuleKind = iota
	RuleMaximum
	RuleMinLength
	RuleMaxLength
	RulePattern
	RuleOneOf
	RuleEmail
	RuleUUID
)

// Rule is one constraint. Only the field matching Kind is meaningful.
type Rule struct {
	Kind    RuleKind
	Number  float64
	Length  uint64
	Pattern string
	Values  []string
}

// Minimum builds a numeric lower bound.
func Minimum(v float64) Rule { return Rule{Kind: RuleMinimum, Number: v} }

// Maximum builds a numeric upper bound.
func Maximum(v float64) Rule { return Rule{Kind: RuleMaximum, Number: v} }

// MinLength builds a string length lower bound.
func MinLength(n uint64) Rule { return Rule{Kind: RuleMinLength, Length: n} }

// MaxLength builds a string length upper bound.
func MaxLength(n uint64) Rule { return Rule{Kind: RuleMaxLength, Length: n} }

// Pattern builds a regular expression match.
func Pattern(p string) Rule { return Rule{Kind: RulePattern, Pattern: p} }

// OneOf restricts a string to a fixed set of values.
func OneOf(values ...string) Rule {
	return Rule{Kind: RuleOneOf, Values: append([]string(nil), values...)}
}

// Email requires a well-formed email address.
func Email() Rule { return Rule{Kind: RuleEmail} }

// UUID requires a UUID string.
func UUID() Rule { return Rule{Kind: RuleUUID} }

// PropRules is the validation rule set of a single property.
type PropRules struct {
	Tag   Tag
	Rules []Rule
	// Optional ends the chain with notRequired() instead of required().
	Optional bool
}

// Derive builds the rule set of prop. Numbers carry minimum then maximum;
// strings carry minLength, maxLength, pattern then enum. Every other type
// becomes an unconstrained mixed schema.
func Derive(prop model.ModelProperty) PropRules {
	meta := prop.Metadata
	switch prop.Type {
	case model.TypeNumber:
		rules := PropRules{Tag: TagNumber}
		if meta.Minimum != nil {
			rules.Rules = append(rules.Rules, Minimum(*meta.Minimum))
		}
		if meta.Maximum != nil {
			rules.Rules = append(rules.Rules, Maximum(*meta.Maximum))
		}
		return rules
	case model.TypeString:
		rules := PropRules{Tag: TagString}
		if meta.MinLength != nil {
			rules.Rules = append(rules.Rules, MinLength(*meta.MinLength))
		}
		if meta.MaxLength != nil {
			rules.Rules = append(rules.Rules, MaxLength(*meta.MaxLength))
		}
		if meta.Pattern != "" {
			rules.Rules = append(rules.Rules, Pattern(meta.Pattern))
		}
		if values := meta.StringEnum(); len(values) > 0 {
			rules.Rules = append(rules.Rules, OneOf(values...))
		}
		return rules
	default:
		return PropRules{Tag: TagMixed}
	}
}
