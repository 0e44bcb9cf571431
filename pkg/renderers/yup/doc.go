// Package yup derives validation rules from models and serialises them as
// yup schema declarations.
//
// Derivation is separate from serialisation: Derive turns a property into
// PropRules, Serialize turns PropRules into a method chain such as
// .string().min(8).max(128).required().
package yup
