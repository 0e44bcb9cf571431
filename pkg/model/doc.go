// Package model defines the intermediate representation shared by every
// renderer. A Model is one named object schema taken from
// components/schemas; its Properties keep the order in which the source
// document declared them, which is the order renderers emit members in.
// Property types are reduced to a closed set (number, string, boolean,
// unsupported) by the reader so renderers never see OpenAPI type names.
// Constraint data (bounds, lengths, pattern, enum, format) travels untouched
// in PropertyMetadata; renderers decide which parts they understand.
package model
