// Package openapi exposes the public contracts for the loader and reader
// stages. Loaders fetch raw documents from files, fs.FS entries, or URLs;
// readers turn a Document into the ordered list of models found under
// components/schemas. Implementations live under internal/openapi to keep
// kin-openapi and yaml dependencies hidden from consumers.
package openapi
