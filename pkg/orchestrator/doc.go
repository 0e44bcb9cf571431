// Package orchestrator wires the loader → reader → renderers → layout
// pipeline and writes one models.ts per configured project, providing
// dependency injection friendly helpers for consumers that prefer a single
// entry point.
package orchestrator
