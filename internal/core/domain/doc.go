// Package domain defines the core business entities for Marginalia.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Book: A book (or article) with its reading highlights
//   - Highlight: A single highlighted passage with optional note
//   - RecordKind: A declared record schema for the knowledge base
//   - Outcome: The tagged result of one fetch attempt
//   - CycleResult: The recorded outcome of one sync cycle
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
