// Package domain defines the core business entities for repohome.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Manifest: The URL-bearing fields of a project manifest
//   - FieldValue: A tagged string-or-object manifest field
//   - ExtractedURLs: Normalised URLs pulled out of a manifest
//   - GitHubInference: GitHub user/repository/Pages URLs inferred from evidence
//   - Choice: A labelled URL offered to the user for opening
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
