// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The extraction and inference logic in this package is deliberately
// narrow: it is a set of GitHub-specific, best-effort string heuristics,
// not a general URL parser. A failed inference yields empty values,
// never an error.
package services
