// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ManifestSource: Reads the project manifest from disk
//   - Browser: Launches a URL in the user's browser
//   - Prompter: Presents the choice list and returns the selection
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - RemoteSource: Resolves the version-control remote URL. Without it,
//     only manifest evidence feeds the inference.
//   - HistoryStore: Persists opened URLs. Without it, nothing is recorded.
//   - RepoVerifier: Confirms inferred GitHub URLs exist. Only the check
//     command uses it.
//   - ConfigStore: Application configuration. Without it, defaults apply.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
