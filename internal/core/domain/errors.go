package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNoManifest indicates no readable manifest was found in the project
	// directory. The pipeline continues with an empty manifest; callers may
	// still surface this to the user when nothing else is available.
	ErrNoManifest = errors.New("no manifest found")

	// ErrNoChoices indicates no URL could be extracted or inferred,
	// leaving nothing to offer the user.
	ErrNoChoices = errors.New("no URLs found")

	// ErrCancelled indicates the user dismissed the selection prompt
	// without picking a URL. It is a clean exit, not a failure.
	ErrCancelled = errors.New("selection cancelled")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
