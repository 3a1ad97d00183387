// Package github implements the RepoVerifier driven port against the
// GitHub REST API.
//
// Inference is best-effort string matching; this adapter is how the check
// command finds out whether the guessed user and repository actually
// exist. Requests work unauthenticated, but a personal access token
// (github.token in the config) raises the rate limit considerably.
package github
