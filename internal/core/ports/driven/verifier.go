package driven

import "context"

// RepoVerifier confirms whether inferred GitHub entities actually exist.
// Inference is best-effort string matching; verification asks the API.
type RepoVerifier interface {
	// UserExists reports whether the GitHub user or organisation exists.
	UserExists(ctx context.Context, user string) (bool, error)

	// RepositoryExists reports whether the repository exists.
	RepositoryExists(ctx context.Context, user, repo string) (bool, error)
}
