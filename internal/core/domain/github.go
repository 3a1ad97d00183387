package domain

// GitHubInference is the result of scanning extracted URLs for GitHub
// evidence. All fields are best-effort: an empty string means the value
// could not be inferred. Never an error.
type GitHubInference struct {
	// UserName is the inferred GitHub account name.
	UserName string

	// RepositoryName is the inferred repository name.
	RepositoryName string

	// HasPages is true only when a github.io URL was actually observed,
	// never for a synthesised Pages URL.
	HasPages bool

	// PagesURL is the GitHub Pages site URL, observed or synthesised.
	// When HasPages is false the URL is speculative and may not exist.
	PagesURL string
}

// UserURL returns https://github.com/{user}, or empty when no user
// was inferred.
func (g GitHubInference) UserURL() string {
	if g.UserName == "" {
		return ""
	}
	return "https://github.com/" + g.UserName
}

// RepositoryURL returns https://github.com/{user}/{repo}. It is non-empty
// only when UserURL is also non-empty; a repository name without a user
// yields nothing.
func (g GitHubInference) RepositoryURL() string {
	if g.UserName == "" || g.RepositoryName == "" {
		return ""
	}
	return "https://github.com/" + g.UserName + "/" + g.RepositoryName
}

// IsEmpty returns true when nothing at all was inferred.
func (g GitHubInference) IsEmpty() bool {
	return g.UserName == "" && g.RepositoryName == "" && g.PagesURL == ""
}
