package services

import (
	"strings"

	"github.com/custodia-labs/repohome-cli/internal/core/domain"
)

// Host markers the inference scans for. The Pages marker keeps its
// leading dot so that a bare github.io host without a subdomain never
// matches.
const (
	gitHubHostMarker = "github.com/"
	pagesHostMarker  = ".github.io"
)

// InferGitHub scans the extracted URLs in field order and infers GitHub
// user, repository and Pages URLs. Each derived value short-circuits once
// set, so earlier fields take priority. URLs matching neither pattern are
// ignored. The result is a pure function of its input.
func InferGitHub(urls domain.ExtractedURLs) domain.GitHubInference {
	var g domain.GitHubInference

	for _, field := range domain.FieldOrder {
		url := urls.Get(field)
		if url == "" {
			continue
		}
		switch {
		case strings.Contains(url, "github.com"):
			g = applyRepositoryHost(g, url)
		case strings.Contains(url, pagesHostMarker) && g.PagesURL == "":
			g = applyPagesHost(g, url)
		}
	}

	// No Pages URL observed: synthesise one from the known user. It is
	// speculative, so HasPages stays false.
	if g.PagesURL == "" && g.UserName != "" {
		g.PagesURL = "https://" + g.UserName + ".github.io"
		if g.RepositoryName != "" {
			g.PagesURL += "/" + g.RepositoryName
		}
	}

	return g
}

// applyRepositoryHost takes the first two path segments after github.com/
// as user and repository candidates. An empty captured segment does not
// count as a match.
func applyRepositoryHost(g domain.GitHubInference, url string) domain.GitHubInference {
	i := strings.Index(url, gitHubHostMarker)
	if i < 0 {
		return g
	}

	user, rest := cutSegment(url[i+len(gitHubHostMarker):])
	if g.UserName == "" && user != "" {
		g.UserName = user
	}
	repo, _ := cutSegment(rest)
	if g.RepositoryName == "" && repo != "" {
		g.RepositoryName = repo
	}
	return g
}

// applyPagesHost handles {user}.github.io URLs. The subdomain is a user
// candidate; the path is either a repository-site path or a user-site
// deep link. A path segment containing a dot looks like a filename
// (index.html), not a repository name, and is rejected. This heuristic is
// knowingly imprecise for deep links with dotted non-final segments.
func applyPagesHost(g domain.GitHubInference, url string) domain.GitHubInference {
	i := strings.Index(url, pagesHostMarker)
	if i < 0 {
		return g
	}

	sub := url[:i]
	if j := strings.Index(sub, "//"); j >= 0 {
		sub = sub[j+2:]
	}
	if j := strings.LastIndex(sub, "."); j >= 0 {
		sub = sub[j+1:]
	}
	if sub == "" {
		return g
	}

	g.HasPages = true
	if g.UserName == "" {
		g.UserName = sub
	}

	path := url[i+len(pagesHostMarker):]
	if j := strings.IndexAny(path, "?#"); j >= 0 {
		path = path[:j]
	}

	base := "https://" + sub + pagesHostMarker
	if len(path) > 1 {
		g.PagesURL = base + path
		candidate := strings.Trim(path, "/")
		if g.RepositoryName == "" && candidate != "" && !strings.Contains(candidate, ".") {
			g.RepositoryName = candidate
		}
	} else {
		// Path absent or just "/": a user-level Pages site. The backing
		// repository is conventionally named {user}.github.io.
		g.PagesURL = base
		if g.RepositoryName == "" {
			g.RepositoryName = sub + pagesHostMarker
		}
	}
	return g
}

// cutSegment returns the leading path segment of s (up to the next
// '/', '?', '#' or end of string) and the remainder after a '/'.
func cutSegment(s string) (segment, rest string) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '/':
			return s[:i], s[i+1:]
		case '?', '#':
			return s[:i], ""
		}
	}
	return s, ""
}
