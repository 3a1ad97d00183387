package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/repohome-cli/internal/core/ports/driven"
)

// defaultTimeout is the HTTP request timeout for verification calls.
const defaultTimeout = 10 * time.Second

// Ensure Verifier implements the interface.
var _ driven.RepoVerifier = (*Verifier)(nil)

// Verifier answers existence questions via the GitHub REST API.
type Verifier struct {
	gh          *gh.Client
	rateLimiter *rateLimiter
}

// NewVerifier creates a verifier. token may be empty, in which case
// requests are unauthenticated and the 60/hour quota applies.
func NewVerifier(ctx context.Context, token string) *Verifier {
	httpClient := &http.Client{Timeout: defaultTimeout}
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(ctx, ts)
		httpClient.Timeout = defaultTimeout
	}

	return &Verifier{
		gh:          gh.NewClient(httpClient),
		rateLimiter: newRateLimiter(token != ""),
	}
}

// UserExists reports whether the GitHub user or organisation exists.
func (v *Verifier) UserExists(ctx context.Context, user string) (bool, error) {
	if err := v.rateLimiter.wait(ctx); err != nil {
		return false, err
	}

	_, resp, err := v.gh.Users.Get(ctx, user)
	v.updateRateLimit(resp)
	return v.interpret(err, fmt.Sprintf("get user %s", user))
}

// RepositoryExists reports whether the repository exists.
func (v *Verifier) RepositoryExists(ctx context.Context, user, repo string) (bool, error) {
	if err := v.rateLimiter.wait(ctx); err != nil {
		return false, err
	}

	_, resp, err := v.gh.Repositories.Get(ctx, user, repo)
	v.updateRateLimit(resp)
	return v.interpret(err, fmt.Sprintf("get repository %s/%s", user, repo))
}

// interpret maps a go-github error to (exists, error). A 404 means the
// entity does not exist; anything else is a real failure.
func (v *Verifier) interpret(err error, op string) (bool, error) {
	if err == nil {
		return true, nil
	}

	var errResp *gh.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil && errResp.Response.StatusCode == http.StatusNotFound {
		return false, nil
	}

	return false, fmt.Errorf("%s: %w", op, err)
}

// updateRateLimit feeds response headers into the rate limiter.
func (v *Verifier) updateRateLimit(resp *gh.Response) {
	if resp == nil {
		return
	}
	v.rateLimiter.update(resp.Rate.Remaining, resp.Rate.Reset.Time)
}
