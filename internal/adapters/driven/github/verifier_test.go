package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestVerifier points a verifier at a stub API server.
func newTestVerifier(t *testing.T, handler http.Handler) *Verifier {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	v := NewVerifier(context.Background(), "")
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	v.gh.BaseURL = base
	return v
}

func TestVerifier_UserExists(t *testing.T) {
	v := newTestVerifier(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/acme", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"login": "acme", "id": 1}`))
	}))

	exists, err := v.UserExists(context.Background(), "acme")

	require.NoError(t, err)
	assert.True(t, exists)
}

func TestVerifier_UserExists_NotFound(t *testing.T) {
	v := newTestVerifier(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Not Found"}`))
	}))

	exists, err := v.UserExists(context.Background(), "no-such-user")

	require.NoError(t, err, "a 404 is an answer, not a failure")
	assert.False(t, exists)
}

func TestVerifier_RepositoryExists(t *testing.T) {
	v := newTestVerifier(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/acme/widget", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name": "widget", "full_name": "acme/widget"}`))
	}))

	exists, err := v.RepositoryExists(context.Background(), "acme", "widget")

	require.NoError(t, err)
	assert.True(t, exists)
}

func TestVerifier_ServerError(t *testing.T) {
	v := newTestVerifier(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := v.UserExists(context.Background(), "acme")

	assert.Error(t, err)
}

func TestRateLimiter_Wait_QuotaAvailable(t *testing.T) {
	r := newRateLimiter(false)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	assert.NoError(t, r.wait(ctx))
}

func TestRateLimiter_Wait_Exhausted(t *testing.T) {
	r := newRateLimiter(false)
	r.update(0, time.Now().Add(time.Hour))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := r.wait(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRateLimiter_Wait_ResetPassed(t *testing.T) {
	r := newRateLimiter(true)
	r.update(0, time.Now().Add(-time.Minute))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	assert.NoError(t, r.wait(ctx))
}
