package ghimport_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/ghimport"
)

func TestParseRepoURL(t *testing.T) {
	cases := []struct {
		name      string
		input     string
		wantOwner string
		wantRepo  string
		wantOK    bool
	}{
		{"full https url", "https://github.com/owner/repo", "owner", "repo", true},
		{"http url", "http://github.com/owner/repo", "owner", "repo", true},
		{"trailing slash", "https://github.com/owner/repo/", "owner", "repo", true},
		{"dot git suffix", "https://github.com/owner/repo.git", "owner", "repo", true},
		{"scheme-less", "github.com/owner/repo", "owner", "repo", true},
		{"bare shorthand", "owner/repo", "owner", "repo", true},
		{"whitespace padded", "  owner/repo  ", "owner", "repo", true},
		{"not a url", "not a url", "", "", false},
		{"deep path", "https://github.com/owner/repo/issues", "", "", false},
		{"empty", "", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			owner, repo, ok := ghimport.ParseRepoURL(tc.input)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantOwner, owner)
			assert.Equal(t, tc.wantRepo, repo)
		})
	}
}

// newTestServer mounts canned GitHub API responses for owner/repo.
func newTestServer(t *testing.T, failAux bool) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/repos/owner/repo", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"name": "repo",
			"description": "A demo repository",
			"html_url": "https://github.com/owner/repo",
			"homepage": "https://repo.example.com",
			"language": "Go",
			"topics": ["go", "react"],
			"stargazers_count": 42,
			"forks_count": 7,
			"watchers_count": 42,
			"open_issues_count": 3,
			"size": 1234,
			"default_branch": "main",
			"private": false,
			"archived": false,
			"fork": false,
			"created_at": "2023-01-02T03:04:05Z",
			"updated_at": "2024-01-02T03:04:05Z",
			"pushed_at": "2024-02-02T03:04:05Z",
			"license": {"name": "MIT License"},
			"owner": {"login": "owner", "avatar_url": "https://avatars.example/1", "type": "User"}
		}`)
	})

	aux := func(handler http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if failAux {
				http.Error(w, `{"message":"boom"}`, http.StatusInternalServerError)
				return
			}
			handler(w, r)
		}
	}

	mux.HandleFunc("/repos/owner/repo/languages", aux(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Go": 9000, "JavaScript": 500}`)
	}))

	mux.HandleFunc("/repos/owner/repo/contributors", aux(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Link", `<https://api.github.com/repos/owner/repo/contributors?per_page=1&page=4>; rel="last"`)
		fmt.Fprint(w, `[{"login": "owner"}]`)
	}))

	mux.HandleFunc("/repos/owner/repo/readme", aux(func(w http.ResponseWriter, r *http.Request) {
		content := base64.StdEncoding.EncodeToString([]byte(strings.Repeat("a", 600)))
		json.NewEncoder(w).Encode(map[string]string{
			"content":  content,
			"encoding": "base64",
		})
	}))

	mux.HandleFunc("/repos/owner/repo/commits", aux(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Link", `<https://api.github.com/repos/owner/repo/commits?per_page=1&page=128>; rel="last"`)
		fmt.Fprint(w, `[{"sha": "abc"}]`)
	}))

	mux.HandleFunc("/repos/owner/missing", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	})

	mux.HandleFunc("/users/someone/repos", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"name": "alpha", "description": "first", "html_url": "https://github.com/someone/alpha", "stargazers_count": 5, "language": "Go", "updated_at": "2024-03-01T00:00:00Z"},
			{"name": "beta", "html_url": "https://github.com/someone/beta", "stargazers_count": 1, "language": "TypeScript", "updated_at": "2024-02-01T00:00:00Z"}
		]`)
	})

	mux.HandleFunc("/users/ghost/repos", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	})

	return httptest.NewServer(mux)
}

func TestFetchRepo(t *testing.T) {
	srv := newTestServer(t, false)
	defer srv.Close()

	client, err := ghimport.NewWithBaseURL("", srv.URL+"/")
	require.NoError(t, err)

	payload, err := client.FetchRepo(context.Background(), "https://github.com/owner/repo")
	require.NoError(t, err)

	assert.Equal(t, "repo", payload.Title)
	assert.Equal(t, "A demo repository", payload.Description)
	assert.Equal(t, "https://github.com/owner/repo", payload.GithubURL)
	assert.Equal(t, "https://repo.example.com", payload.LiveURL)
	assert.Equal(t, domain.SourceGithub, payload.Source)

	// Languages by byte count first, then capitalized topics, deduplicated
	// ("go" collapses into the already present "Go").
	assert.Equal(t, []string{"Go", "JavaScript", "React"}, payload.TechStack)

	assert.Equal(t, 42, payload.GithubMeta.Stars)
	assert.Equal(t, 7, payload.GithubMeta.Forks)
	assert.Equal(t, 3, payload.GithubMeta.OpenIssues)
	assert.Equal(t, "MIT License", payload.GithubMeta.License)
	assert.Equal(t, "main", payload.GithubMeta.DefaultBranch)
	assert.Equal(t, 4, payload.GithubMeta.ContributorsCount)
	assert.Equal(t, 128, payload.GithubMeta.CommitsCount)
	assert.Equal(t, "owner", payload.GithubMeta.Owner.Login)
	assert.Equal(t, "User", payload.GithubMeta.Owner.Type)
	require.NotNil(t, payload.GithubMeta.CreatedAt)

	// README snippet is capped at 500 characters plus an ellipsis.
	assert.Len(t, payload.Readme, 503)
	assert.True(t, strings.HasSuffix(payload.Readme, "..."))
}

func TestFetchRepoAuxFailuresAreTolerated(t *testing.T) {
	srv := newTestServer(t, true)
	defer srv.Close()

	client, err := ghimport.NewWithBaseURL("", srv.URL+"/")
	require.NoError(t, err)

	payload, err := client.FetchRepo(context.Background(), "owner/repo")
	require.NoError(t, err)

	// Enrichment endpoints all failed; the payload degrades instead of erroring.
	assert.Equal(t, "repo", payload.Title)
	assert.Empty(t, payload.Readme)
	assert.Zero(t, payload.GithubMeta.ContributorsCount)
	assert.Zero(t, payload.GithubMeta.CommitsCount)
	// Topics still come from the primary record.
	assert.Equal(t, []string{"Go", "React"}, payload.TechStack)
}

func TestFetchRepoErrors(t *testing.T) {
	srv := newTestServer(t, false)
	defer srv.Close()

	client, err := ghimport.NewWithBaseURL("", srv.URL+"/")
	require.NoError(t, err)

	t.Run("invalid url", func(t *testing.T) {
		_, err := client.FetchRepo(context.Background(), "not a url")
		assert.ErrorIs(t, err, ghimport.ErrInvalidURL)
	})

	t.Run("missing repo", func(t *testing.T) {
		_, err := client.FetchRepo(context.Background(), "owner/missing")
		assert.ErrorIs(t, err, ghimport.ErrRepoNotFound)
	})
}

func TestFetchUserRepos(t *testing.T) {
	srv := newTestServer(t, false)
	defer srv.Close()

	client, err := ghimport.NewWithBaseURL("", srv.URL+"/")
	require.NoError(t, err)

	t.Run("lists repositories", func(t *testing.T) {
		repos, err := client.FetchUserRepos(context.Background(), "someone", "", 0)
		require.NoError(t, err)
		require.Len(t, repos, 2)
		assert.Equal(t, "alpha", repos[0].Name)
		assert.Equal(t, 5, repos[0].Stars)
		assert.Equal(t, "Go", repos[0].Language)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := client.FetchUserRepos(context.Background(), "ghost", "", 0)
		assert.ErrorIs(t, err, ghimport.ErrUserNotFound)
	})
}
