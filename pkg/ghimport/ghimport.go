// Package ghimport aggregates a GitHub repository's public metadata into a
// normalized importable-project payload.
package ghimport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode"

	gh "github.com/google/go-github/v62/github"

	"go-portfolio-backend/internal/domain"
)

var (
	ErrInvalidURL   = errors.New("invalid GitHub URL format")
	ErrRepoNotFound = errors.New("repository not found")
	ErrRateLimited  = errors.New("GitHub API rate limit exceeded")
	ErrAuthFailed   = errors.New("GitHub authentication failed")
	ErrUserNotFound = errors.New("GitHub user not found")
)

const readmeSnippetLimit = 500

// repoURLPatterns are tried in order: full URL, scheme-less, bare shorthand.
var repoURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^https?://github\.com/([^/]+)/([^/]+)/?$`),
	regexp.MustCompile(`^github\.com/([^/]+)/([^/]+)/?$`),
	regexp.MustCompile(`^([^/]+)/([^/]+)$`),
}

// ParseRepoURL extracts owner and repo from a free-text GitHub URL or
// shorthand. A trailing ".git" suffix is stripped first.
func ParseRepoURL(raw string) (owner, repo string, ok bool) {
	raw = strings.TrimSuffix(strings.TrimSpace(raw), ".git")
	if raw == "" {
		return "", "", false
	}
	for _, pattern := range repoURLPatterns {
		if m := pattern.FindStringSubmatch(raw); m != nil {
			return m[1], m[2], true
		}
	}
	return "", "", false
}

// Client implements domain.RepoImporter on top of the GitHub REST API.
type Client struct {
	gh *gh.Client
}

func New(token string) *Client {
	client := gh.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	return &Client{gh: client}
}

// NewWithBaseURL points the client at an alternate API root. Used in tests.
func NewWithBaseURL(token, baseURL string) (*Client, error) {
	client := New(token)
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(parsed.Path, "/") {
		parsed.Path += "/"
	}
	client.gh.BaseURL = parsed
	return client, nil
}

// FetchRepo resolves the URL, fetches the primary repository record, then
// best-effort enriches it with languages, contributor count, a README snippet
// and commit count. Only the primary request's failure is fatal.
func (c *Client) FetchRepo(ctx context.Context, githubURL string) (*domain.RepoImport, error) {
	owner, name, ok := ParseRepoURL(githubURL)
	if !ok {
		return nil, ErrInvalidURL
	}

	repo, _, err := c.gh.Repositories.Get(ctx, owner, name)
	if err != nil {
		return nil, mapAPIError(err)
	}

	languages := c.fetchLanguages(ctx, owner, name)
	contributors := c.fetchContributorsCount(ctx, owner, name)
	readme := c.fetchReadmeSnippet(ctx, owner, name)
	commits := c.fetchCommitsCount(ctx, owner, name)

	techStack := buildTechStack(languages, repo.Topics)
	if len(techStack) == 0 && repo.GetLanguage() != "" {
		techStack = []string{repo.GetLanguage()}
	}

	meta := domain.GithubMeta{
		Stars:             repo.GetStargazersCount(),
		Forks:             repo.GetForksCount(),
		Watchers:          repo.GetWatchersCount(),
		OpenIssues:        repo.GetOpenIssuesCount(),
		Language:          repo.GetLanguage(),
		Topics:            repo.Topics,
		License:           repo.GetLicense().GetName(),
		Size:              repo.GetSize(),
		DefaultBranch:     defaultBranch(repo),
		IsPrivate:         repo.GetPrivate(),
		IsArchived:        repo.GetArchived(),
		IsFork:            repo.GetFork(),
		CreatedAt:         timestampPtr(repo.GetCreatedAt()),
		UpdatedAt:         timestampPtr(repo.GetUpdatedAt()),
		PushedAt:          timestampPtr(repo.GetPushedAt()),
		ContributorsCount: contributors,
		CommitsCount:      commits,
		Owner: domain.GithubOwner{
			Login:     repo.GetOwner().GetLogin(),
			AvatarURL: repo.GetOwner().GetAvatarURL(),
			Type:      ownerType(repo),
		},
	}

	return &domain.RepoImport{
		Title:       repo.GetName(),
		Description: repo.GetDescription(),
		TechStack:   techStack,
		GithubURL:   repo.GetHTMLURL(),
		LiveURL:     repo.GetHomepage(),
		Source:      domain.SourceGithub,
		Readme:      readme,
		GithubMeta:  meta,
	}, nil
}

// FetchUserRepos lists a user's repositories as simplified entries.
func (c *Client) FetchUserRepos(ctx context.Context, username, sortBy string, perPage int) ([]domain.RepoSummary, error) {
	if sortBy == "" {
		sortBy = "updated"
	}
	if perPage <= 0 {
		perPage = 10
	}

	repos, _, err := c.gh.Repositories.ListByUser(ctx, username, &gh.RepositoryListByUserOptions{
		Sort:        sortBy,
		ListOptions: gh.ListOptions{PerPage: perPage},
	})
	if err != nil {
		mapped := mapAPIError(err)
		if errors.Is(mapped, ErrRepoNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, mapped
	}

	summaries := make([]domain.RepoSummary, 0, len(repos))
	for _, repo := range repos {
		summaries = append(summaries, domain.RepoSummary{
			Name:        repo.GetName(),
			Description: repo.GetDescription(),
			URL:         repo.GetHTMLURL(),
			Stars:       repo.GetStargazersCount(),
			Language:    repo.GetLanguage(),
			UpdatedAt:   repo.GetUpdatedAt().Time,
		})
	}
	return summaries, nil
}

// fetchLanguages returns detected languages ordered by byte count descending.
func (c *Client) fetchLanguages(ctx context.Context, owner, name string) []string {
	byBytes, _, err := c.gh.Repositories.ListLanguages(ctx, owner, name)
	if err != nil {
		return nil
	}
	languages := make([]string, 0, len(byBytes))
	for lang := range byBytes {
		languages = append(languages, lang)
	}
	sort.Slice(languages, func(i, j int) bool {
		if byBytes[languages[i]] != byBytes[languages[j]] {
			return byBytes[languages[i]] > byBytes[languages[j]]
		}
		return languages[i] < languages[j]
	})
	return languages
}

// fetchContributorsCount reads the total from the pagination Link header,
// falling back to counting the first page.
func (c *Client) fetchContributorsCount(ctx context.Context, owner, name string) int {
	contributors, resp, err := c.gh.Repositories.ListContributors(ctx, owner, name, &gh.ListContributorsOptions{
		ListOptions: gh.ListOptions{PerPage: 1},
	})
	if err != nil {
		return 0
	}
	if resp.LastPage > 0 {
		return resp.LastPage
	}
	return len(contributors)
}

func (c *Client) fetchReadmeSnippet(ctx context.Context, owner, name string) string {
	readme, _, err := c.gh.Repositories.GetReadme(ctx, owner, name, nil)
	if err != nil {
		return ""
	}
	content, err := readme.GetContent()
	if err != nil {
		return ""
	}
	if len(content) > readmeSnippetLimit {
		return content[:readmeSnippetLimit] + "..."
	}
	return content
}

// fetchCommitsCount reads the total from the pagination Link header. Without
// a Link header (single-page histories) the count stays zero.
func (c *Client) fetchCommitsCount(ctx context.Context, owner, name string) int {
	_, resp, err := c.gh.Repositories.ListCommits(ctx, owner, name, &gh.CommitsListOptions{
		ListOptions: gh.ListOptions{PerPage: 1},
	})
	if err != nil {
		return 0
	}
	return resp.LastPage
}

// buildTechStack unions languages with capitalized topics, deduplicated,
// preserving language order first.
func buildTechStack(languages, topics []string) []string {
	seen := make(map[string]bool)
	stack := make([]string, 0, len(languages)+len(topics))
	for _, lang := range languages {
		if !seen[lang] {
			seen[lang] = true
			stack = append(stack, lang)
		}
	}
	for _, topic := range topics {
		capitalized := capitalize(topic)
		if capitalized != "" && !seen[capitalized] {
			seen[capitalized] = true
			stack = append(stack, capitalized)
		}
	}
	return stack
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func defaultBranch(repo *gh.Repository) string {
	if branch := repo.GetDefaultBranch(); branch != "" {
		return branch
	}
	return "main"
}

func ownerType(repo *gh.Repository) string {
	if t := repo.GetOwner().GetType(); t != "" {
		return t
	}
	return "User"
}

func timestampPtr(ts gh.Timestamp) *time.Time {
	if ts.IsZero() {
		return nil
	}
	t := ts.Time
	return &t
}

// mapAPIError translates go-github errors into the importer's taxonomy.
func mapAPIError(err error) error {
	var rateErr *gh.RateLimitError
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		return ErrRateLimited
	}

	var apiErr *gh.ErrorResponse
	if errors.As(err, &apiErr) && apiErr.Response != nil {
		switch apiErr.Response.StatusCode {
		case http.StatusNotFound:
			return ErrRepoNotFound
		case http.StatusForbidden:
			return ErrRateLimited
		case http.StatusUnauthorized:
			return ErrAuthFailed
		}
	}

	return fmt.Errorf("failed to fetch from GitHub: %w", err)
}
