package domain

import (
	"context"
	"time"
)

// RepoImport is the advisory payload produced by the GitHub importer. The
// owner reviews and may edit it before persisting; importing never writes to
// the store.
type RepoImport struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	TechStack   []string   `json:"techStack"`
	GithubURL   string     `json:"githubUrl"`
	LiveURL     string     `json:"liveUrl"`
	Source      string     `json:"source"`
	Readme      string     `json:"readme,omitempty"`
	GithubMeta  GithubMeta `json:"githubMeta"`
}

type RepoSummary struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Stars       int       `json:"stars"`
	Language    string    `json:"language"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ImportUsecase interface {
	ImportRepo(ctx context.Context, githubURL string) (*RepoImport, error)
	ListUserRepos(ctx context.Context, username, sort string, perPage int) ([]RepoSummary, error)
}

type RepoImporter interface {
	// FetchRepo resolves a free-text GitHub URL/shorthand and aggregates the
	// repository's metadata into an importable project payload.
	FetchRepo(ctx context.Context, githubURL string) (*RepoImport, error)
	FetchUserRepos(ctx context.Context, username, sort string, perPage int) ([]RepoSummary, error)
}
