package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Project sources
const (
	SourceManual = "manual"
	SourceGithub = "github"
)

type GithubOwner struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatarUrl"`
	Type      string `json:"type"`
}

// GithubMeta is the normalized snapshot of a repository's public statistics
// attached to an imported project. Fixed field set; no free-form keys.
type GithubMeta struct {
	Stars             int         `json:"stars"`
	Forks             int         `json:"forks"`
	Watchers          int         `json:"watchers"`
	OpenIssues        int         `json:"openIssues"`
	Language          string      `json:"language"`
	Topics            []string    `json:"topics"`
	License           string      `json:"license"`
	Size              int         `json:"size"`
	DefaultBranch     string      `json:"defaultBranch"`
	IsPrivate         bool        `json:"isPrivate"`
	IsArchived        bool        `json:"isArchived"`
	IsFork            bool        `json:"isFork"`
	CreatedAt         *time.Time  `json:"createdAt,omitempty"`
	UpdatedAt         *time.Time  `json:"updatedAt,omitempty"`
	PushedAt          *time.Time  `json:"pushedAt,omitempty"`
	ContributorsCount int         `json:"contributorsCount"`
	CommitsCount      int         `json:"commitsCount"`
	Owner             GithubOwner `json:"owner"`
}

type Project struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	TechStack    []string    `json:"techStack"`
	Images       []string    `json:"images"`
	DemoVideoURL string      `json:"demoVideoUrl"`
	DemoVideos   []string    `json:"demoVideos"`
	GithubURL    string      `json:"githubUrl"`
	LiveURL      string      `json:"liveUrl"`
	Source       string      `json:"source"`
	Featured     bool        `json:"featured"`
	Order        int         `json:"order"`
	GithubMeta   *GithubMeta `json:"githubMeta,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// ProjectPatch carries sparse-patch semantics: nil means "leave untouched".
// GithubMeta, when present, replaces the stored snapshot wholesale.
type ProjectPatch struct {
	Title        *string     `json:"title"`
	Description  *string     `json:"description"`
	TechStack    *[]string   `json:"techStack"`
	Images       *[]string   `json:"images"`
	DemoVideoURL *string     `json:"demoVideoUrl"`
	DemoVideos   *[]string   `json:"demoVideos"`
	GithubURL    *string     `json:"githubUrl"`
	LiveURL      *string     `json:"liveUrl"`
	Source       *string     `json:"source"`
	Featured     *bool       `json:"featured"`
	Order        *int        `json:"order"`
	GithubMeta   *GithubMeta `json:"githubMeta"`
}

type ProjectRepository interface {
	Create(ctx context.Context, project *Project) error
	GetByID(ctx context.Context, id string) (*Project, error)
	// Fetch returns projects sorted by order ascending, then recency descending.
	Fetch(ctx context.Context, featuredOnly bool) ([]Project, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, project *Project) error
	UpdateOrder(ctx context.Context, id string, order int) error
	Delete(ctx context.Context, id string) error
}

type ProjectUsecase interface {
	ListProjects(ctx context.Context, featuredOnly bool) ([]Project, error)
	GetProject(ctx context.Context, id string) (*Project, error)
	CreateProject(ctx context.Context, project *Project) error
	UpdateProject(ctx context.Context, id string, patch ProjectPatch) (*Project, error)
	DeleteProject(ctx context.Context, id string) error
	ReorderProjects(ctx context.Context, orderedIDs []string) ([]Project, error)
}
