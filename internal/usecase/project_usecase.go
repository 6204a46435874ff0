package usecase

import (
	"context"
	"errors"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/validation"
)

type projectUsecase struct {
	projectRepo domain.ProjectRepository
	media       domain.MediaService
}

func NewProjectUsecase(projectRepo domain.ProjectRepository, media domain.MediaService) domain.ProjectUsecase {
	return &projectUsecase{
		projectRepo: projectRepo,
		media:       media,
	}
}

func (u *projectUsecase) ListProjects(ctx context.Context, featuredOnly bool) ([]domain.Project, error) {
	projects, err := u.projectRepo.Fetch(ctx, featuredOnly)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return projects, nil
}

func (u *projectUsecase) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	project, err := u.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Project not found")
		}
		return nil, apperror.Internal(err)
	}
	return project, nil
}

// CreateProject persists a new project. Any hosted image referenced by the
// request is tracked and deleted again if persistence fails, so a rejected
// create never leaves orphaned uploads behind.
func (u *projectUsecase) CreateProject(ctx context.Context, project *domain.Project) error {
	if project.Title == "" {
		return apperror.BadRequest("Project title is required")
	}
	if project.Source == "" {
		project.Source = domain.SourceManual
	}
	if project.Source != domain.SourceManual && project.Source != domain.SourceGithub {
		return apperror.BadRequest("Source must be 'manual' or 'github'")
	}

	guard := NewRollbackGuard(u.media)
	defer guard.Cleanup(ctx)
	for _, img := range project.Images {
		guard.Track(img)
	}

	// Keep demoVideoUrl and demoVideos consistent: the legacy single-video
	// field is a compatibility mirror of the list's first entry.
	videos := validation.NormalizeStringSlice(project.DemoVideos)
	if len(videos) == 0 && project.DemoVideoURL != "" {
		videos = append(videos, project.DemoVideoURL)
	}
	project.DemoVideos = videos
	if len(videos) > 0 {
		project.DemoVideoURL = videos[0]
	}

	if project.Order <= 0 {
		count, err := u.projectRepo.Count(ctx)
		if err != nil {
			return apperror.Internal(err)
		}
		project.Order = int(count) + 1
	}

	project.CreatedAt = time.Now()
	project.UpdatedAt = time.Now()

	if err := u.projectRepo.Create(ctx, project); err != nil {
		return apperror.Internal(err)
	}

	guard.Commit()
	return nil
}

// UpdateProject applies a sparse patch. Images dropped from the list are
// deleted from the media host only after the new state is saved; retained
// URLs are never deleted. A githubMeta patch replaces the snapshot wholesale.
func (u *projectUsecase) UpdateProject(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error) {
	project, err := u.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Project not found")
		}
		return nil, apperror.Internal(err)
	}

	var removed []string

	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, apperror.BadRequest("Project title is required")
		}
		project.Title = *patch.Title
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}
	if patch.TechStack != nil {
		project.TechStack = *patch.TechStack
	}
	if patch.Images != nil {
		removed = removedURLs(project.Images, *patch.Images)
		project.Images = *patch.Images
	}
	if patch.DemoVideos != nil {
		videos := validation.NormalizeStringSlice(*patch.DemoVideos)
		project.DemoVideos = videos
		if len(videos) > 0 {
			project.DemoVideoURL = videos[0]
		}
	}
	if patch.DemoVideoURL != nil {
		project.DemoVideoURL = *patch.DemoVideoURL
		if len(project.DemoVideos) == 0 && *patch.DemoVideoURL != "" {
			project.DemoVideos = []string{*patch.DemoVideoURL}
		}
	}
	if patch.GithubURL != nil {
		project.GithubURL = *patch.GithubURL
	}
	if patch.LiveURL != nil {
		project.LiveURL = *patch.LiveURL
	}
	if patch.Source != nil {
		if *patch.Source != domain.SourceManual && *patch.Source != domain.SourceGithub {
			return nil, apperror.BadRequest("Source must be 'manual' or 'github'")
		}
		project.Source = *patch.Source
	}
	if patch.Featured != nil {
		project.Featured = *patch.Featured
	}
	if patch.Order != nil {
		project.Order = *patch.Order
	}
	if patch.GithubMeta != nil {
		project.GithubMeta = patch.GithubMeta
	}

	project.UpdatedAt = time.Now()
	if err := u.projectRepo.Update(ctx, project); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Project not found")
		}
		return nil, apperror.Internal(err)
	}

	if len(removed) > 0 {
		u.media.DeleteByURL(ctx, removed)
	}

	return project, nil
}

func (u *projectUsecase) DeleteProject(ctx context.Context, id string) error {
	project, err := u.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Project not found")
		}
		return apperror.Internal(err)
	}

	if err := u.projectRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Project not found")
		}
		return apperror.Internal(err)
	}

	if len(project.Images) > 0 {
		u.media.DeleteByURL(ctx, project.Images)
	}
	return nil
}

// ReorderProjects renumbers projects to match the given sequence. Updates are
// independent; unknown IDs are skipped, and a mid-sequence failure leaves a
// partially renumbered but still well-formed ordering.
func (u *projectUsecase) ReorderProjects(ctx context.Context, orderedIDs []string) ([]domain.Project, error) {
	if len(orderedIDs) == 0 {
		return nil, apperror.BadRequest("orderedIds array is required")
	}

	for i, id := range orderedIDs {
		if err := u.projectRepo.UpdateOrder(ctx, id, i+1); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, apperror.Internal(err)
		}
	}

	projects, err := u.projectRepo.Fetch(ctx, false)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return projects, nil
}

// removedURLs computes (old minus new) by value. Duplicates collapse, so the
// result behaves as a set.
func removedURLs(old, updated []string) []string {
	keep := make(map[string]bool, len(updated))
	for _, u := range updated {
		keep[u] = true
	}
	seen := make(map[string]bool, len(old))
	var removed []string
	for _, u := range old {
		if u == "" || keep[u] || seen[u] {
			continue
		}
		seen[u] = true
		removed = append(removed, u)
	}
	return removed
}
