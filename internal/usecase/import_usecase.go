package usecase

import (
	"context"
	"errors"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/ghimport"
)

type importUsecase struct {
	importer domain.RepoImporter
}

func NewImportUsecase(importer domain.RepoImporter) domain.ImportUsecase {
	return &importUsecase{importer: importer}
}

// ImportRepo fetches a normalized import payload for the owner to review.
// Nothing is persisted here. Client-correctable provider failures map to
// 400; unexpected ones to 500.
func (u *importUsecase) ImportRepo(ctx context.Context, githubURL string) (*domain.RepoImport, error) {
	if githubURL == "" {
		return nil, apperror.BadRequest("GitHub URL is required")
	}

	payload, err := u.importer.FetchRepo(ctx, githubURL)
	if err != nil {
		return nil, mapImportError(err)
	}
	return payload, nil
}

func (u *importUsecase) ListUserRepos(ctx context.Context, username, sort string, perPage int) ([]domain.RepoSummary, error) {
	if username == "" {
		return nil, apperror.BadRequest("GitHub username is required")
	}

	repos, err := u.importer.FetchUserRepos(ctx, username, sort, perPage)
	if err != nil {
		return nil, mapImportError(err)
	}
	return repos, nil
}

func mapImportError(err error) error {
	switch {
	case errors.Is(err, ghimport.ErrInvalidURL):
		return apperror.BadRequest("Invalid GitHub URL format")
	case errors.Is(err, ghimport.ErrRepoNotFound):
		return apperror.BadRequest("Repository not found. Make sure it exists and is public.")
	case errors.Is(err, ghimport.ErrRateLimited):
		return apperror.BadRequest("GitHub API rate limit exceeded. Try again later.")
	case errors.Is(err, ghimport.ErrAuthFailed):
		return apperror.BadRequest("GitHub authentication failed. Please check your GitHub token in the server .env file.")
	case errors.Is(err, ghimport.ErrUserNotFound):
		return apperror.BadRequest("User not found.")
	default:
		return apperror.Internal(err)
	}
}
