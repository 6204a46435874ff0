package usecase

import (
	"context"
	"errors"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type achievementUsecase struct {
	achievementRepo domain.AchievementRepository
	media           domain.MediaService
}

func NewAchievementUsecase(achievementRepo domain.AchievementRepository, media domain.MediaService) domain.AchievementUsecase {
	return &achievementUsecase{
		achievementRepo: achievementRepo,
		media:           media,
	}
}

func (u *achievementUsecase) ListAchievements(ctx context.Context) ([]domain.Achievement, error) {
	achievements, err := u.achievementRepo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return achievements, nil
}

func (u *achievementUsecase) GetAchievement(ctx context.Context, id string) (*domain.Achievement, error) {
	achievement, err := u.achievementRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Achievement not found")
		}
		return nil, apperror.Internal(err)
	}
	return achievement, nil
}

func (u *achievementUsecase) CreateAchievement(ctx context.Context, achievement *domain.Achievement) error {
	if achievement.Title == "" {
		return apperror.BadRequest("Achievement title is required")
	}

	guard := NewRollbackGuard(u.media)
	defer guard.Cleanup(ctx)
	guard.Track(achievement.ImageURL)

	if achievement.Order <= 0 {
		count, err := u.achievementRepo.Count(ctx)
		if err != nil {
			return apperror.Internal(err)
		}
		achievement.Order = int(count) + 1
	}

	achievement.CreatedAt = time.Now()
	achievement.UpdatedAt = time.Now()

	if err := u.achievementRepo.Create(ctx, achievement); err != nil {
		return apperror.Internal(err)
	}

	guard.Commit()
	return nil
}

// UpdateAchievement applies a sparse patch. A replaced image URL is deleted
// from the media host only after the new state is saved.
func (u *achievementUsecase) UpdateAchievement(ctx context.Context, id string, patch domain.AchievementPatch) (*domain.Achievement, error) {
	achievement, err := u.achievementRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Achievement not found")
		}
		return nil, apperror.Internal(err)
	}

	var removed []string

	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, apperror.BadRequest("Achievement title is required")
		}
		achievement.Title = *patch.Title
	}
	if patch.Issuer != nil {
		achievement.Issuer = *patch.Issuer
	}
	if patch.Date != nil {
		if patch.Date.IsZero() {
			achievement.Date = nil
		} else {
			achievement.Date = patch.Date
		}
	}
	if patch.Description != nil {
		achievement.Description = *patch.Description
	}
	if patch.CredentialURL != nil {
		achievement.CredentialURL = *patch.CredentialURL
	}
	if patch.Order != nil {
		achievement.Order = *patch.Order
	}
	if patch.ImageURL != nil {
		if prev := achievement.ImageURL; prev != "" && prev != *patch.ImageURL {
			removed = append(removed, prev)
		}
		achievement.ImageURL = *patch.ImageURL
	}

	achievement.UpdatedAt = time.Now()
	if err := u.achievementRepo.Update(ctx, achievement); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Achievement not found")
		}
		return nil, apperror.Internal(err)
	}

	if len(removed) > 0 {
		u.media.DeleteByURL(ctx, removed)
	}

	return achievement, nil
}

func (u *achievementUsecase) DeleteAchievement(ctx context.Context, id string) error {
	achievement, err := u.achievementRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Achievement not found")
		}
		return apperror.Internal(err)
	}

	if err := u.achievementRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Achievement not found")
		}
		return apperror.Internal(err)
	}

	if achievement.ImageURL != "" {
		u.media.DeleteByURL(ctx, []string{achievement.ImageURL})
	}
	return nil
}
