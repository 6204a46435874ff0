package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type portfolioUsecase struct {
	portfolioRepo domain.PortfolioRepository
	media         domain.MediaService
}

func NewPortfolioUsecase(portfolioRepo domain.PortfolioRepository, media domain.MediaService) domain.PortfolioUsecase {
	return &portfolioUsecase{
		portfolioRepo: portfolioRepo,
		media:         media,
	}
}

func (u *portfolioUsecase) GetPortfolio(ctx context.Context) (*domain.Portfolio, error) {
	portfolio, err := u.portfolioRepo.GetOrCreate(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return portfolio, nil
}

// UpdatePortfolio applies a sparse patch: nil fields stay untouched, non-nil
// zero values clear. Replaced profile image / resume URLs are deleted from
// the media host only after the new state is durably saved.
func (u *portfolioUsecase) UpdatePortfolio(ctx context.Context, patch domain.PortfolioPatch) (*domain.Portfolio, error) {
	portfolio, err := u.portfolioRepo.GetOrCreate(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	var removed []string

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, apperror.BadRequest("Name is required")
		}
		portfolio.Name = *patch.Name
	}
	if patch.Title != nil {
		portfolio.Title = *patch.Title
	}
	if patch.Bio != nil {
		portfolio.Bio = *patch.Bio
	}
	if patch.Email != nil {
		portfolio.Email = strings.ToLower(strings.TrimSpace(*patch.Email))
	}
	if patch.Location != nil {
		portfolio.Location = *patch.Location
	}
	if patch.SocialLinks != nil {
		mergeSocialLinks(&portfolio.SocialLinks, patch.SocialLinks)
	}
	if patch.Skills != nil {
		portfolio.Skills = assignSkillIDs(*patch.Skills)
	}
	if patch.ProfileImage != nil {
		if prev := portfolio.ProfileImage; prev != "" && prev != *patch.ProfileImage {
			removed = append(removed, prev)
		}
		portfolio.ProfileImage = *patch.ProfileImage
	}
	if patch.ResumeURL != nil {
		if prev := portfolio.ResumeURL; prev != "" && prev != *patch.ResumeURL {
			removed = append(removed, prev)
		}
		portfolio.ResumeURL = *patch.ResumeURL
	}

	portfolio.UpdatedAt = time.Now()
	if err := u.portfolioRepo.Update(ctx, portfolio); err != nil {
		return nil, apperror.Internal(err)
	}

	if len(removed) > 0 {
		u.media.DeleteByURL(ctx, removed)
	}

	return portfolio, nil
}

func (u *portfolioUsecase) AddSkill(ctx context.Context, name, category string) ([]domain.Skill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.BadRequest("Skill name is required")
	}
	if category == "" {
		category = domain.SkillCategoryOther
	}
	if !domain.ValidSkillCategory(category) {
		return nil, apperror.BadRequest("Invalid skill category")
	}

	portfolio, err := u.portfolioRepo.GetOrCreate(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	// Uniqueness is case-insensitive on the name only.
	for _, skill := range portfolio.Skills {
		if strings.EqualFold(skill.Name, name) {
			return nil, apperror.BadRequest("Skill already exists")
		}
	}

	portfolio.Skills = append(portfolio.Skills, domain.Skill{
		ID:       uuid.NewString(),
		Name:     name,
		Category: category,
	})
	portfolio.UpdatedAt = time.Now()

	if err := u.portfolioRepo.Update(ctx, portfolio); err != nil {
		return nil, apperror.Internal(err)
	}
	return portfolio.Skills, nil
}

func (u *portfolioUsecase) RemoveSkill(ctx context.Context, skillID string) ([]domain.Skill, error) {
	portfolio, err := u.portfolioRepo.GetOrCreate(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	kept := make([]domain.Skill, 0, len(portfolio.Skills))
	for _, skill := range portfolio.Skills {
		if skill.ID != skillID {
			kept = append(kept, skill)
		}
	}
	portfolio.Skills = kept
	portfolio.UpdatedAt = time.Now()

	if err := u.portfolioRepo.Update(ctx, portfolio); err != nil {
		return nil, apperror.Internal(err)
	}
	return portfolio.Skills, nil
}

func mergeSocialLinks(links *domain.SocialLinks, patch *domain.SocialLinksPatch) {
	if patch.Github != nil {
		links.Github = *patch.Github
	}
	if patch.Linkedin != nil {
		links.Linkedin = *patch.Linkedin
	}
	if patch.Twitter != nil {
		links.Twitter = *patch.Twitter
	}
	if patch.Website != nil {
		links.Website = *patch.Website
	}
}

func assignSkillIDs(skills []domain.Skill) []domain.Skill {
	out := make([]domain.Skill, 0, len(skills))
	for _, skill := range skills {
		if skill.ID == "" {
			skill.ID = uuid.NewString()
		}
		if skill.Category == "" || !domain.ValidSkillCategory(skill.Category) {
			skill.Category = domain.SkillCategoryOther
		}
		out = append(out, skill)
	}
	return out
}
