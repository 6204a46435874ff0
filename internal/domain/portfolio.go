package domain

import (
	"context"
	"time"
)

// Skill categories accepted by the dashboard
const (
	SkillCategoryFrontend = "Frontend"
	SkillCategoryBackend  = "Backend"
	SkillCategoryDatabase = "Database"
	SkillCategoryDevOps   = "DevOps"
	SkillCategoryMobile   = "Mobile"
	SkillCategoryOther    = "Other"
)

// ValidSkillCategory reports whether category is one of the known categories.
func ValidSkillCategory(category string) bool {
	switch category {
	case SkillCategoryFrontend, SkillCategoryBackend, SkillCategoryDatabase,
		SkillCategoryDevOps, SkillCategoryMobile, SkillCategoryOther:
		return true
	}
	return false
}

type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type SocialLinks struct {
	Github   string `json:"github"`
	Linkedin string `json:"linkedin"`
	Twitter  string `json:"twitter"`
	Website  string `json:"website"`
}

// Portfolio is a singleton document: exactly one row exists after first read.
type Portfolio struct {
	ID           int64       `json:"-"`
	Name         string      `json:"name"`
	Title        string      `json:"title"`
	Bio          string      `json:"bio"`
	ProfileImage string      `json:"profileImage"`
	Email        string      `json:"email"`
	Location     string      `json:"location"`
	SocialLinks  SocialLinks `json:"socialLinks"`
	Skills       []Skill     `json:"skills"`
	ResumeURL    string      `json:"resumeUrl"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// SocialLinksPatch merges field-by-field; nil fields keep the stored value.
type SocialLinksPatch struct {
	Github   *string `json:"github"`
	Linkedin *string `json:"linkedin"`
	Twitter  *string `json:"twitter"`
	Website  *string `json:"website"`
}

// PortfolioPatch carries sparse-patch semantics: nil means "leave untouched",
// a non-nil zero value means "clear the field".
type PortfolioPatch struct {
	Name         *string           `json:"name"`
	Title        *string           `json:"title"`
	Bio          *string           `json:"bio"`
	ProfileImage *string           `json:"profileImage"`
	Email        *string           `json:"email"`
	Location     *string           `json:"location"`
	SocialLinks  *SocialLinksPatch `json:"socialLinks"`
	Skills       *[]Skill          `json:"skills"`
	ResumeURL    *string           `json:"resumeUrl"`
}

type PortfolioRepository interface {
	// GetOrCreate returns the singleton, inserting the placeholder document on
	// first access. The storage layer enforces uniqueness on a constant key.
	GetOrCreate(ctx context.Context) (*Portfolio, error)
	Update(ctx context.Context, p *Portfolio) error
}

type PortfolioUsecase interface {
	GetPortfolio(ctx context.Context) (*Portfolio, error)
	UpdatePortfolio(ctx context.Context, patch PortfolioPatch) (*Portfolio, error)
	AddSkill(ctx context.Context, name, category string) ([]Skill, error)
	RemoveSkill(ctx context.Context, skillID string) ([]Skill, error)
}
