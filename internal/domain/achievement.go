package domain

import (
	"context"
	"time"
)

type Achievement struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Issuer        string     `json:"issuer"`
	Date          *time.Time `json:"date,omitempty"`
	Description   string     `json:"description"`
	CredentialURL string     `json:"credentialUrl"`
	ImageURL      string     `json:"imageUrl"`
	Order         int        `json:"order"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// AchievementPatch carries sparse-patch semantics: nil means "leave untouched".
type AchievementPatch struct {
	Title         *string    `json:"title"`
	Issuer        *string    `json:"issuer"`
	Date          *time.Time `json:"date"`
	Description   *string    `json:"description"`
	CredentialURL *string    `json:"credentialUrl"`
	ImageURL      *string    `json:"imageUrl"`
	Order         *int       `json:"order"`
}

type AchievementRepository interface {
	Create(ctx context.Context, achievement *Achievement) error
	GetByID(ctx context.Context, id string) (*Achievement, error)
	// Fetch returns achievements sorted by order ascending, then date and
	// creation time descending.
	Fetch(ctx context.Context) ([]Achievement, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, achievement *Achievement) error
	Delete(ctx context.Context, id string) error
}

type AchievementUsecase interface {
	ListAchievements(ctx context.Context) ([]Achievement, error)
	GetAchievement(ctx context.Context, id string) (*Achievement, error)
	CreateAchievement(ctx context.Context, achievement *Achievement) error
	UpdateAchievement(ctx context.Context, id string, patch AchievementPatch) (*Achievement, error)
	DeleteAchievement(ctx context.Context, id string) error
}
