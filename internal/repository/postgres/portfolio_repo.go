package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"go-portfolio-backend/internal/domain"
)

// Placeholder values for the lazily created singleton.
const (
	defaultName  = "Your Name"
	defaultTitle = "Full Stack Developer"
	defaultBio   = "Welcome to my portfolio! Update this section to tell visitors about yourself."
)

type portfolioRepo struct {
	db *pgxpool.Pool
}

func NewPortfolioRepository(db *pgxpool.Pool) domain.PortfolioRepository {
	return &portfolioRepo{db: db}
}

// GetOrCreate returns the singleton row, inserting the placeholder document
// on first access. The constant-key primary key makes concurrent first reads
// collapse into a single row (ON CONFLICT DO NOTHING).
func (r *portfolioRepo) GetOrCreate(ctx context.Context) (*domain.Portfolio, error) {
	insert := `INSERT INTO portfolio (id, name, title, bio, skills)
               VALUES (1, $1, $2, $3, '[]'::jsonb)
               ON CONFLICT (id) DO NOTHING`
	if _, err := r.db.Exec(ctx, insert, defaultName, defaultTitle, defaultBio); err != nil {
		return nil, err
	}

	query := `SELECT id, name, title, bio, profile_image, email, location, social_links, skills, resume_url, created_at, updated_at
              FROM portfolio WHERE id = 1`
	var p domain.Portfolio
	err := r.db.QueryRow(ctx, query).Scan(
		&p.ID, &p.Name, &p.Title, &p.Bio, &p.ProfileImage, &p.Email, &p.Location,
		&p.SocialLinks, &p.Skills, &p.ResumeURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.Skills == nil {
		p.Skills = []domain.Skill{}
	}
	return &p, nil
}

func (r *portfolioRepo) Update(ctx context.Context, p *domain.Portfolio) error {
	query := `UPDATE portfolio SET
		name = $1,
		title = $2,
		bio = $3,
		profile_image = $4,
		email = $5,
		location = $6,
		social_links = $7,
		skills = $8,
		resume_url = $9,
		updated_at = $10
	WHERE id = 1`
	skills := p.Skills
	if skills == nil {
		skills = []domain.Skill{}
	}
	result, err := r.db.Exec(ctx, query,
		p.Name, p.Title, p.Bio, p.ProfileImage, p.Email, p.Location,
		p.SocialLinks, skills, p.ResumeURL, p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
