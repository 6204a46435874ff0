package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-portfolio-backend/internal/domain"
)

type achievementRepo struct {
	db *pgxpool.Pool
}

func NewAchievementRepository(db *pgxpool.Pool) domain.AchievementRepository {
	return &achievementRepo{db: db}
}

const achievementColumns = `id, title, issuer, date, description, image_url, credential_url,
	display_order, created_at, updated_at`

func (r *achievementRepo) Create(ctx context.Context, a *domain.Achievement) error {
	query := `INSERT INTO achievements
		(title, issuer, date, description, image_url, credential_url, display_order, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id`
	return r.db.QueryRow(ctx, query,
		a.Title, a.Issuer, a.Date, a.Description, a.ImageURL,
		a.CredentialURL, a.Order, a.CreatedAt, a.UpdatedAt,
	).Scan(&a.ID)
}

func (r *achievementRepo) GetByID(ctx context.Context, id string) (*domain.Achievement, error) {
	query := `SELECT ` + achievementColumns + ` FROM achievements WHERE id = $1`
	a, err := scanAchievement(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *achievementRepo) Fetch(ctx context.Context) ([]domain.Achievement, error) {
	query := `SELECT ` + achievementColumns + ` FROM achievements
	ORDER BY display_order ASC, date DESC NULLS LAST, created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	achievements := []domain.Achievement{}
	for rows.Next() {
		a, err := scanAchievement(rows)
		if err != nil {
			return nil, err
		}
		achievements = append(achievements, *a)
	}
	return achievements, rows.Err()
}

func (r *achievementRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM achievements`).Scan(&count)
	return count, err
}

func (r *achievementRepo) Update(ctx context.Context, a *domain.Achievement) error {
	query := `UPDATE achievements SET
		title = $2,
		issuer = $3,
		date = $4,
		description = $5,
		image_url = $6,
		credential_url = $7,
		display_order = $8,
		updated_at = $9
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		a.ID, a.Title, a.Issuer, a.Date, a.Description,
		a.ImageURL, a.CredentialURL, a.Order, a.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *achievementRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM achievements WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanAchievement(row pgx.Row) (*domain.Achievement, error) {
	var a domain.Achievement
	err := row.Scan(
		&a.ID, &a.Title, &a.Issuer, &a.Date, &a.Description,
		&a.ImageURL, &a.CredentialURL, &a.Order, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
