package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-portfolio-backend/internal/domain"
)

type projectRepo struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) domain.ProjectRepository {
	return &projectRepo{db: db}
}

const projectColumns = `id, title, description, tech_stack, images, demo_video_url, demo_videos,
	github_url, live_url, source, featured, display_order, github_meta, created_at, updated_at`

func (r *projectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects
		(title, description, tech_stack, images, demo_video_url, demo_videos,
		 github_url, live_url, source, featured, display_order, github_meta, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	RETURNING id`
	return r.db.QueryRow(ctx, query,
		p.Title, p.Description, emptyIfNil(p.TechStack), emptyIfNil(p.Images),
		p.DemoVideoURL, emptyIfNil(p.DemoVideos), p.GithubURL, p.LiveURL,
		p.Source, p.Featured, p.Order, p.GithubMeta, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
}

func (r *projectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	p, err := scanProject(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *projectRepo) Fetch(ctx context.Context, featuredOnly bool) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	if featuredOnly {
		query += ` WHERE featured = true`
	}
	query += ` ORDER BY display_order ASC, created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

func (r *projectRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM projects`).Scan(&count)
	return count, err
}

func (r *projectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET
		title = $2,
		description = $3,
		tech_stack = $4,
		images = $5,
		demo_video_url = $6,
		demo_videos = $7,
		github_url = $8,
		live_url = $9,
		source = $10,
		featured = $11,
		display_order = $12,
		github_meta = $13,
		updated_at = $14
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		p.ID, p.Title, p.Description, emptyIfNil(p.TechStack), emptyIfNil(p.Images),
		p.DemoVideoURL, emptyIfNil(p.DemoVideos), p.GithubURL, p.LiveURL,
		p.Source, p.Featured, p.Order, p.GithubMeta, p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *projectRepo) UpdateOrder(ctx context.Context, id string, order int) error {
	query := `UPDATE projects SET display_order = $2, updated_at = now() WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, order)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *projectRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.TechStack, &p.Images,
		&p.DemoVideoURL, &p.DemoVideos, &p.GithubURL, &p.LiveURL,
		&p.Source, &p.Featured, &p.Order, &p.GithubMeta, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// emptyIfNil keeps NOT NULL array columns happy when a caller leaves a
// slice unset.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
