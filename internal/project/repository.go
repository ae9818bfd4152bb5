// AngelaMos | 2026
// repository.go

package project

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

var (
	ErrSlugTaken      = errors.New("project slug already exists")
	ErrProjectIDTaken = errors.New("project id already exists")
)

type Repository interface {
	Create(ctx context.Context, p *Project) error
	GetBySlug(ctx context.Context, slug string) (*Project, error)
	GetByID(ctx context.Context, id string) (*Project, error)
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, slug string) error
	List(ctx context.Context, params ListParams) ([]Project, int, error)
	Count(ctx context.Context) (int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const projectColumns = `id, project_id, business_name_slug, project_name,
		       project_description, project_type, project_features,
		       project_images, slug, hero_image, project_detail,
		       project_document, created_at, updated_at`

func (r *repository) Create(ctx context.Context, p *Project) error {
	query := `
		INSERT INTO projects (
			id, project_id, business_name_slug, project_name,
			project_description, project_type, project_features,
			project_images, slug, hero_image, project_detail, project_document
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, p, query,
		p.ID,
		p.ProjectID,
		p.BusinessSlug,
		p.Name,
		p.Description,
		p.Type,
		p.Features,
		p.Images,
		p.Slug,
		p.HeroImage,
		p.Detail,
		p.Documents,
	)
	if err != nil {
		return mapUniqueViolation("create project", err)
	}

	return nil
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Project, error) {
	return r.getOne(ctx, "get project", "slug", slug)
}

func (r *repository) GetByID(ctx context.Context, id string) (*Project, error) {
	return r.getOne(ctx, "get project by id", "id", id)
}

func (r *repository) getOne(
	ctx context.Context,
	op, column, value string,
) (*Project, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM projects WHERE %s = $1`,
		projectColumns, column,
	)

	var p Project
	if err := r.db.GetContext(ctx, &p, query, value); err != nil {
		return nil, core.StoreError(op, err)
	}

	return &p, nil
}

func (r *repository) Update(ctx context.Context, p *Project) error {
	query := `
		UPDATE projects
		SET business_name_slug = $2, project_name = $3,
		    project_description = $4, project_type = $5,
		    project_features = $6, project_images = $7, slug = $8,
		    hero_image = $9, project_detail = $10, project_document = $11,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &p.UpdatedAt, query,
		p.ID,
		p.BusinessSlug,
		p.Name,
		p.Description,
		p.Type,
		p.Features,
		p.Images,
		p.Slug,
		p.HeroImage,
		p.Detail,
		p.Documents,
	)
	if err != nil {
		return mapUniqueViolation("update project", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, slug string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM projects WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("delete project: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) List(
	ctx context.Context,
	params ListParams,
) ([]Project, int, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.BusinessSlug != "" {
		conditions = append(conditions,
			fmt.Sprintf("business_name_slug = $%d", argIdx))
		args = append(args, params.BusinessSlug)
		argIdx++
	}

	if params.Type != "" {
		conditions = append(conditions, fmt.Sprintf("project_type = $%d", argIdx))
		args = append(args, params.Type)
		argIdx++
	}

	whereClause := "TRUE"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM projects WHERE " + whereClause
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count projects: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM projects
		WHERE %s
		ORDER BY created_at DESC`,
		projectColumns, whereClause)

	if params.Paginated() {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
		args = append(args, params.Limit, params.Offset())
	}

	projects := []Project{}
	if err := r.db.SelectContext(ctx, &projects, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list projects: %w", err)
	}

	return projects, total, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM projects`); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return n, nil
}

func mapUniqueViolation(op string, err error) error {
	switch core.DuplicateConstraint(err) {
	case "projects_slug_key":
		return fmt.Errorf("%s: %w", op, ErrSlugTaken)
	case "projects_project_id_key":
		return fmt.Errorf("%s: %w", op, ErrProjectIDTaken)
	}
	return core.StoreError(op, err)
}
