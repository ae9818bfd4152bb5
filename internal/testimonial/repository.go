// AngelaMos | 2026
// repository.go

package testimonial

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

var ErrTestimonialIDTaken = errors.New("testimonial id already exists")

type Repository interface {
	Create(ctx context.Context, t *Testimonial) error
	GetByID(ctx context.Context, id string) (*Testimonial, error)
	Update(ctx context.Context, t *Testimonial) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params ListParams) ([]Testimonial, int, error)
	Count(ctx context.Context) (int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const testimonialColumns = `id, testimonial_id, project_slug, business_slug,
		       name, image, message, created_at, updated_at`

func (r *repository) Create(ctx context.Context, t *Testimonial) error {
	query := `
		INSERT INTO testimonials (
			id, testimonial_id, project_slug, business_slug, name, image, message
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, t, query,
		t.ID,
		t.TestimonialID,
		t.ProjectSlug,
		t.BusinessSlug,
		t.Name,
		t.Image,
		t.Message,
	)
	if err != nil {
		if core.DuplicateConstraint(err) == "testimonials_testimonial_id_key" {
			return fmt.Errorf("create testimonial: %w", ErrTestimonialIDTaken)
		}
		return core.StoreError("create testimonial", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials WHERE id = $1`

	var t Testimonial
	if err := r.db.GetContext(ctx, &t, query, id); err != nil {
		return nil, core.StoreError("get testimonial", err)
	}

	return &t, nil
}

func (r *repository) Update(ctx context.Context, t *Testimonial) error {
	query := `
		UPDATE testimonials
		SET project_slug = $2, business_slug = $3, name = $4, image = $5,
		    message = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &t.UpdatedAt, query,
		t.ID,
		t.ProjectSlug,
		t.BusinessSlug,
		t.Name,
		t.Image,
		t.Message,
	)
	if err != nil {
		return core.StoreError("update testimonial", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("delete testimonial: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) List(
	ctx context.Context,
	params ListParams,
) ([]Testimonial, int, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.ProjectSlug != "" {
		conditions = append(conditions, fmt.Sprintf("project_slug = $%d", argIdx))
		args = append(args, params.ProjectSlug)
		argIdx++
	}

	if params.BusinessSlug != "" {
		conditions = append(conditions, fmt.Sprintf("business_slug = $%d", argIdx))
		args = append(args, params.BusinessSlug)
		argIdx++
	}

	whereClause := "TRUE"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM testimonials WHERE " + whereClause
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count testimonials: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM testimonials
		WHERE %s
		ORDER BY created_at DESC`,
		testimonialColumns, whereClause)

	if params.Paginated() {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
		args = append(args, params.Limit, params.Offset())
	}

	testimonials := []Testimonial{}
	if err := r.db.SelectContext(ctx, &testimonials, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list testimonials: %w", err)
	}

	return testimonials, total, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM testimonials`); err != nil {
		return 0, fmt.Errorf("count testimonials: %w", err)
	}
	return n, nil
}
