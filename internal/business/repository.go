// AngelaMos | 2026
// repository.go

package business

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

var ErrSlugTaken = errors.New("business slug already exists")

type Repository interface {
	Create(ctx context.Context, b *Business) error
	GetBySlug(ctx context.Context, slug string) (*Business, error)
	Update(ctx context.Context, b *Business) error
	Delete(ctx context.Context, slug string) error
	List(ctx context.Context, params ListParams) ([]Business, int, error)
	Count(ctx context.Context) (int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const businessColumns = `id, slug, business_title, business_overview,
		       business_description, business_tagline, cta_title, cta_href,
		       business_gallery, business_testimonials, project_types,
		       project_details, hero_image, featured_image, business_stats,
		       call_to_action_section, created_at, updated_at`

func (r *repository) Create(ctx context.Context, b *Business) error {
	query := `
		INSERT INTO businesses (
			id, slug, business_title, business_overview, business_description,
			business_tagline, cta_title, cta_href, business_gallery,
			business_testimonials, project_types, project_details, hero_image,
			featured_image, business_stats, call_to_action_section
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, b, query,
		b.ID,
		b.Slug,
		b.Title,
		b.Overview,
		b.Description,
		b.Tagline,
		b.CTATitle,
		b.CTAHref,
		b.Gallery,
		b.Testimonials,
		b.ProjectTypes,
		b.ProjectDetails,
		b.HeroImage,
		b.FeaturedImage,
		b.Stats,
		b.CallToAction,
	)
	if err != nil {
		return mapUniqueViolation("create business", err)
	}

	return nil
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE slug = $1`

	var b Business
	if err := r.db.GetContext(ctx, &b, query, slug); err != nil {
		return nil, core.StoreError("get business", err)
	}

	return &b, nil
}

func (r *repository) Update(ctx context.Context, b *Business) error {
	query := `
		UPDATE businesses
		SET slug = $2, business_title = $3, business_overview = $4,
		    business_description = $5, business_tagline = $6, cta_title = $7,
		    cta_href = $8, business_gallery = $9, business_testimonials = $10,
		    project_types = $11, project_details = $12, hero_image = $13,
		    featured_image = $14, business_stats = $15,
		    call_to_action_section = $16, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &b.UpdatedAt, query,
		b.ID,
		b.Slug,
		b.Title,
		b.Overview,
		b.Description,
		b.Tagline,
		b.CTATitle,
		b.CTAHref,
		b.Gallery,
		b.Testimonials,
		b.ProjectTypes,
		b.ProjectDetails,
		b.HeroImage,
		b.FeaturedImage,
		b.Stats,
		b.CallToAction,
	)
	if err != nil {
		return mapUniqueViolation("update business", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, slug string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM businesses WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("delete business: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete business: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("delete business: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) List(
	ctx context.Context,
	params ListParams,
) ([]Business, int, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.ProjectType != "" {
		conditions = append(conditions,
			fmt.Sprintf("project_types @> jsonb_build_array($%d::text)", argIdx))
		args = append(args, params.ProjectType)
		argIdx++
	}

	whereClause := "TRUE"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM businesses WHERE " + whereClause
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count businesses: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM businesses
		WHERE %s
		ORDER BY created_at DESC`,
		businessColumns, whereClause)

	if params.Paginated() {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
		args = append(args, params.Limit, params.Offset())
	}

	businesses := []Business{}
	if err := r.db.SelectContext(ctx, &businesses, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list businesses: %w", err)
	}

	return businesses, total, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM businesses`); err != nil {
		return 0, fmt.Errorf("count businesses: %w", err)
	}
	return n, nil
}

func mapUniqueViolation(op string, err error) error {
	if core.DuplicateConstraint(err) == "businesses_slug_key" {
		return fmt.Errorf("%s: %w", op, ErrSlugTaken)
	}
	return core.StoreError(op, err)
}
