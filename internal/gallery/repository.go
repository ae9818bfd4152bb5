// AngelaMos | 2026
// repository.go

package gallery

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

var ErrGalleryIDTaken = errors.New("gallery id already exists")

type Repository interface {
	Create(ctx context.Context, img *Image) error
	GetByID(ctx context.Context, id string) (*Image, error)
	Update(ctx context.Context, img *Image) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params ListParams) ([]Image, int, error)
	Count(ctx context.Context) (int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const imageColumns = `id, gallery_id, image, title, tag, description, alt_text,
		       category, width, height, file_size, format, is_active,
		       created_at, updated_at`

func (r *repository) Create(ctx context.Context, img *Image) error {
	query := `
		INSERT INTO gallery_images (
			id, gallery_id, image, title, tag, description, alt_text,
			category, width, height, file_size, format, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, img, query,
		img.ID,
		img.GalleryID,
		img.Image,
		img.Title,
		img.Tag,
		img.Description,
		img.AltText,
		img.Category,
		img.Width,
		img.Height,
		img.FileSize,
		img.Format,
		img.IsActive,
	)
	if err != nil {
		if core.DuplicateConstraint(err) == "gallery_images_gallery_id_key" {
			return fmt.Errorf("create gallery image: %w", ErrGalleryIDTaken)
		}
		return core.StoreError("create gallery image", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Image, error) {
	query := `SELECT ` + imageColumns + ` FROM gallery_images WHERE id = $1`

	var img Image
	if err := r.db.GetContext(ctx, &img, query, id); err != nil {
		return nil, core.StoreError("get gallery image", err)
	}

	return &img, nil
}

func (r *repository) Update(ctx context.Context, img *Image) error {
	query := `
		UPDATE gallery_images
		SET image = $2, title = $3, tag = $4, description = $5, alt_text = $6,
		    category = $7, width = $8, height = $9, file_size = $10,
		    format = $11, is_active = $12, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &img.UpdatedAt, query,
		img.ID,
		img.Image,
		img.Title,
		img.Tag,
		img.Description,
		img.AltText,
		img.Category,
		img.Width,
		img.Height,
		img.FileSize,
		img.Format,
		img.IsActive,
	)
	if err != nil {
		return core.StoreError("update gallery image", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM gallery_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete gallery image: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete gallery image: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("delete gallery image: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) List(
	ctx context.Context,
	params ListParams,
) ([]Image, int, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.Tag != "" {
		conditions = append(conditions, fmt.Sprintf("tag = $%d", argIdx))
		args = append(args, params.Tag)
		argIdx++
	}

	if params.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argIdx))
		args = append(args, params.Category)
		argIdx++
	}

	if params.IsActive != nil {
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *params.IsActive)
		argIdx++
	}

	whereClause := "TRUE"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM gallery_images WHERE " + whereClause
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count gallery images: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM gallery_images
		WHERE %s
		ORDER BY created_at DESC`,
		imageColumns, whereClause)

	if params.Paginated() {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
		args = append(args, params.Limit, params.Offset())
	}

	images := []Image{}
	if err := r.db.SelectContext(ctx, &images, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list gallery images: %w", err)
	}

	return images, total, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM gallery_images`); err != nil {
		return 0, fmt.Errorf("count gallery images: %w", err)
	}
	return n, nil
}
