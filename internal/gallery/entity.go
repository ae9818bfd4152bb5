// AngelaMos | 2026
// entity.go

package gallery

import (
	"time"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

type Image struct {
	ID          string                 `db:"id"          json:"id"`
	GalleryID   string                 `db:"gallery_id"  json:"gallery_id"`
	Image       core.JSONB[core.Asset] `db:"image"       json:"image"`
	Title       string                 `db:"title"       json:"title"`
	Tag         string                 `db:"tag"         json:"tag"`
	Description string                 `db:"description" json:"description"`
	AltText     string                 `db:"alt_text"    json:"altText"`
	Category    string                 `db:"category"    json:"category"`
	Width       *int                   `db:"width"       json:"width"`
	Height      *int                   `db:"height"      json:"height"`
	FileSize    *int64                 `db:"file_size"   json:"fileSize"`
	Format      string                 `db:"format"      json:"format"`
	IsActive    bool                   `db:"is_active"   json:"isActive"`
	CreatedAt   time.Time              `db:"created_at"  json:"createdAt"`
	UpdatedAt   time.Time              `db:"updated_at"  json:"updatedAt"`
}
