// AngelaMos | 2026
// entity.go

package testimonial

import (
	"time"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

// Testimonial is a client quote, optionally tied to a project and/or a
// business by slug.
type Testimonial struct {
	ID            string                          `db:"id"             json:"id"`
	TestimonialID string                          `db:"testimonial_id" json:"testimonial_id"`
	ProjectSlug   *string                         `db:"project_slug"   json:"project_slug"`
	BusinessSlug  *string                         `db:"business_slug"  json:"business_slug"`
	Name          string                          `db:"name"           json:"name"`
	Image         core.JSONB[*core.OptionalAsset] `db:"image"          json:"image"`
	Message       string                          `db:"message"        json:"message"`
	CreatedAt     time.Time                       `db:"created_at"     json:"createdAt"`
	UpdatedAt     time.Time                       `db:"updated_at"     json:"updatedAt"`
}
