// AngelaMos | 2026
// entity.go

package business

import (
	"time"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

type GalleryImage struct {
	ImageTitle string     `json:"image_title" validate:"required,max=100"`
	ImageSrc   core.Asset `json:"image_src"`
}

type Stat struct {
	UniqueKey string `json:"uniqueKey" validate:"required"`
	Title     string `json:"title"     validate:"required,max=100"`
	StatValue string `json:"statValue" validate:"required,max=50"`
}

type CallToAction struct {
	Title       string `json:"title,omitempty"       validate:"max=150"`
	Description string `json:"description,omitempty" validate:"max=500"`
	ButtonTitle string `json:"buttonTitle,omitempty" validate:"max=50"`
	IsActive    *bool  `json:"isActive"`
}

// Business is one line of business shown on the site. Testimonials and
// ProjectDetails hold store ids of the referenced records.
type Business struct {
	ID             string                     `db:"id"                     json:"id"`
	Slug           string                     `db:"slug"                   json:"slug"`
	Title          string                     `db:"business_title"         json:"business_title"`
	Overview       string                     `db:"business_overview"      json:"business_overview"`
	Description    string                     `db:"business_description"   json:"business_description"`
	Tagline        string                     `db:"business_tagline"       json:"business_tagline"`
	CTATitle       string                     `db:"cta_title"              json:"ctaTitle"`
	CTAHref        string                     `db:"cta_href"               json:"ctaHref"`
	Gallery        core.JSONB[[]GalleryImage] `db:"business_gallery"       json:"business_gallery"`
	Testimonials   core.JSONB[[]string]       `db:"business_testimonials"  json:"business_testimonials"`
	ProjectTypes   core.JSONB[[]string]       `db:"project_types"          json:"project_types"`
	ProjectDetails core.JSONB[[]string]       `db:"project_details"        json:"project_details"`
	HeroImage      core.JSONB[core.Asset]     `db:"hero_image"             json:"hero_image"`
	FeaturedImage  core.JSONB[core.Asset]     `db:"featured_image"         json:"featured_image"`
	Stats          core.JSONB[[]Stat]         `db:"business_stats"         json:"businessStats"`
	CallToAction   core.JSONB[*CallToAction]  `db:"call_to_action_section" json:"callToActionSection"`
	CreatedAt      time.Time                  `db:"created_at"             json:"createdAt"`
	UpdatedAt      time.Time                  `db:"updated_at"             json:"updatedAt"`
}
