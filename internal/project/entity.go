// AngelaMos | 2026
// entity.go

package project

import (
	"time"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

// Image is a gallery image of a project. Rankings are unique within a
// project and order the gallery.
type Image struct {
	Ranking  int    `json:"ranking"   validate:"required,min=1"`
	URL      string `json:"url"       validate:"required"`
	PublicID string `json:"public_id" validate:"required"`
}

type Detail struct {
	Image       core.Asset `json:"image"`
	Title       string     `json:"title"       validate:"required,max=150"`
	Description string     `json:"description" validate:"required"`
}

type Document struct {
	Image           core.Asset `json:"image"`
	Title           string     `json:"title"                      validate:"required,max=150"`
	Description     string     `json:"description"                validate:"required,max=500"`
	FileName        string     `json:"file_name"                  validate:"required"`
	FileLink        core.Asset `json:"file_link"`
	ButtonTitle     string     `json:"button_title"               validate:"max=50"`
	DownloadMessage string     `json:"download_message,omitempty" validate:"max=200"`
}

type Project struct {
	ID           string                 `db:"id"                  json:"id"`
	ProjectID    string                 `db:"project_id"          json:"project_id"`
	BusinessSlug string                 `db:"business_name_slug"  json:"business_name_slug"`
	Name         string                 `db:"project_name"        json:"project_name"`
	Description  string                 `db:"project_description" json:"project_description"`
	Type         string                 `db:"project_type"        json:"project_type"`
	Features     core.JSONB[[]string]   `db:"project_features"    json:"project_features"`
	Images       core.JSONB[[]Image]    `db:"project_images"      json:"project_images"`
	Slug         string                 `db:"slug"                json:"slug"`
	HeroImage    core.JSONB[core.Asset] `db:"hero_image"          json:"hero_image"`
	Detail       core.JSONB[Detail]     `db:"project_detail"      json:"project_detail"`
	Documents    core.JSONB[[]Document] `db:"project_document"    json:"project_document"`
	CreatedAt    time.Time              `db:"created_at"          json:"createdAt"`
	UpdatedAt    time.Time              `db:"updated_at"          json:"updatedAt"`
}
