// AngelaMos | 2026
// dto.go

package gallery

import (
	"strings"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

// Input is the writable part of a gallery image. gallery_id is generated
// on create and never changes.
type Input struct {
	Image       core.Asset `json:"image"`
	Title       string     `json:"title"       validate:"required,max=150"`
	Tag         string     `json:"tag"         validate:"max=50"`
	Description string     `json:"description" validate:"max=500"`
	AltText     string     `json:"altText"     validate:"max=100"`
	Category    string     `json:"category"    validate:"max=50"`
	Width       *int       `json:"width"       validate:"omitempty,min=1"`
	Height      *int       `json:"height"      validate:"omitempty,min=1"`
	FileSize    *int64     `json:"fileSize"    validate:"omitempty,min=0"`
	Format      string     `json:"format"`
	IsActive    *bool      `json:"isActive"`
}

type UpdateRequest struct {
	Image       *core.Asset `json:"image"`
	Title       *string     `json:"title"`
	Tag         *string     `json:"tag"`
	Description *string     `json:"description"`
	AltText     *string     `json:"altText"`
	Category    *string     `json:"category"`
	Width       *int        `json:"width"`
	Height      *int        `json:"height"`
	FileSize    *int64      `json:"fileSize"`
	Format      *string     `json:"format"`
	IsActive    *bool       `json:"isActive"`
}

type ListParams struct {
	core.PageParams
	Tag      string
	Category string
	IsActive *bool
}

type ListResponse struct {
	Images     []Image         `json:"images"`
	Pagination core.Pagination `json:"pagination"`
}

func (in *Input) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Tag = strings.ToLower(strings.TrimSpace(in.Tag))
	in.Description = strings.TrimSpace(in.Description)
	in.AltText = strings.TrimSpace(in.AltText)
	in.Category = strings.TrimSpace(in.Category)
	in.Format = strings.ToUpper(strings.TrimSpace(in.Format))
	if in.IsActive == nil {
		active := true
		in.IsActive = &active
	}
}

func (u UpdateRequest) apply(in *Input) {
	core.SetIf(&in.Image, u.Image)
	core.SetIf(&in.Title, u.Title)
	core.SetIf(&in.Tag, u.Tag)
	core.SetIf(&in.Description, u.Description)
	core.SetIf(&in.AltText, u.AltText)
	core.SetIf(&in.Category, u.Category)
	core.SetIf(&in.Format, u.Format)
	if u.Width != nil {
		in.Width = u.Width
	}
	if u.Height != nil {
		in.Height = u.Height
	}
	if u.FileSize != nil {
		in.FileSize = u.FileSize
	}
	if u.IsActive != nil {
		in.IsActive = u.IsActive
	}
}

func (in *Input) writeTo(img *Image) {
	img.Image = core.NewJSONB(in.Image)
	img.Title = in.Title
	img.Tag = in.Tag
	img.Description = in.Description
	img.AltText = in.AltText
	img.Category = in.Category
	img.Width = in.Width
	img.Height = in.Height
	img.FileSize = in.FileSize
	img.Format = in.Format
	img.IsActive = *in.IsActive
}

func inputOf(img *Image) Input {
	active := img.IsActive
	return Input{
		Image:       img.Image.V,
		Title:       img.Title,
		Tag:         img.Tag,
		Description: img.Description,
		AltText:     img.AltText,
		Category:    img.Category,
		Width:       img.Width,
		Height:      img.Height,
		FileSize:    img.FileSize,
		Format:      img.Format,
		IsActive:    &active,
	}
}
