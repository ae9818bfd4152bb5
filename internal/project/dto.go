// AngelaMos | 2026
// dto.go

package project

import (
	"strings"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

const defaultButtonTitle = "Download"

// Input is the writable part of a project. project_id is generated on
// create and is not part of it, so a client-supplied one is ignored.
type Input struct {
	BusinessSlug string     `json:"business_name_slug"  validate:"required"`
	Name         string     `json:"project_name"        validate:"required,max=150"`
	Description  string     `json:"project_description" validate:"required"`
	Type         string     `json:"project_type"        validate:"required"`
	Features     []string   `json:"project_features"`
	Images       []Image    `json:"project_images"      validate:"unique=Ranking,dive"`
	Slug         string     `json:"slug"                validate:"required,slug,max=200"`
	HeroImage    core.Asset `json:"hero_image"`
	Detail       Detail     `json:"project_detail"`
	Documents    []Document `json:"project_document"    validate:"dive"`
}

// UpdateRequest is a partial update; nil fields keep their stored value.
type UpdateRequest struct {
	BusinessSlug *string     `json:"business_name_slug"`
	Name         *string     `json:"project_name"`
	Description  *string     `json:"project_description"`
	Type         *string     `json:"project_type"`
	Features     *[]string   `json:"project_features"`
	Images       *[]Image    `json:"project_images"`
	Slug         *string     `json:"slug"`
	HeroImage    *core.Asset `json:"hero_image"`
	Detail       *Detail     `json:"project_detail"`
	Documents    *[]Document `json:"project_document"`
}

type ListParams struct {
	core.PageParams
	BusinessSlug string
	Type         string
}

type ListResponse struct {
	Projects   []Project       `json:"projects"`
	Pagination core.Pagination `json:"pagination"`
}

// View is a project with the business it belongs to. Business is nil when
// the referenced slug no longer resolves.
type View struct {
	*Project
	Business any `json:"business"`
}

func (in *Input) normalize() {
	in.BusinessSlug = strings.ToLower(strings.TrimSpace(in.BusinessSlug))
	in.Name = strings.TrimSpace(in.Name)
	in.Slug = strings.ToLower(strings.TrimSpace(in.Slug))
	if in.Slug == "" {
		in.Slug = core.Slugify(in.Name)
	}
	in.Description = core.SanitizeHTML(in.Description)
	in.Type = strings.TrimSpace(in.Type)

	features := make([]string, 0, len(in.Features))
	for _, f := range in.Features {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}
	in.Features = features

	if in.Images == nil {
		in.Images = []Image{}
	}

	in.Detail.Title = strings.TrimSpace(in.Detail.Title)
	in.Detail.Description = core.SanitizeHTML(in.Detail.Description)

	if in.Documents == nil {
		in.Documents = []Document{}
	}
	for i := range in.Documents {
		d := &in.Documents[i]
		d.Title = strings.TrimSpace(d.Title)
		d.Description = strings.TrimSpace(d.Description)
		d.FileName = strings.TrimSpace(d.FileName)
		d.ButtonTitle = strings.TrimSpace(d.ButtonTitle)
		if d.ButtonTitle == "" {
			d.ButtonTitle = defaultButtonTitle
		}
	}
}

func (u UpdateRequest) apply(in *Input) {
	core.SetIf(&in.BusinessSlug, u.BusinessSlug)
	core.SetIf(&in.Name, u.Name)
	core.SetIf(&in.Description, u.Description)
	core.SetIf(&in.Type, u.Type)
	core.SetIf(&in.Features, u.Features)
	core.SetIf(&in.Images, u.Images)
	core.SetIf(&in.Slug, u.Slug)
	core.SetIf(&in.HeroImage, u.HeroImage)
	core.SetIf(&in.Detail, u.Detail)
	core.SetIf(&in.Documents, u.Documents)
}

func (in *Input) writeTo(p *Project) {
	p.BusinessSlug = in.BusinessSlug
	p.Name = in.Name
	p.Description = in.Description
	p.Type = in.Type
	p.Features = core.NewJSONB(in.Features)
	p.Images = core.NewJSONB(in.Images)
	p.Slug = in.Slug
	p.HeroImage = core.NewJSONB(in.HeroImage)
	p.Detail = core.NewJSONB(in.Detail)
	p.Documents = core.NewJSONB(in.Documents)
}

func inputOf(p *Project) Input {
	return Input{
		BusinessSlug: p.BusinessSlug,
		Name:         p.Name,
		Description:  p.Description,
		Type:         p.Type,
		Features:     p.Features.V,
		Images:       p.Images.V,
		Slug:         p.Slug,
		HeroImage:    p.HeroImage.V,
		Detail:       p.Detail.V,
		Documents:    p.Documents.V,
	}
}
