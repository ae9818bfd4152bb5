// AngelaMos | 2026
// dto.go

package business

import (
	"strings"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

// Input is the writable part of a business. Create requests decode into it
// directly; updates are applied onto the stored record's Input.
type Input struct {
	Slug           string         `json:"slug"                  validate:"required,slug,max=200"`
	Title          string         `json:"business_title"        validate:"required,max=150"`
	Overview       string         `json:"business_overview"     validate:"required,max=700"`
	Description    string         `json:"business_description"  validate:"required"`
	Tagline        string         `json:"business_tagline"      validate:"max=200"`
	CTATitle       string         `json:"ctaTitle"              validate:"max=100"`
	CTAHref        string         `json:"ctaHref"`
	Gallery        []GalleryImage `json:"business_gallery"      validate:"dive"`
	Testimonials   []string       `json:"business_testimonials" validate:"dive,uuid"`
	ProjectTypes   []string       `json:"project_types"`
	ProjectDetails []string       `json:"project_details"       validate:"dive,uuid"`
	HeroImage      core.Asset     `json:"hero_image"`
	FeaturedImage  core.Asset     `json:"featured_image"`
	Stats          []Stat         `json:"businessStats"         validate:"unique=UniqueKey,dive"`
	CallToAction   *CallToAction  `json:"callToActionSection"`
}

// UpdateRequest is a partial update; nil fields keep their stored value.
type UpdateRequest struct {
	Slug           *string         `json:"slug"`
	Title          *string         `json:"business_title"`
	Overview       *string         `json:"business_overview"`
	Description    *string         `json:"business_description"`
	Tagline        *string         `json:"business_tagline"`
	CTATitle       *string         `json:"ctaTitle"`
	CTAHref        *string         `json:"ctaHref"`
	Gallery        *[]GalleryImage `json:"business_gallery"`
	Testimonials   *[]string       `json:"business_testimonials"`
	ProjectTypes   *[]string       `json:"project_types"`
	ProjectDetails *[]string       `json:"project_details"`
	HeroImage      *core.Asset     `json:"hero_image"`
	FeaturedImage  *core.Asset     `json:"featured_image"`
	Stats          *[]Stat         `json:"businessStats"`
	CallToAction   *CallToAction   `json:"callToActionSection"`
}

type ListParams struct {
	core.PageParams
	ProjectType string
}

type ListResponse struct {
	Businesses []Business      `json:"businesses"`
	Pagination core.Pagination `json:"pagination"`
}

// Detail is a business with its referenced testimonials and projects
// expanded. References that no longer resolve are left out.
type Detail struct {
	*Business
	Testimonials   []any `json:"business_testimonials"`
	ProjectDetails []any `json:"project_details"`
}

func (in *Input) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Slug = strings.ToLower(strings.TrimSpace(in.Slug))
	if in.Slug == "" {
		in.Slug = core.Slugify(in.Title)
	}
	in.Overview = strings.TrimSpace(in.Overview)
	in.Description = core.SanitizeHTML(in.Description)
	in.Tagline = strings.TrimSpace(in.Tagline)
	in.CTATitle = strings.TrimSpace(in.CTATitle)
	in.CTAHref = strings.TrimSpace(in.CTAHref)

	if in.Gallery == nil {
		in.Gallery = []GalleryImage{}
	}
	if in.Testimonials == nil {
		in.Testimonials = []string{}
	}
	if in.ProjectDetails == nil {
		in.ProjectDetails = []string{}
	}
	if in.Stats == nil {
		in.Stats = []Stat{}
	}

	types := make([]string, 0, len(in.ProjectTypes))
	for _, t := range in.ProjectTypes {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}
	in.ProjectTypes = types

	if in.CallToAction != nil && in.CallToAction.IsActive == nil {
		active := true
		in.CallToAction.IsActive = &active
	}
}

func (u UpdateRequest) apply(in *Input) {
	core.SetIf(&in.Slug, u.Slug)
	core.SetIf(&in.Title, u.Title)
	core.SetIf(&in.Overview, u.Overview)
	core.SetIf(&in.Description, u.Description)
	core.SetIf(&in.Tagline, u.Tagline)
	core.SetIf(&in.CTATitle, u.CTATitle)
	core.SetIf(&in.CTAHref, u.CTAHref)
	core.SetIf(&in.Gallery, u.Gallery)
	core.SetIf(&in.Testimonials, u.Testimonials)
	core.SetIf(&in.ProjectTypes, u.ProjectTypes)
	core.SetIf(&in.ProjectDetails, u.ProjectDetails)
	core.SetIf(&in.HeroImage, u.HeroImage)
	core.SetIf(&in.FeaturedImage, u.FeaturedImage)
	core.SetIf(&in.Stats, u.Stats)
	if u.CallToAction != nil {
		in.CallToAction = u.CallToAction
	}
}

func (in *Input) writeTo(b *Business) {
	b.Slug = in.Slug
	b.Title = in.Title
	b.Overview = in.Overview
	b.Description = in.Description
	b.Tagline = in.Tagline
	b.CTATitle = in.CTATitle
	b.CTAHref = in.CTAHref
	b.Gallery = core.NewJSONB(in.Gallery)
	b.Testimonials = core.NewJSONB(in.Testimonials)
	b.ProjectTypes = core.NewJSONB(in.ProjectTypes)
	b.ProjectDetails = core.NewJSONB(in.ProjectDetails)
	b.HeroImage = core.NewJSONB(in.HeroImage)
	b.FeaturedImage = core.NewJSONB(in.FeaturedImage)
	b.Stats = core.NewJSONB(in.Stats)
	b.CallToAction = core.NewJSONB(in.CallToAction)
}

func inputOf(b *Business) Input {
	return Input{
		Slug:           b.Slug,
		Title:          b.Title,
		Overview:       b.Overview,
		Description:    b.Description,
		Tagline:        b.Tagline,
		CTATitle:       b.CTATitle,
		CTAHref:        b.CTAHref,
		Gallery:        b.Gallery.V,
		Testimonials:   b.Testimonials.V,
		ProjectTypes:   b.ProjectTypes.V,
		ProjectDetails: b.ProjectDetails.V,
		HeroImage:      b.HeroImage.V,
		FeaturedImage:  b.FeaturedImage.V,
		Stats:          b.Stats.V,
		CallToAction:   b.CallToAction.V,
	}
}
