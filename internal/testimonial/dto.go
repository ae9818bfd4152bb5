// AngelaMos | 2026
// dto.go

package testimonial

import (
	"strings"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

type Input struct {
	ProjectSlug  string              `json:"project_slug"`
	BusinessSlug string              `json:"business_slug"`
	Name         string              `json:"name"          validate:"required,max=100"`
	Image        *core.OptionalAsset `json:"image"`
	Message      string              `json:"message"       validate:"required,max=1000"`
}

// UpdateRequest is a partial update. testimonial_id is not part of it and
// is ignored if sent.
type UpdateRequest struct {
	ProjectSlug  *string             `json:"project_slug"`
	BusinessSlug *string             `json:"business_slug"`
	Name         *string             `json:"name"`
	Image        *core.OptionalAsset `json:"image"`
	Message      *string             `json:"message"`
}

type ListParams struct {
	core.PageParams
	ProjectSlug  string
	BusinessSlug string
}

type ListResponse struct {
	Testimonials []Testimonial   `json:"testimonials"`
	Pagination   core.Pagination `json:"pagination"`
}

// View is a testimonial with its project and business attached. Either is
// nil when unset or no longer resolvable.
type View struct {
	*Testimonial
	Project  any `json:"project"`
	Business any `json:"business"`
}

func (in *Input) normalize() {
	in.ProjectSlug = strings.ToLower(strings.TrimSpace(in.ProjectSlug))
	in.BusinessSlug = strings.ToLower(strings.TrimSpace(in.BusinessSlug))
	in.Name = strings.TrimSpace(in.Name)
	in.Message = strings.TrimSpace(in.Message)
}

func (u UpdateRequest) apply(in *Input) {
	core.SetIf(&in.ProjectSlug, u.ProjectSlug)
	core.SetIf(&in.BusinessSlug, u.BusinessSlug)
	core.SetIf(&in.Name, u.Name)
	core.SetIf(&in.Message, u.Message)
	if u.Image != nil {
		in.Image = u.Image
	}
}

func (in *Input) writeTo(t *Testimonial) {
	t.ProjectSlug = optional(in.ProjectSlug)
	t.BusinessSlug = optional(in.BusinessSlug)
	t.Name = in.Name
	t.Image = core.NewJSONB(in.Image)
	t.Message = in.Message
}

func inputOf(t *Testimonial) Input {
	return Input{
		ProjectSlug:  deref(t.ProjectSlug),
		BusinessSlug: deref(t.BusinessSlug),
		Name:         t.Name,
		Image:        t.Image.V,
		Message:      t.Message,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
