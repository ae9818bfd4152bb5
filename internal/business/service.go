// AngelaMos | 2026
// service.go

package business

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

type Service struct {
	repo         Repository
	projects     core.Lookup
	testimonials core.Lookup
	validator    *validator.Validate
}

// NewService takes lookups by store id for the projects and testimonials a
// business refers to.
func NewService(repo Repository, projects, testimonials core.Lookup) *Service {
	return &Service{
		repo:         repo,
		projects:     projects,
		testimonials: testimonials,
		validator:    core.NewValidator(),
	}
}

func (s *Service) Create(ctx context.Context, in Input) (*Business, error) {
	in.normalize()
	if err := core.ValidateStruct(s.validator, in); err != nil {
		return nil, err
	}

	b := &Business{ID: uuid.NewString()}
	in.writeTo(b)

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) List(
	ctx context.Context,
	params ListParams,
) ([]Business, int, error) {
	params.ProjectType = strings.TrimSpace(params.ProjectType)
	return s.repo.List(ctx, params)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*Business, error) {
	return s.repo.GetBySlug(ctx, strings.ToLower(slug))
}

// Get returns the business with its testimonials and projects expanded.
func (s *Service) Get(ctx context.Context, slug string) (*Detail, error) {
	b, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	return &Detail{
		Business:       b,
		Testimonials:   expandAll(ctx, s.testimonials, b.Testimonials.V),
		ProjectDetails: expandAll(ctx, s.projects, b.ProjectDetails.V),
	}, nil
}

func expandAll(ctx context.Context, lookup core.Lookup, ids []string) []any {
	out := make([]any, 0, len(ids))
	for _, id := range ids {
		if v := lookup.Expand(ctx, id); v != nil {
			out = append(out, v)
		}
	}
	return out
}

func (s *Service) Update(
	ctx context.Context,
	slug string,
	req UpdateRequest,
) (*Business, error) {
	b, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	in := inputOf(b)
	req.apply(&in)
	in.normalize()
	if err := core.ValidateStruct(s.validator, in); err != nil {
		return nil, err
	}

	in.writeTo(b)
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Delete(ctx context.Context, slug string) error {
	return s.repo.Delete(ctx, strings.ToLower(slug))
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
