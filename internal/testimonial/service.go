// AngelaMos | 2026
// service.go

package testimonial

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrBusinessNotFound = errors.New("business not found")

	// ErrInvalidID also matches core.ErrNotFound so reference checks treat
	// a malformed id as a missing testimonial.
	ErrInvalidID = fmt.Errorf("invalid testimonial id: %w", core.ErrNotFound)
)

type Service struct {
	repo       Repository
	projects   core.Lookup
	businesses core.Lookup
	validator  *validator.Validate
	newCode    func(prefix string) string
}

// NewService takes lookups of projects and businesses by slug.
func NewService(repo Repository, projects, businesses core.Lookup) *Service {
	return &Service{
		repo:       repo,
		projects:   projects,
		businesses: businesses,
		validator:  core.NewValidator(),
		newCode:    core.NewCodeID,
	}
}

func (s *Service) Create(ctx context.Context, in Input) (*Testimonial, error) {
	in.normalize()
	if err := core.ValidateStruct(s.validator, in); err != nil {
		return nil, err
	}

	if err := s.checkRefs(ctx, in, Input{}); err != nil {
		return nil, err
	}

	t := &Testimonial{
		ID:            uuid.NewString(),
		TestimonialID: s.newCode(core.PrefixTestimonial),
	}
	in.writeTo(t)

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// checkRefs verifies the slugs in next that differ from prev.
func (s *Service) checkRefs(ctx context.Context, next, prev Input) error {
	if next.ProjectSlug != "" && next.ProjectSlug != prev.ProjectSlug {
		ok, err := s.projects.Exists(ctx, next.ProjectSlug)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s: %w", next.ProjectSlug, ErrProjectNotFound)
		}
	}

	if next.BusinessSlug != "" && next.BusinessSlug != prev.BusinessSlug {
		ok, err := s.businesses.Exists(ctx, next.BusinessSlug)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s: %w", next.BusinessSlug, ErrBusinessNotFound)
		}
	}

	return nil
}

func (s *Service) List(
	ctx context.Context,
	params ListParams,
) ([]Testimonial, int, error) {
	params.ProjectSlug = strings.ToLower(strings.TrimSpace(params.ProjectSlug))
	params.BusinessSlug = strings.ToLower(strings.TrimSpace(params.BusinessSlug))
	return s.repo.List(ctx, params)
}

func (s *Service) GetByID(ctx context.Context, id string) (*Testimonial, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}
	return s.repo.GetByID(ctx, id)
}

// Get returns the testimonial with its project and business attached.
func (s *Service) Get(ctx context.Context, id string) (*View, error) {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &View{
		Testimonial: t,
		Project:     s.projects.Expand(ctx, deref(t.ProjectSlug)),
		Business:    s.businesses.Expand(ctx, deref(t.BusinessSlug)),
	}, nil
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateRequest,
) (*Testimonial, error) {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	prev := inputOf(t)
	in := prev
	req.apply(&in)
	in.normalize()
	if err := core.ValidateStruct(s.validator, in); err != nil {
		return nil, err
	}

	if err := s.checkRefs(ctx, in, prev); err != nil {
		return nil, err
	}

	in.writeTo(t)
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
