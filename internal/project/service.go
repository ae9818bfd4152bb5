// AngelaMos | 2026
// service.go

package project

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

var ErrBusinessNotFound = errors.New("business not found")

type Service struct {
	repo       Repository
	businesses core.Lookup
	validator  *validator.Validate
	newCode    func(prefix string) string
}

// NewService takes a lookup of businesses by slug, used to check and expand
// the business a project belongs to.
func NewService(repo Repository, businesses core.Lookup) *Service {
	return &Service{
		repo:       repo,
		businesses: businesses,
		validator:  core.NewValidator(),
		newCode:    core.NewCodeID,
	}
}

func (s *Service) Create(ctx context.Context, in Input) (*Project, error) {
	in.normalize()
	if err := core.ValidateStruct(s.validator, in); err != nil {
		return nil, err
	}

	if err := s.checkBusiness(ctx, in.BusinessSlug); err != nil {
		return nil, err
	}

	p := &Project{
		ID:        uuid.NewString(),
		ProjectID: s.newCode(core.PrefixProject),
	}
	in.writeTo(p)

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) checkBusiness(ctx context.Context, slug string) error {
	ok, err := s.businesses.Exists(ctx, slug)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: %w", slug, ErrBusinessNotFound)
	}
	return nil
}

func (s *Service) List(
	ctx context.Context,
	params ListParams,
) ([]Project, int, error) {
	params.BusinessSlug = strings.ToLower(strings.TrimSpace(params.BusinessSlug))
	params.Type = strings.TrimSpace(params.Type)
	return s.repo.List(ctx, params)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*Project, error) {
	return s.repo.GetBySlug(ctx, strings.ToLower(slug))
}

// GetByID loads a project by store id. A malformed id is reported as not
// found since ids only reach here as references from other records.
func (s *Service) GetByID(ctx context.Context, id string) (*Project, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("project %q: %w", id, core.ErrNotFound)
	}
	return s.repo.GetByID(ctx, id)
}

// Get returns the project with its business attached.
func (s *Service) Get(ctx context.Context, slug string) (*View, error) {
	p, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	return &View{
		Project:  p,
		Business: s.businesses.Expand(ctx, p.BusinessSlug),
	}, nil
}

func (s *Service) Update(
	ctx context.Context,
	slug string,
	req UpdateRequest,
) (*Project, error) {
	p, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	prevBusiness := p.BusinessSlug

	in := inputOf(p)
	req.apply(&in)
	in.normalize()
	if err := core.ValidateStruct(s.validator, in); err != nil {
		return nil, err
	}

	if in.BusinessSlug != prevBusiness {
		if err := s.checkBusiness(ctx, in.BusinessSlug); err != nil {
			return nil, err
		}
	}

	in.writeTo(p)
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, slug string) error {
	return s.repo.Delete(ctx, strings.ToLower(slug))
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
