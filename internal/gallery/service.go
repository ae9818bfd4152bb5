// AngelaMos | 2026
// service.go

package gallery

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

var ErrInvalidID = errors.New("invalid gallery image id")

type Service struct {
	repo      Repository
	validator *validator.Validate
	newCode   func(prefix string) string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:      repo,
		validator: core.NewValidator(),
		newCode:   core.NewCodeID,
	}
}

func (s *Service) Create(ctx context.Context, in Input) (*Image, error) {
	in.normalize()
	if err := core.ValidateStruct(s.validator, in); err != nil {
		return nil, err
	}

	img := &Image{
		ID:        uuid.NewString(),
		GalleryID: s.newCode(core.PrefixGallery),
	}
	in.writeTo(img)

	if err := s.repo.Create(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *Service) List(ctx context.Context, params ListParams) ([]Image, int, error) {
	params.Tag = strings.ToLower(strings.TrimSpace(params.Tag))
	params.Category = strings.TrimSpace(params.Category)
	return s.repo.List(ctx, params)
}

func (s *Service) GetByID(ctx context.Context, id string) (*Image, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateRequest,
) (*Image, error) {
	img, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in := inputOf(img)
	req.apply(&in)
	in.normalize()
	if err := core.ValidateStruct(s.validator, in); err != nil {
		return nil, err
	}

	in.writeTo(img)
	if err := s.repo.Update(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
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
