package category

import (
	"context"
	"fmt"
	"strings"

	"storefront-api/internal/domain"
	categoryrepo "storefront-api/internal/repository/category"
)

type Service struct {
	repo categoryrepo.Repository
}

func New(repo categoryrepo.Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name       string   `json:"name" binding:"required"`
	Attributes []string `json:"attributes"`
}

type UpdateInput struct {
	Name       string   `json:"name" binding:"required"`
	Attributes []string `json:"attributes"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name required", domain.ErrInvalidInput)
	}
	return s.repo.Create(ctx, categoryrepo.CreateInput{
		Name:         name,
		AttributeIDs: in.Attributes,
	})
}

func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*domain.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name required", domain.ErrInvalidInput)
	}
	return s.repo.Update(ctx, id, categoryrepo.UpdateInput{
		Name:         name,
		AttributeIDs: in.Attributes,
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
