package attribute

import (
	"context"
	"fmt"
	"strings"

	"storefront-api/internal/domain"
	attributerepo "storefront-api/internal/repository/attribute"
)

type Service struct {
	repo attributerepo.Repository
}

func New(repo attributerepo.Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name       string   `json:"name" binding:"required"`
	Categories []string `json:"categories"`
}

type UpdateInput struct {
	Name       string   `json:"name" binding:"required"`
	Categories []string `json:"categories"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Attribute, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name required", domain.ErrInvalidInput)
	}
	return s.repo.Create(ctx, attributerepo.CreateInput{
		Name:        name,
		CategoryIDs: in.Categories,
	})
}

func (s *Service) List(ctx context.Context) ([]domain.Attribute, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Attribute, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*domain.Attribute, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name required", domain.ErrInvalidInput)
	}
	return s.repo.Update(ctx, id, attributerepo.UpdateInput{
		Name:        name,
		CategoryIDs: in.Categories,
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
