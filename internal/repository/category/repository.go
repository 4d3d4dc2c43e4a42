package category

import (
	"context"

	"storefront-api/internal/domain"
)

type CreateInput struct {
	Name         string
	AttributeIDs []string
}

type UpdateInput struct {
	Name         string
	AttributeIDs []string
}

type Repository interface {
	Create(ctx context.Context, in CreateInput) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	Update(ctx context.Context, id string, in UpdateInput) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
