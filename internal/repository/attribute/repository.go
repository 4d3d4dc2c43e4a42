package attribute

import (
	"context"

	"storefront-api/internal/domain"
)

type CreateInput struct {
	Name        string
	CategoryIDs []string
}

type UpdateInput struct {
	Name        string
	CategoryIDs []string
}

type Repository interface {
	Create(ctx context.Context, in CreateInput) (*domain.Attribute, error)
	List(ctx context.Context) ([]domain.Attribute, error)
	GetByID(ctx context.Context, id string) (*domain.Attribute, error)
	Update(ctx context.Context, id string, in UpdateInput) (*domain.Attribute, error)
	Delete(ctx context.Context, id string) error
}
