package currency

import (
	"context"

	"storefront-api/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, currency domain.Currency) (*domain.Currency, error)
	List(ctx context.Context) ([]domain.Currency, error)
	GetByID(ctx context.Context, id string) (*domain.Currency, error)
	Update(ctx context.Context, id string, currency domain.Currency) (*domain.Currency, error)
	Delete(ctx context.Context, id string) error
}
