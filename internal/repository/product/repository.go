package product

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"storefront-api/internal/domain"
)

type AttributeValue struct {
	AttributeID string
	Value       string
}

type CreateInput struct {
	Name        string
	Description string
	CategoryID  string
	Attributes  []AttributeValue
}

type UpdateInput struct {
	Name        string
	Description string
	CategoryID  string
	Attributes  []AttributeValue
}

type PriceInput struct {
	ProductID  string
	Value      decimal.Decimal
	CurrencyID string
	StartDate  time.Time
	EndDate    *time.Time
}

type Repository interface {
	Create(ctx context.Context, in CreateInput) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, id string, in UpdateInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	AddPrice(ctx context.Context, in PriceInput) (*domain.Price, error)
}
