package discount

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"storefront-api/internal/domain"
)

type CreateInput struct {
	Code      string
	Type      domain.DiscountType
	Value     decimal.Decimal
	StartDate time.Time
	EndDate   *time.Time
	Limit     *int
}

type UpdateInput struct {
	Type      domain.DiscountType
	Value     decimal.Decimal
	StartDate time.Time
	EndDate   *time.Time
	Limit     *int
}

type Repository interface {
	Create(ctx context.Context, in CreateInput) (*domain.Discount, error)
	List(ctx context.Context) ([]domain.Discount, error)
	GetByCode(ctx context.Context, code string) (*domain.Discount, error)
	Update(ctx context.Context, code string, in UpdateInput) (*domain.Discount, error)
	Delete(ctx context.Context, code string) error
	// Redeem consumes one use of the discount in a single conditional
	// update: the eligibility window and remaining counter are checked by
	// the same statement that decrements, so concurrent redemptions can
	// never drive the counter below zero. It returns ErrNotFound when the
	// code is unknown, outside its window, or exhausted.
	Redeem(ctx context.Context, code string, now time.Time) (*domain.Discount, error)
}
