package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"storefront-api/internal/domain"
	"storefront-api/internal/payment"
	cartrepo "storefront-api/internal/repository/cart"
)

type cartRepo interface {
	ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error)
	Replace(ctx context.Context, userID string, items []cartrepo.ReplaceItem) error
}

type discountRedeemer interface {
	Redeem(ctx context.Context, code string, now time.Time) (*domain.Discount, error)
}

// Service computes cart totals, applies discount codes and hands carts
// off to the payment provider.
type Service struct {
	repo      cartRepo
	discounts discountRedeemer
	payments  payment.Client
}

func New(repo cartRepo, discounts discountRedeemer, payments payment.Client) *Service {
	return &Service{repo: repo, discounts: discounts, payments: payments}
}

type ReplaceItemInput struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

type ReplaceInput struct {
	Products []ReplaceItemInput `json:"products" binding:"required,dive"`
}

// Total is the response of the cart total endpoint. DiscountTotal equals
// Total when no discount was applied; callers cannot distinguish a missing
// code from an ineligible one.
type Total struct {
	Cart          []domain.CartItem `json:"cart"`
	Currency      *domain.Currency  `json:"currency"`
	Total         decimal.Decimal   `json:"total"`
	DiscountTotal decimal.Decimal   `json:"discountTotal"`
}

// List returns the user's cart items.
func (s *Service) List(ctx context.Context, userID string) ([]domain.CartItem, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Replace overwrites the user's cart wholesale. Old items are deleted and
// the new set inserted in one transaction; there is no incremental merge.
func (s *Service) Replace(ctx context.Context, userID string, in ReplaceInput) error {
	items := make([]cartrepo.ReplaceItem, 0, len(in.Products))
	seen := make(map[string]bool, len(in.Products))
	for _, p := range in.Products {
		if p.Quantity <= 0 {
			return fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
		}
		if seen[p.ProductID] {
			return fmt.Errorf("%w: duplicate product in cart", domain.ErrInvalidInput)
		}
		seen[p.ProductID] = true
		items = append(items, cartrepo.ReplaceItem{
			ProductID: p.ProductID,
			Quantity:  p.Quantity,
		})
	}
	return s.repo.Replace(ctx, userID, items)
}

// ComputeTotal sums active prices across the cart and, when a discount
// code is given, redeems it and applies its arithmetic. Unknown, expired
// or exhausted codes degrade silently: the discounted total then equals
// the plain total.
func (s *Service) ComputeTotal(ctx context.Context, userID, discountCode string, now time.Time) (*Total, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	total, currency, err := domain.CartTotal(items, now)
	if err != nil {
		return nil, err
	}

	discountTotal := total
	if code := strings.TrimSpace(discountCode); code != "" {
		d, err := s.discounts.Redeem(ctx, code, now)
		switch {
		case err == nil:
			discountTotal = d.Apply(total)
		case errors.Is(err, domain.ErrNotFound):
			// Ineligible code: total stays unchanged.
		default:
			return nil, err
		}
	}

	if items == nil {
		items = []domain.CartItem{}
	}
	return &Total{
		Cart:          items,
		Currency:      currency,
		Total:         total,
		DiscountTotal: discountTotal,
	}, nil
}

// Checkout builds a payment-provider session from the cart's active
// prices and returns the hosted checkout URL.
func (s *Service) Checkout(ctx context.Context, userID string, now time.Time) (string, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", fmt.Errorf("%w: cart is empty", domain.ErrInvalidInput)
	}

	lineItems := make([]payment.LineItem, 0, len(items))
	for _, item := range items {
		if item.Product == nil {
			return "", domain.ErrNoActivePrice
		}
		price, err := domain.ResolveActivePrice(item.Product.Prices, now)
		if err != nil {
			return "", err
		}
		lineItems = append(lineItems, payment.LineItem{
			Name:        item.Product.Name,
			Description: item.Product.Description,
			Currency:    strings.ToLower(price.Currency.Acronym),
			UnitAmount:  price.Value.Mul(decimal.NewFromInt(100)).IntPart(),
			Quantity:    int64(item.Quantity),
		})
	}

	return s.payments.CreateCheckoutSession(ctx, lineItems)
}
