package cart

import (
	"context"

	"storefront-api/internal/domain"
)

type ReplaceItem struct {
	ProductID string
	Quantity  int
}

type Repository interface {
	// ListByUser returns the user's cart items with products, categories
	// and prices attached.
	ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error)
	// Replace deletes the user's existing items and inserts the given set
	// inside one transaction.
	Replace(ctx context.Context, userID string, items []ReplaceItem) error
}
