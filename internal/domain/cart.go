package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem belongs to one user and one product. Items are replaced
// wholesale on each cart update, never merged.
type CartItem struct {
	UserID    string    `json:"-"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	Product   *Product  `json:"product,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CartTotal sums quantity times the active unit price across all items
// and returns the shared currency. Every item must resolve to a price in
// the same currency; otherwise ErrMixedCurrency is returned. An item whose
// product has no active price yields ErrNoActivePrice.
func CartTotal(items []CartItem, now time.Time) (decimal.Decimal, *Currency, error) {
	total := decimal.Zero
	var currency *Currency

	for _, item := range items {
		if item.Product == nil {
			return decimal.Zero, nil, ErrNoActivePrice
		}
		price, err := ResolveActivePrice(item.Product.Prices, now)
		if err != nil {
			return decimal.Zero, nil, err
		}
		if currency == nil {
			c := price.Currency
			currency = &c
		} else if currency.ID != price.Currency.ID {
			return decimal.Zero, nil, ErrMixedCurrency
		}
		total = total.Add(price.Value.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return total, currency, nil
}
