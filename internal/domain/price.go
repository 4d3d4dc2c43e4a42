package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Price is a time-windowed amount for one product. A nil EndDate means
// the window is open-ended.
type Price struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Value     decimal.Decimal `json:"value"`
	Currency  Currency        `json:"currency"`
	StartDate time.Time       `json:"startDate"`
	EndDate   *time.Time      `json:"endDate,omitempty"`
}

// ActiveAt reports whether the price window contains the given instant:
// EndDate is nil, or StartDate < now < EndDate.
func (p Price) ActiveAt(now time.Time) bool {
	if p.EndDate == nil {
		return true
	}
	return p.StartDate.Before(now) && p.EndDate.After(now)
}

// ResolveActivePrice selects the product price whose window contains now.
// When several windows overlap, the most recently started one wins so the
// result does not depend on row ordering. Returns ErrNoActivePrice when no
// window matches.
func ResolveActivePrice(prices []Price, now time.Time) (Price, error) {
	var (
		found  bool
		active Price
	)
	for _, p := range prices {
		if !p.ActiveAt(now) {
			continue
		}
		if !found || p.StartDate.After(active.StartDate) {
			active = p
			found = true
		}
	}
	if !found {
		return Price{}, ErrNoActivePrice
	}
	return active, nil
}
