package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountType selects the arithmetic applied to the cart total.
type DiscountType string

const (
	// DiscountPercentageTotal subtracts value percent of the total.
	DiscountPercentageTotal DiscountType = "PERCENTAGE_TOTAL"
	// DiscountFixedTotal subtracts a fixed amount from the total.
	DiscountFixedTotal DiscountType = "FIXED_TOTAL"
)

// Valid reports whether the type is one of the known values.
func (t DiscountType) Valid() bool {
	return t == DiscountPercentageTotal || t == DiscountFixedTotal
}

var hundred = decimal.NewFromInt(100)

// Discount is a global code-keyed reduction. Limit caps total redemptions;
// Remaining counts how many are left. Both nil means unlimited use.
type Discount struct {
	ID        string          `json:"id"`
	Code      string          `json:"code"`
	Type      DiscountType    `json:"type"`
	Value     decimal.Decimal `json:"value"`
	StartDate time.Time       `json:"startDate"`
	EndDate   *time.Time      `json:"endDate,omitempty"`
	Limit     *int            `json:"limit,omitempty"`
	Remaining *int            `json:"remaining,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ActiveAt reports whether the discount window contains the given instant.
func (d Discount) ActiveAt(now time.Time) bool {
	if d.EndDate == nil {
		return true
	}
	return d.StartDate.Before(now) && d.EndDate.After(now)
}

// Exhausted reports whether the remaining-use counter has hit zero.
func (d Discount) Exhausted() bool {
	return d.Remaining != nil && *d.Remaining <= 0
}

// Apply returns the total after the discount arithmetic. The result is
// clamped at zero: a FIXED_TOTAL discount larger than the total yields
// zero, never a negative amount.
func (d Discount) Apply(total decimal.Decimal) decimal.Decimal {
	var discounted decimal.Decimal
	switch d.Type {
	case DiscountPercentageTotal:
		discounted = total.Sub(total.Mul(d.Value).Div(hundred))
	case DiscountFixedTotal:
		discounted = total.Sub(d.Value)
	default:
		return total
	}
	if discounted.IsNegative() {
		return decimal.Zero
	}
	return discounted
}
