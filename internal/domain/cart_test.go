package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartFixture() []CartItem {
	usd := Currency{ID: "cur-usd", Acronym: "USD"}
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	return []CartItem{
		{
			ProductID: "prod-1",
			Quantity:  2,
			Product: &Product{
				ID:     "prod-1",
				Prices: []Price{{ID: "pr-1", Value: decimal.NewFromInt(150), Currency: usd, StartDate: start}},
			},
		},
		{
			ProductID: "prod-2",
			Quantity:  1,
			Product: &Product{
				ID:     "prod-2",
				Prices: []Price{{ID: "pr-2", Value: decimal.NewFromInt(200), Currency: usd, StartDate: start}},
			},
		},
	}
}

func TestCartTotal(t *testing.T) {
	total, currency, err := CartTotal(cartFixture(), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, currency)
	assert.Equal(t, "USD", currency.Acronym)
	assert.True(t, total.Equal(decimal.NewFromInt(500)), "got %s", total)
}

func TestCartTotal_Empty(t *testing.T) {
	total, currency, err := CartTotal(nil, time.Now())
	require.NoError(t, err)
	assert.Nil(t, currency)
	assert.True(t, total.Equal(decimal.Zero))
}

func TestCartTotal_MixedCurrencies(t *testing.T) {
	items := cartFixture()
	items[1].Product.Prices[0].Currency = Currency{ID: "cur-eur", Acronym: "EUR"}

	_, _, err := CartTotal(items, time.Now())
	assert.ErrorIs(t, err, ErrMixedCurrency)
}

func TestCartTotal_NoActivePrice(t *testing.T) {
	items := cartFixture()
	items[0].Product.Prices = nil

	_, _, err := CartTotal(items, time.Now())
	assert.ErrorIs(t, err, ErrNoActivePrice)
}

func TestCartTotal_UsesActiveWindow(t *testing.T) {
	usd := Currency{ID: "cur-usd", Acronym: "USD"}
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	expired := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	items := []CartItem{{
		ProductID: "prod-1",
		Quantity:  1,
		Product: &Product{
			ID: "prod-1",
			Prices: []Price{
				{ID: "old", Value: decimal.NewFromInt(999), Currency: usd, StartDate: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), EndDate: datePtr(expired)},
				{ID: "current", Value: decimal.NewFromInt(100), Currency: usd, StartDate: expired},
			},
		},
	}}

	total, _, err := CartTotal(items, now)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(100)), "got %s", total)
}
