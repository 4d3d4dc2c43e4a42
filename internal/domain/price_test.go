package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestResolveActivePrice_OpenEndedWindowAlwaysMatches(t *testing.T) {
	prices := []Price{
		{
			ID:        "p1",
			Value:     decimal.NewFromInt(150),
			StartDate: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	got, err := ResolveActivePrice(prices, now)
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ID)
}

func TestResolveActivePrice_ClosedWindow(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	prices := []Price{
		{ID: "winter", StartDate: start, EndDate: datePtr(end)},
	}

	_, err := ResolveActivePrice(prices, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	_, err = ResolveActivePrice(prices, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrNoActivePrice)

	_, err = ResolveActivePrice(prices, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrNoActivePrice)
}

func TestResolveActivePrice_MostRecentlyStartedWins(t *testing.T) {
	older := Price{
		ID:        "regular",
		StartDate: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	newer := Price{
		ID:        "sale",
		StartDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	// Result must not depend on slice order.
	got, err := ResolveActivePrice([]Price{older, newer}, now)
	require.NoError(t, err)
	assert.Equal(t, "sale", got.ID)

	got, err = ResolveActivePrice([]Price{newer, older}, now)
	require.NoError(t, err)
	assert.Equal(t, "sale", got.ID)
}

func TestResolveActivePrice_Empty(t *testing.T) {
	_, err := ResolveActivePrice(nil, time.Now())
	assert.ErrorIs(t, err, ErrNoActivePrice)
}
