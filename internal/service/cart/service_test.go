package cart

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-api/internal/domain"
	"storefront-api/internal/payment"
	cartrepo "storefront-api/internal/repository/cart"
)

type stubCartRepo struct {
	items    []domain.CartItem
	err      error
	replaced []cartrepo.ReplaceItem
}

func (s *stubCartRepo) ListByUser(_ context.Context, _ string) ([]domain.CartItem, error) {
	return s.items, s.err
}

func (s *stubCartRepo) Replace(_ context.Context, _ string, items []cartrepo.ReplaceItem) error {
	s.replaced = items
	return s.err
}

type stubRedeemer struct {
	discount *domain.Discount
	err      error
	code     string
}

func (s *stubRedeemer) Redeem(_ context.Context, code string, _ time.Time) (*domain.Discount, error) {
	s.code = code
	if s.err != nil {
		return nil, s.err
	}
	return s.discount, nil
}

type stubPayments struct {
	items []payment.LineItem
	url   string
	err   error
}

func (s *stubPayments) CreateCheckoutSession(_ context.Context, items []payment.LineItem) (string, error) {
	s.items = items
	return s.url, s.err
}

func eur() domain.Currency {
	return domain.Currency{ID: "cur-eur", Name: "Euro", Acronym: "EUR", Symbol: "€"}
}

func cartFixture(now time.Time) []domain.CartItem {
	start := now.Add(-time.Hour)
	return []domain.CartItem{
		{
			ProductID: "p1",
			Quantity:  2,
			Product: &domain.Product{
				ID:   "p1",
				Name: "Desk",
				Prices: []domain.Price{
					{ProductID: "p1", Value: decimal.NewFromInt(150), Currency: eur(), StartDate: start},
				},
			},
		},
		{
			ProductID: "p2",
			Quantity:  1,
			Product: &domain.Product{
				ID:          "p2",
				Name:        "Chair",
				Description: "Ergonomic",
				Prices: []domain.Price{
					{ProductID: "p2", Value: decimal.NewFromInt(200), Currency: eur(), StartDate: start},
				},
			},
		},
	}
}

func TestComputeTotalWithoutCode(t *testing.T) {
	now := time.Now()
	svc := New(&stubCartRepo{items: cartFixture(now)}, &stubRedeemer{}, &stubPayments{})

	total, err := svc.ComputeTotal(context.Background(), "u1", "", now)
	require.NoError(t, err)
	assert.True(t, total.Total.Equal(decimal.NewFromInt(500)), "total = %s", total.Total)
	assert.True(t, total.DiscountTotal.Equal(total.Total))
	require.NotNil(t, total.Currency)
	assert.Equal(t, "EUR", total.Currency.Acronym)
}

func TestComputeTotalPercentageDiscount(t *testing.T) {
	now := time.Now()
	redeemer := &stubRedeemer{discount: &domain.Discount{
		Code:  "SUMMER15",
		Type:  domain.DiscountPercentageTotal,
		Value: decimal.NewFromInt(15),
	}}
	svc := New(&stubCartRepo{items: cartFixture(now)}, redeemer, &stubPayments{})

	total, err := svc.ComputeTotal(context.Background(), "u1", "SUMMER15", now)
	require.NoError(t, err)
	assert.Equal(t, "SUMMER15", redeemer.code)
	assert.True(t, total.Total.Equal(decimal.NewFromInt(500)))
	assert.True(t, total.DiscountTotal.Equal(decimal.NewFromInt(425)), "discounted = %s", total.DiscountTotal)
}

func TestComputeTotalFixedDiscount(t *testing.T) {
	now := time.Now()
	redeemer := &stubRedeemer{discount: &domain.Discount{
		Code:  "MINUS15",
		Type:  domain.DiscountFixedTotal,
		Value: decimal.NewFromInt(15),
	}}
	svc := New(&stubCartRepo{items: cartFixture(now)}, redeemer, &stubPayments{})

	total, err := svc.ComputeTotal(context.Background(), "u1", "MINUS15", now)
	require.NoError(t, err)
	assert.True(t, total.DiscountTotal.Equal(decimal.NewFromInt(485)))
}

func TestComputeTotalUnknownCodeIsSilent(t *testing.T) {
	now := time.Now()
	redeemer := &stubRedeemer{err: domain.ErrNotFound}
	svc := New(&stubCartRepo{items: cartFixture(now)}, redeemer, &stubPayments{})

	total, err := svc.ComputeTotal(context.Background(), "u1", "NOPE", now)
	require.NoError(t, err)
	assert.True(t, total.DiscountTotal.Equal(total.Total))
}

func TestComputeTotalBlankCodeSkipsRedeem(t *testing.T) {
	now := time.Now()
	redeemer := &stubRedeemer{err: domain.ErrNotFound}
	svc := New(&stubCartRepo{items: cartFixture(now)}, redeemer, &stubPayments{})

	total, err := svc.ComputeTotal(context.Background(), "u1", "   ", now)
	require.NoError(t, err)
	assert.Empty(t, redeemer.code)
	assert.True(t, total.DiscountTotal.Equal(total.Total))
}

func TestReplaceRejectsBadQuantity(t *testing.T) {
	repo := &stubCartRepo{}
	svc := New(repo, &stubRedeemer{}, &stubPayments{})

	err := svc.Replace(context.Background(), "u1", ReplaceInput{Products: []ReplaceItemInput{
		{ProductID: "p1", Quantity: 0},
	}})
	assert.Error(t, err)
	assert.Nil(t, repo.replaced)
}

func TestReplaceRejectsDuplicateProduct(t *testing.T) {
	repo := &stubCartRepo{}
	svc := New(repo, &stubRedeemer{}, &stubPayments{})

	err := svc.Replace(context.Background(), "u1", ReplaceInput{Products: []ReplaceItemInput{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "p1", Quantity: 2},
	}})
	assert.Error(t, err)
}

func TestReplaceForwardsItems(t *testing.T) {
	repo := &stubCartRepo{}
	svc := New(repo, &stubRedeemer{}, &stubPayments{})

	err := svc.Replace(context.Background(), "u1", ReplaceInput{Products: []ReplaceItemInput{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 1},
	}})
	require.NoError(t, err)
	require.Len(t, repo.replaced, 2)
	assert.Equal(t, "p1", repo.replaced[0].ProductID)
	assert.Equal(t, 2, repo.replaced[0].Quantity)
}

func TestCheckoutBuildsLineItems(t *testing.T) {
	now := time.Now()
	payments := &stubPayments{url: "https://checkout.example/session"}
	svc := New(&stubCartRepo{items: cartFixture(now)}, &stubRedeemer{}, payments)

	url, err := svc.Checkout(context.Background(), "u1", now)
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.example/session", url)
	require.Len(t, payments.items, 2)

	first := payments.items[0]
	assert.Equal(t, "Desk", first.Name)
	assert.Equal(t, "eur", first.Currency)
	assert.Equal(t, int64(15000), first.UnitAmount)
	assert.Equal(t, int64(2), first.Quantity)
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc := New(&stubCartRepo{}, &stubRedeemer{}, &stubPayments{})

	_, err := svc.Checkout(context.Background(), "u1", time.Now())
	assert.Error(t, err)
}
