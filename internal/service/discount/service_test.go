package discount

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-api/internal/domain"
	discountrepo "storefront-api/internal/repository/discount"
)

type stubRepo struct {
	created *discountrepo.CreateInput
	updated *discountrepo.UpdateInput
	code    string
}

func (s *stubRepo) Create(_ context.Context, in discountrepo.CreateInput) (*domain.Discount, error) {
	s.created = &in
	return &domain.Discount{Code: in.Code, Type: in.Type, Value: in.Value}, nil
}

func (s *stubRepo) List(_ context.Context) ([]domain.Discount, error) { return nil, nil }

func (s *stubRepo) GetByCode(_ context.Context, code string) (*domain.Discount, error) {
	s.code = code
	return &domain.Discount{Code: code}, nil
}

func (s *stubRepo) Update(_ context.Context, code string, in discountrepo.UpdateInput) (*domain.Discount, error) {
	s.code = code
	s.updated = &in
	return &domain.Discount{Code: code, Type: in.Type, Value: in.Value}, nil
}

func (s *stubRepo) Delete(_ context.Context, code string) error {
	s.code = code
	return nil
}

func TestCreateTrimsCode(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	d, err := svc.Create(context.Background(), CreateInput{
		Code:      "  SUMMER15 ",
		Type:      domain.DiscountPercentageTotal,
		Value:     decimal.NewFromInt(15),
		StartDate: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, "SUMMER15", d.Code)
	require.NotNil(t, repo.created)
	assert.Equal(t, "SUMMER15", repo.created.Code)
}

func TestCreateRejectsUnknownType(t *testing.T) {
	svc := New(&stubRepo{})

	_, err := svc.Create(context.Background(), CreateInput{
		Code:      "X",
		Type:      "BOGO",
		Value:     decimal.NewFromInt(1),
		StartDate: time.Now(),
	})
	assert.Error(t, err)
}

func TestCreateRejectsPercentageOverHundred(t *testing.T) {
	svc := New(&stubRepo{})

	_, err := svc.Create(context.Background(), CreateInput{
		Code:      "X",
		Type:      domain.DiscountPercentageTotal,
		Value:     decimal.NewFromInt(120),
		StartDate: time.Now(),
	})
	assert.Error(t, err)
}

func TestCreateRejectsInvertedWindow(t *testing.T) {
	svc := New(&stubRepo{})
	start := time.Now()
	end := start.Add(-time.Hour)

	_, err := svc.Create(context.Background(), CreateInput{
		Code:      "X",
		Type:      domain.DiscountFixedTotal,
		Value:     decimal.NewFromInt(5),
		StartDate: start,
		EndDate:   &end,
	})
	assert.Error(t, err)
}

func TestCreateRejectsNegativeLimit(t *testing.T) {
	svc := New(&stubRepo{})
	limit := -1

	_, err := svc.Create(context.Background(), CreateInput{
		Code:      "X",
		Type:      domain.DiscountFixedTotal,
		Value:     decimal.NewFromInt(5),
		StartDate: time.Now(),
		Limit:     &limit,
	})
	assert.Error(t, err)
}

func TestUpdateForwardsTerms(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)
	limit := 10

	_, err := svc.Update(context.Background(), "SUMMER15", UpdateInput{
		Type:      domain.DiscountFixedTotal,
		Value:     decimal.NewFromInt(15),
		StartDate: time.Now(),
		Limit:     &limit,
	})
	require.NoError(t, err)
	assert.Equal(t, "SUMMER15", repo.code)
	require.NotNil(t, repo.updated)
	assert.Equal(t, domain.DiscountFixedTotal, repo.updated.Type)
}
