package discount

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"storefront-api/internal/domain"
	discountrepo "storefront-api/internal/repository/discount"
)

type repository interface {
	Create(ctx context.Context, in discountrepo.CreateInput) (*domain.Discount, error)
	List(ctx context.Context) ([]domain.Discount, error)
	GetByCode(ctx context.Context, code string) (*domain.Discount, error)
	Update(ctx context.Context, code string, in discountrepo.UpdateInput) (*domain.Discount, error)
	Delete(ctx context.Context, code string) error
}

// Service manages the discount catalog. Redemption lives on the cart
// service; this one only covers the admin CRUD surface.
type Service struct {
	repo repository
}

func New(repo repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Code      string              `json:"code" binding:"required"`
	Type      domain.DiscountType `json:"type" binding:"required"`
	Value     decimal.Decimal     `json:"value" binding:"required"`
	StartDate time.Time           `json:"startDate" binding:"required"`
	EndDate   *time.Time          `json:"endDate"`
	Limit     *int                `json:"limit"`
}

type UpdateInput struct {
	Type      domain.DiscountType `json:"type" binding:"required"`
	Value     decimal.Decimal     `json:"value" binding:"required"`
	StartDate time.Time           `json:"startDate" binding:"required"`
	EndDate   *time.Time          `json:"endDate"`
	Limit     *int                `json:"limit"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Discount, error) {
	code := strings.TrimSpace(in.Code)
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", domain.ErrInvalidInput)
	}
	if err := validateTerms(in.Type, in.Value, in.StartDate, in.EndDate, in.Limit); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, discountrepo.CreateInput{
		Code:      code,
		Type:      in.Type,
		Value:     in.Value,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Limit:     in.Limit,
	})
}

func (s *Service) List(ctx context.Context) ([]domain.Discount, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, code string) (*domain.Discount, error) {
	return s.repo.GetByCode(ctx, strings.TrimSpace(code))
}

func (s *Service) Update(ctx context.Context, code string, in UpdateInput) (*domain.Discount, error) {
	if err := validateTerms(in.Type, in.Value, in.StartDate, in.EndDate, in.Limit); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, strings.TrimSpace(code), discountrepo.UpdateInput{
		Type:      in.Type,
		Value:     in.Value,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Limit:     in.Limit,
	})
}

func (s *Service) Delete(ctx context.Context, code string) error {
	return s.repo.Delete(ctx, strings.TrimSpace(code))
}

func validateTerms(typ domain.DiscountType, value decimal.Decimal, start time.Time, end *time.Time, limit *int) error {
	if !typ.Valid() {
		return fmt.Errorf("%w: unknown discount type", domain.ErrInvalidInput)
	}
	if value.IsNegative() {
		return fmt.Errorf("%w: value must not be negative", domain.ErrInvalidInput)
	}
	if typ == domain.DiscountPercentageTotal && value.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("%w: percentage must not exceed 100", domain.ErrInvalidInput)
	}
	if end != nil && !end.After(start) {
		return fmt.Errorf("%w: end date must be after start date", domain.ErrInvalidInput)
	}
	if limit != nil && *limit < 0 {
		return fmt.Errorf("%w: limit must not be negative", domain.ErrInvalidInput)
	}
	return nil
}
