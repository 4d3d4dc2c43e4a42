package product

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"storefront-api/internal/domain"
	productrepo "storefront-api/internal/repository/product"
)

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

type AttributeValueInput struct {
	AttributeID string `json:"attributeId" binding:"required"`
	Value       string `json:"value" binding:"required"`
}

type CreateInput struct {
	Name        string                `json:"name" binding:"required"`
	Description string                `json:"description" binding:"required"`
	CategoryID  string                `json:"categoryId" binding:"required"`
	Attributes  []AttributeValueInput `json:"attributes"`
}

type UpdateInput struct {
	Name        string                `json:"name" binding:"required"`
	Description string                `json:"description" binding:"required"`
	CategoryID  string                `json:"categoryId" binding:"required"`
	Attributes  []AttributeValueInput `json:"attributes"`
}

type PriceInput struct {
	Value      decimal.Decimal `json:"value" binding:"required"`
	CurrencyID string          `json:"currencyId" binding:"required"`
	StartDate  *time.Time      `json:"startDate"`
	EndDate    *time.Time      `json:"endDate"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name required", domain.ErrInvalidInput)
	}
	return s.repo.Create(ctx, productrepo.CreateInput{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		CategoryID:  in.CategoryID,
		Attributes:  toAttributeValues(in.Attributes),
	})
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*domain.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name required", domain.ErrInvalidInput)
	}
	return s.repo.Update(ctx, id, productrepo.UpdateInput{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		CategoryID:  in.CategoryID,
		Attributes:  toAttributeValues(in.Attributes),
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// AddPrice opens a new price window for the product. Closing the previous
// window is the caller's responsibility via EndDate on the old price.
func (s *Service) AddPrice(ctx context.Context, productID string, in PriceInput) (*domain.Price, error) {
	if in.Value.IsNegative() {
		return nil, fmt.Errorf("%w: price value must not be negative", domain.ErrInvalidInput)
	}
	if _, err := s.repo.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	start := time.Now()
	if in.StartDate != nil {
		start = *in.StartDate
	}
	if in.EndDate != nil && !in.EndDate.After(start) {
		return nil, fmt.Errorf("%w: endDate must be after startDate", domain.ErrInvalidInput)
	}

	return s.repo.AddPrice(ctx, productrepo.PriceInput{
		ProductID:  productID,
		Value:      in.Value,
		CurrencyID: in.CurrencyID,
		StartDate:  start,
		EndDate:    in.EndDate,
	})
}

func toAttributeValues(in []AttributeValueInput) []productrepo.AttributeValue {
	values := make([]productrepo.AttributeValue, 0, len(in))
	for _, av := range in {
		values = append(values, productrepo.AttributeValue{
			AttributeID: av.AttributeID,
			Value:       av.Value,
		})
	}
	return values
}
