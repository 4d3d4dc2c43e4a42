package currency

import (
	"context"
	"fmt"
	"strings"

	"storefront-api/internal/domain"
	currencyrepo "storefront-api/internal/repository/currency"
)

type Service struct {
	repo currencyrepo.Repository
}

func New(repo currencyrepo.Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	Name    string `json:"name" binding:"required"`
	Acronym string `json:"acronym" binding:"required"`
	Symbol  string `json:"symbol" binding:"required"`
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Currency, error) {
	c, err := fromInput(in)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, c)
}

func (s *Service) List(ctx context.Context) ([]domain.Currency, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Currency, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*domain.Currency, error) {
	c, err := fromInput(in)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, c)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func fromInput(in Input) (domain.Currency, error) {
	acronym := strings.ToUpper(strings.TrimSpace(in.Acronym))
	if acronym == "" {
		return domain.Currency{}, fmt.Errorf("%w: acronym required", domain.ErrInvalidInput)
	}
	return domain.Currency{
		Name:    strings.TrimSpace(in.Name),
		Acronym: acronym,
		Symbol:  strings.TrimSpace(in.Symbol),
	}, nil
}
