package importer

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"storefront-api/internal/domain"
	categoryrepo "storefront-api/internal/repository/category"
	productrepo "storefront-api/internal/repository/product"
)

type stubCategoryStore struct {
	existing []domain.Category
	created  []string
}

func (s *stubCategoryStore) List(_ context.Context) ([]domain.Category, error) {
	return s.existing, nil
}

func (s *stubCategoryStore) Create(_ context.Context, in categoryrepo.CreateInput) (*domain.Category, error) {
	s.created = append(s.created, in.Name)
	return &domain.Category{ID: "cat-" + strconv.Itoa(len(s.created)), Name: in.Name}, nil
}

type stubCurrencyStore struct {
	existing []domain.Currency
	created  []string
}

func (s *stubCurrencyStore) List(_ context.Context) ([]domain.Currency, error) {
	return s.existing, nil
}

func (s *stubCurrencyStore) Create(_ context.Context, c domain.Currency) (*domain.Currency, error) {
	s.created = append(s.created, c.Acronym)
	c.ID = "cur-" + strconv.Itoa(len(s.created))
	return &c, nil
}

type stubProductStore struct {
	products []productrepo.CreateInput
	prices   []productrepo.PriceInput
}

func (s *stubProductStore) Create(_ context.Context, in productrepo.CreateInput) (*domain.Product, error) {
	s.products = append(s.products, in)
	return &domain.Product{ID: "prod-" + strconv.Itoa(len(s.products)), Name: in.Name}, nil
}

func (s *stubProductStore) AddPrice(_ context.Context, in productrepo.PriceInput) (*domain.Price, error) {
	s.prices = append(s.prices, in)
	return &domain.Price{ID: "price-" + strconv.Itoa(len(s.prices))}, nil
}

func TestCSVImporter_Run(t *testing.T) {
	csvData := `name,description,category,price,currency,symbol
Desk,Standing desk,Furniture,150.00,EUR,€
Chair,Ergonomic chair,Furniture,200,EUR,
Mug,Ceramic mug,Kitchen,9.50,USD,$`

	categories := &stubCategoryStore{}
	currencies := &stubCurrencyStore{}
	products := &stubProductStore{}
	imp := NewCSVImporter(strings.NewReader(csvData), categories, currencies, products)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 imported, got %d", count)
	}
	if len(categories.created) != 2 {
		t.Fatalf("expected 2 categories created, got %v", categories.created)
	}
	if len(currencies.created) != 2 {
		t.Fatalf("expected 2 currencies created, got %v", currencies.created)
	}
	if len(products.prices) != 3 {
		t.Fatalf("expected 3 prices, got %d", len(products.prices))
	}
	if got := products.prices[0].Value.StringFixed(2); got != "150.00" {
		t.Fatalf("unexpected first price: %s", got)
	}
}

func TestCSVImporter_ReusesExistingCatalog(t *testing.T) {
	csvData := `name,description,category,price,currency
Desk,Standing desk,Furniture,150.00,EUR`

	categories := &stubCategoryStore{existing: []domain.Category{{ID: "cat-old", Name: "furniture"}}}
	currencies := &stubCurrencyStore{existing: []domain.Currency{{ID: "cur-old", Acronym: "EUR"}}}
	products := &stubProductStore{}
	imp := NewCSVImporter(strings.NewReader(csvData), categories, currencies, products)

	if _, err := imp.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(categories.created) != 0 || len(currencies.created) != 0 {
		t.Fatalf("expected no new catalog rows, got %v / %v", categories.created, currencies.created)
	}
	if products.products[0].CategoryID != "cat-old" {
		t.Fatalf("expected existing category, got %s", products.products[0].CategoryID)
	}
	if products.prices[0].CurrencyID != "cur-old" {
		t.Fatalf("expected existing currency, got %s", products.prices[0].CurrencyID)
	}
}

func TestCSVImporter_RejectsBadPrice(t *testing.T) {
	csvData := `name,description,category,price,currency
Desk,Standing desk,Furniture,not-a-number,EUR`

	imp := NewCSVImporter(strings.NewReader(csvData), &stubCategoryStore{}, &stubCurrencyStore{}, &stubProductStore{})

	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatal("expected error for invalid price")
	}
}

func TestCSVImporter_SkipsBlankRows(t *testing.T) {
	csvData := `name,description,category,price,currency
Desk,Standing desk,Furniture,150.00,EUR
,,,,`

	products := &stubProductStore{}
	imp := NewCSVImporter(strings.NewReader(csvData), &stubCategoryStore{}, &stubCurrencyStore{}, products)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 imported, got %d", count)
	}
}
