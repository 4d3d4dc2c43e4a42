package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"storefront-api/internal/domain"
	categoryrepo "storefront-api/internal/repository/category"
	productrepo "storefront-api/internal/repository/product"
)

type categoryStore interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, in categoryrepo.CreateInput) (*domain.Category, error)
}

type currencyStore interface {
	List(ctx context.Context) ([]domain.Currency, error)
	Create(ctx context.Context, c domain.Currency) (*domain.Currency, error)
}

type productStore interface {
	Create(ctx context.Context, in productrepo.CreateInput) (*domain.Product, error)
	AddPrice(ctx context.Context, in productrepo.PriceInput) (*domain.Price, error)
}

// CSVImporter reads catalog CSV exports and inserts products with an
// initial price. Categories and currencies referenced by rows are
// created on first sight.
type CSVImporter struct {
	reader     *csv.Reader
	categories categoryStore
	currencies currencyStore
	products   productStore
}

func NewCSVImporter(r io.Reader, categories categoryStore, currencies currencyStore, products productStore) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:     csvr,
		categories: categories,
		currencies: currencies,
		products:   products,
	}
}

type csvRow struct {
	Name     string
	Desc     string
	Category string
	Price    string
	Currency string
	Symbol   string
}

// Run parses CSV rows and inserts one product per row. It returns the
// number of products imported.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	categories, err := i.loadCategories(ctx)
	if err != nil {
		return 0, err
	}
	currencies, err := i.loadCurrencies(ctx)
	if err != nil {
		return 0, err
	}

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		row := parseRow(record, index)
		if row == nil {
			continue
		}
		if err := i.save(ctx, row, categories, currencies); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) save(ctx context.Context, row *csvRow, categories map[string]string, currencies map[string]string) error {
	if row.Name == "" || row.Category == "" || row.Price == "" || row.Currency == "" {
		return fmt.Errorf("invalid product row (missing required fields) for %q", row.Name)
	}

	value, err := decimal.NewFromString(row.Price)
	if err != nil || value.IsNegative() {
		return fmt.Errorf("invalid price for %q: %s", row.Name, row.Price)
	}

	categoryID, ok := categories[strings.ToLower(row.Category)]
	if !ok {
		cat, err := i.categories.Create(ctx, categoryrepo.CreateInput{Name: row.Category})
		if err != nil {
			return fmt.Errorf("create category %q: %w", row.Category, err)
		}
		categoryID = cat.ID
		categories[strings.ToLower(row.Category)] = categoryID
	}

	acronym := strings.ToUpper(row.Currency)
	currencyID, ok := currencies[acronym]
	if !ok {
		symbol := row.Symbol
		if symbol == "" {
			symbol = acronym
		}
		cur, err := i.currencies.Create(ctx, domain.Currency{
			Name:    acronym,
			Acronym: acronym,
			Symbol:  symbol,
		})
		if err != nil {
			return fmt.Errorf("create currency %q: %w", acronym, err)
		}
		currencyID = cur.ID
		currencies[acronym] = currencyID
	}

	p, err := i.products.Create(ctx, productrepo.CreateInput{
		Name:        row.Name,
		Description: row.Desc,
		CategoryID:  categoryID,
	})
	if err != nil {
		return fmt.Errorf("create product %q: %w", row.Name, err)
	}

	_, err = i.products.AddPrice(ctx, productrepo.PriceInput{
		ProductID:  p.ID,
		Value:      value,
		CurrencyID: currencyID,
		StartDate:  time.Now(),
	})
	if err != nil {
		return fmt.Errorf("price product %q: %w", row.Name, err)
	}
	return nil
}

func (i *CSVImporter) loadCategories(ctx context.Context) (map[string]string, error) {
	existing, err := i.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	byName := make(map[string]string, len(existing))
	for _, c := range existing {
		byName[strings.ToLower(c.Name)] = c.ID
	}
	return byName, nil
}

func (i *CSVImporter) loadCurrencies(ctx context.Context) (map[string]string, error) {
	existing, err := i.currencies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list currencies: %w", err)
	}
	byAcronym := make(map[string]string, len(existing))
	for _, c := range existing {
		byAcronym[strings.ToUpper(c.Acronym)] = c.ID
	}
	return byAcronym, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) *csvRow {
	row := &csvRow{
		Name:     pick(record, index, "name"),
		Desc:     pick(record, index, "description"),
		Category: pick(record, index, "category"),
		Price:    pick(record, index, "price"),
		Currency: pick(record, index, "currency"),
		Symbol:   pick(record, index, "symbol"),
	}
	if row.Name == "" && row.Category == "" && row.Price == "" {
		return nil
	}
	return row
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
