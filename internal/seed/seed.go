package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"storefront-api/internal/auth"
)

type productSeed struct {
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	Attributes  map[string]string
}

type discountSeed struct {
	Code  string
	Type  string
	Value decimal.Decimal
	Limit *int
}

// Apply inserts basic seed data for manual testing. It is idempotent via
// ON CONFLICT and existence checks.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	if err := ensureAdmin(ctx, pool, "admin@example.com", "changeme123"); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}

	currencyID, err := ensureCurrency(ctx, pool, "Euro", "EUR", "€")
	if err != nil {
		return fmt.Errorf("ensure currency: %w", err)
	}

	attributeIDs := map[string]string{}
	for _, name := range []string{"material", "color"} {
		id, err := ensureAttribute(ctx, pool, name)
		if err != nil {
			return fmt.Errorf("ensure attribute %s: %w", name, err)
		}
		attributeIDs[name] = id
	}

	categoryID, err := ensureCategory(ctx, pool, "Furniture")
	if err != nil {
		return fmt.Errorf("ensure category: %w", err)
	}
	for _, id := range attributeIDs {
		if err := linkAttribute(ctx, pool, categoryID, id); err != nil {
			return fmt.Errorf("link attribute: %w", err)
		}
	}

	products := []productSeed{
		{
			Name:        "Standing Desk",
			Description: "Height adjustable oak desk",
			Price:       decimal.NewFromInt(150),
			Attributes:  map[string]string{"material": "oak", "color": "natural"},
		},
		{
			Name:        "Office Chair",
			Description: "Ergonomic mesh chair",
			Price:       decimal.NewFromInt(200),
			Attributes:  map[string]string{"material": "mesh", "color": "black"},
		},
	}
	for _, p := range products {
		if err := ensureProduct(ctx, pool, categoryID, currencyID, attributeIDs, p); err != nil {
			return fmt.Errorf("ensure product %s: %w", p.Name, err)
		}
	}

	welcomeLimit := 100
	discounts := []discountSeed{
		{Code: "SUMMER15", Type: "PERCENTAGE_TOTAL", Value: decimal.NewFromInt(15)},
		{Code: "WELCOME15", Type: "FIXED_TOTAL", Value: decimal.NewFromInt(15), Limit: &welcomeLimit},
	}
	for _, d := range discounts {
		if err := ensureDiscount(ctx, pool, d); err != nil {
			return fmt.Errorf("ensure discount %s: %w", d.Code, err)
		}
	}

	return nil
}

func ensureAdmin(ctx context.Context, pool *pgxpool.Pool, email, password string) error {
	hash, err := auth.HashPassword(password, auth.DefaultBcryptCost)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO users (email, first_name, last_name, password_hash, role)
VALUES ($1, 'Store', 'Admin', $2, 'ADMIN')
ON CONFLICT (email) DO UPDATE SET role = 'ADMIN'
`
	_, err = pool.Exec(ctx, q, email, hash)
	return err
}

func ensureCurrency(ctx context.Context, pool *pgxpool.Pool, name, acronym, symbol string) (string, error) {
	const q = `
INSERT INTO currencies (name, acronym, symbol)
VALUES ($1, $2, $3)
ON CONFLICT (acronym) DO UPDATE SET name = EXCLUDED.name, symbol = EXCLUDED.symbol
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q, name, acronym, symbol).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func ensureAttribute(ctx context.Context, pool *pgxpool.Pool, name string) (string, error) {
	const q = `
INSERT INTO attributes (name)
VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q, name).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func ensureCategory(ctx context.Context, pool *pgxpool.Pool, name string) (string, error) {
	const q = `
INSERT INTO categories (name)
VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q, name).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func linkAttribute(ctx context.Context, pool *pgxpool.Pool, categoryID, attributeID string) error {
	const q = `
INSERT INTO category_attributes (category_id, attribute_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING
`
	_, err := pool.Exec(ctx, q, categoryID, attributeID)
	return err
}

func ensureProduct(ctx context.Context, pool *pgxpool.Pool, categoryID, currencyID string, attributeIDs map[string]string, p productSeed) error {
	var id string
	err := pool.QueryRow(ctx, `SELECT id::text FROM products WHERE name = $1 AND category_id = $2`, p.Name, categoryID).Scan(&id)
	if err != nil {
		const insert = `
INSERT INTO products (name, description, category_id)
VALUES ($1, $2, $3)
RETURNING id::text
`
		if err := pool.QueryRow(ctx, insert, p.Name, p.Description, categoryID).Scan(&id); err != nil {
			return err
		}
	}

	for name, value := range p.Attributes {
		attrID, ok := attributeIDs[name]
		if !ok {
			continue
		}
		const link = `
INSERT INTO product_attributes (product_id, attribute_id, value)
VALUES ($1, $2, $3)
ON CONFLICT (product_id, attribute_id) DO UPDATE SET value = EXCLUDED.value
`
		if _, err := pool.Exec(ctx, link, id, attrID, value); err != nil {
			return err
		}
	}

	var count int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM prices WHERE product_id = $1 AND currency_id = $2`, id, currencyID).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		const price = `
INSERT INTO prices (product_id, value, currency_id, start_date)
VALUES ($1, $2, $3, now())
`
		if _, err := pool.Exec(ctx, price, id, p.Price, currencyID); err != nil {
			return err
		}
	}
	return nil
}

func ensureDiscount(ctx context.Context, pool *pgxpool.Pool, d discountSeed) error {
	const q = `
INSERT INTO discounts (code, type, value, start_date, "limit", remaining)
VALUES ($1, $2, $3, now(), $4, $4)
ON CONFLICT (code) DO UPDATE SET type = EXCLUDED.type, value = EXCLUDED.value
`
	_, err := pool.Exec(ctx, q, d.Code, d.Type, d.Value, d.Limit)
	return err
}
