package product

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-api/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Product, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var id string
	err = tx.QueryRow(ctx, `
INSERT INTO products (name, description, category_id)
VALUES ($1, NULLIF($2, ''), $3)
RETURNING id::text
`, in.Name, in.Description, in.CategoryID).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: create name=%s error=%v", in.Name, err)
		return nil, err
	}

	if err := insertAttributeValues(ctx, tx, id, in.Attributes); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT p.id::text, p.name, COALESCE(p.description, ''), p.created_at,
       c.id::text, c.name, c.created_at
FROM products p
JOIN categories c ON c.id = p.category_id
ORDER BY p.created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var (
			p   domain.Product
			cat domain.Category
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt, &cat.ID, &cat.Name, &cat.CreatedAt); err != nil {
			return nil, err
		}
		p.Category = &cat
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		if err := r.loadRelations(ctx, &result[i]); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT p.id::text, p.name, COALESCE(p.description, ''), p.created_at,
       c.id::text, c.name, c.created_at
FROM products p
JOIN categories c ON c.id = p.category_id
WHERE p.id = $1
`
	var (
		p   domain.Product
		cat domain.Category
	)
	err := r.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt, &cat.ID, &cat.Name, &cat.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	p.Category = &cat

	if err := r.loadRelations(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Update(ctx context.Context, id string, in UpdateInput) (*domain.Product, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx, `
UPDATE products
SET name = $1, description = NULLIF($2, ''), category_id = $3
WHERE id = $4
`, in.Name, in.Description, in.CategoryID, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}

	// Attribute values are replaced wholesale on every update.
	if _, err := tx.Exec(ctx, `DELETE FROM product_attributes WHERE product_id = $1`, id); err != nil {
		return nil, err
	}
	if err := insertAttributeValues(ctx, tx, id, in.Attributes); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) AddPrice(ctx context.Context, in PriceInput) (*domain.Price, error) {
	const q = `
INSERT INTO prices (product_id, value, currency_id, start_date, end_date)
VALUES ($1, $2, $3, $4, $5)
RETURNING id::text, product_id::text, value, start_date, end_date
`
	var price domain.Price
	err := r.pool.QueryRow(ctx, q, in.ProductID, in.Value, in.CurrencyID, in.StartDate, in.EndDate).Scan(
		&price.ID, &price.ProductID, &price.Value, &price.StartDate, &price.EndDate,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: add price product_id=%s error=%v", in.ProductID, err)
		return nil, err
	}

	const curQ = `SELECT id::text, name, acronym, symbol, created_at FROM currencies WHERE id = $1`
	if err := r.pool.QueryRow(ctx, curQ, in.CurrencyID).Scan(
		&price.Currency.ID, &price.Currency.Name, &price.Currency.Acronym, &price.Currency.Symbol, &price.Currency.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &price, nil
}

func (r *postgresRepo) loadRelations(ctx context.Context, p *domain.Product) error {
	attrs, err := r.attributeValuesFor(ctx, p.ID)
	if err != nil {
		return err
	}
	p.Attributes = attrs

	prices, err := r.pricesFor(ctx, p.ID)
	if err != nil {
		return err
	}
	p.Prices = prices
	return nil
}

func (r *postgresRepo) attributeValuesFor(ctx context.Context, productID string) ([]domain.ProductAttribute, error) {
	const q = `
SELECT a.id::text, a.name, a.created_at, pa.value
FROM product_attributes pa
JOIN attributes a ON a.id = pa.attribute_id
WHERE pa.product_id = $1
ORDER BY a.name ASC
`
	rows, err := r.pool.Query(ctx, q, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attrs []domain.ProductAttribute
	for rows.Next() {
		var pa domain.ProductAttribute
		if err := rows.Scan(&pa.Attribute.ID, &pa.Attribute.Name, &pa.Attribute.CreatedAt, &pa.Value); err != nil {
			return nil, err
		}
		attrs = append(attrs, pa)
	}
	return attrs, rows.Err()
}

func (r *postgresRepo) pricesFor(ctx context.Context, productID string) ([]domain.Price, error) {
	const q = `
SELECT pr.id::text, pr.product_id::text, pr.value, pr.start_date, pr.end_date,
       cu.id::text, cu.name, cu.acronym, cu.symbol, cu.created_at
FROM prices pr
JOIN currencies cu ON cu.id = pr.currency_id
WHERE pr.product_id = $1
ORDER BY pr.start_date DESC
`
	rows, err := r.pool.Query(ctx, q, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prices []domain.Price
	for rows.Next() {
		var price domain.Price
		if err := rows.Scan(
			&price.ID, &price.ProductID, &price.Value, &price.StartDate, &price.EndDate,
			&price.Currency.ID, &price.Currency.Name, &price.Currency.Acronym, &price.Currency.Symbol, &price.Currency.CreatedAt,
		); err != nil {
			return nil, err
		}
		prices = append(prices, price)
	}
	return prices, rows.Err()
}

func insertAttributeValues(ctx context.Context, tx pgx.Tx, productID string, values []AttributeValue) error {
	for _, av := range values {
		if _, err := tx.Exec(ctx, `
INSERT INTO product_attributes (product_id, attribute_id, value)
VALUES ($1, $2, $3)
`, productID, av.AttributeID, av.Value); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return domain.ErrNotFound
			}
			return err
		}
	}
	return nil
}
