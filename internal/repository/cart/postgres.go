package cart

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-api/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error) {
	const q = `
SELECT ci.user_id::text, ci.product_id::text, ci.quantity, ci.created_at,
       p.name, COALESCE(p.description, ''), p.created_at,
       c.id::text, c.name, c.created_at
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
JOIN categories c ON c.id = p.category_id
WHERE ci.user_id = $1
ORDER BY ci.created_at ASC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var (
			item domain.CartItem
			prod domain.Product
			cat  domain.Category
		)
		if err := rows.Scan(
			&item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt,
			&prod.Name, &prod.Description, &prod.CreatedAt,
			&cat.ID, &cat.Name, &cat.CreatedAt,
		); err != nil {
			return nil, err
		}
		prod.ID = item.ProductID
		prod.Category = &cat
		item.Product = &prod
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range items {
		prices, err := r.pricesFor(ctx, items[i].ProductID)
		if err != nil {
			return nil, err
		}
		items[i].Product.Prices = prices
	}
	return items, nil
}

func (r *postgresRepo) Replace(ctx context.Context, userID string, items []ReplaceItem) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID); err != nil {
		return err
	}

	for _, item := range items {
		if _, err := tx.Exec(ctx, `
INSERT INTO cart_items (user_id, product_id, quantity)
VALUES ($1, $2, $3)
`, userID, item.ProductID, item.Quantity); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) {
				// 23503: unknown product, 23505: duplicate product in payload.
				if pgErr.Code == "23503" {
					return domain.ErrNotFound
				}
				if pgErr.Code == "23505" {
					return domain.ErrAlreadyExists
				}
			}
			return err
		}
	}

	return tx.Commit(ctx)
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
