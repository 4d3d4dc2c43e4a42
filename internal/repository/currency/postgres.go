package currency

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

func (r *postgresRepo) Create(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	const q = `
INSERT INTO currencies (name, acronym, symbol)
VALUES ($1, $2, $3)
RETURNING id::text, name, acronym, symbol, created_at
`
	var c domain.Currency
	err := r.pool.QueryRow(ctx, q, currency.Name, currency.Acronym, currency.Symbol).Scan(
		&c.ID, &c.Name, &c.Acronym, &c.Symbol, &c.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Currency, error) {
	const q = `
SELECT id::text, name, acronym, symbol, created_at
FROM currencies
ORDER BY acronym ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Currency
	for rows.Next() {
		var c domain.Currency
		if err := rows.Scan(&c.ID, &c.Name, &c.Acronym, &c.Symbol, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Currency, error) {
	const q = `
SELECT id::text, name, acronym, symbol, created_at
FROM currencies
WHERE id = $1
`
	var c domain.Currency
	err := r.pool.QueryRow(ctx, q, id).Scan(&c.ID, &c.Name, &c.Acronym, &c.Symbol, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) Update(ctx context.Context, id string, currency domain.Currency) (*domain.Currency, error) {
	const q = `
UPDATE currencies
SET name = $1, acronym = $2, symbol = $3
WHERE id = $4
RETURNING id::text, name, acronym, symbol, created_at
`
	var c domain.Currency
	err := r.pool.QueryRow(ctx, q, currency.Name, currency.Acronym, currency.Symbol, id).Scan(
		&c.ID, &c.Name, &c.Acronym, &c.Symbol, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM currencies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
