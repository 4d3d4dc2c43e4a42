package discount

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

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

const discountColumns = `id::text, code, type, value, start_date, end_date, "limit", remaining, created_at`

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Discount, error) {
	// A fresh discount starts with remaining equal to its limit; an
	// unlimited discount keeps both NULL.
	const q = `
INSERT INTO discounts (code, type, value, start_date, end_date, "limit", remaining)
VALUES ($1, $2, $3, $4, $5, $6, $6)
RETURNING ` + discountColumns
	var d domain.Discount
	err := r.pool.QueryRow(ctx, q, in.Code, in.Type, in.Value, in.StartDate, in.EndDate, in.Limit).Scan(
		&d.ID, &d.Code, &d.Type, &d.Value, &d.StartDate, &d.EndDate, &d.Limit, &d.Remaining, &d.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("discount repo: create code=%s error=%v", in.Code, err)
		return nil, err
	}
	return &d, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Discount, error) {
	const q = `SELECT ` + discountColumns + ` FROM discounts ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Discount
	for rows.Next() {
		var d domain.Discount
		if err := rows.Scan(&d.ID, &d.Code, &d.Type, &d.Value, &d.StartDate, &d.EndDate, &d.Limit, &d.Remaining, &d.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, rows.Err()
}

func (r *postgresRepo) GetByCode(ctx context.Context, code string) (*domain.Discount, error) {
	const q = `SELECT ` + discountColumns + ` FROM discounts WHERE code = $1`
	var d domain.Discount
	err := r.pool.QueryRow(ctx, q, code).Scan(
		&d.ID, &d.Code, &d.Type, &d.Value, &d.StartDate, &d.EndDate, &d.Limit, &d.Remaining, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *postgresRepo) Update(ctx context.Context, code string, in UpdateInput) (*domain.Discount, error) {
	// Changing the limit resets the remaining counter to the new limit.
	const q = `
UPDATE discounts
SET type = $1, value = $2, start_date = $3, end_date = $4, "limit" = $5,
    remaining = CASE WHEN "limit" IS DISTINCT FROM $5 THEN $5 ELSE remaining END
WHERE code = $6
RETURNING ` + discountColumns
	var d domain.Discount
	err := r.pool.QueryRow(ctx, q, in.Type, in.Value, in.StartDate, in.EndDate, in.Limit, code).Scan(
		&d.ID, &d.Code, &d.Type, &d.Value, &d.StartDate, &d.EndDate, &d.Limit, &d.Remaining, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *postgresRepo) Delete(ctx context.Context, code string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM discounts WHERE code = $1`, code)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Redeem(ctx context.Context, code string, now time.Time) (*domain.Discount, error) {
	// Eligibility check and decrement happen in one statement. Unlimited
	// discounts (NULL limit) match on remaining IS NULL and are left
	// untouched; limited ones require remaining > 0 and are decremented.
	const q = `
UPDATE discounts
SET remaining = CASE WHEN "limit" IS NOT NULL THEN remaining - 1 ELSE remaining END
WHERE code = $1
  AND (remaining IS NULL OR remaining > 0)
  AND (end_date IS NULL OR (start_date < $2 AND end_date > $2))
RETURNING ` + discountColumns
	var d domain.Discount
	err := r.pool.QueryRow(ctx, q, code, now).Scan(
		&d.ID, &d.Code, &d.Type, &d.Value, &d.StartDate, &d.EndDate, &d.Limit, &d.Remaining, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("discount repo: redeem code=%s error=%v", code, err)
		return nil, err
	}
	r.logger.Printf("discount repo: redeemed code=%s", code)
	return &d, nil
}
