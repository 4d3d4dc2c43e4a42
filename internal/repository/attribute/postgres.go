package attribute

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

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Attribute, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var attr domain.Attribute
	err = tx.QueryRow(ctx, `
INSERT INTO attributes (name)
VALUES ($1)
RETURNING id::text, name, created_at
`, in.Name).Scan(&attr.ID, &attr.Name, &attr.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}

	if err := linkCategories(ctx, tx, attr.ID, in.CategoryIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, attr.ID)
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Attribute, error) {
	const q = `
SELECT id::text, name, created_at
FROM attributes
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Attribute
	for rows.Next() {
		var attr domain.Attribute
		if err := rows.Scan(&attr.ID, &attr.Name, &attr.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, attr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		cats, err := r.categoriesFor(ctx, result[i].ID)
		if err != nil {
			return nil, err
		}
		result[i].Categories = cats
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Attribute, error) {
	const q = `
SELECT id::text, name, created_at
FROM attributes
WHERE id = $1
`
	var attr domain.Attribute
	if err := r.pool.QueryRow(ctx, q, id).Scan(&attr.ID, &attr.Name, &attr.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	cats, err := r.categoriesFor(ctx, attr.ID)
	if err != nil {
		return nil, err
	}
	attr.Categories = cats
	return &attr, nil
}

func (r *postgresRepo) Update(ctx context.Context, id string, in UpdateInput) (*domain.Attribute, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx, `UPDATE attributes SET name = $1 WHERE id = $2`, in.Name, id)
	if err != nil {
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM category_attributes WHERE attribute_id = $1`, id); err != nil {
		return nil, err
	}
	if err := linkCategories(ctx, tx, id, in.CategoryIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM attributes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) categoriesFor(ctx context.Context, attributeID string) ([]domain.Category, error) {
	const q = `
SELECT c.id::text, c.name, c.created_at
FROM categories c
JOIN category_attributes ca ON ca.category_id = c.id
WHERE ca.attribute_id = $1
ORDER BY c.name ASC
`
	rows, err := r.pool.Query(ctx, q, attributeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func linkCategories(ctx context.Context, tx pgx.Tx, attributeID string, categoryIDs []string) error {
	for _, catID := range categoryIDs {
		if _, err := tx.Exec(ctx, `
INSERT INTO category_attributes (category_id, attribute_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING
`, catID, attributeID); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return domain.ErrNotFound
			}
			return err
		}
	}
	return nil
}
