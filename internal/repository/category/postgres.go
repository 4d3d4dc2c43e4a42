package category

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

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Category, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var cat domain.Category
	err = tx.QueryRow(ctx, `
INSERT INTO categories (name)
VALUES ($1)
RETURNING id::text, name, created_at
`, in.Name).Scan(&cat.ID, &cat.Name, &cat.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}

	if err := linkAttributes(ctx, tx, cat.ID, in.AttributeIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, cat.ID)
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Category, error) {
	const q = `
SELECT id::text, name, created_at
FROM categories
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Category
	for rows.Next() {
		var cat domain.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		attrs, err := r.attributesFor(ctx, result[i].ID)
		if err != nil {
			return nil, err
		}
		result[i].Attributes = attrs
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	const q = `
SELECT id::text, name, created_at
FROM categories
WHERE id = $1
`
	var cat domain.Category
	if err := r.pool.QueryRow(ctx, q, id).Scan(&cat.ID, &cat.Name, &cat.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	attrs, err := r.attributesFor(ctx, cat.ID)
	if err != nil {
		return nil, err
	}
	cat.Attributes = attrs
	return &cat, nil
}

func (r *postgresRepo) Update(ctx context.Context, id string, in UpdateInput) (*domain.Category, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx, `UPDATE categories SET name = $1 WHERE id = $2`, in.Name, id)
	if err != nil {
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}

	// Attribute links are replaced wholesale, mirroring how product
	// attribute values are managed.
	if _, err := tx.Exec(ctx, `DELETE FROM category_attributes WHERE category_id = $1`, id); err != nil {
		return nil, err
	}
	if err := linkAttributes(ctx, tx, id, in.AttributeIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) attributesFor(ctx context.Context, categoryID string) ([]domain.Attribute, error) {
	const q = `
SELECT a.id::text, a.name, a.created_at
FROM attributes a
JOIN category_attributes ca ON ca.attribute_id = a.id
WHERE ca.category_id = $1
ORDER BY a.name ASC
`
	rows, err := r.pool.Query(ctx, q, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attrs []domain.Attribute
	for rows.Next() {
		var a domain.Attribute
		if err := rows.Scan(&a.ID, &a.Name, &a.CreatedAt); err != nil {
			return nil, err
		}
		attrs = append(attrs, a)
	}
	return attrs, rows.Err()
}

func linkAttributes(ctx context.Context, tx pgx.Tx, categoryID string, attributeIDs []string) error {
	for _, attrID := range attributeIDs {
		if _, err := tx.Exec(ctx, `
INSERT INTO category_attributes (category_id, attribute_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING
`, categoryID, attrID); err != nil {
			return err
		}
	}
	return nil
}
