package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dwikikusuma/gamecock-shop/internal/catalog/domain"
)

type CategoryRepo struct {
	db *pgxpool.Pool
}

func NewCategoryRepo(db *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{db: db}
}

func (r *CategoryRepo) Create(ctx context.Context, name string) (domain.Category, error) {
	var c domain.Category
	var id uuid.UUID
	err := r.db.QueryRow(ctx,
		`INSERT INTO categories (name) VALUES ($1) RETURNING id, name, created_at`,
		name,
	).Scan(&id, &c.Name, &c.CreatedAt)
	if err != nil {
		return domain.Category{}, fmt.Errorf("failed to create category: %w", err)
	}
	c.ID = id.String()
	return c, nil
}

func (r *CategoryRepo) Get(ctx context.Context, id string) (domain.Category, error) {
	catID, err := uuid.Parse(id)
	if err != nil {
		return domain.Category{}, domain.ErrCategoryNotFound
	}

	var c domain.Category
	var cid uuid.UUID
	err = r.db.QueryRow(ctx,
		`SELECT id, name, created_at FROM categories WHERE id = $1`, catID,
	).Scan(&cid, &c.Name, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Category{}, domain.ErrCategoryNotFound
	}
	if err != nil {
		return domain.Category{}, fmt.Errorf("failed to get category %s: %w", id, err)
	}
	c.ID = cid.String()
	return c, nil
}

func (r *CategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, created_at FROM categories ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		var id uuid.UUID
		if err := rows.Scan(&id, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		c.ID = id.String()
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepo) Update(ctx context.Context, c domain.Category) (domain.Category, error) {
	catID, err := uuid.Parse(c.ID)
	if err != nil {
		return domain.Category{}, domain.ErrCategoryNotFound
	}

	var updated domain.Category
	var id uuid.UUID
	err = r.db.QueryRow(ctx,
		`UPDATE categories SET name = $1 WHERE id = $2 RETURNING id, name, created_at`,
		c.Name, catID,
	).Scan(&id, &updated.Name, &updated.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Category{}, domain.ErrCategoryNotFound
	}
	if err != nil {
		return domain.Category{}, fmt.Errorf("failed to update category %s: %w", c.ID, err)
	}
	updated.ID = id.String()
	return updated, nil
}

// Delete archives the category's products first, then removes the
// category row. Archiving instead of deleting keeps products referenced
// by historical order items resolvable.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	catID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrCategoryNotFound
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`UPDATE products SET archived = TRUE, updated_at = NOW() WHERE category_id = $1`,
		catID,
	)
	if err != nil {
		return fmt.Errorf("failed to archive category products: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM categories WHERE id = $1`, catID)
	if err != nil {
		return fmt.Errorf("failed to delete category %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit category delete: %w", err)
	}
	return nil
}

func (r *CategoryRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return n, nil
}
