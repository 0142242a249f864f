package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dwikikusuma/gamecock-shop/internal/catalog/app"
	"github.com/dwikikusuma/gamecock-shop/internal/catalog/domain"
)

type ProductRepo struct {
	db *pgxpool.Pool
}

func NewProductRepo(db *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{db: db}
}

const productColumns = `
	id,
	COALESCE(category_id::text, ''),
	name,
	description,
	price,
	stock,
	image_url,
	archived,
	created_at,
	updated_at`

func scanProduct(row pgx.Row) (domain.Product, error) {
	var (
		p  domain.Product
		id uuid.UUID
	)
	err := row.Scan(
		&id,
		&p.CategoryID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Stock,
		&p.ImageURL,
		&p.Archived,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return domain.Product{}, err
	}
	p.ID = id.String()
	return p, nil
}

func (r *ProductRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	var categoryID *uuid.UUID
	if p.CategoryID != "" {
		cid, err := uuid.Parse(p.CategoryID)
		if err != nil {
			return domain.Product{}, fmt.Errorf("invalid category id: %w", app.ErrInvalidInput)
		}
		categoryID = &cid
	}

	sql := `
		INSERT INTO products (category_id, name, description, price, stock, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING` + productColumns

	row := r.db.QueryRow(ctx, sql,
		categoryID,
		p.Name,
		p.Description,
		p.Price,
		p.Stock,
		p.ImageURL,
	)

	created, err := scanProduct(row)
	if err != nil {
		return domain.Product{}, fmt.Errorf("failed to create product: %w", err)
	}
	return created, nil
}

func (r *ProductRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	prodID, err := uuid.Parse(id)
	if err != nil {
		return domain.Product{}, domain.ErrProductNotFound
	}

	sql := `SELECT` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(r.db.QueryRow(ctx, sql, prodID))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Product{}, domain.ErrProductNotFound
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return p, nil
}

func (r *ProductRepo) List(ctx context.Context, includeArchived bool) ([]domain.Product, error) {
	sql := `SELECT` + productColumns + ` FROM products`
	if !includeArchived {
		sql += ` WHERE NOT archived`
	}
	sql += ` ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r *ProductRepo) ListByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	catID, err := uuid.Parse(categoryID)
	if err != nil {
		return nil, domain.ErrCategoryNotFound
	}

	sql := `SELECT` + productColumns + `
		FROM products
		WHERE category_id = $1 AND NOT archived
		ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, sql, catID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products by category: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func collectProducts(rows pgx.Rows) ([]domain.Product, error) {
	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}
	return products, nil
}

func (r *ProductRepo) Update(ctx context.Context, p domain.Product) (domain.Product, error) {
	prodID, err := uuid.Parse(p.ID)
	if err != nil {
		return domain.Product{}, domain.ErrProductNotFound
	}

	var categoryID *uuid.UUID
	if p.CategoryID != "" {
		cid, err := uuid.Parse(p.CategoryID)
		if err != nil {
			return domain.Product{}, fmt.Errorf("invalid category id: %w", app.ErrInvalidInput)
		}
		categoryID = &cid
	}

	sql := `
		UPDATE products
		SET category_id = $1,
			name = $2,
			description = $3,
			price = $4,
			stock = $5,
			image_url = $6,
			updated_at = $7
		WHERE id = $8
		RETURNING` + productColumns

	row := r.db.QueryRow(ctx, sql,
		categoryID,
		p.Name,
		p.Description,
		p.Price,
		p.Stock,
		p.ImageURL,
		time.Now().UTC(),
		prodID,
	)

	updated, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Product{}, domain.ErrProductNotFound
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("failed to update product %s: %w", p.ID, err)
	}
	return updated, nil
}

func (r *ProductRepo) Archive(ctx context.Context, id string) error {
	prodID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrProductNotFound
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE products SET archived = TRUE, updated_at = NOW() WHERE id = $1`,
		prodID,
	)
	if err != nil {
		return fmt.Errorf("failed to archive product %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// DecrementStock subtracts quantity only when enough stock remains, in
// one conditional statement, so concurrent decrements cannot oversell.
func (r *ProductRepo) DecrementStock(ctx context.Context, id string, quantity int32) error {
	prodID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrProductNotFound
	}

	sql := `
		UPDATE products
		SET stock = stock - $1, updated_at = NOW()
		WHERE id = $2 AND NOT archived AND stock >= $1
		RETURNING stock`

	var remaining int32
	err = r.db.QueryRow(ctx, sql, quantity, prodID).Scan(&remaining)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to decrement stock for %s: %w", id, err)
	}

	// The guarded update missed: either the product is gone or the
	// stock could not cover the request.
	var (
		name      string
		available int32
		archived  bool
	)
	err = r.db.QueryRow(ctx,
		`SELECT name, stock, archived FROM products WHERE id = $1`, prodID,
	).Scan(&name, &available, &archived)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrProductNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to inspect stock for %s: %w", id, err)
	}
	if archived {
		return domain.ErrProductNotFound
	}
	return &domain.InsufficientStockError{
		ProductID: id,
		Name:      name,
		Available: available,
		Requested: quantity,
	}
}

func (r *ProductRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE NOT archived`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return n, nil
}
