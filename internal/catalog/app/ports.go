package app

import (
	"context"

	"github.com/dwikikusuma/gamecock-shop/internal/catalog/domain"
)

type ProductRepo interface {
	Create(ctx context.Context, p domain.Product) (domain.Product, error)
	Get(ctx context.Context, id string) (domain.Product, error)
	List(ctx context.Context, includeArchived bool) ([]domain.Product, error)
	ListByCategory(ctx context.Context, categoryID string) ([]domain.Product, error)
	Update(ctx context.Context, p domain.Product) (domain.Product, error)
	Archive(ctx context.Context, id string) error
	DecrementStock(ctx context.Context, id string, quantity int32) error
	Count(ctx context.Context) (int64, error)
}

type CategoryRepo interface {
	Create(ctx context.Context, name string) (domain.Category, error)
	Get(ctx context.Context, id string) (domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, c domain.Category) (domain.Category, error)
	// Delete archives the category's products before removing the
	// category row, so historical order items keep a valid reference.
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
