package app

import (
	"context"

	"github.com/dwikikusuma/gamecock-shop/internal/order/domain"
)

type OrderRepo interface {
	// CreateOrderTx persists the order, its items, and the matching
	// stock decrements inside one transaction. Either everything
	// commits or nothing does.
	CreateOrderTx(ctx context.Context, order domain.Order) (domain.Order, error)
	Get(ctx context.Context, id string) (domain.Order, error)
	ListWithCustomer(ctx context.Context) ([]domain.Summary, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
