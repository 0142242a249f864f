package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/gamecock-shop/internal/order/domain"
)

var ErrOrderNotFound = errors.New("order not found")

type Service struct {
	repo OrderRepo
}

func NewService(repo OrderRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	if strings.TrimSpace(order.CustomerID) == "" {
		return domain.Order{}, fmt.Errorf("customer id is required")
	}
	if len(order.Items) == 0 {
		return domain.Order{}, fmt.Errorf("order must have at least one item")
	}

	total := decimal.Zero
	for i, item := range order.Items {
		if item.Quantity <= 0 {
			return domain.Order{}, fmt.Errorf("item %d: quantity must be positive, got %d", i, item.Quantity)
		}
		if item.UnitPrice.IsNegative() {
			return domain.Order{}, fmt.Errorf("item %d: unit price cannot be negative, got %s", i, item.UnitPrice)
		}

		expected := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		if !item.Subtotal.Equal(expected) {
			return domain.Order{}, fmt.Errorf("item %d: subtotal mismatch, want %s got %s", i, expected, item.Subtotal)
		}
		total = total.Add(item.Subtotal)
	}

	if !order.TotalPrice.Equal(total) {
		return domain.Order{}, fmt.Errorf("order total mismatch, want %s got %s", total, order.TotalPrice)
	}

	return s.repo.CreateOrderTx(ctx, order)
}

func (s *Service) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Order{}, ErrOrderNotFound
	}
	return s.repo.Get(ctx, id)
}

// ListOrders returns orders newest first with the owning customer.
func (s *Service) ListOrders(ctx context.Context) ([]domain.Summary, error) {
	return s.repo.ListWithCustomer(ctx)
}

func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrOrderNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) CountOrders(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
