package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	checkoutdomain "github.com/dwikikusuma/gamecock-shop/internal/checkout/domain"
	orderapp "github.com/dwikikusuma/gamecock-shop/internal/order/app"
	orderdomain "github.com/dwikikusuma/gamecock-shop/internal/order/domain"
)

// OrderServiceWriter binds the checkout transactor to the order
// service. Errors pass through untranslated so the caller can match
// the catalog stock errors raised inside the transaction.
type OrderServiceWriter struct {
	svc *orderapp.Service
}

func NewOrderServiceWriter(svc *orderapp.Service) *OrderServiceWriter {
	return &OrderServiceWriter{svc: svc}
}

func (w *OrderServiceWriter) Create(ctx context.Context, customerID string, total decimal.Decimal, lines []checkoutdomain.Line) (checkoutdomain.PlacedOrder, error) {
	items := make([]orderdomain.Item, 0, len(lines))
	for _, ln := range lines {
		items = append(items, orderdomain.Item{
			ProductID: ln.ProductID,
			Name:      ln.Name,
			UnitPrice: ln.UnitPrice,
			Quantity:  int32(ln.Quantity),
			Subtotal:  ln.Subtotal,
		})
	}

	created, err := w.svc.CreateOrder(ctx, orderdomain.Order{
		CustomerID: customerID,
		TotalPrice: total,
		Items:      items,
	})
	if err != nil {
		return checkoutdomain.PlacedOrder{}, err
	}

	placed := checkoutdomain.PlacedOrder{
		ID:         created.ID,
		CustomerID: created.CustomerID,
		Total:      created.TotalPrice,
		CreatedAt:  created.CreatedAt,
	}
	for _, item := range created.Items {
		placed.Lines = append(placed.Lines, checkoutdomain.Line{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  int(item.Quantity),
			Subtotal:  item.Subtotal,
		})
	}
	return placed, nil
}
