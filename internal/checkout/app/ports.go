package app

import (
	"context"

	"github.com/shopspring/decimal"

	cartdomain "github.com/dwikikusuma/gamecock-shop/internal/cart/domain"
	"github.com/dwikikusuma/gamecock-shop/internal/checkout/domain"
	"github.com/dwikikusuma/gamecock-shop/pkg/contracts"
)

type CartStore interface {
	Get(ctx context.Context, sessionID string) (cartdomain.Cart, error)
	Put(ctx context.Context, sessionID string, cart cartdomain.Cart) error
}

// OrderWriter materialises the order, its items, and the stock
// decrements as one atomic unit. Implementations must guarantee that a
// returned error means nothing was persisted.
type OrderWriter interface {
	Create(ctx context.Context, customerID string, total decimal.Decimal, lines []domain.Line) (domain.PlacedOrder, error)
}

type EventPublisher interface {
	OrderPlaced(ctx context.Context, event contracts.OrderPlaced) error
}
