package app

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/gamecock-shop/internal/cart/domain"
)

// Store persists carts keyed by session id. Get returns an empty cart
// for unknown sessions; the cart is created lazily on first write.
type Store interface {
	Get(ctx context.Context, sessionID string) (domain.Cart, error)
	Put(ctx context.Context, sessionID string, cart domain.Cart) error
}

// CatalogReader supplies the snapshot taken at add-to-cart time.
type CatalogReader interface {
	GetProduct(ctx context.Context, productID string) (Product, error)
}

type Product struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	ImageURL string
	Archived bool
}
