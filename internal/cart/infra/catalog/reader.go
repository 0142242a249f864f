// Package catalog adapts the catalog service to the narrow read view
// the cart needs when snapshotting a product.
package catalog

import (
	"context"

	cartapp "github.com/dwikikusuma/gamecock-shop/internal/cart/app"
	catalogapp "github.com/dwikikusuma/gamecock-shop/internal/catalog/app"
)

type Reader struct {
	svc *catalogapp.Service
}

func NewReader(svc *catalogapp.Service) *Reader {
	return &Reader{svc: svc}
}

func (r *Reader) GetProduct(ctx context.Context, productID string) (cartapp.Product, error) {
	p, err := r.svc.GetProduct(ctx, productID)
	if err != nil {
		return cartapp.Product{}, err
	}
	return cartapp.Product{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		ImageURL: p.ImageURL,
		Archived: p.Archived,
	}, nil
}
