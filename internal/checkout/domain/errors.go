package domain

import "errors"

// Rejection reasons surfaced by the checkout transactor. Stock and
// missing-product failures come through from the catalog domain
// (ErrProductNotFound, InsufficientStockError) unchanged.
var (
	ErrUnauthenticated    = errors.New("checkout requires an authenticated customer")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrEmptySelection     = errors.New("no items selected for checkout")
	ErrSelectionNotInCart = errors.New("selected items were not found in the cart")
)
