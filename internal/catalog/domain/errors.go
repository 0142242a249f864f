package domain

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// InsufficientStockError reports which product could not cover a
// requested quantity. It is raised by the conditional stock decrement
// and surfaces unchanged through the checkout transaction.
type InsufficientStockError struct {
	ProductID string
	Name      string
	Available int32
	Requested int32
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s (%s): available %d, requested %d",
		e.ProductID, e.Name, e.Available, e.Requested)
}
