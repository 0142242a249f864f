package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Line is one purchased position, priced from the cart snapshot.
type Line struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Preview is the pre-confirmation view of a pending checkout.
type Preview struct {
	Lines []Line          `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// PlacedOrder is the durable result of a successful checkout.
type PlacedOrder struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Total      decimal.Decimal `json:"total"`
	Lines      []Line          `json:"lines"`
	CreatedAt  time.Time       `json:"created_at"`
}
