package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is append-only once created; the only later mutation is
// deletion of the whole order, which cascades to its items.
type Order struct {
	ID         string
	CustomerID string
	TotalPrice decimal.Decimal
	Items      []Item
	CreatedAt  time.Time
}

// Item carries a purchase-time snapshot of the product name and unit
// price so the order stays displayable after catalog changes.
type Item struct {
	ID        string
	OrderID   string
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int32
	Subtotal  decimal.Decimal
}

// Summary is the back-office listing row.
type Summary struct {
	ID           string
	CustomerID   string
	CustomerName string
	TotalPrice   decimal.Decimal
	CreatedAt    time.Time
}
