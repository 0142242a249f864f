package contracts

import "time"

// OrderPlaced is emitted after a checkout transaction commits.
type OrderPlaced struct {
	OrderID    string            `json:"order_id"`
	CustomerID string            `json:"customer_id"`
	TotalPrice string            `json:"total_price"`
	Lines      []OrderPlacedLine `json:"lines"`
	PlacedAt   time.Time         `json:"placed_at"`
}

type OrderPlacedLine struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}
