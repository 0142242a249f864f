package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

type Product struct {
	ID          string
	CategoryID  string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int32
	ImageURL    string
	Archived    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
